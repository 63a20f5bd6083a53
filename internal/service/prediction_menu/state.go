package prediction_menu

import "twitch_prediction_manager/internal/models"

type Screen int

const (
	MainScreen Screen = iota
	ControlScreen
)

func (s Screen) String() string {
	switch s {
	case MainScreen:
		return "main"
	case ControlScreen:
		return "control"
	default:
		return "unknown"
	}
}

type PredictionState int

const (
	NoActivePrediction PredictionState = iota
	PredictionOpen
	PredictionLocked
)

func (s PredictionState) String() string {
	switch s {
	case NoActivePrediction:
		return "no active prediction"
	case PredictionOpen:
		return "open"
	case PredictionLocked:
		return "locked"
	default:
		return "unknown"
	}
}

type Transition int

const (
	TransitionInvalid Transition = iota
	TransitionReload
	TransitionStart
	TransitionLock
	TransitionResolve
	TransitionCancel
	TransitionReturnToMain
	TransitionExit
)

// Session is everything the menu remembers between choices.
type Session struct {
	Players    [2]string
	Prediction *models.Prediction
	Locked     bool
}

func (s Session) State() PredictionState {
	switch {
	case s.Prediction == nil:
		return NoActivePrediction
	case s.Locked:
		return PredictionLocked
	default:
		return PredictionOpen
	}
}

func (s *Session) track(prediction *models.Prediction) {
	s.Prediction = prediction
	s.Locked = false
}

func (s *Session) clear() {
	s.Prediction = nil
	s.Locked = false
}

// parseChoice maps raw input to a transition for the given screen. position is
// the winning player for TransitionResolve and zero otherwise.
func parseChoice(screen Screen, session Session, input string) (transition Transition, position int) {
	switch screen {
	case MainScreen:
		switch input {
		case "0":
			return TransitionReload, 0
		case "1":
			return TransitionStart, 0
		case "2":
			return TransitionCancel, 0
		case "3":
			return TransitionExit, 0
		}

	case ControlScreen:
		switch input {
		case "0":
			if session.State() == PredictionOpen {
				return TransitionLock, 0
			}
		case "1":
			return TransitionResolve, 1
		case "2":
			return TransitionResolve, 2
		case "3":
			return TransitionCancel, 0
		case "4":
			return TransitionReturnToMain, 0
		}
	}

	return TransitionInvalid, 0
}
