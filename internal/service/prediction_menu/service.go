package prediction_menu

import (
	"bufio"
	"context"
	"io"
	"twitch_prediction_manager/internal/models"
)

type PlayerReader interface {
	ReadPlayerName(position int) string
}

type PredictionClient interface {
	CreatePrediction(ctx context.Context, title string, outcomes [2]string, windowSeconds int) (*models.Prediction, error)
	LockPrediction(ctx context.Context, predictionID string) error
	ResolvePrediction(ctx context.Context, predictionID, winningOutcomeID string) error
	CancelPrediction(ctx context.Context, predictionID string) error
}

type EventRecorder interface {
	Record(ctx context.Context, event models.PredictionEvent)
}

// Menu drives one prediction at a time from numbered text menus.
type Menu struct {
	in          *bufio.Reader
	out         io.Writer
	players     PlayerReader
	predictions PredictionClient
	recorder    EventRecorder
	window      int

	screen  Screen
	session Session
}

func NewMenu(
	in io.Reader,
	out io.Writer,
	players PlayerReader,
	predictions PredictionClient,
	recorder EventRecorder,
	windowSeconds int,
) *Menu {
	return &Menu{
		in:          bufio.NewReader(in),
		out:         out,
		players:     players,
		predictions: predictions,
		recorder:    recorder,
		window:      windowSeconds,
		screen:      MainScreen,
	}
}

func (m *Menu) Screen() Screen {
	return m.screen
}

// Session returns a copy of the tracked state.
func (m *Menu) Session() Session {
	s := m.session
	if s.Prediction != nil {
		p := *s.Prediction
		p.Outcomes = append([]models.PredictionOutcome(nil), s.Prediction.Outcomes...)
		s.Prediction = &p
	}
	return s
}
