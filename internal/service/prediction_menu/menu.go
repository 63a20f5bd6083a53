package prediction_menu

import (
	"context"
	"fmt"
	"io"
	"strings"
	"twitch_prediction_manager/internal/models"
	"twitch_prediction_manager/internal/utils/formater"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Run loads the player names and serves menus until Exit or end of input.
func (m *Menu) Run(ctx context.Context) error {
	m.reloadPlayers()

	for {
		m.render()

		// lines of any length are read whole, a long paste is just invalid input
		line, err := m.in.ReadString('\n')
		if line == "" && err != nil {
			if errors.Is(err, io.EOF) {
				m.println("\nExiting...")
				return nil
			}
			return errors.Wrap(err, "read menu input")
		}

		if exit := m.Step(ctx, line); exit {
			return nil
		}
	}
}

// Step applies one line of input and reports whether the user chose to exit.
func (m *Menu) Step(ctx context.Context, input string) (exit bool) {
	transition, position := parseChoice(m.screen, m.session, strings.TrimSpace(input))

	switch transition {
	case TransitionReload:
		m.reloadPlayers()
		m.printf("Player data reloaded: %s vs %s\n", m.session.Players[0], m.session.Players[1])

	case TransitionStart:
		m.startPrediction(ctx)

	case TransitionLock:
		m.lockPrediction(ctx)

	case TransitionResolve:
		m.resolvePrediction(ctx, position)
		m.screen = MainScreen

	case TransitionCancel:
		m.cancelPrediction(ctx)
		m.screen = MainScreen

	case TransitionReturnToMain:
		m.screen = MainScreen

	case TransitionExit:
		m.println("Exiting...")
		return true

	default:
		if m.screen == ControlScreen {
			m.println("Invalid input.")
		} else {
			m.println("Invalid option. Please try again.")
		}
	}

	return false
}

func (m *Menu) render() {
	players := m.session.Players

	switch m.screen {
	case ControlScreen:
		m.println("\n--- Prediction Control ---")
		if m.session.State() == PredictionOpen {
			m.println("0. Lock Submissions")
		}
		m.printf("1. Set Winner: %s\n", players[0])
		m.printf("2. Set Winner: %s\n", players[1])
		m.println("3. Cancel Prediction")
		m.println("4. Exit to Main Menu")
		m.printf("Choose: ")

	default:
		m.println("\nTwitch Prediction Menu\n========================")
		m.println("0. Reload Player Data")
		m.printf("1. Start Prediction (%s vs %s)\n", players[0], players[1])
		m.println("2. Cancel Prediction")
		m.println("3. Exit")
		m.printf("Select an option (0, 1, 2, 3): ")
	}
}

func (m *Menu) reloadPlayers() {
	m.session.Players = [2]string{
		m.players.ReadPlayerName(1),
		m.players.ReadPlayerName(2),
	}
}

func (m *Menu) startPrediction(ctx context.Context) {
	players := m.session.Players
	title := formater.PredictionTitle(players[0], players[1])

	prediction, err := m.predictions.CreatePrediction(ctx, title, players, m.window)
	if err != nil {
		logrus.Errorf("create prediction: %v", err)
		m.printf("Error: %s\n", errorMessage(err))
		return
	}

	if prediction.Title == "" {
		prediction.Title = title
	}

	if previous := m.session.Prediction; previous != nil {
		logrus.Warnf("prediction %s is no longer tracked, prediction %s replaces it", previous.ID, prediction.ID)
	}

	m.session.track(prediction)
	m.screen = ControlScreen
	m.println("Prediction started!")

	m.record(ctx, models.PredictionActive, nil, nil)
}

func (m *Menu) lockPrediction(ctx context.Context) {
	if err := m.predictions.LockPrediction(ctx, m.session.Prediction.ID); err != nil {
		logrus.Errorf("lock prediction %s: %v", m.session.Prediction.ID, err)
		m.println("Failed to lock submissions.")
		return
	}

	m.session.Locked = true
	m.println("Submissions locked.")

	m.record(ctx, models.PredictionLocked, nil, nil)
}

func (m *Menu) resolvePrediction(ctx context.Context, position int) {
	outcome := m.session.Prediction.Outcomes[position-1]
	winner := m.session.Players[position-1]

	if err := m.predictions.ResolvePrediction(ctx, m.session.Prediction.ID, outcome.ID); err != nil {
		logrus.Errorf("resolve prediction %s: %v", m.session.Prediction.ID, err)
		m.println("Failed to resolve prediction.")
		return
	}

	m.printf("Winner Selected: %s wins!\n", winner)

	m.record(ctx, models.PredictionResolved, &outcome.ID, &winner)
	m.session.clear()
}

func (m *Menu) cancelPrediction(ctx context.Context) {
	if m.session.Prediction == nil {
		m.println("No active prediction to cancel.")
		return
	}

	if err := m.predictions.CancelPrediction(ctx, m.session.Prediction.ID); err != nil {
		logrus.Errorf("cancel prediction %s: %v", m.session.Prediction.ID, err)
		m.println("Failed to cancel prediction.")
		return
	}

	m.println("Prediction cancelled.")

	m.record(ctx, models.PredictionCanceled, nil, nil)
	m.session.clear()
}

func (m *Menu) record(ctx context.Context, status models.PredictionStatus, winningOutcomeID, winningOutcomeTitle *string) {
	if m.recorder == nil {
		return
	}

	m.recorder.Record(ctx, models.PredictionEvent{
		PredictionID:        m.session.Prediction.ID,
		Title:               m.session.Prediction.Title,
		Status:              status,
		WinningOutcomeID:    winningOutcomeID,
		WinningOutcomeTitle: winningOutcomeTitle,
	})
}

func (m *Menu) println(a ...interface{}) {
	_, _ = fmt.Fprintln(m.out, a...)
}

func (m *Menu) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(m.out, format, a...)
}

// errorMessage prefers the provider's own wording when twitch rejected the call.
func errorMessage(err error) string {
	var apiErr *models.TwitchAPIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
