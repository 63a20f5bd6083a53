package formater

import (
	"fmt"
	"strings"
	"twitch_prediction_manager/internal/models"
)

func PredictionTitle(player1, player2 string) string {
	return fmt.Sprintf("Who will win? %s vs %s", player1, player2)
}

// PredictionEventMessage renders an event as a short chat announcement.
func PredictionEventMessage(event models.PredictionEvent) string {
	switch event.Status {
	case models.PredictionActive:
		return fmt.Sprintf("Prediction started: %s", event.Title)
	case models.PredictionLocked:
		return fmt.Sprintf("Submissions locked: %s", event.Title)
	case models.PredictionResolved:
		if event.WinningOutcomeTitle != nil {
			return fmt.Sprintf("%s\n%s wins!", event.Title, *event.WinningOutcomeTitle)
		}
		return fmt.Sprintf("Prediction resolved: %s", event.Title)
	case models.PredictionCanceled:
		return fmt.Sprintf("Prediction cancelled: %s", event.Title)
	default:
		return fmt.Sprintf("%s: %s", strings.ToLower(string(event.Status)), event.Title)
	}
}
