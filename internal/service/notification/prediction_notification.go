package notification

import (
	"context"
	"time"
	"twitch_prediction_manager/internal/models"
	"twitch_prediction_manager/internal/utils/formater"

	"github.com/sirupsen/logrus"
)

func (pns *PredictionNotificationService) Record(ctx context.Context, event models.PredictionEvent) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	if pns.journal != nil {
		if err := pns.journal.AddPredictionEvent(ctx, event); err != nil {
			logrus.Errorf("could not journal prediction %s %s: %v", event.PredictionID, event.Status, err)
		}
	}

	if pns.announcer != nil {
		if err := pns.announcer.SendMessage(ctx, formater.PredictionEventMessage(event)); err != nil {
			logrus.Errorf("could not announce prediction %s %s: %v", event.PredictionID, event.Status, err)
		}
	}
}

// WarnAboutOpenPrediction reports a prediction a previous run left open. It is
// only reported; the menu never resumes it.
func (pns *PredictionNotificationService) WarnAboutOpenPrediction(ctx context.Context) *models.PredictionEvent {
	if pns.journal == nil {
		return nil
	}

	event, err := pns.journal.GetLastOpenPrediction(ctx)
	if err != nil {
		logrus.Errorf("could not check journal for open predictions: %v", err)
		return nil
	}

	if event != nil {
		logrus.Warnf("prediction %s (%q) is still %s from a previous run, cancel it on twitch if it is orphaned",
			event.PredictionID, event.Title, event.Status)
	}

	return event
}
