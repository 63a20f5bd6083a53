package notification

import (
	"context"
	"twitch_prediction_manager/internal/models"
)

type PredictionJournal interface {
	AddPredictionEvent(ctx context.Context, event models.PredictionEvent) error
	GetLastOpenPrediction(ctx context.Context) (*models.PredictionEvent, error)
}

type Announcer interface {
	SendMessage(ctx context.Context, text string) error
}

// PredictionNotificationService is optional plumbing around the menu: either
// sink may be nil, and a failing sink never blocks the prediction flow.
type PredictionNotificationService struct {
	journal   PredictionJournal
	announcer Announcer
}

func NewPredictionNotificationService(journal PredictionJournal, announcer Announcer) *PredictionNotificationService {
	return &PredictionNotificationService{
		journal:   journal,
		announcer: announcer,
	}
}
