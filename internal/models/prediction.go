package models

import "time"

type PredictionStatus string

var (
	PredictionActive   PredictionStatus = "ACTIVE"
	PredictionLocked   PredictionStatus = "LOCKED"
	PredictionResolved PredictionStatus = "RESOLVED"
	PredictionCanceled PredictionStatus = "CANCELED"
)

const PlaceholderPlayerName = "Player"

type CreatePredictionReq struct {
	BroadcasterID    string                 `json:"broadcaster_id"`
	Title            string                 `json:"title"`
	Outcomes         []PredictionOutcomeReq `json:"outcomes"`
	PredictionWindow int                    `json:"prediction_window"`
}

type PredictionOutcomeReq struct {
	Title string `json:"title"`
}

type PredictionsResponse struct {
	Data []Prediction `json:"data"`
}

type Prediction struct {
	ID               string              `json:"id"`                 // Prediction ID
	BroadcasterID    string              `json:"broadcaster_id"`     // ID of the broadcaster that created the prediction
	Title            string              `json:"title"`              // Question viewers are predicting on
	WinningOutcomeID string              `json:"winning_outcome_id"` // Set once the prediction is resolved
	Outcomes         []PredictionOutcome `json:"outcomes"`           // Exactly two for a match prediction
	PredictionWindow int                 `json:"prediction_window"`  // Seconds viewers may predict before lock
	Status           PredictionStatus    `json:"status"`             // ACTIVE, LOCKED, RESOLVED or CANCELED
	CreatedAt        time.Time           `json:"created_at"`         // UTC timestamp
}

type PredictionOutcome struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// PredictionEvent is a status change worth journaling or announcing.
type PredictionEvent struct {
	PredictionID        string           `db:"prediction_id"`
	Title               string           `db:"title"`
	Status              PredictionStatus `db:"status"`
	WinningOutcomeID    *string          `db:"winning_outcome_id"`
	WinningOutcomeTitle *string          `db:"winning_outcome_title"`
	CreatedAt           time.Time        `db:"created_at"`
}
