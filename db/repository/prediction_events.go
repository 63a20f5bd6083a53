package repository

import (
	"context"
	"database/sql"
	"time"
	"twitch_prediction_manager/internal/models"
)

func (dbr *DBRepository) AddPredictionEvent(ctx context.Context, event models.PredictionEvent) (err error) {

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	query := `
		insert into prediction_events (prediction_id, title, status, winning_outcome_id, winning_outcome_title, created_at)
			values ($1, $2, $3, $4, $5, $6);
	`

	_, err = dbr.db.ExecContext(ctx, query,
		event.PredictionID, event.Title, event.Status, event.WinningOutcomeID, event.WinningOutcomeTitle, event.CreatedAt)

	return
}

// GetLastOpenPrediction returns the newest prediction whose last journaled
// status is still ACTIVE or LOCKED, nil if there is none.
func (dbr *DBRepository) GetLastOpenPrediction(ctx context.Context) (*models.PredictionEvent, error) {

	query := `
		select
			le.prediction_id,
			le.title,
			le.status,
			le.winning_outcome_id,
			le.winning_outcome_title,
			le.created_at
		from (
			select distinct on (pe.prediction_id)
				pe.prediction_id,
				pe.title,
				pe.status,
				pe.winning_outcome_id,
				pe.winning_outcome_title,
				pe.created_at
			from prediction_events pe
			order by pe.prediction_id, pe.created_at desc
		) le
		where le.status in ($1, $2)
		order by le.created_at desc
		limit 1;
	`

	var event models.PredictionEvent
	err := dbr.db.GetContext(ctx, &event, query, models.PredictionActive, models.PredictionLocked)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &event, nil
}
