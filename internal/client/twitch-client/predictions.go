package twitch_client

import (
	"bytes"
	"context"
	"net/http"
	"twitch_prediction_manager/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const predictionsPath = "/helix/predictions"

func (twc *TwitchClient) CreatePrediction(ctx context.Context, title string, outcomes [2]string, windowSeconds int) (data *models.Prediction, err error) {

	reqDTO := models.CreatePredictionReq{
		BroadcasterID: twc.broadcasterID,
		Title:         title,
		Outcomes: []models.PredictionOutcomeReq{
			{Title: outcomes[0]},
			{Title: outcomes[1]},
		},
		PredictionWindow: windowSeconds,
	}

	body, err := jsoniter.Marshal(reqDTO)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, twc.apiSchemeHost+predictionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	twc.authorize(ctx, req)
	req.Header.Add("Content-Type", "application/json")

	readedResp, err := twc.do(req, "create prediction", isSuccess)
	if err != nil {
		return nil, err
	}

	var predictions models.PredictionsResponse
	err = jsoniter.Unmarshal(readedResp, &predictions)
	if err != nil {
		return nil, errors.Wrap(err, "decode prediction")
	}

	if len(predictions.Data) < 1 {
		return nil, errors.Wrap(models.ErrMissingField, "data[0]")
	}

	prediction := predictions.Data[0]
	if prediction.ID == "" {
		return nil, errors.Wrap(models.ErrMissingField, "data[0].id")
	}

	if len(prediction.Outcomes) != 2 {
		return nil, errors.Wrapf(models.ErrMissingField, "expected 2 outcomes, got %d", len(prediction.Outcomes))
	}

	for i, outcome := range prediction.Outcomes {
		if outcome.ID == "" {
			return nil, errors.Wrapf(models.ErrMissingField, "data[0].outcomes[%d].id", i)
		}
	}

	data = &prediction

	return
}

func (twc *TwitchClient) LockPrediction(ctx context.Context, predictionID string) error {
	return twc.endPrediction(ctx, "lock prediction", predictionID, models.PredictionLocked, "")
}

func (twc *TwitchClient) ResolvePrediction(ctx context.Context, predictionID, winningOutcomeID string) error {
	return twc.endPrediction(ctx, "resolve prediction", predictionID, models.PredictionResolved, winningOutcomeID)
}

func (twc *TwitchClient) CancelPrediction(ctx context.Context, predictionID string) error {
	return twc.endPrediction(ctx, "cancel prediction", predictionID, models.PredictionCanceled, "")
}

func (twc *TwitchClient) endPrediction(ctx context.Context, operation, predictionID string,
	status models.PredictionStatus, winningOutcomeID string) error {

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, twc.apiSchemeHost+predictionsPath, nil)
	if err != nil {
		return err
	}

	query := req.URL.Query()
	query.Add("broadcaster_id", twc.broadcasterID)
	query.Add("id", predictionID)
	query.Add("status", string(status))
	if winningOutcomeID != "" {
		query.Add("winning_outcome_id", winningOutcomeID)
	}
	req.URL.RawQuery = query.Encode()

	twc.authorize(ctx, req)

	_, err = twc.do(req, operation, isOK)

	return err
}
