package twitch_token

import (
	"context"
	"twitch_prediction_manager/internal/models"
)

// TwitchTokenService holds the user token for the current run only. Nothing is
// stored on disk and expired tokens are not refreshed.
type TwitchTokenService struct {
	creds models.SessionCredentials
}

func NewTwitchTokenService(creds models.SessionCredentials) *TwitchTokenService {
	return &TwitchTokenService{
		creds: creds,
	}
}

func (tts *TwitchTokenService) GetCurrentToken(ctx context.Context) string {
	return tts.creds.AccessToken
}
