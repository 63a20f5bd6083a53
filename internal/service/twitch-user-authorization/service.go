package twitch_user_authorization

import (
	"context"
	"twitch_prediction_manager/internal/config"

	twitch_oauth_client "twitch_prediction_manager/internal/client/twitch-oauth-client"
)

type BrowserOpener interface {
	Open(ctx context.Context, link string) error
}

type TwitchUserAuthorizationService struct {
	cfg               config.Twitch
	callbackAddr      string
	twitchOauthClient *twitch_oauth_client.TwitchOauthClient
	browser           BrowserOpener
}

func NewTwitchUserAuthorizationService(
	cfg config.Twitch,
	callbackAddr string,
	twitchOauthClient *twitch_oauth_client.TwitchOauthClient,
	browser BrowserOpener,
) (*TwitchUserAuthorizationService, error) {
	return &TwitchUserAuthorizationService{
		cfg:               cfg,
		callbackAddr:      callbackAddr,
		twitchOauthClient: twitchOauthClient,
		browser:           browser,
	}, nil
}
