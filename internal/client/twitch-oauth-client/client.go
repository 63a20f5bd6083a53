package twitch_oauth_client

import (
	"net/http"
	"time"
)

var expectableErrorCode = map[int]bool{
	http.StatusBadRequest:   true,
	http.StatusUnauthorized: true,
	http.StatusForbidden:    true,
}

type TwitchOauthClient struct {
	idSchemeHost string
	client       *http.Client
}

func NewTwitchOauthClient(idSchemeHost string, timeout time.Duration) *TwitchOauthClient {
	return &TwitchOauthClient{
		idSchemeHost: idSchemeHost,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}
