package models

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNoAuthorizationCode = errors.New("no authorization code received")
	ErrHTTPStatus          = errors.New("unexpected http status")
	ErrMissingField        = errors.New("missing field in response")
)

// TwitchErrorResponse is the error body helix and id.twitch.tv return.
type TwitchErrorResponse struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// TwitchAPIError means the provider answered and rejected the call, as opposed
// to the request never completing.
type TwitchAPIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *TwitchAPIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s failed with status code %d: %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s failed with status code %d", e.Operation, e.StatusCode)
}
