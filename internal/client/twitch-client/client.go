package twitch_client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"twitch_prediction_manager/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type TokenProvider interface {
	GetCurrentToken(ctx context.Context) string
}

type TwitchClient struct {
	apiSchemeHost string
	clientID      string
	broadcasterID string
	tokens        TokenProvider
	client        *http.Client
}

func NewTwitchClient(apiSchemeHost, clientID, broadcasterID string, tokens TokenProvider, timeout time.Duration) *TwitchClient {
	return &TwitchClient{
		apiSchemeHost: apiSchemeHost,
		clientID:      clientID,
		broadcasterID: broadcasterID,
		tokens:        tokens,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (twc *TwitchClient) authorize(ctx context.Context, req *http.Request) {
	req.Header.Add("Client-Id", twc.clientID)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", twc.tokens.GetCurrentToken(ctx)))
}

// do sends the request and returns the body of a response with an accepted
// status; every other status becomes a *models.TwitchAPIError.
func (twc *TwitchClient) do(req *http.Request, operation string, accepted func(int) bool) ([]byte, error) {
	resp, err := twc.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, operation)
	}

	defer resp.Body.Close()

	readedResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, operation)
	}

	if !accepted(resp.StatusCode) {
		apiErr := &models.TwitchAPIError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
		}

		var errResp models.TwitchErrorResponse
		if jsoniter.Unmarshal(readedResp, &errResp) == nil {
			apiErr.Message = errResp.Message
		}

		return nil, apiErr
	}

	return readedResp, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code <= 299
}

func isOK(code int) bool {
	return code == http.StatusOK
}
