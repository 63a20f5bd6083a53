package twitch_oauth_client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"twitch_prediction_manager/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// BuildAuthorizationURL only builds the link; the browser does the request.
func (twc *TwitchOauthClient) BuildAuthorizationURL(clientID, redirectURI, scopes, state string) string {
	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", clientID)
	query.Set("redirect_uri", redirectURI)
	query.Set("scope", scopes)
	query.Set("state", state)

	return twc.idSchemeHost + "/oauth2/authorize?" + query.Encode()
}

func (twc *TwitchOauthClient) ExchangeCodeForToken(ctx context.Context,
	clientID, clientSecret, redirectURI, code string) (data *models.SessionCredentials, err error) {

	form := url.Values{}
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, twc.idSchemeHost+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := twc.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token request")
	}

	defer resp.Body.Close()

	readedResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if expectableErrorCode[resp.StatusCode] {
			var errResp models.TwitchErrorResponse
			if jsoniter.Unmarshal(readedResp, &errResp) == nil && errResp.Message != "" {
				return nil, errors.Wrapf(models.ErrHTTPStatus, "token exchange failed with status code %d: %s", resp.StatusCode, errResp.Message)
			}
		}

		return nil, errors.Wrapf(models.ErrHTTPStatus, "token exchange failed with status code %d", resp.StatusCode)
	}

	var tokenInfo models.TwitchOautGetUserTokenResponse
	err = jsoniter.Unmarshal(readedResp, &tokenInfo)
	if err != nil {
		return nil, errors.Wrap(err, "decode token response")
	}

	if tokenInfo.AccessToken == "" {
		return nil, errors.Wrap(models.ErrMissingField, "access_token")
	}

	data = &models.SessionCredentials{
		AccessToken:  tokenInfo.AccessToken,
		RefreshToken: tokenInfo.RefreshToken,
	}

	return
}
