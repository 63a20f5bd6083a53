package twitch_user_authorization

import (
	"context"
	"twitch_prediction_manager/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Authorize runs the whole authorization code flow and returns the session credentials.
func (tuas *TwitchUserAuthorizationService) Authorize(ctx context.Context) (*models.SessionCredentials, error) {

	callback, err := tuas.RunInteractiveAuthorization(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "RunInteractiveAuthorization")
	}

	creds, err := tuas.twitchOauthClient.ExchangeCodeForToken(ctx,
		tuas.cfg.ClientID, tuas.cfg.ClientSecret, tuas.cfg.RedirectURI, callback.Code)
	if err != nil {
		return nil, errors.Wrap(err, "ExchangeCodeForToken")
	}

	logrus.Info("twitch user token received")

	return creds, nil
}

// RunInteractiveAuthorization sends the user to the consent page and waits for
// the redirect to come back to the local listener.
func (tuas *TwitchUserAuthorizationService) RunInteractiveAuthorization(ctx context.Context) (models.AuthorizationCallback, error) {

	link := tuas.twitchOauthClient.BuildAuthorizationURL(tuas.cfg.ClientID, tuas.cfg.RedirectURI, tuas.cfg.Scopes, tuas.cfg.State)

	listener := NewCallbackListener(tuas.callbackAddr)
	if err := listener.Start(); err != nil {
		return models.AuthorizationCallback{}, err
	}

	logrus.Infof("local server started at http://%s/", listener.Addr())

	if err := tuas.browser.Open(ctx, link); err != nil {
		logrus.Warnf("could not open browser: %v", err)
		logrus.Infof("open this link to authorize: %s", link)
	}

	callback, err := listener.Wait(ctx, tuas.cfg.AuthTimeout.Duration)
	if err != nil {
		return models.AuthorizationCallback{}, err
	}

	// state is only reported, a mismatch does not abort the flow
	if callback.State != tuas.cfg.State {
		logrus.Warnf("authorization state mismatch: sent %q, got %q", tuas.cfg.State, callback.State)
	}

	return callback, nil
}
