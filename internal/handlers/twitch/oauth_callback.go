package twitch_handler

import (
	"net/http"
	"twitch_prediction_manager/internal/middleware"
	"twitch_prediction_manager/internal/models"

	"github.com/sirupsen/logrus"
)

// GetAuthorizationCode handles the redirect from id.twitch.tv back to the local listener.
func (twh *TwitchHandler) GetAuthorizationCode(w http.ResponseWriter, r *http.Request) {

	query := r.URL.Query()
	code := query.Get("code")

	if code == "" {
		logrus.Errorf("authorization redirect without code, error: %q, description: %q",
			query.Get("error"), query.Get("error_description"))
		middleware.WriteHTMLPage(w, r, http.StatusBadRequest, middleware.NoCodePage)
		return
	}

	middleware.WriteHTMLPage(w, r, http.StatusOK, middleware.AuthorizedPage)

	twh.receive(models.AuthorizationCallback{
		Code:  code,
		State: query.Get("state"),
		Scope: query.Get("scope"),
	})
}
