package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	AuthorizedPage = "<html><body onload='setTimeout(function() { window.close() }, 0);'>" +
		"<h1>Authorization complete. You may close this window.</h1></body></html>"
	NoCodePage = "<html><body><h1>Error: No authorization code received.</h1></body></html>"
)

func WriteHTMLPage(w http.ResponseWriter, r *http.Request, code int, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(page))
}

func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Debugf("%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
