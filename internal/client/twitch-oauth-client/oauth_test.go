package twitch_oauth_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	"twitch_prediction_manager/internal/models"

	"github.com/pkg/errors"
)

func TestBuildAuthorizationURL(t *testing.T) {
	twc := NewTwitchOauthClient("https://id.twitch.tv", time.Second)

	raw := twc.BuildAuthorizationURL("client id", "http://localhost:3000", "channel:manage:predictions", "st&ate=1")

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}

	if parsed.Scheme != "https" || parsed.Host != "id.twitch.tv" || parsed.Path != "/oauth2/authorize" {
		t.Errorf("unexpected endpoint %q", raw)
	}

	want := map[string]string{
		"response_type": "code",
		"client_id":     "client id",
		"redirect_uri":  "http://localhost:3000",
		"scope":         "channel:manage:predictions",
		"state":         "st&ate=1",
	}

	query := parsed.Query()
	if len(query) != len(want) {
		t.Errorf("got %d query params, want %d: %v", len(query), len(want), query)
	}
	for key, value := range want {
		if got := query[key]; len(got) != 1 || got[0] != value {
			t.Errorf("%s = %v, want [%q]", key, got, value)
		}
	}
}

func TestExchangeCodeForToken(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantAccess  string
		wantRefresh string
		wantErr     error
	}{
		{
			name:        "access and refresh token",
			status:      http.StatusOK,
			body:        `{"access_token":"T","refresh_token":"R","expires_in":14400,"scope":["channel:manage:predictions"],"token_type":"bearer"}`,
			wantAccess:  "T",
			wantRefresh: "R",
		},
		{
			name:       "no refresh token",
			status:     http.StatusOK,
			body:       `{"access_token":"T"}`,
			wantAccess: "T",
		},
		{
			name:    "missing access token",
			status:  http.StatusOK,
			body:    `{"refresh_token":"R"}`,
			wantErr: models.ErrMissingField,
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"status":401,"message":"invalid client secret"}`,
			wantErr: models.ErrHTTPStatus,
		},
		{
			name:    "server error",
			status:  http.StatusBadGateway,
			body:    `bad gateway`,
			wantErr: models.ErrHTTPStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			twc := NewTwitchOauthClient(srv.URL, time.Second)

			creds, err := twc.ExchangeCodeForToken(context.Background(), "cid", "secret", "http://localhost:3000", "ABC123")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if creds.AccessToken != tt.wantAccess || creds.RefreshToken != tt.wantRefresh {
				t.Errorf("got (%q, %q), want (%q, %q)", creds.AccessToken, creds.RefreshToken, tt.wantAccess, tt.wantRefresh)
			}
		})
	}
}

func TestExchangeCodeForTokenRequest(t *testing.T) {
	var (
		gotMethod, gotPath, gotContentType string
		gotForm                            url.Values
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotForm = r.PostForm
		_, _ = w.Write([]byte(`{"access_token":"T"}`))
	}))
	defer srv.Close()

	twc := NewTwitchOauthClient(srv.URL, time.Second)

	if _, err := twc.ExchangeCodeForToken(context.Background(), "cid", "secret", "http://localhost:3000", "ABC123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/oauth2/token" {
		t.Errorf("request = %s %s, want POST /oauth2/token", gotMethod, gotPath)
	}
	if !strings.HasPrefix(gotContentType, "application/x-www-form-urlencoded") {
		t.Errorf("Content-Type = %q", gotContentType)
	}

	want := map[string]string{
		"client_id":     "cid",
		"client_secret": "secret",
		"grant_type":    "authorization_code",
		"code":          "ABC123",
		"redirect_uri":  "http://localhost:3000",
	}
	for key, value := range want {
		if got := gotForm.Get(key); got != value {
			t.Errorf("form %s = %q, want %q", key, got, value)
		}
	}
}
