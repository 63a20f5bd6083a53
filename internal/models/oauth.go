package models

// ChannelManagePredictions is the only scope prediction management needs.
const ChannelManagePredictions = "channel:manage:predictions"

type TwitchOautGetUserTokenResponse struct {
	AccessToken  string   `json:"access_token"`
	ExpiresIn    int32    `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"`
	Scope        []string `json:"scope"`
	TokenType    string   `json:"token_type"`
}

// SessionCredentials live only for the current run.
type SessionCredentials struct {
	AccessToken  string
	RefreshToken string
}

// AuthorizationCallback is what the provider redirect carried back to the local listener.
type AuthorizationCallback struct {
	Code  string
	State string
	Scope string
}
