package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	"twitch_prediction_manager/internal/models"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	DefaultCallbackPort     = 3000
	DefaultScopes           = models.ChannelManagePredictions
	DefaultPredictionWindow = 45
	DefaultAuthTimeout      = 5 * time.Minute
	DefaultHTTPTimeout      = 10 * time.Second
	DefaultIDBaseURL        = "https://id.twitch.tv"
	DefaultAPIBaseURL       = "https://api.twitch.tv"
	DefaultLogLevel         = "info"

	configFileEnv = "PREDICTIONS_CONFIG_FILE"
)

type Config struct {
	Twitch   Twitch   `toml:"twitch"`
	Score    Score    `toml:"score"`
	DB       DB       `toml:"db"`
	Telegram Telegram `toml:"telegram"`
	LogLevel string   `toml:"log_level"`
}

type Twitch struct {
	ClientID      string   `toml:"client_id"`
	ClientSecret  string   `toml:"client_secret"`
	BroadcasterID string   `toml:"broadcaster_id"`
	Scopes        string   `toml:"scopes"`
	State         string   `toml:"state"`
	CallbackPort  int      `toml:"callback_port"`
	RedirectURI   string   `toml:"redirect_uri"`
	AuthTimeout   Duration `toml:"auth_timeout"`
	HTTPTimeout   Duration `toml:"http_timeout"`
	IDBaseURL     string   `toml:"id_base_url"`
	APIBaseURL    string   `toml:"api_base_url"`
}

// Score points at the TSH output tree the player names are read from.
type Score struct {
	Folder           string `toml:"folder"`
	PredictionWindow int    `toml:"prediction_window"`
}

// Duration lets TOML files spell timeouts as "30s" or "5m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type DB struct {
	Conn string `toml:"conn"`
}

type Telegram struct {
	APIToken string `toml:"api_token"`
	ChatID   int64  `toml:"chat_id"`
}

func Defaults() Config {
	return Config{
		Twitch: Twitch{
			Scopes:       DefaultScopes,
			CallbackPort: DefaultCallbackPort,
			AuthTimeout:  Duration{DefaultAuthTimeout},
			HTTPTimeout:  Duration{DefaultHTTPTimeout},
			IDBaseURL:    DefaultIDBaseURL,
			APIBaseURL:   DefaultAPIBaseURL,
		},
		Score: Score{
			PredictionWindow: DefaultPredictionWindow,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load builds the configuration from defaults, an optional TOML file named by
// PREDICTIONS_CONFIG_FILE and the environment (.env included), in that order.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	if path := os.Getenv(configFileEnv); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, errors.Wrapf(err, "decode config file %s", path)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.Twitch.RedirectURI == "" {
		cfg.Twitch.RedirectURI = fmt.Sprintf("http://localhost:%d", cfg.Twitch.CallbackPort)
	}

	if cfg.Twitch.State == "" {
		cfg.Twitch.State = uuid.NewString()
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	setStr(&cfg.Twitch.ClientID, "TWITCH_CLIENT_ID")
	setStr(&cfg.Twitch.ClientSecret, "TWITCH_SECRET")
	setStr(&cfg.Twitch.BroadcasterID, "TWITCH_BROADCASTER_ID")
	setStr(&cfg.Twitch.Scopes, "TWITCH_SCOPES")
	setStr(&cfg.Twitch.State, "TWITCH_STATE")
	setStr(&cfg.Twitch.RedirectURI, "REDIRECT_URI")
	setStr(&cfg.Twitch.IDBaseURL, "TWITCH_ID_BASE_URL")
	setStr(&cfg.Twitch.APIBaseURL, "TWITCH_API_BASE_URL")
	setStr(&cfg.Score.Folder, "TSH_FOLDER")
	setStr(&cfg.DB.Conn, "DB_CONN")
	setStr(&cfg.Telegram.APIToken, "TELEGRAM_API_TOKEN")
	setStr(&cfg.LogLevel, "LOG_LEVEL")

	if err := setInt(&cfg.Twitch.CallbackPort, "CALLBACK_PORT"); err != nil {
		return err
	}
	if err := setInt(&cfg.Score.PredictionWindow, "PREDICTION_WINDOW"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Twitch.AuthTimeout, "TWITCH_AUTH_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Twitch.HTTPTimeout, "TWITCH_HTTP_TIMEOUT"); err != nil {
		return err
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "TELEGRAM_CHAT_ID")
		}
		cfg.Telegram.ChatID = id
	}

	return nil
}

// Validate only checks values the program itself depends on. Broadcaster and
// client ids are left to the remote API to reject.
func (c *Config) Validate() error {
	if c.Twitch.CallbackPort < 1 || c.Twitch.CallbackPort > 65535 {
		return errors.Errorf("callback port %d out of range", c.Twitch.CallbackPort)
	}
	if c.Score.PredictionWindow <= 0 {
		return errors.Errorf("prediction window must be positive, got %d", c.Score.PredictionWindow)
	}
	if c.Twitch.AuthTimeout.Duration <= 0 {
		return errors.New("auth timeout must be positive")
	}
	if c.Twitch.HTTPTimeout.Duration <= 0 {
		return errors.New("http timeout must be positive")
	}
	return nil
}

// CallbackAddr is the local address the OAuth redirect listener binds to.
func (c *Config) CallbackAddr() string {
	return fmt.Sprintf("localhost:%d", c.Twitch.CallbackPort)
}

func (c *Config) TelegramEnabled() bool {
	return c.Telegram.APIToken != "" && c.Telegram.ChatID != 0
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrap(err, key)
	}
	*dst = n
	return nil
}

func setDuration(dst *Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	if err := dst.UnmarshalText([]byte(v)); err != nil {
		return errors.Wrap(err, key)
	}
	return nil
}
