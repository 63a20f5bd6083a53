package main

import (
	"context"
	"fmt"
	"os"

	"twitch_prediction_manager/internal/config"
	"twitch_prediction_manager/internal/models"

	"twitch_prediction_manager/internal/client/browser"
	fileClient "twitch_prediction_manager/internal/client/file"
	telegramClient "twitch_prediction_manager/internal/client/telegram-client"
	twitchClient "twitch_prediction_manager/internal/client/twitch-client"
	twitchOauthClient "twitch_prediction_manager/internal/client/twitch-oauth-client"

	notificationService "twitch_prediction_manager/internal/service/notification"
	predictionMenu "twitch_prediction_manager/internal/service/prediction_menu"
	twitchUserAuthservice "twitch_prediction_manager/internal/service/twitch-user-authorization"
	twitchTokenService "twitch_prediction_manager/internal/service/twitch_token"

	dbRepository "twitch_prediction_manager/db/repository"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("cannot load config: %v", err)
	}

	if err = cfg.Validate(); err != nil {
		logrus.Fatalf("invalid config: %v", err)
	}

	setupLogger(cfg.LogLevel)

	var (
		oauthClient = twitchOauthClient.NewTwitchOauthClient(cfg.Twitch.IDBaseURL, cfg.Twitch.HTTPTimeout.Duration)
		fClient     = fileClient.NewFileClient(cfg.Score.Folder)
	)

	tuas, err := twitchUserAuthservice.NewTwitchUserAuthorizationService(cfg.Twitch, cfg.CallbackAddr(), oauthClient, browser.NewLauncher())
	if err != nil {
		logrus.Fatalf("cannot init twitchUserAuthservice: %v", err)
	}

	creds, err := tuas.Authorize(ctx)
	if err != nil {
		if errors.Is(err, models.ErrNoAuthorizationCode) {
			fmt.Println("No authorization code received.")
			os.Exit(1)
		}
		logrus.Fatalf("authorization failed: %v", err)
	}

	tts := twitchTokenService.NewTwitchTokenService(*creds)

	twClient := twitchClient.NewTwitchClient(cfg.Twitch.APIBaseURL, cfg.Twitch.ClientID, cfg.Twitch.BroadcasterID, tts, cfg.Twitch.HTTPTimeout.Duration)

	var (
		journal   notificationService.PredictionJournal
		announcer notificationService.Announcer
	)

	if cfg.DB.Conn != "" {
		dbRepo, err := dbRepository.Connect(ctx, cfg.DB.Conn)
		if err != nil {
			logrus.Errorf("prediction journal disabled: %v", err)
		} else {
			defer dbRepo.Close()
			journal = dbRepo
		}
	}

	if cfg.TelegramEnabled() {
		tgClient, err := telegramClient.NewTelegramClient(cfg.Telegram.APIToken, cfg.Telegram.ChatID)
		if err != nil {
			logrus.Errorf("telegram announcements disabled: %v", err)
		} else {
			announcer = tgClient
		}
	}

	pns := notificationService.NewPredictionNotificationService(journal, announcer)
	pns.WarnAboutOpenPrediction(ctx)

	menu := predictionMenu.NewMenu(os.Stdin, os.Stdout, fClient, twClient, pns, cfg.Score.PredictionWindow)

	if err = menu.Run(ctx); err != nil {
		logrus.Errorf("menu stopped: %v", err)
	}
}

func setupLogger(level string) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
