package twitch_handler

import "twitch_prediction_manager/internal/models"

type CallbackReceiver func(callback models.AuthorizationCallback)

type TwitchHandler struct {
	receive CallbackReceiver
}

func NewTwitchHandler(receive CallbackReceiver) *TwitchHandler {
	return &TwitchHandler{
		receive: receive,
	}
}
