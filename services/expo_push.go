package services

import (
	"context"

	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
	"go.uber.org/zap"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
)

// ExpoPushSender delivers pushes through Expo's gateway. Best-effort: no
// delivery receipt is consumed and failures are reported, not retried.
type ExpoPushSender struct {
	Client *expo.PushClient
	Logger *zap.SugaredLogger
}

// NewExpoPushSender builds a sender over the default Expo push endpoint.
func NewExpoPushSender(logger *zap.SugaredLogger) *ExpoPushSender {
	return &ExpoPushSender{
		Client: expo.NewPushClient(nil),
		Logger: logger,
	}
}

// Send publishes one push message to the given Expo token.
func (es *ExpoPushSender) Send(_ context.Context, token string, notification models.Notification) error {
	pushToken, err := expo.NewExponentPushToken(token)
	if err != nil {
		return err
	}

	response, err := es.Client.Publish(&expo.PushMessage{
		To:       []expo.ExponentPushToken{pushToken},
		Title:    notification.Title,
		Body:     notification.Body,
		Sound:    "default",
		Priority: expo.DefaultPriority,
		Data: map[string]string{
			"type":          notification.Type,
			"matchedUserId": notification.MatchedUserID,
		},
	})
	if err != nil {
		return err
	}
	return response.ValidateResponse()
}
