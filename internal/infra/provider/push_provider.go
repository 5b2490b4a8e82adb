// Package provider contains the channel gateway implementations the
// dispatcher hands messages to.
package provider

import (
	"context"
	"fmt"

	"backlot/config"
	"backlot/internal/domain/entity"
	"backlot/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const defaultPushMaxRetries = 3

// pushProvider delivers push notifications through Firebase Cloud Messaging.
type pushProvider struct {
	client     *messaging.Client
	maxRetries int
}

// NewPushProvider creates the FCM-backed push channel provider.
func NewPushProvider(ctx context.Context, cfg *config.PushProvider) (service.ChannelProvider, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultPushMaxRetries
	}

	return &pushProvider{
		client:     client,
		maxRetries: maxRetries,
	}, nil
}

// Channel names the channel this provider serves.
func (p *pushProvider) Channel() entity.Channel {
	return entity.ChannelPush
}

// Name identifies the concrete provider for correlation and analytics.
func (p *pushProvider) Name() string {
	return "fcm"
}

// MaxRetries is the provider-specific retry cap for failed attempts.
func (p *pushProvider) MaxRetries() int {
	return p.maxRetries
}

// Send fans the message out to every registered device token. A recipient
// with several devices still counts as one delivery attempt; the handoff
// succeeds when at least one device accepted the message.
func (p *pushProvider) Send(ctx context.Context, msg *service.Message) (*service.SendResult, error) {
	if len(msg.PushTokens) == 0 {
		return nil, fmt.Errorf("recipient has no registered device tokens")
	}

	data := map[string]string{
		"notification_id": msg.Notification.ID.String(),
		"module":          string(msg.Notification.Module),
		"event":           msg.Notification.Event,
	}
	if msg.Notification.ActionURL != "" {
		data["action_url"] = msg.Notification.ActionURL
	}

	notification := &messaging.Notification{
		Title: msg.Notification.Title,
		Body:  msg.Notification.Message,
	}

	// FCM returns a server message id only for single sends; multicast
	// responses are correlated through the attempt id instead.
	if len(msg.PushTokens) == 1 {
		messageID, err := p.client.Send(ctx, &messaging.Message{
			Token:        msg.PushTokens[0],
			Notification: notification,
			Data:         data,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to send push notification: %w", err)
		}

		return &service.SendResult{ExternalMessageID: messageID}, nil
	}

	response, err := p.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       msg.PushTokens,
		Notification: notification,
		Data:         data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast push notification: %w", err)
	}

	if response.SuccessCount == 0 {
		return nil, fmt.Errorf("all %d device tokens rejected the message", response.FailureCount)
	}

	return &service.SendResult{ExternalMessageID: msg.Attempt.ID.String()}, nil
}
