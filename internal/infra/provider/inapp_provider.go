package provider

import (
	"context"

	"backlot/internal/domain/entity"
	"backlot/internal/domain/service"
)

// inAppProvider is the internal channel. The notification row itself is the
// delivery, so the handoff completes synchronously and the attempt can move
// straight to delivered.
type inAppProvider struct{}

// NewInAppProvider creates the in-app channel provider.
func NewInAppProvider() service.ChannelProvider {
	return &inAppProvider{}
}

// Channel names the channel this provider serves.
func (p *inAppProvider) Channel() entity.Channel {
	return entity.ChannelInApp
}

// Name identifies the concrete provider for correlation and analytics.
func (p *inAppProvider) Name() string {
	return "inapp"
}

// MaxRetries is zero: an in-app write that failed its transaction never left
// a failed attempt behind to retry.
func (p *inAppProvider) MaxRetries() int {
	return 0
}

// Send completes immediately. The attempt id doubles as the correlation id
// so read receipts from the client can advance the state machine.
func (p *inAppProvider) Send(_ context.Context, msg *service.Message) (*service.SendResult, error) {
	return &service.SendResult{
		ExternalMessageID: msg.Attempt.ID.String(),
		Delivered:         true,
	}, nil
}
