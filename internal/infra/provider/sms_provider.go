package provider

import (
	"context"
	"fmt"

	"backlot/config"
	"backlot/internal/domain/entity"
	"backlot/internal/domain/service"

	"github.com/go-resty/resty/v2"
)

const defaultSMSMaxRetries = 3

// smsSendRequest is the payload the SMS gateway expects.
type smsSendRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	Ref  string `json:"ref"`
}

// smsSendResponse carries the gateway's correlation id.
type smsSendResponse struct {
	MessageID string `json:"message_id"`
}

// smsProvider delivers SMS through the platform's REST SMS gateway.
type smsProvider struct {
	client     *resty.Client
	from       string
	maxRetries int
}

// NewSMSProvider creates the REST-backed SMS channel provider.
func NewSMSProvider(cfg *config.SMSProvider) service.ChannelProvider {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetTimeout(cfg.Timeout)

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultSMSMaxRetries
	}

	return &smsProvider{
		client:     client,
		from:       cfg.FromNumber,
		maxRetries: maxRetries,
	}
}

// Channel names the channel this provider serves.
func (p *smsProvider) Channel() entity.Channel {
	return entity.ChannelSMS
}

// Name identifies the concrete provider for correlation and analytics.
func (p *smsProvider) Name() string {
	return "smsgateway"
}

// MaxRetries is the provider-specific retry cap for failed attempts.
func (p *smsProvider) MaxRetries() int {
	return p.maxRetries
}

// Send hands the message to the SMS gateway. SMS has no subject line so only
// the notification message is sent.
func (p *smsProvider) Send(ctx context.Context, msg *service.Message) (*service.SendResult, error) {
	if msg.Phone == "" {
		return nil, fmt.Errorf("recipient has no phone number")
	}

	var result smsSendResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(&smsSendRequest{
			From: p.from,
			To:   msg.Phone,
			Text: msg.Notification.Message,
			Ref:  msg.Attempt.ID.String(),
		}).
		SetResult(&result).
		Post("/v1/sms")
	if err != nil {
		return nil, fmt.Errorf("failed to call SMS gateway: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("SMS gateway returned status %d: %s", resp.StatusCode(), resp.String())
	}

	if result.MessageID == "" {
		return nil, fmt.Errorf("SMS gateway returned no message id")
	}

	return &service.SendResult{ExternalMessageID: result.MessageID}, nil
}
