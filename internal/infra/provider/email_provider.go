package provider

import (
	"context"
	"fmt"

	"backlot/config"
	"backlot/internal/domain/entity"
	"backlot/internal/domain/service"

	"github.com/go-resty/resty/v2"
)

const defaultEmailMaxRetries = 5

// emailSendRequest is the payload the email gateway expects.
type emailSendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Ref     string `json:"ref"`
}

// emailSendResponse carries the gateway's correlation id, echoed back later
// on delivery and engagement callbacks.
type emailSendResponse struct {
	MessageID string `json:"message_id"`
}

// emailProvider delivers email through the platform's REST mail gateway.
type emailProvider struct {
	client     *resty.Client
	from       string
	maxRetries int
}

// NewEmailProvider creates the REST-backed email channel provider.
func NewEmailProvider(cfg *config.EmailProvider) service.ChannelProvider {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetTimeout(cfg.Timeout)

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultEmailMaxRetries
	}

	return &emailProvider{
		client:     client,
		from:       cfg.FromAddress,
		maxRetries: maxRetries,
	}
}

// Channel names the channel this provider serves.
func (p *emailProvider) Channel() entity.Channel {
	return entity.ChannelEmail
}

// Name identifies the concrete provider for correlation and analytics.
func (p *emailProvider) Name() string {
	return "mailgateway"
}

// MaxRetries is the provider-specific retry cap for failed attempts.
func (p *emailProvider) MaxRetries() int {
	return p.maxRetries
}

// Send hands the message to the mail gateway.
func (p *emailProvider) Send(ctx context.Context, msg *service.Message) (*service.SendResult, error) {
	if msg.Email == "" {
		return nil, fmt.Errorf("recipient has no email address")
	}

	var result emailSendResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(&emailSendRequest{
			From:    p.from,
			To:      msg.Email,
			Subject: msg.Notification.Title,
			Body:    msg.Notification.Message,
			Ref:     msg.Attempt.ID.String(),
		}).
		SetResult(&result).
		Post("/v1/messages")
	if err != nil {
		return nil, fmt.Errorf("failed to call mail gateway: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("mail gateway returned status %d: %s", resp.StatusCode(), resp.String())
	}

	if result.MessageID == "" {
		return nil, fmt.Errorf("mail gateway returned no message id")
	}

	return &service.SendResult{ExternalMessageID: result.MessageID}, nil
}
