package provider

import (
	"context"
	"log/slog"

	"backlot/config"
	"backlot/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the provider set, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewChannelProviders assembles the enabled channel gateways from
// configuration. The in-app channel is always on; the external channels join
// only when their gateway is configured, so a deployment without an SMS
// contract simply never dispatches SMS.
func NewChannelProviders(params Params) ([]service.ChannelProvider, error) {
	providers := []service.ChannelProvider{NewInAppProvider()}

	cfg := params.Config.Providers
	if cfg == nil {
		params.Logger.Info("No channel gateways configured, in-app only")

		return providers, nil
	}

	if cfg.Email != nil && cfg.Email.BaseURL != "" {
		providers = append(providers, NewEmailProvider(cfg.Email))
		params.Logger.Info("Email gateway enabled", slog.String("base_url", cfg.Email.BaseURL))
	}

	if cfg.SMS != nil && cfg.SMS.BaseURL != "" {
		providers = append(providers, NewSMSProvider(cfg.SMS))
		params.Logger.Info("SMS gateway enabled", slog.String("base_url", cfg.SMS.BaseURL))
	}

	if cfg.Push != nil && cfg.Push.CredentialsPath != "" {
		push, err := NewPushProvider(params.Ctx, cfg.Push)
		if err != nil {
			return nil, err
		}
		providers = append(providers, push)
		params.Logger.Info("Push gateway enabled", slog.String("provider", push.Name()))
	}

	return providers, nil
}

// Module provides the channel provider FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChannelProviders),
)
