// Package directory is the client for the platform's membership service. It
// answers role expansion and contact lookups; the engine never stores role
// membership or addressing itself.
package directory

import (
	"context"
	"fmt"
	"strings"

	"backlot/config"
	"backlot/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type restDirectory struct {
	client *resty.Client
}

// Params holds dependencies for the directory client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the REST-backed role directory client.
func New(params Params) service.RoleDirectory {
	cfg := params.Config.Directory

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetTimeout(cfg.Timeout)

	return &restDirectory{client: client}
}

type membersResponse struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

// UsersInRoles returns the ids of tenant members holding any of the given
// roles. Unknown roles contribute nothing.
func (d *restDirectory) UsersInRoles(ctx context.Context, tenantID uuid.UUID, roles []string) ([]uuid.UUID, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	var result membersResponse

	resp, err := d.client.R().
		SetContext(ctx).
		SetPathParam("tenantID", tenantID.String()).
		SetQueryParam("roles", strings.Join(roles, ",")).
		SetResult(&result).
		Get("/v1/tenants/{tenantID}/members")
	if err != nil {
		return nil, fmt.Errorf("failed to query role membership: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("directory returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return result.UserIDs, nil
}

type contactResponse struct {
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	PushTokens []string `json:"push_tokens"`
}

// ContactFor resolves a user's addressing info for channel dispatch.
func (d *restDirectory) ContactFor(ctx context.Context, tenantID, userID uuid.UUID) (*service.Contact, error) {
	var result contactResponse

	resp, err := d.client.R().
		SetContext(ctx).
		SetPathParam("tenantID", tenantID.String()).
		SetPathParam("userID", userID.String()).
		SetResult(&result).
		Get("/v1/tenants/{tenantID}/users/{userID}/contact")
	if err != nil {
		return nil, fmt.Errorf("failed to query user contact: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("directory returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return &service.Contact{
		Email:      result.Email,
		Phone:      result.Phone,
		PushTokens: result.PushTokens,
	}, nil
}

// Module provides the directory FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
