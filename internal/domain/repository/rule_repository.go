package repository

import (
	"context"
	"errors"

	"backlot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRuleNotFound is returned when a tenant rule is not found.
var ErrRuleNotFound = errors.New("tenant rule not found")

// RuleRepository persists tenant notification routing rules. The engine only
// reads rules at dispatch time; the write methods serve the external admin
// surface and seeding.
type RuleRepository interface {
	// FindEnabledRules retrieves the enabled rules for (tenant, module, event),
	// sorted by priority descending.
	FindEnabledRules(ctx context.Context, tenantID uuid.UUID, module entity.Module, event string) ([]*entity.TenantRule, error)

	// FindRuleByID retrieves one rule.
	FindRuleByID(ctx context.Context, id uuid.UUID) (*entity.TenantRule, error)

	// CreateRule persists a new rule.
	CreateRule(ctx context.Context, rule *entity.TenantRule) error

	// SaveRule writes back a mutated rule.
	SaveRule(ctx context.Context, rule *entity.TenantRule) error

	// DeleteRule removes a rule.
	DeleteRule(ctx context.Context, id uuid.UUID) error
}
