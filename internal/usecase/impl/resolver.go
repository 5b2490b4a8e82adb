// Package impl contains the implementations of the application use cases.
package impl

import (
	"context"
	"log/slog"
	"time"

	"backlot/internal/domain/entity"
	"backlot/internal/domain/repository"
	"backlot/internal/domain/service"
	"backlot/internal/errors"

	"github.com/expr-lang/expr"
	"github.com/google/uuid"
)

// Resolution is one resolved recipient: the user, the channels the winning
// rule requested filtered by the user's preference, and the rule that put
// them there. The loaded preference rides along so the dispatcher's gates do
// not re-fetch it.
type Resolution struct {
	UserID       uuid.UUID
	Channels     entity.ChannelSet
	RuleName     string
	RulePriority int
	Preference   *entity.Preference
}

// Resolver expands tenant rules into concrete per-user channel sets.
type Resolver struct {
	ruleRepo repository.RuleRepository
	prefRepo repository.PreferenceRepository
	roleDir  service.RoleDirectory
	logger   *slog.Logger
}

// NewResolver creates a recipient resolver.
func NewResolver(
	ruleRepo repository.RuleRepository,
	prefRepo repository.PreferenceRepository,
	roleDir service.RoleDirectory,
	logger *slog.Logger,
) *Resolver {
	return &Resolver{
		ruleRepo: ruleRepo,
		prefRepo: prefRepo,
		roleDir:  roleDir,
		logger:   logger,
	}
}

// Resolve expands every enabled rule for (tenant, module, event) into a
// deduplicated recipient set. Rules are walked in priority-descending order:
// the first rule to claim a user owns that user's channel set, and rules at
// the same priority union their channels. Users whose preference disables
// the event are dropped, as are channels the preference does not accept.
// A rule resolving to zero users is a no-op, not an error.
func (r *Resolver) Resolve(ctx context.Context, tenantID uuid.UUID, module entity.Module, event string, metadata entity.EventMetadata) ([]Resolution, error) {
	rules, err := r.ruleRepo.FindEnabledRules(ctx, tenantID, module, event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tenant rules")
	}

	resolved := make(map[uuid.UUID]*Resolution)
	order := make([]uuid.UUID, 0)

	for _, rule := range rules {
		if !r.conditionHolds(rule, metadata) {
			continue
		}

		userIDs, err := r.expandRecipients(ctx, rule, metadata)
		if err != nil {
			return nil, err
		}

		ruleChannels := rule.ChannelSet()
		for _, userID := range userIDs {
			existing, ok := resolved[userID]
			if !ok {
				resolved[userID] = &Resolution{
					UserID:       userID,
					Channels:     ruleChannels.Union(nil),
					RuleName:     rule.Name,
					RulePriority: rule.Priority,
				}
				order = append(order, userID)

				continue
			}

			// Rules arrive priority-descending, so an earlier claim wins
			// outright; equal priorities union their channel sets.
			if existing.RulePriority == rule.Priority {
				existing.Channels = existing.Channels.Union(ruleChannels)
			}
		}
	}

	out := make([]Resolution, 0, len(order))
	for _, userID := range order {
		res := resolved[userID]

		pref, err := r.loadPreference(ctx, userID, tenantID, module)
		if err != nil {
			return nil, err
		}

		if !pref.EventEnabled(event) {
			continue
		}

		res.Channels = res.Channels.Intersect(pref.EventChannels(event))
		if len(res.Channels) == 0 {
			continue
		}

		res.Preference = pref
		out = append(out, *res)
	}

	return out, nil
}

// conditionHolds evaluates the rule's attribute-matching expression against
// the event metadata. A rule with no condition always applies; a condition
// that fails to compile or evaluate skips the rule rather than aborting the
// whole dispatch.
func (r *Resolver) conditionHolds(rule *entity.TenantRule, metadata entity.EventMetadata) bool {
	if rule.Condition == "" {
		return true
	}

	env := map[string]any{
		"event":    rule.Event,
		"module":   string(rule.Module),
		"metadata": metadata.ConditionEnv(),
	}

	program, err := expr.Compile(rule.Condition, expr.Env(env), expr.AsBool())
	if err != nil {
		r.logger.Warn("skipping rule with invalid condition",
			slog.String("rule", rule.Name),
			slog.String("condition", rule.Condition),
			slog.Any("error", err),
		)

		return false
	}

	result, err := expr.Run(program, env)
	if err != nil {
		r.logger.Warn("skipping rule whose condition failed to evaluate",
			slog.String("rule", rule.Name),
			slog.Any("error", err),
		)

		return false
	}

	holds, ok := result.(bool)

	return ok && holds
}

// expandRecipients turns the rule's abstract recipient spec into concrete
// user ids: explicit users, role members, and the metadata-referenced
// assigned user, creator, and followers.
func (r *Resolver) expandRecipients(ctx context.Context, rule *entity.TenantRule, metadata entity.EventMetadata) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{})
	userIDs := make([]uuid.UUID, 0, len(rule.Recipients.UserIDs))

	add := func(id uuid.UUID) {
		if id == uuid.Nil {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		userIDs = append(userIDs, id)
	}

	for _, id := range rule.Recipients.UserIDs {
		add(id)
	}

	if len(rule.Recipients.Roles) > 0 {
		members, err := r.roleDir.UsersInRoles(ctx, rule.TenantID, rule.Recipients.Roles)
		if err != nil {
			return nil, errors.Wrap(err, "failed to expand role membership")
		}
		for _, id := range members {
			add(id)
		}
	}

	if rule.Recipients.IncludeAssignedUser && metadata.AssignedUserID != nil {
		add(*metadata.AssignedUserID)
	}
	if rule.Recipients.IncludeCreator && metadata.CreatedBy != nil {
		add(*metadata.CreatedBy)
	}
	if rule.Recipients.IncludeFollowers {
		for _, id := range metadata.FollowerIDs {
			add(id)
		}
	}

	return userIDs, nil
}

// loadPreference fetches the user's stored preference, falling back to the
// module defaults in memory when none exists. The resolve path stays
// read-only; the preference API persists defaults on first explicit lookup.
func (r *Resolver) loadPreference(ctx context.Context, userID, tenantID uuid.UUID, module entity.Module) (*entity.Preference, error) {
	pref, err := r.prefRepo.FindPreference(ctx, userID, tenantID, module)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return entity.DefaultPreference(userID, tenantID, module, time.Now().UTC()), nil
		}

		return nil, errors.Wrap(err, "failed to load preference")
	}

	return pref, nil
}
