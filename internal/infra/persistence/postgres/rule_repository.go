package postgres

import (
	"context"
	"encoding/json"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	"backlot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ruleRepository implements the repository.RuleRepository interface.
type ruleRepository struct {
	db *gorm.DB
}

// NewRuleRepository is the constructor for ruleRepository.
func NewRuleRepository(db *gorm.DB) repository.RuleRepository {
	return &ruleRepository{
		db: db,
	}
}

// FindEnabledRules retrieves the enabled rules for a (tenant, module, event)
// triple, highest priority first.
func (repo *ruleRepository) FindEnabledRules(ctx context.Context, tenantID uuid.UUID, module entity.Module, event string) ([]*entity.TenantRule, error) {
	var ruleModels []*model.RuleModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND module = ? AND event = ? AND enabled = true", tenantID, string(module), event).
		Order("priority DESC, created_at ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find enabled rules")
	}

	rules := make([]*entity.TenantRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rule, err := toRuleDomain(ruleM)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// FindRuleByID retrieves a rule by its unique ID.
func (repo *ruleRepository) FindRuleByID(ctx context.Context, id uuid.UUID) (*entity.TenantRule, error) {
	var ruleM model.RuleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ruleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find rule by ID")
	}

	return toRuleDomain(&ruleM)
}

// CreateRule persists a new tenant rule.
func (repo *ruleRepository) CreateRule(ctx context.Context, rule *entity.TenantRule) error {
	ruleM, err := fromRuleDomain(rule)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(ruleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create rule")
	}

	rule.ID = ruleM.ID
	rule.CreatedAt = ruleM.CreatedAt
	rule.UpdatedAt = ruleM.UpdatedAt

	return nil
}

// SaveRule writes back a modified tenant rule.
func (repo *ruleRepository) SaveRule(ctx context.Context, rule *entity.TenantRule) error {
	ruleM, err := fromRuleDomain(rule)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RuleModel{}).
		Where("id = ?", rule.ID).
		Updates(map[string]interface{}{
			"name":       ruleM.Name,
			"condition":  ruleM.Condition,
			"recipients": ruleM.Recipients,
			"channels":   ruleM.Channels,
			"priority":   ruleM.Priority,
			"enabled":    ruleM.Enabled,
			"updated_at": rule.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save rule")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRuleNotFound
	}

	return nil
}

// DeleteRule removes a tenant rule.
func (repo *ruleRepository) DeleteRule(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RuleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete rule")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRuleNotFound
	}

	return nil
}

func toRuleDomain(data *model.RuleModel) (*entity.TenantRule, error) {
	rule := &entity.TenantRule{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Module:    entity.Module(data.Module),
		Event:     data.Event,
		Name:      data.Name,
		Condition: data.Condition,
		Priority:  data.Priority,
		Enabled:   data.Enabled,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if len(data.Recipients) > 0 {
		if err := json.Unmarshal(data.Recipients, &rule.Recipients); err != nil {
			return nil, errors.Wrap(err, "failed to decode rule recipients")
		}
	}

	if len(data.Channels) > 0 {
		if err := json.Unmarshal(data.Channels, &rule.Channels); err != nil {
			return nil, errors.Wrap(err, "failed to decode rule channels")
		}
	}

	return rule, nil
}

func fromRuleDomain(rule *entity.TenantRule) (*model.RuleModel, error) {
	recipients, err := json.Marshal(rule.Recipients)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode rule recipients")
	}

	channels, err := json.Marshal(rule.Channels)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode rule channels")
	}

	return &model.RuleModel{
		ID:         rule.ID,
		TenantID:   rule.TenantID,
		Module:     string(rule.Module),
		Event:      rule.Event,
		Name:       rule.Name,
		Condition:  rule.Condition,
		Recipients: recipients,
		Channels:   channels,
		Priority:   rule.Priority,
		Enabled:    rule.Enabled,
		CreatedAt:  rule.CreatedAt,
		UpdatedAt:  rule.UpdatedAt,
	}, nil
}
