package repository

import (
	"context"

	"gorm.io/gorm"

	"zone-service/internal/model"
)

type RuleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

func (r *RuleRepository) Create(ctx context.Context, rule *model.LightingRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *RuleRepository) GetByID(ctx context.Context, id string) (*model.LightingRule, error) {
	var rule model.LightingRule
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *RuleRepository) Update(ctx context.Context, rule *model.LightingRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *RuleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LightingRule{}).Error
}

type RuleListFilter struct {
	SiteID  *string
	ZoneID  *string
	Enabled *bool
}

func (r *RuleRepository) List(ctx context.Context, filter RuleListFilter) ([]model.LightingRule, error) {
	var rules []model.LightingRule
	query := r.db.WithContext(ctx).Model(&model.LightingRule{})

	if filter.SiteID != nil {
		query = query.Where("site_id = ?", *filter.SiteID)
	}
	if filter.ZoneID != nil {
		query = query.Where("zone_id = ?", *filter.ZoneID)
	}
	if filter.Enabled != nil {
		query = query.Where("enabled = ?", *filter.Enabled)
	}

	if err := query.Order("created_at ASC").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}
