package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zone-service/internal/model"
	"zone-service/internal/repository"
)

type RuleService struct {
	ruleRepo *repository.RuleRepository
	zoneRepo *repository.ZoneRepository
}

func NewRuleService(ruleRepo *repository.RuleRepository, zoneRepo *repository.ZoneRepository) *RuleService {
	return &RuleService{
		ruleRepo: ruleRepo,
		zoneRepo: zoneRepo,
	}
}

type CreateRuleInput struct {
	ZoneID    string
	Name      string
	Action    string
	Level     *int
	StartTime string
	EndTime   string
}

var validRuleActions = map[model.RuleAction]bool{
	model.RuleActionDim: true,
	model.RuleActionOn:  true,
	model.RuleActionOff: true,
}

func (s *RuleService) Create(ctx context.Context, principal model.Principal, input CreateRuleInput) (*model.LightingRule, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}

	zoneID, err := uuid.Parse(input.ZoneID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	action := model.RuleAction(input.Action)
	if !validRuleActions[action] {
		return nil, ErrInvalidInput
	}
	if action == model.RuleActionDim {
		if input.Level == nil || *input.Level < 0 || *input.Level > 100 {
			return nil, ErrInvalidInput
		}
	}

	zone, err := s.zoneRepo.GetByID(ctx, zoneID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rule := &model.LightingRule{
		SiteID:    zone.SiteID,
		ZoneID:    zone.ID,
		Name:      input.Name,
		Action:    action,
		Level:     input.Level,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Enabled:   true,
	}
	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *RuleService) Get(ctx context.Context, principal model.Principal, id string) (*model.LightingRule, error) {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rule, nil
}

func (s *RuleService) List(ctx context.Context, principal model.Principal, filter repository.RuleListFilter) ([]model.LightingRule, error) {
	return s.ruleRepo.List(ctx, filter)
}

type UpdateRuleInput struct {
	Name      *string
	Level     *int
	StartTime *string
	EndTime   *string
	Enabled   *bool
}

func (s *RuleService) Update(ctx context.Context, principal model.Principal, id string, input UpdateRuleInput) (*model.LightingRule, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}

	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		rule.Name = *input.Name
	}
	if input.Level != nil {
		if *input.Level < 0 || *input.Level > 100 {
			return nil, ErrInvalidInput
		}
		rule.Level = input.Level
	}
	if input.StartTime != nil {
		rule.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		rule.EndTime = *input.EndTime
	}
	if input.Enabled != nil {
		rule.Enabled = *input.Enabled
	}

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *RuleService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.CanEdit() {
		return ErrPermissionDenied
	}
	if _, err := s.ruleRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.ruleRepo.Delete(ctx, id)
}
