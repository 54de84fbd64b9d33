package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zone-service/internal/model"
	"zone-service/internal/repository"
)

type SiteService struct {
	siteRepo *repository.SiteRepository
}

func NewSiteService(siteRepo *repository.SiteRepository) *SiteService {
	return &SiteService{siteRepo: siteRepo}
}

type CreateSiteInput struct {
	Name     string
	Address  string
	Timezone string
}

func (s *SiteService) Create(ctx context.Context, principal model.Principal, input CreateSiteInput) (*model.Site, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if input.Name == "" {
		return nil, ErrInvalidInput
	}

	site := &model.Site{
		Name:     input.Name,
		Address:  input.Address,
		Timezone: input.Timezone,
	}
	if err := s.siteRepo.Create(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *SiteService) Get(ctx context.Context, principal model.Principal, id string) (*model.Site, error) {
	site, err := s.siteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return site, nil
}

func (s *SiteService) List(ctx context.Context, principal model.Principal) ([]model.Site, error) {
	return s.siteRepo.List(ctx)
}

type UpdateSiteInput struct {
	Name     *string
	Address  *string
	Timezone *string
}

func (s *SiteService) Update(ctx context.Context, principal model.Principal, id string, input UpdateSiteInput) (*model.Site, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	site, err := s.siteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		site.Name = *input.Name
	}
	if input.Address != nil {
		site.Address = *input.Address
	}
	if input.Timezone != nil {
		site.Timezone = *input.Timezone
	}

	if err := s.siteRepo.Update(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *SiteService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if _, err := s.siteRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.siteRepo.Delete(ctx, id)
}
