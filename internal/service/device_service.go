package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zone-service/internal/model"
	"zone-service/internal/repository"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
)

type DeviceService struct {
	deviceRepo *repository.DeviceRepository
	siteRepo   *repository.SiteRepository
}

func NewDeviceService(deviceRepo *repository.DeviceRepository, siteRepo *repository.SiteRepository) *DeviceService {
	return &DeviceService{
		deviceRepo: deviceRepo,
		siteRepo:   siteRepo,
	}
}

type CreateDeviceInput struct {
	SiteID      string
	Name        string
	Type        string
	X           *float64
	Y           *float64
	Orientation *float64
	Location    string
}

var validDeviceTypes = map[model.DeviceType]bool{
	model.DeviceTypeFixture:       true,
	model.DeviceTypeFixtureLinear: true,
	model.DeviceTypeFixtureTrack:  true,
	model.DeviceTypeSensor:        true,
	model.DeviceTypeController:    true,
	model.DeviceTypeGateway:       true,
}

func (s *DeviceService) Create(ctx context.Context, principal model.Principal, input CreateDeviceInput) (*model.Device, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}

	siteID, err := uuid.Parse(input.SiteID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	deviceType := model.DeviceType(input.Type)
	if !validDeviceTypes[deviceType] {
		return nil, ErrInvalidInput
	}

	if _, err := s.siteRepo.GetByID(ctx, siteID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	device := &model.Device{
		SiteID:      siteID,
		Name:        input.Name,
		Type:        deviceType,
		X:           input.X,
		Y:           input.Y,
		Orientation: input.Orientation,
		Location:    input.Location,
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *DeviceService) Get(ctx context.Context, principal model.Principal, id string) (*model.Device, error) {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return device, nil
}

func (s *DeviceService) List(ctx context.Context, principal model.Principal, filter repository.DeviceListFilter) ([]model.Device, error) {
	return s.deviceRepo.List(ctx, filter)
}

type UpdateDeviceInput struct {
	Name        *string
	Type        *string
	Orientation *float64
	Location    *string
}

func (s *DeviceService) Update(ctx context.Context, principal model.Principal, id string, input UpdateDeviceInput) (*model.Device, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}

	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		device.Name = *input.Name
	}
	if input.Type != nil {
		deviceType := model.DeviceType(*input.Type)
		if !validDeviceTypes[deviceType] {
			return nil, ErrInvalidInput
		}
		device.Type = deviceType
	}
	if input.Orientation != nil {
		device.Orientation = input.Orientation
	}
	if input.Location != nil {
		device.Location = *input.Location
	}

	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *DeviceService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.CanEdit() {
		return ErrPermissionDenied
	}
	if _, err := s.deviceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.deviceRepo.Delete(ctx, id)
}

// Move repositions a device on the floor plan. Out-of-range coordinates
// are accepted: drags routinely pass through them, and membership is
// recomputed separately at drag end.
func (s *DeviceService) Move(ctx context.Context, principal model.Principal, id string, x, y float64) (*model.Device, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}

	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	device.X = &x
	device.Y = &y
	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return nil, err
	}
	return device, nil
}

// Apply writes a batch of engine-produced updates atomically.
func (s *DeviceService) Apply(ctx context.Context, principal model.Principal, updates []model.DeviceUpdate) error {
	if !principal.CanEdit() {
		return ErrPermissionDenied
	}
	if err := s.deviceRepo.ApplyUpdates(ctx, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
