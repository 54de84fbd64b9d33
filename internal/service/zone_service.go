package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zone-service/internal/model"
	"zone-service/internal/repository"
	"zone-service/internal/spatial"
)

type ZoneService struct {
	zoneRepo   *repository.ZoneRepository
	deviceRepo *repository.DeviceRepository
	siteRepo   *repository.SiteRepository
}

func NewZoneService(
	zoneRepo *repository.ZoneRepository,
	deviceRepo *repository.DeviceRepository,
	siteRepo *repository.SiteRepository,
) *ZoneService {
	return &ZoneService{
		zoneRepo:   zoneRepo,
		deviceRepo: deviceRepo,
		siteRepo:   siteRepo,
	}
}

type CreateZoneInput struct {
	SiteID      string
	Name        string
	Color       string
	Description string
	Polygon     model.Polygon
}

func (s *ZoneService) Create(ctx context.Context, principal model.Principal, input CreateZoneInput) (*model.Zone, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}

	siteID, err := uuid.Parse(input.SiteID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if input.Name == "" || len(input.Polygon) < 3 {
		return nil, ErrInvalidInput
	}

	if _, err := s.siteRepo.GetByID(ctx, siteID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	zone := &model.Zone{
		SiteID:      siteID,
		Name:        input.Name,
		Color:       input.Color,
		Description: input.Description,
		Polygon:     input.Polygon,
		DeviceIDs:   model.UUIDList{},
	}
	if err := s.zoneRepo.Create(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *ZoneService) Get(ctx context.Context, principal model.Principal, id string) (*model.Zone, error) {
	zone, err := s.zoneRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return zone, nil
}

func (s *ZoneService) ListBySite(ctx context.Context, principal model.Principal, siteID string) ([]model.Zone, error) {
	return s.zoneRepo.ListBySite(ctx, siteID)
}

type UpdateZoneInput struct {
	Name        *string
	Color       *string
	Description *string
	Polygon     model.Polygon
}

func (s *ZoneService) Update(ctx context.Context, principal model.Principal, id string, input UpdateZoneInput) (*model.Zone, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}

	zone, err := s.zoneRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		zone.Name = *input.Name
	}
	if input.Color != nil {
		zone.Color = *input.Color
	}
	if input.Description != nil {
		zone.Description = *input.Description
	}
	if input.Polygon != nil {
		if len(input.Polygon) < 3 {
			return nil, ErrInvalidInput
		}
		zone.Polygon = input.Polygon
	}

	if err := s.zoneRepo.Update(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *ZoneService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.CanEdit() {
		return ErrPermissionDenied
	}
	if _, err := s.zoneRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.zoneRepo.Delete(ctx, id)
}

// Locate resolves the zone containing a device, scanning the site's
// zones in creation order: for overlapping polygons the first match
// wins. Returns nil without error when the device is unpositioned or
// outside every zone.
func (s *ZoneService) Locate(ctx context.Context, principal model.Principal, deviceID string) (*model.Zone, error) {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	zones, err := s.zoneRepo.ListBySite(ctx, device.SiteID.String())
	if err != nil {
		return nil, err
	}
	return spatial.FindZoneForDevice(device, zones), nil
}

// Detect clusters the site's positioned devices that sit outside every
// existing zone and persists the resulting zone drafts. Returns the
// created zones; an empty result means nothing was ungrouped.
func (s *ZoneService) Detect(ctx context.Context, principal model.Principal, siteID string) ([]model.Zone, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}

	site, err := s.siteRepo.GetByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	devices, err := s.deviceRepo.List(ctx, repository.DeviceListFilter{SiteID: &siteID})
	if err != nil {
		return nil, err
	}
	zones, err := s.zoneRepo.ListBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	var ungrouped []model.Device
	for i := range devices {
		if spatial.FindZoneForDevice(&devices[i], zones) == nil {
			ungrouped = append(ungrouped, devices[i])
		}
	}

	drafts := spatial.DetectZonesFromDevices(ungrouped)
	if len(drafts) == 0 {
		return []model.Zone{}, nil
	}
	return s.zoneRepo.CreateFromDrafts(ctx, site.ID, drafts)
}

// Arrange lays the zone's member devices out on a grid inside the zone
// polygon and applies the position updates atomically. Membership is
// taken from current positions, not the cached device_ids.
func (s *ZoneService) Arrange(ctx context.Context, principal model.Principal, zoneID string, padding *float64) ([]model.DeviceUpdate, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}

	zone, err := s.zoneRepo.GetByID(ctx, zoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	members, err := s.zoneMembers(ctx, zone)
	if err != nil {
		return nil, err
	}

	pad := spatial.DefaultArrangePadding
	if padding != nil {
		pad = *padding
	}

	updates := spatial.ArrangeDevicesInZone(members, *zone, pad)
	if len(updates) == 0 {
		return []model.DeviceUpdate{}, nil
	}
	if err := s.deviceRepo.ApplyUpdates(ctx, updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// Align votes on a common orientation across the zone's fixtures and
// applies it to every one of them.
func (s *ZoneService) Align(ctx context.Context, principal model.Principal, zoneID string) ([]model.DeviceUpdate, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}

	zone, err := s.zoneRepo.GetByID(ctx, zoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	members, err := s.zoneMembers(ctx, zone)
	if err != nil {
		return nil, err
	}

	updates := spatial.AlignmentUpdates(members, model.IsFixtureType)
	if len(updates) == 0 {
		return []model.DeviceUpdate{}, nil
	}
	if err := s.deviceRepo.ApplyUpdates(ctx, updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SyncResult summarizes one zone's membership resynchronization.
type SyncResult struct {
	ZoneID      uuid.UUID `json:"zone_id"`
	DeviceCount int       `json:"device_count"`
	Changed     bool      `json:"changed"`
}

// Sync recomputes every zone's device_ids cache for a site from current
// device positions. Only zones whose list actually changed are written.
func (s *ZoneService) Sync(ctx context.Context, principal model.Principal, siteID string) ([]SyncResult, error) {
	if !principal.CanEdit() {
		return nil, ErrPermissionDenied
	}

	if _, err := s.siteRepo.GetByID(ctx, siteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	devices, err := s.deviceRepo.List(ctx, repository.DeviceListFilter{SiteID: &siteID})
	if err != nil {
		return nil, err
	}
	zones, err := s.zoneRepo.ListBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	results := make([]SyncResult, 0, len(zones))
	for _, u := range spatial.SyncZoneDevices(devices, zones) {
		if u.Changed {
			if err := s.zoneRepo.UpdateMembership(ctx, u.Zone.ID, u.DeviceIDs); err != nil {
				return nil, err
			}
		}
		results = append(results, SyncResult{
			ZoneID:      u.Zone.ID,
			DeviceCount: len(u.DeviceIDs),
			Changed:     u.Changed,
		})
	}
	return results, nil
}

// zoneMembers returns the devices currently inside the zone polygon, in
// stable repository order.
func (s *ZoneService) zoneMembers(ctx context.Context, zone *model.Zone) ([]model.Device, error) {
	siteID := zone.SiteID.String()
	devices, err := s.deviceRepo.List(ctx, repository.DeviceListFilter{SiteID: &siteID})
	if err != nil {
		return nil, err
	}

	var members []model.Device
	for i := range devices {
		if !devices[i].Positioned() {
			continue
		}
		if spatial.PointInPolygon(devices[i].Position(), zone.Polygon) {
			members = append(members, devices[i])
		}
	}
	return members, nil
}
