package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zone-service/internal/model"
)

type ZoneRepository struct {
	db *gorm.DB
}

func NewZoneRepository(db *gorm.DB) *ZoneRepository {
	return &ZoneRepository{db: db}
}

func (r *ZoneRepository) Create(ctx context.Context, zone *model.Zone) error {
	return r.db.WithContext(ctx).Create(zone).Error
}

// CreateFromDrafts persists detection output, assigning identity to each
// draft. All drafts from one detection pass are created in a single
// transaction.
func (r *ZoneRepository) CreateFromDrafts(ctx context.Context, siteID uuid.UUID, drafts []model.ZoneDraft) ([]model.Zone, error) {
	zones := make([]model.Zone, 0, len(drafts))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, draft := range drafts {
			zone := model.Zone{
				SiteID:      siteID,
				Name:        draft.Name,
				Color:       draft.Color,
				Description: draft.Description,
				Polygon:     draft.Polygon,
				DeviceIDs:   draft.DeviceIDs,
			}
			if err := tx.Create(&zone).Error; err != nil {
				return err
			}
			zones = append(zones, zone)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *ZoneRepository) GetByID(ctx context.Context, id string) (*model.Zone, error) {
	var zone model.Zone
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&zone).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *ZoneRepository) Update(ctx context.Context, zone *model.Zone) error {
	return r.db.WithContext(ctx).Save(zone).Error
}

func (r *ZoneRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Zone{}).Error
}

func (r *ZoneRepository) ListBySite(ctx context.Context, siteID string) ([]model.Zone, error) {
	var zones []model.Zone
	err := r.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		Order("created_at ASC, id ASC").
		Find(&zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// UpdateMembership rewrites a zone's derived device_ids cache; updated_at
// is bumped by the row trigger, so only changed zones should be written.
func (r *ZoneRepository) UpdateMembership(ctx context.Context, zoneID uuid.UUID, ids model.UUIDList) error {
	return r.db.WithContext(ctx).
		Model(&model.Zone{}).
		Where("id = ?", zoneID).
		Update("device_ids", ids).Error
}
