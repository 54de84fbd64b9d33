package repository

import (
	"context"

	"gorm.io/gorm"

	"zone-service/internal/model"
)

type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) Create(ctx context.Context, device *model.Device) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *DeviceRepository) GetByID(ctx context.Context, id string) (*model.Device, error) {
	var device model.Device
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *DeviceRepository) Update(ctx context.Context, device *model.Device) error {
	return r.db.WithContext(ctx).Save(device).Error
}

func (r *DeviceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Device{}).Error
}

type DeviceListFilter struct {
	SiteID     *string
	Type       *model.DeviceType
	Location   *string
	Positioned *bool
}

func (r *DeviceRepository) List(ctx context.Context, filter DeviceListFilter) ([]model.Device, error) {
	var devices []model.Device
	query := r.db.WithContext(ctx).Model(&model.Device{})

	if filter.SiteID != nil {
		query = query.Where("site_id = ?", *filter.SiteID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Location != nil {
		query = query.Where("location ILIKE ?", "%"+*filter.Location+"%")
	}
	if filter.Positioned != nil {
		if *filter.Positioned {
			query = query.Where("x IS NOT NULL AND y IS NOT NULL")
		} else {
			query = query.Where("x IS NULL OR y IS NULL")
		}
	}

	// Stable ordering matters downstream: clustering and membership
	// recomputation are deterministic only for a fixed device order.
	if err := query.Order("created_at ASC, id ASC").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// ApplyUpdates writes a batch of engine-produced updates in one
// transaction. Arrangement output assumes all sibling positions were
// computed against the same zone bounds, so a batch lands atomically or
// not at all.
func (r *DeviceRepository) ApplyUpdates(ctx context.Context, updates []model.DeviceUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			fields := map[string]interface{}{}
			if u.X != nil {
				fields["x"] = *u.X
			}
			if u.Y != nil {
				fields["y"] = *u.Y
			}
			if u.Orientation != nil {
				fields["orientation"] = *u.Orientation
			}
			if u.ZoneLabel != nil {
				fields["zone_label"] = *u.ZoneLabel
			}
			if len(fields) == 0 {
				continue
			}
			res := tx.Model(&model.Device{}).Where("id = ?", u.DeviceID).Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
