package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDList is a JSONB-persisted list of entity ids.
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]uuid.UUID{})
	}
	return json.Marshal(l)
}

func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported uuid list column type")
	}
}

// Zone is a named region of a site's floor plan. DeviceIDs is a derived
// cache refreshed by membership synchronization; the authoritative
// membership test is always point-in-polygon against current device
// positions.
type Zone struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	SiteID      uuid.UUID `gorm:"type:uuid;not null;index" json:"site_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Color       string    `gorm:"type:varchar(32)" json:"color"`
	Description string    `gorm:"type:text" json:"description"`
	Polygon     Polygon   `gorm:"type:jsonb" json:"polygon"`
	DeviceIDs   UUIDList  `gorm:"type:jsonb;column:device_ids" json:"device_ids"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Zone) TableName() string {
	return "zones"
}

func (z *Zone) BeforeCreate(tx *gorm.DB) error {
	if z.ID == uuid.Nil {
		z.ID = uuid.New()
	}
	return nil
}

// ZoneDraft is a zone produced by auto detection, pending identity
// assignment by the zone store on creation.
type ZoneDraft struct {
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Polygon     Polygon  `json:"polygon"`
	DeviceIDs   UUIDList `json:"device_ids"`
}
