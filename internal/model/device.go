package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeviceType string

const (
	DeviceTypeFixture       DeviceType = "FIXTURE"
	DeviceTypeFixtureLinear DeviceType = "FIXTURE_LINEAR"
	DeviceTypeFixtureTrack  DeviceType = "FIXTURE_TRACK"
	DeviceTypeSensor        DeviceType = "SENSOR"
	DeviceTypeController    DeviceType = "CONTROLLER"
	DeviceTypeGateway       DeviceType = "GATEWAY"
)

// IsFixtureType reports whether a device type is a lighting fixture
// variant, i.e. eligible for orientation alignment.
func IsFixtureType(t DeviceType) bool {
	return strings.HasPrefix(string(t), "FIXTURE")
}

// Device is a tracked piece of lighting hardware on a site floor plan.
// X/Y are normalized [0,1] map coordinates; a device without both is
// unpositioned and ignored by all geometric operations. ZoneLabel is a
// legacy free-text field kept for older dashboard clients; zone
// membership itself is always recomputed from position.
type Device struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	SiteID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"site_id"`
	Name        string     `gorm:"type:varchar(255)" json:"name"`
	Type        DeviceType `gorm:"type:device_type;not null" json:"type"`
	X           *float64   `json:"x"`
	Y           *float64   `json:"y"`
	Orientation *float64   `json:"orientation"`
	Location    string     `gorm:"type:varchar(255)" json:"location"`
	ZoneLabel   string     `gorm:"type:varchar(255);column:zone_label" json:"zone_label"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Device) TableName() string {
	return "devices"
}

func (d *Device) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Positioned reports whether the device has both map coordinates set.
func (d Device) Positioned() bool {
	return d.X != nil && d.Y != nil
}

// Position returns the device's point; only meaningful when Positioned().
func (d Device) Position() Point {
	var p Point
	if d.X != nil {
		p.X = *d.X
	}
	if d.Y != nil {
		p.Y = *d.Y
	}
	return p
}

// DeviceUpdate is one record of a batched position/orientation change
// produced by the spatial engine. Callers apply a whole batch atomically
// or not at all; the records in one batch were computed against the same
// snapshot.
type DeviceUpdate struct {
	DeviceID    uuid.UUID `json:"device_id"`
	X           *float64  `json:"x,omitempty"`
	Y           *float64  `json:"y,omitempty"`
	Orientation *float64  `json:"orientation,omitempty"`
	ZoneLabel   *string   `json:"zone_label,omitempty"`
}
