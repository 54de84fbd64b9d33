package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Site is one physical retail location with its own floor plan. Device
// and zone coordinates are normalized to the site's map extent.
type Site struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   string    `gorm:"type:varchar(512)" json:"address"`
	Timezone  string    `gorm:"type:varchar(64)" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Site) TableName() string {
	return "sites"
}

func (s *Site) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
