package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RuleAction string

const (
	RuleActionDim RuleAction = "DIM"
	RuleActionOn  RuleAction = "ON"
	RuleActionOff RuleAction = "OFF"
)

// LightingRule schedules an action for every fixture in a zone, e.g.
// "dim Zone 3 to 40% after 22:00".
type LightingRule struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	SiteID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"site_id"`
	ZoneID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"zone_id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Action    RuleAction `gorm:"type:rule_action;not null" json:"action"`
	Level     *int       `json:"level"`
	StartTime string     `gorm:"type:varchar(8)" json:"start_time"`
	EndTime   string     `gorm:"type:varchar(8)" json:"end_time"`
	Enabled   bool       `gorm:"not null;default:true" json:"enabled"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LightingRule) TableName() string {
	return "lighting_rules"
}

func (r *LightingRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
