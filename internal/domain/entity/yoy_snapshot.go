package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// YoYSnapshot stores the externally supplied year-over-year comparison
// dataset. The payload is opaque to the persistence layer; the
// analytics engine interprets it. One row per label, replaced in full
// on upload.
type YoYSnapshot struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Label     string          `gorm:"size:100;unique;not null" json:"label"`
	Payload   json.RawMessage `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new snapshot
func (s *YoYSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the YoYSnapshot model
func (YoYSnapshot) TableName() string {
	return "yoy_snapshots"
}
