package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization struct - owner of auto-reply rules and business hours. Only the
// fields the resolution engine needs live here; administrative attributes are
// managed elsewhere.
type Organization struct {
	ID   *uuid.UUID `gorm:"type:uuid;primary_key;"`
	Name *string    `gorm:"type:varchar(100);not null;"`
	// Timezone is an IANA zone name, e.g. "Asia/Bangkok"
	Timezone string `gorm:"type:varchar(64);not null;default:'UTC';"`

	CreatedAt *time.Time `gorm:"type:timestamp"`
	UpdatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (o *Organization) TableName() string {
	return "organizations"
}

// BeforeCreate hook - generates UUID before creating
func (o *Organization) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID != nil {
		return nil
	}
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	o.ID = &id
	return nil
}
