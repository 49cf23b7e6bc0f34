package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AutoReplyEventType represents the rule class of an auto-reply
type AutoReplyEventType string

const (
	// AutoReplyEventTypeKeyword - fires on an exact keyword match
	AutoReplyEventTypeKeyword AutoReplyEventType = "KEYWORD"
	// AutoReplyEventTypeTime - fires on schedule alone
	AutoReplyEventTypeTime AutoReplyEventType = "TIME"
	// AutoReplyEventTypeIGStoryKeyword - keyword match scoped to an IG Story reply
	AutoReplyEventTypeIGStoryKeyword AutoReplyEventType = "IG_STORY_KEYWORD"
	// AutoReplyEventTypeIGStoryGeneral - any reply to a configured IG Story
	AutoReplyEventTypeIGStoryGeneral AutoReplyEventType = "IG_STORY_GENERAL"
)

// AutoReplyStatus type
type AutoReplyStatus string

const (
	// AutoReplyStatusEnabled const
	AutoReplyStatusEnabled AutoReplyStatus = "ENABLED"
	// AutoReplyStatusDisabled const
	AutoReplyStatusDisabled AutoReplyStatus = "DISABLED"
)

// StringList - string slice persisted as a jsonb column
type StringList []string

// Value func - driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan func - sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported column type for StringList")
	}
}

// Contains func
func (l StringList) Contains(s string) bool {
	for _, item := range l {
		if item == s {
			return true
		}
	}
	return false
}

// AutoReply struct - Core domain entity: an organization-scoped auto-reply rule.
// Read-only to the resolution engine; created and edited through the admin API.
type AutoReply struct {
	ID             *uuid.UUID         `gorm:"type:uuid;primary_key;"`
	OrganizationID *uuid.UUID         `gorm:"type:uuid;index;not null;"`
	Name           *string            `gorm:"type:varchar(100);not null;"`
	EventType      AutoReplyEventType `gorm:"type:varchar(20);not null;"`
	Priority       int                `gorm:"not null;default:0;"`
	Keywords       StringList         `gorm:"type:jsonb"`
	IGStoryIDs     StringList         `gorm:"type:jsonb"`
	Status         AutoReplyStatus    `gorm:"type:varchar(10);not null;"`
	ReplyText      *string            `gorm:"type:text"`

	TriggerSettings []WebhookTriggerSetting `gorm:"foreignKey:AutoReplyID"`

	CreatedAt *time.Time      `gorm:"type:timestamp"`
	UpdatedAt *time.Time      `gorm:"type:timestamp"`
	DeletedAt *gorm.DeletedAt `gorm:"type:timestamp"`
}

// TableName func
func (a *AutoReply) TableName() string {
	return "auto_replies"
}

// BeforeCreate hook - generates UUID before creating
func (a *AutoReply) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID != nil {
		return nil
	}
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	a.ID = &id
	return nil
}

// IsIGStory reports whether the rule is scoped to Instagram Stories.
// Non-empty IGStoryIDs marks the rule as an IG Story rule regardless of its
// event type; the pair decides its priority category.
func (a *AutoReply) IsIGStory() bool {
	return len(a.IGStoryIDs) > 0
}

// HasKeywords func
func (a *AutoReply) HasKeywords() bool {
	return len(a.Keywords) > 0
}

// MatchesStory reports whether the rule applies to the given IG Story
func (a *AutoReply) MatchesStory(storyID string) bool {
	return storyID != "" && a.IGStoryIDs.Contains(storyID)
}

// WebhookTriggerSetting struct - binds an AutoReply to a trigger event type and
// an optional schedule. One rule may carry several settings, one per event type
// it responds to. A nil schedule means the setting is always active.
type WebhookTriggerSetting struct {
	ID               *uuid.UUID       `gorm:"type:uuid;primary_key;"`
	AutoReplyID      *uuid.UUID       `gorm:"type:uuid;index;not null;"`
	TriggerEventType TriggerEventType `gorm:"type:varchar(20);not null;"`

	Schedule *WebhookTriggerSchedule `gorm:"foreignKey:TriggerSettingID"`

	CreatedAt *time.Time `gorm:"type:timestamp"`
	UpdatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (s *WebhookTriggerSetting) TableName() string {
	return "webhook_trigger_settings"
}

// BeforeCreate hook - generates UUID before creating
func (s *WebhookTriggerSetting) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID != nil {
		return nil
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	s.ID = &id
	return nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(
		&Organization{},
		&AutoReply{},
		&WebhookTriggerSetting{},
		&WebhookTriggerSchedule{},
		&BusinessHour{},
	)
	if err != nil {
		panic(err)
	}
}
