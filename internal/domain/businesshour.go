package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BusinessHour struct - one weekly business-hour window of an organization.
// Several rows may exist per weekday (split shifts). StartTime must not be
// later than EndTime; cross-midnight spans are not supported.
type BusinessHour struct {
	ID             *uuid.UUID `gorm:"type:uuid;primary_key;"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index;not null;"`
	// DayOfWeek is an ISO weekday number, 1=Monday .. 7=Sunday
	DayOfWeek int    `gorm:"not null;"`
	StartTime string `gorm:"type:varchar(8);not null;"`
	EndTime   string `gorm:"type:varchar(8);not null;"`
	IsActive  bool   `gorm:"not null;default:true;"`

	CreatedAt *time.Time `gorm:"type:timestamp"`
	UpdatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (b *BusinessHour) TableName() string {
	return "business_hours"
}

// BeforeCreate hook - generates UUID before creating
func (b *BusinessHour) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID != nil {
		return nil
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	b.ID = &id
	return nil
}

// BusinessHourChecker struct - stateless evaluator over an organization's
// business-hour rows in its configured timezone. Built per resolution from an
// immutable snapshot; never persisted.
type BusinessHourChecker struct {
	rows []BusinessHour
	loc  *time.Location
}

// NewBusinessHourChecker builds a checker for the given rows and IANA timezone.
// An unknown timezone is a configuration error returned to the caller; the
// checker never silently falls back to another zone.
func NewBusinessHourChecker(rows []BusinessHour, timezone string) (*BusinessHourChecker, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}
	return &BusinessHourChecker{rows: rows, loc: loc}, nil
}

// Location func
func (c *BusinessHourChecker) Location() *time.Location {
	return c.loc
}

// IsInBusinessHours reports whether t falls inside any active business-hour
// window for its weekday. The window is half-open [start, end): the end instant
// itself is outside business hours, so a boundary never matches both a window
// and the one that starts right after it. Returns on the first matching row.
func (c *BusinessHourChecker) IsInBusinessHours(t time.Time) bool {
	local := t.In(c.loc)
	weekday := isoWeekday(local)
	minute := minuteOfDay(local)

	for _, row := range c.rows {
		if !row.IsActive || row.DayOfWeek != weekday {
			continue
		}
		start, err := parseClock(row.StartTime)
		if err != nil {
			logrus.Warnf("Business hour %v has malformed start time %q", row.ID, row.StartTime)
			continue
		}
		end, err := parseClock(row.EndTime)
		if err != nil {
			logrus.Warnf("Business hour %v has malformed end time %q", row.ID, row.EndTime)
			continue
		}
		if minute >= start && minute < end {
			return true
		}
	}
	return false
}

// IsInNonBusinessHours is the exact boolean complement of IsInBusinessHours
func (c *BusinessHourChecker) IsInNonBusinessHours(t time.Time) bool {
	return !c.IsInBusinessHours(t)
}
