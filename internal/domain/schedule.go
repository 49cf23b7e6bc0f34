package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ScheduleType enumerates the closed set of schedule kinds
type ScheduleType string

const (
	// ScheduleTypeDaily - time-of-day window on a set of weekdays
	ScheduleTypeDaily ScheduleType = "DAILY"
	// ScheduleTypeMonthly - time-of-day window on one day of the month
	ScheduleTypeMonthly ScheduleType = "MONTHLY"
	// ScheduleTypeDateRange - absolute start/end timestamps
	ScheduleTypeDateRange ScheduleType = "DATE_RANGE"
	// ScheduleTypeBusinessHour - active inside the organization's business hours
	ScheduleTypeBusinessHour ScheduleType = "BUSINESS_HOUR"
	// ScheduleTypeNonBusinessHour - complement of BUSINESS_HOUR
	ScheduleTypeNonBusinessHour ScheduleType = "NON_BUSINESS_HOUR"
)

// IntList - int slice persisted as a jsonb column (weekday sets)
type IntList []int

// Value func - driver.Valuer
func (l IntList) Value() (driver.Value, error) {
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
func (l *IntList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported column type for IntList")
	}
}

// Contains func
func (l IntList) Contains(n int) bool {
	for _, item := range l {
		if item == n {
			return true
		}
	}
	return false
}

// WebhookTriggerSchedule struct - tagged union over schedule kinds. Type selects
// which fields are meaningful; exactly one kind per instance. Immutable
// configuration data once loaded.
type WebhookTriggerSchedule struct {
	ID               *uuid.UUID   `gorm:"type:uuid;primary_key;"`
	TriggerSettingID *uuid.UUID   `gorm:"type:uuid;index;"`
	Type             ScheduleType `gorm:"type:varchar(20);not null;"`

	// StartTime/EndTime are "HH:MM" clock values, used by DAILY and MONTHLY
	StartTime string `gorm:"type:varchar(8)"`
	EndTime   string `gorm:"type:varchar(8)"`
	// Weekdays holds ISO weekday numbers (1=Monday .. 7=Sunday), used by DAILY
	Weekdays IntList `gorm:"type:jsonb"`
	// DayOfMonth is used by MONTHLY
	DayOfMonth int
	// StartAt/EndAt are used by DATE_RANGE; a nil bound is open-ended
	StartAt *time.Time `gorm:"type:timestamp"`
	EndAt   *time.Time `gorm:"type:timestamp"`

	CreatedAt *time.Time `gorm:"type:timestamp"`
	UpdatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (s *WebhookTriggerSchedule) TableName() string {
	return "webhook_trigger_schedules"
}

// BeforeCreate hook - generates UUID before creating
func (s *WebhookTriggerSchedule) BeforeCreate(tx *gorm.DB) (err error) {
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

// IsActive reports whether the schedule admits the given instant. now is
// converted to the organization's timezone (carried by hours) before any
// time-of-day or weekday comparison. A nil schedule is always active.
// NON_BUSINESS_HOUR is the exact complement of BUSINESS_HOUR for the same
// instant, never an independent definition.
func (s *WebhookTriggerSchedule) IsActive(now time.Time, hours *BusinessHourChecker) bool {
	if s == nil {
		return true
	}

	local := now
	if hours != nil {
		local = now.In(hours.Location())
	}

	switch s.Type {
	case ScheduleTypeDaily:
		return s.dailyActive(local)
	case ScheduleTypeMonthly:
		return s.monthlyActive(local)
	case ScheduleTypeDateRange:
		return s.dateRangeActive(now)
	case ScheduleTypeBusinessHour:
		return hours != nil && hours.IsInBusinessHours(now)
	case ScheduleTypeNonBusinessHour:
		return hours == nil || hours.IsInNonBusinessHours(now)
	default:
		logrus.Warnf("Unknown schedule type: %s", s.Type)
		return false
	}
}

// dailyActive - weekday must be in the configured set and the local clock must
// fall inside [StartTime, EndTime], both ends inclusive. An empty weekday set
// means every day.
func (s *WebhookTriggerSchedule) dailyActive(local time.Time) bool {
	if len(s.Weekdays) > 0 && !s.Weekdays.Contains(isoWeekday(local)) {
		return false
	}
	return s.windowContains(local)
}

func (s *WebhookTriggerSchedule) monthlyActive(local time.Time) bool {
	if local.Day() != s.DayOfMonth {
		return false
	}
	return s.windowContains(local)
}

func (s *WebhookTriggerSchedule) dateRangeActive(now time.Time) bool {
	if s.StartAt != nil && now.Before(*s.StartAt) {
		return false
	}
	if s.EndAt != nil && now.After(*s.EndAt) {
		return false
	}
	return true
}

// windowContains - inclusive [start, end] time-of-day check. Malformed clock
// values are rejected at construction; if one slips through the window counts
// as inactive so the evaluator stays total.
func (s *WebhookTriggerSchedule) windowContains(local time.Time) bool {
	start, err := parseClock(s.StartTime)
	if err != nil {
		logrus.Warnf("Schedule %v has malformed start time %q", s.ID, s.StartTime)
		return false
	}
	end, err := parseClock(s.EndTime)
	if err != nil {
		logrus.Warnf("Schedule %v has malformed end time %q", s.ID, s.EndTime)
		return false
	}
	minute := minuteOfDay(local)
	return minute >= start && minute <= end
}

// parseClock returns minutes since midnight for a "HH:MM" or "HH:MM:SS" value
func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		t, err = time.Parse("15:04", value)
	}
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// isoWeekday maps time.Weekday to ISO numbering (1=Monday .. 7=Sunday)
func isoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}
