package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utcChecker(t *testing.T, rows []BusinessHour) *BusinessHourChecker {
	t.Helper()
	checker, err := NewBusinessHourChecker(rows, "UTC")
	require.NoError(t, err)
	return checker
}

func TestScheduleIsActive_NilScheduleAlwaysActive(t *testing.T) {
	var schedule *WebhookTriggerSchedule
	assert.True(t, schedule.IsActive(time.Now(), utcChecker(t, nil)))
}

func TestScheduleIsActive_Daily(t *testing.T) {
	schedule := &WebhookTriggerSchedule{
		Type:      ScheduleTypeDaily,
		StartTime: "09:00",
		EndTime:   "18:00",
		Weekdays:  IntList{1, 2, 3, 4, 5},
	}
	checker := utcChecker(t, nil)

	// Monday inside the window
	assert.True(t, schedule.IsActive(mondayAt(t, "10:00:00", time.UTC), checker))
	// both window ends are inclusive
	assert.True(t, schedule.IsActive(mondayAt(t, "09:00:00", time.UTC), checker))
	assert.True(t, schedule.IsActive(mondayAt(t, "18:00:00", time.UTC), checker))
	// outside the window
	assert.False(t, schedule.IsActive(mondayAt(t, "18:01:00", time.UTC), checker))
	assert.False(t, schedule.IsActive(mondayAt(t, "08:59:00", time.UTC), checker))

	// 2026-08-29 is a Saturday, not in the weekday set
	saturday, err := time.ParseInLocation("2006-01-02 15:04:05", "2026-08-29 10:00:00", time.UTC)
	require.NoError(t, err)
	assert.False(t, schedule.IsActive(saturday, checker))
}

func TestScheduleIsActive_DailyConvertsTimezone(t *testing.T) {
	schedule := &WebhookTriggerSchedule{
		Type:      ScheduleTypeDaily,
		StartTime: "09:00",
		EndTime:   "18:00",
		Weekdays:  IntList{1},
	}
	checker, err := NewBusinessHourChecker(nil, "Asia/Bangkok")
	require.NoError(t, err)

	// 03:00 UTC Monday = 10:00 Monday in Bangkok, inside the window
	assert.True(t, schedule.IsActive(mondayAt(t, "03:00:00", time.UTC), checker))
	// 15:00 UTC Monday = 22:00 Monday in Bangkok, outside
	assert.False(t, schedule.IsActive(mondayAt(t, "15:00:00", time.UTC), checker))
}

func TestScheduleIsActive_Monthly(t *testing.T) {
	schedule := &WebhookTriggerSchedule{
		Type:       ScheduleTypeMonthly,
		StartTime:  "00:00",
		EndTime:    "12:00",
		DayOfMonth: 24,
	}
	checker := utcChecker(t, nil)

	assert.True(t, schedule.IsActive(mondayAt(t, "08:00:00", time.UTC), checker))
	assert.False(t, schedule.IsActive(mondayAt(t, "13:00:00", time.UTC), checker))

	// wrong day of month
	otherDay, err := time.ParseInLocation("2006-01-02 15:04:05", "2026-08-25 08:00:00", time.UTC)
	require.NoError(t, err)
	assert.False(t, schedule.IsActive(otherDay, checker))
}

func TestScheduleIsActive_DateRange(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	schedule := &WebhookTriggerSchedule{
		Type:    ScheduleTypeDateRange,
		StartAt: &start,
		EndAt:   &end,
	}
	checker := utcChecker(t, nil)

	assert.True(t, schedule.IsActive(mondayAt(t, "10:00:00", time.UTC), checker))
	// both bounds are inclusive
	assert.True(t, schedule.IsActive(start, checker))
	assert.True(t, schedule.IsActive(end, checker))
	assert.False(t, schedule.IsActive(start.Add(-time.Second), checker))
	assert.False(t, schedule.IsActive(end.Add(time.Second), checker))
}

func TestScheduleIsActive_DateRangeOpenEndedBounds(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	schedule := &WebhookTriggerSchedule{
		Type:    ScheduleTypeDateRange,
		StartAt: &start,
	}
	checker := utcChecker(t, nil)

	assert.True(t, schedule.IsActive(start.AddDate(1, 0, 0), checker))
	assert.False(t, schedule.IsActive(start.Add(-time.Second), checker))
}

func TestScheduleIsActive_BusinessHourDelegates(t *testing.T) {
	checker := utcChecker(t, mondayNineToSix())
	schedule := &WebhookTriggerSchedule{Type: ScheduleTypeBusinessHour}

	assert.True(t, schedule.IsActive(mondayAt(t, "10:00:00", time.UTC), checker))
	assert.False(t, schedule.IsActive(mondayAt(t, "20:00:00", time.UTC), checker))
	// the checker's half-open end boundary shows through
	assert.False(t, schedule.IsActive(mondayAt(t, "18:00:00", time.UTC), checker))
}

func TestScheduleIsActive_NonBusinessHourIsExactComplement(t *testing.T) {
	checker := utcChecker(t, mondayNineToSix())
	businessHour := &WebhookTriggerSchedule{Type: ScheduleTypeBusinessHour}
	nonBusinessHour := &WebhookTriggerSchedule{Type: ScheduleTypeNonBusinessHour}

	for _, clock := range []string{"00:00:00", "08:59:59", "09:00:00", "12:00:00", "17:59:59", "18:00:00", "23:59:59"} {
		at := mondayAt(t, clock, time.UTC)
		assert.NotEqual(t, businessHour.IsActive(at, checker), nonBusinessHour.IsActive(at, checker),
			"exactly one of the pair must be active at %s", clock)
	}
}

func TestScheduleIsActive_MalformedClockIsInactive(t *testing.T) {
	schedule := &WebhookTriggerSchedule{
		Type:      ScheduleTypeDaily,
		StartTime: "not-a-clock",
		EndTime:   "18:00",
		Weekdays:  IntList{1},
	}
	assert.False(t, schedule.IsActive(mondayAt(t, "10:00:00", time.UTC), utcChecker(t, nil)))
}

func TestScheduleIsActive_UnknownTypeIsInactive(t *testing.T) {
	schedule := &WebhookTriggerSchedule{Type: ScheduleType("YEARLY")}
	assert.False(t, schedule.IsActive(time.Now(), utcChecker(t, nil)))
}

func TestParseClock_AcceptsBothLayouts(t *testing.T) {
	minutes, err := parseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minutes)

	minutes, err = parseClock("09:30:45")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minutes)

	_, err = parseClock("25:00")
	assert.Error(t, err)
}
