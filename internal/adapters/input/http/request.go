package http

import (
	"time"

	"github.com/google/uuid"
)

type (
	// AutoReplyRequest struct - HTTP request DTO for rule administration
	AutoReplyRequest struct {
		ID              *uuid.UUID              `json:"id" validate:"omitempty" form:"id" query:"id"`
		OrganizationID  *uuid.UUID              `json:"organization_id" validate:"required" form:"organization_id" query:"organization_id"`
		Name            *string                 `json:"name" validate:"required,max=100" form:"name" query:"name"`
		EventType       *string                 `json:"event_type" validate:"required,oneof=KEYWORD TIME IG_STORY_KEYWORD IG_STORY_GENERAL" form:"event_type" query:"event_type"`
		Priority        *int                    `json:"priority" validate:"omitempty,gte=0" form:"priority" query:"priority"`
		Keywords        []string                `json:"keywords" validate:"omitempty,dive,min=1" form:"keywords" query:"keywords"`
		IGStoryIDs      []string                `json:"ig_story_ids" validate:"omitempty,dive,min=1" form:"ig_story_ids" query:"ig_story_ids"`
		Status          *string                 `json:"status" validate:"omitempty,oneof=ENABLED DISABLED" form:"status" query:"status"`
		ReplyText       *string                 `json:"reply_text" validate:"omitempty" form:"reply_text" query:"reply_text"`
		TriggerSettings []TriggerSettingRequest `json:"trigger_settings" validate:"omitempty,dive"`
	}

	// TriggerSettingRequest struct - nested trigger setting DTO
	TriggerSettingRequest struct {
		TriggerEventType string           `json:"trigger_event_type" validate:"required,oneof=MESSAGE POSTBACK FOLLOW BEACON"`
		Schedule         *ScheduleRequest `json:"schedule" validate:"omitempty"`
	}

	// ScheduleRequest struct - nested schedule DTO. Clock fields are validated
	// here so malformed values never reach the evaluator.
	ScheduleRequest struct {
		Type       string     `json:"type" validate:"required,oneof=DAILY MONTHLY DATE_RANGE BUSINESS_HOUR NON_BUSINESS_HOUR"`
		StartTime  string     `json:"start_time" validate:"omitempty,clock"`
		EndTime    string     `json:"end_time" validate:"omitempty,clock"`
		Weekdays   []int      `json:"weekdays" validate:"omitempty,dive,gte=1,lte=7"`
		DayOfMonth int        `json:"day_of_month" validate:"omitempty,gte=1,lte=31"`
		StartAt    *time.Time `json:"start_at"`
		EndAt      *time.Time `json:"end_at"`
	}

	// QueryAutoReplyRequest struct - HTTP query request DTO
	QueryAutoReplyRequest struct {
		ID             *uuid.UUID `json:"id" form:"id" query:"id"`
		OrganizationID *uuid.UUID `json:"organization_id" form:"organization_id" query:"organization_id"`
		Name           *string    `json:"name" form:"name" query:"name"`
		EventType      *string    `json:"event_type" validate:"omitempty,oneof=KEYWORD TIME IG_STORY_KEYWORD IG_STORY_GENERAL" form:"event_type" query:"event_type"`
		Status         *string    `json:"status" validate:"omitempty,oneof=ENABLED DISABLED" form:"status" query:"status"`

		Limit   *int    `json:"limit,omitempty" form:"limit" query:"limit"`
		Page    *int    `json:"page,omitempty" form:"page" query:"page"`
		OrderBy *string `json:"order_by,omitempty" form:"order_by" query:"order_by"`
		Asc     *bool   `json:"asc,omitempty" form:"asc" query:"asc"`
	}
)
