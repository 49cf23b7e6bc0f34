package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures

// MessageType represents the type of an outgoing message
type MessageType string

const (
	// MessageTypeText - plain text message
	MessageTypeText MessageType = "text"
)

type (
	// WebhookRequest struct - a batch of webhook events for one organization
	WebhookRequest struct {
		OrganizationID uuid.UUID
		Events         []WebhookEvent
	}

	// OutgoingMessage struct - channel-agnostic outgoing message DTO
	OutgoingMessage struct {
		Type MessageType
		Text string
	}

	// ReplyMessageRequest struct - reply to the event that triggered the rule.
	// ReplyToken is used by channels that support reply tokens (LINE); To is
	// the recipient id used by channels that do not (Facebook, Instagram).
	ReplyMessageRequest struct {
		ReplyToken string
		To         string
		Messages   []OutgoingMessage
	}

	// PushMessageRequest struct - direct push to a user
	PushMessageRequest struct {
		To       string
		Messages []OutgoingMessage
	}

	// MessageResponse struct - channel API response DTO
	MessageResponse struct {
		Status  string
		Message string
	}

	// RuleSnapshot struct - immutable per-organization view the resolver works
	// over. Holds only enabled rules, ordered by priority ASC, with trigger
	// settings and schedules preloaded. Treated as read-only for the duration
	// of a resolution.
	RuleSnapshot struct {
		OrganizationID uuid.UUID
		Timezone       string
		AutoReplies    []*AutoReply
		BusinessHours  []BusinessHour
		LoadedAt       time.Time
	}

	// AutoReplyRequest struct - Domain request DTO for rule administration
	AutoReplyRequest struct {
		ID              *uuid.UUID
		OrganizationID  *uuid.UUID
		Name            *string
		EventType       *AutoReplyEventType
		Priority        *int
		Keywords        []string
		IGStoryIDs      []string
		Status          *AutoReplyStatus
		ReplyText       *string
		TriggerSettings []TriggerSettingRequest
	}

	// TriggerSettingRequest struct - nested trigger setting DTO
	TriggerSettingRequest struct {
		TriggerEventType TriggerEventType
		Schedule         *ScheduleRequest
	}

	// ScheduleRequest struct - nested schedule DTO
	ScheduleRequest struct {
		Type       ScheduleType
		StartTime  string
		EndTime    string
		Weekdays   []int
		DayOfMonth int
		StartAt    *time.Time
		EndAt      *time.Time
	}

	// QueryAutoReplyRequest struct - Domain query request DTO
	QueryAutoReplyRequest struct {
		ID             *uuid.UUID
		OrganizationID *uuid.UUID
		Name           *string
		EventType      *string
		Status         *string

		Limit      *int
		Page       *int
		OrderBy    *string
		Asc        *bool
		Pagination *Pagination
		SortMethod *SortMethod
	}

	// Pagination struct
	Pagination struct {
		Limit  int
		Offset int
	}

	// SortMethod struct
	SortMethod struct {
		Asc     bool
		OrderBy string
	}

	// AutoReplyResponse struct - Domain response DTO
	AutoReplyResponse struct {
		ID             *uuid.UUID          `json:"id,omitempty"`
		OrganizationID *uuid.UUID          `json:"organization_id,omitempty"`
		Name           *string             `json:"name,omitempty"`
		EventType      *AutoReplyEventType `json:"event_type,omitempty"`
		Priority       *int                `json:"priority,omitempty"`
		Keywords       []string            `json:"keywords,omitempty"`
		IGStoryIDs     []string            `json:"ig_story_ids,omitempty"`
		Status         *AutoReplyStatus    `json:"status,omitempty"`
		ReplyText      *string             `json:"reply_text,omitempty"`
		CreatedAt      *time.Time          `json:"created_at,omitempty"`
		UpdatedAt      *time.Time          `json:"updated_at,omitempty"`
		DeletedAt      *gorm.DeletedAt     `json:"deleted_at,omitempty"`
	}

	// AutoReplyListResponse struct - Domain list response DTO
	AutoReplyListResponse struct {
		AutoReplies []AutoReplyResponse
		CurrentPage *int
		PerPage     *int
		TotalItem   *int64
	}
)
