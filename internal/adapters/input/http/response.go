package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Unauthorized response
	Unauthorized = Status{Code: http.StatusUnauthorized, Message: []string{"Sorry, We are not able to process your request. Please try again"}}
	// Forbidden response
	Forbidden = Status{Code: http.StatusForbidden, Message: []string{"Sorry, Permission denied"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Data not found"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`

	CurrentPage *int   `json:"current_page,omitempty"`
	PerPage     *int   `json:"per_page,omitempty"`
	TotalItem   *int64 `json:"total_item,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// AutoReplyResponse struct - HTTP response DTO for a single rule
	AutoReplyResponse struct {
		ID             *uuid.UUID      `json:"id,omitempty" mapstructure:"id"`
		OrganizationID *uuid.UUID      `json:"organization_id,omitempty" mapstructure:"organization_id"`
		Name           *string         `json:"name,omitempty" mapstructure:"name"`
		EventType      *string         `json:"event_type,omitempty" mapstructure:"event_type"`
		Priority       *int            `json:"priority,omitempty" mapstructure:"priority"`
		Keywords       []string        `json:"keywords,omitempty" mapstructure:"keywords"`
		IGStoryIDs     []string        `json:"ig_story_ids,omitempty" mapstructure:"ig_story_ids"`
		Status         *string         `json:"status,omitempty" mapstructure:"status"`
		ReplyText      *string         `json:"reply_text,omitempty" mapstructure:"reply_text"`
		CreatedAt      *time.Time      `json:"created_at,omitempty" mapstructure:"created_at"`
		UpdatedAt      *time.Time      `json:"updated_at,omitempty" mapstructure:"updated_at"`
		DeletedAt      *gorm.DeletedAt `json:"deleted_at,omitempty" mapstructure:"deleted_at"`
	}

	// AutoReplyListResponse struct - HTTP response DTO for a rule list
	AutoReplyListResponse struct {
		AutoReplies []AutoReplyResponse `json:"auto_replies,omitempty" mapstructure:"auto_replies"`

		CurrentPage *int   `json:"current_page,omitempty" mapstructure:"current_page"`
		PerPage     *int   `json:"per_page,omitempty" mapstructure:"per_page"`
		TotalItem   *int64 `json:"total_item,omitempty" mapstructure:"total_item"`
	}
)
