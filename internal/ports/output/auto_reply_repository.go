package output

import (
	"omni-autoreply/internal/domain"

	"github.com/google/uuid"
)

// AutoReplyRepository interface - Output port
// Defines what the application needs from rule persistence
type AutoReplyRepository interface {
	// GetRuleSnapshot returns the organization's enabled auto-reply rules with
	// trigger settings and schedules preloaded, ordered by priority ASC, plus
	// its business-hour rows and timezone. The snapshot is an immutable view;
	// callers must not mutate it during a resolution.
	GetRuleSnapshot(organizationID uuid.UUID) (*domain.RuleSnapshot, error)

	CreateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error)
	UpdateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error)
	DeleteAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error)
	GetAutoReply(condition domain.QueryAutoReplyRequest) (*domain.AutoReplyListResponse, error)
}
