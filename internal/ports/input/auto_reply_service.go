package input

import (
	"time"

	"omni-autoreply/internal/domain"

	"github.com/google/uuid"
)

// AutoReplyService interface - Input port (use case)
// Defines what the application can do with incoming webhook events
type AutoReplyService interface {
	// HandleWebhook processes incoming webhook events for one organization,
	// resolving and dispatching at most one auto reply per event
	HandleWebhook(request domain.WebhookRequest) error

	// ResolveTrigger picks the single auto-reply rule that fires for the event
	// at the given instant, or nil when no rule matches
	ResolveTrigger(organizationID uuid.UUID, event domain.WebhookEvent, now time.Time) (*domain.AutoReply, error)
}
