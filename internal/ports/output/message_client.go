package output

import "omni-autoreply/internal/domain"

// MessageClient interface - Output port
// Defines what the application needs from a messaging platform to deliver the
// winning auto reply. One implementation exists per channel.
type MessageClient interface {
	// ReplyMessage sends messages in reply to the triggering event
	ReplyMessage(request domain.ReplyMessageRequest) (*domain.MessageResponse, error)

	// PushMessage sends messages to a user directly
	PushMessage(request domain.PushMessageRequest) (*domain.MessageResponse, error)
}
