package input

import "omni-autoreply/internal/domain"

// AutoReplyAdminService interface - Input port (use case)
// Defines what the application can do with auto-reply rule administration
type AutoReplyAdminService interface {
	CreateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error)
	UpdateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error)
	DeleteAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error)
	GetAutoReply(condition domain.QueryAutoReplyRequest) (*domain.AutoReplyListResponse, error)
}
