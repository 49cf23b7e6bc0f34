package application

import (
	"omni-autoreply/internal/domain"
	"omni-autoreply/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// AutoReplyAdminService struct - Application service implementing rule
// administration use cases
type AutoReplyAdminService struct {
	repo output.AutoReplyRepository
}

// NewAutoReplyAdminService func - Creates new rule administration service
func NewAutoReplyAdminService(repo output.AutoReplyRepository) *AutoReplyAdminService {
	return &AutoReplyAdminService{
		repo: repo,
	}
}

// CreateAutoReply func - Use case: Create a new auto-reply rule
func (s *AutoReplyAdminService) CreateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	result, err := s.repo.CreateAutoReply(request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}

// UpdateAutoReply func - Use case: Update an existing auto-reply rule
func (s *AutoReplyAdminService) UpdateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	return s.repo.UpdateAutoReply(request)
}

// DeleteAutoReply func - Use case: Delete an auto-reply rule
func (s *AutoReplyAdminService) DeleteAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	return s.repo.DeleteAutoReply(request)
}

// GetAutoReply func - Use case: Get rule(s) with pagination and filtering
func (s *AutoReplyAdminService) GetAutoReply(condition domain.QueryAutoReplyRequest) (*domain.AutoReplyListResponse, error) {
	var (
		page    int
		perPage int
		offset  int
	)
	if condition.Page != nil {
		page = *condition.Page
	} else {
		page = 1
		condition.Page = &page
	}
	if condition.Limit != nil {
		perPage = *condition.Limit
	} else {
		perPage = 100
		condition.Limit = &perPage
	}
	offset = (page - 1) * perPage
	condition.Pagination = &domain.Pagination{
		Limit:  perPage,
		Offset: offset,
	}

	asc := true
	if condition.Asc != nil {
		asc = *condition.Asc
	}
	if condition.OrderBy != nil {
		condition.SortMethod = &domain.SortMethod{
			Asc:     asc,
			OrderBy: *condition.OrderBy,
		}
	} else {
		condition.SortMethod = &domain.SortMethod{
			Asc:     asc,
			OrderBy: "priority",
		}
	}
	return s.repo.GetAutoReply(condition)
}
