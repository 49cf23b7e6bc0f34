package postgres

import (
	"errors"
	"time"

	"omni-autoreply/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AutoReplyRepository struct - Secondary/Driven adapter for PostgreSQL
type AutoReplyRepository struct {
	dbGorm *gorm.DB
}

// NewAutoReplyRepository func - Creates new PostgreSQL repository
func NewAutoReplyRepository(dbGorm *gorm.DB) *AutoReplyRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &AutoReplyRepository{
		dbGorm: dbGorm,
	}
}

// GetRuleSnapshot func - Loads the organization's enabled rules, business
// hours and timezone as one immutable view. Rules come back ordered by
// priority ASC so the resolver's intra-category scan order equals priority
// order even for callers that skip the sorter.
func (p *AutoReplyRepository) GetRuleSnapshot(organizationID uuid.UUID) (*domain.RuleSnapshot, error) {
	var organization domain.Organization
	err := p.dbGorm.First(&organization, "id = ?", organizationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}

	var replies []*domain.AutoReply
	err = p.dbGorm.
		Preload("TriggerSettings").
		Preload("TriggerSettings.Schedule").
		Where("organization_id = ? AND status = ?", organizationID, domain.AutoReplyStatusEnabled).
		Order("priority ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}

	var hours []domain.BusinessHour
	err = p.dbGorm.
		Where("organization_id = ?", organizationID).
		Order("day_of_week ASC, start_time ASC").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}

	return &domain.RuleSnapshot{
		OrganizationID: organizationID,
		Timezone:       organization.Timezone,
		AutoReplies:    replies,
		BusinessHours:  hours,
		LoadedAt:       time.Now(),
	}, nil
}

// CreateAutoReply func - Creates a new auto-reply rule with its trigger
// settings and schedules in one transaction
func (p *AutoReplyRepository) CreateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	reply := domain.AutoReply{
		ID:             request.ID,
		OrganizationID: request.OrganizationID,
		Name:           request.Name,
		Keywords:       domain.StringList(request.Keywords),
		IGStoryIDs:     domain.StringList(request.IGStoryIDs),
		ReplyText:      request.ReplyText,
	}
	if request.EventType != nil {
		reply.EventType = *request.EventType
	}
	if request.Priority != nil {
		reply.Priority = *request.Priority
	}
	if request.Status != nil {
		reply.Status = *request.Status
	} else {
		reply.Status = domain.AutoReplyStatusEnabled
	}
	for _, setting := range request.TriggerSettings {
		reply.TriggerSettings = append(reply.TriggerSettings, toTriggerSetting(setting))
	}

	err := p.dbGorm.Create(&reply).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return toAutoReplyResponse(&reply), nil
}

// UpdateAutoReply func - Updates an existing rule; trigger settings are
// replaced wholesale when the request carries any
func (p *AutoReplyRepository) UpdateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	if request.ID == nil {
		return nil, domain.ErrAutoReplyNotFound
	}

	var reply domain.AutoReply
	err := p.dbGorm.First(&reply, "id = ?", *request.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAutoReplyNotFound
		}
		return nil, err
	}

	if request.Name != nil {
		reply.Name = request.Name
	}
	if request.EventType != nil {
		reply.EventType = *request.EventType
	}
	if request.Priority != nil {
		reply.Priority = *request.Priority
	}
	if request.Keywords != nil {
		reply.Keywords = domain.StringList(request.Keywords)
	}
	if request.IGStoryIDs != nil {
		reply.IGStoryIDs = domain.StringList(request.IGStoryIDs)
	}
	if request.Status != nil {
		reply.Status = *request.Status
	}
	if request.ReplyText != nil {
		reply.ReplyText = request.ReplyText
	}

	err = p.dbGorm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&reply).Error; err != nil {
			return err
		}
		if len(request.TriggerSettings) == 0 {
			return nil
		}
		if err := tx.Where("auto_reply_id = ?", *reply.ID).Delete(&domain.WebhookTriggerSetting{}).Error; err != nil {
			return err
		}
		for _, settingReq := range request.TriggerSettings {
			setting := toTriggerSetting(settingReq)
			setting.AutoReplyID = reply.ID
			if err := tx.Create(&setting).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return toAutoReplyResponse(&reply), nil
}

// DeleteAutoReply func - Soft-deletes a rule
func (p *AutoReplyRepository) DeleteAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	if request.ID == nil {
		return nil, domain.ErrAutoReplyNotFound
	}

	var reply domain.AutoReply
	err := p.dbGorm.First(&reply, "id = ?", *request.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAutoReplyNotFound
		}
		return nil, err
	}

	err = p.dbGorm.Delete(&reply).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return toAutoReplyResponse(&reply), nil
}

// GetAutoReply func - Lists rules with filtering and pagination
func (p *AutoReplyRepository) GetAutoReply(condition domain.QueryAutoReplyRequest) (*domain.AutoReplyListResponse, error) {
	var (
		replies []domain.AutoReply
		total   int64
	)

	query := p.dbGorm.Model(&domain.AutoReply{})
	if condition.ID != nil {
		query = query.Where("id = ?", *condition.ID)
	}
	if condition.OrganizationID != nil {
		query = query.Where("organization_id = ?", *condition.OrganizationID)
	}
	if condition.Name != nil {
		query = query.Where("name LIKE ?", "%"+*condition.Name+"%")
	}
	if condition.EventType != nil {
		query = query.Where("event_type = ?", *condition.EventType)
	}
	if condition.Status != nil {
		query = query.Where("status = ?", *condition.Status)
	}

	err := query.Count(&total).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	if condition.SortMethod != nil {
		direction := "ASC"
		if !condition.SortMethod.Asc {
			direction = "DESC"
		}
		query = query.Order(condition.SortMethod.OrderBy + " " + direction)
	}
	if condition.Pagination != nil {
		query = query.Limit(condition.Pagination.Limit).Offset(condition.Pagination.Offset)
	}

	err = query.Preload("TriggerSettings").Preload("TriggerSettings.Schedule").Find(&replies).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	response := domain.AutoReplyListResponse{
		CurrentPage: condition.Page,
		PerPage:     condition.Limit,
		TotalItem:   &total,
	}
	for i := range replies {
		response.AutoReplies = append(response.AutoReplies, *toAutoReplyResponse(&replies[i]))
	}
	return &response, nil
}

func toTriggerSetting(request domain.TriggerSettingRequest) domain.WebhookTriggerSetting {
	setting := domain.WebhookTriggerSetting{
		TriggerEventType: request.TriggerEventType,
	}
	if request.Schedule != nil {
		setting.Schedule = &domain.WebhookTriggerSchedule{
			Type:       request.Schedule.Type,
			StartTime:  request.Schedule.StartTime,
			EndTime:    request.Schedule.EndTime,
			Weekdays:   domain.IntList(request.Schedule.Weekdays),
			DayOfMonth: request.Schedule.DayOfMonth,
			StartAt:    request.Schedule.StartAt,
			EndAt:      request.Schedule.EndAt,
		}
	}
	return setting
}

func toAutoReplyResponse(reply *domain.AutoReply) *domain.AutoReplyResponse {
	return &domain.AutoReplyResponse{
		ID:             reply.ID,
		OrganizationID: reply.OrganizationID,
		Name:           reply.Name,
		EventType:      &reply.EventType,
		Priority:       &reply.Priority,
		Keywords:       reply.Keywords,
		IGStoryIDs:     reply.IGStoryIDs,
		Status:         &reply.Status,
		ReplyText:      reply.ReplyText,
		CreatedAt:      reply.CreatedAt,
		UpdatedAt:      reply.UpdatedAt,
		DeletedAt:      reply.DeletedAt,
	}
}
