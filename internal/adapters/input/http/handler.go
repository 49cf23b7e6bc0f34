package http

import (
	"errors"

	"omni-autoreply/internal/domain"
	"omni-autoreply/internal/ports/input"
	"omni-autoreply/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for rule administration
type HTTPHandler struct {
	srv       input.AutoReplyAdminService
	db        *gorm.DB
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.AutoReplyAdminService, db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		db:        db,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// CreateAutoReply func
// CreateAutoReply godoc
// @Summary Create auto-reply rule
// @Description Create auto-reply rule
// @Tags AutoReply
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/auto-reply [post]
// @Produce json
// @param CreateAutoReply body AutoReplyRequest true "CreateAutoReply"
func (hdl *HTTPHandler) CreateAutoReply(c *fiber.Ctx) error {
	var request AutoReplyRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	response, err := hdl.srv.CreateAutoReply(toDomainRequest(request))
	if err != nil {
		logrus.Errorln(err)
		msg := ResponseBody{
			Status: InternalServerError,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusInternalServerError).JSON(msg)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toHTTPResponse(response)})
}

// UpdateAutoReply func
// UpdateAutoReply godoc
// @Summary Update auto-reply rule
// @Description Update auto-reply rule
// @Tags AutoReply
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/auto-reply [put]
// @Produce json
// @param UpdateAutoReply body AutoReplyRequest true "UpdateAutoReply"
func (hdl *HTTPHandler) UpdateAutoReply(c *fiber.Ctx) error {
	var request AutoReplyRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if request.ID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	response, err := hdl.srv.UpdateAutoReply(toDomainRequest(request))
	if err != nil {
		if errors.Is(err, domain.ErrAutoReplyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
		}
		msg := ResponseBody{
			Status: InternalServerError,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusInternalServerError).JSON(msg)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toHTTPResponse(response)})
}

// DeleteAutoReply func
// DeleteAutoReply godoc
// @Summary Delete auto-reply rule
// @Description Delete auto-reply rule
// @Tags AutoReply
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/auto-reply/{id} [delete]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) DeleteAutoReply(c *fiber.Ctx) error {
	id := c.Params("id")
	uid, err := uuid.Parse(id)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	response, err := hdl.srv.DeleteAutoReply(domain.AutoReplyRequest{ID: &uid})
	if err != nil {
		if errors.Is(err, domain.ErrAutoReplyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
		}
		msg := ResponseBody{
			Status: InternalServerError,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusInternalServerError).JSON(msg)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toHTTPResponse(response)})
}

// GetAutoReply func
// GetAutoReply godoc
// @Summary Get auto-reply rules
// @Description Get auto-reply rules with pagination and filtering
// @Tags AutoReply
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/auto-reply [get]
// @Produce json
// @param id query string false "uuid"
// @param organization_id query string false "uuid"
// @param page query int false "page"
// @param limit query int false "limit"
// @param order_by query string false "order_by"
// @param asc query bool false "asc"
// @param name query string false "name"
// @param event_type query string false "event_type"
// @param status query string false "status"
func (hdl *HTTPHandler) GetAutoReply(c *fiber.Ctx) error {
	condition := QueryAutoReplyRequest{}
	err := c.QueryParser(&condition)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	err = hdl.validator.ValidateStruct(condition)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	id := c.Params("id")
	if id != "" {
		uid, err := uuid.Parse(id)
		if err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
		}
		condition.ID = &uid
	}

	domainCondition := domain.QueryAutoReplyRequest{
		ID:             condition.ID,
		OrganizationID: condition.OrganizationID,
		Name:           condition.Name,
		EventType:      condition.EventType,
		Status:         condition.Status,
		Limit:          condition.Limit,
		Page:           condition.Page,
		OrderBy:        condition.OrderBy,
		Asc:            condition.Asc,
	}
	result, err := hdl.srv.GetAutoReply(domainCondition)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	data := make([]AutoReplyResponse, 0, len(result.AutoReplies))
	for i := range result.AutoReplies {
		data = append(data, *toHTTPResponse(&result.AutoReplies[i]))
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:      Success,
		Data:        data,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
		TotalItem:   result.TotalItem,
	})
}

// toDomainRequest - Converts HTTP request to domain request
func toDomainRequest(request AutoReplyRequest) domain.AutoReplyRequest {
	domainReq := domain.AutoReplyRequest{
		ID:             request.ID,
		OrganizationID: request.OrganizationID,
		Name:           request.Name,
		EventType:      (*domain.AutoReplyEventType)(request.EventType),
		Priority:       request.Priority,
		Keywords:       request.Keywords,
		IGStoryIDs:     request.IGStoryIDs,
		Status:         (*domain.AutoReplyStatus)(request.Status),
		ReplyText:      request.ReplyText,
	}
	for _, setting := range request.TriggerSettings {
		domainSetting := domain.TriggerSettingRequest{
			TriggerEventType: domain.TriggerEventType(setting.TriggerEventType),
		}
		if setting.Schedule != nil {
			domainSetting.Schedule = &domain.ScheduleRequest{
				Type:       domain.ScheduleType(setting.Schedule.Type),
				StartTime:  setting.Schedule.StartTime,
				EndTime:    setting.Schedule.EndTime,
				Weekdays:   setting.Schedule.Weekdays,
				DayOfMonth: setting.Schedule.DayOfMonth,
				StartAt:    setting.Schedule.StartAt,
				EndAt:      setting.Schedule.EndAt,
			}
		}
		domainReq.TriggerSettings = append(domainReq.TriggerSettings, domainSetting)
	}
	return domainReq
}

// toHTTPResponse - Converts domain response to HTTP response
func toHTTPResponse(response *domain.AutoReplyResponse) *AutoReplyResponse {
	if response == nil {
		return nil
	}
	return &AutoReplyResponse{
		ID:             response.ID,
		OrganizationID: response.OrganizationID,
		Name:           response.Name,
		EventType:      (*string)(response.EventType),
		Priority:       response.Priority,
		Keywords:       response.Keywords,
		IGStoryIDs:     response.IGStoryIDs,
		Status:         (*string)(response.Status),
		ReplyText:      response.ReplyText,
		CreatedAt:      response.CreatedAt,
		UpdatedAt:      response.UpdatedAt,
		DeletedAt:      response.DeletedAt,
	}
}
