package http

import (
	"bytes"
	"net/http"
	"time"

	"omni-autoreply/internal/domain"
	"omni-autoreply/internal/ports/input"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/sirupsen/logrus"
)

// LineWebhookHandler struct - Primary/Driving adapter for the LINE webhook
type LineWebhookHandler struct {
	service        input.AutoReplyService
	channelSecret  string
	organizationID uuid.UUID
}

// NewLineWebhookHandler func - Creates new LINE webhook handler
func NewLineWebhookHandler(service input.AutoReplyService, channelSecret string, organizationID uuid.UUID) *LineWebhookHandler {
	return &LineWebhookHandler{
		service:        service,
		channelSecret:  channelSecret,
		organizationID: organizationID,
	}
}

// HandleWebhook func - Handles incoming LINE webhook requests
// @Summary LINE Webhook
// @Description Handles webhook events from LINE Messaging API
// @Tags Webhook
// @Accept application/json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /webhook/line [post]
func (h *LineWebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	// Convert Fiber request to http.Request for the LINE SDK
	body := c.Body()
	httpReq, err := http.NewRequest("POST", "/webhook/line", bytes.NewReader(body))
	if err != nil {
		logrus.Errorf("Failed to create http request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Internal error",
		})
	}

	// Copy headers
	c.Request().Header.VisitAll(func(key, value []byte) {
		httpReq.Header.Set(string(key), string(value))
	})

	// Parse and validate webhook request
	cb, err := webhook.ParseRequest(h.channelSecret, httpReq)
	if err != nil {
		logrus.Errorf("Failed to parse webhook request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid signature or request",
		})
	}

	// Convert LINE SDK events to domain events
	domainEvents := make([]domain.WebhookEvent, 0, len(cb.Events))
	for _, event := range cb.Events {
		domainEvent := h.convertToDomainEvent(event)
		if domainEvent != nil {
			domainEvents = append(domainEvents, domainEvent)
		}
	}

	webhookReq := domain.WebhookRequest{
		OrganizationID: h.organizationID,
		Events:         domainEvents,
	}

	if err := h.service.HandleWebhook(webhookReq); err != nil {
		logrus.Errorf("Failed to handle webhook: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to process webhook",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
	})
}

// convertToDomainEvent - Converts a LINE SDK event to a domain event
func (h *LineWebhookHandler) convertToDomainEvent(event webhook.EventInterface) domain.WebhookEvent {
	switch e := event.(type) {
	case webhook.MessageEvent:
		return h.convertMessageEvent(e)
	case webhook.PostbackEvent:
		return domain.PostbackEvent{
			EventInfo: domain.EventInfo{
				EventID:    e.WebhookEventId,
				Channel:    domain.ChannelTypeLine,
				UserID:     sourceUserID(e.Source),
				Timestamp:  time.UnixMilli(e.Timestamp),
				ReplyToken: e.ReplyToken,
			},
			Data: e.Postback.Data,
		}
	case webhook.FollowEvent:
		return domain.FollowEvent{
			EventInfo: domain.EventInfo{
				EventID:    e.WebhookEventId,
				Channel:    domain.ChannelTypeLine,
				UserID:     sourceUserID(e.Source),
				Timestamp:  time.UnixMilli(e.Timestamp),
				ReplyToken: e.ReplyToken,
			},
		}
	case webhook.BeaconEvent:
		return domain.BeaconEvent{
			EventInfo: domain.EventInfo{
				EventID:    e.WebhookEventId,
				Channel:    domain.ChannelTypeLine,
				UserID:     sourceUserID(e.Source),
				Timestamp:  time.UnixMilli(e.Timestamp),
				ReplyToken: e.ReplyToken,
			},
			HardwareID: e.Beacon.Hwid,
			BeaconType: string(e.Beacon.Type),
		}
	default:
		logrus.Warnf("Unsupported event type: %T", event)
		return nil
	}
}

// convertMessageEvent - Converts a message event; only text messages can
// trigger keyword rules
func (h *LineWebhookHandler) convertMessageEvent(event webhook.MessageEvent) domain.WebhookEvent {
	switch msg := event.Message.(type) {
	case webhook.TextMessageContent:
		return domain.MessageEvent{
			EventInfo: domain.EventInfo{
				EventID:    event.WebhookEventId,
				Channel:    domain.ChannelTypeLine,
				UserID:     sourceUserID(event.Source),
				Timestamp:  time.UnixMilli(event.Timestamp),
				ReplyToken: event.ReplyToken,
			},
			MessageID: msg.Id,
			Text:      msg.Text,
		}
	default:
		logrus.Infof("Ignoring non-text message: %T", msg)
		return nil
	}
}

// sourceUserID - Extracts the user id from an event source
func sourceUserID(source webhook.SourceInterface) string {
	switch s := source.(type) {
	case webhook.UserSource:
		return s.UserId
	case webhook.GroupSource:
		return s.UserId
	case webhook.RoomSource:
		return s.UserId
	default:
		return ""
	}
}
