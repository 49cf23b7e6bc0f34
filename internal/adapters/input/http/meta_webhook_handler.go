package http

import (
	"encoding/json"
	"time"

	"omni-autoreply/internal/domain"
	"omni-autoreply/internal/ports/input"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MetaWebhookHandler struct - Primary/Driving adapter for Facebook and
// Instagram webhooks. Both platforms deliver the same page-style payload; the
// top-level object field tells them apart.
type MetaWebhookHandler struct {
	service        input.AutoReplyService
	verifyToken    string
	organizationID uuid.UUID
}

// NewMetaWebhookHandler func - Creates new Meta webhook handler
func NewMetaWebhookHandler(service input.AutoReplyService, verifyToken string, organizationID uuid.UUID) *MetaWebhookHandler {
	return &MetaWebhookHandler{
		service:        service,
		verifyToken:    verifyToken,
		organizationID: organizationID,
	}
}

// metaWebhookPayload - wire format of a Meta webhook delivery
type metaWebhookPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		ID        string `json:"id"`
		Time      int64  `json:"time"`
		Messaging []metaMessaging `json:"messaging"`
	} `json:"entry"`
}

type metaMessaging struct {
	Sender struct {
		ID string `json:"id"`
	} `json:"sender"`
	Recipient struct {
		ID string `json:"id"`
	} `json:"recipient"`
	Timestamp int64 `json:"timestamp"`
	Message   *struct {
		MID     string `json:"mid"`
		Text    string `json:"text"`
		ReplyTo *struct {
			Story *struct {
				ID  string `json:"id"`
				URL string `json:"url"`
			} `json:"story"`
		} `json:"reply_to"`
	} `json:"message"`
	Postback *struct {
		Title   string `json:"title"`
		Payload string `json:"payload"`
	} `json:"postback"`
}

// VerifyWebhook func - Handles Meta's GET subscription handshake
// @Summary Meta Webhook verification
// @Description Echoes hub.challenge when the verify token matches
// @Tags Webhook
// @Produce plain
// @Success 200 {string} string
// @Router /webhook/meta [get]
func (h *MetaWebhookHandler) VerifyWebhook(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		return c.Status(fiber.StatusOK).SendString(challenge)
	}

	logrus.Warnf("Meta webhook verification failed: mode=%s", mode)
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"status":  "error",
		"message": "Verification failed",
	})
}

// HandleWebhook func - Handles incoming Facebook/Instagram webhook requests
// @Summary Meta Webhook
// @Description Handles webhook events from Facebook Messenger and Instagram
// @Tags Webhook
// @Accept application/json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /webhook/meta [post]
func (h *MetaWebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload metaWebhookPayload
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		logrus.Errorf("Failed to parse meta webhook payload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid payload",
		})
	}

	channel := channelForObject(payload.Object)
	if channel == "" {
		logrus.Warnf("Unsupported meta webhook object: %s", payload.Object)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ignored"})
	}

	var domainEvents []domain.WebhookEvent
	for _, entry := range payload.Entry {
		for _, messaging := range entry.Messaging {
			event := convertMetaMessaging(messaging, channel)
			if event != nil {
				domainEvents = append(domainEvents, event)
			}
		}
	}

	webhookReq := domain.WebhookRequest{
		OrganizationID: h.organizationID,
		Events:         domainEvents,
	}

	if err := h.service.HandleWebhook(webhookReq); err != nil {
		logrus.Errorf("Failed to handle meta webhook: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to process webhook",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
	})
}

// channelForObject - maps the payload object to a channel type
func channelForObject(object string) domain.ChannelType {
	switch object {
	case "page":
		return domain.ChannelTypeFacebook
	case "instagram":
		return domain.ChannelTypeInstagram
	default:
		return ""
	}
}

// convertMetaMessaging - Converts one messaging entry to a domain event.
// Instagram Story replies arrive as messages with a reply_to.story context.
func convertMetaMessaging(messaging metaMessaging, channel domain.ChannelType) domain.WebhookEvent {
	info := domain.EventInfo{
		Channel:   channel,
		UserID:    messaging.Sender.ID,
		Timestamp: time.UnixMilli(messaging.Timestamp),
	}

	switch {
	case messaging.Message != nil:
		info.EventID = messaging.Message.MID
		event := domain.MessageEvent{
			EventInfo: info,
			MessageID: messaging.Message.MID,
			Text:      messaging.Message.Text,
		}
		if messaging.Message.ReplyTo != nil && messaging.Message.ReplyTo.Story != nil {
			event.IGStoryID = messaging.Message.ReplyTo.Story.ID
		}
		return event
	case messaging.Postback != nil:
		return domain.PostbackEvent{
			EventInfo: info,
			Data:      messaging.Postback.Payload,
		}
	default:
		return nil
	}
}
