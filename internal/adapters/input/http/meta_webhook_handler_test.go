package http

import (
	"io"
	netHttp "net/http"
	"strings"
	"testing"
	"time"

	"omni-autoreply/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MockAutoReplyService implements input.AutoReplyService for testing
type MockAutoReplyService struct {
	HandleWebhookFunc func(request domain.WebhookRequest) error

	// Captured values for assertions
	LastRequest *domain.WebhookRequest
}

func (m *MockAutoReplyService) HandleWebhook(request domain.WebhookRequest) error {
	m.LastRequest = &request
	if m.HandleWebhookFunc != nil {
		return m.HandleWebhookFunc(request)
	}
	return nil
}

func (m *MockAutoReplyService) ResolveTrigger(organizationID uuid.UUID, event domain.WebhookEvent, now time.Time) (*domain.AutoReply, error) {
	return nil, nil
}

func newMetaTestApp(service *MockAutoReplyService, verifyToken string) *fiber.App {
	handler := NewMetaWebhookHandler(service, verifyToken, uuid.New())
	app := fiber.New()
	app.Get("/webhook/meta", handler.VerifyWebhook)
	app.Post("/webhook/meta", handler.HandleWebhook)
	return app
}

func TestVerifyWebhook_EchoesChallengeForValidToken(t *testing.T) {
	app := newMetaTestApp(&MockAutoReplyService{}, "secret-token")

	req, _ := netHttp.NewRequest(netHttp.MethodGet,
		"/webhook/meta?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=challenge-123", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}

	if resp.StatusCode != netHttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "challenge-123" {
		t.Errorf("expected the challenge to be echoed, got %q", string(body))
	}
}

func TestVerifyWebhook_RejectsWrongToken(t *testing.T) {
	app := newMetaTestApp(&MockAutoReplyService{}, "secret-token")

	req, _ := netHttp.NewRequest(netHttp.MethodGet,
		"/webhook/meta?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=challenge-123", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}

	if resp.StatusCode != netHttp.StatusForbidden {
		t.Errorf("expected 403 for a wrong verify token, got %d", resp.StatusCode)
	}
}

func TestHandleWebhook_InstagramStoryReplyBecomesMessageEvent(t *testing.T) {
	service := &MockAutoReplyService{}
	app := newMetaTestApp(service, "secret-token")

	payload := `{
		"object": "instagram",
		"entry": [{
			"id": "page-1",
			"time": 1700000000000,
			"messaging": [{
				"sender": {"id": "IG123"},
				"recipient": {"id": "page-1"},
				"timestamp": 1700000000000,
				"message": {
					"mid": "mid-1",
					"text": "love it",
					"reply_to": {"story": {"id": "story-42", "url": "https://example.test/story"}}
				}
			}]
		}]
	}`

	req, _ := netHttp.NewRequest(netHttp.MethodPost, "/webhook/meta", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != netHttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if service.LastRequest == nil || len(service.LastRequest.Events) != 1 {
		t.Fatalf("expected one domain event, got %+v", service.LastRequest)
	}
	message, ok := service.LastRequest.Events[0].(domain.MessageEvent)
	if !ok {
		t.Fatalf("expected a MessageEvent, got %T", service.LastRequest.Events[0])
	}
	if message.Channel != domain.ChannelTypeInstagram {
		t.Errorf("expected INSTAGRAM channel, got %s", message.Channel)
	}
	if message.Text != "love it" {
		t.Errorf("expected message text to survive conversion, got %q", message.Text)
	}
	if message.IGStoryID != "story-42" {
		t.Errorf("expected the story context to be carried, got %q", message.IGStoryID)
	}
	if message.UserID != "IG123" {
		t.Errorf("expected the sender id as user id, got %q", message.UserID)
	}
}

func TestHandleWebhook_FacebookPostbackBecomesPostbackEvent(t *testing.T) {
	service := &MockAutoReplyService{}
	app := newMetaTestApp(service, "secret-token")

	payload := `{
		"object": "page",
		"entry": [{
			"id": "page-1",
			"time": 1700000000000,
			"messaging": [{
				"sender": {"id": "FB456"},
				"recipient": {"id": "page-1"},
				"timestamp": 1700000000000,
				"postback": {"title": "Get Started", "payload": "GET_STARTED"}
			}]
		}]
	}`

	req, _ := netHttp.NewRequest(netHttp.MethodPost, "/webhook/meta", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != netHttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if service.LastRequest == nil || len(service.LastRequest.Events) != 1 {
		t.Fatalf("expected one domain event, got %+v", service.LastRequest)
	}
	postback, ok := service.LastRequest.Events[0].(domain.PostbackEvent)
	if !ok {
		t.Fatalf("expected a PostbackEvent, got %T", service.LastRequest.Events[0])
	}
	if postback.Channel != domain.ChannelTypeFacebook {
		t.Errorf("expected FACEBOOK channel, got %s", postback.Channel)
	}
	if postback.Data != "GET_STARTED" {
		t.Errorf("expected the postback payload to be carried, got %q", postback.Data)
	}
}

func TestHandleWebhook_UnsupportedObjectIsIgnored(t *testing.T) {
	service := &MockAutoReplyService{}
	app := newMetaTestApp(service, "secret-token")

	req, _ := netHttp.NewRequest(netHttp.MethodPost, "/webhook/meta", strings.NewReader(`{"object": "whatsapp"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}

	if resp.StatusCode != netHttp.StatusOK {
		t.Errorf("expected 200 for an unsupported object, got %d", resp.StatusCode)
	}
	if service.LastRequest != nil {
		t.Error("expected the service to be skipped for unsupported objects")
	}
}

func TestHandleWebhook_MalformedPayloadIsRejected(t *testing.T) {
	app := newMetaTestApp(&MockAutoReplyService{}, "secret-token")

	req, _ := netHttp.NewRequest(netHttp.MethodPost, "/webhook/meta", strings.NewReader("not-json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}

	if resp.StatusCode != netHttp.StatusBadRequest {
		t.Errorf("expected 400 for a malformed payload, got %d", resp.StatusCode)
	}
}
