package meta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"omni-autoreply/internal/domain"

	"github.com/sirupsen/logrus"
)

const defaultGraphBaseURL = "https://graph.facebook.com/v19.0"

// MetaClientAdapter struct - Output adapter for the Facebook/Instagram Graph
// send API. Both Messenger and Instagram messaging go through the page's
// /me/messages endpoint; replies and pushes are the same call since Meta has
// no reply-token concept.
type MetaClientAdapter struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// NewMetaClientAdapter func - Creates new Meta client adapter
func NewMetaClientAdapter(baseURL, pageAccessToken string) *MetaClientAdapter {
	if baseURL == "" {
		baseURL = defaultGraphBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logrus.Infof("Meta client adapter initialized with base URL: %s", baseURL)

	return &MetaClientAdapter{
		httpClient:  httpClient,
		baseURL:     baseURL,
		accessToken: pageAccessToken,
	}
}

type sendMessageRequest struct {
	Recipient struct {
		ID string `json:"id"`
	} `json:"recipient"`
	Message struct {
		Text string `json:"text"`
	} `json:"message"`
	MessagingType string `json:"messaging_type"`
}

type sendMessageResponse struct {
	MessageID string `json:"message_id"`
	Error     *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// ReplyMessage - Sends the auto reply back to the sender
func (a *MetaClientAdapter) ReplyMessage(request domain.ReplyMessageRequest) (*domain.MessageResponse, error) {
	return a.send(request.To, request.Messages)
}

// PushMessage - Sends messages to a user directly
func (a *MetaClientAdapter) PushMessage(request domain.PushMessageRequest) (*domain.MessageResponse, error) {
	return a.send(request.To, request.Messages)
}

func (a *MetaClientAdapter) send(recipientID string, messages []domain.OutgoingMessage) (*domain.MessageResponse, error) {
	if recipientID == "" {
		return nil, fmt.Errorf("no recipient id to send to")
	}

	sent := 0
	for _, msg := range messages {
		if msg.Type != domain.MessageTypeText {
			logrus.Warnf("Unsupported message type: %s", msg.Type)
			continue
		}
		if err := a.sendText(recipientID, msg.Text); err != nil {
			return nil, err
		}
		sent++
	}

	if sent == 0 {
		return nil, fmt.Errorf("no valid messages to send")
	}

	logrus.Infof("Successfully sent %d message(s) to: %s", sent, recipientID)

	return &domain.MessageResponse{
		Status:  "success",
		Message: "Message sent successfully",
	}, nil
}

func (a *MetaClientAdapter) sendText(recipientID, text string) error {
	payload := sendMessageRequest{MessagingType: "RESPONSE"}
	payload.Recipient.ID = recipientID
	payload.Message.Text = text

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	url := fmt.Sprintf("%s/me/messages?access_token=%s", a.baseURL, a.accessToken)
	resp, err := a.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to call graph send API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read graph API response: %w", err)
	}

	var result sendMessageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("failed to parse graph API response: %w", err)
	}
	if result.Error != nil {
		return fmt.Errorf("graph API error %d (%s): %s", result.Error.Code, result.Error.Type, result.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graph API returned status %d", resp.StatusCode)
	}
	return nil
}
