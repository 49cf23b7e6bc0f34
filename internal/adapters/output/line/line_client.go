package line

import (
	"fmt"

	"omni-autoreply/internal/domain"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/sirupsen/logrus"
)

// LineClientAdapter struct - Output adapter for the LINE messaging platform
type LineClientAdapter struct {
	client *messaging_api.MessagingApiAPI
}

// NewLineClientAdapter func - Creates new LINE client adapter
func NewLineClientAdapter(channelToken string) (*LineClientAdapter, error) {
	client, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE messaging API client: %w", err)
	}

	return &LineClientAdapter{
		client: client,
	}, nil
}

// ReplyMessage - Sends auto-reply messages via the event's reply token. Falls
// back to a push when the event carried no reply token (e.g. beacon pings
// processed after the token expired).
func (a *LineClientAdapter) ReplyMessage(request domain.ReplyMessageRequest) (*domain.MessageResponse, error) {
	if request.ReplyToken == "" {
		return a.PushMessage(domain.PushMessageRequest{
			To:       request.To,
			Messages: request.Messages,
		})
	}

	messages, err := convertToLineMessages(request.Messages)
	if err != nil {
		return nil, err
	}

	req := &messaging_api.ReplyMessageRequest{
		ReplyToken: request.ReplyToken,
		Messages:   messages,
	}

	if _, err := a.client.ReplyMessage(req); err != nil {
		return nil, fmt.Errorf("failed to send reply message: %w", err)
	}

	logrus.Infof("Successfully sent reply message with token: %s", request.ReplyToken)

	return &domain.MessageResponse{
		Status:  "success",
		Message: "Reply message sent successfully",
	}, nil
}

// PushMessage - Sends push messages to a LINE user directly
func (a *LineClientAdapter) PushMessage(request domain.PushMessageRequest) (*domain.MessageResponse, error) {
	messages, err := convertToLineMessages(request.Messages)
	if err != nil {
		return nil, err
	}

	req := &messaging_api.PushMessageRequest{
		To:       request.To,
		Messages: messages,
	}

	if _, err := a.client.PushMessage(req, ""); err != nil {
		return nil, fmt.Errorf("failed to send push message: %w", err)
	}

	logrus.Infof("Successfully sent push message to: %s", request.To)

	return &domain.MessageResponse{
		Status:  "success",
		Message: "Push message sent successfully",
	}, nil
}

// convertToLineMessages - Helper to convert domain messages to LINE SDK messages
func convertToLineMessages(messages []domain.OutgoingMessage) ([]messaging_api.MessageInterface, error) {
	converted := make([]messaging_api.MessageInterface, 0, len(messages))

	for _, msg := range messages {
		switch msg.Type {
		case domain.MessageTypeText:
			converted = append(converted, &messaging_api.TextMessage{
				Text: msg.Text,
			})
		default:
			logrus.Warnf("Unsupported message type: %s", msg.Type)
		}
	}

	if len(converted) == 0 {
		return nil, fmt.Errorf("no valid messages to send")
	}
	return converted, nil
}
