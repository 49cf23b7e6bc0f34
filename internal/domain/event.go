package domain

import (
	"strings"
	"time"
)

// ChannelType represents the messaging platform a webhook event came from
type ChannelType string

const (
	// ChannelTypeLine - LINE Messaging API
	ChannelTypeLine ChannelType = "LINE"
	// ChannelTypeFacebook - Facebook Messenger
	ChannelTypeFacebook ChannelType = "FACEBOOK"
	// ChannelTypeInstagram - Instagram Messaging
	ChannelTypeInstagram ChannelType = "INSTAGRAM"
)

// TriggerEventType represents the event class a trigger setting binds to
type TriggerEventType string

const (
	// TriggerEventTypeMessage - chat message received
	TriggerEventTypeMessage TriggerEventType = "MESSAGE"
	// TriggerEventTypePostback - postback action received
	TriggerEventTypePostback TriggerEventType = "POSTBACK"
	// TriggerEventTypeFollow - user followed/added the bot
	TriggerEventTypeFollow TriggerEventType = "FOLLOW"
	// TriggerEventTypeBeacon - beacon ping received
	TriggerEventTypeBeacon TriggerEventType = "BEACON"
)

// EventInfo struct - fields shared by every webhook event variant
type EventInfo struct {
	EventID    string
	Channel    ChannelType
	UserID     string
	Timestamp  time.Time
	ReplyToken string
}

// WebhookEvent interface - closed variant set over the event kinds the engine
// understands. Only the types in this file implement it; the unexported marker
// method keeps the set sealed so TriggerTypeOf stays total.
type WebhookEvent interface {
	Info() EventInfo
	webhookEvent()
}

// MessageEvent struct - a chat message from a user
type MessageEvent struct {
	EventInfo
	MessageID string
	Text      string
	// IGStoryID is set when the message is a reply to an Instagram Story
	IGStoryID string
}

// PostbackEvent struct - a postback action from a rich menu or button
type PostbackEvent struct {
	EventInfo
	Data string
}

// FollowEvent struct - a user followed or added the bot as a friend
type FollowEvent struct {
	EventInfo
}

// BeaconEvent struct - a beacon enter/leave ping
type BeaconEvent struct {
	EventInfo
	HardwareID string
	BeaconType string
}

// Info func
func (e MessageEvent) Info() EventInfo { return e.EventInfo }

// Info func
func (e PostbackEvent) Info() EventInfo { return e.EventInfo }

// Info func
func (e FollowEvent) Info() EventInfo { return e.EventInfo }

// Info func
func (e BeaconEvent) Info() EventInfo { return e.EventInfo }

func (MessageEvent) webhookEvent()  {}
func (PostbackEvent) webhookEvent() {}
func (FollowEvent) webhookEvent()   {}
func (BeaconEvent) webhookEvent()   {}

// TriggerTypeOf maps a webhook event variant to its trigger event type.
// The mapping is 1:1 and total over the sealed variant set.
func TriggerTypeOf(event WebhookEvent) TriggerEventType {
	switch event.(type) {
	case MessageEvent:
		return TriggerEventTypeMessage
	case PostbackEvent:
		return TriggerEventTypePostback
	case FollowEvent:
		return TriggerEventTypeFollow
	case BeaconEvent:
		return TriggerEventTypeBeacon
	default:
		// unreachable while the variant set stays sealed
		return TriggerEventTypeMessage
	}
}

// IncomingEvent struct - normalized projection of a webhook event consumed by
// the resolution engine. Empty Text / IGStoryID mean the event carries no text
// or story context; the engine never sees channel-specific fields.
type IncomingEvent struct {
	Text      string
	IGStoryID string
}

// NewIncomingEvent derives the engine projection from a channel webhook event
func NewIncomingEvent(event WebhookEvent) IncomingEvent {
	switch e := event.(type) {
	case MessageEvent:
		return IncomingEvent{Text: e.Text, IGStoryID: e.IGStoryID}
	default:
		return IncomingEvent{}
	}
}

// HasText func
func (e IncomingEvent) HasText() bool {
	return strings.TrimSpace(e.Text) != ""
}

// HasIGStory func
func (e IncomingEvent) HasIGStory() bool {
	return e.IGStoryID != ""
}
