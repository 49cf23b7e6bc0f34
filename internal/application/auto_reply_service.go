package application

import (
	"fmt"
	"time"

	"omni-autoreply/internal/domain"
	"omni-autoreply/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AutoReplyService struct - Application service implementing the webhook
// auto-reply use case. Resolution is pure over the loaded snapshot, so the
// service is safe for concurrent webhook handling.
type AutoReplyService struct {
	repo    output.AutoReplyRepository
	clients map[domain.ChannelType]output.MessageClient
}

// NewAutoReplyService func - Creates new auto-reply service
func NewAutoReplyService(repo output.AutoReplyRepository, clients map[domain.ChannelType]output.MessageClient) *AutoReplyService {
	return &AutoReplyService{
		repo:    repo,
		clients: clients,
	}
}

// HandleWebhook func - Use case: Handle incoming webhook events
func (s *AutoReplyService) HandleWebhook(request domain.WebhookRequest) error {
	for _, event := range request.Events {
		info := event.Info()
		logrus.Infof("Received webhook event: channel=%s, type=%s, userID=%s",
			info.Channel, domain.TriggerTypeOf(event), info.UserID)

		if err := s.handleEvent(request.OrganizationID, event); err != nil {
			logrus.Errorf("Failed to handle webhook event %s: %v", info.EventID, err)
			return err
		}
	}
	return nil
}

func (s *AutoReplyService) handleEvent(organizationID uuid.UUID, event domain.WebhookEvent) error {
	now := event.Info().Timestamp
	if now.IsZero() {
		now = time.Now()
	}

	winner, err := s.ResolveTrigger(organizationID, event, now)
	if err != nil {
		return err
	}
	if winner == nil {
		logrus.Debugf("No auto reply matched for event %s", event.Info().EventID)
		return nil
	}
	return s.dispatchReply(winner, event)
}

// ResolveTrigger func - Use case: pick the single best-matching rule for an
// event. Loads the organization's rule snapshot, builds the business-hour
// checker (an unknown timezone is surfaced, never defaulted), keeps rules
// bound to the event's trigger type with only those settings in play, orders
// them by the priority classifier and runs the four-pass resolution.
func (s *AutoReplyService) ResolveTrigger(organizationID uuid.UUID, event domain.WebhookEvent, now time.Time) (*domain.AutoReply, error) {
	snapshot, err := s.repo.GetRuleSnapshot(organizationID)
	if err != nil {
		return nil, err
	}

	hours, err := domain.NewBusinessHourChecker(snapshot.BusinessHours, snapshot.Timezone)
	if err != nil {
		return nil, err
	}

	eligible := eligibleRules(snapshot.AutoReplies, domain.TriggerTypeOf(event))
	ordered := orderByPriority(eligible)

	return FindBestTrigger(domain.NewIncomingEvent(event), ordered, now, hours), nil
}

// eligibleRules keeps rules that carry at least one trigger setting bound to
// the event's trigger type, narrowed to exactly those settings so a schedule
// bound to another event type never admits the rule. Each kept rule is a
// shallow copy; the snapshot stays untouched. Input order is preserved.
func eligibleRules(rules []*domain.AutoReply, triggerType domain.TriggerEventType) []*domain.AutoReply {
	eligible := make([]*domain.AutoReply, 0, len(rules))
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		var bound []domain.WebhookTriggerSetting
		for _, setting := range rule.TriggerSettings {
			if setting.TriggerEventType == triggerType {
				bound = append(bound, setting)
			}
		}
		if len(bound) == 0 {
			continue
		}
		scoped := *rule
		scoped.TriggerSettings = bound
		eligible = append(eligible, &scoped)
	}
	return eligible
}

// orderByPriority feeds the resolver rules in the classifier's global
// (category, priority) order, so the per-pass scan inside a category follows
// AutoReply.Priority rather than raw input order.
func orderByPriority(rules []*domain.AutoReply) []*domain.AutoReply {
	var settings []domain.WebhookTriggerSetting
	byID := make(map[uuid.UUID]*domain.AutoReply, len(rules))
	for _, rule := range rules {
		if rule.ID == nil {
			continue
		}
		byID[*rule.ID] = rule
		settings = append(settings, rule.TriggerSettings...)
	}

	sorted := domain.SortTriggerSettings(settings, byID)

	seen := make(map[uuid.UUID]bool, len(byID))
	ordered := make([]*domain.AutoReply, 0, len(rules))
	for _, setting := range sorted {
		if setting.AutoReplyID == nil || seen[*setting.AutoReplyID] {
			continue
		}
		rule, ok := byID[*setting.AutoReplyID]
		if !ok {
			continue
		}
		seen[*setting.AutoReplyID] = true
		ordered = append(ordered, rule)
	}
	return ordered
}

// dispatchReply - hands the winning rule to the channel's message client
func (s *AutoReplyService) dispatchReply(reply *domain.AutoReply, event domain.WebhookEvent) error {
	if reply.ReplyText == nil || *reply.ReplyText == "" {
		logrus.Warnf("Auto reply %v has no reply text configured", reply.ID)
		return nil
	}

	info := event.Info()
	client, ok := s.clients[info.Channel]
	if !ok {
		return fmt.Errorf("no message client registered for channel %s", info.Channel)
	}

	request := domain.ReplyMessageRequest{
		ReplyToken: info.ReplyToken,
		To:         info.UserID,
		Messages: []domain.OutgoingMessage{
			{
				Type: domain.MessageTypeText,
				Text: *reply.ReplyText,
			},
		},
	}

	if _, err := client.ReplyMessage(request); err != nil {
		return fmt.Errorf("failed to send auto reply: %w", err)
	}

	logrus.Infof("Auto reply %v fired for event %s", reply.ID, info.EventID)
	return nil
}
