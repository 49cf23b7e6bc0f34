package application

import (
	"time"

	"omni-autoreply/internal/domain"
)

// FindBestTrigger picks the single auto-reply rule that fires for an incoming
// event, or nil when no rule matches. Rules are scanned in four sequential
// passes by descending category: IG Story Keyword, IG Story General, General
// Keyword, General Time-based; the first qualifying rule of the
// highest-priority pass wins. Rules with unrecognized event types never fire.
//
// Within a pass the first qualifying rule in input order wins, so callers that
// need priority order inside a category must supply rules already sorted by
// AutoReply.Priority. AutoReplyService always feeds the output of
// domain.SortTriggerSettings here; see orderByPriority.
//
// Missing optional fields (no text, no story context, no keywords, no
// schedule) are not errors - the rule or pass simply cannot match and the scan
// moves on.
func FindBestTrigger(event domain.IncomingEvent, rules []*domain.AutoReply, now time.Time, hours *domain.BusinessHourChecker) *domain.AutoReply {
	var igStoryKeyword, igStoryGeneral, keyword, timed []*domain.AutoReply
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		switch rule.EventType {
		case domain.AutoReplyEventTypeIGStoryKeyword:
			igStoryKeyword = append(igStoryKeyword, rule)
		case domain.AutoReplyEventTypeIGStoryGeneral:
			igStoryGeneral = append(igStoryGeneral, rule)
		case domain.AutoReplyEventTypeKeyword:
			keyword = append(keyword, rule)
		case domain.AutoReplyEventTypeTime:
			timed = append(timed, rule)
		}
	}

	// Pass 1: IG Story replies matched on both story id and keyword
	if event.HasText() && event.HasIGStory() {
		for _, rule := range igStoryKeyword {
			if !rule.MatchesStory(event.IGStoryID) {
				continue
			}
			if !domain.MatchKeywords(rule.Keywords, event.Text) {
				continue
			}
			if scheduleActive(rule, now, hours) {
				return rule
			}
		}
	}

	// Pass 2: IG Story replies matched on story id alone
	if event.HasIGStory() {
		for _, rule := range igStoryGeneral {
			if rule.MatchesStory(event.IGStoryID) && scheduleActive(rule, now, hours) {
				return rule
			}
		}
	}

	// Pass 3: keyword replies on the message text
	if event.HasText() {
		for _, rule := range keyword {
			if domain.MatchKeywords(rule.Keywords, event.Text) && scheduleActive(rule, now, hours) {
				return rule
			}
		}
	}

	// Pass 4: time-based replies fire on schedule alone
	for _, rule := range timed {
		if scheduleActive(rule, now, hours) {
			return rule
		}
	}

	return nil
}

// scheduleActive reports whether any of the rule's trigger settings admits the
// instant. A rule with no trigger settings, or a setting without a schedule,
// is always active.
func scheduleActive(rule *domain.AutoReply, now time.Time, hours *domain.BusinessHourChecker) bool {
	if len(rule.TriggerSettings) == 0 {
		return true
	}
	for _, setting := range rule.TriggerSettings {
		if setting.Schedule.IsActive(now, hours) {
			return true
		}
	}
	return false
}
