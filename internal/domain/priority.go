package domain

import (
	"sort"

	"github.com/google/uuid"
)

// TriggerCategory - priority tier of an auto-reply rule; lower fires first
type TriggerCategory int

const (
	// CategoryIGStoryKeyword - IG Story rule matched on a keyword
	CategoryIGStoryKeyword TriggerCategory = iota
	// CategoryIGStoryGeneral - IG Story rule without keyword condition
	CategoryIGStoryGeneral
	// CategoryGeneralKeyword - keyword rule outside story context
	CategoryGeneralKeyword
	// CategoryGeneralTime - time-based rule outside story context
	CategoryGeneralTime
	// CategoryOther - any other combination, lowest regular tier
	CategoryOther
)

// Trigger settings whose AutoReply cannot be resolved sink below every tier
const (
	categoryMissing = 999
	priorityMissing = 999
)

// CategoryOf assigns the priority tier of an auto-reply rule. IG Story rules
// (non-empty IGStoryIDs) outrank general rules; keyword rules outrank
// time-based ones within each group.
func CategoryOf(reply *AutoReply) TriggerCategory {
	igStory := reply.IsIGStory()
	switch {
	case igStory && reply.EventType == AutoReplyEventTypeKeyword:
		return CategoryIGStoryKeyword
	case igStory && reply.EventType == AutoReplyEventTypeTime:
		return CategoryIGStoryGeneral
	case !igStory && reply.EventType == AutoReplyEventTypeKeyword:
		return CategoryGeneralKeyword
	case !igStory && reply.EventType == AutoReplyEventTypeTime:
		return CategoryGeneralTime
	default:
		return CategoryOther
	}
}

// SortTriggerSettings orders trigger settings by (category, rule priority).
// The sort is stable: settings with equal keys keep their relative input
// order, and no further tie-break exists. Settings whose AutoReplyID does not
// resolve in repliesByID rank (999, 999), below everything else. The input
// slice is left untouched.
func SortTriggerSettings(settings []WebhookTriggerSetting, repliesByID map[uuid.UUID]*AutoReply) []WebhookTriggerSetting {
	sorted := make([]WebhookTriggerSetting, len(settings))
	copy(sorted, settings)

	key := func(setting WebhookTriggerSetting) (int, int) {
		if setting.AutoReplyID == nil {
			return categoryMissing, priorityMissing
		}
		reply, ok := repliesByID[*setting.AutoReplyID]
		if !ok || reply == nil {
			return categoryMissing, priorityMissing
		}
		return int(CategoryOf(reply)), reply.Priority
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		categoryI, priorityI := key(sorted[i])
		categoryJ, priorityJ := key(sorted[j])
		if categoryI != categoryJ {
			return categoryI < categoryJ
		}
		return priorityI < priorityJ
	})
	return sorted
}
