package memory

import (
	"sync"
	"time"

	"omni-autoreply/internal/domain"
	"omni-autoreply/internal/ports/output"

	"github.com/google/uuid"
)

// Compile-time check to ensure RuleSnapshotCache implements the repository port
var _ output.AutoReplyRepository = (*RuleSnapshotCache)(nil)

// RuleSnapshotCache struct - caching decorator over the repository port.
// Webhook traffic resolves against the same per-organization rule snapshot for
// the cache TTL, so hot paths avoid a database round-trip per event. Uses
// sync.Map for thread-safe concurrent access; expired snapshots are removed
// lazily on read. Rule mutations invalidate the owning organization's entry.
type RuleSnapshotCache struct {
	next      output.AutoReplyRepository
	snapshots sync.Map
	ttl       time.Duration
}

// NewRuleSnapshotCache creates a cache in front of the given repository.
// ttl: duration a cached snapshot stays valid
func NewRuleSnapshotCache(next output.AutoReplyRepository, ttl time.Duration) *RuleSnapshotCache {
	return &RuleSnapshotCache{
		next: next,
		ttl:  ttl,
	}
}

// GetTTL returns the configured snapshot lifetime
func (c *RuleSnapshotCache) GetTTL() time.Duration {
	return c.ttl
}

// GetRuleSnapshot returns the cached snapshot when present and fresh,
// otherwise loads from the underlying repository and caches the result.
func (c *RuleSnapshotCache) GetRuleSnapshot(organizationID uuid.UUID) (*domain.RuleSnapshot, error) {
	value, exists := c.snapshots.Load(organizationID)
	if exists {
		snapshot, ok := value.(*domain.RuleSnapshot)
		if ok && time.Since(snapshot.LoadedAt) <= c.ttl {
			return snapshot, nil
		}
		// Lazy cleanup: drop stale or malformed entries
		c.snapshots.Delete(organizationID)
	}

	snapshot, err := c.next.GetRuleSnapshot(organizationID)
	if err != nil {
		return nil, err
	}
	c.snapshots.Store(organizationID, snapshot)
	return snapshot, nil
}

// Invalidate removes an organization's cached snapshot. Idempotent.
func (c *RuleSnapshotCache) Invalidate(organizationID uuid.UUID) {
	c.snapshots.Delete(organizationID)
}

// CreateAutoReply func - passes through and invalidates the organization entry
func (c *RuleSnapshotCache) CreateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	response, err := c.next.CreateAutoReply(request)
	if err != nil {
		return nil, err
	}
	c.invalidateFor(response)
	return response, nil
}

// UpdateAutoReply func - passes through and invalidates the organization entry
func (c *RuleSnapshotCache) UpdateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	response, err := c.next.UpdateAutoReply(request)
	if err != nil {
		return nil, err
	}
	c.invalidateFor(response)
	return response, nil
}

// DeleteAutoReply func - passes through and invalidates the organization entry
func (c *RuleSnapshotCache) DeleteAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	response, err := c.next.DeleteAutoReply(request)
	if err != nil {
		return nil, err
	}
	c.invalidateFor(response)
	return response, nil
}

// GetAutoReply func - reads always hit the underlying repository; listings
// must see writes immediately
func (c *RuleSnapshotCache) GetAutoReply(condition domain.QueryAutoReplyRequest) (*domain.AutoReplyListResponse, error) {
	return c.next.GetAutoReply(condition)
}

func (c *RuleSnapshotCache) invalidateFor(response *domain.AutoReplyResponse) {
	if response != nil && response.OrganizationID != nil {
		c.Invalidate(*response.OrganizationID)
	}
}
