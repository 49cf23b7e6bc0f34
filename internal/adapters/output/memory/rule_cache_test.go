package memory

import (
	"errors"
	"testing"
	"time"

	"omni-autoreply/internal/domain"

	"github.com/google/uuid"
)

// stubRepository counts snapshot loads so tests can observe cache hits
type stubRepository struct {
	SnapshotLoads int
	SnapshotErr   error
}

func (s *stubRepository) GetRuleSnapshot(organizationID uuid.UUID) (*domain.RuleSnapshot, error) {
	s.SnapshotLoads++
	if s.SnapshotErr != nil {
		return nil, s.SnapshotErr
	}
	return &domain.RuleSnapshot{
		OrganizationID: organizationID,
		Timezone:       "UTC",
		LoadedAt:       time.Now(),
	}, nil
}

func (s *stubRepository) CreateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	return &domain.AutoReplyResponse{OrganizationID: request.OrganizationID}, nil
}

func (s *stubRepository) UpdateAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	return &domain.AutoReplyResponse{OrganizationID: request.OrganizationID}, nil
}

func (s *stubRepository) DeleteAutoReply(request domain.AutoReplyRequest) (*domain.AutoReplyResponse, error) {
	return &domain.AutoReplyResponse{OrganizationID: request.OrganizationID}, nil
}

func (s *stubRepository) GetAutoReply(condition domain.QueryAutoReplyRequest) (*domain.AutoReplyListResponse, error) {
	return &domain.AutoReplyListResponse{}, nil
}

func TestGetRuleSnapshot_FreshEntryServedFromCache(t *testing.T) {
	repo := &stubRepository{}
	cache := NewRuleSnapshotCache(repo, time.Minute)
	organizationID := uuid.New()

	first, err := cache.GetRuleSnapshot(organizationID)
	if err != nil {
		t.Fatalf("GetRuleSnapshot returned error: %v", err)
	}
	second, err := cache.GetRuleSnapshot(organizationID)
	if err != nil {
		t.Fatalf("GetRuleSnapshot returned error: %v", err)
	}

	if repo.SnapshotLoads != 1 {
		t.Errorf("expected a single repository load, got %d", repo.SnapshotLoads)
	}
	if first != second {
		t.Error("expected the cached snapshot instance to be reused")
	}
}

func TestGetRuleSnapshot_ExpiredEntryReloads(t *testing.T) {
	repo := &stubRepository{}
	cache := NewRuleSnapshotCache(repo, time.Nanosecond)
	organizationID := uuid.New()

	if _, err := cache.GetRuleSnapshot(organizationID); err != nil {
		t.Fatalf("GetRuleSnapshot returned error: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := cache.GetRuleSnapshot(organizationID); err != nil {
		t.Fatalf("GetRuleSnapshot returned error: %v", err)
	}

	if repo.SnapshotLoads != 2 {
		t.Errorf("expected an expired entry to reload, got %d loads", repo.SnapshotLoads)
	}
}

func TestGetRuleSnapshot_ErrorsAreNotCached(t *testing.T) {
	repo := &stubRepository{SnapshotErr: errors.New("database down")}
	cache := NewRuleSnapshotCache(repo, time.Minute)
	organizationID := uuid.New()

	if _, err := cache.GetRuleSnapshot(organizationID); err == nil {
		t.Fatal("expected repository error to surface")
	}

	repo.SnapshotErr = nil
	if _, err := cache.GetRuleSnapshot(organizationID); err != nil {
		t.Fatalf("expected recovery after repository error, got %v", err)
	}
	if repo.SnapshotLoads != 2 {
		t.Errorf("expected both calls to hit the repository, got %d loads", repo.SnapshotLoads)
	}
}

func TestGetRuleSnapshot_OrganizationsAreIsolated(t *testing.T) {
	repo := &stubRepository{}
	cache := NewRuleSnapshotCache(repo, time.Minute)

	if _, err := cache.GetRuleSnapshot(uuid.New()); err != nil {
		t.Fatalf("GetRuleSnapshot returned error: %v", err)
	}
	if _, err := cache.GetRuleSnapshot(uuid.New()); err != nil {
		t.Fatalf("GetRuleSnapshot returned error: %v", err)
	}

	if repo.SnapshotLoads != 2 {
		t.Errorf("expected one load per organization, got %d", repo.SnapshotLoads)
	}
}

func TestRuleMutationsInvalidateSnapshot(t *testing.T) {
	repo := &stubRepository{}
	cache := NewRuleSnapshotCache(repo, time.Minute)
	organizationID := uuid.New()

	if _, err := cache.GetRuleSnapshot(organizationID); err != nil {
		t.Fatalf("GetRuleSnapshot returned error: %v", err)
	}

	if _, err := cache.UpdateAutoReply(domain.AutoReplyRequest{OrganizationID: &organizationID}); err != nil {
		t.Fatalf("UpdateAutoReply returned error: %v", err)
	}

	if _, err := cache.GetRuleSnapshot(organizationID); err != nil {
		t.Fatalf("GetRuleSnapshot returned error: %v", err)
	}
	if repo.SnapshotLoads != 2 {
		t.Errorf("expected the mutation to evict the snapshot, got %d loads", repo.SnapshotLoads)
	}
}

func TestInvalidateIsIdempotent(t *testing.T) {
	cache := NewRuleSnapshotCache(&stubRepository{}, time.Minute)
	organizationID := uuid.New()

	cache.Invalidate(organizationID)
	cache.Invalidate(organizationID)
}
