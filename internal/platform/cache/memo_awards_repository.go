package cache

import (
	"context"
	"sync"
	"time"

	"sbir_backend/internal/feature/awards/domain/entity"
	"sbir_backend/internal/feature/awards/usecase"
)

// memoEntry is one memoized fetch result with its fetch timestamp.
type memoEntry struct {
	records   []entity.Award
	fetchedAt time.Time
}

// MemoAwardsRepository memoizes fetch results per firm for the process
// lifetime. It is the explicit key-value store owned by the composition
// root: key = firm name, value = record sequence + fetch timestamp.
// Entries are written once per key and shared by later reads; invalidation
// happens by TTL expiry or an explicit Invalidate call.
// Fetch failures are never memoized.
type MemoAwardsRepository struct {
	inner usecase.AwardsRepository
	ttl   time.Duration // 0 means entries live for the process lifetime

	mu      sync.RWMutex
	entries map[string]memoEntry

	now func() time.Time // injectable for tests
}

// NewMemoAwardsRepository decorates an AwardsRepository with in-process
// memoization. A ttl of 0 keeps entries for the process lifetime.
func NewMemoAwardsRepository(inner usecase.AwardsRepository, ttl time.Duration) *MemoAwardsRepository {
	return &MemoAwardsRepository{
		inner:   inner,
		ttl:     ttl,
		entries: map[string]memoEntry{},
		now:     time.Now,
	}
}

// Search returns the memoized record sequence for a firm, fetching through
// the inner repository on the first call (or after expiry) only.
func (m *MemoAwardsRepository) Search(ctx context.Context, firm string) ([]entity.Award, error) {
	m.mu.RLock()
	e, ok := m.entries[firm]
	m.mu.RUnlock()
	if ok && !m.expired(e) {
		return e.records, nil
	}

	records, err := m.inner.Search(ctx, firm)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	// Another writer may have raced us here; last write wins, both hold
	// the same upstream answer for the key.
	m.entries[firm] = memoEntry{records: records, fetchedAt: m.now()}
	m.mu.Unlock()

	return records, nil
}

// Invalidate drops the memoized entry for a firm and cascades to the inner
// repository when it also supports invalidation.
func (m *MemoAwardsRepository) Invalidate(ctx context.Context, firm string) error {
	m.mu.Lock()
	delete(m.entries, firm)
	m.mu.Unlock()

	if inv, ok := m.inner.(usecase.CacheInvalidator); ok {
		return inv.Invalidate(ctx, firm)
	}
	return nil
}

// expired reports whether an entry is past its TTL.
func (m *MemoAwardsRepository) expired(e memoEntry) bool {
	if m.ttl <= 0 {
		return false
	}
	return m.now().Sub(e.fetchedAt) >= m.ttl
}
