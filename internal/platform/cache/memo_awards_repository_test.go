package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"sbir_backend/internal/feature/awards/domain/entity"
)

// mockAwardsRepository はテスト用のAwardsRepositoryモック実装です。
type mockAwardsRepository struct {
	searchFn    func(ctx context.Context, firm string) ([]entity.Award, error)
	searchCalls int
}

func (m *mockAwardsRepository) Search(ctx context.Context, firm string) ([]entity.Award, error) {
	m.searchCalls++
	if m.searchFn != nil {
		return m.searchFn(ctx, firm)
	}
	return nil, nil
}

// mockInvalidatingRepository はInvalidateもサポートするモック実装です。
type mockInvalidatingRepository struct {
	mockAwardsRepository
	invalidateCalls int
}

func (m *mockInvalidatingRepository) Invalidate(ctx context.Context, firm string) error {
	m.invalidateCalls++
	return nil
}

// TestMemoAwardsRepository_Search_Memoizes は同じ企業名での2回目以降の呼び出しが
// 内部リポジトリへ到達しないことを検証します。
func TestMemoAwardsRepository_Search_Memoizes(t *testing.T) {
	t.Parallel()

	expected := []entity.Award{{Agency: "DOD", State: "CA"}}
	inner := &mockAwardsRepository{
		searchFn: func(ctx context.Context, firm string) ([]entity.Award, error) {
			return expected, nil
		},
	}
	repo := NewMemoAwardsRepository(inner, 0)

	for i := 0; i < 3; i++ {
		out, err := repo.Search(context.Background(), "ExampleCompany")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].Agency != "DOD" {
			t.Fatalf("unexpected records: %+v", out)
		}
	}

	if inner.searchCalls != 1 {
		t.Errorf("inner Search was called %d times, expected 1", inner.searchCalls)
	}
}

// TestMemoAwardsRepository_Search_PerFirm はキーが企業名単位であることを検証します。
func TestMemoAwardsRepository_Search_PerFirm(t *testing.T) {
	t.Parallel()

	inner := &mockAwardsRepository{
		searchFn: func(ctx context.Context, firm string) ([]entity.Award, error) {
			return []entity.Award{{Agency: firm}}, nil
		},
	}
	repo := NewMemoAwardsRepository(inner, 0)

	_, _ = repo.Search(context.Background(), "A")
	_, _ = repo.Search(context.Background(), "B")
	_, _ = repo.Search(context.Background(), "A")

	if inner.searchCalls != 2 {
		t.Errorf("inner Search was called %d times, expected 2", inner.searchCalls)
	}
}

// TestMemoAwardsRepository_Search_ErrorsNotMemoized は取得失敗がメモ化されず、
// 次回の呼び出しで再取得されることを検証します。
func TestMemoAwardsRepository_Search_ErrorsNotMemoized(t *testing.T) {
	t.Parallel()

	fail := true
	inner := &mockAwardsRepository{
		searchFn: func(ctx context.Context, firm string) ([]entity.Award, error) {
			if fail {
				return nil, errors.New("network error")
			}
			return []entity.Award{{Agency: "DOD"}}, nil
		},
	}
	repo := NewMemoAwardsRepository(inner, 0)

	if _, err := repo.Search(context.Background(), "ExampleCompany"); err == nil {
		t.Fatal("expected error, got nil")
	}

	fail = false
	out, err := repo.Search(context.Background(), "ExampleCompany")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record after retry, got %d", len(out))
	}
	if inner.searchCalls != 2 {
		t.Errorf("inner Search was called %d times, expected 2", inner.searchCalls)
	}
}

// TestMemoAwardsRepository_TTL はTTL経過後に再取得されること、
// TTLが0の場合はプロセス存続期間中保持されることを検証します。
func TestMemoAwardsRepository_TTL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		ttl           time.Duration
		advance       time.Duration
		expectedCalls int
	}{
		{"expired entry refetches", 10 * time.Minute, 11 * time.Minute, 2},
		{"fresh entry is reused", 10 * time.Minute, 9 * time.Minute, 1},
		{"zero ttl never expires", 0, 24 * 365 * time.Hour, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inner := &mockAwardsRepository{
				searchFn: func(ctx context.Context, firm string) ([]entity.Award, error) {
					return []entity.Award{}, nil
				},
			}
			repo := NewMemoAwardsRepository(inner, tt.ttl)

			current := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
			repo.now = func() time.Time { return current }

			_, _ = repo.Search(context.Background(), "ExampleCompany")
			current = current.Add(tt.advance)
			_, _ = repo.Search(context.Background(), "ExampleCompany")

			if inner.searchCalls != tt.expectedCalls {
				t.Errorf("inner Search was called %d times, expected %d", inner.searchCalls, tt.expectedCalls)
			}
		})
	}
}

// TestMemoAwardsRepository_Invalidate はエントリの破棄と内部リポジトリへの
// カスケードを検証します。
func TestMemoAwardsRepository_Invalidate(t *testing.T) {
	t.Parallel()

	inner := &mockInvalidatingRepository{}
	inner.searchFn = func(ctx context.Context, firm string) ([]entity.Award, error) {
		return []entity.Award{}, nil
	}
	repo := NewMemoAwardsRepository(inner, 0)

	_, _ = repo.Search(context.Background(), "ExampleCompany")

	if err := repo.Invalidate(context.Background(), "ExampleCompany"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.invalidateCalls != 1 {
		t.Errorf("inner Invalidate was called %d times, expected 1", inner.invalidateCalls)
	}

	_, _ = repo.Search(context.Background(), "ExampleCompany")
	if inner.searchCalls != 2 {
		t.Errorf("inner Search was called %d times after invalidation, expected 2", inner.searchCalls)
	}
}
