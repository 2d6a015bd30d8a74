// Package usecase はawardsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"strings"

	"sbir_backend/internal/feature/awards/domain"
	"sbir_backend/internal/feature/awards/domain/entity"
)

// AwardsRepository は交付データの取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type AwardsRepository interface {
	// Search は企業名に一致する交付レコードを検索します。
	Search(ctx context.Context, firm string) ([]entity.Award, error)
}

// CacheInvalidator はキャッシュ層が任意で実装する無効化インターフェースです。
// リポジトリチェーンが無効化をサポートしない場合はnilを渡せます。
type CacheInvalidator interface {
	Invalidate(ctx context.Context, firm string) error
}

// awardsUsecase は交付データ取得のユースケースを定義します。
// Fetcher境界として、取得系の失敗をすべてここで回収します。
type awardsUsecase struct {
	awards      AwardsRepository
	invalidator CacheInvalidator
}

// NewAwardsUsecase はawardsUsecaseの新しいインスタンスを生成します。
// invalidator はnilでも構いません（refresh指定は単に無視されます）。
func NewAwardsUsecase(awards AwardsRepository, invalidator CacheInvalidator) *awardsUsecase {
	return &awardsUsecase{awards: awards, invalidator: invalidator}
}

// GetAwards は指定された企業名の交付レコードを取得します。
//
// 取得系の失敗（ネットワーク、デコード、形状不一致）はここで回収され、
// 空のレコード列と利用者向けの診断メッセージ（warning）として返ります。
// エラーとして返るのは入力不正（企業名が空）のみで、取得失敗が
// この境界を越えて伝播することはありません。
//
// refresh が真の場合、取得前に該当企業のキャッシュエントリを無効化します。
func (u *awardsUsecase) GetAwards(ctx context.Context, firm string, refresh bool) ([]entity.Award, string, error) {
	firm = strings.TrimSpace(firm)
	if firm == "" {
		return nil, "", domain.ErrEmptyFirm
	}

	if refresh && u.invalidator != nil {
		if err := u.invalidator.Invalidate(ctx, firm); err != nil {
			// 無効化の失敗は取得を妨げない
			slog.Warn("failed to invalidate awards cache", "firm", firm, "error", err)
		}
	}

	records, err := u.awards.Search(ctx, firm)
	if err != nil {
		slog.Warn("awards fetch failed", "firm", firm, "error", err)
		return []entity.Award{}, fetchWarning(err), nil
	}
	if records == nil {
		records = []entity.Award{}
	}
	return records, "", nil
}

// fetchWarning は取得失敗を利用者向けの診断メッセージへ変換します。
func fetchWarning(err error) string {
	fe, ok := domain.AsFetchError(err)
	if !ok {
		return "failed to fetch awards: " + err.Error()
	}
	switch fe.Kind {
	case domain.FetchErrNetwork:
		return "failed to reach the awards API: " + fe.Err.Error()
	case domain.FetchErrDecode:
		return "awards API returned a malformed response: " + fe.Err.Error()
	case domain.FetchErrShape:
		return "awards API returned an unexpected response shape: " + fe.Err.Error()
	default:
		return "failed to fetch awards: " + fe.Err.Error()
	}
}
