// Package handler はawardsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sbir_backend/internal/feature/awards/domain"
	"sbir_backend/internal/feature/awards/domain/entity"
	"sbir_backend/internal/feature/awards/transport/http/dto"
	"sbir_backend/internal/feature/awards/usecase"
)

// AwardsUsecase は交付データ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AwardsUsecase interface {
	GetAwards(ctx context.Context, firm string, refresh bool) ([]entity.Award, string, error)
}

// AwardsHandler は交付データのHTTPリクエストを処理します。
type AwardsHandler struct {
	uc AwardsUsecase
}

// NewAwardsHandler は指定されたusecaseでAwardsHandlerの新しいインスタンスを生成します。
func NewAwardsHandler(uc AwardsUsecase) *AwardsHandler {
	return &AwardsHandler{uc: uc}
}

// List は企業名とフィルタ条件を受け取り、絞り込み後の交付レコード一覧をJSONで返します。
//
// エンドポイント例:
// GET /awards?firm=ExampleCompany&agency=DOD&agency=NSF&phase=Phase+I&refresh=true
//
// firmが未指定の場合は400を返します。取得に失敗した場合はエラーではなく、
// 空のレコード列とwarningを持つ200を返します（空状態はダッシュボード側で表示）。
func (h *AwardsHandler) List(c *gin.Context) {
	firm := c.Query("firm")
	spec := filterSpecFromQuery(c)
	refresh := c.Query("refresh") == "true"

	records, warning, err := h.uc.GetAwards(c.Request.Context(), firm, refresh)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrEmptyFirm) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	filtered := usecase.Filter(records, spec)

	out := make([]dto.AwardItem, 0, len(filtered))
	for _, a := range filtered {
		out = append(out, dto.AwardItem{
			Agency:      a.Agency,
			Phase:       a.Phase,
			Program:     a.Program,
			AwardAmount: a.Amount,
			AwardYear:   a.Year,
			City:        a.City,
			State:       a.State,
		})
	}

	c.JSON(http.StatusOK, dto.AwardsResponse{
		Firm:    firm,
		Count:   len(out),
		Warning: warning,
		Records: out,
	})
}

// Summary は企業名とフィルタ条件を受け取り、KPIとグループ別集計をJSONで返します。
//
// エンドポイント例:
// GET /awards/summary?firm=ExampleCompany&phase=Phase+II
func (h *AwardsHandler) Summary(c *gin.Context) {
	firm := c.Query("firm")
	spec := filterSpecFromQuery(c)
	refresh := c.Query("refresh") == "true"

	records, warning, err := h.uc.GetAwards(c.Request.Context(), firm, refresh)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrEmptyFirm) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	summary, _ := usecase.Aggregate(records, spec)

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Firm:          firm,
		TotalAwarded:  summary.TotalAwarded,
		TotalProjects: summary.TotalProjects,
		ByState:       toGroupItems(summary.ByState),
		ByAgency:      toGroupItems(summary.ByAgency),
		ByPhase:       toGroupItems(summary.ByPhase),
		Warning:       warning,
	})
}

// filterSpecFromQuery はクエリパラメータからFilterSpecを組み立てます。
// agency / phase は繰り返し指定できます。
func filterSpecFromQuery(c *gin.Context) usecase.FilterSpec {
	return usecase.FilterSpec{
		Agencies: c.QueryArray("agency"),
		Phases:   c.QueryArray("phase"),
	}
}

// toGroupItems はusecaseのグループ別集計をレスポンスDTOへ変換します。
func toGroupItems(groups []usecase.GroupTotal) []dto.GroupTotalItem {
	out := make([]dto.GroupTotalItem, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupTotalItem{Key: g.Key, TotalAwarded: g.Total})
	}
	return out
}
