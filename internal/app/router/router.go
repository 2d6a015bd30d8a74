package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	awardshandler "sbir_backend/internal/feature/awards/transport/handler"
	"sbir_backend/internal/platform/http/handler"
)

// NewRouter はAPIサーバーのルーティングを構築します。
func NewRouter(awards *awardshandler.AwardsHandler) *gin.Engine {
	r := gin.Default()

	// ダッシュボードのフロントエンドは別オリジンのブラウザアプリのためCORSを許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 交付データ
	// 絞り込み後の一覧（詳細テーブル用）
	r.GET("/awards", awards.List)
	// KPIとグループ別集計（チャート用）
	r.GET("/awards/summary", awards.Summary)

	// フィルタUIの選択肢
	r.GET("/meta/agencies", awardshandler.Agencies)
	r.GET("/meta/phases", awardshandler.Phases)

	return r
}
