package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sbir_backend/internal/feature/awards/domain/entity"
)

// Agencies はフロントエンドの機関フィルタ用に、交付機関コードの一覧を返します。
func Agencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agencies": entity.KnownAgencies})
}

// Phases はフロントエンドのフェーズフィルタ用に、プログラム段階の一覧を返します。
func Phases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"phases": entity.KnownPhases})
}
