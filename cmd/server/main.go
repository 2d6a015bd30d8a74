package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"sbir_backend/internal/app/config"
	"sbir_backend/internal/app/di"
	"sbir_backend/internal/app/router"
	awardshandler "sbir_backend/internal/feature/awards/transport/handler"
	awardsusecase "sbir_backend/internal/feature/awards/usecase"
	"sbir_backend/internal/platform/cache"
	infraredis "sbir_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Redis（任意: 接続できない場合はキャッシュなしで継続）
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(addr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without shared cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository（SBIR.gov API）
	awardsAPI, err := di.NewAwardsAPI()
	if err != nil {
		log.Fatal(err)
	}

	// キャッシュのデコレータチェーン: メモ化（プロセス内） → Redis → API
	cachedRepo := cache.NewCachingAwardsRepository(rdb, cfg.CacheTTL, awardsAPI, "awards")
	memoRepo := cache.NewMemoAwardsRepository(cachedRepo, cfg.CacheTTL)

	// Usecase
	awardsUC := awardsusecase.NewAwardsUsecase(memoRepo, memoRepo)

	// Handler
	awardsH := awardshandler.NewAwardsHandler(awardsUC)

	// ルータ生成
	r := router.NewRouter(awardsH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
