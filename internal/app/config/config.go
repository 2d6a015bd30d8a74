// Package config はサーバープロセスの設定を環境変数から読み込みます。
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process-level configuration for the API server.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// CacheTTL is the lifetime of cached fetch results (memo and Redis).
	// 0 keeps in-process entries for the process lifetime.
	CacheTTL time.Duration `env:"AWARDS_CACHE_TTL" envDefault:"15m"`
}

// RedisAddr はRedis接続用のアドレスを返します。REDIS_HOST未設定時は空文字列です。
func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

// Load loads server configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
