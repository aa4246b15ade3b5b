package config

import (
	"fmt"
	"os"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret      string        // JWT署名シークレット
	AccessTokenTTL time.Duration // アクセストークンの寿命

	Currency string // 金額の通貨コード（PHP）
	GoEnv    string // dev/prod
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: 15 * time.Minute,

		Currency: getenv("CURRENCY", "PHP"),
		GoEnv:    getenv("GO_ENV", "dev"),
	}

	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL must be duration: %w", err)
		}
		cfg.AccessTokenTTL = d
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
