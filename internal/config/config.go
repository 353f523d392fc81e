// Package config は環境変数 (および任意の .env) から設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

// ErrUnknownEnv は ENV が local/dev/prod 以外の場合のエラーです。
var ErrUnknownEnv = errors.New("unknown env")

type Config struct {
	Env  string `env:"ENV" env-default:"local"`
	HTTP HTTPConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:""`
	PlainPort       string        `env:"PLAIN_HTTP_PORT" env-default:"3000"`
	GinPort         string        `env:"GIN_HTTP_PORT" env-default:"4000"`
	PlainStaticDir  string        `env:"PLAIN_STATIC_DIR" env-default:""`
	GinStaticDir    string        `env:"GIN_STATIC_DIR" env-default:""`
	IndexFile       string        `env:"INDEX_FILE" env-default:"index.html"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowOrigins    []string      `env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"*"`
}

// Load は .env (存在すれば) を読み込んだ後、環境変数から Config を構築します。
// すでに設定されている環境変数は .env で上書きされません。
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env: %w", err)
	}

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("could not read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は値の組み合わせを検証します。
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEnv, c.Env)
	}
	if c.HTTP.IndexFile == "" {
		return errors.New("INDEX_FILE must not be empty")
	}
	return nil
}
