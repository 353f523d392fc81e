package testutil

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"go-learning-log/internal/routes"
	"go-learning-log/internal/static"
)

// IndexHTML はテスト用の HTML 本文です。
const IndexHTML = "<!DOCTYPE html>\n<html><body><h1>Hello from the learning log</h1></body></html>\n"

// AllowedOrigin はテスト用ルーターで許可するオリジンです。
const AllowedOrigin = "http://localhost:3000"

// WriteIndexFile は一時ディレクトリに index.html を作成し、そのパスを返します。
func WriteIndexFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(IndexHTML), 0o644))
	return path
}

// MissingIndexFile は存在しないファイルのパスを返します。
func MissingIndexFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing", "index.html")
}

// SetupGinRouter は path を返す gin ルーターを作成します。
func SetupGinRouter(t *testing.T, path string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zerolog.Nop()
	return routes.SetupRouter(static.NewResponder(path, logger), logger, []string{AllowedOrigin})
}

// SetupMux は path を返す net/http ハンドラーを作成します。
func SetupMux(t *testing.T, path string) http.Handler {
	t.Helper()
	logger := zerolog.Nop()
	return routes.NewMux(static.NewResponder(path, logger), logger)
}
