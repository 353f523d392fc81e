// Package static は固定の HTML ファイルを1つだけ返すレスポンダーを提供します。
package static

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	htmlContentType = "text/html; charset=utf-8"
	errorBody       = "Error loading HTML file"
)

// Responder はリクエストごとに path のファイルを読み込んで返します。
type Responder struct {
	path   string
	logger zerolog.Logger
}

// NewResponder は新しい Responder を作成します。
func NewResponder(path string, logger zerolog.Logger) *Responder {
	return &Responder{path: path, logger: logger}
}

// ServeHTTP は net/http 用のハンドラーです。
func (r *Responder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	data, err := r.read()
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(errorBody))
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Handle は gin 用のハンドラーです。
func (r *Responder) Handle(c *gin.Context) {
	data, err := r.read()
	if err != nil {
		c.String(http.StatusInternalServerError, errorBody)
		return
	}
	c.Data(http.StatusOK, htmlContentType, data)
}

func (r *Responder) read() ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("path", r.path).
			Msg("failed to read html file")
		return nil, err
	}
	return data, nil
}

// ResolvePath は dir と name からファイルパスを組み立てます。
// dir が空の場合は実行ファイルのあるディレクトリを基準にします。
func ResolvePath(dir, name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("could not locate executable: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir = filepath.Dir(exe)
	}
	return filepath.Join(dir, name), nil
}
