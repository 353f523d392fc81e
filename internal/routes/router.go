// Package routes は2つの静的サーバーのルーティングを行います。
package routes

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"go-learning-log/internal/static"
)

// SetupRouter は gin サーバー用のルーターをセットアップします。
// 登録するのは GET / と HEAD / のみで、それ以外は gin が 404 を返します。
func SetupRouter(responder *static.Responder, logger zerolog.Logger, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(corsHeaders(allowOrigins))

	r.Match([]string{http.MethodGet, http.MethodHead}, "/", responder.Handle)

	return r
}

// corsHeaders は許可されたオリジンにだけ CORS ヘッダーを付けます。
// 許可されていないオリジンでもリクエストは拒否せず、ヘッダーなしでそのまま処理します。
// allowOrigins が空または "*" を含む場合はすべてのオリジンを許可します。
func corsHeaders(allowOrigins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	allowAll := len(allowOrigins) == 0 || slices.Contains(allowOrigins, "*")
	if allowAll {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowOrigins
	}
	config.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.MaxAge = 12 * time.Hour
	handler := cors.New(config)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if !allowAll && origin != "" && !slices.Contains(allowOrigins, origin) {
			return
		}
		handler(c)
	}
}

// NewMux は net/http サーバー用のハンドラーを作成します。
// パターン "/" はすべてのパスに一致するため、どのパスでも同じファイルを返します。
func NewMux(responder *static.Responder, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", responder)
	return LogRequests(logger, mux)
}
