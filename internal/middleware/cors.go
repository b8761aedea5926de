package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/tutormatch-api/internal/config"
)

// CORS sends the allowed-headers list on every response, and the wildcard
// origin too when every origin is allowed, then defers to gin-contrib/cors
// for origin checks and preflight requests.
func CORS(cfg config.CORS) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: cfg.AllowHeaders,
		MaxAge:       12 * time.Hour,
	}
	allowAll := cfg.AllowAll()
	if allowAll {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = cfg.AllowOrigins
	}
	handler := cors.New(conf)
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		if allowAll {
			c.Header("Access-Control-Allow-Origin", "*")
		}
		handler(c)
	}
}
