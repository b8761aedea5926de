package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/tutormatch-api/internal/config"
	"github.com/harentsoaR/tutormatch-api/internal/middleware"
)

// NewRouter builds the gin engine serving h with the middleware chain
// request id -> access log -> recovery -> CORS.
func NewRouter(h *Handler, cors config.CORS) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(h.Logger),
		gin.Recovery(),
		middleware.CORS(cors),
	)

	Register(r, Routes(h))
	return r
}
