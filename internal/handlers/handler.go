package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/tutormatch-api/internal/logger"
	"github.com/harentsoaR/tutormatch-api/internal/middleware"
	"github.com/harentsoaR/tutormatch-api/internal/services"
	"github.com/harentsoaR/tutormatch-api/internal/store"
)

// Handler holds everything the HTTP handlers need. Handlers are methods of
// this struct.
type Handler struct {
	Store     store.Gateway
	Prefs     *services.PreferenceResolver
	Registrar *services.Registrar
	Logger    *logger.Logger
}

func NewHandler(gw store.Gateway, l *logger.Logger) *Handler {
	return &Handler{
		Store:     gw,
		Prefs:     services.NewPreferenceResolver(gw, l),
		Registrar: services.NewRegistrar(gw, l),
		Logger:    l,
	}
}

// log returns the handler logger tagged with the current request id.
func (h *Handler) log(c *gin.Context) *logger.Logger {
	return h.Logger.With("request_id", middleware.GetRequestID(c))
}
