package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/tutormatch-api/internal/models"
	"github.com/harentsoaR/tutormatch-api/internal/store"
)

// Route binds a method and a gin path pattern to a handler.
type Route struct {
	Method string
	Path   string
	Handle gin.HandlerFunc
}

// Routes returns the API route table. Each call builds a new slice.
func Routes(h *Handler) []Route {
	routes := []Route{
		{http.MethodGet, "/health", h.Health},

		{http.MethodGet, "/get/tutors", h.SearchUsers(models.RoleTutor)},
		{http.MethodGet, "/get/tutees", h.SearchUsers(models.RoleTutee)},
		{http.MethodGet, "/get/categories", h.GetCategories},
		{http.MethodGet, "/get/user/:id", h.GetUser},
		{http.MethodGet, "/get/session/:id", h.GetSession},

		{http.MethodPost, "/post/user", h.RegisterUser},
		{http.MethodPost, "/post/user/:id", h.UpdateDocument(store.Users)},
		{http.MethodPost, "/post/session", h.CreateSession},
		{http.MethodPost, "/post/session/:id", h.UpdateDocument(store.Sessions)},
	}

	for _, role := range []models.Role{models.RoleTutor, models.RoleTutee} {
		base := "/" + string(role) + "/:id"
		routes = append(routes,
			Route{http.MethodGet, "/get" + base, h.GetUser},
			Route{http.MethodGet, "/get" + base + "/sessions", h.UserSessions(role)},
			Route{http.MethodGet, "/get" + base + "/pref", h.GetPreferences(role)},
			Route{http.MethodPost, "/post" + base + "/pref", h.SetPreferences(role)},
			Route{http.MethodPost, "/post" + base + "/rating", h.SetRating(role)},
			Route{http.MethodPost, "/post" + base + "/availability", h.SetAvailability(role)},
		)
	}

	return routes
}

// Register installs routes on r.
func Register(r gin.IRoutes, routes []Route) {
	for _, rt := range routes {
		r.Handle(rt.Method, rt.Path, rt.Handle)
	}
}
