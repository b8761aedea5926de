package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/harentsoaR/tutormatch-api/internal/models"
	"github.com/harentsoaR/tutormatch-api/internal/services"
	"github.com/harentsoaR/tutormatch-api/internal/store"
)

// RegisterUser creates the user unless its uid is taken, in which case the
// stored user comes back with "exists": true.
func (h *Handler) RegisterUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		h.respondError(c, badRequestError{err})
		return
	}

	saved, created, err := h.Registrar.Register(c.Request.Context(), user)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if created {
		h.log(c).Info("user registered", "uid", saved.UID, "id", saved.ID.Hex())
		c.JSON(http.StatusCreated, saved)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetUser returns one user by id, or an empty object when there is none.
func (h *Handler) GetUser(c *gin.Context) {
	filter, err := store.ByID(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	var user models.User
	found, err := h.Store.FindOne(c.Request.Context(), store.Users, filter, nil, &user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, user)
}

// SearchUsers lists users of the given role matching the optional
// state/country/city/area/pref/day query parameters.
func (h *Handler) SearchUsers(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := services.BuildFilter(role, services.QueryParams(c.Request.URL.Query()))

		users := make([]models.User, 0)
		if err := h.Store.Find(c.Request.Context(), store.Users, filter, &users); err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GetPreferences expands pref.<role> of a user into category documents.
func (h *Handler) GetPreferences(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := h.Prefs.Resolve(c.Request.Context(), c.Param("id"), role)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// SetPreferences replaces pref.<role> with the JSON array of category ids
// in the body.
func (h *Handler) SetPreferences(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var refs []string
		if err := c.ShouldBindJSON(&refs); err != nil {
			h.respondError(c, badRequestError{err})
			return
		}
		if refs == nil {
			refs = []string{}
		}
		h.setField(c, role.Field("pref"), refs)
	}
}

// SetRating sets rating.<role> from a {"rating": n} body.
func (h *Handler) SetRating(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Rating *float64 `json:"rating" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			h.respondError(c, badRequestError{err})
			return
		}
		h.setField(c, role.Field("rating"), *req.Rating)
	}
}

// SetAvailability replaces availability.<role> with the JSON array of slots
// in the body.
func (h *Handler) SetAvailability(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slots []models.Slot
		if err := c.ShouldBindJSON(&slots); err != nil {
			h.respondError(c, badRequestError{err})
			return
		}
		if slots == nil {
			slots = []models.Slot{}
		}
		h.setField(c, role.Field("availability"), slots)
	}
}

// setField $sets one nested field of the user named by the :id parameter.
func (h *Handler) setField(c *gin.Context, field string, value any) {
	filter, err := store.ByID(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	res, err := h.Store.Update(c.Request.Context(), store.Users, filter, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
