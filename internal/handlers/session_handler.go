package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/tutormatch-api/internal/models"
	"github.com/harentsoaR/tutormatch-api/internal/store"
)

// CreateSession books a session and returns it with its new id.
func (h *Handler) CreateSession(c *gin.Context) {
	var session models.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		h.respondError(c, badRequestError{err})
		return
	}

	session.ID = primitive.NilObjectID
	id, err := h.Store.Save(c.Request.Context(), store.Sessions, &session)
	if err != nil {
		h.respondError(c, err)
		return
	}
	session.ID = id

	h.log(c).Info("session booked", "id", id.Hex(), "tutor_id", session.TutorID, "tutee_id", session.TuteeID)
	c.JSON(http.StatusCreated, session)
}

// GetSession returns one session by id, or an empty object when there is none.
func (h *Handler) GetSession(c *gin.Context) {
	filter, err := store.ByID(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	var session models.Session
	found, err := h.Store.FindOne(c.Request.Context(), store.Sessions, filter, nil, &session)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, session)
}

// UserSessions lists the sessions in which the :id user takes part in the
// given role. Sessions reference users by their plain external key, so :id
// is compared as is.
func (h *Handler) UserSessions(role models.Role) gin.HandlerFunc {
	field := string(role) + "_id"
	return func(c *gin.Context) {
		sessions := make([]models.Session, 0)
		if err := h.Store.Find(c.Request.Context(), store.Sessions, bson.M{field: c.Param("id")}, &sessions); err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sessions)
	}
}

// UpdateDocument applies the partial JSON body to the document of
// collection named by :id. It never creates a document.
func (h *Handler) UpdateDocument(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := store.ByID(c.Param("id"))
		if err != nil {
			h.respondError(c, err)
			return
		}

		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			h.respondError(c, badRequestError{err})
			return
		}
		update, err := buildUpdate(body)
		if err != nil {
			h.respondError(c, err)
			return
		}

		res, err := h.Store.Update(c.Request.Context(), collection, filter, update)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// buildUpdate turns a partial document into an update. Plain fields are
// wrapped in $set; a body made only of operators ($set, $push, ...) is used
// as is. _id can never be changed.
func buildUpdate(body map[string]any) (bson.M, error) {
	delete(body, "_id")
	if len(body) == 0 {
		return nil, errEmptyUpdate
	}

	operators := 0
	for k := range body {
		if strings.HasPrefix(k, "$") {
			operators++
		}
	}

	switch operators {
	case 0:
		return bson.M{"$set": bson.M(body)}, nil
	case len(body):
		return bson.M(body), nil
	default:
		return nil, errMixedUpdate
	}
}
