package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/tutormatch-api/internal/services"
	"github.com/harentsoaR/tutormatch-api/internal/store"
)

var (
	errEmptyUpdate = errors.New("update document is empty")
	errMixedUpdate = errors.New("update document mixes operators and fields")
)

// badRequestError marks a request body that could not be decoded.
type badRequestError struct {
	err error
}

func (e badRequestError) Error() string { return "invalid request body: " + e.err.Error() }
func (e badRequestError) Unwrap() error { return e.err }

func statusFor(err error) int {
	var bre badRequestError
	switch {
	case errors.As(err, &bre),
		errors.Is(err, store.ErrInvalidID),
		errors.Is(err, services.ErrMissingUID),
		errors.Is(err, errEmptyUpdate),
		errors.Is(err, errMixedUpdate):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded),
		mongo.IsTimeout(err),
		mongo.IsNetworkError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": ...} with a status derived from it.
// Store errors keep their message.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log(c).Error("request failed", "route", c.FullPath(), "status", status, "error", err)
	} else {
		h.log(c).Warn("request rejected", "route", c.FullPath(), "status", status, "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
