package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"jobmate/board-service/internal/billing"
	"jobmate/board-service/internal/jobs"
	"jobmate/board-service/internal/kanban"
	"jobmate/board-service/internal/store"
)

// writeError maps domain errors to HTTP statuses. Anything unrecognised is
// logged and reported as a 500 without detail.
func writeError(c *gin.Context, err error) {
	var (
		jve *jobs.ValidationError
		kve *kanban.ValidationError
	)
	switch {
	case errors.As(err, &jve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": jve.Fields})
	case errors.As(err, &kve):
		c.JSON(http.StatusBadRequest, gin.H{"error": kve.Msg})
	case errors.Is(err, billing.ErrUnknownPlan), errors.Is(err, billing.ErrUnknownPackage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, billing.ErrNoCredits):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, kanban.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, jobs.ErrNotFound),
		errors.Is(err, jobs.ErrProfileNotFound),
		errors.Is(err, kanban.ErrNotFound),
		errors.Is(err, kanban.ErrJobNotFound),
		errors.Is(err, errNoSubscription):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, kanban.ErrAlreadyApplied),
		errors.Is(err, kanban.ErrConcurrentMove),
		errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, kanban.ErrProfileRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

var errNoSubscription = errors.New("no subscription")

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
