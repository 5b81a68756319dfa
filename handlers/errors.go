package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hdmonks/models"
	"hdmonks/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps domain errors to HTTP statuses. Unknown errors are
// logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidToken),
		errors.Is(err, models.ErrTokenExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrSlotNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrSlotAlreadyTaken),
		errors.Is(err, models.ErrSlotBooked),
		errors.Is(err, models.ErrConflict),
		errors.Is(err, models.ErrInvalidTransition):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		getLogger(c).Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, status, "An unexpected error occurred. Please try again later.")
		return
	}
	utils.JSONError(c, status, err.Error())
}

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		getLogger(c).Debug("Invalid request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}

const (
	defaultPageLimit = 100
	maxPageLimit     = 500
)

// pagination reads skip and limit query parameters.
func pagination(c *gin.Context) (int64, int64) {
	skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)), 10, 64)
	if err != nil || limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return skip, limit
}
