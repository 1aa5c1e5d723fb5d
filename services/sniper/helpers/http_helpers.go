package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bid-sniper/internal/snipererrors"
	"bid-sniper/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseIDParam parses the :id path parameter as an integer record ID
func ParseIDParam(c *gin.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w - bad id %q", snipererrors.ErrInvalidRecord, raw)
	}
	return id, nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, snipererrors.ErrAccountNotFound):
		return http.StatusNotFound, "account not found"
	case errors.Is(err, snipererrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, snipererrors.ErrInvalidRecord):
		return http.StatusBadRequest, "invalid record details"
	case errors.Is(err, snipererrors.ErrBadCSV):
		return http.StatusBadRequest, "malformed csv input"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
