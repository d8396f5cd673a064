package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
)

// writeError maps domain sentinels onto HTTP status codes. Validation
// sentinels become 400s, missing orders 404, closed-order transitions 409.
// Anything else is a 500 with the message hidden from the client.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, domain.ErrOrderClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func isValidationError(err error) bool {
	sentinels := []error{
		domain.ErrMissingCustomerName,
		domain.ErrMissingMobileNumber,
		domain.ErrMissingAddress,
		domain.ErrNoItems,
		domain.ErrInvalidQuantity,
		domain.ErrInvalidPrice,
		domain.ErrTotalMismatch,
		domain.ErrUnknownMilestone,
	}
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
