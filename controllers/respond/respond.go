// Package respond maps the shared error taxonomy onto HTTP responses.
package respond

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

// Error writes the status code and body for a service or repository error.
// Storage failures are logged server-side and surfaced as opaque 500s.
func Error(c *gin.Context, err error) {
	var validation *models.ValidationError
	var notFound *models.NotFoundError
	var conflict *models.ConflictError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message, "field": validation.Field})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
