package handlers

import (
	"errors"
	"log"
	"net/http"

	"restodir-backend/services"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {"success": true, "data": ...}
// on success and {"success": false, "error": ...} on failure. The historical
// bare-array variants were retired with the route consolidation.

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondServiceError maps service errors onto the status taxonomy. Anything
// unrecognized is logged and reported as a generic 500 so store internals
// never reach the client.
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "Restaurant not found")
	case errors.Is(err, services.ErrNameTaken):
		respondError(c, http.StatusConflict, "A restaurant with this name already exists")
	default:
		log.Printf("Unexpected service error: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
