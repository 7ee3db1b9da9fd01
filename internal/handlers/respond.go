package handlers

import (
	"errors"
	"net/http"

	"github.com/careerconnect/careerconnect/internal/services"
	"github.com/gin-gonic/gin"
)

// fail maps service errors onto the HTTP error taxonomy: validation 400,
// bad credentials 401, ownership 403, missing 404, everything else 500.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
