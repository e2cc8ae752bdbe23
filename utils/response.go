// utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// statusError is satisfied by every typed error the rule engines return.
type statusError interface {
	error
	Status() int
}

// RespondWithAppError translates a rule-engine error to its JSON body and
// status. Anything untyped is a store failure and surfaces as a generic 500.
func RespondWithAppError(c *gin.Context, err error) {
	var appErr statusError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status(), gin.H{"error": appErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
