package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// validationError answers 422 with field-level detail. Binding errors from
// gin are validator.ValidationErrors underneath; anything else (malformed
// JSON, wrong types) gets a single body-level message.
func validationError(c *gin.Context, err error) {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			name := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				fields[name] = fmt.Sprintf("The %s field is required.", name)
			default:
				fields[name] = fmt.Sprintf("The %s field is invalid.", name)
			}
		}
	} else {
		fields["body"] = err.Error()
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fields})
}

// paramID parses the :id path parameter. A non-numeric id is a validation
// failure, not a lookup miss.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": map[string]string{"id": "The id parameter must be a positive integer."},
		})
		return 0, false
	}
	return uint(id), true
}

// storageError is the policy for unexpected storage faults: log the cause,
// answer 500 with a generic message.
func storageError(c *gin.Context, err error) {
	log.Printf("storage error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
