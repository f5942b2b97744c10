package utils

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"poi-be-svc/pkg/apperror"
)

// GetObjectIDParam reads a 24-hex path parameter
func GetObjectIDParam(c *gin.Context, name string) (string, error) {
	value := strings.TrimSpace(c.Param(name))
	if !primitive.IsValidObjectID(value) {
		return "", apperror.Validation(
			fmt.Sprintf("Invalid %s", name),
			apperror.FieldError{Field: name, Message: "must be a 24-character hex identifier"},
		)
	}
	return strings.ToLower(value), nil
}

// GetIDParam reads the ":id" path parameter
func GetIDParam(c *gin.Context) (string, error) {
	return GetObjectIDParam(c, "id")
}

// ParseOptionalBool parses "true"/"false" query values; anything else yields nil
func ParseOptionalBool(value string) *bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
