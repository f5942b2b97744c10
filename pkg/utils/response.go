package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"poi-be-svc/pkg/apperror"
)

// APIResponse is the envelope for every JSON response
type APIResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    interface{}           `json:"data,omitempty"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
	IDs     []string              `json:"ids,omitempty"`
}

// SuccessResponse writes a 200 response
func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreatedResponse writes a 201 response
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BadRequestResponse writes a 400 response for malformed requests
func BadRequestResponse(c *gin.Context, message string, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Message: message,
		Errors:  bindingErrors(err),
	})
}

// UnauthorizedResponse writes a 401 response
func UnauthorizedResponse(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, APIResponse{
		Success: false,
		Message: message,
	})
}

// ForbiddenResponse writes a 403 response
func ForbiddenResponse(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, APIResponse{
		Success: false,
		Message: message,
	})
}

// NotFoundResponse writes a 404 response
func NotFoundResponse(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, APIResponse{
		Success: false,
		Message: message,
	})
}

// InternalServerErrorResponse writes a 500 response with the cause message
func InternalServerErrorResponse(c *gin.Context, message string, err error) {
	if err != nil {
		message = message + ": " + err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Message: message,
	})
}

// ErrorResponse renders a service error using its kind
func ErrorResponse(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		InternalServerErrorResponse(c, "Internal server error", err)
		return
	}

	c.AbortWithStatusJSON(appErr.Kind.HTTPStatus(), APIResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Fields,
		IDs:     appErr.IDs,
	})
}

func bindingErrors(err error) []apperror.FieldError {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]apperror.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, apperror.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		return fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []apperror.FieldError{{Field: typeErr.Field, Message: typeMessage(typeErr)}}
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}

	return []apperror.FieldError{{Field: "body", Message: err.Error()}}
}

// typeMessage describes a JSON value that does not fit the target field, e.g. 1.5 or 1e30 for an int
func typeMessage(e *json.UnmarshalTypeError) string {
	switch e.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return e.Field + " must be an integer"
	case reflect.Bool:
		return e.Field + " must be a boolean"
	case reflect.String:
		return e.Field + " must be a string"
	case reflect.Slice:
		return e.Field + " must be an array"
	}
	return e.Field + " has an invalid type"
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "objectid":
		return "Invalid " + fe.Field() + " ID"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "email":
		return fe.Field() + " must be a valid email"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fe.Field() + " must contain at least " + fe.Param() + " item(s)"
		}
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
