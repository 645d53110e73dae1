package routes

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation errors report fields by their json tag so the paths match what
// clients actually sent.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleServiceError maps domain and service errors onto the API's status
// codes. Sentinel messages double as response bodies.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Error()})
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrTagNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrCategoryHasTasks):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrRefreshTokenNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

// bindingError reports request-shape failures with one entry per offending
// field.
func bindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": []fieldError{{Field: "body", Message: err.Error()}},
		})
		return
	}

	details := make([]fieldError, len(validationErrs))
	for i, fe := range validationErrs {
		details[i] = fieldError{
			Field:   "body." + fe.Field(),
			Message: bindingMessage(fe),
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request data",
		"details": details,
	})
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	case "uuid":
		return "must be a valid UUID"
	default:
		return "is invalid"
	}
}
