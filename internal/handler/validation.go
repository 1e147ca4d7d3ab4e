package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindAndValidate parses the JSON body into req and validates it, writing
// the error response itself when either step fails.
func bindAndValidate(c *gin.Context, validate *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Invalid request payload",
		})
		return false
	}

	if err := validate.Struct(req); err != nil {
		details := make(map[string]string)
		for _, err := range err.(validator.ValidationErrors) {
			details[err.Field()] = getValidationErrorMessage(err)
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Validation failed",
			"errors":  details,
		})
		return false
	}

	return true
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "This field exceeds maximum length of " + err.Param()
	case "min":
		return "This field must be at least " + err.Param() + " characters"
	case "email":
		return "This field must be a valid email"
	case "oneof":
		return "This field must be one of: " + err.Param()
	case "gt":
		return "This field must be greater than " + err.Param()
	case "gte":
		return "This field must be at least " + err.Param()
	default:
		return "This field is invalid"
	}
}
