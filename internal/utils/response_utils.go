package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RespondWithError sends a JSON error response.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// FormatValidationErrors formats validation errors from validator/v10.
func FormatValidationErrors(err error) []string {
	var errors []string
	if err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []string{err.Error()}
		}
		for _, err := range verrs {
			element := fmt.Sprintf("Field '%s' failed on the '%s' tag", err.Field(), err.Tag())
			if err.Param() != "" {
				element = fmt.Sprintf("%s (value: %s)", element, err.Param())
			}
			errors = append(errors, element)
		}
	}
	return errors
}

// SanitizeInput trims surrounding whitespace from user-supplied text.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}
