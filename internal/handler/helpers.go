package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/dovietdong/WebApiBase/internal/auth"
)

// currentClaims returns the claims resolved by the JWT middleware, or nil on
// an unauthenticated route.
func currentClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get("user").(*auth.Claims)
	return claims
}

// parseIDParam parses the :id path parameter as a positive integer.
func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id")
	}
	return uint(id), nil
}

// validationMessages flattens validator errors into field-level messages.
func validationMessages(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed validation on the '%s' rule", fe.Field(), fe.Tag()))
	}
	return msgs
}
