package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ledgerbook/backend/internal/models"
)

var (
	errUserMissing  = errors.New("the X-User-Id header must be set to the ID of the authenticated user")
	errDateMissing  = errors.New("the date query parameter must be set")
	errTypeInvalid  = errors.New("the specified transaction type is invalid")
	errLimitInvalid = errors.New("the limit must not be negative")
)

// status returns the HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, errUserMissing) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrConflict) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// describe returns the error text for the response. Failed binding
// validations are described per field.
func describe(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	texts := make([]string, 0, len(errs))
	for _, e := range errs {
		texts = append(texts, validationErrorToText(e))
	}

	return strings.Join(texts, "; ")
}

func validationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be longer than %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
