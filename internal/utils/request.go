package utils

import (
	"errors"
	"log/slog"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.InvalidRequestError("Invalid request body").WithError(err).WithDetail(err.Error()))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		slog.Warn("Validation failed", slog.String("error", err.Error()))

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, appErrors.InvalidRequestError("Invalid input data").WithError(err))
		return false
	}

	return true

}

// RequiredQuery reads a sanitized query parameter and writes an
// INVALID_REQUEST response when it is blank.
func RequiredQuery(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	return RequiredIdentifier(w, key, r.URL.Query().Get(key))
}

// RequiredIdentifier sanitizes value and writes an INVALID_REQUEST response
// when nothing is left. Validation tags only see the raw input, so markup-only
// ids get past them.
func RequiredIdentifier(w http.ResponseWriter, field, value string) (string, bool) {
	value = SanitizeIdentifier(value)
	if value == "" {
		response.Error(w, appErrors.AddValidationError(field, "is required"))
		return "", false
	}

	return value, true
}
