package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/validation"
)

// APIError is the wire shape of every non-2xx response.
type APIError struct {
	Message string          `json:"message"`
	Errors  []FieldErrorDTO `json:"errors,omitempty"`
}

// FieldErrorDTO is one entry of a validation failure, naming the offending
// parameter and where it came from.
type FieldErrorDTO struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// newValidationFailure converts a collected ValidationError into the wire
// shape, one entry per failing field.
func newValidationFailure(ve *validation.ValidationError) APIError {
	fields := make([]FieldErrorDTO, len(ve.Errors))
	for i, fe := range ve.Errors {
		fields[i] = FieldErrorDTO{
			Msg:      fe.Message,
			Param:    fe.Field,
			Location: fe.Location,
		}
	}
	return APIError{
		Message: "Validation failed",
		Errors:  fields,
	}
}

// respondError maps an error from the API layer to the nearest taxonomy
// bucket: validation 400, auth 401/403, not found 404, everything else an
// opaque 500 whose cause is logged server-side only.
func respondError(c echo.Context, err error, serverErrorMessage string) error {
	if ve, ok := err.(*validation.ValidationError); ok {
		return c.JSON(http.StatusBadRequest, newValidationFailure(ve))
	}

	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput:
			return c.JSON(http.StatusBadRequest, APIError{Message: appErr.Message})
		case errors.ErrorTypeUnauthorized:
			return c.JSON(http.StatusUnauthorized, APIError{Message: appErr.Message})
		case errors.ErrorTypeForbidden:
			return c.JSON(http.StatusForbidden, APIError{Message: appErr.Message})
		case errors.ErrorTypeNotFound:
			return c.JSON(http.StatusNotFound, APIError{Message: "Task not found"})
		}
	}

	if errors.ShouldLogError(err) {
		c.Logger().Errorf("%s: %v", serverErrorMessage, err)
		logging.Debugf("server error: %v\n", err)
	}
	return c.JSON(http.StatusInternalServerError, APIError{Message: serverErrorMessage})
}
