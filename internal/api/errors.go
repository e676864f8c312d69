package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/activitymap/activitymap-server/internal/errors"
)

// APIError is a custom error type that implements huma.StatusError.
// Every failure the API reports is serialized as {"error": message}.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Message string `json:"error" doc:"Human-readable error message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to use domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		for _, err := range errs {
			var domainErr *domainerrors.Error
			if errors.As(err, &domainErr) {
				return &APIError{
					status:  domainErr.HTTPStatus(),
					Message: domainErr.Message,
				}
			}
		}

		// Schema validation failures are client errors like any other.
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		return &APIError{
			status:  status,
			Message: withDetails(message, errs),
		}
	}
}

// withDetails appends huma's per-field error details to message.
func withDetails(message string, errs []error) string {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) == 0 {
		return message
	}
	return message + ": " + strings.Join(details, "; ")
}

// apiError converts an error returned by a service into an APIError.
// Internal and unknown errors are logged; their cause never reaches the client.
func (s *Server) apiError(err error) error {
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		if domainErr.Code == domainerrors.CodeInternal {
			s.logger.Error("Request failed", "error", err)
		}
		return &APIError{
			status:  domainErr.HTTPStatus(),
			Message: domainErr.Message,
		}
	}

	s.logger.Error("Unhandled error", "error", err)
	return &APIError{
		status:  http.StatusInternalServerError,
		Message: "internal server error",
	}
}
