package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analytics.ErrIdentityMissing):
		Unauthorized(w, err.Error())

	// Store failures and everything else: a single aggregate-level error,
	// never a partially-populated metrics object.
	default:
		InternalServerError(w, "failed to compute attendance analytics")
	}
}
