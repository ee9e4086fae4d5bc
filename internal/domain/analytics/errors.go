package analytics

import "errors"

// Analytics domain errors
var (
	ErrIdentityMissing = errors.New("requester identity not found in token claims")
)
