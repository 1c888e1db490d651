package realm

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned before any network call when no API token
// is configured. The index fetch short-circuits on it.
var ErrMissingCredential = errors.New("no API credential provided")

// ErrEmptyIndex is returned when the region's index contains no usable
// cluster entries. It is a distinct user-visible condition, not an empty
// result set.
var ErrEmptyIndex = errors.New("no connected realms found")

// TransportError reports a non-2xx HTTP response from the upstream API. It
// is fatal for the index fetch and recoverable-by-skip for a detail fetch.
type TransportError struct {
	Status     int
	StatusText string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream returned %d %s", e.Status, e.StatusText)
}

// MalformedPayloadError reports a detail response missing a required field.
type MalformedPayloadError struct {
	Field string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed cluster payload: missing %s", e.Field)
}

// AllFailedError reports that every detail fetch of a non-empty index was
// skipped. Individual skips never escalate; only a clean sweep does.
type AllFailedError struct {
	Attempted int
}

func (e *AllFailedError) Error() string {
	return fmt.Sprintf("all %d cluster detail fetches failed", e.Attempted)
}
