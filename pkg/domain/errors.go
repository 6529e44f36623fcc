package domain

import "errors"

// ErrTaskNotFound is returned when no snapshot exists for a content hash.
var ErrTaskNotFound = errors.New("workflow task not found")

// ErrMalformedPayload is returned when an event payload is missing fields
// required by the target transition's action.
var ErrMalformedPayload = errors.New("malformed event payload")

// ErrSideEffect wraps a publish or claim-persistence failure that occurred
// after the snapshot write succeeded. The state may have advanced even
// though the side effect did not run; retrying the event is a no-op, the
// side effect must be retried on its own.
var ErrSideEffect = errors.New("post-transition side effect failed")
