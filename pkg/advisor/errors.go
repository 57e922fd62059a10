package advisor

import "errors"

var (
	// ErrMalformedRequest means the caller did not supply a message.
	ErrMalformedRequest = errors.New("message is required")
	// ErrExternalService wraps every failure of the completion API.
	ErrExternalService = errors.New("completion failed")
)
