package diag

import "errors"

// Fatal errors. Unlike the recoverable events above, these mean no result
// could be produced at all.
var (
	ErrDocumentUnavailable = errors.New("document unavailable")
	ErrMalformedDocument   = errors.New("malformed document")
	ErrDuplicateScreenID   = errors.New("duplicate screen id")
)

// DocumentError ties a fatal sentinel to the document it occurred on and
// the underlying cause.
type DocumentError struct {
	Sentinel error
	Path     string
	Cause    error
}

func (e *DocumentError) Error() string {
	msg := e.Sentinel.Error()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the cause, so errors.Is matches the
// taxonomy and errors.As still reaches the source error.
func (e *DocumentError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Sentinel}
	}
	return []error{e.Sentinel, e.Cause}
}

func NewDocumentError(sentinel error, path string, cause error) *DocumentError {
	return &DocumentError{Sentinel: sentinel, Path: path, Cause: cause}
}
