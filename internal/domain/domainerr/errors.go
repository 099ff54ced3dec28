// Package domainerr carries the error taxonomy shared by every layer:
// each error exposes a stable machine-readable kind next to a human
// message, and only the message plus the kind ever cross the HTTP
// boundary.
package domainerr

import "errors"

type Kind string

const (
	KindValidation         Kind = "validation"
	KindDuplicate          Kind = "duplicate"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindUnauthenticated    Kind = "unauthenticated"
	KindMisconfigured      Kind = "misconfigured"
	KindStorage            Kind = "storage"

	// transport outcome kinds for the client upload flow
	KindAborted        Kind = "aborted"
	KindNetwork        Kind = "network"
	KindServer         Kind = "server"
	KindInvalidRequest Kind = "invalid_request"
)

type Error struct {
	kind    Kind
	message string
	cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Kind() Kind {
	return e.kind
}

// KindOf reports the kind of err, or KindStorage for anything outside
// the taxonomy so unknown faults stay opaque to callers.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.kind
	}

	return KindStorage
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
