// Package errors defines typed errors with categories for request-scoped
// failure reporting. Each error carries a machine-readable kind and a
// human-friendly message; kinds map onto gRPC status codes at the service
// boundary.
//
// The package supports wrapping underlying errors while maintaining error
// kind information, so failures from the engine or the filesystem keep their
// cause while gaining a category.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// InvalidRequest indicates an unknown union tag, a malformed chunk
	// sequence, or a missing required field. Never silently defaulted.
	InvalidRequest Kind = "invalid_request"
	// VerificationFailed indicates an artifact CRC or byte/chunk count
	// mismatch, scoped to a single artifact.
	VerificationFailed Kind = "verification_failed"
	// NotFound indicates an absent config key or an unresolvable session.
	NotFound Kind = "not_found"
	// EngineFailure indicates the external evaluator failed; propagated
	// as-is, retries are a client-side policy.
	EngineFailure Kind = "engine_failure"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Newf is New with formatting.
func Newf(kind Kind, format string, args ...any) *E {
	return &E{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err. Uncategorized errors report
// EngineFailure, the catch-all for collaborator failures.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return EngineFailure
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
