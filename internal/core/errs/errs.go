// Package errs defines the typed error taxonomy shared by every layer.
// Raw backend errors never cross a service boundary: they are wrapped
// exactly once into one of these kinds, and already-typed errors always
// propagate unchanged.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a user-visible failure.
type Kind uint8

const (
	// KindInvalidURL means the input URL was empty or not http(s).
	KindInvalidURL Kind = iota + 1
	// KindMetadataExtraction means the backend failed to return metadata
	// for a reason other than the video being unavailable.
	KindMetadataExtraction
	// KindVideoUnavailable means the backend reported the video as
	// private, removed or otherwise restricted.
	KindVideoUnavailable
	// KindFormatSelection means no usable format survived selection, or a
	// previously listed format vanished before download.
	KindFormatSelection
	// KindDownloadFailed means the backend failed during the download step.
	KindDownloadFailed
	// KindEnvironment means a required runtime capability is missing
	// (backend binary, ffmpeg, interactive terminal).
	KindEnvironment
)

func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid URL"
	case KindMetadataExtraction:
		return "metadata extraction"
	case KindVideoUnavailable:
		return "video unavailable"
	case KindFormatSelection:
		return "format selection"
	case KindDownloadFailed:
		return "download failed"
	case KindEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

// Error is the one typed error carried across layer boundaries. Hint, when
// set, is actionable guidance rendered below the message.
type Error struct {
	Kind    Kind
	Message string
	Hint    string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// New returns a typed error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a typed error whose message carries the original error text,
// keeping cause available for errors.Is/As chains.
func Wrap(kind Kind, cause error, context string) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf("%s: %v", context, cause),
		cause:   cause,
	}
}

// WithHint attaches actionable guidance and returns the error.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// WithCause records the underlying error and returns the error.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// AsTyped extracts a typed error from err's chain.
func AsTyped(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries a typed error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := AsTyped(err)
	return ok && e.Kind == kind
}

// upgradeMarker detects a hint that already carries the upgrade suggestion.
const upgradeMarker = "Also try updating yt-dlp:"

// AppendUpgradeHint appends the fixed backend-upgrade suggestion to hint.
// The append is idempotent: a hint that already contains the suggestion is
// returned unchanged.
func AppendUpgradeHint(hint string) string {
	if strings.Contains(hint, upgradeMarker) {
		return hint
	}
	return strings.Join([]string{hint, upgradeMarker, "  vidl upgrade"}, "\n")
}
