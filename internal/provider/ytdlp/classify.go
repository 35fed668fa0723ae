// Package ytdlp implements the provider contracts on top of the yt-dlp
// backend, driven through github.com/lrstanley/go-ytdlp. This package is the
// only place that talks to the backend; every backend failure is translated
// into a typed error here and nothing raw escapes.
package ytdlp

import (
	"strings"

	"github.com/vidl-dev/vidl/internal/core/errs"
)

// unavailableSignals are substrings of backend error messages that indicate
// the video itself is gone or restricted, as opposed to a transient or
// extraction failure.
var unavailableSignals = []string{
	"unavailable",
	"private video",
	"removed",
	"not available",
	"account terminated",
	"video has been removed",
	"this video is no longer available",
	"sign in to confirm your age",
}

func isUnavailable(msg string) bool {
	lower := strings.ToLower(msg)
	for _, signal := range unavailableSignals {
		if strings.Contains(lower, signal) {
			return true
		}
	}
	return false
}

// classifyExtraction maps a backend extraction failure to a typed error.
func classifyExtraction(cause error) *errs.Error {
	if isUnavailable(cause.Error()) {
		return errs.New(errs.KindVideoUnavailable, cause.Error()).
			WithHint("The video may be private, removed, or geo-restricted.").
			WithCause(cause)
	}
	return errs.New(errs.KindMetadataExtraction, cause.Error()).WithCause(cause)
}

// classifyDownload maps a backend download failure to a typed error.
func classifyDownload(cause error) *errs.Error {
	if isUnavailable(cause.Error()) {
		return errs.New(errs.KindVideoUnavailable, cause.Error()).
			WithHint("The video may be private, removed, or geo-restricted.").
			WithCause(cause)
	}
	return errs.New(errs.KindDownloadFailed, cause.Error()).
		WithHint("Check the URL, your network, or try a different format.").
		WithCause(cause)
}
