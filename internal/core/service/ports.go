// Package service contains the two orchestration services and the provider
// contracts they depend on. The services never touch the network or the
// filesystem themselves; everything hard is delegated to an injected
// provider wrapping the extraction/download backend.
package service

import "context"

// Progress is one snapshot of download progress forwarded from the backend.
// Total is 0 when the backend has not reported a size.
type Progress struct {
	Status     string
	Filename   string
	Downloaded int64
	Total      int64
}

// ProgressFunc receives progress snapshots during a download. It may be
// invoked zero or many times, from whatever goroutine the provider uses
// internally, and must not panic.
type ProgressFunc func(Progress)

// MetadataProvider fetches the raw backend info record for a video URL.
// Numeric values in the returned map are json.Number. Implementations must
// return only typed errors from the errs package.
type MetadataProvider interface {
	FetchInfo(ctx context.Context, url string) (map[string]any, error)
}

// DownloadProvider performs a download using a backend selector string
// produced by media.BuildFormatSpec. The provider decides where the output
// file lands; fn may be nil. Implementations must return only typed errors.
type DownloadProvider interface {
	Download(ctx context.Context, url, formatSpec string, fn ProgressFunc) error
}
