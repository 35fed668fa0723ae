package service

import (
	"context"

	"github.com/vidl-dev/vidl/internal/core/errs"
	"github.com/vidl-dev/vidl/internal/core/media"
)

// DownloadService drives the download of a previously selected format.
// It builds the backend selector string and delegates everything else to
// the injected provider. Stateless.
type DownloadService struct {
	provider DownloadProvider
}

// NewDownloadService returns a service backed by the given provider.
func NewDownloadService(provider DownloadProvider) *DownloadService {
	return &DownloadService{provider: provider}
}

// Download fetches url using the format selected by formatID/ext, forwarding
// fn to the provider unchanged. Success is a nil error; the provider owns
// the output file and its location.
func (s *DownloadService) Download(ctx context.Context, url, formatID, ext string, fn ProgressFunc) error {
	spec := media.BuildFormatSpec(formatID, ext)
	if err := s.provider.Download(ctx, url, spec, fn); err != nil {
		if _, ok := errs.AsTyped(err); ok {
			return err
		}
		return errs.Wrap(errs.KindDownloadFailed, err, "unexpected download error")
	}
	return nil
}
