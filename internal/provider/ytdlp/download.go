package ytdlp

import (
	"context"
	"path/filepath"
	"time"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"github.com/vidl-dev/vidl/internal/core/service"
	"github.com/vidl-dev/vidl/internal/sys"
)

const outputTemplate = "%(title)s.%(ext)s"

// DownloadProvider performs downloads through the yt-dlp backend. It
// satisfies service.DownloadProvider. The output file lands in OutputDir
// under the backend's title-based template; callers never learn the path.
type DownloadProvider struct {
	// OutputDir is where the backend writes the merged file. Empty means
	// the current working directory.
	OutputDir string
	// MergeContainer is the container the backend merges adaptive streams
	// into when ffmpeg is available.
	MergeContainer string
}

// NewDownloadProvider returns a backend-backed download provider.
func NewDownloadProvider(outputDir, mergeContainer string) *DownloadProvider {
	if mergeContainer == "" {
		mergeContainer = "mp4"
	}
	return &DownloadProvider{OutputDir: outputDir, MergeContainer: mergeContainer}
}

// Download fetches url with the given selector string, forwarding progress
// snapshots to fn. fn may be nil.
func (p *DownloadProvider) Download(ctx context.Context, url, formatSpec string, fn service.ProgressFunc) error {
	if err := sys.RequireBackend(); err != nil {
		return err
	}

	cmd := goytdlp.New().
		Quiet().
		NoWarnings().
		NoPlaylist().
		Format(formatSpec).
		Output(filepath.Join(p.OutputDir, outputTemplate)).
		MergeOutputFormat(p.MergeContainer)

	if fn != nil {
		cmd = cmd.ProgressFunc(250*time.Millisecond, func(update goytdlp.ProgressUpdate) {
			fn(snapshot(update))
		})
	}

	if _, err := cmd.Run(ctx, url); err != nil {
		return classifyDownload(err)
	}
	return nil
}

func snapshot(update goytdlp.ProgressUpdate) service.Progress {
	pr := service.Progress{
		Downloaded: int64(update.DownloadedBytes),
		Total:      int64(update.TotalBytes),
		Status:     "downloading",
	}
	if pr.Total > 0 && pr.Downloaded >= pr.Total {
		pr.Status = "finished"
	}
	if update.Info != nil && update.Info.Filename != nil {
		pr.Filename = filepath.Base(*update.Info.Filename)
	}
	return pr
}
