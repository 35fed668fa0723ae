package ytdlp

import (
	"context"
	"encoding/json"
	"strings"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"github.com/vidl-dev/vidl/internal/core/errs"
	"github.com/vidl-dev/vidl/internal/sys"
)

// MetadataProvider fetches raw video metadata by running yt-dlp in
// dump-json mode. It satisfies service.MetadataProvider.
type MetadataProvider struct{}

// NewMetadataProvider returns a backend-backed metadata provider.
func NewMetadataProvider() *MetadataProvider {
	return &MetadataProvider{}
}

// FetchInfo extracts metadata for url without downloading anything. Numeric
// JSON values are preserved as json.Number so the service layer can tell
// integers from floats.
func (p *MetadataProvider) FetchInfo(ctx context.Context, url string) (map[string]any, error) {
	if err := sys.RequireBackend(); err != nil {
		return nil, err
	}

	cmd := goytdlp.New().
		Quiet().
		NoWarnings().
		NoPlaylist().
		SkipDownload().
		DumpSingleJSON()

	res, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, classifyExtraction(err)
	}

	dec := json.NewDecoder(strings.NewReader(res.Stdout))
	dec.UseNumber()
	var info map[string]any
	if err := dec.Decode(&info); err != nil {
		return nil, errs.Wrap(errs.KindMetadataExtraction, err, "backend returned malformed metadata")
	}
	if len(info) == 0 {
		return nil, errs.New(errs.KindMetadataExtraction, "backend returned no metadata for the given URL").
			WithHint("The URL may not point to a valid video.")
	}
	return info, nil
}
