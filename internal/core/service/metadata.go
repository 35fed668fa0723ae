package service

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/vidl-dev/vidl/internal/core/errs"
	"github.com/vidl-dev/vidl/internal/core/media"
)

// MetadataService validates input, fetches raw metadata through the injected
// provider and maps it into the media model. Stateless across calls.
type MetadataService struct {
	provider MetadataProvider
}

// NewMetadataService returns a service backed by the given provider.
func NewMetadataService(provider MetadataProvider) *MetadataService {
	return &MetadataService{provider: provider}
}

// ExtractMetadata fetches and parses top-level metadata for url.
func (s *MetadataService) ExtractMetadata(ctx context.Context, url string) (media.VideoMetadata, error) {
	if err := validateURL(url); err != nil {
		return media.VideoMetadata{}, err
	}
	info, err := s.fetch(ctx, url)
	if err != nil {
		return media.VideoMetadata{}, err
	}
	return parseMetadata(info), nil
}

// AdaptiveVideoFormats fetches metadata for url and returns the adaptive
// video-only formats in presentation order. An empty selection result is an
// error at this layer: it means the source only offers muxed formats.
func (s *MetadataService) AdaptiveVideoFormats(ctx context.Context, url string) (media.FormatCollection, error) {
	if err := validateURL(url); err != nil {
		return media.FormatCollection{}, err
	}
	info, err := s.fetch(ctx, url)
	if err != nil {
		return media.FormatCollection{}, err
	}

	parsed := parseFormats(rawFormats(info))
	selected := media.SelectAdaptiveFormats(parsed)
	if len(selected) == 0 {
		return media.FormatCollection{}, errs.New(
			errs.KindFormatSelection,
			"no adaptive video formats found for this video",
		).WithHint(errs.AppendUpgradeHint("The video may only provide muxed formats."))
	}
	return media.NewFormatCollection(selected), nil
}

func validateURL(url string) error {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return errs.New(errs.KindInvalidURL, "URL must not be empty")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return errs.Newf(errs.KindInvalidURL, "invalid URL: %s", trimmed).
			WithHint("URL must start with http:// or https://")
	}
	return nil
}

// fetch delegates to the provider and guarantees only typed errors escape.
// Typed errors pass through unchanged, never double-wrapped.
func (s *MetadataService) fetch(ctx context.Context, url string) (map[string]any, error) {
	info, err := s.provider.FetchInfo(ctx, url)
	if err != nil {
		if _, ok := errs.AsTyped(err); ok {
			return nil, err
		}
		return nil, errs.Wrap(errs.KindMetadataExtraction, err, "unexpected provider error")
	}
	return info, nil
}

func parseMetadata(info map[string]any) media.VideoMetadata {
	return media.VideoMetadata{
		ID:         stringField(info, "id", ""),
		Title:      stringField(info, "title", "Unknown"),
		Duration:   truncatedInt(info["duration"]),
		WebpageURL: stringField(info, "webpage_url", ""),
	}
}

// rawFormats pulls the formats list out of the raw info record. A missing or
// non-list field yields an empty slice; the empty-selection path downstream
// handles it uniformly. Entries that are not records are skipped.
func rawFormats(info map[string]any) []map[string]any {
	list, ok := info["formats"].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, entry := range list {
		if m, ok := entry.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func parseFormats(raw []map[string]any) []media.VideoFormat {
	out := make([]media.VideoFormat, 0, len(raw))
	for _, entry := range raw {
		out = append(out, parseFormat(entry))
	}
	return out
}

func parseFormat(raw map[string]any) media.VideoFormat {
	size := truncatedInt(raw["filesize"])
	if size == nil {
		size = truncatedInt(raw["filesize_approx"])
	}
	return media.VideoFormat{
		FormatID: stringField(raw, "format_id", ""),
		Ext:      stringField(raw, "ext", ""),
		Height:   integerOnly(raw["height"]),
		FPS:      roundedInt(raw["fps"]),
		Filesize: size,
		VCodec:   codecField(raw, "vcodec"),
		ACodec:   codecField(raw, "acodec"),
	}
}

// stringField returns the field as a string, or def when absent or null.
func stringField(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// codecField maps an absent, null or empty codec value to the backend's
// "none" sentinel.
func codecField(m map[string]any, key string) string {
	s := stringField(m, key, "")
	if s == "" {
		return media.CodecNone
	}
	return s
}

// numeric converts the JSON value shapes a provider can hand us into a
// float64. json.Number is the usual case; plain ints show up from in-memory
// providers in tests.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// truncatedInt converts a numeric value to an int, truncating any fraction.
// Used for duration and filesize.
func truncatedInt(v any) *int {
	f, ok := numeric(v)
	if !ok {
		return nil
	}
	i := int(f)
	return &i
}

// roundedInt converts a numeric value to the nearest int, half rounding up.
// Used for fps, which backends occasionally report as 29.97.
func roundedInt(v any) *int {
	f, ok := numeric(v)
	if !ok {
		return nil
	}
	i := int(math.Floor(f + 0.5))
	return &i
}

// integerOnly accepts a value only when the backend reported it as an
// integer; fractional heights are treated as absent rather than coerced.
func integerOnly(v any) *int {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return nil
		}
		out := int(i)
		return &out
	case int:
		out := n
		return &out
	case int64:
		out := int(n)
		return &out
	default:
		return nil
	}
}
