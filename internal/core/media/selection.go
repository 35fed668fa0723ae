package media

import "sort"

// dedupKey identifies a format for deduplication. A nil height or fps is a
// distinct key value, not zero: two formats both missing height collide with
// each other but never with a real height of 0.
type dedupKey struct {
	height    int
	fps       int
	hasHeight bool
	hasFPS    bool
	ext       string
}

func keyOf(f VideoFormat) dedupKey {
	k := dedupKey{ext: f.Ext}
	if f.Height != nil {
		k.height = *f.Height
		k.hasHeight = true
	}
	if f.FPS != nil {
		k.fps = *f.FPS
		k.hasFPS = true
	}
	return k
}

// FilterAdaptiveVideoOnly keeps only video-only adaptive streams, preserving
// input order.
func FilterAdaptiveVideoOnly(formats []VideoFormat) []VideoFormat {
	out := make([]VideoFormat, 0, len(formats))
	for _, f := range formats {
		if f.AdaptiveVideoOnly() {
			out = append(out, f)
		}
	}
	return out
}

// DeduplicateFormats collapses formats sharing the same (height, fps, ext)
// key. The first occurrence wins; callers control precedence by ordering the
// input. Relative order of kept elements is preserved.
func DeduplicateFormats(formats []VideoFormat) []VideoFormat {
	seen := make(map[dedupKey]struct{}, len(formats))
	out := make([]VideoFormat, 0, len(formats))
	for _, f := range formats {
		k := keyOf(f)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, f)
	}
	return out
}

// SortFormats orders formats for presentation: highest resolution first,
// then highest fps, then mp4 before any other container. Missing height or
// fps sorts as 0, placing unknown-quality entries last. The sort is stable.
func SortFormats(formats []VideoFormat) []VideoFormat {
	out := make([]VideoFormat, len(formats))
	copy(out, formats)
	sort.SliceStable(out, func(i, j int) bool {
		hi, hj := intOrZero(out[i].Height), intOrZero(out[j].Height)
		if hi != hj {
			return hi > hj
		}
		fi, fj := intOrZero(out[i].FPS), intOrZero(out[j].FPS)
		if fi != fj {
			return fi > fj
		}
		return extPriority(out[i].Ext) < extPriority(out[j].Ext)
	})
	return out
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func extPriority(ext string) int {
	if ext == "mp4" {
		return 0
	}
	return 1
}

// SelectAdaptiveFormats runs the full filter → deduplicate → sort pipeline.
// The stage order matters: deduplicating before filtering would let muxed
// duplicates shadow adaptive ones, and sorting before deduplicating would
// change which duplicate is "first". An empty result is valid here; raising
// an error for it is the caller's job.
func SelectAdaptiveFormats(formats []VideoFormat) []VideoFormat {
	return SortFormats(DeduplicateFormats(FilterAdaptiveVideoOnly(formats)))
}
