// Package media holds the value types describing a single video and its
// downloadable formats, plus the pure selection pipeline that decides which
// formats are worth showing to the user.
package media

// CodecNone is the backend's sentinel for "this stream has no such track".
// It is part of the external contract and must not be normalized away.
const CodecNone = "none"

// VideoMetadata is the top-level description of a single video.
type VideoMetadata struct {
	ID         string
	Title      string
	Duration   *int // seconds, nil when unknown
	WebpageURL string
}

// VideoFormat describes one media stream variant reported by the backend.
// Height, FPS and Filesize are nil when the backend did not report them.
type VideoFormat struct {
	FormatID string
	Ext      string
	Height   *int
	FPS      *int
	Filesize *int
	VCodec   string
	ACodec   string
}

// AdaptiveVideoOnly reports whether the format carries a video track and no
// audio track, i.e. an adaptive stream meant to be merged with audio later.
func (f VideoFormat) AdaptiveVideoOnly() bool {
	return f.VCodec != CodecNone && f.ACodec == CodecNone
}

// FormatCollection is an immutable ordered set of formats. The order is
// presentation-significant: it is the output order of the selection pipeline.
type FormatCollection struct {
	formats []VideoFormat
}

// NewFormatCollection copies formats into a new collection.
func NewFormatCollection(formats []VideoFormat) FormatCollection {
	cp := make([]VideoFormat, len(formats))
	copy(cp, formats)
	return FormatCollection{formats: cp}
}

// Len returns the number of formats in the collection.
func (c FormatCollection) Len() int { return len(c.formats) }

// Empty reports whether the collection holds no formats.
func (c FormatCollection) Empty() bool { return len(c.formats) == 0 }

// Formats returns a copy of the collection's formats in presentation order.
func (c FormatCollection) Formats() []VideoFormat {
	cp := make([]VideoFormat, len(c.formats))
	copy(cp, c.formats)
	return cp
}

// ByID returns the format with the given FormatID, if present.
func (c FormatCollection) ByID(id string) (VideoFormat, bool) {
	for _, f := range c.formats {
		if f.FormatID == id {
			return f, true
		}
	}
	return VideoFormat{}, false
}

// IntPtr returns a pointer to v. Convenience for building formats literally.
func IntPtr(v int) *int { return &v }
