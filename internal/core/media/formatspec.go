package media

import (
	"fmt"
	"strings"
)

// BuildFormatSpec maps a chosen video-only format to the backend's selector
// string, encoding the audio-pairing fallback chain. The container match is
// case-insensitive but the emitted spec always uses the canonical lowercase
// token. The grammar is backend-defined and must be reproduced exactly:
//
//	mp4  → "<id>+bestaudio[ext=m4a]/best[ext=mp4]"
//	webm → "<id>+bestaudio[ext=webm]/best[ext=webm]/best"
//	else → "<id>+bestaudio/best"
func BuildFormatSpec(formatID, ext string) string {
	switch strings.ToLower(ext) {
	case "mp4":
		return fmt.Sprintf("%s+bestaudio[ext=m4a]/best[ext=mp4]", formatID)
	case "webm":
		return fmt.Sprintf("%s+bestaudio[ext=webm]/best[ext=webm]/best", formatID)
	default:
		return fmt.Sprintf("%s+bestaudio/best", formatID)
	}
}
