package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindMetadataExtraction, cause, "unexpected provider error")

	if err.Error() != "unexpected provider error: connection reset" {
		t.Fatalf("Error()=%q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("wrapped error lost its cause")
	}
}

func TestIsKind(t *testing.T) {
	err := New(KindInvalidURL, "URL must not be empty")
	if !IsKind(err, KindInvalidURL) {
		t.Fatal("IsKind failed on a direct typed error")
	}
	if IsKind(err, KindDownloadFailed) {
		t.Fatal("IsKind matched the wrong kind")
	}

	wrapped := fmt.Errorf("context: %w", err)
	if !IsKind(wrapped, KindInvalidURL) {
		t.Fatal("IsKind failed through an fmt.Errorf wrapper")
	}

	if IsKind(errors.New("plain"), KindInvalidURL) {
		t.Fatal("IsKind matched an untyped error")
	}
}

func TestAsTyped(t *testing.T) {
	typed := New(KindEnvironment, "ffmpeg missing").WithHint("brew install ffmpeg")
	got, ok := AsTyped(fmt.Errorf("wrapped: %w", typed))
	if !ok {
		t.Fatal("AsTyped failed to find the typed error")
	}
	if got.Hint != "brew install ffmpeg" {
		t.Fatalf("Hint=%q", got.Hint)
	}

	if _, ok := AsTyped(errors.New("plain")); ok {
		t.Fatal("AsTyped matched an untyped error")
	}
}

func TestKindString(t *testing.T) {
	kinds := []Kind{
		KindInvalidURL, KindMetadataExtraction, KindVideoUnavailable,
		KindFormatSelection, KindDownloadFailed, KindEnvironment,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "" || s == "unknown" {
			t.Fatalf("kind %d stringifies to %q", k, s)
		}
		if seen[s] {
			t.Fatalf("duplicate kind string %q", s)
		}
		seen[s] = true
	}
}

func TestAppendUpgradeHint(t *testing.T) {
	hint := AppendUpgradeHint("The video may only provide muxed formats.")
	if !strings.Contains(hint, "Also try updating yt-dlp:") {
		t.Fatalf("hint missing upgrade marker: %q", hint)
	}
	if !strings.Contains(hint, "vidl upgrade") {
		t.Fatalf("hint missing upgrade command: %q", hint)
	}
	if !strings.HasPrefix(hint, "The video may only provide muxed formats.") {
		t.Fatalf("original hint text not preserved: %q", hint)
	}
}

func TestAppendUpgradeHintIdempotent(t *testing.T) {
	once := AppendUpgradeHint("retry")
	twice := AppendUpgradeHint(once)
	if once != twice {
		t.Fatalf("second append changed the hint:\n%q\nvs\n%q", once, twice)
	}
	if strings.Count(twice, "Also try updating yt-dlp:") != 1 {
		t.Fatalf("marker appears more than once: %q", twice)
	}
}
