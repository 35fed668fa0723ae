package sys

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/vidl-dev/vidl/internal/core/errs"
)

// fakeBinary drops an executable stub named name into a fresh directory and
// returns that directory, suitable for use as PATH.
func fakeBinary(t *testing.T, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("PATH stub binaries are POSIX-only")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestDetectFfmpegFound(t *testing.T) {
	t.Setenv("PATH", fakeBinary(t, "ffmpeg", "exit 0\n"))

	st := DetectFfmpeg()
	if !st.Found {
		t.Fatal("ffmpeg on PATH was not detected")
	}
	if st.Path == "" {
		t.Fatal("detection reported no path")
	}
}

func TestDetectFfmpegMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	st := DetectFfmpeg()
	if st.Found {
		t.Fatalf("ffmpeg detected at %q with an empty PATH", st.Path)
	}
	if len(st.InstallCommands) == 0 {
		t.Fatal("missing ffmpeg carries no install guidance")
	}
}

func TestRequireFfmpegMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := RequireFfmpeg()
	typed, ok := errs.AsTyped(err)
	if !ok || typed.Kind != errs.KindEnvironment {
		t.Fatalf("got %v, want Environment error", err)
	}
	if !strings.Contains(typed.Hint, "Install ffmpeg") {
		t.Fatalf("hint has no install guidance: %q", typed.Hint)
	}
}

func TestDetectBackendFound(t *testing.T) {
	t.Setenv("PATH", fakeBinary(t, "yt-dlp", "echo 2025.08.22\n"))

	st := DetectBackend()
	if !st.Found {
		t.Fatal("yt-dlp on PATH was not detected")
	}
	if st.Version != "2025.08.22" {
		t.Fatalf("version=%q, want 2025.08.22", st.Version)
	}
}

func TestRequireBackendMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	err := RequireBackend()
	typed, ok := errs.AsTyped(err)
	if !ok || typed.Kind != errs.KindEnvironment {
		t.Fatalf("got %v, want Environment error", err)
	}
	if typed.Hint == "" {
		t.Fatal("missing backend carries no install guidance")
	}
}
