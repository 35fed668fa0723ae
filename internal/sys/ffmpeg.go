// Package sys probes the host for the external tools the downloader relies
// on: the yt-dlp backend and ffmpeg for merging adaptive streams. Detection
// is PATH-lookup only; nothing is executed except a version query, and
// nothing is ever installed without the user asking for it.
package sys

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/vidl-dev/vidl/internal/core/errs"
)

// FfmpegStatus is the result of an ffmpeg probe.
type FfmpegStatus struct {
	Found           bool
	Path            string
	InstallCommands []string
}

// DetectFfmpeg probes PATH for an ffmpeg binary. It always returns a status;
// the caller decides whether a missing binary is fatal or merely a warning.
func DetectFfmpeg() FfmpegStatus {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return FfmpegStatus{InstallCommands: ffmpegInstallCommands()}
	}
	return FfmpegStatus{Found: true, Path: path}
}

// RequireFfmpeg returns the ffmpeg path or a typed environment error with
// platform install guidance.
func RequireFfmpeg() (string, error) {
	st := DetectFfmpeg()
	if !st.Found {
		hint := ""
		if len(st.InstallCommands) > 0 {
			hint = "Install ffmpeg using one of:\n  " + strings.Join(st.InstallCommands, "\n  ")
		}
		return "", errs.New(errs.KindEnvironment, "ffmpeg is not installed or not on PATH").WithHint(hint)
	}
	return st.Path, nil
}

func ffmpegInstallCommands() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"winget install Gyan.FFmpeg", "choco install ffmpeg"}
	case "linux":
		return []string{"sudo apt install ffmpeg", "sudo dnf install ffmpeg", "sudo pacman -S ffmpeg"}
	case "darwin":
		return []string{"brew install ffmpeg"}
	default:
		return []string{"see https://ffmpeg.org/download.html"}
	}
}
