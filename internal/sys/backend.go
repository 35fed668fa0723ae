package sys

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/vidl-dev/vidl/internal/core/errs"
)

const backendBinary = "yt-dlp"

// BackendStatus is the result of a yt-dlp probe.
type BackendStatus struct {
	Found   bool
	Path    string
	Version string
}

// DetectBackend probes PATH for the yt-dlp binary and, when present, asks it
// for its version.
func DetectBackend() BackendStatus {
	path, err := exec.LookPath(backendBinary)
	if err != nil {
		return BackendStatus{}
	}
	st := BackendStatus{Found: true, Path: path, Version: "unknown"}
	if out, err := exec.Command(path, "--version").Output(); err == nil {
		if v := strings.TrimSpace(string(out)); v != "" {
			st.Version = v
		}
	}
	return st
}

// RequireBackend returns a typed environment error when yt-dlp is missing.
func RequireBackend() error {
	if st := DetectBackend(); st.Found {
		return nil
	}
	return errs.New(errs.KindEnvironment, "yt-dlp is not installed or not on PATH").
		WithHint("Install yt-dlp using one of:\n  " + strings.Join(backendInstallCommands(), "\n  "))
}

func backendInstallCommands() []string {
	cmds := []string{"python3 -m pip install -U yt-dlp"}
	switch runtime.GOOS {
	case "darwin":
		cmds = append(cmds, "brew install yt-dlp")
	case "windows":
		cmds = append(cmds, "winget install yt-dlp.yt-dlp")
	}
	return cmds
}
