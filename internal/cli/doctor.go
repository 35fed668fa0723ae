package cli

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vidl-dev/vidl/internal/core/errs"
	"github.com/vidl-dev/vidl/internal/sys"
	"github.com/vidl-dev/vidl/internal/version"
)

var (
	statusOK   = color.New(color.FgGreen).SprintFunc()
	statusWarn = color.New(color.FgYellow).SprintFunc()
	statusFail = color.New(color.FgRed, color.Bold).SprintFunc()
)

// doctorCheck is one row of the diagnostics table.
type doctorCheck struct {
	name     string
	value    string
	status   string
	critical bool // a failed critical check makes the command exit non-zero
	failed   bool
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the environment for required tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor()
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor() error {
	backend := sys.DetectBackend()
	ffmpeg := sys.DetectFfmpeg()

	checks := []doctorCheck{
		{name: "vidl", value: version.Version, status: statusOK("OK")},
		{name: "go", value: runtime.Version(), status: statusOK("OK")},
		backendCheck(backend),
		ffmpegCheck(ffmpeg),
		{name: "os", value: fmt.Sprintf("%s (%s)", runtime.GOOS, runtime.GOARCH), status: statusOK("OK")},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers("Component", "Value", "Status").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	for _, c := range checks {
		t.Row(c.name, c.value, c.status)
	}

	fmt.Println()
	fmt.Println(t.Render())
	fmt.Println()

	if !ffmpeg.Found && len(ffmpeg.InstallCommands) > 0 {
		fmt.Println(warnStyle.Render("ffmpeg is not installed; adaptive streams cannot be merged."))
		fmt.Println("Install using one of:")
		for _, cmd := range ffmpeg.InstallCommands {
			fmt.Printf("  %s\n", cmd)
		}
		fmt.Println()
	}

	for _, c := range checks {
		if c.critical && c.failed {
			return errs.New(errs.KindEnvironment, "some environment checks failed").
				WithHint("Install the missing tools listed above and run 'vidl doctor' again.")
		}
	}

	fmt.Println(doneStyle.Render("All checks passed."))
	return nil
}

func backendCheck(st sys.BackendStatus) doctorCheck {
	if st.Found {
		return doctorCheck{name: "yt-dlp", value: st.Version, status: statusOK("OK"), critical: true}
	}
	return doctorCheck{name: "yt-dlp", value: "not found", status: statusFail("FAIL"), critical: true, failed: true}
}

func ffmpegCheck(st sys.FfmpegStatus) doctorCheck {
	if st.Found {
		return doctorCheck{name: "ffmpeg", value: st.Path, status: statusOK("OK")}
	}
	// Missing ffmpeg is a warning: downloads still work, merging does not.
	return doctorCheck{name: "ffmpeg", value: "not found", status: statusWarn("WARN")}
}
