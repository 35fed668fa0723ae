// Package cli implements the vidl command surface. It is the sole error
// boundary of the program: typed errors render as a message plus optional
// hint, interrupts render a short notice, and anything else renders a
// generic apology — each with its own process exit code.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vidl-dev/vidl/internal/config"
	"github.com/vidl-dev/vidl/internal/core/errs"
	"github.com/vidl-dev/vidl/internal/core/service"
	ytdlpprov "github.com/vidl-dev/vidl/internal/provider/ytdlp"
	"github.com/vidl-dev/vidl/internal/version"
)

// Process exit codes. 130 follows the POSIX convention 128+SIGINT.
const (
	exitSuccess    = 0
	exitError      = 1
	exitUnexpected = 2
	exitInterrupt  = 130
)

// errAborted marks a user-initiated cancellation (Ctrl+C, q, Esc).
var errAborted = errors.New("aborted by user")

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

var (
	outputDir string
	infoOnly  bool
)

var rootCmd = &cobra.Command{
	Use:           "vidl [url]",
	Short:         "Interactive single-video downloader built on yt-dlp",
	Version:       version.Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runDownload(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory to write the downloaded file into")
	rootCmd.Flags().BoolVar(&infoOnly, "info", false, "list available formats without downloading")
}

// Run executes the CLI and returns the process exit code.
func Run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return exitSuccess
	}

	switch {
	case errors.Is(err, errAborted), errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, warnStyle.Render("Aborted."))
		return exitInterrupt
	default:
		if typed, ok := errs.AsTyped(err); ok {
			fmt.Fprintf(os.Stderr, "%s %s\n", errStyle.Render("Error:"), typed.Message)
			if typed.Hint != "" {
				fmt.Fprintf(os.Stderr, "%s %s\n", hintStyle.Render("Hint:"), typed.Hint)
			}
			return exitError
		}
		fmt.Fprintf(os.Stderr, "%s Please report this issue.\n  %T: %v\n",
			errStyle.Render("Unexpected error."), err, err)
		return exitUnexpected
	}
}

func runDownload(ctx context.Context, url string) error {
	cfg := config.LoadOrDefault()
	if !config.Exists() {
		fmt.Fprintln(os.Stderr, warnStyle.Render("No config file found, using defaults. See 'vidl config show'."))
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	metaSvc := service.NewMetadataService(ytdlpprov.NewMetadataProvider())
	meta, formats, err := fetchMetadata(ctx, metaSvc, url, interactive)
	if err != nil {
		return err
	}

	fmt.Print(renderSummary(meta))
	fmt.Println(renderFormatTable(formats.Formats()))

	if infoOnly {
		return nil
	}
	if !interactive {
		return errs.New(errs.KindEnvironment, "interactive format selection requires a terminal").
			WithHint("Run vidl from an interactive terminal, or pass --info to list formats.")
	}

	selectedID, err := promptFormatSelection(formats.Formats())
	if err != nil {
		return err
	}
	chosen, ok := formats.ByID(selectedID)
	if !ok {
		return errs.New(errs.KindFormatSelection, "selected format is no longer available").
			WithHint(errs.AppendUpgradeHint("Retry and choose a listed format."))
	}

	dlSvc := service.NewDownloadService(ytdlpprov.NewDownloadProvider(cfg.OutputDir, cfg.MergeContainer))
	if err := runDownloadWithProgress(ctx, dlSvc, url, chosen); err != nil {
		return err
	}

	fmt.Printf("\n%s Download complete.\n", doneStyle.Render("✓"))
	return nil
}
