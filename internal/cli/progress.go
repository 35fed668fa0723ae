package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vidl-dev/vidl/internal/core/media"
	"github.com/vidl-dev/vidl/internal/core/service"
)

var progressLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

type progressMsg service.Progress

type downloadDoneMsg struct{ err error }

type downloadModel struct {
	bar      progress.Model
	spinner  spinner.Model
	latest   service.Progress
	started  bool
	finished bool
	aborted  bool
	err      error
}

func newDownloadModel() downloadModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return downloadModel{
		bar:     progress.New(progress.WithDefaultGradient()),
		spinner: s,
	}
}

func (m downloadModel) Init() tea.Cmd { return m.spinner.Tick }

func (m downloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.aborted = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressMsg:
		m.latest = service.Progress(msg)
		m.started = true
		return m, nil

	case downloadDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit

	case tea.WindowSizeMsg:
		width := msg.Width - 30
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil
	}

	return m, nil
}

func (m downloadModel) View() string {
	if m.finished || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	label := "Downloading"
	if m.latest.Filename != "" {
		label = truncateLabel(m.latest.Filename, 50)
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", m.spinner.View(), progressLabelStyle.Render(label)))

	if m.latest.Total > 0 {
		ratio := float64(m.latest.Downloaded) / float64(m.latest.Total)
		if ratio > 1 {
			ratio = 1
		}
		b.WriteString(fmt.Sprintf("  %s  %s / %s\n",
			m.bar.ViewAs(ratio),
			formatBytes(m.latest.Downloaded),
			formatBytes(m.latest.Total)))
	} else if m.started {
		b.WriteString(fmt.Sprintf("  %s downloaded\n", formatBytes(m.latest.Downloaded)))
	}

	return b.String()
}

func truncateLabel(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// runDownloadWithProgress drives the download service while rendering a live
// progress bar. The provider's progress callback may fire from any
// goroutine; tea.Program.Send is safe to call from all of them.
func runDownloadWithProgress(ctx context.Context, svc *service.DownloadService, url string, chosen media.VideoFormat) error {
	dlCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newDownloadModel())

	go func() {
		err := svc.Download(dlCtx, url, chosen.FormatID, chosen.Ext, func(pr service.Progress) {
			p.Send(progressMsg(pr))
		})
		p.Send(downloadDoneMsg{err: err})
	}()

	out, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := out.(downloadModel)
	if !ok {
		return errAborted
	}
	if m.aborted {
		cancel()
		return errAborted
	}
	return m.err
}
