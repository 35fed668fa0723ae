package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vidl-dev/vidl/internal/core/media"
	"github.com/vidl-dev/vidl/internal/core/service"
)

var fetchInfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

// fetchState holds the outcome of the background metadata fetch.
type fetchState struct {
	mu      sync.RWMutex
	done    bool
	err     error
	meta    media.VideoMetadata
	formats media.FormatCollection
}

func (s *fetchState) set(meta media.VideoMetadata, formats media.FormatCollection, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = true
	s.meta = meta
	s.formats = formats
	s.err = err
}

func (s *fetchState) get() (bool, media.VideoMetadata, media.FormatCollection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.done, s.meta, s.formats, s.err
}

type fetchTickMsg time.Time

type fetchModel struct {
	spinner spinner.Model
	url     string
	state   *fetchState
	aborted bool
}

func newFetchModel(url string, state *fetchState) fetchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return fetchModel{spinner: s, url: url, state: state}
}

func fetchTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return fetchTickMsg(t)
	})
}

func (m fetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchTickCmd())
}

func (m fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchTickMsg:
		done, _, _, _ := m.state.get()
		if done {
			return m, tea.Quit
		}
		return m, fetchTickCmd()
	}

	return m, nil
}

func (m fetchModel) View() string {
	done, _, _, err := m.state.get()
	if err != nil || (done && !m.aborted) {
		// The caller renders results and errors after the program exits.
		return ""
	}
	return fmt.Sprintf("\n  %s Fetching metadata: %s\n\n",
		m.spinner.View(), fetchInfoStyle.Render(m.url))
}

// fetchMetadata extracts metadata and the adaptive format list for url. In
// interactive mode it shows a spinner while the backend works; otherwise it
// prints a single status line. Two backend calls, matching the two service
// operations.
func fetchMetadata(ctx context.Context, svc *service.MetadataService, url string, interactive bool) (media.VideoMetadata, media.FormatCollection, error) {
	if !interactive {
		fmt.Printf("Fetching metadata: %s\n", url)
		meta, err := svc.ExtractMetadata(ctx, url)
		if err != nil {
			return media.VideoMetadata{}, media.FormatCollection{}, err
		}
		formats, err := svc.AdaptiveVideoFormats(ctx, url)
		if err != nil {
			return media.VideoMetadata{}, media.FormatCollection{}, err
		}
		return meta, formats, nil
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	state := &fetchState{}
	go func() {
		meta, err := svc.ExtractMetadata(fetchCtx, url)
		if err != nil {
			state.set(media.VideoMetadata{}, media.FormatCollection{}, err)
			return
		}
		formats, err := svc.AdaptiveVideoFormats(fetchCtx, url)
		state.set(meta, formats, err)
	}()

	p := tea.NewProgram(newFetchModel(url, state))
	out, err := p.Run()
	if err != nil {
		return media.VideoMetadata{}, media.FormatCollection{}, err
	}

	if m, ok := out.(fetchModel); ok && m.aborted {
		return media.VideoMetadata{}, media.FormatCollection{}, errAborted
	}

	done, meta, formats, fetchErr := state.get()
	if fetchErr != nil {
		return media.VideoMetadata{}, media.FormatCollection{}, fetchErr
	}
	if !done {
		return media.VideoMetadata{}, media.FormatCollection{}, errAborted
	}
	return meta, formats, nil
}
