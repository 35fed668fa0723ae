package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vidl-dev/vidl/internal/core/media"
)

var (
	pickerTitleStyle    = lipgloss.NewStyle().Bold(true)
	pickerCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	pickerSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	pickerHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

type pickerModel struct {
	formats     []media.VideoFormat
	cursor      int
	chosen      string
	aborted     bool
	keyBindings pickerKeyMap
}

func newPickerModel(formats []media.VideoFormat) pickerModel {
	return pickerModel{formats: formats, keyBindings: defaultPickerKeyMap()}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keyBindings.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keyBindings.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keyBindings.Down):
		if m.cursor < len(m.formats)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keyBindings.Select):
		m.chosen = m.formats[m.cursor].FormatID
		return m, tea.Quit
	}

	return m, nil
}

func (m pickerModel) View() string {
	if m.chosen != "" || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n" + pickerTitleStyle.Render("Select format to download:") + "\n\n")

	for i, f := range m.formats {
		label := formatChoiceLabel(i, f)
		if i == m.cursor {
			b.WriteString(pickerCursorStyle.Render("❯ ") + pickerSelectedStyle.Render(label) + "\n")
		} else {
			b.WriteString("  " + label + "\n")
		}
	}

	b.WriteString("\n" + pickerHelpStyle.Render("↑/↓ move · enter select · q quit") + "\n")
	return b.String()
}

// formatChoiceLabel builds one selector row, e.g.
// "1.  1080p        30fps   mp4    150.3 MB".
func formatChoiceLabel(index int, f media.VideoFormat) string {
	return fmt.Sprintf("%d.  %-10s %5sfps   %-6s %s",
		index+1,
		formatResolution(f.Height),
		formatFPS(f.FPS),
		f.Ext,
		formatFilesize(f.Filesize),
	)
}

// promptFormatSelection shows the arrow-key picker and returns the chosen
// FormatID, or errAborted when the user backs out.
func promptFormatSelection(formats []media.VideoFormat) (string, error) {
	p := tea.NewProgram(newPickerModel(formats))
	out, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := out.(pickerModel)
	if !ok || m.aborted || m.chosen == "" {
		return "", errAborted
	}
	fmt.Printf("\n%s Selected format %s (%s)\n",
		doneStyle.Render("✓"), m.chosen, formatResolution(formats[m.cursor].Height))
	return m.chosen, nil
}
