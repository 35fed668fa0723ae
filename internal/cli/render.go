package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vidl-dev/vidl/internal/core/media"
)

var (
	summaryLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	tableBorderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1)
	tableCellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// renderSummary renders the title/duration block shown above the formats.
func renderSummary(meta media.VideoMetadata) string {
	out := fmt.Sprintf("\n%s  %s\n", summaryLabelStyle.Render("Title:"), meta.Title)
	if meta.Duration != nil {
		minutes, seconds := *meta.Duration/60, *meta.Duration%60
		out += fmt.Sprintf("%s  %dm %ds\n", summaryLabelStyle.Render("Duration:"), minutes, seconds)
	}
	return out
}

// renderFormatTable renders the available formats as a bordered table.
func renderFormatTable(formats []media.VideoFormat) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers("#", "Resolution", "FPS", "Container", "Size").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	for i, f := range formats {
		t.Row(
			strconv.Itoa(i+1),
			formatResolution(f.Height),
			formatFPS(f.FPS),
			f.Ext,
			formatFilesize(f.Filesize),
		)
	}

	return t.Render()
}

// formatResolution renders a height as "1080p", or "Unknown".
func formatResolution(height *int) string {
	if height == nil {
		return "Unknown"
	}
	return fmt.Sprintf("%dp", *height)
}

// formatFPS renders a frame rate, or an em dash when unavailable.
func formatFPS(fps *int) string {
	if fps == nil {
		return "—"
	}
	return strconv.Itoa(*fps)
}

// formatFilesize renders a byte count human-readably, or "Unknown".
func formatFilesize(size *int) string {
	if size == nil {
		return "Unknown"
	}
	return formatBytes(int64(*size))
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
