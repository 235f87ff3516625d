package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Header renders the Mailopolis title bar.
type Header struct {
	width int
}

// NewHeader creates a new Header.
func NewHeader() *Header {
	return &Header{
		width: 80,
	}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	colors := []string{"#4ECDC4", "#45B7D1", "#96E6A1", "#FFC857", "#FF8E53"}

	logo := []string{
		" ███╗   ███╗ █████╗ ██╗██╗      ██████╗ ██████╗  ██████╗ ██╗     ██╗███████╗",
		" ████╗ ████║██╔══██╗██║██║     ██╔═══██╗██╔══██╗██╔═══██╗██║     ██║██╔════╝",
		" ██╔████╔██║███████║██║██║     ██║   ██║██████╔╝██║   ██║██║     ██║███████╗",
		" ██║╚██╔╝██║██╔══██║██║██║     ██║   ██║██╔═══╝ ██║   ██║██║     ██║╚════██║",
		" ██║ ╚═╝ ██║██║  ██║██║███████╗╚██████╔╝██║     ╚██████╔╝███████╗██║███████║",
		" ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝╚══════╝ ╚═════╝ ╚═╝      ╚═════╝ ╚══════╝╚═╝╚══════╝",
	}

	var styledLines []string
	for i, line := range logo {
		color := colors[i%len(colors)]
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
		styledLines = append(styledLines, style.Render(line))
	}

	logoBlock := lipgloss.JoinVertical(lipgloss.Left, styledLines...)

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Italic(true).
		Render("City Hall Political Simulator")

	logoStyle := lipgloss.NewStyle().
		Width(h.width).
		Align(lipgloss.Center).
		MarginTop(1).
		PaddingBottom(1)

	return logoStyle.Render(lipgloss.JoinVertical(lipgloss.Center, logoBlock, subtitle))
}

// Height returns the header height in lines.
func (h *Header) Height() int {
	return 10
}
