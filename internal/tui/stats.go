package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// CityStatsView displays the city scoreboard with per-stat progress bars.
type CityStatsView struct {
	stats    models.CityStats
	turn     int
	maxTurns int
	width    int

	labelStyle    lipgloss.Style
	valueStyle    lipgloss.Style
	headerStyle   lipgloss.Style
	progressFull  lipgloss.Style
	progressEmpty lipgloss.Style
	warningStyle  lipgloss.Style
	dangerStyle   lipgloss.Style
}

// NewCityStatsView creates a new CityStatsView instance.
func NewCityStatsView() *CityStatsView {
	return &CityStatsView{
		stats: models.DefaultCityStats(),

		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(16),

		valueStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),

		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("238")).
			MarginBottom(1),

		progressFull: lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")),

		progressEmpty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		warningStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),

		dangerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}

// SetStats updates the displayed scoreboard.
func (v *CityStatsView) SetStats(stats models.CityStats) {
	v.stats = stats
}

// SetTurn updates the turn counter display.
func (v *CityStatsView) SetTurn(turn, maxTurns int) {
	v.turn = turn
	v.maxTurns = maxTurns
}

// SetWidth sets the view width.
func (v *CityStatsView) SetWidth(width int) {
	v.width = width
}

// View renders the scoreboard.
func (v *CityStatsView) View() string {
	var b strings.Builder

	b.WriteString(v.headerStyle.Render(fmt.Sprintf("City Stats - Turn %d of %d", v.turn, v.maxTurns)))
	b.WriteString("\n")

	b.WriteString(v.renderStat("Sustainability", v.stats.SustainabilityScore, false))
	b.WriteString(v.renderStat("Approval", v.stats.PublicApproval, false))
	b.WriteString(v.renderStat("Happiness", v.stats.PopulationHappiness, false))
	b.WriteString(v.renderStat("Economy", v.stats.EconomicGrowth, false))
	b.WriteString(v.renderStat("Infrastructure", v.stats.InfrastructureHealth, false))
	b.WriteString(v.renderStat("Corruption", v.stats.CorruptionLevel, true))

	budgetStyle := v.valueStyle
	if v.stats.Budget < 0 {
		budgetStyle = v.dangerStyle
	} else if v.stats.Budget < 200_000 {
		budgetStyle = v.warningStyle
	}
	b.WriteString(v.labelStyle.Render("Budget:"))
	b.WriteString(" ")
	b.WriteString(budgetStyle.Render(fmt.Sprintf("$%s", formatMoney(v.stats.Budget))))
	b.WriteString("\n")

	return b.String()
}

// renderStat renders one stat row with a progress bar. Inverted stats color
// high values as danger instead of health.
func (v *CityStatsView) renderStat(label string, value int, inverted bool) string {
	bar := v.renderBar(value, 20, inverted)
	return fmt.Sprintf("%s %s %s\n",
		v.labelStyle.Render(label+":"),
		bar,
		v.valueStyle.Render(fmt.Sprintf("%3d", value)))
}

func (v *CityStatsView) renderBar(value, width int, inverted bool) string {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	filled := value * width / 100
	empty := width - filled

	fullStyle := v.progressFull
	danger := value < 30
	if inverted {
		danger = value > 60
	}
	if danger {
		fullStyle = v.dangerStyle
	} else if (!inverted && value < 50) || (inverted && value > 40) {
		fullStyle = v.warningStyle
	}

	return "[" + fullStyle.Render(strings.Repeat("█", filled)) +
		v.progressEmpty.Render(strings.Repeat("░", empty)) + "]"
}

// formatMoney formats a dollar amount with comma separators.
func formatMoney(n int) string {
	str := fmt.Sprintf("%d", n)
	if n < 0 {
		str = str[1:]
	}

	result := ""
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}

	if n < 0 {
		result = "-" + result
	}
	return result
}
