package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mailopolis/mailopolis/internal/game"
	"github.com/mailopolis/mailopolis/pkg/models"
)

// TurnSink receives resolved turns for persistence. It is optional; a nil
// sink plays without saving.
type TurnSink interface {
	SaveTurn(gameID string, turn models.Turn) error
}

// PlayApp is the interactive game screen: scoreboard on top, proposal picker
// on the left, negotiation log on the right.
type PlayApp struct {
	engine   *game.Engine
	sink     TurnSink
	gameID   string
	maxTurns int

	header    *Header
	statsView *CityStatsView

	proposals []models.Proposal
	cursor    int

	logView  viewport.Model
	logLines []string
	spin     spinner.Model

	resolving bool
	gameOver  bool
	finalMsg  string
	width     int
	height    int
	err       error

	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	dimStyle      lipgloss.Style
	acceptStyle   lipgloss.Style
	rejectStyle   lipgloss.Style
	helpStyle     lipgloss.Style
}

// NewPlayApp creates the interactive game screen over a running engine.
func NewPlayApp(engine *game.Engine, sink TurnSink, gameID string, maxTurns int) *PlayApp {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &PlayApp{
		engine:    engine,
		sink:      sink,
		gameID:    gameID,
		maxTurns:  maxTurns,
		header:    NewHeader(),
		statsView: NewCityStatsView(),
		proposals: engine.SuggestedProposals(),
		logView:   viewport.New(60, 20),
		spin:      s,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),

		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),

		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),

		acceptStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true),

		rejectStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),

		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

type turnResolvedMsg struct {
	result game.TurnResult
	err    error
}

// Init starts the spinner.
func (a *PlayApp) Init() tea.Cmd {
	summary := a.engine.Summary()
	a.statsView.SetStats(summary.CityStats)
	a.statsView.SetTurn(summary.Turn, a.maxTurns)
	for _, event := range summary.ActiveEvents {
		a.appendLog(fmt.Sprintf("• %s: %s", event.Title, event.Description))
	}
	return a.spin.Tick
}

// Update handles input and turn resolution messages.
func (a *PlayApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.header.SetWidth(msg.Width)
		a.statsView.SetWidth(msg.Width)
		logWidth := msg.Width/2 - 4
		if logWidth < 30 {
			logWidth = 30
		}
		logHeight := msg.Height - a.header.Height() - 12
		if logHeight < 5 {
			logHeight = 5
		}
		a.logView.Width = logWidth
		a.logView.Height = logHeight
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case turnResolvedMsg:
		a.resolving = false
		if msg.err != nil {
			a.err = msg.err
			a.appendLog(a.rejectStyle.Render("error: " + msg.err.Error()))
			return a, nil
		}
		a.showTurn(msg.result)
		return a, nil
	}

	var cmd tea.Cmd
	a.logView, cmd = a.logView.Update(msg)
	return a, cmd
}

func (a *PlayApp) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.proposals)-1 {
			a.cursor++
		}
	case "pgup":
		a.logView.HalfViewUp()
	case "pgdown":
		a.logView.HalfViewDown()
	case "enter", " ":
		if a.resolving || a.gameOver || len(a.proposals) == 0 {
			return a, nil
		}
		a.resolving = true
		a.err = nil
		proposal := a.proposals[a.cursor]
		a.appendLog("")
		a.appendLog(a.titleStyle.Render("Submitting: " + proposal.Title))
		return a, tea.Batch(a.spin.Tick, a.resolveTurn(proposal))
	}
	return a, nil
}

// resolveTurn runs one engine turn off the UI loop.
func (a *PlayApp) resolveTurn(proposal models.Proposal) tea.Cmd {
	return func() tea.Msg {
		result, err := a.engine.PlayTurn(context.Background(), proposal)
		return turnResolvedMsg{result: result, err: err}
	}
}

// showTurn renders a resolved turn into the log and refreshes the state.
func (a *PlayApp) showTurn(result game.TurnResult) {
	a.statsView.SetStats(result.CityStats)
	a.statsView.SetTurn(result.Turn, a.maxTurns)

	discussion := result.Decision.Discussion
	for _, conv := range discussion.PrivateConversations {
		a.appendLog(a.dimStyle.Render(fmt.Sprintf("%s ↔ %s (%s)",
			conv.Participants[0], conv.Participants[1], conv.Purpose)))
		for _, m := range conv.Messages {
			a.appendLog(fmt.Sprintf("  %s: %s", m.Speaker, m.Content))
		}
	}
	for _, coalition := range discussion.CoalitionsFormed {
		a.appendLog("Coalition formed: " + strings.Join(coalition, " + "))
	}
	for _, lobby := range discussion.MayorLobbying {
		a.appendLog(fmt.Sprintf("%s lobbies the mayor (%s): %s",
			lobby.AgentName, lobby.InfluenceAttempt, lobby.Message))
	}

	verdict := result.Decision.MayorDecision
	if verdict.Accept {
		a.appendLog(a.acceptStyle.Render("APPROVED") + ": " + verdict.Reasoning)
	} else {
		a.appendLog(a.rejectStyle.Render("REJECTED") + ": " + verdict.Reasoning)
	}
	for stat, delta := range result.Decision.Consequences.StatChanges {
		if delta != 0 {
			a.appendLog(a.dimStyle.Render(fmt.Sprintf("  %s %+d", stat, delta)))
		}
	}
	a.appendLog(a.dimStyle.Render(result.Message))

	if a.sink != nil {
		history := a.engine.History()
		if len(history) > 0 {
			if err := a.sink.SaveTurn(a.gameID, history[len(history)-1]); err != nil {
				a.appendLog(a.dimStyle.Render("save failed: " + err.Error()))
			}
		}
	}

	if result.GameOver {
		a.gameOver = true
		a.finalMsg = result.Message
		return
	}

	a.proposals = a.engine.SuggestedProposals()
	if a.cursor >= len(a.proposals) {
		a.cursor = 0
	}
}

func (a *PlayApp) appendLog(line string) {
	a.logLines = append(a.logLines, line)
	if len(a.logLines) > 500 {
		a.logLines = a.logLines[len(a.logLines)-500:]
	}
	a.logView.SetContent(strings.Join(a.logLines, "\n"))
	a.logView.GotoBottom()
}

// View renders the full screen.
func (a *PlayApp) View() string {
	var b strings.Builder

	b.WriteString(a.header.View())
	b.WriteString("\n")
	b.WriteString(a.statsView.View())
	b.WriteString("\n")

	left := a.renderProposals()
	right := a.logView.View()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	b.WriteString("\n")

	switch {
	case a.gameOver:
		b.WriteString(a.titleStyle.Render(a.finalMsg))
		b.WriteString(a.helpStyle.Render("  (q to quit)"))
	case a.resolving:
		b.WriteString(a.spin.View())
		b.WriteString(a.dimStyle.Render(" the departments are talking..."))
	default:
		b.WriteString(a.helpStyle.Render("↑/↓ select · enter submit · pgup/pgdn scroll log · q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (a *PlayApp) renderProposals() string {
	var b strings.Builder
	b.WriteString(a.titleStyle.Render("Proposals"))
	b.WriteString("\n")

	visible := 8
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}
	end := start + visible
	if end > len(a.proposals) {
		end = len(a.proposals)
	}

	for i := start; i < end; i++ {
		p := a.proposals[i]
		line := fmt.Sprintf("%s [%s] S%+d E%+d P%+d", p.Title, p.TargetDepartment,
			p.SustainabilityImpact, p.EconomicImpact, p.PoliticalImpact)
		if i == a.cursor {
			b.WriteString(a.selectedStyle.Render("> " + line))
		} else {
			b.WriteString(a.dimStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if len(a.proposals) > end {
		b.WriteString(a.dimStyle.Render(fmt.Sprintf("  … %d more", len(a.proposals)-end)))
		b.WriteString("\n")
	}
	return b.String()
}
