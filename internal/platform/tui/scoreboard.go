package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the variant sidebar
	sidebarWidth       = 22  // Width of the variant sidebar
	maxScores          = 100 // Max scores to load per variant
)

// ResultFilter narrows the scoreboard to one kind of finished session.
type ResultFilter int

const (
	FilterAll ResultFilter = iota
	FilterCleared
	FilterGameOver
)

// String returns the label shown in the scoreboard header.
func (f ResultFilter) String() string {
	switch f {
	case FilterCleared:
		return "cleared"
	case FilterGameOver:
		return "game over"
	default:
		return "all"
	}
}

func (f ResultFilter) next() ResultFilter {
	return (f + 1) % 3
}

func (f ResultFilter) keep(o storage.Outcome) bool {
	switch f {
	case FilterCleared:
		return o == storage.OutcomeWin
	case FilterGameOver:
		return o == storage.OutcomeGameOver
	default:
		return true
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Filter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Filter, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "prev variant"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "next variant"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter result"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel browses stored results of every Breakout variant.
type ScoreboardModel struct {
	games  []registry.GameInfo
	cursor int
	store  *storage.Store
	filter ResultFilter

	scores []storage.ScoreEntry // current variant, best first, unfiltered
	totals map[string]*storage.GameStats

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over all registered variants.
// A nil store shows an empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	return newScoreboard(store, registry.List(), width, height)
}

func newScoreboard(store *storage.Store, games []registry.GameInfo, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  games,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// newTable builds the score table sized for the current window.
func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 6},
		{Title: "Result", Width: 9},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)), // title, summary, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorOf(core.ColorDarker)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorOf(core.ColorLight)).
		Background(colorOf(core.ColorPaddle)).
		Bold(false)
	t.SetStyles(s)

	return t
}

// selected returns the variant being shown.
func (m ScoreboardModel) selected() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.cursor], true
}

// reload reads the totals of every variant and the scores of the current one.
func (m *ScoreboardModel) reload() {
	m.scores, m.totals = nil, nil
	if g, ok := m.selected(); ok && m.store != nil {
		if scores, err := m.store.TopScores(g.ID, maxScores); err == nil {
			m.scores = scores
		}
		if totals, err := m.store.GetAllGamesStats(); err == nil {
			m.totals = totals
		}
	}
	m.refreshRows()
}

// refreshRows fills the table with the scores the filter keeps. Ranks are
// positions on the full board.
func (m *ScoreboardModel) refreshRows() {
	var rows []table.Row
	for i, s := range m.scores {
		if !m.filter.keep(s.Outcome) {
			continue
		}
		player := s.Player
		if player == "" {
			player = "local"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			outcomeLabel(s.Outcome),
			player,
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// outcomeLabel is the result column text.
func outcomeLabel(o storage.Outcome) string {
	if o == storage.OutcomeWin {
		return "cleared"
	}
	return "game over"
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			if n := len(m.games); n > 0 {
				m.cursor = (m.cursor + 1) % n
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if n := len(m.games); n > 0 {
				m.cursor = (m.cursor + n - 1) % n
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Filter):
			m.filter = m.filter.next()
			m.refreshRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.newTable()
		m.refreshRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(colorOf(core.ColorYellow))
	dimStyle := lipgloss.NewStyle().Foreground(colorOf(core.ColorDark))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorOf(core.ColorDarker)).
		Padding(0, 1)

	title := "HIGH SCORES"
	if g, ok := m.selected(); ok {
		title = fmt.Sprintf("HIGH SCORES - %s", g.Title)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	board := boxStyle.Render(m.boardContent())
	if m.wide() {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.sidebar())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", board))
	} else {
		b.WriteString(centerText(m.selector(), m.width))
		b.WriteString("\n")
		b.WriteString(board)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// summary is the totals line of the current variant and the active filter.
func (m ScoreboardModel) summary() string {
	line := "showing " + m.filter.String()
	g, ok := m.selected()
	if !ok {
		return line
	}
	st := m.totals[g.ID]
	if st == nil || st.GamesCount == 0 {
		return line
	}
	return fmt.Sprintf("%d played  %d cleared  best %d  avg %.1f  |  %s",
		st.GamesCount, st.Wins, st.HighScore, st.AvgScore, line)
}

// sidebar lists every variant with its games played and best score.
func (m ScoreboardModel) sidebar() string {
	selected := lipgloss.NewStyle().Bold(true).Foreground(colorOf(core.ColorBlue))
	dim := lipgloss.NewStyle().Foreground(colorOf(core.ColorDark))

	var b strings.Builder
	b.WriteString("Variants\n")
	for i, g := range m.games {
		line := "  " + g.Title
		if i == m.cursor {
			line = selected.Render("> " + g.Title)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if st := m.totals[g.ID]; st != nil && st.GamesCount > 0 {
			b.WriteString(dim.Render(fmt.Sprintf("  %d played, best %d", st.GamesCount, st.HighScore)))
		} else {
			b.WriteString(dim.Render("  no games"))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// selector replaces the sidebar on narrow terminals.
func (m ScoreboardModel) selector() string {
	g, ok := m.selected()
	if !ok {
		return ""
	}
	return fmt.Sprintf("< %s >  (%d/%d)", g.Title, m.cursor+1, len(m.games))
}

// boardContent renders the table or a hint when there is nothing to show.
func (m ScoreboardModel) boardContent() string {
	if len(m.table.Rows()) > 0 {
		return m.table.View()
	}

	msg := "No scores recorded yet.\nClear some bricks to set a high score!"
	if len(m.scores) > 0 {
		msg = fmt.Sprintf("No %s sessions.\nPress f to change the filter.", m.filter)
	}
	return lipgloss.NewStyle().
		Foreground(colorOf(core.ColorDark)).
		Italic(true).
		Padding(2, 4).
		Render(msg)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// IsGoingBack returns true if user wants to go back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user left with back, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: scoreboard: %w", err)
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
