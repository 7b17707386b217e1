package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termpong/internal/game"
	"github.com/vovakirdan/termpong/internal/storage"
)

// maxRounds is the number of rounds loaded into the table.
const maxRounds = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
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
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true).
				Padding(0, 1)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
)

// ScoreboardModel is the Bubble Tea model for the round history screen.
type ScoreboardModel struct {
	store    *storage.Store
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	stats    *storage.Stats
	showBest bool
	width    int
	height   int
	loadErr  error
}

// NewScoreboardModel creates a scoreboard over the given store.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "when", Width: 17},
		{Title: "winner", Width: 8},
		{Title: "level", Width: 6},
		{Title: "hits", Width: 6},
		{Title: "duration", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(m.height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("6"))
	t.SetStyles(s)

	return t
}

func tableHeight(screenHeight int) int {
	h := screenHeight - 8
	if h < 3 {
		h = 3
	}
	return h
}

// load refreshes rows and stats from the store.
func (m *ScoreboardModel) load() {
	var (
		rounds []storage.RoundResult
		err    error
	)
	if m.showBest {
		rounds, err = m.store.BestRounds(maxRounds)
	} else {
		rounds, err = m.store.RecentRounds(maxRounds)
	}
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil

	rows := make([]table.Row, 0, len(rounds))
	for _, r := range rounds {
		verdict := "lost"
		if r.Winner == game.WinnerPlayer {
			verdict = "won"
		}
		rows = append(rows, table.Row{
			r.CreatedAt.Format("2006-01-02 15:04"),
			verdict,
			fmt.Sprintf("%d", r.LevelReached+1),
			fmt.Sprintf("%d", r.HitsTotal),
			fmt.Sprintf("%ds", r.DurationSecs),
		})
	}
	m.table.SetRows(rows)

	if stats, err := m.store.GetStats(); err == nil {
		m.stats = stats
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.showBest = !m.showBest
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(tableHeight(msg.Height))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	title := "recent rounds"
	if m.showBest {
		title = "best rounds"
	}

	var b strings.Builder
	b.WriteString(scoreboardTitleStyle.Render(title))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(statsStyle.Render(fmt.Sprintf("could not load rounds: %v", m.loadErr)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		if m.stats != nil && m.stats.RoundsCount > 0 {
			b.WriteString(statsStyle.Render(fmt.Sprintf(
				"%d rounds, %d won, best level %d, avg %.0fs",
				m.stats.RoundsCount, m.stats.PlayerWins, m.stats.BestLevel+1, m.stats.AvgDuration,
			)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
