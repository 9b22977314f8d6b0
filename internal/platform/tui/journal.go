package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Journal layout constants
const (
	minWidthForDetail = 90  // Minimum width to show the detail panel
	detailWidth       = 28  // Width of the detail panel
	maxSessions       = 100 // Max sessions to load
)

// JournalSource is the part of the store the journal view reads and edits.
type JournalSource interface {
	RecentSessions(limit int) ([]storage.SessionRecord, error)
	DeleteSession(id string) error
}

// JournalKeyMap defines the key bindings for the journal view.
type JournalKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
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

// JournalModel is the Bubble Tea model for the session journal.
type JournalModel struct {
	source     JournalSource
	sessions   []storage.SessionRecord
	table      table.Model
	help       help.Model
	keys       JournalKeyMap
	err        error
	width      int
	height     int
	quitting   bool
	goingBack  bool
	showDetail bool
}

// NewJournalModel creates a journal view over source. A nil source shows
// an empty journal.
func NewJournalModel(source JournalSource, width, height int) JournalModel {
	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		source:     source,
		keys:       DefaultJournalKeyMap(),
		help:       h,
		width:      width,
		height:     height,
		showDetail: width >= minWidthForDetail,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Score", Width: 8},
		{Title: "Max", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "State", Width: 10},
		{Title: "Ended", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the most recent sessions into the table.
func (m *JournalModel) load() {
	m.sessions = nil
	m.err = nil
	if m.source != nil {
		m.sessions, m.err = m.source.RecentSessions(maxSessions)
	}
	m.updateTableRows()
}

func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			s.ShortID(),
			fmt.Sprintf("%d", s.Score),
			maxTile(s.MaxRank),
			fmt.Sprintf("%d", s.MoveCount),
			s.State,
			s.EndedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func maxTile(rank int) string {
	if rank <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", 1<<rank)
}

// Selected returns the session under the cursor.
func (m JournalModel) Selected() (storage.SessionRecord, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sessions) {
		return storage.SessionRecord{}, false
	}
	return m.sessions[i], true
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.Delete):
			if rec, ok := m.Selected(); ok && m.source != nil {
				if err := m.source.DeleteSession(rec.ID); err != nil {
					m.err = err
					return m, nil
				}
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showDetail = m.width >= minWidthForDetail
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	journalTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				MarginBottom(1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(journalTitleStyle.Render(centerText("JOURNAL", m.width)))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.renderTableContent())
	if m.showDetail {
		if rec, ok := m.Selected(); ok {
			detail := panelStyle.Width(detailWidth).Render(renderDetail(rec))
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", detail)
		}
	}
	b.WriteString(body)
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m JournalModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		return emptyStyle.Render("No sessions recorded yet.\nPlay a game to start the journal!")
	}
	return m.table.View()
}

// renderDetail shows one session, with its final board drawn from the
// fingerprint.
func renderDetail(rec storage.SessionRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session %s\n", rec.ShortID())
	fmt.Fprintf(&b, "Seed    %d\n", rec.Seed)
	fmt.Fprintf(&b, "Score   %d\n", rec.Score)
	fmt.Fprintf(&b, "Length  %s\n\n", rec.Duration().Round(time.Second))

	for row := 0; row+4 <= len(rec.Board); row += 4 {
		b.WriteString("  ")
		for _, ch := range rec.Board[row : row+4] {
			b.WriteString(" ")
			b.WriteRune(ch)
		}
		b.WriteString("\n")
	}

	moves := rec.Moves
	if len(moves) > detailWidth-4 {
		moves = moves[:detailWidth-7] + "..."
	}
	fmt.Fprintf(&b, "\n%s", moves)
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// RunJournal runs the journal screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunJournal(source JournalSource, width, height int) (goBack bool, err error) {
	model := NewJournalModel(source, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(JournalModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
