package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNewGame
	ChoiceJournal
	ChoiceQuit
)

// MenuItem is one selectable line of the title menu.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Title: "New Game", Choice: ChoiceNewGame},
	{Title: "Journal", Choice: ChoiceJournal},
	{Title: "Quit", Choice: ChoiceQuit},
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuMutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	best     int
	config   core.RuntimeConfig
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a new menu model. best is shown under the title
// when positive.
func NewMenuModel(cfg core.RuntimeConfig, best int) MenuModel {
	cfg = cfg.WithDefaults()
	return MenuModel{
		items:  menuItems,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		best:   best,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	top := max((m.height-len(m.items)-8)/2, 1)
	b.WriteString(strings.Repeat("\n", top))

	b.WriteString(centerText(menuTitleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(menuMutedStyle.Render(fmt.Sprintf("Best: %d", m.best)), m.width))
	}
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title + "  "
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title + " <")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuMutedStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked. Leaving the menu counts as Quit.
func (m MenuModel) Choice() MenuChoice {
	switch {
	case m.selected != nil:
		return m.selected.Choice
	case m.quitting:
		return ChoiceQuit
	default:
		return ChoiceNone
	}
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, best int) (MenuResult, error) {
	model := NewMenuModel(cfg, best)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	choice := m.Choice()
	if choice == ChoiceNone {
		choice = ChoiceQuit
	}
	return MenuResult{Choice: choice, Config: m.Config()}, nil
}
