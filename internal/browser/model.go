package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/config"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/ui"
)

// sidebarWidth is the width of the section list column.
const sidebarWidth = 28

// keyMap defines key bindings for the browser
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev section"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next section"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn/f", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is a read-only browser over the sections of a config.
type Model struct {
	Path     string
	Sections []string
	Cursor   int

	cfg      *config.Config
	viewport viewport.Model
	ready    bool

	Width  int
	Height int

	Help help.Model
	Keys keyMap
}

// New creates a browser for cfg. path is only used for the title.
func New(path string, cfg *config.Config) Model {
	return Model{
		Path:     path,
		Sections: cfg.Sections(),
		cfg:      cfg,
		Help:     help.New(),
		Keys:     newKeyMap(),
	}
}

// Init initializes the browser
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width

		vpWidth := msg.Width - sidebarWidth - 4
		vpHeight := msg.Height - 4
		if vpWidth < 20 {
			vpWidth = 20
		}
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(vpWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = vpWidth
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.sectionContent())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		case key.Matches(msg, m.Keys.Up):
			if m.Cursor > 0 {
				m.Cursor--
				m.resetViewport()
			}
			return m, nil
		case key.Matches(msg, m.Keys.Down):
			if m.Cursor < len(m.Sections)-1 {
				m.Cursor++
				m.resetViewport()
			}
			return m, nil
		}
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// Selected returns the name of the highlighted section, or "" if there is none.
func (m Model) Selected() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Sections) {
		return ""
	}
	return m.Sections[m.Cursor]
}

func (m *Model) resetViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.sectionContent())
	m.viewport.GotoTop()
}

func (m Model) sectionContent() string {
	name := m.Selected()
	if name == "" {
		return ui.MutedStyle.Render("(no sections)")
	}
	return ui.RenderSection(m.cfg, name)
}

// View renders the browser
func (m Model) View() string {
	title := ui.SectionNameStyle.Render("btconf") + " " + ui.MutedStyle.Render(m.Path)

	var list []string
	for i, name := range m.Sections {
		label := truncate(name, sidebarWidth-4)
		if i == m.Cursor {
			list = append(list, selectedStyle.Render("▸ "+label))
		} else {
			list = append(list, itemStyle.Render("  "+label))
		}
	}
	if len(list) == 0 {
		list = append(list, ui.MutedStyle.Render("  (empty)"))
	}
	sidebar := sidebarStyle.Render(strings.Join(list, "\n"))

	var body string
	if m.ready {
		body = m.viewport.View()
	} else {
		body = m.sectionContent()
	}
	content := contentStyle.Render(body)

	status := ui.MutedStyle.Render(fmt.Sprintf("%d/%d sections", m.Cursor+1, len(m.Sections)))
	if len(m.Sections) == 0 {
		status = ui.MutedStyle.Render("0 sections")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content),
		status+"  "+m.Help.View(m.Keys),
	)
}

var (
	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.PrimaryColor)

	contentStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.MutedColor).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor)
)

// truncate shortens s to n terminal cells, never splitting a character.
func truncate(s string, n int) string {
	return ansi.Truncate(s, n, "…")
}

// Run starts the browser in the alternate screen and blocks until the user
// quits.
func Run(path string, cfg *config.Config) error {
	program := tea.NewProgram(New(path, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
