// Package browse is the interactive cheatsheet browser: pick a tool, a
// category and a command, and the command lands on the clipboard.
package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/helpsheet/helpsheet/internal/clipboard"
	"github.com/helpsheet/helpsheet/internal/domain/catalog"
	"github.com/helpsheet/helpsheet/internal/domain/registry"
	"github.com/helpsheet/helpsheet/internal/ui/styles"
)

const (
	msgEmptyQuery = "Please enter a search term"
	msgNoResults  = "🔍 No commands found matching your search."
)

// Options configures the browser.
type Options struct {
	Theme  *styles.Theme
	Logger *zap.Logger
}

// Model is the bubbletea model of the browser.
type Model struct {
	reg   *registry.Registry
	clip  clipboard.Writer
	theme *styles.Theme
	log   *zap.Logger

	screen screen
	items  []item
	cursor int

	tool     string
	category string
	scoped   bool
	query    string
	results  []catalog.SearchResult

	input   textinput.Model
	message string

	copied     catalog.CommandEntry
	copiedFrom screen

	height   int
	quitting bool
}

type copiedMsg struct {
	entry catalog.CommandEntry
	err   error
}

// New creates a browser over reg that copies through clip.
func New(reg *registry.Registry, clip clipboard.Writer, opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = styles.New(nil)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	input := textinput.New()
	input.Prompt = "› "
	input.CharLimit = 200

	m := Model{
		reg:   reg,
		clip:  clip,
		theme: opts.Theme,
		log:   opts.Logger.Named("browse"),
		input: input,
	}
	return m.goTo(screenHome)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case copiedMsg:
		return m.handleCopied(msg), nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.screen == screenSearch {
			return m.updateSearch(msg)
		}
		return m.updateMenu(msg)
	}

	if m.screen == screenSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.items) - 1
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.items) - 1
	case "enter", " ":
		if len(m.items) == 0 {
			return m, nil
		}
		return m.choose(m.items[m.cursor])
	case "esc", "backspace", "left", "h":
		return m.back(), nil
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		return m.back(), nil
	case tea.KeyEnter:
		query, ok := catalog.CleanQuery(m.input.Value())
		if !ok {
			m.message = msgEmptyQuery
			return m, nil
		}
		m.input.Blur()
		return m.search(query), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.message = ""
	return m, cmd
}

func (m Model) search(query string) Model {
	m.query = query
	if m.scoped {
		c, ok := m.reg.Catalog(m.tool)
		if ok {
			m.results = c.Search(query)
		} else {
			m.results = nil
		}
	} else {
		m.results = m.reg.SearchAll(query)
	}

	m = m.goTo(screenResults)
	if len(m.results) == 0 {
		m.message = msgNoResults
	}
	return m
}

func (m Model) choose(it item) (tea.Model, tea.Cmd) {
	switch it.act {
	case actExit:
		return m.quit()
	case actExpand:
		return m.goTo(screenDetails), nil
	case actStart, actHome, actOtherTool:
		return m.goTo(screenTools), nil
	case actSearch:
		m.scoped = m.screen == screenCategories
		return m.enterSearch()
	case actSearchAgain:
		return m.enterSearch()
	case actBrowseCategories, actOtherCategory:
		return m.goTo(screenCategories), nil
	case actSameCategory:
		if m.copiedFrom == screenResults {
			return m.goTo(screenResults), nil
		}
		return m.goTo(screenCommands), nil
	case actBack:
		return m.back(), nil
	}

	switch m.screen {
	case screenTools:
		m.tool = it.value
		return m.goTo(screenCategories), nil
	case screenCategories:
		m.category = it.value
		return m.goTo(screenCommands), nil
	case screenCommands:
		cmds := m.commands()
		if it.index >= len(cmds) {
			return m, nil
		}
		m.copiedFrom = screenCommands
		return m, copyCmd(m.clip, cmds[it.index])
	case screenResults:
		if it.index >= len(m.results) {
			return m, nil
		}
		r := m.results[it.index]
		if r.ToolKey != "" {
			m.tool = r.ToolKey
		}
		m.category = r.Category
		m.copiedFrom = screenResults
		return m, copyCmd(m.clip, r.CommandEntry)
	}
	return m, nil
}

func copyCmd(clip clipboard.Writer, entry catalog.CommandEntry) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{entry: entry, err: clip.WriteAll(entry.Command)}
	}
}

func (m Model) handleCopied(msg copiedMsg) Model {
	if msg.err != nil {
		m.log.Debug("clipboard write failed", zap.String("cmd", msg.entry.Command), zap.Error(msg.err))
		m.message = fmt.Sprintf("❌ Failed to copy command to clipboard: %v\nCommand: %s\nDescription: %s",
			msg.err, msg.entry.Command, msg.entry.Description)
		return m
	}
	m.copied = msg.entry
	return m.goTo(screenCopied)
}

func (m Model) enterSearch() (tea.Model, tea.Cmd) {
	m = m.goTo(screenSearch)
	m.input.Reset()
	m.input.Placeholder = "e.g. commit, logs, install"
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) back() Model {
	switch m.screen {
	case screenDetails, screenTools:
		return m.goTo(screenHome)
	case screenCategories:
		return m.goTo(screenTools)
	case screenCommands:
		return m.goTo(screenCategories)
	case screenSearch, screenResults:
		if m.scoped {
			return m.goTo(screenCategories)
		}
		return m.goTo(screenTools)
	case screenCopied:
		if m.copiedFrom == screenResults {
			return m.goTo(screenResults)
		}
		return m.goTo(screenCommands)
	}
	return m
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// goTo switches screens and rebuilds the menu. The cursor lands on the
// current tool or category when the menu lists it.
func (m Model) goTo(s screen) Model {
	m.screen = s
	m.message = ""
	m.cursor = 0

	switch s {
	case screenHome:
		m.items = m.homeItems()
	case screenDetails:
		m.items = m.detailsItems()
	case screenTools:
		m.items = m.toolItems()
		m.cursor = m.indexOf(m.tool)
	case screenCategories:
		m.items = m.categoryItems()
		m.cursor = m.indexOf(m.category)
	case screenCommands:
		m.items = m.commandItems()
	case screenSearch:
		m.items = nil
	case screenResults:
		m.items = m.resultItems()
	case screenCopied:
		m.items = m.copiedItems()
	}
	return m
}

func (m Model) indexOf(value string) int {
	if value == "" {
		return 0
	}
	for i, it := range m.items {
		if !it.nav() && it.value == value {
			return i
		}
	}
	return 0
}

// Quitting reports whether the user has left the browser.
func (m Model) Quitting() bool {
	return m.quitting
}
