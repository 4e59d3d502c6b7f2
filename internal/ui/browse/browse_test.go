package browse

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpsheet/helpsheet/internal/clipboard"
	"github.com/helpsheet/helpsheet/internal/domain/catalog"
	"github.com/helpsheet/helpsheet/internal/domain/registry"
	"github.com/helpsheet/helpsheet/internal/domain/source"
	"github.com/helpsheet/helpsheet/internal/ui/styles"
)

func newTestModel(t *testing.T, clip clipboard.Writer) Model {
	t.Helper()

	foo := catalog.Definition{
		Name: "Foo", Description: "Foo tool", Icon: "F",
		Categories: []catalog.Category{
			{Name: "Basics", Commands: []catalog.CommandEntry{
				{Command: "foo bar", Description: "Does bar"},
				{Command: "foo baz", Description: "Does baz"},
			}},
			{Name: "Back", Commands: []catalog.CommandEntry{
				{Command: "foo back", Description: "Goes back in time"},
			}},
		},
	}
	bar := catalog.Definition{
		Name: "Bar", Description: "Bar tool", Icon: "B",
		Categories: []catalog.Category{
			{Name: "Ops", Commands: []catalog.CommandEntry{
				{Command: "bar run", Description: "Runs the bar"},
				{Command: "bar stop", Description: "Stops the bar"},
			}},
		},
	}

	reg := registry.New(nil, source.Static("foo", foo), source.Static("bar", bar))
	require.Equal(t, 2, reg.LoadAll().Len())

	theme := styles.New(styles.NewRenderer(io.Discard, false))
	return New(reg, clip, Options{Theme: theme})
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// press feeds keys to the model and drops the returned commands.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

// selectItem presses enter and runs the copy command it produces.
func selectItem(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, copiedMsg{}, msg)
	next, _ = next.(Model).Update(msg)
	return next.(Model)
}

func moveTo(t *testing.T, m Model, label string) Model {
	t.Helper()
	for i, it := range m.items {
		if it.label == label {
			m.cursor = i
			return m
		}
	}
	t.Fatalf("no item %q in %v", label, m.items)
	return m
}

func TestHomeExpandAndStart(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	assert.Equal(t, screenHome, m.screen)
	assert.Contains(t, m.View(), "2 Development Knowledge Bases Available")

	m = press(t, m, "enter")
	assert.Equal(t, screenDetails, m.screen)
	view := m.View()
	assert.Contains(t, view, "F Foo - Foo tool")
	assert.Contains(t, view, "2 command categories")
	assert.Contains(t, view, "1 command categories")

	m = press(t, m, "enter")
	assert.Equal(t, screenTools, m.screen)
	assert.Equal(t, "foo", m.items[0].value)
	assert.Equal(t, "B Bar - Bar tool (1 categories)", m.items[1].label)
}

func TestCategoryNamedBackIsData(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	m = press(t, m, "down", "enter", "enter")
	require.Equal(t, screenCategories, m.screen)
	assert.Equal(t, "foo", m.tool)

	m = press(t, m, "down", "enter")
	assert.Equal(t, screenCommands, m.screen)
	assert.Equal(t, "Back", m.category)
	assert.Equal(t, "foo back", m.items[0].label)
}

func TestCopyCommand(t *testing.T) {
	clip := &clipboard.Memory{}
	m := newTestModel(t, clip)
	m = press(t, m, "down", "enter", "enter", "enter", "down")
	require.Equal(t, screenCommands, m.screen)
	assert.Contains(t, m.View(), "Does baz")

	m = selectItem(t, m)
	assert.Equal(t, screenCopied, m.screen)
	assert.Equal(t, "foo baz", clip.Last())
	assert.Contains(t, m.View(), "Command copied to clipboard!")
	assert.Contains(t, m.View(), "Command: foo baz")

	m = press(t, m, "enter")
	assert.Equal(t, screenCommands, m.screen)

	m = selectItem(t, m)
	m = press(t, m, "down", "enter")
	assert.Equal(t, screenCategories, m.screen)
	assert.Equal(t, 0, m.cursor)
}

func TestCopyFailureStaysOnCommands(t *testing.T) {
	clip := &clipboard.Memory{Err: errors.New("no display")}
	m := newTestModel(t, clip)
	m = press(t, m, "down", "enter", "enter", "enter")

	m = selectItem(t, m)
	assert.Equal(t, screenCommands, m.screen)
	view := m.View()
	assert.Contains(t, view, "Failed to copy command to clipboard: no display")
	assert.Contains(t, view, "Command: foo bar")
	assert.Contains(t, view, "Description: Does bar")
}

func TestGlobalSearch(t *testing.T) {
	clip := &clipboard.Memory{}
	m := newTestModel(t, clip)
	m = press(t, m, "down", "enter")
	m = moveTo(t, m, "🔍 Search across all tools")
	m = press(t, m, "enter")
	require.Equal(t, screenSearch, m.screen)
	assert.False(t, m.scoped)
	assert.Contains(t, m.View(), "What command are you looking for?")

	m = press(t, m, "enter")
	assert.Equal(t, screenSearch, m.screen)
	assert.Contains(t, m.View(), msgEmptyQuery)

	m = press(t, m, "   ", "enter")
	assert.Equal(t, screenSearch, m.screen)
	assert.Equal(t, msgEmptyQuery, m.message)

	m = press(t, m, "q")
	assert.False(t, m.quitting)

	m.input.SetValue("")
	m = press(t, m, "BAR", "enter")
	require.Equal(t, screenResults, m.screen)
	assert.Equal(t, "BAR", m.query)
	assert.Equal(t, m.reg.SearchAll("BAR"), m.results)

	view := m.View()
	assert.Contains(t, view, `Found 3 commands matching "BAR"`)
	assert.Contains(t, view, "F Foo:")
	assert.Contains(t, view, "B Bar:")

	m = moveTo(t, m, "bar stop")
	m = selectItem(t, m)
	assert.Equal(t, "bar stop", clip.Last())
	assert.Equal(t, "bar", m.tool)
	assert.Equal(t, "Ops", m.category)

	m = press(t, m, "enter")
	assert.Equal(t, screenResults, m.screen)

	m = press(t, m, "esc")
	assert.Equal(t, screenTools, m.screen)
}

func TestScopedSearch(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	m = press(t, m, "down", "enter", "down", "enter")
	require.Equal(t, screenCategories, m.screen)
	assert.Equal(t, "bar", m.tool)

	m = moveTo(t, m, "🔍 Search within this tool")
	m = press(t, m, "enter")
	require.True(t, m.scoped)
	assert.Contains(t, m.View(), "Search within Bar:")

	m = press(t, m, "stop", "enter")
	require.Equal(t, screenResults, m.screen)
	require.Len(t, m.results, 1)
	assert.Contains(t, m.View(), `Found 1 commands in Bar matching "stop"`)
	assert.Contains(t, m.View(), "Category: Ops")

	m = moveTo(t, m, "📁 Browse categories")
	m = press(t, m, "enter")
	assert.Equal(t, screenCategories, m.screen)
}

func TestSearchNoResults(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	m = press(t, m, "down", "enter")
	m = moveTo(t, m, "🔍 Search across all tools")
	m = press(t, m, "enter", "zzz", "enter")

	assert.Equal(t, screenResults, m.screen)
	assert.Empty(t, m.results)
	assert.Contains(t, m.View(), msgNoResults)

	m = press(t, m, "enter")
	assert.Equal(t, screenSearch, m.screen)
	assert.Empty(t, m.input.Value())
}

func TestBackRestoresCursor(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	m = press(t, m, "down", "enter", "down", "enter")
	require.Equal(t, screenCategories, m.screen)

	m = press(t, m, "esc")
	assert.Equal(t, screenTools, m.screen)
	assert.Equal(t, 1, m.cursor)

	m = press(t, m, "esc")
	assert.Equal(t, screenHome, m.screen)
}

func TestCursorWraps(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	m = press(t, m, "up")
	assert.Equal(t, len(m.items)-1, m.cursor)
	m = press(t, m, "down")
	assert.Equal(t, 0, m.cursor)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})

	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)
	assert.True(t, m.Quitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.View(), styles.Farewell)
}

func TestExitItemAndCtrlC(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	m = moveTo(t, m, "❌ Exit")
	m = press(t, m, "enter")
	assert.True(t, m.Quitting())

	m = newTestModel(t, &clipboard.Memory{})
	m = press(t, m, "down", "enter")
	m = moveTo(t, m, "🔍 Search across all tools")
	m = press(t, m, "enter", "ctrl+c")
	assert.True(t, m.Quitting())
}

func TestWindow(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	m.items = make([]item, 40)

	start, end := m.window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 40, end)

	m.height = 26
	m.cursor = 20
	start, end = m.window()
	assert.Equal(t, 10, end-start)
	assert.LessOrEqual(t, start, 20)
	assert.Greater(t, end, 20)

	m.cursor = 39
	_, end = m.window()
	assert.Equal(t, 40, end)
}
