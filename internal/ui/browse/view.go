package browse

import (
	"fmt"
	"strings"

	"github.com/helpsheet/helpsheet/internal/ui/styles"
)

const helpLine = "↑/↓ move • enter select • esc back • q quit"

func (m Model) View() string {
	if m.quitting {
		return m.theme.Info.Render(styles.Farewell) + "\n"
	}

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	switch m.screen {
	case screenHome:
		line(m.theme.Header())
		line("")
		m.summary(line)
		line(m.theme.Title.Render("What would you like to do?"))
	case screenDetails:
		line(m.theme.Header())
		line("")
		tools := m.reg.ListTools()
		line(m.theme.Info.Render(fmt.Sprintf("📚 %d Development Knowledge Bases Available:", len(tools))))
		line("")
		for _, t := range tools {
			line(m.theme.Item.Render(fmt.Sprintf("%s %s - %s", t.Icon, t.Name, t.Description)))
			line(m.theme.Muted.Render(fmt.Sprintf("   %d command categories", t.CategoryCount)))
			line("")
		}
	case screenTools:
		line(m.theme.Header())
		line("")
		m.summary(line)
		line(m.theme.Title.Render("🔧 Which development tool would you like to explore?"))
	case screenCategories:
		line(m.theme.Title.Render(m.toolLabel() + " - Select a category:"))
	case screenCommands:
		line(m.theme.Heading.Render(m.toolLabel() + " - " + m.category))
		line(m.theme.Muted.Render(strings.Repeat("=", 50)))
		line(m.theme.Title.Render("📋 Select a command to copy to clipboard:"))
	case screenSearch:
		if m.scoped {
			line(m.theme.Title.Render(fmt.Sprintf("🔍 Search within %s:", m.toolName())))
		} else {
			line(m.theme.Title.Render("🔍 What command are you looking for?"))
		}
		line(m.input.View())
	case screenResults:
		if len(m.results) > 0 {
			if m.scoped {
				line(m.theme.Success.Render(fmt.Sprintf("🔍 Found %d commands in %s matching %q:", len(m.results), m.toolName(), m.query)))
			} else {
				line(m.theme.Success.Render(fmt.Sprintf("🔍 Found %d commands matching %q:", len(m.results), m.query)))
			}
		}
	case screenCopied:
		line(m.theme.CopiedBox(m.copied.Command, m.copied.Description))
		line("")
		line(m.theme.Title.Render("What would you like to do next?"))
	}

	if m.message != "" {
		style := m.theme.Warning
		if strings.HasPrefix(m.message, "❌") {
			style = m.theme.Error
		}
		line(style.Render(m.message))
	}

	m.renderItems(line)

	line("")
	line(m.theme.Muted.Render(helpLine))
	return b.String()
}

func (m Model) summary(line func(string)) {
	line(m.theme.Info.Render(fmt.Sprintf("📚 %d Development Knowledge Bases Available:", len(m.reg.ListTools()))))
	line(m.theme.Muted.Render("   (Use arrow keys and Enter to navigate)"))
	line("")
}

func (m Model) renderItems(line func(string)) {
	start, end := m.window()
	if start > 0 {
		line(m.theme.Muted.Render("  ↑ more"))
	}

	for i := start; i < end; i++ {
		it := m.items[i]
		if it.nav() && i > 0 && !m.items[i-1].nav() {
			line(m.theme.Muted.Render("  " + strings.Repeat("─", 20)))
		}
		if m.screen == screenResults && !m.scoped && !it.nav() {
			r := m.results[it.index]
			if i == start || r.ToolKey != m.results[m.items[i-1].index].ToolKey {
				line(m.theme.Heading.Render(fmt.Sprintf("%s %s:", r.ToolIcon, r.Tool)))
			}
		}

		if i == m.cursor {
			line(m.theme.Cursor.Render("❯ ") + m.theme.Selected.Render(it.label))
			m.details(it, line)
		} else {
			line("  " + m.theme.Item.Render(it.label))
		}
	}

	if end < len(m.items) {
		line(m.theme.Muted.Render("  ↓ more"))
	}
}

// details shows the description under the highlighted command.
func (m Model) details(it item, line func(string)) {
	if it.nav() {
		return
	}
	switch m.screen {
	case screenCommands:
		if cmds := m.commands(); it.index < len(cmds) {
			line(m.theme.Description.Render("    " + cmds[it.index].Description))
		}
	case screenResults:
		r := m.results[it.index]
		line(m.theme.Description.Render("    " + r.Description))
		if m.scoped {
			line(m.theme.Category.Render("    Category: " + r.Category))
		}
	}
}

// window returns the range of items that fits the terminal height.
func (m Model) window() (int, int) {
	n := len(m.items)
	if m.height <= 0 {
		return 0, n
	}
	limit := max(m.height-16, 5)
	if n <= limit {
		return 0, n
	}
	start := min(max(m.cursor-limit/2, 0), n-limit)
	return start, start + limit
}

func (m Model) toolLabel() string {
	c, ok := m.reg.Catalog(m.tool)
	if !ok {
		return m.tool
	}
	return c.Icon() + " " + c.Name()
}

func (m Model) toolName() string {
	c, ok := m.reg.Catalog(m.tool)
	if !ok {
		return m.tool
	}
	return c.Name()
}
