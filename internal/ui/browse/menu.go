package browse

import (
	"fmt"

	"github.com/helpsheet/helpsheet/internal/domain/catalog"
)

// screen is one step of the browsing flow.
type screen int

const (
	screenHome screen = iota
	screenDetails
	screenTools
	screenCategories
	screenCommands
	screenSearch
	screenResults
	screenCopied
)

// action is what a menu item does. Navigation actions never collide with
// catalog data: a category named "Back" is an actSelect item like any
// other.
type action int

const (
	actSelect action = iota
	actExpand
	actStart
	actSearch
	actSearchAgain
	actBrowseCategories
	actBack
	actHome
	actSameCategory
	actOtherCategory
	actOtherTool
	actExit
)

type item struct {
	label string
	act   action
	// value is the tool key or category name for actSelect items.
	value string
	// index is the command or result position for actSelect items.
	index int
}

func (i item) nav() bool { return i.act != actSelect }

var exitItem = item{label: "❌ Exit", act: actExit}

func (m Model) homeItems() []item {
	return []item{
		{label: "🔽 Expand knowledge bases details", act: actExpand},
		{label: "🚀 Start exploring tools", act: actStart},
		exitItem,
	}
}

func (m Model) detailsItems() []item {
	return []item{
		{label: "Continue to tool selection", act: actStart},
	}
}

func (m Model) toolItems() []item {
	var items []item
	for _, t := range m.reg.ListTools() {
		items = append(items, item{
			label: fmt.Sprintf("%s %s - %s (%d categories)", t.Icon, t.Name, t.Description, t.CategoryCount),
			value: t.Key,
		})
	}
	return append(items,
		item{label: "🔍 Search across all tools", act: actSearch},
		exitItem,
	)
}

func (m Model) categoryItems() []item {
	var items []item
	if c, ok := m.reg.Catalog(m.tool); ok {
		for _, name := range c.Categories() {
			items = append(items, item{label: name, value: name})
		}
	}
	return append(items,
		item{label: "🔍 Search within this tool", act: actSearch},
		item{label: "⬅️  Back to dev tools", act: actBack},
		exitItem,
	)
}

func (m Model) commandItems() []item {
	var items []item
	for i, cmd := range m.commands() {
		items = append(items, item{label: cmd.Command, index: i})
	}
	return append(items,
		item{label: "⬅️  Back to categories", act: actBack},
		item{label: "🏠 Back to dev tools", act: actHome},
		exitItem,
	)
}

func (m Model) resultItems() []item {
	var items []item
	for i, r := range m.results {
		items = append(items, item{label: r.Command, index: i})
	}
	if m.scoped {
		return append(items,
			item{label: "🔄 Search again in this tool", act: actSearchAgain},
			item{label: "📁 Browse categories", act: actBrowseCategories},
			item{label: "🏠 Back to main menu", act: actHome},
			exitItem,
		)
	}
	return append(items,
		item{label: "🔄 Search again", act: actSearchAgain},
		item{label: "🏠 Back to main menu", act: actHome},
		exitItem,
	)
}

func (m Model) copiedItems() []item {
	if m.copiedFrom == screenResults {
		return []item{
			{label: "🔄 Back to search results", act: actSameCategory},
			{label: "🔍 Search again", act: actSearchAgain},
			{label: "🔧 Switch to another dev tool", act: actOtherTool},
			exitItem,
		}
	}
	return []item{
		{label: "🔄 View another command from this category", act: actSameCategory},
		{label: "📁 Browse another category", act: actOtherCategory},
		{label: "🔧 Switch to another dev tool", act: actOtherTool},
		exitItem,
	}
}

func (m Model) commands() []catalog.CommandEntry {
	c, ok := m.reg.Catalog(m.tool)
	if !ok {
		return nil
	}
	return c.Commands(m.category)
}
