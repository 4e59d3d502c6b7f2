package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/helpsheet/helpsheet/internal/cli/errors"
	"github.com/helpsheet/helpsheet/internal/domain/catalog"
	"github.com/helpsheet/helpsheet/internal/domain/registry"
	"github.com/helpsheet/helpsheet/internal/ui/styles"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Formatter renders command results to a writer.
type Formatter struct {
	w      io.Writer
	format OutputFormat
	color  bool
	theme  *styles.Theme
}

func NewFormatter(w io.Writer, format OutputFormat, useColor bool) *Formatter {
	return &Formatter{
		w:      w,
		format: format,
		color:  useColor,
		theme:  styles.New(styles.NewRenderer(w, useColor)),
	}
}

// JSON reports whether the formatter emits JSON.
func (f *Formatter) JSON() bool {
	return f.format == FormatJSON
}

func (f *Formatter) paint(attr color.Attribute, format string, a ...any) string {
	if !f.color {
		return fmt.Sprintf(format, a...)
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprintf(format, a...)
}

func (f *Formatter) println(s string) {
	fmt.Fprintln(f.w, s)
}

func (f *Formatter) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.w, string(data))
	return err
}

func (f *Formatter) FormatError(err errors.ClassifiedError) string {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(err, "", "  ")
		return string(data)
	}

	var msg string
	if f.color {
		msg = f.paint(color.FgRed, "Error [%s]: %s", err.Kind, err.Message)
		if err.Hint != "" {
			msg += "\n" + f.paint(color.FgYellow, "Hint: %s", err.Hint)
		}
	} else {
		msg = fmt.Sprintf("Error [%s]: %s", err.Kind, err.Message)
		if err.Hint != "" {
			msg += "\nHint: " + err.Hint
		}
	}
	return msg
}

// ToolDetails pairs a tool summary with its category names.
type ToolDetails struct {
	registry.ToolSummary
	Categories []string `json:"categories"`
}

// FormatTools writes the tools table.
func (f *Formatter) FormatTools(tools []registry.ToolSummary) error {
	if f.format == FormatJSON {
		return f.writeJSON(tools)
	}

	f.println(f.paint(color.FgBlue, "📚 %d Development Knowledge Bases Available:", len(tools)))
	table := tablewriter.NewTable(f.w,
		tablewriter.WithHeader([]string{"Key", "Tool", "Description", "Categories"}),
	)
	for _, t := range tools {
		table.Append([]string{t.Key, t.Icon + " " + t.Name, t.Description, strconv.Itoa(t.CategoryCount)})
	}
	return table.Render()
}

// FormatToolDetails writes the expanded tool list with category names.
func (f *Formatter) FormatToolDetails(tools []ToolDetails) error {
	if f.format == FormatJSON {
		return f.writeJSON(tools)
	}

	f.println(f.paint(color.FgBlue, "📚 %d Development Knowledge Bases Available:", len(tools)))
	f.println("")
	for _, t := range tools {
		f.println(fmt.Sprintf("%s %s - %s", t.Icon, t.Name, t.Description))
		f.println(f.paint(color.FgHiBlack, "   %d command categories (key: %s)", t.CategoryCount, t.Key))
		for _, name := range t.Categories {
			f.println("     • " + name)
		}
		f.println("")
	}
	return nil
}

type categoryView struct {
	Name     string `json:"name"`
	Commands int    `json:"commands"`
}

type catalogView struct {
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Categories  []categoryView `json:"categories"`
}

// FormatCategories writes the numbered categories of one catalog.
func (f *Formatter) FormatCategories(c *catalog.Catalog) error {
	view := catalogView{
		Key:         c.Key(),
		Name:        c.Name(),
		Description: c.Description(),
		Icon:        c.Icon(),
	}
	for _, name := range c.Categories() {
		view.Categories = append(view.Categories, categoryView{Name: name, Commands: len(c.Commands(name))})
	}
	if f.format == FormatJSON {
		return f.writeJSON(view)
	}

	f.println(f.paint(color.FgCyan, "%s %s - %s", view.Icon, view.Name, view.Description))
	table := tablewriter.NewTable(f.w,
		tablewriter.WithHeader([]string{"#", "Category", "Commands"}),
	)
	for i, cat := range view.Categories {
		table.Append([]string{strconv.Itoa(i + 1), cat.Name, strconv.Itoa(cat.Commands)})
	}
	return table.Render()
}

// FormatCommands writes the numbered commands of one category.
func (f *Formatter) FormatCommands(c *catalog.Catalog, category string, commands []catalog.CommandEntry) error {
	if f.format == FormatJSON {
		if commands == nil {
			commands = []catalog.CommandEntry{}
		}
		return f.writeJSON(commands)
	}

	f.println(f.paint(color.FgCyan, "%s %s - %s", c.Icon(), c.Name(), category))
	f.println(f.paint(color.FgHiBlack, "%s", strings.Repeat("=", 50)))
	for i, cmd := range commands {
		f.println(fmt.Sprintf("%3d. %s", i+1, f.paint(color.FgWhite, "%s", cmd.Command)))
		f.println(f.paint(color.FgHiBlack, "     %s", cmd.Description))
	}
	return nil
}

// FormatResults writes search results. With tool set the results come
// from one catalog and each shows its category; otherwise they are
// grouped by tool in the order they arrive.
func (f *Formatter) FormatResults(query string, results []catalog.SearchResult, tool string) error {
	if f.format == FormatJSON {
		if results == nil {
			results = []catalog.SearchResult{}
		}
		return f.writeJSON(results)
	}

	if len(results) == 0 {
		f.println(f.paint(color.FgYellow, "🔍 No commands found matching your search."))
		return nil
	}

	if tool != "" {
		f.println(f.paint(color.FgGreen, "🔍 Found %d commands in %s matching %q:", len(results), tool, query))
		f.println("")
		for _, r := range results {
			f.println("  " + r.Command)
			f.println(f.paint(color.FgHiBlack, "    %s", r.Description))
			f.println(f.paint(color.FgCyan, "    Category: %s", r.Category))
			f.println("")
		}
		return nil
	}

	f.println(f.paint(color.FgGreen, "🔍 Found %d commands matching %q:", len(results), query))
	for _, group := range GroupByTool(results) {
		f.println("")
		f.println(f.paint(color.FgCyan, "%s %s:", group.Icon, group.Tool))
		for _, r := range group.Results {
			f.println("  " + r.Command)
			f.println(f.paint(color.FgHiBlack, "    %s", r.Description))
		}
	}
	return nil
}

// ResultGroup is a run of search results from one tool.
type ResultGroup struct {
	Key     string
	Tool    string
	Icon    string
	Results []catalog.SearchResult
}

// GroupByTool groups results by tool key, keeping first-seen tool order
// and result order within each tool.
func GroupByTool(results []catalog.SearchResult) []ResultGroup {
	var groups []ResultGroup
	index := make(map[string]int)
	for _, r := range results {
		i, ok := index[r.ToolKey]
		if !ok {
			i = len(groups)
			index[r.ToolKey] = i
			groups = append(groups, ResultGroup{Key: r.ToolKey, Tool: r.Tool, Icon: r.ToolIcon})
		}
		groups[i].Results = append(groups[i].Results, r)
	}
	return groups
}

type copiedView struct {
	Copied      bool   `json:"copied"`
	Command     string `json:"cmd"`
	Description string `json:"desc"`
	Error       string `json:"error,omitempty"`
}

// FormatCopied writes the clipboard confirmation box.
func (f *Formatter) FormatCopied(entry catalog.CommandEntry) error {
	if f.format == FormatJSON {
		return f.writeJSON(copiedView{Copied: true, Command: entry.Command, Description: entry.Description})
	}
	f.println(f.theme.CopiedBox(entry.Command, entry.Description))
	return nil
}

// FormatCopyFailed writes the command so it can be copied by hand.
func (f *Formatter) FormatCopyFailed(entry catalog.CommandEntry, err error) error {
	if f.format == FormatJSON {
		return f.writeJSON(copiedView{Command: entry.Command, Description: entry.Description, Error: err.Error()})
	}
	f.println(f.paint(color.FgRed, "❌ Failed to copy command to clipboard: %v", err))
	f.println(f.paint(color.FgYellow, "Command: %s", entry.Command))
	f.println(f.paint(color.FgCyan, "Description: %s", entry.Description))
	return nil
}

// FormatLoadErrors writes the catalog sources that were skipped.
func (f *Formatter) FormatLoadErrors(loadErrs []*registry.LoadError) {
	for _, e := range loadErrs {
		f.println(f.paint(color.FgYellow, "⚠️  Skipped catalog %s (%s): %v", e.Key, e.Origin, e.Err))
	}
}

// FormatValue writes v as JSON, or text as is.
func (f *Formatter) FormatValue(v any, text string) error {
	if f.format == FormatJSON {
		return f.writeJSON(v)
	}
	_, err := io.WriteString(f.w, text)
	return err
}
