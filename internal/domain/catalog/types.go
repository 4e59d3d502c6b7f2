// Package catalog provides the data model, validation and search for a
// single tool's command cheatsheet.
package catalog

// CommandEntry is one literal command line and what it does.
type CommandEntry struct {
	Command     string `json:"cmd" yaml:"cmd" toml:"cmd"`
	Description string `json:"desc" yaml:"desc" toml:"desc"`
}

// Category is a named, ordered group of commands within a catalog.
type Category struct {
	Name     string         `json:"name" yaml:"name" toml:"name"`
	Commands []CommandEntry `json:"commands" yaml:"commands" toml:"commands"`
}

// Definition is the decodable shape of a catalog as produced by a source.
// It is mutable; a Catalog is built from it with New.
type Definition struct {
	Name        string     `json:"name" yaml:"name" toml:"name"`
	Description string     `json:"description" yaml:"description" toml:"description"`
	Icon        string     `json:"icon" yaml:"icon" toml:"icon"`
	Categories  []Category `json:"categories" yaml:"categories" toml:"categories"`
}

// SearchResult is a copy of a matched command with its origin.
// Tool fields are only set for registry-wide searches.
type SearchResult struct {
	CommandEntry
	Category string `json:"category"`
	ToolKey  string `json:"toolKey,omitempty"`
	Tool     string `json:"tool,omitempty"`
	ToolIcon string `json:"toolIcon,omitempty"`
}
