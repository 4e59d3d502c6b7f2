// Package catalogs holds the cheatsheets shipped with helpsheet.
package catalogs

import (
	"embed"

	"github.com/helpsheet/helpsheet/internal/domain/source"
)

//go:embed data/*.yaml
var data embed.FS

// manifest is the load order of the built-in catalogs.
var manifest = []string{
	"data/git.yaml",
	"data/docker.yaml",
	"data/npm.yaml",
}

// Builtin returns a source for every shipped catalog, in manifest order.
func Builtin() []source.Source {
	sources := make([]source.Source, len(manifest))
	for i, name := range manifest {
		sources[i] = source.FS(data, name)
	}
	return sources
}
