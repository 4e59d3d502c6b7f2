// Package source defines where catalog definitions come from. Sources are
// registered explicitly; nothing here scans directories.
package source

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/helpsheet/helpsheet/internal/domain/catalog"
)

// Source provides one catalog definition.
type Source interface {
	// Key is the lowercase identifier the registry files the catalog under.
	Key() string
	// Origin describes the source in diagnostics.
	Origin() string
	// Definition loads and decodes the catalog. It may be called more than once.
	Definition() (*catalog.Definition, error)
}

// KeyFromName derives a catalog key from a file name: base name without
// extension, lowercased.
func KeyFromName(name string) string {
	base := path.Base(filepath.ToSlash(name))
	return strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
}

type staticSource struct {
	key string
	def catalog.Definition
}

// Static wraps an in-process definition.
func Static(key string, def catalog.Definition) Source {
	return &staticSource{key: strings.ToLower(key), def: def}
}

func (s *staticSource) Key() string    { return s.key }
func (s *staticSource) Origin() string { return "static:" + s.key }

func (s *staticSource) Definition() (*catalog.Definition, error) {
	def := s.def
	return &def, nil
}

type fileSource struct {
	key    string
	name   string
	origin string
	read   func() ([]byte, error)
}

// FS reads the named file from fsys. It is used with embed.FS for the
// built-in catalogs.
func FS(fsys fs.FS, name string) Source {
	return &fileSource{
		key:    KeyFromName(name),
		name:   name,
		origin: "embedded:" + name,
		read:   func() ([]byte, error) { return fs.ReadFile(fsys, name) },
	}
}

// File reads a catalog file from disk.
func File(filePath string) Source {
	return &fileSource{
		key:    KeyFromName(filePath),
		name:   filePath,
		origin: filePath,
		read:   func() ([]byte, error) { return os.ReadFile(filePath) },
	}
}

func (s *fileSource) Key() string    { return s.key }
func (s *fileSource) Origin() string { return s.origin }

func (s *fileSource) Definition() (*catalog.Definition, error) {
	data, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.origin, err)
	}
	def, err := Decode(s.name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.origin, err)
	}
	return def, nil
}
