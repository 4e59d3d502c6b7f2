// Package registry aggregates catalogs from their sources and answers
// cross-catalog queries.
package registry

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/helpsheet/helpsheet/internal/domain/catalog"
	"github.com/helpsheet/helpsheet/internal/domain/source"
)

// ToolSummary describes one loaded catalog for tool menus.
type ToolSummary struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	CategoryCount int    `json:"categoryCount"`
}

// Set is the immutable result of loading every source.
type Set struct {
	keys     []string
	catalogs map[string]*catalog.Catalog
	errors   []*LoadError
}

// Keys returns catalog keys in load order.
func (s *Set) Keys() []string { return append([]string(nil), s.keys...) }

// Len returns the number of loaded catalogs.
func (s *Set) Len() int { return len(s.keys) }

// Get returns the catalog filed under key.
func (s *Set) Get(key string) (*catalog.Catalog, bool) {
	c, ok := s.catalogs[key]
	return c, ok
}

// Catalogs returns the loaded catalogs in load order.
func (s *Set) Catalogs() []*catalog.Catalog {
	out := make([]*catalog.Catalog, len(s.keys))
	for i, key := range s.keys {
		out[i] = s.catalogs[key]
	}
	return out
}

// Errors returns the sources that were skipped, in registration order.
func (s *Set) Errors() []*LoadError { return append([]*LoadError(nil), s.errors...) }

// Registry loads catalogs from a fixed list of sources on first use and
// serves every later query from that cached set.
type Registry struct {
	logger  *zap.Logger
	sources []source.Source

	once sync.Once
	set  *Set
}

// New creates a registry over sources. Registration order is load order.
func New(logger *zap.Logger, sources ...source.Source) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		logger:  logger.Named("registry"),
		sources: append([]source.Source(nil), sources...),
	}
}

// LoadAll loads every source once and returns the cached set. Sources that
// fail are skipped and recorded; they never abort the load.
func (r *Registry) LoadAll() *Set {
	r.once.Do(func() {
		r.set = r.load()
	})
	return r.set
}

func (r *Registry) load() *Set {
	set := &Set{catalogs: make(map[string]*catalog.Catalog, len(r.sources))}

	for _, src := range r.sources {
		c, err := r.loadOne(src)
		if err == nil {
			if _, dup := set.catalogs[c.Key()]; dup {
				err = fmt.Errorf("%w: %s", ErrDuplicateKey, c.Key())
			}
		}
		if err != nil {
			loadErr := &LoadError{Key: src.Key(), Origin: src.Origin(), Err: err}
			set.errors = append(set.errors, loadErr)
			r.logger.Warn("skipping catalog source",
				zap.String("key", loadErr.Key),
				zap.String("origin", loadErr.Origin),
				zap.Error(err))
			continue
		}
		set.keys = append(set.keys, c.Key())
		set.catalogs[c.Key()] = c
	}

	r.logger.Debug("catalogs loaded",
		zap.Int("loaded", len(set.keys)),
		zap.Int("skipped", len(set.errors)),
		zap.Strings("keys", set.keys))
	return set
}

func (r *Registry) loadOne(src source.Source) (c *catalog.Catalog, err error) {
	defer func() {
		if p := recover(); p != nil {
			c, err = nil, fmt.Errorf("source panicked: %v", p)
		}
	}()

	if src.Key() == "" {
		return nil, ErrEmptyKey
	}
	def, err := src.Definition()
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, ErrNoDefinition
	}
	return catalog.New(src.Key(), *def)
}

// ListTools summarises the loaded catalogs in load order.
func (r *Registry) ListTools() []ToolSummary {
	set := r.LoadAll()

	tools := make([]ToolSummary, 0, set.Len())
	for _, c := range set.Catalogs() {
		tools = append(tools, ToolSummary{
			Key:           c.Key(),
			Name:          c.Name(),
			Description:   c.Description(),
			Icon:          c.Icon(),
			CategoryCount: len(c.Categories()),
		})
	}
	return tools
}

// Catalog looks up a catalog by exact key. A missing key is not an error.
func (r *Registry) Catalog(key string) (*catalog.Catalog, bool) {
	return r.LoadAll().Get(key)
}

// SearchAll runs query against every catalog in load order and tags each
// result with its tool. Results are not deduplicated or ranked.
//
// Like Catalog.Search, an empty query matches everything.
func (r *Registry) SearchAll(query string) []catalog.SearchResult {
	var results []catalog.SearchResult
	for _, c := range r.LoadAll().Catalogs() {
		for _, res := range c.Search(query) {
			res.ToolKey = c.Key()
			res.Tool = c.Name()
			res.ToolIcon = c.Icon()
			results = append(results, res)
		}
	}
	return results
}

// LoadErrors returns the sources skipped during the load.
func (r *Registry) LoadErrors() []*LoadError {
	return r.LoadAll().Errors()
}
