package registry_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/helpsheet/helpsheet/internal/domain/catalog"
	"github.com/helpsheet/helpsheet/internal/domain/registry"
	"github.com/helpsheet/helpsheet/internal/domain/source"
)

type failingSource struct {
	key string
	err error
}

func (f failingSource) Key() string    { return f.key }
func (f failingSource) Origin() string { return "test:" + f.key }
func (f failingSource) Definition() (*catalog.Definition, error) {
	return nil, f.err
}

type countingSource struct {
	source.Source
	mu    sync.Mutex
	calls int
}

func (c *countingSource) Definition() (*catalog.Definition, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.Source.Definition()
}

func definition(name string, categories int) catalog.Definition {
	def := catalog.Definition{
		Name:        name,
		Description: name + " commands",
		Icon:        "*",
	}
	for i := 0; i < categories; i++ {
		def.Categories = append(def.Categories, catalog.Category{
			Name: fmt.Sprintf("Category %d", i+1),
			Commands: []catalog.CommandEntry{
				{Command: fmt.Sprintf("%s run %d", name, i), Description: "Runs step " + fmt.Sprint(i)},
			},
		})
	}
	return def
}

func foobar() catalog.Definition {
	return catalog.Definition{
		Name:        "Foo",
		Description: "Foo tool",
		Icon:        "F",
		Categories: []catalog.Category{
			{Name: "Basics", Commands: []catalog.CommandEntry{
				{Command: "foo bar", Description: "Does bar"},
				{Command: "foo baz", Description: "Does baz"},
			}},
		},
	}
}

func TestLoadAll_Idempotent(t *testing.T) {
	counter := &countingSource{Source: source.Static("alpha", definition("Alpha", 2))}
	reg := registry.New(nil, counter)

	first := reg.LoadAll()
	second := reg.LoadAll()

	assert.Same(t, first, second)
	assert.Equal(t, 1, counter.calls)
	assert.Equal(t, []string{"alpha"}, first.Keys())
}

func TestLoadAll_ConcurrentFirstUse(t *testing.T) {
	counter := &countingSource{Source: source.Static("alpha", definition("Alpha", 1))}
	reg := registry.New(nil, counter)

	var wg sync.WaitGroup
	sets := make([]*registry.Set, 8)
	for i := range sets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sets[i] = reg.LoadAll()
		}(i)
	}
	wg.Wait()

	for _, s := range sets {
		assert.Same(t, sets[0], s)
	}
	assert.Equal(t, 1, counter.calls)
}

func TestLoadAll_SkipsMalformedSources(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	readErr := errors.New("disk on fire")

	invalid := definition("Broken", 1)
	invalid.Icon = ""

	reg := registry.New(zap.New(core),
		source.Static("alpha", definition("Alpha", 1)),
		failingSource{key: "unreadable", err: readErr},
		source.Static("broken", invalid),
		source.Static("alpha", definition("Alpha Again", 1)),
		source.Static("beta", definition("Beta", 1)),
	)

	set := reg.LoadAll()
	assert.Equal(t, []string{"alpha", "beta"}, set.Keys())
	assert.Equal(t, 2, set.Len())

	loadErrs := reg.LoadErrors()
	require.Len(t, loadErrs, 3)

	assert.Equal(t, "unreadable", loadErrs[0].Key)
	assert.Equal(t, "test:unreadable", loadErrs[0].Origin)
	assert.ErrorIs(t, loadErrs[0], readErr)

	var invalidErr *catalog.InvalidError
	require.ErrorAs(t, loadErrs[1], &invalidErr)
	assert.Equal(t, "broken", invalidErr.Key)

	assert.ErrorIs(t, loadErrs[2], registry.ErrDuplicateKey)

	alpha, ok := reg.Catalog("alpha")
	require.True(t, ok)
	assert.Equal(t, "Alpha", alpha.Name())

	require.Equal(t, 3, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "skipping catalog source", entry.Message)
	assert.Equal(t, "unreadable", entry.ContextMap()["key"])
	assert.Equal(t, "test:unreadable", entry.ContextMap()["origin"])
	assert.Contains(t, entry.ContextMap(), "error")
}

func TestLoadAll_NilDefinitionAndEmptyKey(t *testing.T) {
	reg := registry.New(nil,
		failingSource{key: "nothing"},
		failingSource{key: ""},
	)

	assert.Zero(t, reg.LoadAll().Len())

	loadErrs := reg.LoadErrors()
	require.Len(t, loadErrs, 2)
	assert.ErrorIs(t, loadErrs[0], registry.ErrNoDefinition)
	assert.ErrorIs(t, loadErrs[1], registry.ErrEmptyKey)
}

func TestListTools_CategoryCounts(t *testing.T) {
	reg := registry.New(nil,
		source.Static("three", definition("Three", 3)),
		source.Static("five", definition("Five", 5)),
	)

	tools := reg.ListTools()
	require.Len(t, tools, 2)

	assert.Equal(t, registry.ToolSummary{
		Key:           "three",
		Name:          "Three",
		Description:   "Three commands",
		Icon:          "*",
		CategoryCount: 3,
	}, tools[0])
	assert.Equal(t, "five", tools[1].Key)
	assert.Equal(t, 5, tools[1].CategoryCount)
}

func TestListTools_NoSources(t *testing.T) {
	reg := registry.New(nil)
	assert.Empty(t, reg.ListTools())
	assert.Empty(t, reg.SearchAll("anything"))
	assert.Empty(t, reg.LoadErrors())
}

func TestCatalog_MissingKey(t *testing.T) {
	reg := registry.New(nil, source.Static("foo", foobar()))

	c, ok := reg.Catalog("missingkey")
	assert.False(t, ok)
	assert.Nil(t, c)

	c, ok = reg.Catalog("foo")
	assert.True(t, ok)
	assert.Equal(t, "Foo", c.Name())
}

func TestSearchAll_AnnotatedConcatenation(t *testing.T) {
	reg := registry.New(nil,
		source.Static("foo", foobar()),
		source.Static("alpha", definition("Alpha", 2)),
		source.Static("beta", definition("Beta", 3)),
	)

	for _, query := range []string{"run", "BAR", "step 1", "", "nothing matches"} {
		t.Run(query, func(t *testing.T) {
			var want []catalog.SearchResult
			for _, c := range reg.LoadAll().Catalogs() {
				for _, r := range c.Search(query) {
					r.ToolKey = c.Key()
					r.Tool = c.Name()
					r.ToolIcon = c.Icon()
					want = append(want, r)
				}
			}

			got := reg.SearchAll(query)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("SearchAll(%q) mismatch (-want +got):\n%s", query, diff)
			}
		})
	}
}

func TestSearchAll_Bar(t *testing.T) {
	reg := registry.New(nil, source.Static("foo", foobar()))

	got := reg.SearchAll("bar")
	want := []catalog.SearchResult{{
		CommandEntry: catalog.CommandEntry{Command: "foo bar", Description: "Does bar"},
		Category:     "Basics",
		ToolKey:      "foo",
		Tool:         "Foo",
		ToolIcon:     "F",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_Accessors(t *testing.T) {
	reg := registry.New(zap.NewNop(),
		source.Static("foo", foobar()),
		source.Static("alpha", definition("Alpha", 1)),
	)
	set := reg.LoadAll()

	keys := set.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"foo", "alpha"}, set.Keys())

	catalogs := set.Catalogs()
	require.Len(t, catalogs, 2)
	assert.Equal(t, "alpha", catalogs[1].Key())

	_, ok := set.Get("foo")
	assert.True(t, ok)
	assert.Empty(t, set.Errors())
}
