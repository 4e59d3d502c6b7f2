package source

import (
	"errors"
	"fmt"
	"time"

	"github.com/dop251/goja"

	"github.com/helpsheet/helpsheet/internal/domain/catalog"
)

// jsTimeout bounds how long a catalog module may run before it is interrupted.
var jsTimeout = 2 * time.Second

// decodeJS evaluates a CommonJS-style cheatsheet module:
//
//	const topics = { "Category": [{ cmd: "...", desc: "..." }] };
//	module.exports = { name, description, icon, topics };
//
// `categories` is accepted in place of `topics`, either as the same
// name -> commands object or as a list of {name, commands}. Object key
// order is the category order.
func decodeJS(data []byte) (*catalog.Definition, error) {
	vm := goja.New()

	module := vm.NewObject()
	exports := vm.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, err
	}
	if err := vm.Set("module", module); err != nil {
		return nil, err
	}
	if err := vm.Set("exports", exports); err != nil {
		return nil, err
	}

	timer := time.AfterFunc(jsTimeout, func() {
		vm.Interrupt("catalog module timed out")
	})
	defer timer.Stop()

	if _, err := vm.RunString(string(data)); err != nil {
		return nil, fmt.Errorf("script error: %w", err)
	}

	exported, ok := asObject(module.Get("exports"))
	if !ok {
		return nil, errors.New("module.exports is not an object")
	}

	def := &catalog.Definition{
		Name:        stringField(exported, "name"),
		Description: stringField(exported, "description"),
		Icon:        stringField(exported, "icon"),
	}

	groups := exported.Get("topics")
	if isMissing(groups) {
		groups = exported.Get("categories")
	}
	if isMissing(groups) {
		return def, nil
	}

	obj, ok := asObject(groups)
	if !ok {
		return nil, errors.New("topics must be an object")
	}

	var err error
	if obj.ClassName() == "Array" {
		def.Categories, err = categoryList(obj.Export())
	} else {
		def.Categories, err = categoryMap(obj)
	}
	if err != nil {
		return nil, err
	}
	return def, nil
}

func categoryMap(obj *goja.Object) ([]catalog.Category, error) {
	var categories []catalog.Category
	for _, name := range obj.Keys() {
		commands, err := commandList(name, obj.Get(name).Export())
		if err != nil {
			return nil, err
		}
		categories = append(categories, catalog.Category{Name: name, Commands: commands})
	}
	return categories, nil
}

func categoryList(v interface{}) ([]catalog.Category, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, errors.New("categories must be an array")
	}

	categories := make([]catalog.Category, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("categories[%d] must be an object", i)
		}
		name, _ := fields["name"].(string)
		commands, err := commandList(name, fields["commands"])
		if err != nil {
			return nil, err
		}
		categories = append(categories, catalog.Category{Name: name, Commands: commands})
	}
	return categories, nil
}

func commandList(category string, v interface{}) ([]catalog.CommandEntry, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("commands of %q must be an array", category)
	}

	commands := make([]catalog.CommandEntry, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%q[%d] must be an object", category, i)
		}
		cmd, _ := fields["cmd"].(string)
		desc, _ := fields["desc"].(string)
		commands = append(commands, catalog.CommandEntry{Command: cmd, Description: desc})
	}
	return commands, nil
}

func stringField(obj *goja.Object, name string) string {
	v := obj.Get(name)
	if isMissing(v) {
		return ""
	}
	s, _ := v.Export().(string)
	return s
}

func asObject(v goja.Value) (*goja.Object, bool) {
	if isMissing(v) {
		return nil, false
	}
	obj, ok := v.(*goja.Object)
	return obj, ok
}

func isMissing(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v) || goja.IsNull(v)
}
