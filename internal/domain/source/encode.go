package source

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/helpsheet/helpsheet/internal/domain/catalog"
)

// Encode renders def in one of the writable formats: yaml, toml or json.
// The output decodes back through Decode with the matching extension.
func Encode(format string, def catalog.Definition) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(def)
	case "toml":
		return toml.Marshal(def)
	case "json":
		data, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
