package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/helpsheet/helpsheet/internal/domain/catalog"
)

// ErrUnsupportedFormat is returned for file extensions without a decoder.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

type decodeFunc func(data []byte) (*catalog.Definition, error)

var decoders = map[string]decodeFunc{
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".toml": decodeTOML,
	".json": decodeJSON,
	".js":   decodeJS,
}

// Extensions lists the file extensions that can be decoded.
func Extensions() []string {
	exts := make([]string, 0, len(decoders))
	for ext := range decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Supported reports whether name has a decodable extension.
func Supported(name string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Decode parses data according to the extension of name.
func Decode(name string, data []byte) (*catalog.Definition, error) {
	ext := strings.ToLower(filepath.Ext(name))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return decode(data)
}

func decodeYAML(data []byte) (*catalog.Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def catalog.Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &def, nil
}

func decodeTOML(data []byte) (*catalog.Definition, error) {
	var def catalog.Definition
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&def); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return &def, nil
}

func decodeJSON(data []byte) (*catalog.Definition, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var def catalog.Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return &def, nil
}
