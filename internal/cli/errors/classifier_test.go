package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helpsheet/helpsheet/internal/clipboard"
	"github.com/helpsheet/helpsheet/internal/config"
	"github.com/helpsheet/helpsheet/internal/domain/catalog"
	"github.com/helpsheet/helpsheet/internal/domain/registry"
)

func TestClassify(t *testing.T) {
	_, invalid := catalog.New("bad", catalog.Definition{})

	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"not found", fmt.Errorf("%w: tool %q", ErrNotFound, "svn"), ErrorKindNotFound},
		{"empty query", ErrInvalidQuery, ErrorKindInvalidQuery},
		{"clipboard sentinel", fmt.Errorf("%w: no display", ErrClipboard), ErrorKindClipboard},
		{"clipboard backend", fmt.Errorf("copy: %w", clipboard.ErrUnavailable), ErrorKindClipboard},
		{"config exists", fmt.Errorf("init: %w", config.ErrExists), ErrorKindConfig},
		{"config", fmt.Errorf("%w: bad yaml", ErrConfig), ErrorKindConfig},
		{"no catalogs", ErrNoCatalogs, ErrorKindCatalog},
		{"invalid catalog", invalid, ErrorKindCatalog},
		{"load error", &registry.LoadError{Key: "k", Origin: "o", Err: stderrors.New("boom")}, ErrorKindCatalog},
		{"unknown command", stderrors.New(`unknown command "frob" for "helpsheet"`), ErrorKindNotFound},
		{"other", stderrors.New("something odd"), ErrorKindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.err.Error(), got.Message)
			assert.NotEmpty(t, got.Hint)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.Equal(t, ClassifiedError{}, Classify(nil))
}

func TestClassify_AlreadyClassified(t *testing.T) {
	original := ClassifiedError{Kind: ErrorKindConfig, Message: "m", Hint: "h"}
	wrapped := fmt.Errorf("outer: %w", original)
	assert.Equal(t, original, Classify(wrapped))
}
