package errors

import (
	stderrors "errors"
	"strings"

	"github.com/helpsheet/helpsheet/internal/clipboard"
	"github.com/helpsheet/helpsheet/internal/config"
	"github.com/helpsheet/helpsheet/internal/domain/catalog"
	"github.com/helpsheet/helpsheet/internal/domain/registry"
	"github.com/helpsheet/helpsheet/internal/domain/source"
)

type ErrorKind string

const (
	ErrorKindNotFound     ErrorKind = "not-found"
	ErrorKindInvalidQuery ErrorKind = "invalid-query"
	ErrorKindClipboard    ErrorKind = "clipboard"
	ErrorKindConfig       ErrorKind = "config"
	ErrorKindCatalog      ErrorKind = "catalog"
	ErrorKindOther        ErrorKind = "other"
)

// Sentinels raised by the CLI commands.
var (
	ErrNotFound     = stderrors.New("not found")
	ErrInvalidQuery = stderrors.New("Please enter a search term")
	ErrClipboard    = stderrors.New("failed to copy command to clipboard")
	ErrNoCatalogs   = stderrors.New("No catalogs found")
	ErrConfig       = stderrors.New("config error")
)

type ClassifiedError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Hint    string    `json:"hint,omitempty"` // User-friendly suggestion
	Raw     error     `json:"-"`
}

func (e ClassifiedError) Error() string {
	return e.Message
}

func (e ClassifiedError) Unwrap() error {
	return e.Raw
}

func Classify(err error) ClassifiedError {
	if err == nil {
		return ClassifiedError{}
	}

	var classified ClassifiedError
	if stderrors.As(err, &classified) {
		return classified
	}

	var invalid *catalog.InvalidError
	var loadErr *registry.LoadError

	switch {
	case stderrors.Is(err, ErrInvalidQuery):
		return ClassifiedError{
			Kind:    ErrorKindInvalidQuery,
			Message: err.Error(),
			Hint:    "Pass at least one non-blank word, e.g. 'helpsheet find commit'",
			Raw:     err,
		}
	case stderrors.Is(err, ErrNoCatalogs):
		return ClassifiedError{
			Kind:    ErrorKindCatalog,
			Message: err.Error(),
			Hint:    "Check the catalogs listed in your config with 'helpsheet config show'",
			Raw:     err,
		}
	case stderrors.Is(err, ErrNotFound):
		return ClassifiedError{
			Kind:    ErrorKindNotFound,
			Message: err.Error(),
			Hint:    "Run 'helpsheet list' to see tools, or 'helpsheet show <tool>' for its categories",
			Raw:     err,
		}
	case stderrors.Is(err, ErrClipboard), stderrors.Is(err, clipboard.ErrUnavailable):
		return ClassifiedError{
			Kind:    ErrorKindClipboard,
			Message: err.Error(),
			Hint:    "Install xclip, xsel or wl-clipboard, or copy the command shown above by hand",
			Raw:     err,
		}
	case stderrors.Is(err, ErrConfig), stderrors.Is(err, config.ErrExists):
		return ClassifiedError{
			Kind:    ErrorKindConfig,
			Message: err.Error(),
			Hint:    "Run 'helpsheet config path' to locate the config file",
			Raw:     err,
		}
	case stderrors.As(err, &invalid), stderrors.As(err, &loadErr), stderrors.Is(err, source.ErrUnsupportedFormat):
		return ClassifiedError{
			Kind:    ErrorKindCatalog,
			Message: err.Error(),
			Hint:    "Check the catalog file with 'validate-catalog <file>'",
			Raw:     err,
		}
	case strings.Contains(strings.ToLower(err.Error()), "unknown command"):
		return ClassifiedError{
			Kind:    ErrorKindNotFound,
			Message: err.Error(),
			Hint:    "Run 'helpsheet --help' for available commands",
			Raw:     err,
		}
	default:
		return ClassifiedError{
			Kind:    ErrorKindOther,
			Message: err.Error(),
			Hint:    "An unexpected error occurred.",
			Raw:     err,
		}
	}
}
