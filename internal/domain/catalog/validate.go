package catalog

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult holds the result of validating a catalog definition.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors,omitempty"`
	Warnings []ValidationError `json:"warnings,omitempty"`
}

// InvalidError is returned by New when a definition fails validation.
type InvalidError struct {
	Key    string
	Result *ValidationResult
}

func (e *InvalidError) Error() string {
	msgs := make([]string, len(e.Result.Errors))
	for i, ve := range e.Result.Errors {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("invalid catalog %q: %s", e.Key, strings.Join(msgs, "; "))
}

// Description length above which a warning is emitted; longer text wraps
// badly in menus.
const maxDescriptionLength = 120

// Validate checks a Definition against the catalog shape rules.
func Validate(def *Definition) *ValidationResult {
	result := &ValidationResult{Valid: true}

	validateRequired(def, result)
	if len(result.Errors) > 0 {
		result.Valid = false
		return result
	}

	validateCategories(def.Categories, result)
	addWarnings(def, result)

	result.Valid = len(result.Errors) == 0
	return result
}

func validateRequired(def *Definition, result *ValidationResult) {
	if strings.TrimSpace(def.Name) == "" {
		result.Errors = append(result.Errors, ValidationError{"name", "required field is missing"})
	}
	if strings.TrimSpace(def.Description) == "" {
		result.Errors = append(result.Errors, ValidationError{"description", "required field is missing"})
	}
	if strings.TrimSpace(def.Icon) == "" {
		result.Errors = append(result.Errors, ValidationError{"icon", "required field is missing"})
	}
	if len(def.Categories) == 0 {
		result.Errors = append(result.Errors, ValidationError{"categories", "at least one category is required"})
	}
}

func validateCategories(categories []Category, result *ValidationResult) {
	seen := make(map[string]bool)

	for i, cat := range categories {
		prefix := fmt.Sprintf("categories[%d]", i)

		if strings.TrimSpace(cat.Name) == "" {
			result.Errors = append(result.Errors, ValidationError{prefix + ".name", "required"})
		} else {
			if seen[cat.Name] {
				result.Errors = append(result.Errors, ValidationError{prefix + ".name", fmt.Sprintf("duplicate category name: %s", cat.Name)})
			}
			seen[cat.Name] = true
		}

		if len(cat.Commands) == 0 {
			result.Errors = append(result.Errors, ValidationError{prefix + ".commands", "at least one command is required"})
		}
		for j, cmd := range cat.Commands {
			field := fmt.Sprintf("%s.commands[%d]", prefix, j)
			if strings.TrimSpace(cmd.Command) == "" {
				result.Errors = append(result.Errors, ValidationError{field + ".cmd", "required"})
			}
			if strings.TrimSpace(cmd.Description) == "" {
				result.Errors = append(result.Errors, ValidationError{field + ".desc", "required"})
			}
		}
	}
}

func addWarnings(def *Definition, result *ValidationResult) {
	for i, cat := range def.Categories {
		seen := make(map[string]bool, len(cat.Commands))
		for j, cmd := range cat.Commands {
			field := fmt.Sprintf("categories[%d].commands[%d]", i, j)
			if seen[cmd.Command] {
				result.Warnings = append(result.Warnings, ValidationError{field + ".cmd", fmt.Sprintf("repeated within category: %s", cmd.Command)})
			}
			seen[cmd.Command] = true
			if len(cmd.Description) > maxDescriptionLength {
				result.Warnings = append(result.Warnings, ValidationError{field + ".desc", fmt.Sprintf("longer than %d characters", maxDescriptionLength)})
			}
		}
	}
}
