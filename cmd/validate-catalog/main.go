// Command validate-catalog validates cheatsheet catalog files.
//
// Usage:
//
//	validate-catalog [options] [path...]
//
// Paths may be catalog files (.yaml, .yml, .toml, .json, .js) or
// directories of them. If no paths are provided, the built-in catalogs
// are validated.
//
// Options:
//
//	-strict     Treat warnings as errors
//	-json       Output results as JSON
//	-quiet      Only output errors
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/helpsheet/helpsheet/internal/catalogs"
	"github.com/helpsheet/helpsheet/internal/domain/catalog"
	"github.com/helpsheet/helpsheet/internal/domain/source"
)

type options struct {
	strict bool
	asJSON bool
	quiet  bool
}

func main() {
	var opts options
	fs := flag.NewFlagSet("validate-catalog", flag.ExitOnError)
	fs.BoolVar(&opts.strict, "strict", false, "Treat warnings as errors")
	fs.BoolVar(&opts.asJSON, "json", false, "Output results as JSON")
	fs.BoolVar(&opts.quiet, "quiet", false, "Only output errors")

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(fs.Args(), opts, os.Stdout, os.Stderr))
}

func run(paths []string, opts options, stdout, stderr io.Writer) int {
	exitCode := 0
	allResults := make(map[string]*catalog.ValidationResult)

	var sources []source.Source
	if len(paths) == 0 {
		sources = catalogs.Builtin()
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
			exitCode = 1
			continue
		}

		if !info.IsDir() {
			sources = append(sources, source.File(path))
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error validating directory %s: %v\n", path, err)
			exitCode = 1
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !source.Supported(e.Name()) {
				continue
			}
			sources = append(sources, source.File(filepath.Join(path, e.Name())))
		}
	}

	for _, src := range sources {
		allResults[src.Origin()] = validate(src)
	}

	if opts.asJSON {
		outputJSON(stdout, allResults)
	} else {
		outputText(stdout, allResults, opts)
	}

	for _, result := range allResults {
		if !result.Valid {
			exitCode = 1
		}
		if opts.strict && len(result.Warnings) > 0 {
			exitCode = 1
		}
	}

	return exitCode
}

// validate decodes src and checks its shape. Decode failures are reported
// as a single error on the "file" field.
func validate(src source.Source) *catalog.ValidationResult {
	def, err := src.Definition()
	if err != nil {
		return &catalog.ValidationResult{
			Valid:  false,
			Errors: []catalog.ValidationError{{Field: "file", Message: err.Error()}},
		}
	}
	return catalog.Validate(def)
}

func outputJSON(w io.Writer, results map[string]*catalog.ValidationResult) {
	output := struct {
		Results map[string]*catalog.ValidationResult `json:"results"`
		Summary struct {
			Total   int `json:"total"`
			Valid   int `json:"valid"`
			Invalid int `json:"invalid"`
		} `json:"summary"`
	}{
		Results: results,
	}

	for _, r := range results {
		output.Summary.Total++
		if r.Valid {
			output.Summary.Valid++
		} else {
			output.Summary.Invalid++
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(output)
}

func outputText(w io.Writer, results map[string]*catalog.ValidationResult, opts options) {
	validCount := 0
	invalidCount := 0

	paths := make([]string, 0, len(results))
	for path := range results {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		result := results[path]
		if result.Valid && len(result.Warnings) == 0 && opts.quiet {
			validCount++
			continue
		}

		if result.Valid {
			validCount++
			if !opts.quiet {
				fmt.Fprintf(w, "✓ %s\n", path)
			}
		} else {
			invalidCount++
			fmt.Fprintf(w, "✗ %s\n", path)
		}

		for _, err := range result.Errors {
			fmt.Fprintf(w, "  ERROR: %s: %s\n", err.Field, err.Message)
		}

		if !opts.quiet || opts.strict {
			for _, warn := range result.Warnings {
				fmt.Fprintf(w, "  WARN:  %s: %s\n", warn.Field, warn.Message)
			}
		}
	}

	if !opts.quiet {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Summary: %d valid, %d invalid\n", validCount, invalidCount)
	}
}
