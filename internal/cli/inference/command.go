package inference

import (
	"slices"
	"strings"
)

// InferCommand returns the subcommand implied by args, if any. A first
// argument that is neither a flag nor a known command is taken as a tool
// key, so "helpsheet git" runs "helpsheet show git".
func InferCommand(args []string, known []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	first := args[0]
	if first == "" || strings.HasPrefix(first, "-") {
		return "", args
	}
	if slices.Contains(known, first) {
		return "", args
	}

	return "show", args
}
