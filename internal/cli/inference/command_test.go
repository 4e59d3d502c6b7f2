package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCommand(t *testing.T) {
	known := []string{"list", "show", "find", "help"}

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"no args", nil, ""},
		{"known command", []string{"list"}, ""},
		{"help", []string{"help", "show"}, ""},
		{"flag first", []string{"--json", "git"}, ""},
		{"tool key", []string{"git"}, "show"},
		{"tool and category", []string{"docker", "Networking"}, "show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, rest := InferCommand(tt.args, known)
			assert.Equal(t, tt.expected, cmd)
			assert.Equal(t, tt.args, rest)
		})
	}
}
