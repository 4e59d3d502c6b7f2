// Package styles holds the lipgloss styles shared by the interactive
// browser and the CLI output. Colours adapt to light and dark terminals.
package styles

import "github.com/charmbracelet/lipgloss"

// Cyan - banner, headings, tool names
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Amber - tagline, commands in the copied box
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Emerald - success
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Blue - counts and farewells
var Blue = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// Purple - selection cursor
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// TextPrimary - main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextMuted - descriptions, hints
var TextMuted = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}
