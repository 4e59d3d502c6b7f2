package styles

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const banner = ` _   _      _           _               _
| | | | ___| |_ __  ___| |__   ___  ___| |_
| |_| |/ _ \ | '_ \/ __| '_ \ / _ \/ _ \ __|
|  _  |  __/ | |_) \__ \ | | |  __/  __/ |_
|_| |_|\___|_| .__/|___/_| |_|\___|\___|\__|
             |_|`

// Tagline is shown under the banner.
const Tagline = "🚀 Your comprehensive offline terminal help system"

// Subtitle is shown under the tagline.
const Subtitle = "Navigate through developer tools and find the commands you need"

// Farewell is printed when the user exits.
const Farewell = "👋 Thanks for using Helpsheet!"

// Theme holds the styled components for one output stream.
type Theme struct {
	Banner      lipgloss.Style
	Tagline     lipgloss.Style
	Title       lipgloss.Style
	Heading     lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Cursor      lipgloss.Style
	Command     lipgloss.Style
	Description lipgloss.Style
	Category    lipgloss.Style
	Muted       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Info        lipgloss.Style
	Box         lipgloss.Style
}

// NewRenderer returns a renderer for w. With color off everything renders
// as plain ASCII, borders included.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// New builds a theme bound to r.
func New(r *lipgloss.Renderer) *Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Theme{
		Banner:      r.NewStyle().Foreground(Cyan).Bold(true),
		Tagline:     r.NewStyle().Foreground(Amber),
		Title:       r.NewStyle().Foreground(Blue).Bold(true),
		Heading:     r.NewStyle().Foreground(Cyan),
		Item:        r.NewStyle().Foreground(TextPrimary),
		Selected:    r.NewStyle().Foreground(Purple).Bold(true),
		Cursor:      r.NewStyle().Foreground(Purple),
		Command:     r.NewStyle().Foreground(Amber),
		Description: r.NewStyle().Foreground(TextMuted),
		Category:    r.NewStyle().Foreground(Cyan),
		Muted:       r.NewStyle().Foreground(TextMuted),
		Success:     r.NewStyle().Foreground(Emerald),
		Warning:     r.NewStyle().Foreground(Amber),
		Error:       r.NewStyle().Foreground(Rose),
		Info:        r.NewStyle().Foreground(Blue),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Emerald).
			Padding(1, 2),
	}
}

// Header renders the banner, tagline and subtitle.
func (t *Theme) Header() string {
	return strings.Join([]string{
		t.Banner.Render(banner),
		t.Tagline.Render(Tagline),
		t.Muted.Render(Subtitle),
	}, "\n")
}

// CopiedBox renders the confirmation shown after a command is copied.
func (t *Theme) CopiedBox(command, description string) string {
	body := strings.Join([]string{
		t.Success.Render("✅ Command copied to clipboard!"),
		"",
		t.Item.Render("Command:") + " " + t.Command.Render(command),
		"",
		t.Item.Render("Description:") + " " + t.Category.Render(description),
		"",
		t.Muted.Render("You can now paste this command in your terminal"),
	}, "\n")
	return t.Box.Render(body)
}
