// Package theme defines the color palettes for the dhansetu TUI browser.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps the color roles the browser draws with to one palette.
// Every role carries a background-safe color for dark terminals.
type Theme struct {
	Name string

	// Surfaces, darkest to brightest
	Background    lipgloss.Color
	Surface       lipgloss.Color // cards, bars
	SurfaceHover  lipgloss.Color // selected rows, active tab
	SurfaceBright lipgloss.Color

	// Borders
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // focused cards, overlays

	// Text, lowest to highest contrast
	TextDim     lipgloss.Color
	TextMuted   lipgloss.Color
	TextPrimary lipgloss.Color

	// Accent family
	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	AccentDim    lipgloss.Color // accent-tinted backgrounds

	// Hues for risk levels, bars and category colors
	Green      lipgloss.Color
	Orange     lipgloss.Color
	Red        lipgloss.Color
	Blue       lipgloss.Color
	BlueBright lipgloss.Color
	Yellow     lipgloss.Color
	Magenta    lipgloss.Color
	Cyan       lipgloss.Color
}

// Active is the theme every render reads. SetActive swaps it before the
// program starts; nothing changes it mid-session.
var Active = FlexokiDark

// FlexokiDark is the default: warm, paper-like, easy on low-end panels.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Green:         lipgloss.Color("#879A39"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	BlueBright:    lipgloss.Color("#6BA3D6"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
}

// CatppuccinMocha is a soft pastel palette.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    lipgloss.Color("#1E1E2E"),
	Surface:       lipgloss.Color("#313244"),
	SurfaceHover:  lipgloss.Color("#45475A"),
	SurfaceBright: lipgloss.Color("#585B70"),
	Border:        lipgloss.Color("#585B70"),
	BorderAccent:  lipgloss.Color("#89B4FA"),
	TextDim:       lipgloss.Color("#6C7086"),
	TextMuted:     lipgloss.Color("#A6ADC8"),
	TextPrimary:   lipgloss.Color("#CDD6F4"),
	Accent:        lipgloss.Color("#89B4FA"),
	AccentBright:  lipgloss.Color("#B4D0FB"),
	AccentDim:     lipgloss.Color("#293147"),
	Green:         lipgloss.Color("#A6E3A1"),
	Orange:        lipgloss.Color("#FAB387"),
	Red:           lipgloss.Color("#F38BA8"),
	Blue:          lipgloss.Color("#89B4FA"),
	BlueBright:    lipgloss.Color("#B4D0FB"),
	Yellow:        lipgloss.Color("#F9E2AF"),
	Magenta:       lipgloss.Color("#F5C2E7"),
	Cyan:          lipgloss.Color("#94E2D5"),
}

// TokyoNight is a cool blue and purple palette.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    lipgloss.Color("#1A1B26"),
	Surface:       lipgloss.Color("#24283B"),
	SurfaceHover:  lipgloss.Color("#343A52"),
	SurfaceBright: lipgloss.Color("#414868"),
	Border:        lipgloss.Color("#565F89"),
	BorderAccent:  lipgloss.Color("#7AA2F7"),
	TextDim:       lipgloss.Color("#565F89"),
	TextMuted:     lipgloss.Color("#A9B1D6"),
	TextPrimary:   lipgloss.Color("#C0CAF5"),
	Accent:        lipgloss.Color("#7AA2F7"),
	AccentBright:  lipgloss.Color("#A9C1FF"),
	AccentDim:     lipgloss.Color("#252B3F"),
	Green:         lipgloss.Color("#9ECE6A"),
	Orange:        lipgloss.Color("#FF9E64"),
	Red:           lipgloss.Color("#F7768E"),
	Blue:          lipgloss.Color("#7AA2F7"),
	BlueBright:    lipgloss.Color("#A9C1FF"),
	Yellow:        lipgloss.Color("#E0AF68"),
	Magenta:       lipgloss.Color("#BB9AF7"),
	Cyan:          lipgloss.Color("#7DCFFF"),
}

// GruvboxDark is a retro, high-contrast palette.
var GruvboxDark = Theme{
	Name:          "gruvbox-dark",
	Background:    lipgloss.Color("#282828"),
	Surface:       lipgloss.Color("#3C3836"),
	SurfaceHover:  lipgloss.Color("#504945"),
	SurfaceBright: lipgloss.Color("#665C54"),
	Border:        lipgloss.Color("#504945"),
	BorderAccent:  lipgloss.Color("#83A598"),
	TextDim:       lipgloss.Color("#7C6F64"),
	TextMuted:     lipgloss.Color("#A89984"),
	TextPrimary:   lipgloss.Color("#EBDBB2"),
	Accent:        lipgloss.Color("#83A598"),
	AccentBright:  lipgloss.Color("#8EC07C"),
	AccentDim:     lipgloss.Color("#32302F"),
	Green:         lipgloss.Color("#B8BB26"),
	Orange:        lipgloss.Color("#FE8019"),
	Red:           lipgloss.Color("#FB4934"),
	Blue:          lipgloss.Color("#458588"),
	BlueBright:    lipgloss.Color("#83A598"),
	Yellow:        lipgloss.Color("#FABD2F"),
	Magenta:       lipgloss.Color("#D3869B"),
	Cyan:          lipgloss.Color("#8EC07C"),
}

// Terminal sticks to the ANSI 16 palette and inherits whatever the
// user's terminal maps them to.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All lists the selectable themes in the order setup offers them.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, GruvboxDark, Terminal}

// Names returns the theme names in menu order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName looks a theme up by name, ignoring case. Unknown names fall
// back to the default so a stale config value never breaks startup.
func ByName(name string) Theme {
	for _, t := range All {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return FlexokiDark
}

// SetActive switches the palette every subsequent render uses.
func SetActive(name string) {
	Active = ByName(name)
}
