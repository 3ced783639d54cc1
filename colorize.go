package daybook

import (
	"strings"

	"github.com/muesli/termenv"
)

// ColorNone disables coloring for the value that carries it.
const ColorNone = "NONE"

// colorNames maps configuration color names to ANSI palette entries.
// Names mirror the standard 16-color terminal palette.
var colorNames = map[string]termenv.ANSIColor{
	"black":         termenv.ANSIBlack,
	"red":           termenv.ANSIRed,
	"green":         termenv.ANSIGreen,
	"yellow":        termenv.ANSIYellow,
	"blue":          termenv.ANSIBlue,
	"magenta":       termenv.ANSIMagenta,
	"cyan":          termenv.ANSICyan,
	"white":         termenv.ANSIWhite,
	"brightblack":   termenv.ANSIBrightBlack,
	"brightred":     termenv.ANSIBrightRed,
	"brightgreen":   termenv.ANSIBrightGreen,
	"brightyellow":  termenv.ANSIBrightYellow,
	"brightblue":    termenv.ANSIBrightBlue,
	"brightmagenta": termenv.ANSIBrightMagenta,
	"brightcyan":    termenv.ANSIBrightCyan,
	"brightwhite":   termenv.ANSIBrightWhite,
}

// ValidColor reports whether name resolves to a display color. The
// "NONE" sentinel is valid (it means "don't color"). Comparison is
// case-insensitive.
func ValidColor(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.EqualFold(name, ColorNone) {
		return true
	}
	_, ok := colorNames[name]
	return ok
}

// ColorNames returns the recognized color names in no particular order,
// for configuration validation messages.
func ColorNames() []string {
	names := make([]string, 0, len(colorNames))
	for name := range colorNames {
		names = append(names, name)
	}
	return names
}

// Colorize wraps s in the ANSI escape sequence for the named color,
// using the standard 16-color profile. If the name is "NONE" or not
// recognized, s is returned unmodified rather than failing; a
// configuration validator (ValidColor) is responsible for reporting bad
// names ahead of time.
func Colorize(s, color string, bold bool) string {
	return colorizeWith(termenv.ANSI, s, color, bold)
}

// colorizeWith renders s with an explicit termenv profile. The profile
// is a pure escape-sequence mapping; no terminal capabilities are
// queried here.
func colorizeWith(p termenv.Profile, s, color string, bold bool) string {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(color))]
	if !ok {
		return s
	}
	style := p.String(s).Foreground(c)
	if bold {
		style = style.Bold()
	}
	return style.String()
}
