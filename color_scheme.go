package typedio

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors of console output.
type ColorScheme struct {
	Name   string `json:"name"`
	Prompt Color  `json:"prompt"`
	Text   Color  `json:"text"`
	Error  Color  `json:"error"`
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with a green prompt and red errors
var ThemeDefault = &ColorScheme{
	Name:   "default",
	Prompt: Color{R: 0, G: 255, B: 0, Bold: true},
	Text:   Color{R: 255, G: 255, B: 255, Bold: false},
	Error:  Color{R: 255, G: 85, B: 85, Bold: true},
}

// ThemeDark is a dark theme with a light blue prompt and off-white text
var ThemeDark = &ColorScheme{
	Name:   "Dark",
	Prompt: Color{R: 102, G: 217, B: 239, Bold: true},
	Text:   Color{R: 248, G: 248, B: 242, Bold: false},
	Error:  Color{R: 255, G: 121, B: 198, Bold: true},
}

// ThemeLight is a light theme with a blue prompt and dark gray text
var ThemeLight = &ColorScheme{
	Name:   "Light",
	Prompt: Color{R: 0, G: 119, B: 187, Bold: true},
	Text:   Color{R: 36, G: 41, B: 46, Bold: false},
	Error:  Color{R: 215, G: 58, B: 73, Bold: true},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:   "Accessible",
	Prompt: Color{R: 0, G: 114, B: 178, Bold: true},
	Text:   Color{R: 255, G: 255, B: 255, Bold: false},
	Error:  Color{R: 230, G: 159, B: 0, Bold: true},
}

// Themes lists the built-in color schemes by lower-case name.
var Themes = map[string]*ColorScheme{
	"default":    ThemeDefault,
	"dark":       ThemeDark,
	"light":      ThemeLight,
	"accessible": ThemeAccessible,
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
