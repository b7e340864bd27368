package typedio

import (
	"fmt"
	"io"
)

// renderer writes console output, optionally wrapped in ANSI colors.
//
// A nil color scheme means plain output: every string is written byte for
// byte, which keeps the fixed prompt and error texts exact on pipes, files
// and test buffers.
type renderer struct {
	output      io.Writer    // Target output writer (stdout, a tty or a colorable wrapper)
	colorScheme *ColorScheme // Color configuration, nil for plain text
}

// newRenderer creates a new renderer with the given output and color scheme.
func newRenderer(output io.Writer, colorScheme *ColorScheme) *renderer {
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
	}
}

// prompt writes a prompt without a line terminator.
func (r *renderer) prompt(s string) error {
	return r.write(s, r.color(func(cs *ColorScheme) Color { return cs.Prompt }), false)
}

// text writes plain text without a line terminator.
func (r *renderer) text(s string) error {
	return r.write(s, r.color(func(cs *ColorScheme) Color { return cs.Text }), false)
}

// line writes plain text followed by a line terminator.
func (r *renderer) line(s string) error {
	return r.write(s, r.color(func(cs *ColorScheme) Color { return cs.Text }), true)
}

// errorLine writes an error message followed by a line terminator.
func (r *renderer) errorLine(s string) error {
	return r.write(s, r.color(func(cs *ColorScheme) Color { return cs.Error }), true)
}

func (r *renderer) color(pick func(*ColorScheme) Color) string {
	if r.colorScheme == nil {
		return ""
	}
	return pick(r.colorScheme).ToANSI()
}

func (r *renderer) write(s, color string, newline bool) error {
	if color != "" && s != "" {
		s = color + s + Reset()
	}
	if newline {
		s += "\n"
	}
	if s == "" {
		return nil
	}
	_, err := fmt.Fprint(r.output, s)
	return err
}
