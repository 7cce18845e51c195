// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package console writes the calculator's operator-facing output.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console writes prompts, result lines and error lines to a single writer.
type Console struct {
	w           io.Writer
	color       bool
	resultStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

// New returns a Console writing to w. When color is true the result line
// is bold and the error line red; the renderer is bound to w, so writers
// that are not terminals still receive plain text.
func New(w io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:           w,
		color:       color,
		resultStyle: r.NewStyle().Bold(true),
		errorStyle:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Prompt writes text as-is, without a trailing newline.
func (c *Console) Prompt(text string) error {
	_, err := io.WriteString(c.w, text)
	return err
}

// Result writes the result line.
func (c *Console) Result(line string) error {
	return c.line(c.resultStyle, line)
}

// Error writes the error line.
func (c *Console) Error(line string) error {
	return c.line(c.errorStyle, line)
}

func (c *Console) line(style lipgloss.Style, text string) error {
	if c.color {
		text = style.Render(text)
	}
	_, err := fmt.Fprintln(c.w, text)
	return err
}
