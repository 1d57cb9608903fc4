// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console prints the human-readable, line-oriented report of a run.
//
// Styling goes through a lipgloss renderer bound to the destination writer:
// on a terminal headings are bold and status lines are coloured, while
// pipes, files and buffers receive plain text.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rule widths used by the report.
const (
	WideRule   = 70
	RecordRule = 24
	AlertRule  = 50
)

// Printer writes report lines to an io.Writer.
type Printer struct {
	w io.Writer

	heading lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	faint   lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:       w,
		heading: r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		faint:   r.NewStyle().Faint(true),
	}
}

// Line prints a plain line.
func (p *Printer) Line(format string, args ...any) {
	p.println(fmt.Sprintf(format, args...))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	p.println("")
}

// Raw writes s unchanged.
func (p *Printer) Raw(s string) {
	_, _ = io.WriteString(p.w, s)
}

// Rule prints a line of n dashes.
func (p *Printer) Rule(n int) {
	p.println(p.faint.Render(strings.Repeat("-", n)))
}

// DoubleRule prints a line of n equals signs.
func (p *Printer) DoubleRule(n int) {
	p.println(strings.Repeat("=", n))
}

// Heading prints a bold line.
func (p *Printer) Heading(format string, args ...any) {
	p.println(p.heading.Render(fmt.Sprintf(format, args...)))
}

// Banner prints title framed by two wide rules.
func (p *Printer) Banner(title string) {
	p.DoubleRule(WideRule)
	p.Heading("%s", title)
	p.DoubleRule(WideRule)
}

// Success prints a success status line.
func (p *Printer) Success(format string, args ...any) {
	p.println(p.success.Render(fmt.Sprintf(format, args...)))
}

// Failure prints an error status line.
func (p *Printer) Failure(format string, args ...any) {
	p.println(p.failure.Render(fmt.Sprintf(format, args...)))
}

// Warning prints a warning status line.
func (p *Printer) Warning(format string, args ...any) {
	p.println(p.warning.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}
