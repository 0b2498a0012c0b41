// Package output renders every user-visible line of rowpilot.
//
// A [Printer] writes to a single writer with lipgloss styles drawn from the
// light or dark palette, and localizes its messages through package i18n.
// Run progress lines carry a [HH:MM:SS] timestamp.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"rowpilot/internal/i18n"
	"rowpilot/internal/mapping"
	"rowpilot/internal/step"
)

// Printer writes styled output.
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	lang     string
	theme    string
	styles   styles
	now      func() time.Time
}

// NewPrinter creates a Printer writing to stdout.
func NewPrinter() *Printer {
	return NewPrinterWithWriter(os.Stdout)
}

// NewPrinterWithWriter creates a Printer writing to w, in English with the
// light theme.
func NewPrinterWithWriter(w io.Writer) *Printer {
	p := &Printer{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		lang:     i18n.Fallback,
		now:      time.Now,
	}
	p.SetTheme("light")
	return p
}

// SetLanguage selects the message language.
func (p *Printer) SetLanguage(lang string) {
	p.lang = lang
}

// SetTheme selects the palette.
func (p *Printer) SetTheme(theme string) {
	p.theme = theme
	p.styles = newStyles(p.renderer, PaletteFor(theme))
}

// SetClock replaces the clock used for timestamps.
func (p *Printer) SetClock(now func() time.Time) {
	p.now = now
}

// Language returns the message language.
func (p *Printer) Language() string {
	return p.lang
}

// Theme returns the theme name.
func (p *Printer) Theme() string {
	return p.theme
}

// Message returns the localized message for key.
func (p *Printer) Message(key string, args ...any) string {
	return i18n.T(p.lang, key, args...)
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

// Text prints a plain line.
func (p *Printer) Text(s string) {
	p.println(p.styles.text.Render(s))
}

// Success prints a localized success line.
func (p *Printer) Success(key string, args ...any) {
	p.println(p.styles.success.Render("✓ ") + p.styles.text.Render(p.Message(key, args...)))
}

// Info prints a localized informational line.
func (p *Printer) Info(key string, args ...any) {
	p.println(p.styles.info.Render(p.Message(key, args...)))
}

// Warning prints msg as an inline warning.
func (p *Printer) Warning(msg string) {
	p.println(p.styles.warning.Render("⚠ "+p.Message(i18n.KeyWarning)+": ") + p.styles.text.Render(msg))
}

// Warn prints a localized warning.
func (p *Printer) Warn(key string, args ...any) {
	p.Warning(p.Message(key, args...))
}

// Error prints err in a bordered box.
func (p *Printer) Error(err error) {
	body := p.styles.err.Render("✗ "+p.Message(i18n.KeyError)) + "\n" + p.styles.text.Render(err.Error())
	p.println(p.styles.errBox.Render(body))
}

// Log prints a timestamped progress line.
func (p *Printer) Log(msg string) {
	stamp := p.styles.muted.Render("[" + p.now().Format("15:04:05") + "]")
	p.println(stamp + " " + p.styles.text.Render(msg))
}

// RunHeader prints the banner shown when a run starts.
func (p *Printer) RunHeader(rows, steps int, stopKey string) {
	body := p.styles.title.Render(p.Message(i18n.KeyRunStarted, rows, steps)) + "\n" +
		p.styles.muted.Render(p.Message(i18n.KeyStopHint, strings.ToUpper(stopKey)))
	p.println("")
	p.println(p.styles.box.Render(body))
}

// RowStarted logs the start of table row row (0-based); ordinal counts rows
// within the run, starting at 1.
func (p *Printer) RowStarted(row, ordinal, total int) {
	p.Log(p.Message(i18n.KeyRowStarted, row+1, ordinal, total))
}

// RowDone logs a completed row.
func (p *Printer) RowDone(row int) {
	p.Log(p.Message(i18n.KeyRowDone, row+1))
}

// StepDone prints a muted progress line for a dispatched step.
func (p *Printer) StepDone(index int, s step.Step) {
	p.println(p.styles.muted.Render(fmt.Sprintf("  %d. %s %s", index+1, s.Action, step.Describe(s))))
}

// RowFailed logs a failed row.
func (p *Printer) RowFailed(row int, err error) {
	stamp := p.styles.muted.Render("[" + p.now().Format("15:04:05") + "]")
	p.println(stamp + " " + p.styles.err.Render(p.Message(i18n.KeyRowFailed, row+1, err)))
}

// ContinuePrompt prints the continue question without a trailing newline.
func (p *Printer) ContinuePrompt() {
	fmt.Fprint(p.w, p.styles.warning.Render(p.Message(i18n.KeyContinuePrompt)))
}

// RunSummary prints the closing box of a run.
func (p *Printer) RunSummary(stopped bool, processed, failed int, duration time.Duration) {
	var lines []string
	if stopped {
		lines = append(lines, p.styles.warning.Render("■ "+p.Message(i18n.KeyRunStopped, processed)))
	} else {
		lines = append(lines, p.styles.success.Render("✓ "+p.Message(i18n.KeyRunCompleted, processed)))
	}
	if failed > 0 {
		lines = append(lines, p.styles.err.Render(p.Message(i18n.KeyRowsFailed, failed)))
	}
	lines = append(lines, p.styles.muted.Render(duration.Round(time.Millisecond).String()))

	p.println("")
	p.println(p.styles.box.Render(strings.Join(lines, "\n")))
}

// Steps prints the automation step list.
func (p *Printer) Steps(rows []step.Row) {
	if len(rows) == 0 {
		p.println(p.styles.muted.Render(p.Message(i18n.KeyStepsEmpty)))
		return
	}
	p.println(p.styles.header.Render(fmt.Sprintf("%-4s %-14s %-30s %s", "#", "Action", "Parameters", "Delay")))
	for _, r := range rows {
		line := fmt.Sprintf("%-4d %-14s %-30s %gs", r.Position, r.Step.Action, step.Describe(r.Step), r.Step.Delay)
		p.println(p.styles.text.Render(line))
	}
}

// Mappings prints the column mapping list.
func (p *Printer) Mappings(items []mapping.Mapping) {
	if len(items) == 0 {
		p.println(p.styles.muted.Render(p.Message(i18n.KeyMappingsEmpty)))
		return
	}
	p.println(p.styles.header.Render(fmt.Sprintf("%-4s %-20s %-20s %s", "#", "Variable", "Column", "Sample")))
	for i, m := range items {
		line := fmt.Sprintf("%-4d %-20s %-20s %s", i+1, m.Variable, m.Column, m.Sample)
		p.println(p.styles.text.Render(line))
	}
}

// Sheet prints a sheet summary.
func (p *Printer) Sheet(name string, rows int, columns []string) {
	p.println(p.styles.title.Render(p.Message(i18n.KeySheetInfo, name, rows, strings.Join(columns, ", "))))
}

// List prints one bulleted item per line.
func (p *Printer) List(items []string) {
	for _, it := range items {
		p.println(p.styles.text.Render("  • " + it))
	}
}
