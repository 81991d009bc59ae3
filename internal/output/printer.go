package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command output in JSON or human-readable form.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	color  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style

	// Status colors, keyed by action name.
	Actions map[string]lipgloss.Style
}

func colorStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:    lipgloss.NewStyle().Bold(true),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
		Muted:   lipgloss.NewStyle().Faint(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Value:   lipgloss.NewStyle(),
		Actions: map[string]lipgloss.Style{
			"modified":  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			"added":     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			"deleted":   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			"copied":    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			"renamed":   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			"untracked": lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		},
	}
}

func plainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:   plain,
		Success: plain,
		Warning: plain,
		Bold:    plain,
		Title:   plain,
		Muted:   plain,
		Key:     plain,
		Value:   plain,
		Actions: map[string]lipgloss.Style{},
	}
}

// NewPrinter creates a Printer. jsonMode selects structured output; color
// enables lipgloss styling for human output.
func NewPrinter(writer io.Writer, jsonMode bool, color bool) *Printer {
	styles := plainStyles()
	if color {
		styles = colorStyles()
	}
	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		color:  color,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and warnings in human mode.
// In JSON mode errors still go to the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON reports whether the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// Color reports whether human output is styled.
func (p *Printer) Color() bool {
	return p.color
}

// Success outputs a flat result. In human mode a "message" key is printed on
// its own; otherwise keys are printed sorted, one per line.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.WriteJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		p.Message(msg)
		return nil
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		p.KeyValue(key, fmt.Sprint(data[key]))
	}
	return nil
}

// Message prints git's own output in human mode. Empty messages print
// nothing. No-op in JSON mode.
func (p *Printer) Message(msg string) {
	if p.json || strings.TrimSpace(msg) == "" {
		return
	}
	mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(strings.TrimRight(msg, "\n"))))
}

// Hint prints a muted line, e.g. "nothing to show". No-op in JSON mode.
func (p *Printer) Hint(format string, args ...any) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintln(p.w, p.styles.Muted.Render(fmt.Sprintf(format, args...))))
}

// Error outputs an error. JSON mode writes {"error": "...", "code": N} to
// the main writer; human mode writes a styled line to the error writer.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), strings.TrimRight(exitErr.Message, "\n")))
}

// Warn outputs a warning. JSON mode writes {"warning": "..."}.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.WriteJSON(map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON encodes data as indented JSON.
func (p *Printer) WriteJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N}
func ErrorJSON(message string, code int) []byte {
	result, _ := json.Marshal(map[string]any{
		"error": message,
		"code":  code,
	})
	return result
}

// mustWrite panics if a write to stdout, stderr or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

// Action renders an action name in its status color.
func (p *Printer) Action(action string) string {
	if style, ok := p.styles.Actions[action]; ok {
		return style.Render(action)
	}
	return action
}

// Table renders rows under bold headers with auto-sized columns. Cells may
// already contain ANSI styling; widths are measured on visible text.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = p.styles.Bold.Render(h)
	}
	p.tableRow(styled, widths)
	for _, row := range rows {
		p.tableRow(row, widths)
	}
}

func (p *Printer) tableRow(cells []string, widths []int) {
	var b strings.Builder
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cell)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(cell))))
		}
	}
	mustWrite(fmt.Fprintln(p.w, b.String()))
}

// Section renders a section header with an underline, preceded by a blank
// line.
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title)))
	mustWrite(fmt.Fprintln(p.w, p.styles.Muted.Render(strings.Repeat("─", len(title)))))
}

// KeyValue renders "Key: Value".
func (p *Printer) KeyValue(key string, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), p.styles.Value.Render(value)))
}
