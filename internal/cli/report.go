package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/tabitha/internal/presentation/tui"
	"github.com/aretw0/tabitha/pkg/validation"
)

// Report is the outcome of one CLI check.
type Report struct {
	Subject string                  `json:"subject"`
	Valid   bool                    `json:"valid"`
	Errors  []validation.FieldError `json:"errors"`
	Data    map[string]any          `json:"data,omitempty"`
}

// NewReport builds a report, keeping Errors non-nil for JSON output.
// Sensitive values in data are masked.
func NewReport(subject string, errs []validation.FieldError, data map[string]any) Report {
	if errs == nil {
		errs = []validation.FieldError{}
	}
	return Report{Subject: subject, Valid: len(errs) == 0, Errors: errs, Data: Redact(data, SensitiveKeys)}
}

// Printer writes reports in the configured format.
type Printer struct {
	Out    io.Writer
	Format string
	Style  tui.Styler
	Render func(string) (string, error)
}

// NewPrinter returns a Printer for out with terminal colors detected.
func NewPrinter(out io.Writer, format string) *Printer {
	return &Printer{
		Out:    out,
		Format: format,
		Style:  tui.NewStyler(out),
		Render: tui.NewRenderer(80),
	}
}

// Print writes r.
func (p *Printer) Print(r Report) error {
	switch p.Format {
	case FormatJSON:
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatMarkdown:
		out, err := p.Render(Markdown(r))
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		_, err = io.WriteString(p.Out, out)
		return err
	default:
		return p.text(r)
	}
}

func (p *Printer) text(r Report) error {
	var b strings.Builder
	if r.Valid {
		fmt.Fprintf(&b, "%s %s\n", p.Style.Pass("valid"), r.Subject)
	} else {
		fmt.Fprintf(&b, "%s %s %s\n", p.Style.Fail("invalid"), r.Subject, p.Style.Muted(fmt.Sprintf("(%d errors)", len(r.Errors))))
	}
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "  %s: %s\n", p.Style.Field(fieldLabel(e.Field)), e.Message)
	}
	_, err := io.WriteString(p.Out, b.String())
	return err
}

// Markdown formats r as a markdown document.
func Markdown(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Subject)
	if r.Valid {
		b.WriteString("**Valid**\n")
		return b.String()
	}
	fmt.Fprintf(&b, "**Invalid** (%d errors)\n\n", len(r.Errors))
	b.WriteString("| Field | Message |\n|---|---|\n")
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "| `%s` | %s |\n", fieldLabel(e.Field), strings.ReplaceAll(e.Message, "|", "\\|"))
	}
	return b.String()
}

func fieldLabel(field string) string {
	if field == "" {
		return "(root)"
	}
	return field
}
