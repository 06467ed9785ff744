package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Entry is one secret to display.
type Entry struct {
	Name        string
	Value       string
	Description string
}

// EnvLine renders e as NAME="VALUE".
func (e Entry) EnvLine() string {
	return e.Name + `="` + e.Value + `"`
}

// FormatEnv renders entries as NAME="VALUE" lines in input order.
func FormatEnv(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.EnvLine())
		b.WriteByte('\n')
	}
	return b.String()
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithColor enables or disables ANSI styling. Colour is off by default.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.palette = NewPalette(enabled)
	}
}

// Reporter prints secrets with deployment instructions.
type Reporter struct {
	w       io.Writer
	palette Palette
}

// New creates a Reporter writing to w.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{w: w, palette: NewPalette(false)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report prints every entry followed by the next steps, the .env block and
// the security reminder. Entries are validated before anything is written.
func (r *Reporter) Report(entries []Entry) error {
	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyName, i)
		}
	}

	p := &printer{w: r.w}
	pal := r.palette
	rule := strings.Repeat("=", ruleWidth)

	p.blank()
	p.line(pal.Title, bannerTitle)
	p.line(pal.Rule, rule)
	p.blank()
	p.line(nil, bannerIntro)
	p.blank()

	for _, e := range entries {
		p.blank()
		p.line(pal.Name, e.Name)
		p.line(pal.Detail, e.Description)
		p.line(pal.Value, e.Value)
	}

	p.blank()
	p.line(pal.Title, nextStepsTag)
	p.blank()
	for _, s := range nextSteps {
		p.line(nil, s)
	}
	for _, s := range deploymentTargets {
		p.line(pal.Detail, s)
	}
	p.blank()
	p.line(nil, finalStep)

	p.blank()
	p.line(pal.Title, envFormatTag)
	p.blank()
	for _, e := range entries {
		p.line(pal.Detail, e.EnvLine())
	}

	p.blank()
	p.line(pal.Rule, rule)
	p.blank()
	p.line(pal.Success, successLine)
	p.blank()

	p.line(pal.Title, reminderTag)
	for _, s := range securityReminders {
		p.line(pal.Warning, s)
	}
	p.blank()

	if p.err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, p.err)
	}
	return nil
}

// printer stops writing after the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(c *color.Color, s string) {
	if p.err != nil {
		return
	}
	if c != nil {
		s = c.Sprint(s)
	}
	_, p.err = io.WriteString(p.w, s+"\n")
}

func (p *printer) blank() {
	p.line(nil, "")
}
