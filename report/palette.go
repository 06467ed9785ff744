package report

import "github.com/fatih/color"

// Palette holds the styles used by a Reporter.
type Palette struct {
	Title   *color.Color
	Rule    *color.Color
	Name    *color.Color
	Detail  *color.Color
	Value   *color.Color
	Success *color.Color
	Warning *color.Color
}

// NewPalette returns the report styles. When enabled is false every style
// renders plain text regardless of the terminal or NO_COLOR.
func NewPalette(enabled bool) Palette {
	p := Palette{
		Title:   color.New(color.Bold, color.FgYellow),
		Rule:    color.New(color.FgYellow),
		Name:    color.New(color.Bold, color.FgBlue),
		Detail:  color.New(color.FgCyan),
		Value:   color.New(color.FgGreen),
		Success: color.New(color.FgGreen),
		Warning: color.New(color.FgYellow),
	}
	for _, c := range p.all() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p Palette) all() []*color.Color {
	return []*color.Color{p.Title, p.Rule, p.Name, p.Detail, p.Value, p.Success, p.Warning}
}
