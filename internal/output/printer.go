// Package output provides CLI output formatting utilities
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ColorMode represents color output mode
type ColorMode int

const (
	// ColorAuto enables colors based on environment (default)
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever forces colors off
	ColorNever
)

// PrinterOptions configures the Printer
type PrinterOptions struct {
	ColorMode    ColorMode
	ConfigColors bool // .epitrend.yaml output.colors value
	Quiet        bool
}

// Printer handles formatted output to the terminal
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
	quiet     bool
}

// ParseColorMode parses a string into a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors determines whether to use colors based on mode and environment
func ResolveColors(mode ColorMode, configColors bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return configColors
	}
}

// NewPrinterWithWriters creates a printer with custom writers
func NewPrinterWithWriters(out, err io.Writer, opts PrinterOptions) *Printer {
	return &Printer{
		out:       out,
		err:       err,
		useColors: ResolveColors(opts.ColorMode, opts.ConfigColors),
		quiet:     opts.Quiet,
	}
}

// Out returns the writer used for regular output
func (p *Printer) Out() io.Writer {
	return p.out
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[WARN] "+format+"\n", args...)
	}
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
	}
}

// Header prints a section header
func (p *Printer) Header(title string) {
	if p.quiet {
		return
	}
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
		color.New(color.FgWhite).Fprintf(p.out, "%s\n", repeatChar('─', len(title)))
	} else {
		fmt.Fprintf(p.out, "\n%s\n%s\n", title, repeatChar('-', len(title)))
	}
}

// Growth colors a doubling interval: short intervals are alarming
func (p *Printer) Growth(text string, periods float64) string {
	if !p.useColors {
		return text
	}
	switch {
	case periods <= 7:
		return color.RedString(text)
	case periods <= 21:
		return color.YellowString(text)
	default:
		return color.GreenString(text)
	}
}

func repeatChar(char rune, count int) string {
	result := make([]rune, count)
	for i := range result {
		result[i] = char
	}
	return string(result)
}
