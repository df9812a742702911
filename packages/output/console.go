package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/wpazderski/pwconfig/packages/playwright"
)

type ConsoleFormatter struct {
	writer  io.Writer
	noColor bool

	bold   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
		bold:   color.New(color.Bold),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		cyan:   color.New(color.FgCyan),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		for _, c := range []*color.Color{f.bold, f.green, f.yellow, f.red, f.cyan} {
			c.DisableColor()
		}
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatConfig prints a human-readable summary of cfg.
func (f *ConsoleFormatter) FormatConfig(cfg *playwright.Config, isCI bool) {
	mode := f.green.Sprint("local")
	if isCI {
		mode = f.yellow.Sprint("ci")
	}

	fmt.Fprintf(f.writer, "\n%s (%s)\n\n", f.bold.Sprint("Playwright configuration"), mode)

	fmt.Fprintf(f.writer, "  Test dir:        %s\n", cfg.TestDir)
	fmt.Fprintf(f.writer, "  Fully parallel:  %s\n", f.yesNo(cfg.FullyParallel))
	fmt.Fprintf(f.writer, "  Forbid only:     %s\n", f.yesNo(cfg.ForbidOnly))
	fmt.Fprintf(f.writer, "  Retries:         %d\n", cfg.Retries)
	fmt.Fprintf(f.writer, "  Workers:         %d\n", cfg.Workers)

	fmt.Fprintf(f.writer, "\n%s\n", f.bold.Sprint("Use"))
	fmt.Fprintf(f.writer, "  Base URL:        %s\n", f.cyan.Sprint(cfg.Use.BaseURL))
	fmt.Fprintf(f.writer, "  Trace:           %s\n", cfg.Use.Trace)
	fmt.Fprintf(f.writer, "  Test id attr:    %s\n", cfg.Use.TestIDAttribute)
	fmt.Fprintf(f.writer, "  Viewport:        %s\n", cfg.Use.Viewport)

	fmt.Fprintf(f.writer, "\n%s\n", f.bold.Sprint("Projects"))
	for _, p := range cfg.Projects {
		fmt.Fprintf(f.writer, "  %s %-10s %s, %s\n", f.green.Sprint("✓"), p.Name,
			p.Use.DefaultBrowserType, p.Use.Viewport)
	}

	fmt.Fprintf(f.writer, "\n%s\n", f.bold.Sprint("Web server"))
	fmt.Fprintf(f.writer, "  Command:         %s\n", cfg.WebServer.Command)
	fmt.Fprintf(f.writer, "  URL:             %s\n", f.cyan.Sprint(cfg.WebServer.URL))
	fmt.Fprintf(f.writer, "  Reuse existing:  %s\n", f.yesNo(cfg.WebServer.ReuseExistingServer))
	fmt.Fprintf(f.writer, "\n")
}

func (f *ConsoleFormatter) yesNo(b bool) string {
	if b {
		return f.green.Sprint("yes")
	}
	return f.yellow.Sprint("no")
}

func (f *ConsoleFormatter) FormatError(err error) {
	fmt.Fprintf(f.writer, "%s %v\n", f.red.Sprint("Error:"), err)
}

func (f *ConsoleFormatter) FormatSuccess(msg string) {
	fmt.Fprintf(f.writer, "%s %s\n", f.green.Sprint("✓"), msg)
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	fmt.Fprintf(f.writer, "%s %s\n", f.bold.Sprint("pwconfig"), version)
}
