package args

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/pflag"

	"recipfit/internal/config"
)

// Modes selected by the first positional argument.
const (
	ModeTUI     = "tui"
	ModeRun     = "run"
	ModeMeasure = "measure"
)

type Options struct {
	Mode       string
	Source     string
	Width      float64
	Suffix     string
	NoOverflow bool
	MinWidth   float64
	Unit       string
	Font       string
	Watch      bool
	Verbose    bool
	Help       bool

	// changed records which flags were given explicitly.
	changed map[string]bool
}

func newFlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("recipfit", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.Float64VarP(&opts.Width, "width", "w", 0, "fixed width budget instead of the live terminal width")
	fs.StringVar(&opts.Suffix, "suffix", "", "marker appended when recipients are hidden")
	fs.BoolVar(&opts.NoOverflow, "no-overflow", false, "hide a single recipient wider than the budget")
	fs.Float64Var(&opts.MinWidth, "min-width", 0, "width below which nothing is shown")
	fs.StringVar(&opts.Unit, "unit", "", "measurement unit: cells, px or fixed")
	fs.StringVar(&opts.Font, "font", "", `font descriptor, e.g. "bold 13px Go"`)
	fs.BoolVar(&opts.Watch, "watch", false, "run mode: refit on every terminal resize")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVarP(&opts.Help, "help", "h", false, "show this help message")
	return fs
}

func Parse(args []string) (*Options, error) {
	opts := &Options{Mode: ModeTUI, changed: make(map[string]bool)}
	fs := newFlagSet(opts)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	fs.Visit(func(f *pflag.Flag) {
		opts.changed[f.Name] = true
	})

	rest := fs.Args()
	if len(rest) > 0 {
		switch rest[0] {
		case ModeRun, ModeMeasure:
			opts.Mode = rest[0]
			rest = rest[1:]
		}
	}
	opts.Source = strings.Join(rest, " ")

	return opts, nil
}

// Changed reports whether the named flag was given on the command line.
func (o *Options) Changed(name string) bool {
	return o.changed[name]
}

func (o *Options) Validate() error {
	if o.Help {
		return nil
	}

	if o.Mode == ModeMeasure && o.Source == "" {
		return fmt.Errorf("measure needs the text to measure")
	}
	if o.Watch && o.Mode != ModeRun {
		return fmt.Errorf("--watch only applies to run mode")
	}
	if o.Width < 0 || math.IsNaN(o.Width) || math.IsInf(o.Width, 0) {
		return fmt.Errorf("--width must be a non-negative number, got %v", o.Width)
	}
	if o.MinWidth < 0 || math.IsNaN(o.MinWidth) || math.IsInf(o.MinWidth, 0) {
		return fmt.Errorf("--min-width must be a non-negative number, got %v", o.MinWidth)
	}

	return nil
}

// Apply copies explicitly given flags over cfg. Flags always win over the
// config file and environment.
func (o *Options) Apply(cfg *config.Config) {
	if o.Changed("width") {
		cfg.AvailableWidth = o.Width
	}
	if o.Changed("suffix") {
		cfg.SuffixMarker = o.Suffix
	}
	if o.Changed("no-overflow") {
		cfg.AllowSingleOverflow = !o.NoOverflow
	}
	if o.Changed("min-width") {
		cfg.MinimumViableWidth = o.MinWidth
	}
	if o.Changed("unit") {
		cfg.Unit = o.Unit
	}
	if o.Changed("font") {
		cfg.Font = o.Font
	}
	if o.Changed("verbose") {
		cfg.Verbose = o.Verbose
	}
}

func HelpText() string {
	var opts Options
	fs := newFlagSet(&opts)

	return `
recipfit - fit a recipient list into a fixed width

Usage:
  recipfit "a@x.com, b@y.com"                  # Interactive editor (TUI)
  recipfit run "a@x.com, b@y.com" -w 30        # Print the fitted summary (stdout)
  recipfit run "a@x.com, b@y.com" --watch      # Refit on terminal resize
  recipfit measure "a@x.com" --font "13px Go"  # Print the computed font and width

Options:
` + fs.FlagUsages() + `
Modes:
  (default)    Interactive TUI with resizable recipients cell
  run          Non-interactive stdout output (for scripts)
  measure      Report the measured width of a string

Configuration:
  recipfit.yaml in the working directory, $XDG_CONFIG_HOME/recipfit/config.yaml
  or ~/.config/recipfit/config.yaml, then RECIPFIT_* environment variables.
  RECIPFIT_CONFIG names an explicit file.

Controls (TUI mode):
  tab          Switch focus between the editor and the recipients cell
  Ctrl+C       Quit the application

  With the cell focused:
  [ / ]        Narrow / widen the cell
  0            Follow the window width again
  o            Toggle showing a single overlong recipient
  q            Quit the application
`
}
