package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"recipfit/internal/config"
	"recipfit/internal/fit"
	"recipfit/internal/logger"
	"recipfit/internal/measure"
	"recipfit/internal/observe"
)

const fallbackColumns = 80

// Runner handles CLI (non-TUI) execution
type Runner struct {
	cfg    *config.Config
	source string
	watch  bool

	out    *termenv.Output
	term   *observe.Terminal
	svc    measure.Service
	engine *fit.Engine
}

type Option func(*Runner)

// WithWriter sends output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(r *Runner) {
		r.out = termenv.NewOutput(w)
	}
}

// WithTerminal sets the terminal whose width is followed. A nil terminal
// means the width is fixed at startup.
func WithTerminal(t *observe.Terminal) Option {
	return func(r *Runner) {
		r.term = t
	}
}

// NewRunner creates a new CLI runner
func NewRunner(cfg *config.Config, source string, watch bool, opts ...Option) *Runner {
	r := &Runner{
		cfg:    cfg,
		source: source,
		watch:  watch,
		out:    termenv.NewOutput(os.Stdout),
		term:   observe.NewTerminal(os.Stdout),
		svc:    measure.New(cfg.Unit),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.engine = fit.NewEngine(r.svc, cfg.FitConfig())
	r.engine.OnTruncate(func(hidden, total int) {
		logger.Info("recipients truncated", "hidden", hidden, "total", total)
	})
	return r
}

// Run prints the fitted summary and returns an exit code. In watch mode it
// keeps refitting on terminal resize until interrupted.
func (r *Runner) Run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.run(ctx)
}

func (r *Runner) run(ctx context.Context) int {
	root := measure.NewElement(nil)
	root.ApplyDescriptor(r.cfg.FontDescriptor())
	cell := measure.NewElement(root)
	cell.SetWidth(r.liveWidth(r.columns()))

	r.engine.SetSource(r.source)
	res := r.engine.Mount(cell)
	defer r.engine.Unmount()

	if !r.watch || r.term == nil {
		fmt.Fprintln(r.out, r.render(res))
		return 0
	}

	fmt.Fprint(r.out, r.render(res))

	widths := make(chan int)
	sub := r.term.Observe(func(w int) {
		select {
		case widths <- w:
		case <-ctx.Done():
		}
	})
	defer sub.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return 0
		case w := <-widths:
			res = r.engine.Resize(r.liveWidth(w))
			r.out.ClearLine()
			fmt.Fprint(r.out, "\r"+r.render(res))
		}
	}
}

// Measure prints the computed font and measured width of text.
func (r *Runner) Measure(text string) int {
	root := measure.NewElement(nil)
	root.ApplyDescriptor(r.cfg.FontDescriptor())

	font := r.svc.EffectiveFont(root)
	width := r.svc.MeasureWidth(text, font)

	fmt.Fprintf(r.out, "font:  %s\n", font)
	fmt.Fprintf(r.out, "unit:  %s\n", r.cfg.Unit)
	fmt.Fprintf(r.out, "width: %s\n", formatWidth(width))
	if width == 0 && text != "" {
		fmt.Fprintln(r.out, r.out.String("measurement unavailable").Faint())
	}
	return 0
}

// Result returns the last published result.
func (r *Runner) Result() fit.Result {
	return r.engine.Result()
}

func (r *Runner) render(res fit.Result) string {
	if !res.Truncated() {
		return res.Text
	}
	count := r.out.String(fmt.Sprintf(" (+%d)", res.Hidden)).Faint()
	return res.Text + count.String()
}

// columns returns the terminal width, or a conventional default when output
// is not a terminal.
func (r *Runner) columns() int {
	if r.term == nil {
		return fallbackColumns
	}
	w, err := r.term.Width()
	if err != nil || w <= 0 {
		logger.Debug("terminal width unavailable, using default", "columns", fallbackColumns, "error", err)
		return fallbackColumns
	}
	return w
}

// liveWidth converts terminal columns into the active measurement unit.
func (r *Runner) liveWidth(columns int) float64 {
	return measure.ColumnsWidth(r.cfg.Unit, columns)
}

func formatWidth(w float64) string {
	return fmt.Sprintf("%.2f", w)
}
