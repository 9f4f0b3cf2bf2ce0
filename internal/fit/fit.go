package fit

import (
	"fmt"
	"math"
	"strings"

	"recipfit/internal/constants"
	rferrors "recipfit/internal/errors"
	"recipfit/internal/measure"
	"recipfit/internal/recipient"
)

// Config controls one fitting pass. A zero AvailableWidth means "use the
// target's laid out width".
type Config struct {
	AvailableWidth      float64
	SuffixMarker        string
	AllowSingleOverflow bool
	MinimumViableWidth  float64
}

func DefaultConfig() Config {
	return Config{
		SuffixMarker:        constants.DefaultSuffixMarker,
		AllowSingleOverflow: true,
		MinimumViableWidth:  constants.DefaultMinimumViableWidth,
	}
}

// Width returns the budget for target under c.
func (c Config) Width(target *measure.Element) float64 {
	if c.AvailableWidth > 0 {
		return c.AvailableWidth
	}
	return target.Width()
}

// Result is the outcome of one fitting pass. Visible is always a prefix of the
// parsed list and len(Visible)+Hidden is the number of valid recipients.
type Result struct {
	Visible recipient.List
	Hidden  int
	Text    string
	Ready   bool
}

// Total returns the number of valid recipients the result was computed over.
func (r Result) Total() int { return len(r.Visible) + r.Hidden }

// Truncated reports whether any recipient is hidden.
func (r Result) Truncated() bool { return r.Hidden > 0 }

// Fit computes the longest prefix of items whose joined text, plus the suffix
// marker when anything is left over, fits the budget. It assumes width never
// shrinks as items are added and stops at the first item that does not fit.
//
// A non-nil error means measurement failed; the returned Result is then the
// fail open result with every item visible and is safe to publish.
func Fit(items recipient.List, target *measure.Element, cfg Config, svc measure.Service) (res Result, err error) {
	total := len(items)
	width := cfg.Width(target)
	if total == 0 || !target.Attached() || !(width >= cfg.MinimumViableWidth) {
		return Result{Visible: recipient.List{}, Hidden: total, Ready: true}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			res = failOpen(items, cfg)
			err = rferrors.MeasureError{Op: "fit", Err: fmt.Errorf("%v", r)}
		}
	}()

	font := svc.EffectiveFont(target)

	visible := 0
	for visible < total {
		trial := visible + 1
		text := compose(items, trial, cfg.SuffixMarker)
		w := svc.MeasureWidth(text, font)
		if !(w > 0) || math.IsInf(w, 0) {
			return failOpen(items, cfg), rferrors.MeasureError{
				Op:  "width",
				Err: fmt.Errorf("no width for %q in %s", text, font),
			}
		}
		if w > width && !(visible == 0 && cfg.AllowSingleOverflow) {
			break
		}
		visible = trial
	}

	return newResult(items, visible, cfg), nil
}

func failOpen(items recipient.List, cfg Config) Result {
	return newResult(items, len(items), cfg)
}

func newResult(items recipient.List, visible int, cfg Config) Result {
	shown := make(recipient.List, visible)
	copy(shown, items[:visible])
	return Result{
		Visible: shown,
		Hidden:  len(items) - visible,
		Text:    compose(items, visible, cfg.SuffixMarker),
		Ready:   true,
	}
}

// compose renders the first n items, marking the rest as hidden.
func compose(items recipient.List, n int, suffix string) string {
	var b strings.Builder
	b.WriteString(items.Join(n, constants.ItemSeparator))
	if n < len(items) {
		b.WriteString(suffix)
	}
	return b.String()
}
