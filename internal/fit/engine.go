package fit

import (
	"log/slog"

	"recipfit/internal/logger"
	"recipfit/internal/measure"
	"recipfit/internal/recipient"
)

// Trigger identifies what caused an evaluation.
type Trigger int

const (
	TriggerMount Trigger = iota
	TriggerSource
	TriggerConfig
	TriggerResize
)

func (t Trigger) String() string {
	switch t {
	case TriggerMount:
		return "mount"
	case TriggerSource:
		return "source"
	case TriggerConfig:
		return "config"
	case TriggerResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Engine owns the inputs of the fitting pass and publishes its latest Result.
// Every setter runs one synchronous evaluation that replaces the previous
// result outright. Engine is not safe for concurrent use; hosts drive it from
// their event loop.
type Engine struct {
	svc    measure.Service
	target *measure.Element
	raw    string
	cfg    Config
	result Result

	onTruncate func(hidden, total int)
	truncated  bool
	log        *slog.Logger
}

func NewEngine(svc measure.Service, cfg Config) *Engine {
	return &Engine{
		svc: svc,
		cfg: cfg,
		log: logger.With("component", "fit"),
	}
}

// OnTruncate registers fn to be called whenever the hidden count becomes
// positive after having been zero or not yet computed. Evaluations without a
// mounted target never notify.
func (e *Engine) OnTruncate(fn func(hidden, total int)) {
	e.onTruncate = fn
}

// Mount attaches target and runs the first evaluation. A previously mounted
// target is detached.
func (e *Engine) Mount(target *measure.Element) Result {
	if e.target != nil && e.target != target {
		e.target.Detach()
	}
	e.target = target
	target.Attach()
	return e.evaluate(TriggerMount)
}

// Unmount detaches the target. The published result is cleared.
func (e *Engine) Unmount() {
	if e.target != nil {
		e.target.Detach()
	}
	e.target = nil
	e.result = Result{}
	e.truncated = false
}

// SetSource replaces the raw comma separated recipient string.
func (e *Engine) SetSource(raw string) Result {
	e.raw = raw
	return e.evaluate(TriggerSource)
}

// SetConfig replaces the fitting configuration.
func (e *Engine) SetConfig(cfg Config) Result {
	e.cfg = cfg
	return e.evaluate(TriggerConfig)
}

// Resize records a new width for the target. Notifications that leave the
// width unchanged do not re-evaluate.
func (e *Engine) Resize(width float64) Result {
	if e.target == nil {
		return e.result
	}
	if e.result.Ready && e.target.Width() == width {
		return e.result
	}
	e.target.SetWidth(width)
	return e.evaluate(TriggerResize)
}

// Result returns the most recently published result.
func (e *Engine) Result() Result { return e.result }

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// Source returns the raw recipient string.
func (e *Engine) Source() string { return e.raw }

// Target returns the mounted element, or nil.
func (e *Engine) Target() *measure.Element { return e.target }

func (e *Engine) evaluate(trigger Trigger) Result {
	items := recipient.Parse(e.raw)

	res, err := Fit(items, e.target, e.cfg, e.svc)
	if err != nil {
		e.log.Warn("measurement failed, showing all recipients",
			"trigger", trigger.String(),
			"recipients", len(items),
			"error", err)
	}

	e.result = res

	e.log.Debug("evaluated",
		"trigger", trigger.String(),
		"width", e.cfg.Width(e.target),
		"visible", len(res.Visible),
		"hidden", res.Hidden)

	truncated := res.Hidden > 0 && e.target.Attached()
	if truncated && !e.truncated && e.onTruncate != nil {
		e.onTruncate(res.Hidden, res.Total())
	}
	e.truncated = truncated
	return res
}
