// Package observe reports terminal width changes.
package observe

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"golang.org/x/term"

	"recipfit/internal/logger"
)

// Terminal watches the width of the terminal attached to a file descriptor.
type Terminal struct {
	fd int

	size   func(fd int) (width, height int, err error)
	notify func(c chan<- os.Signal, sig ...os.Signal)
	stop   func(c chan<- os.Signal)
}

func NewTerminal(f *os.File) *Terminal {
	return &Terminal{
		fd:     int(f.Fd()),
		size:   term.GetSize,
		notify: signal.Notify,
		stop:   signal.Stop,
	}
}

// NewTerminalFunc builds a Terminal over a custom size probe and signal
// registration, for hosts that are not attached to a real terminal.
func NewTerminalFunc(
	size func(fd int) (width, height int, err error),
	notify func(c chan<- os.Signal, sig ...os.Signal),
	stop func(c chan<- os.Signal),
) *Terminal {
	return &Terminal{size: size, notify: notify, stop: stop}
}

// IsTerminal reports whether the watched descriptor is a terminal at all.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// Width returns the current terminal width in columns.
func (t *Terminal) Width() (int, error) {
	w, _, err := t.size(t.fd)
	if err != nil {
		return 0, fmt.Errorf("failed to read terminal size: %w", err)
	}
	return w, nil
}

// Subscription is a live resize observation. Stop must be called to release
// the signal registration; it is safe to call more than once.
type Subscription struct {
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// Stop ends the observation and waits for the watcher goroutine to exit. No
// callback runs after Stop returns.
func (s *Subscription) Stop() {
	s.once.Do(func() {
		close(s.quit)
	})
	<-s.done
}

// Observe calls fn with the new width each time the terminal is resized.
// Height-only changes and failed size reads are not reported. fn runs on the
// watcher goroutine.
func (t *Terminal) Observe(fn func(width int)) *Subscription {
	sigCh := make(chan os.Signal, 1)
	if len(resizeSignals) > 0 {
		t.notify(sigCh, resizeSignals...)
	}

	last, err := t.Width()
	if err != nil {
		last = -1
	}

	sub := &Subscription{
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		defer t.stop(sigCh)

		for {
			select {
			case <-sub.quit:
				return
			case <-sigCh:
				w, err := t.Width()
				if err != nil {
					logger.Debug("resize ignored", "error", err)
					continue
				}
				if w == last {
					continue
				}
				last = w
				fn(w)
			}
		}
	}()

	return sub
}
