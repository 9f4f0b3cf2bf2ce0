// Package hover implements a delayed show/hide toggle for tooltips. It is
// driven by bubbletea tick commands: every scheduled transition carries a
// sequence tag, and any opposing trigger bumps the tag so the pending tick is
// ignored when it arrives.
package hover

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type State int

const (
	Hidden State = iota
	PendingShow
	Visible
	PendingHide
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case PendingShow:
		return "pending-show"
	case Visible:
		return "visible"
	case PendingHide:
		return "pending-hide"
	default:
		return "unknown"
	}
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg completes a scheduled transition. Machines ignore ticks addressed to
// another machine or carrying a stale tag.
type TickMsg struct {
	ID  int
	tag int
}

// Machine is a timer-debounced boolean. Methods are meant to be called from a
// bubbletea Update loop and are not safe for concurrent use.
type Machine struct {
	id        int
	tag       int
	state     State
	showDelay time.Duration
	hideDelay time.Duration

	onShow func()
	onHide func()
}

func New(showDelay, hideDelay time.Duration) *Machine {
	return &Machine{
		id:        nextID(),
		showDelay: showDelay,
		hideDelay: hideDelay,
	}
}

// ID identifies the machine's tick messages.
func (m *Machine) ID() int { return m.id }

func (m *Machine) State() State { return m.state }

// Visible reports whether the tooltip should currently be drawn. A pending hide
// still counts as visible.
func (m *Machine) Visible() bool {
	return m.state == Visible || m.state == PendingHide
}

// OnShow registers fn to run on every transition into Visible.
func (m *Machine) OnShow(fn func()) { m.onShow = fn }

// OnHide registers fn to run on every transition into Hidden from a shown state.
func (m *Machine) OnHide(fn func()) { m.onHide = fn }

// Enter reports that the pointer or focus arrived on the target.
func (m *Machine) Enter() tea.Cmd {
	switch m.state {
	case Hidden:
		if m.showDelay <= 0 {
			m.show()
			return nil
		}
		m.state = PendingShow
		return m.schedule(m.showDelay)
	case PendingHide:
		m.tag++
		m.state = Visible
	}
	return nil
}

// Leave reports that the pointer or focus left the target.
func (m *Machine) Leave() tea.Cmd {
	switch m.state {
	case PendingShow:
		m.tag++
		m.state = Hidden
	case Visible:
		if m.hideDelay <= 0 {
			m.hide()
			return nil
		}
		m.state = PendingHide
		return m.schedule(m.hideDelay)
	}
	return nil
}

// Toggle enters when hidden and leaves otherwise.
func (m *Machine) Toggle() tea.Cmd {
	if m.state == Hidden || m.state == PendingHide {
		return m.Enter()
	}
	return m.Leave()
}

// Reset hides immediately and cancels anything pending. OnHide runs if the
// tooltip was showing.
func (m *Machine) Reset() {
	m.tag++
	if m.Visible() {
		m.hide()
		return
	}
	m.state = Hidden
}

// Update completes a pending transition when its tick arrives.
func (m *Machine) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || tick.tag != m.tag {
		return nil
	}
	switch m.state {
	case PendingShow:
		m.show()
	case PendingHide:
		m.hide()
	}
	return nil
}

func (m *Machine) show() {
	m.state = Visible
	if m.onShow != nil {
		m.onShow()
	}
}

func (m *Machine) hide() {
	m.state = Hidden
	if m.onHide != nil {
		m.onHide()
	}
}

func (m *Machine) schedule(d time.Duration) tea.Cmd {
	m.tag++
	id, tag := m.id, m.tag
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag}
	})
}
