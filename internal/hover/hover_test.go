package hover

import (
	"testing"
	"time"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Hidden, "hidden"},
		{PendingShow, "pending-show"},
		{Visible, "visible"},
		{PendingHide, "pending-hide"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// pending returns the tick a machine is currently waiting for.
func pending(m *Machine) TickMsg {
	return TickMsg{ID: m.id, tag: m.tag}
}

func TestEnterShowsAfterDelay(t *testing.T) {
	m := New(time.Millisecond, time.Millisecond)
	shows := 0
	m.OnShow(func() { shows++ })

	cmd := m.Enter()
	if cmd == nil {
		t.Fatal("Enter() should schedule a tick")
	}
	if m.State() != PendingShow {
		t.Errorf("State() = %v, want pending-show", m.State())
	}
	if m.Visible() {
		t.Error("Visible() should be false while pending show")
	}

	msg := cmd()
	tick, ok := msg.(TickMsg)
	if !ok {
		t.Fatalf("command produced %T, want TickMsg", msg)
	}
	if tick.ID != m.ID() {
		t.Errorf("tick.ID = %d, want %d", tick.ID, m.ID())
	}

	m.Update(tick)
	if m.State() != Visible {
		t.Errorf("State() = %v, want visible", m.State())
	}
	if shows != 1 {
		t.Errorf("OnShow called %d times, want 1", shows)
	}
}

func TestLeaveCancelsPendingShow(t *testing.T) {
	m := New(time.Second, time.Second)
	shows := 0
	m.OnShow(func() { shows++ })

	m.Enter()
	stale := pending(m)
	if cmd := m.Leave(); cmd != nil {
		t.Error("Leave() from pending-show should not schedule anything")
	}
	if m.State() != Hidden {
		t.Errorf("State() = %v, want hidden", m.State())
	}

	m.Update(stale)
	if m.State() != Hidden || shows != 0 {
		t.Errorf("stale tick changed state to %v with %d shows", m.State(), shows)
	}
}

func TestLeaveHidesAfterDelay(t *testing.T) {
	m := New(time.Second, time.Second)
	hides := 0
	m.OnHide(func() { hides++ })

	m.Enter()
	m.Update(pending(m))

	if cmd := m.Leave(); cmd == nil {
		t.Fatal("Leave() from visible should schedule a tick")
	}
	if m.State() != PendingHide {
		t.Errorf("State() = %v, want pending-hide", m.State())
	}
	if !m.Visible() {
		t.Error("Visible() should stay true while pending hide")
	}

	m.Update(pending(m))
	if m.State() != Hidden {
		t.Errorf("State() = %v, want hidden", m.State())
	}
	if hides != 1 {
		t.Errorf("OnHide called %d times, want 1", hides)
	}
}

func TestEnterCancelsPendingHide(t *testing.T) {
	m := New(time.Second, time.Second)
	shows, hides := 0, 0
	m.OnShow(func() { shows++ })
	m.OnHide(func() { hides++ })

	m.Enter()
	m.Update(pending(m))
	m.Leave()
	stale := pending(m)

	if cmd := m.Enter(); cmd != nil {
		t.Error("Enter() from pending-hide should not schedule anything")
	}
	if m.State() != Visible {
		t.Errorf("State() = %v, want visible", m.State())
	}

	m.Update(stale)
	if m.State() != Visible {
		t.Errorf("stale hide tick moved state to %v", m.State())
	}
	if shows != 1 || hides != 0 {
		t.Errorf("shows=%d hides=%d, want 1 and 0", shows, hides)
	}
}

func TestRepeatedTriggersAreIdempotent(t *testing.T) {
	m := New(time.Second, time.Second)
	m.Enter()
	if cmd := m.Enter(); cmd != nil {
		t.Error("second Enter() should not schedule another tick")
	}
	if m.State() != PendingShow {
		t.Errorf("State() = %v, want pending-show", m.State())
	}

	m2 := New(time.Second, time.Second)
	if cmd := m2.Leave(); cmd != nil {
		t.Error("Leave() while hidden should do nothing")
	}
}

func TestZeroDelaysSwitchImmediately(t *testing.T) {
	m := New(0, 0)
	shows, hides := 0, 0
	m.OnShow(func() { shows++ })
	m.OnHide(func() { hides++ })

	if cmd := m.Enter(); cmd != nil {
		t.Error("Enter() with zero delay should not schedule")
	}
	if m.State() != Visible || shows != 1 {
		t.Errorf("State() = %v shows=%d, want visible and 1", m.State(), shows)
	}
	if cmd := m.Leave(); cmd != nil {
		t.Error("Leave() with zero delay should not schedule")
	}
	if m.State() != Hidden || hides != 1 {
		t.Errorf("State() = %v hides=%d, want hidden and 1", m.State(), hides)
	}
}

func TestTicksForOtherMachinesIgnored(t *testing.T) {
	a := New(time.Second, time.Second)
	b := New(time.Second, time.Second)
	if a.ID() == b.ID() {
		t.Fatal("machines should have distinct IDs")
	}

	a.Enter()
	b.Enter()
	b.Update(TickMsg{ID: a.ID(), tag: a.tag})
	if b.State() != PendingShow {
		t.Errorf("b.State() = %v after a's tick, want pending-show", b.State())
	}
	b.Update("not a tick")
	if b.State() != PendingShow {
		t.Errorf("b.State() = %v after unrelated msg, want pending-show", b.State())
	}
}

func TestToggle(t *testing.T) {
	m := New(0, 0)
	m.Toggle()
	if m.State() != Visible {
		t.Errorf("State() = %v after first toggle, want visible", m.State())
	}
	m.Toggle()
	if m.State() != Hidden {
		t.Errorf("State() = %v after second toggle, want hidden", m.State())
	}
}

func TestReset(t *testing.T) {
	m := New(time.Second, time.Second)
	hides := 0
	m.OnHide(func() { hides++ })

	m.Enter()
	stale := pending(m)
	m.Reset()
	m.Update(stale)
	if m.State() != Hidden || hides != 0 {
		t.Errorf("after reset from pending-show: state=%v hides=%d", m.State(), hides)
	}

	m.Enter()
	m.Update(pending(m))
	m.Reset()
	if m.State() != Hidden || hides != 1 {
		t.Errorf("after reset from visible: state=%v hides=%d", m.State(), hides)
	}
}
