package refresh

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu   sync.Mutex
	uris []string
}

func (r *recorder) emit(uri string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uris = append(r.uris, uri)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.uris))
	copy(out, r.uris)
	return out
}

func TestUpdate_CoalescesWithinWindow(t *testing.T) {
	rec := &recorder{}
	inv := NewInvalidator(50*time.Millisecond, rec.emit)
	defer inv.Close()

	for i := 0; i < 10; i++ {
		inv.Update("markdown:/a.md.rendered?u")
	}

	time.Sleep(150 * time.Millisecond)
	got := rec.snapshot()
	if len(got) != 1 {
		t.Fatalf("emissions = %d, want 1 (%v)", len(got), got)
	}
}

func TestUpdate_FirstURIWins(t *testing.T) {
	rec := &recorder{}
	inv := NewInvalidator(50*time.Millisecond, rec.emit)
	defer inv.Close()

	inv.Update("markdown:/a.md.rendered?a")
	inv.Update("markdown:/b.md.rendered?b") // dropped: window already armed

	time.Sleep(150 * time.Millisecond)
	got := rec.snapshot()
	if len(got) != 1 || got[0] != "markdown:/a.md.rendered?a" {
		t.Fatalf("emissions = %v, want the first URI only", got)
	}
}

func TestUpdate_SeparateWindows(t *testing.T) {
	rec := &recorder{}
	inv := NewInvalidator(30*time.Millisecond, rec.emit)
	defer inv.Close()

	inv.Update("u1")
	time.Sleep(100 * time.Millisecond)
	inv.Update("u2")
	time.Sleep(100 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 2 || got[0] != "u1" || got[1] != "u2" {
		t.Fatalf("emissions = %v, want [u1 u2]", got)
	}
}

func TestClose_SuppressesPendingEmission(t *testing.T) {
	rec := &recorder{}
	inv := NewInvalidator(50*time.Millisecond, rec.emit)

	inv.Update("u1")
	inv.Close()

	time.Sleep(150 * time.Millisecond)
	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("emissions after Close = %v, want none", got)
	}
	// Updates after Close are ignored.
	inv.Update("u2")
	if inv.Pending() {
		t.Error("closed invalidator must not arm a timer")
	}
}

func TestPending(t *testing.T) {
	rec := &recorder{}
	inv := NewInvalidator(50*time.Millisecond, rec.emit)
	defer inv.Close()

	if inv.Pending() {
		t.Error("fresh invalidator should not be pending")
	}
	inv.Update("u")
	if !inv.Pending() {
		t.Error("expected pending after Update")
	}
	time.Sleep(150 * time.Millisecond)
	if inv.Pending() {
		t.Error("expected idle after window elapsed")
	}
}
