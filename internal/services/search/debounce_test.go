package search_test

import (
	"sync"
	"testing"
	"time"

	"cofau/internal/services/search"
)

type recorder struct {
	mu      sync.Mutex
	queries []string
}

func (r *recorder) fire(q string) {
	r.mu.Lock()
	r.queries = append(r.queries, q)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func TestDebouncer_OnlyLastQueryFires(t *testing.T) {
	rec := &recorder{}
	d := search.NewDebouncer(20*time.Millisecond, rec.fire)
	defer d.Stop()

	d.Trigger("p")
	d.Trigger("ph")
	d.Trigger("pho")

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if got := rec.snapshot(); len(got) > 0 {
			if len(got) != 1 || got[0] != "pho" {
				t.Fatalf("fired %v, want [pho]", got)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("debouncer never fired")
}

func TestDebouncer_SeparateQuietPeriods(t *testing.T) {
	rec := &recorder{}
	d := search.NewDebouncer(5*time.Millisecond, rec.fire)
	defer d.Stop()

	d.Trigger("ramen")
	time.Sleep(30 * time.Millisecond)
	d.Trigger("udon")
	time.Sleep(30 * time.Millisecond)

	if got := rec.snapshot(); len(got) != 2 || got[0] != "ramen" || got[1] != "udon" {
		t.Fatalf("fired %v, want [ramen udon]", got)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	rec := &recorder{}
	d := search.NewDebouncer(20*time.Millisecond, rec.fire)

	d.Trigger("sushi")
	d.Stop()
	d.Trigger("after stop")

	time.Sleep(60 * time.Millisecond)
	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("fired %v, want none", got)
	}
}
