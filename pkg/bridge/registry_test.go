package bridge

import (
	"strings"
	"testing"
	"time"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()
	s := r.Create("127.0.0.1:9999", "web", 3, time.Second)
	if !strings.HasPrefix(s.ID(), "session_") {
		t.Errorf("id = %q, want session_ prefix", s.ID())
	}
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}

	got, ok := r.Get(s.ID())
	if !ok || got != s {
		t.Fatalf("Get(%q) = (%v, %v)", s.ID(), got, ok)
	}
	if _, ok := r.Get("session_0"); ok {
		t.Error("Get on unknown id succeeded")
	}

	if !r.Remove(s.ID()) {
		t.Error("Remove reported missing for a registered session")
	}
	if r.Remove(s.ID()) {
		t.Error("second Remove reported success")
	}
	if r.Len() != 0 {
		t.Errorf("len after remove = %d, want 0", r.Len())
	}
}

func TestRegistryIDsUniqueUnderBurst(t *testing.T) {
	r := NewRegistry()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := r.Create("127.0.0.1:9999", "web", 1, time.Second)
		if seen[s.ID()] {
			t.Fatalf("duplicate id %q", s.ID())
		}
		seen[s.ID()] = true
	}
	if r.Len() != 100 {
		t.Errorf("len = %d, want 100", r.Len())
	}
}
