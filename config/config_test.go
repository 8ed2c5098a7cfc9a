package config

import (
	"testing"
	"time"
)

func TestStringFallsBackToDefault(t *testing.T) {
	if got := String("AGARI_TEST_MISSING", "dflt"); got != "dflt" {
		t.Fatalf("got %q, want default", got)
	}
	t.Setenv("AGARI_TEST_STR", "set")
	if got := String("AGARI_TEST_STR", "dflt"); got != "set" {
		t.Fatalf("got %q, want env value", got)
	}
}

func TestIntParsesAndRejects(t *testing.T) {
	t.Setenv("AGARI_TEST_INT", "42")
	if got := Int("AGARI_TEST_INT", 7); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	t.Setenv("AGARI_TEST_INT", "nope")
	if got := Int("AGARI_TEST_INT", 7); got != 7 {
		t.Fatalf("got %d, want default on parse failure", got)
	}
}

func TestFloatParsesAndRejects(t *testing.T) {
	t.Setenv("AGARI_TEST_FLOAT", "2.5")
	if got := Float("AGARI_TEST_FLOAT", 1.0); got != 2.5 {
		t.Fatalf("got %f, want 2.5", got)
	}
	t.Setenv("AGARI_TEST_FLOAT", "big")
	if got := Float("AGARI_TEST_FLOAT", 1.0); got != 1.0 {
		t.Fatalf("got %f, want default on parse failure", got)
	}
}

func TestDurationParsesAndRejects(t *testing.T) {
	t.Setenv("AGARI_TEST_DUR", "1m30s")
	if got := Duration("AGARI_TEST_DUR", time.Second); got != 90*time.Second {
		t.Fatalf("got %s, want 1m30s", got)
	}
	t.Setenv("AGARI_TEST_DUR", "soon")
	if got := Duration("AGARI_TEST_DUR", time.Second); got != time.Second {
		t.Fatalf("got %s, want default on parse failure", got)
	}
}
