package validate

import (
	"strings"
	"testing"
	"time"
)

func TestWeight(t *testing.T) {
	if _, ok := Weight("5"); !ok {
		t.Fatal("5 kg should be valid")
	}
	if w, ok := Weight(" 0.5 "); !ok || w != 0.5 {
		t.Fatalf("0.5 kg is the floor, got %v %v", w, ok)
	}
	if _, ok := Weight("100"); !ok {
		t.Fatal("100 kg is the cap")
	}
	for _, bad := range []string{"", "abc", "0.4", "100.5", "-3"} {
		if _, ok := Weight(bad); ok {
			t.Errorf("weight %q should be invalid", bad)
		}
	}
}

func TestAddress(t *testing.T) {
	if _, ok := Address(strings.Repeat("a", 9)); ok {
		t.Error("9 chars should fail")
	}
	if got, ok := Address("  " + strings.Repeat("a", 10) + "  "); !ok || len(got) != 10 {
		t.Error("trimmed 10 chars should pass")
	}
	if _, ok := Address(strings.Repeat("a", 500)); !ok {
		t.Error("500 chars should pass")
	}
	if _, ok := Address(strings.Repeat("a", 501)); ok {
		t.Error("501 chars should fail")
	}
	// Multi-byte input is measured in characters, not bytes.
	if _, ok := Address(strings.Repeat("ä", 10)); !ok {
		t.Error("10 multi-byte chars should pass")
	}
	if _, ok := Address(strings.Repeat("ä", 500)); !ok {
		t.Error("500 multi-byte chars should pass")
	}
	if _, ok := Address(strings.Repeat("ä", 9)); ok {
		t.Error("9 multi-byte chars should fail")
	}
}

func TestNotes(t *testing.T) {
	if got, ok := Notes("   "); !ok || got != "" {
		t.Error("blank notes collapse to empty")
	}
	if _, ok := Notes(strings.Repeat("n", 1000)); !ok {
		t.Error("1000 chars should pass")
	}
	if _, ok := Notes(strings.Repeat("n", 1001)); ok {
		t.Error("1001 chars should fail")
	}
	if _, ok := Notes(strings.Repeat("ü", 1000)); !ok {
		t.Error("1000 multi-byte chars should pass")
	}
}

func TestPickupDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	if _, ok := PickupDate("2026-03-11", now); !ok {
		t.Error("tomorrow should pass")
	}
	if _, ok := PickupDate("2026-04-01", now); !ok {
		t.Error("later date should pass")
	}
	for _, bad := range []string{"", "2026-03-10", "2026-03-09", "11-03-2026", "not-a-date"} {
		if _, ok := PickupDate(bad, now); ok {
			t.Errorf("date %q should be rejected", bad)
		}
	}
}
