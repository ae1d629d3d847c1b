package util

import "testing"

func TestStringInSlice(t *testing.T) {
	list := []string{"a", "b", "c"}
	if !StringInSlice("b", list) {
		t.Error("expected 'b' to be found")
	}
	if StringInSlice("d", list) {
		t.Error("did not expect 'd' to be found")
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "x", "y"); got != "x" {
		t.Errorf("expected 'x', got %q", got)
	}
	if got := Coalesce(0, 0, 3); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("expected zero value, got %q", got)
	}
}

func TestKeys(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	keys := Keys(m)
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
}

func TestMaxInt(t *testing.T) {
	if MaxInt(3, 7) != 7 {
		t.Error("expected 7")
	}
	if MaxInt(7, 3) != 7 {
		t.Error("expected 7")
	}
}
