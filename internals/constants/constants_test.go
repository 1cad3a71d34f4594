package constants

import "testing"

func TestNormalizePriority(t *testing.T) {
	cases := map[string]string{
		"LOW":    PriorityLow,
		"low":    PriorityLow,
		"HIGH":   PriorityHigh,
		" high ": PriorityHigh,
		"MEDIUM": PriorityNormal,
		"medium": PriorityNormal,
		"NORMAL": PriorityNormal,
		"":       PriorityNormal,
		"URGENT": PriorityNormal,
	}
	for in, want := range cases {
		if got := NormalizePriority(in); got != want {
			t.Fatalf("NormalizePriority(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range Statuses {
		if !IsValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if IsValidStatus("DONE") {
		t.Fatalf("DONE should not be a valid status")
	}
	if IsValidStatus("todo") {
		t.Fatalf("statuses are case-sensitive, todo should be invalid")
	}
}
