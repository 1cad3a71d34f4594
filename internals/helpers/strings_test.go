package helper

import "testing"

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"plain":      "plain",
		"50% off":    `50\% off`,
		"snake_case": `snake\_case`,
		`back\slash`: `back\\slash`,
		`mix%_\done`: `mix\%\_\\done`,
		"":           "",
	}
	for in, want := range cases {
		if got := EscapeLike(in); got != want {
			t.Fatalf("EscapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTrimPtr(t *testing.T) {
	if got := TrimPtr(nil); got != nil {
		t.Fatalf("TrimPtr(nil) = %v, want nil", got)
	}

	empty := "   "
	if got := TrimPtr(&empty); got != nil {
		t.Fatalf("TrimPtr(blank) = %v, want nil", got)
	}

	padded := "  hello  "
	got := TrimPtr(&padded)
	if got == nil || *got != "hello" {
		t.Fatalf("TrimPtr(padded) = %v, want hello", got)
	}
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}
	pg := BuildPagination(25, p)

	if pg.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Fatalf("page 2 of 3 should have both next and prev")
	}

	pg = BuildPagination(0, Paging{Page: 1, PerPage: 10})
	if pg.TotalPages != 1 || pg.HasNext || pg.HasPrev {
		t.Fatalf("empty result should collapse to one page, got %+v", pg)
	}
}
