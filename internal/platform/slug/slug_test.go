package slug_test

import (
	"strings"
	"testing"

	"genie/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"The Witness Seat":         "the-witness-seat",
		"  Breath / Body — Scan  ": "breath-body-scan",
		"???":                      "untitled",
	}
	for in, want := range cases {
		if got := slug.Make(in); got != want {
			t.Fatalf("slug.Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMakeTruncates(t *testing.T) {
	t.Parallel()
	got := slug.Make(strings.Repeat("ab ", 40))
	if len(got) > 48 || strings.HasSuffix(got, "-") {
		t.Fatalf("unexpected truncated slug %q", got)
	}
}
