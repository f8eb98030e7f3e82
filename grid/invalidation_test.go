package grid

import "testing"

func TestRegion_String(t *testing.T) {
	cases := []struct {
		r    Region
		want string
	}{
		{0, "none"},
		{RegionFormula, "formula"},
		{RegionBody | RegionSums, "body|sums"},
		{RegionHeader | RegionBody | RegionSums, "header|body|sums"},
	}
	for _, tc := range cases {
		if got := tc.r.String(); got != tc.want {
			t.Fatalf("Region(%d).String(): got %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestRegion_Has(t *testing.T) {
	r := RegionBody | RegionSums
	if !r.Has(RegionBody) || !r.Has(RegionBody|RegionSums) {
		t.Fatalf("expected body|sums to contain body and body|sums")
	}
	if r.Has(RegionHeader) || r.Has(RegionBody|RegionHeader) {
		t.Fatalf("body|sums must not contain header")
	}
	if r.Has(0) {
		t.Fatalf("Has(0) must be false")
	}
}
