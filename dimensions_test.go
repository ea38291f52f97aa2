package resval

import "testing"

func TestDimensions_Valid(t *testing.T) {
	cases := map[Dimensions]bool{
		{Width: 375, Height: 812}: true,
		{Width: 0, Height: 812}:   false,
		{Width: 375, Height: -1}:  false,
		{}:                        false,
	}
	for d, want := range cases {
		if got := d.Valid(); got != want {
			t.Errorf("%s: expected %v, got %v", d, want, got)
		}
	}
}

func TestDimensions_Orientation(t *testing.T) {
	if o := (Dimensions{Width: 375, Height: 812}).Orientation(); o != Portrait {
		t.Errorf("expected portrait, got %s", o)
	}
	if o := (Dimensions{Width: 812, Height: 375}).Orientation(); o != Landscape {
		t.Errorf("expected landscape, got %s", o)
	}
	if o := (Dimensions{Width: 500, Height: 500}).Orientation(); o != Portrait {
		t.Errorf("expected square to be portrait, got %s", o)
	}
}

func TestDimensions_String(t *testing.T) {
	if s := (Dimensions{Width: 187.5, Height: 812}).String(); s != "187.5x812" {
		t.Errorf("expected '187.5x812', got %q", s)
	}
}

func TestOrientation_String(t *testing.T) {
	if s := Orientation(7).String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}
