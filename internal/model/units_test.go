package model

import "testing"

func TestFormatInches(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, `0"`},
		{15, `15"`},
		{0.71875, `23/32"`},
		{28.65625, `28-21/32"`},
		{0.5, `1/2"`},
		{13.25, `13-1/4"`},
		{0.125, `1/8"`},
		{-0.75, `-3/4"`},
		// Rounds to the nearest 1/32.
		{0.719, `23/32"`},
		{95.999, `96"`},
	}
	for _, tc := range cases {
		if got := FormatInches(tc.in); got != tc.want {
			t.Errorf("FormatInches(%g) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatDimension(t *testing.T) {
	if got := FormatDimension(1.0, UnitMetric); got != "25 mm" {
		t.Errorf("metric: got %s, want 25 mm", got)
	}
	if got := FormatDimension(0.71875, UnitImperial); got != `23/32"` {
		t.Errorf("imperial: got %s, want 23/32\"", got)
	}
}

func TestMaterialThicknessInches(t *testing.T) {
	imperial := MaterialThickness{Nominal: `3/4"`, ActualIn: 23.0 / 32.0}
	if imperial.Inches() != 23.0/32.0 {
		t.Errorf("imperial stock: got %g", imperial.Inches())
	}

	metric := MaterialThickness{MetricMM: 18}
	want := 18.0 / MMPerInch
	if metric.Inches() != want {
		t.Errorf("metric stock: got %g, want %g", metric.Inches(), want)
	}

	// MetricMM wins when both are set.
	both := MaterialThickness{ActualIn: 0.75, MetricMM: 18}
	if both.Inches() != want {
		t.Errorf("metric precedence: got %g, want %g", both.Inches(), want)
	}
}
