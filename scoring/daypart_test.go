package scoring

import "testing"

func TestDaypartMultiplier(t *testing.T) {
	tests := []struct {
		hour  int
		mult  float64
		label string
	}{
		{0, 0.58, "Night Drop"},
		{4, 0.58, "Night Drop"},
		{5, 0.78, "Morning"},
		{9, 0.78, "Morning"},
		{10, 1.22, "Lunch Spike"},
		{13, 1.22, "Lunch Spike"},
		{14, 0.95, "Afternoon"},
		{16, 0.95, "Afternoon"},
		{17, 1.35, "Evening Peak"},
		{21, 1.35, "Evening Peak"},
		{22, 0.58, "Night Drop"},
		{23, 0.58, "Night Drop"},
	}

	for _, test := range tests {
		mult, label := DaypartMultiplier(test.hour)
		if mult != test.mult || label != test.label {
			t.Errorf("Hour %d: expected (%f, %s), got (%f, %s)",
				test.hour, test.mult, test.label, mult, label)
		}
	}
}

func TestDaypartMultiplier_WrapsOutOfRangeHours(t *testing.T) {
	// 24 wraps to 0, -1 wraps to 23; both are night.
	for _, hour := range []int{24, -1, 47, -24} {
		mult, label := DaypartMultiplier(hour)
		if label == "" {
			t.Errorf("Hour %d: expected a label, got empty", hour)
		}
		if mult <= 0 {
			t.Errorf("Hour %d: expected positive multiplier, got %f", hour, mult)
		}
	}

	mult, label := DaypartMultiplier(36)
	if mult != 1.22 || label != "Lunch Spike" {
		t.Errorf("Hour 36 should wrap to 12: got (%f, %s)", mult, label)
	}
}

func TestDayparts_CoverAllHours(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		mult, label := DaypartMultiplier(hour)
		if mult <= 0 || label == "" {
			t.Errorf("Hour %d not covered: (%f, %q)", hour, mult, label)
		}
	}
}
