package webvtt

import (
	"math"
	"testing"
)

func TestParseTimestampUs(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"00:00.000", 0},
		{"00:02.000", 2_000_000},
		{"00:01.234", 1_234_000},
		{"01:02:03.456", 3_723_456_000},
		{"10:00:00.000", 36_000_000_000},
		// hours are allowed to exceed two digits
		{"142:05:00.000", (142*3600 + 5*60) * 1_000_000},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimestampUs(tc.in)
			if err != nil {
				t.Fatalf("ParseTimestampUs(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseTimestampUs(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseTimestampUs_Invalid(t *testing.T) {
	bad := []string{
		"",
		"00:02",       // no fractional part
		"00:02.00",    // fraction must be exactly three digits
		"00:02.0000",  // fraction must be exactly three digits
		"2.000",       // at least minutes and seconds required
		"1:2:3:4.000", // too many fields
		"0x:02.000",
		"00:02.abc",
		"-1:02.000",
	}
	for _, in := range bad {
		if _, err := ParseTimestampUs(in); err == nil {
			t.Errorf("ParseTimestampUs(%q) expected error, got none", in)
		}
	}
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"10%", 0.1},
		{"12.5%", 0.125},
		{"0%", 0},
		{"100%", 1.0},
		// out of range values are legal here, geometry clamps later
		{"-10%", -0.1},
		{"150%", 1.5},
	}
	for _, tc := range tests {
		got, err := ParsePercentage(tc.in)
		if err != nil {
			t.Fatalf("ParsePercentage(%q) unexpected error: %v", tc.in, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ParsePercentage(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParsePercentage_Invalid(t *testing.T) {
	for _, in := range []string{"", "50", "%", "abc%", "10 %"} {
		if _, err := ParsePercentage(in); err == nil {
			t.Errorf("ParsePercentage(%q) expected error, got none", in)
		}
	}
}
