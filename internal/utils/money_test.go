package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{22.995, 23.00},
		{16.254, 16.25},
		{26.0, 26.0},
		{0, 0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(26); got != "$26.00" {
		t.Fatalf("FormatMoney(26) = %q, want $26.00", got)
	}
	if got := FormatMoney(16.25); got != "$16.25" {
		t.Fatalf("FormatMoney(16.25) = %q, want $16.25", got)
	}
}
