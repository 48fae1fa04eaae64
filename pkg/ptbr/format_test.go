package ptbr

import "testing"

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{8000, "8.000"},
		{15000, "15.000"},
		{1234567, "1.234.567"},
		{-4500, "-4.500"},
	}

	for _, tt := range tests {
		if got := FormatInt(tt.in); got != tt.want {
			t.Errorf("FormatInt(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in       float64
		decimals int
		want     string
	}{
		{1234.5, 1, "1.234,5"},
		{10, 0, "10"},
		{5.04, 1, "5,0"},
		{-1000.25, 2, "-1.000,25"},
	}

	for _, tt := range tests {
		if got := FormatFloat(tt.in, tt.decimals); got != tt.want {
			t.Errorf("FormatFloat(%v, %d) = %q, want %q", tt.in, tt.decimals, got, tt.want)
		}
	}
}
