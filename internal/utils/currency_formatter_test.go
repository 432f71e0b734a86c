package utils

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{999, "Rp 999"},
		{1000, "Rp 1.000"},
		{50000, "Rp 50.000"},
		{1234567, "Rp 1.234.567"},
		{-20000, "Rp -20.000"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.in); got != tc.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
