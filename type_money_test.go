package pricebook

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		in        Money
		want      string
		truncated string
	}{
		{M(500), "$500", "$500"},
		{M(-250), "$-250", "$-250"},
		{M(-42.7), "$-43", "$-42"},
		{M(0), "$0", "$0"},
		{M(1234567), "$1234567", "$1234567"},
		{M(42.5), "$42", "$42"},
		{M(43.5), "$44", "$43"},
		{M(45.9), "$46", "$45"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("M(%s).String() = %q want %q", tc.in.Plain(), got, tc.want)
		}
		if got := tc.in.TruncatedString(); got != tc.truncated {
			t.Errorf("M(%s).TruncatedString() = %q want %q", tc.in.Plain(), got, tc.truncated)
		}
	}
}

func TestMoneyDiv(t *testing.T) {
	if got := M(100).Div(0); !got.IsZero() {
		t.Errorf("M(100).Div(0) = %s want 0", got.Plain())
	}
	if got := M(100).Div(8); got.Plain() != "12.5" {
		t.Errorf("M(100).Div(8) = %s want 12.5", got.Plain())
	}
}
