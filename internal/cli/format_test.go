package cli

import (
	"testing"
)

func TestFormatPnL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{200, "+200.00"},
		{-100, "-100.00"},
		{0, "0.00"},
		{0.85, "+0.85"},
	}
	for _, tc := range cases {
		if got := FormatPnL(tc.in); got != tc.want {
			t.Errorf("FormatPnL(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatScore(t *testing.T) {
	if got := FormatScore(55, 118); got != "55 / 118" {
		t.Errorf("FormatScore = %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := TruncateString("a very long note indeed", 10); got != "a very ..." {
		t.Errorf("got %q", got)
	}
	if got := TruncateString("abcdef", 3); got != "abc" {
		t.Errorf("got %q", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("01HZXW8K2M3N4P5Q6R7S8T9V0W"); got != "01HZXW8K2M" {
		t.Errorf("got %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("got %q", got)
	}
}

func TestPadLeft(t *testing.T) {
	if got := PadLeft("7", 4); got != "   7" {
		t.Errorf("got %q", got)
	}
	if got := PadLeft("12345", 4); got != "12345" {
		t.Errorf("got %q", got)
	}
}
