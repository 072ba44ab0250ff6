package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-10-10")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, ok := ParseDate("10/10/2024"); ok {
		t.Fatalf("expected parse failure")
	}
	if _, ok := ParseDate(""); ok {
		t.Fatalf("expected parse failure for empty input")
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	s := "2024-03-31"
	d, ok := ParseDate(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if FormatDate(d) != s {
		t.Fatalf("round trip mismatch: %s", FormatDate(d))
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 7); got != 7 {
		t.Fatalf("expected default, got %d", got)
	}
	if got := ParseIntDefault("42", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := ParseIntDefault("x", 7); got != 7 {
		t.Fatalf("expected default for junk, got %d", got)
	}
}

func TestParseFloatDefault(t *testing.T) {
	if got := ParseFloatDefault("2.5", 1); got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
	if got := ParseFloatDefault("", 1); got != 1 {
		t.Fatalf("expected default, got %v", got)
	}
}
