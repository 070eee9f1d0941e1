package util

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestStripHash(t *testing.T) {
	tests := map[string]string{
		"#ff5733": "ff5733",
		"ff5733":  "ff5733",
		"##abc":   "#abc",
		"":        "",
	}
	for in, want := range tests {
		if got := StripHash(in); got != want {
			t.Errorf("StripHash(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHexEncodeDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		encoded string
	}{
		{name: "ascii", in: "hi", encoded: "00680069"},
		{name: "empty", in: "", encoded: ""},
		{name: "bmp", in: "é", encoded: "00e9"},
		{name: "surrogate pair", in: "😀", encoded: "d83dde00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexEncode(tt.in); got != tt.encoded {
				t.Errorf("HexEncode(%q) = %q, want %q", tt.in, got, tt.encoded)
			}
			if got := HexDecode(tt.encoded); got != tt.in {
				t.Errorf("HexDecode(%q) = %q, want %q", tt.encoded, got, tt.in)
			}
		})
	}
}

func TestFixedRound(t *testing.T) {
	tests := []struct {
		num      float64
		decimals int
		want     float64
	}{
		{num: 50.196, decimals: 1, want: 50.2},
		{num: 1.005, decimals: 0, want: 1},
		{num: 2.5, decimals: 0, want: 3},
		{num: -2.5, decimals: 0, want: -2},
		{num: -10.58, decimals: 0, want: -11},
		{num: 3.14159, decimals: 3, want: 3.142},
		{num: 7.7, decimals: -1, want: 8},
	}

	for _, tt := range tests {
		if got := FixedRound(tt.num, tt.decimals); got != tt.want {
			t.Errorf("FixedRound(%v, %d) = %v, want %v", tt.num, tt.decimals, got, tt.want)
		}
	}
}

func TestDiffAndUnique(t *testing.T) {
	if diff := cmp.Diff([]int{1, 3}, Diff([]int{1, 2, 3, 2}, []int{2, 4})); diff != "" {
		t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, Unique([]string{"b", "a", "b", "c", "a"})); diff != "" {
		t.Errorf("Unique() mismatch (-want +got):\n%s", diff)
	}
	if got := Unique([]int(nil)); len(got) != 0 {
		t.Errorf("Unique(nil) = %v, want empty", got)
	}
}

func TestAddHours(t *testing.T) {
	start := time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC)
	want := time.Date(2025, 3, 2, 1, 30, 0, 0, time.UTC)
	if got := AddHours(start, 3.5); !got.Equal(want) {
		t.Errorf("AddHours() = %v, want %v", got, want)
	}
}

func TestAddMonth(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		m     int
		want  time.Time
	}{
		{
			name:  "plain",
			start: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			m:     1,
			want:  time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "clamps to end of february",
			start: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			m:     1,
			want:  time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap year",
			start: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			m:     1,
			want:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "backwards across year",
			start: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			m:     -4,
			want:  time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonth(tt.start, tt.m); !got.Equal(tt.want) {
				t.Errorf("AddMonth() = %v, want %v", got, tt.want)
			}
		})
	}
}
