package iotext

import (
	"strings"
	"testing"
)

func TestDecodeCutSetValid(t *testing.T) {
	cut, err := DecodeCutSet(strings.NewReader("2 3 5"))
	if err != nil {
		t.Fatalf("DecodeCutSet() error = %v", err)
	}
	if len(cut) != 2 || cut[0] != 3 || cut[1] != 5 {
		t.Errorf("DecodeCutSet() = %v, want [3 5]", cut)
	}
}

func TestDecodeCutSetEmptyIsValid(t *testing.T) {
	cut, err := DecodeCutSet(strings.NewReader("0\n"))
	if err != nil {
		t.Fatalf("DecodeCutSet() error = %v", err)
	}
	if len(cut) != 0 {
		t.Errorf("DecodeCutSet() = %v, want empty", cut)
	}
}

func TestDecodeCutSetErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing count", ""},
		{"count exceeds max", "10001\n"},
		{"missing vertex", "2 1\n"},
		{"trailing data", "1 3 extra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeCutSet(strings.NewReader(tt.input)); err == nil {
				t.Errorf("DecodeCutSet(%q) should have errored", tt.input)
			}
		})
	}
}

func TestEncodeCutSetRoundTrip(t *testing.T) {
	want := []int{3, 5}
	var buf strings.Builder
	if err := EncodeCutSet(&buf, want); err != nil {
		t.Fatalf("EncodeCutSet() error = %v", err)
	}

	got, err := DecodeCutSet(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("DecodeCutSet() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("round trip: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("round trip: got %v, want %v", got, want)
		}
	}
}

func TestEncodeCutSetEmpty(t *testing.T) {
	var buf strings.Builder
	if err := EncodeCutSet(&buf, nil); err != nil {
		t.Fatalf("EncodeCutSet() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "0" {
		t.Errorf("EncodeCutSet(nil) = %q, want %q", buf.String(), "0")
	}
}
