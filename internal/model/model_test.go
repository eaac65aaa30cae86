package model

import (
	"fmt"
	"testing"
)

func TestIsSuppressed(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"sentinel", Suppress, true},
		{"nil", nil, false},
		{"empty string", "", false},
		{"sentinel text", "==SUPPRESS==", false},
		{"zero", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSuppressed(tt.v); got != tt.want {
				t.Fatalf("IsSuppressed(%#v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestSuppressString(t *testing.T) {
	if got := fmt.Sprint(Suppress); got != "==SUPPRESS==" {
		t.Fatalf("fmt.Sprint(Suppress) = %q", got)
	}
}
