package service

import "testing"

func TestShouldRecordTransition(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		next     string
		want     bool
	}{
		{"first creation has no previous", "", "progressing", false},
		{"unchanged status", "progressing", "progressing", false},
		{"upgrade", "progressing", "mastered", true},
		{"downgrade", "A", "B", true},
		{"unchanged level", "A", "A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldRecordTransition(tt.previous, tt.next); got != tt.want {
				t.Errorf("shouldRecordTransition(%q, %q) = %v, want %v", tt.previous, tt.next, got, tt.want)
			}
		})
	}
}
