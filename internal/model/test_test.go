package model

import "testing"

func TestFeedsMastery(t *testing.T) {
	tests := []struct {
		purpose TestPurpose
		want    bool
	}{
		{PurposeFormative, true},
		{PurposeSummative, true},
		{PurposeDiagnostic, false},
		{PurposePractice, false},
	}

	for _, tt := range tests {
		if got := tt.purpose.FeedsMastery(); got != tt.want {
			t.Errorf("%s.FeedsMastery() = %v, want %v", tt.purpose, got, tt.want)
		}
	}
}

func TestTotalPoints(t *testing.T) {
	test := &Test{Questions: []Question{
		{Points: 1},
		{Points: 2.5},
		{Points: 2},
	}}
	if got := test.TotalPoints(); got != 5.5 {
		t.Errorf("TotalPoints() = %v, want 5.5", got)
	}

	empty := &Test{}
	if got := empty.TotalPoints(); got != 0 {
		t.Errorf("TotalPoints() on empty test = %v, want 0", got)
	}
}
