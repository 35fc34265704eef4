package service

import (
	"math"
	"testing"

	"github.com/lshigami/Lorikeets/internal/model"
)

func TestParagraphStatusFor(t *testing.T) {
	tests := []struct {
		name      string
		bestScore float64
		want      model.MasteryStatus
	}{
		{"well above mastery", 0.95, model.StatusMastered},
		{"exactly at 0.85 is mastered", 0.85, model.StatusMastered},
		{"just under 0.85", 0.8499, model.StatusProgressing},
		{"exactly at 0.60 is progressing", 0.60, model.StatusProgressing},
		{"just under 0.60", 0.5999, model.StatusStruggling},
		{"zero", 0, model.StatusStruggling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParagraphStatusFor(tt.bestScore); got != tt.want {
				t.Errorf("ParagraphStatusFor(%v) = %s, want %s", tt.bestScore, got, tt.want)
			}
		})
	}
}

func TestNextAverage(t *testing.T) {
	tests := []struct {
		name       string
		oldAverage float64
		oldCount   int
		score      float64
		want       float64
	}{
		{"second attempt", 0.8, 1, 0.6, 0.7},
		{"third attempt", 0.7, 2, 1.0, 0.8},
		{"long history barely moves", 0.5, 9, 1.0, 0.55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextAverage(tt.oldAverage, tt.oldCount, tt.score)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("nextAverage(%v, %d, %v) = %v, want %v", tt.oldAverage, tt.oldCount, tt.score, got, tt.want)
			}
		})
	}
}

func TestNextAverageMatchesFullRecompute(t *testing.T) {
	// Folding scores in one at a time must agree with averaging the whole
	// series, since the record never reloads full history.
	scores := []float64{0.4, 0.9, 0.65, 1.0, 0.3, 0.85}

	avg := scores[0]
	var sum float64
	for i, s := range scores {
		sum += s
		if i > 0 {
			avg = nextAverage(avg, i, s)
		}
		want := sum / float64(i+1)
		if math.Abs(avg-want) > 1e-9 {
			t.Fatalf("after %d scores: running average = %v, want %v", i+1, avg, want)
		}
	}
}
