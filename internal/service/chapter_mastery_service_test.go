package service

import (
	"math"
	"testing"

	"github.com/lshigami/Lorikeets/internal/model"
)

const eps = 1e-9

func TestClassifyChapterLevelInsufficientData(t *testing.T) {
	for _, scores := range [][]float64{nil, {0.9}, {0.9, 0.95}} {
		got := ClassifyChapterLevel(scores)
		if got.Level != model.LevelC || got.Score != 0 {
			t.Errorf("ClassifyChapterLevel(%v) = (%s, %v), want (C, 0) below 3 attempts", scores, got.Level, got.Score)
		}
		if got.Sufficient {
			t.Errorf("ClassifyChapterLevel(%v).Sufficient = true, want false", scores)
		}
	}
}

func TestClassifyChapterLevel(t *testing.T) {
	tests := []struct {
		name string
		// fractions, newest first
		scores    []float64
		wantLevel model.MasteryLevel
		wantScore float64
	}{
		{
			// Weighted avg lands at 83.5, just under the A cutoff, with a
			// strongly positive trend of 31.5. The trend bonus belongs to the
			// A branch only, so the score stays at the weighted average.
			name:      "strong recent improvement stays B below the cutoff",
			scores:    []float64{0.9, 0.88, 0.92, 0.6, 0.55},
			wantLevel: model.LevelB,
			wantScore: 83.5,
		},
		{
			name:      "perfect record",
			scores:    []float64{1, 1, 1, 1, 1},
			wantLevel: model.LevelA,
			wantScore: 100,
		},
		{
			// Weighted avg 93.35, trend +15: the A score gets the 0.2x trend
			// bonus on top.
			name:      "high scores with positive trend",
			scores:    []float64{1, 0.95, 0.9, 0.85, 0.8},
			wantLevel: model.LevelA,
			wantScore: 96.35,
		},
		{
			// Weighted avg 87.75 with a slightly negative trend still earns A
			// because the scores are tightly clustered (stddev well under 10).
			name:      "consistent high scores with flat trend",
			scores:    []float64{0.86, 0.9, 0.88},
			wantLevel: model.LevelA,
			wantScore: 87.55,
		},
		{
			// Weighted avg 90 but one bad outlier pushes stddev past 10 and
			// the trend negative, so A is denied and B takes over.
			name:      "volatile high scores fall back to B",
			scores:    []float64{1, 0.6, 1, 1, 1},
			wantLevel: model.LevelB,
			wantScore: 90,
		},
		{
			// Weighted avg 50.3125 under 60 is C outright; the positive trend
			// adjustment still applies inside the C branch.
			name:      "low scores",
			scores:    []float64{0.5, 0.55, 0.45},
			wantLevel: model.LevelC,
			wantScore: 50.81,
		},
		{
			// Weighted avg 61.5 sits in the 60-70 band, but the trend of -14
			// drags it into C.
			name:      "mid scores declining sharply",
			scores:    []float64{0.52, 0.6, 0.8},
			wantLevel: model.LevelC,
			wantScore: 58.7,
		},
		{
			name:      "renormalized weights at 4 attempts",
			scores:    []float64{0.8, 0.8, 0.8, 0.8},
			wantLevel: model.LevelB,
			wantScore: 80,
		},
		{
			// A 6th attempt outside the window must not change anything.
			name:      "window truncates to 5 newest",
			scores:    []float64{1, 1, 1, 1, 1, 0},
			wantLevel: model.LevelA,
			wantScore: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyChapterLevel(tt.scores)
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %s, want %s (wavg=%v trend=%v stddev=%v)",
					got.Level, tt.wantLevel, got.WeightedAvg, got.Trend, got.StdDev)
			}
			if math.Abs(got.Score-tt.wantScore) > 0.005 {
				t.Errorf("Score = %v, want %v", got.Score, tt.wantScore)
			}
			if !got.Sufficient {
				t.Error("Sufficient = false, want true")
			}
		})
	}
}

func TestClassifyChapterLevelTrendOverlapAtThree(t *testing.T) {
	// With exactly 3 attempts the newest and oldest pairs share the middle
	// score: (90+70)/2 - (70+50)/2 = 20.
	got := ClassifyChapterLevel([]float64{0.9, 0.7, 0.5})
	if math.Abs(got.Trend-20) > eps {
		t.Errorf("Trend = %v, want 20", got.Trend)
	}
}

func TestClassifyChapterLevelWeightedAverage(t *testing.T) {
	got := ClassifyChapterLevel([]float64{0.9, 0.88, 0.92, 0.6, 0.55})
	if math.Abs(got.WeightedAvg-83.5) > eps {
		t.Errorf("WeightedAvg = %v, want 83.5", got.WeightedAvg)
	}
	if math.Abs(got.Trend-31.5) > eps {
		t.Errorf("Trend = %v, want 31.5", got.Trend)
	}
}
