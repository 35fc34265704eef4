package service

import (
	"math"
	"testing"

	"github.com/lshigami/Lorikeets/internal/model"
)

func TestScoreCountsEveryQuestionInTotal(t *testing.T) {
	scorer := NewAttemptScorer()

	// Four questions worth 1+2+1+2 = 6 points, the last one a short answer
	// that has not been reviewed yet.
	questions := []model.Question{
		{ID: 1, Type: model.SingleChoice, Points: 1},
		{ID: 2, Type: model.MultipleChoice, Points: 2},
		{ID: 3, Type: model.TrueFalse, Points: 1},
		{ID: 4, Type: model.ShortAnswer, Points: 2},
	}
	answers := []model.Answer{
		{QuestionID: 1, PointsEarned: 1},
		{QuestionID: 2, PointsEarned: 2},
		{QuestionID: 3, PointsEarned: 0},
		{QuestionID: 4, PointsEarned: 0}, // ungraded
	}

	got := scorer.Score(questions, answers, 0.7)
	if got.TotalPoints != 6 {
		t.Errorf("TotalPoints = %v, want 6 (short answers count toward the denominator)", got.TotalPoints)
	}
	if got.PointsEarned != 3 {
		t.Errorf("PointsEarned = %v, want 3", got.PointsEarned)
	}
	if math.Abs(got.Score-0.5) > 1e-9 {
		t.Errorf("Score = %v, want 0.5", got.Score)
	}
	if got.Passed {
		t.Error("Passed = true, want false at passing score 0.7")
	}

	// After a reviewer grants full credit on the short answer the same fold
	// produces the passing verdict.
	answers[3].PointsEarned = 2
	got = scorer.Score(questions, answers, 0.7)
	if got.PointsEarned != 5 {
		t.Errorf("PointsEarned after review = %v, want 5", got.PointsEarned)
	}
	if !got.Passed {
		t.Errorf("Passed = false, want true at score %v", got.Score)
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	scorer := NewAttemptScorer()
	questions := []model.Question{{ID: 1, Points: 2}, {ID: 2, Points: 3}}
	answers := []model.Answer{{QuestionID: 1, PointsEarned: 2}, {QuestionID: 2, PointsEarned: 0}}

	first := scorer.Score(questions, answers, 0.5)
	second := scorer.Score(questions, answers, 0.5)
	if first != second {
		t.Errorf("rescoring an unchanged answer set changed the verdict: %+v vs %+v", first, second)
	}
}

func TestScoreEdgeCases(t *testing.T) {
	scorer := NewAttemptScorer()

	t.Run("zero total points", func(t *testing.T) {
		got := scorer.Score(nil, nil, 0.7)
		if got.Score != 0 {
			t.Errorf("Score = %v, want 0 when the test carries no points", got.Score)
		}
		if got.Passed {
			t.Error("Passed = true, want false when the test carries no points")
		}
	})

	t.Run("passing score boundary is inclusive", func(t *testing.T) {
		questions := []model.Question{{ID: 1, Points: 10}}
		answers := []model.Answer{{QuestionID: 1, PointsEarned: 7}}
		got := scorer.Score(questions, answers, 0.7)
		if !got.Passed {
			t.Errorf("score %v at passing score 0.7 should pass", got.Score)
		}
	})

	t.Run("answers for unknown questions are ignored", func(t *testing.T) {
		questions := []model.Question{{ID: 1, Points: 1}}
		answers := []model.Answer{
			{QuestionID: 1, PointsEarned: 1},
			{QuestionID: 99, PointsEarned: 5},
		}
		got := scorer.Score(questions, answers, 0.5)
		if got.PointsEarned != 1 {
			t.Errorf("PointsEarned = %v, want 1 (stray answer must not inflate the score)", got.PointsEarned)
		}
	})
}
