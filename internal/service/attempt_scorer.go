package service

import "github.com/lshigami/Lorikeets/internal/model"

// AttemptScore aggregates per-question gradings into an attempt verdict.
type AttemptScore struct {
	PointsEarned float64
	TotalPoints  float64
	Score        float64 // fraction in [0,1]
	Passed       bool
}

// AttemptScorer folds graded answers into the attempt-level score. Reapplying
// it to an unchanged answer set always yields the same result.
type AttemptScorer interface {
	Score(questions []model.Question, answers []model.Answer, passingScore float64) AttemptScore
}

type attemptScorer struct{}

func NewAttemptScorer() AttemptScorer {
	return &attemptScorer{}
}

func (s *attemptScorer) Score(questions []model.Question, answers []model.Answer, passingScore float64) AttemptScore {
	var result AttemptScore

	// Total includes every question of the test, ungraded short answers too:
	// the denominator is a static property of the test, not of what happened
	// to get auto-graded.
	known := make(map[uint]bool, len(questions))
	for _, q := range questions {
		result.TotalPoints += q.Points
		known[q.ID] = true
	}
	// Ungraded answers carry PointsEarned == 0 and contribute nothing until a
	// reviewer assigns a score.
	for _, a := range answers {
		if known[a.QuestionID] {
			result.PointsEarned += a.PointsEarned
		}
	}

	if result.TotalPoints > 0 {
		result.Score = result.PointsEarned / result.TotalPoints
	}
	result.Passed = result.Score >= passingScore
	return result
}
