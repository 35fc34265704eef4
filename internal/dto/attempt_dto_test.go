package dto

import (
	"testing"
	"time"

	"github.com/lshigami/Lorikeets/internal/model"
)

func sampleAttempt() *model.TestAttempt {
	yes := true
	return &model.TestAttempt{
		ID:        7,
		PublicID:  "e5a1c2b4",
		TestID:    3,
		StudentID: 42,
		StartedAt: time.Now(),
		Test: model.Test{
			ID:    3,
			Title: "Cell Biology Checkpoint",
			Questions: []model.Question{
				{
					ID: 1, OrderInTest: 1, Type: model.SingleChoice, Points: 1,
					Explanation: "Mitochondria produce ATP.",
					Options: []model.Option{
						{ID: 10, IsCorrect: true},
						{ID: 11},
					},
				},
				{ID: 2, OrderInTest: 2, Type: model.ShortAnswer, Points: 2},
			},
		},
		Answers: []model.Answer{
			{QuestionID: 1, SelectedOptionIDs: []uint{10}, IsCorrect: &yes, PointsEarned: 1},
		},
	}
}

func TestNewAttemptDetailWithholdsKeysInProgress(t *testing.T) {
	attempt := sampleAttempt()
	attempt.Status = model.AttemptInProgress

	detail := NewAttemptDetail(attempt, false)

	if len(detail.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(detail.Questions))
	}
	answered := detail.Questions[0]
	if !answered.Answered {
		t.Error("question 1 should be marked answered")
	}
	if answered.IsCorrect != nil {
		t.Error("IsCorrect must be withheld while in progress")
	}
	if answered.PointsEarned != nil {
		t.Error("PointsEarned must be withheld while in progress")
	}
	if answered.CorrectOptionIDs != nil {
		t.Error("CorrectOptionIDs must be withheld while in progress")
	}
	if answered.Explanation != "" {
		t.Error("Explanation must be withheld while in progress")
	}
	if unanswered := detail.Questions[1]; unanswered.Answered {
		t.Error("question 2 should not be marked answered")
	}
}

func TestNewAttemptDetailIncludesKeysWhenCompleted(t *testing.T) {
	attempt := sampleAttempt()
	attempt.Status = model.AttemptCompleted

	detail := NewAttemptDetail(attempt, true)

	answered := detail.Questions[0]
	if answered.IsCorrect == nil || !*answered.IsCorrect {
		t.Errorf("IsCorrect = %v, want true", answered.IsCorrect)
	}
	if answered.PointsEarned == nil || *answered.PointsEarned != 1 {
		t.Errorf("PointsEarned = %v, want 1", answered.PointsEarned)
	}
	if len(answered.CorrectOptionIDs) != 1 || answered.CorrectOptionIDs[0] != 10 {
		t.Errorf("CorrectOptionIDs = %v, want [10]", answered.CorrectOptionIDs)
	}
	if answered.Explanation == "" {
		t.Error("Explanation should be included after completion")
	}

	// Keys come back even for questions left unanswered.
	if unanswered := detail.Questions[1]; unanswered.Answered {
		t.Error("question 2 should not be marked answered")
	}
}
