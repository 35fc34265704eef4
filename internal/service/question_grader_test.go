package service

import (
	"testing"

	"github.com/lshigami/Lorikeets/internal/apperr"
	"github.com/lshigami/Lorikeets/internal/model"
)

func choiceQuestion(qType model.QuestionType, points float64, correctIDs ...uint) *model.Question {
	q := &model.Question{ID: 1, Type: qType, Points: points}
	correct := make(map[uint]bool, len(correctIDs))
	for _, id := range correctIDs {
		correct[id] = true
	}
	for _, id := range []uint{10, 11, 12, 13} {
		q.Options = append(q.Options, model.Option{ID: id, IsCorrect: correct[id]})
	}
	return q
}

func answerWith(ids ...uint) *model.Answer {
	return &model.Answer{SelectedOptionIDs: ids}
}

func TestGradeSingleChoice(t *testing.T) {
	grader := NewQuestionGrader()
	question := choiceQuestion(model.SingleChoice, 2, 11)

	tests := []struct {
		name       string
		answer     *model.Answer
		wantPoints float64
		wantRight  bool
	}{
		{"correct option", answerWith(11), 2, true},
		{"wrong option", answerWith(12), 0, false},
		{"multiple selections are wrong", answerWith(11, 12), 0, false},
		{"unanswered", &model.Answer{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := grader.Grade(question, tt.answer)
			if err != nil {
				t.Fatalf("Grade() error = %v", err)
			}
			if got.IsCorrect == nil || *got.IsCorrect != tt.wantRight {
				t.Errorf("IsCorrect = %v, want %v", got.IsCorrect, tt.wantRight)
			}
			if got.PointsEarned != tt.wantPoints {
				t.Errorf("PointsEarned = %v, want %v", got.PointsEarned, tt.wantPoints)
			}
		})
	}
}

func TestGradeTrueFalse(t *testing.T) {
	grader := NewQuestionGrader()
	question := &model.Question{
		ID: 2, Type: model.TrueFalse, Points: 1,
		Options: []model.Option{
			{ID: 20, Text: "True", IsCorrect: true},
			{ID: 21, Text: "False"},
		},
	}

	got, err := grader.Grade(question, answerWith(20))
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if got.IsCorrect == nil || !*got.IsCorrect || got.PointsEarned != 1 {
		t.Errorf("correct true/false answer graded as %+v", got)
	}

	got, err = grader.Grade(question, answerWith(21))
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if got.IsCorrect == nil || *got.IsCorrect || got.PointsEarned != 0 {
		t.Errorf("wrong true/false answer graded as %+v", got)
	}
}

func TestGradeMultipleChoiceAllOrNothing(t *testing.T) {
	grader := NewQuestionGrader()
	question := choiceQuestion(model.MultipleChoice, 3, 10, 12)

	tests := []struct {
		name      string
		answer    *model.Answer
		wantRight bool
	}{
		{"exact set", answerWith(10, 12), true},
		{"order does not matter", answerWith(12, 10), true},
		{"subset earns nothing", answerWith(10), false},
		{"superset earns nothing", answerWith(10, 12, 13), false},
		{"disjoint set", answerWith(11, 13), false},
		{"duplicate ids do not fake a full set", answerWith(10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := grader.Grade(question, tt.answer)
			if err != nil {
				t.Fatalf("Grade() error = %v", err)
			}
			if got.IsCorrect == nil || *got.IsCorrect != tt.wantRight {
				t.Errorf("IsCorrect = %v, want %v", got.IsCorrect, tt.wantRight)
			}
			wantPoints := 0.0
			if tt.wantRight {
				wantPoints = 3
			}
			if got.PointsEarned != wantPoints {
				t.Errorf("PointsEarned = %v, want %v", got.PointsEarned, wantPoints)
			}
		})
	}
}

func TestGradeShortAnswerDeferred(t *testing.T) {
	grader := NewQuestionGrader()
	question := &model.Question{ID: 3, Type: model.ShortAnswer, Points: 5}

	got, err := grader.Grade(question, &model.Answer{AnswerText: "photosynthesis"})
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if got.IsCorrect != nil {
		t.Errorf("short answer IsCorrect = %v, want nil until reviewed", *got.IsCorrect)
	}
	if got.PointsEarned != 0 {
		t.Errorf("short answer PointsEarned = %v, want 0 until reviewed", got.PointsEarned)
	}

	// An empty short answer is wrong outright, not pending review.
	got, err = grader.Grade(question, &model.Answer{})
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if got.IsCorrect == nil || *got.IsCorrect {
		t.Errorf("unanswered short answer IsCorrect = %v, want false", got.IsCorrect)
	}
}

func TestGradeRejectsCorruptQuestions(t *testing.T) {
	grader := NewQuestionGrader()

	noCorrect := &model.Question{
		ID: 4, Type: model.SingleChoice, Points: 1,
		Options: []model.Option{{ID: 30}, {ID: 31}},
	}
	if _, err := grader.Grade(noCorrect, answerWith(30)); !apperr.IsDataIntegrity(err) {
		t.Errorf("question without a correct option: err = %v, want data integrity error", err)
	}

	unknown := &model.Question{ID: 5, Type: "essay", Points: 1}
	if _, err := grader.Grade(unknown, &model.Answer{AnswerText: "x"}); !apperr.IsDataIntegrity(err) {
		t.Errorf("unknown question type: err = %v, want data integrity error", err)
	}
}
