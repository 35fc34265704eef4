package service

import (
	"github.com/lshigami/Lorikeets/internal/apperr"
	"github.com/lshigami/Lorikeets/internal/model"
)

// GradeResult is the outcome of grading one answer against one question.
// IsCorrect is tri-state: nil means grading is deferred (short answers wait
// for a reviewer), which is expected and must not be conflated with failure.
type GradeResult struct {
	IsCorrect    *bool
	PointsEarned float64
}

// QuestionGrader scores one answer against one question definition. Pure
// computation, no I/O.
type QuestionGrader interface {
	Grade(question *model.Question, answer *model.Answer) (GradeResult, error)
}

type questionGrader struct{}

func NewQuestionGrader() QuestionGrader {
	return &questionGrader{}
}

func (g *questionGrader) Grade(question *model.Question, answer *model.Answer) (GradeResult, error) {
	// An empty answer is wrong regardless of question type.
	if answer == nil || !answer.IsAnswered() {
		return incorrect(), nil
	}

	switch question.Type {
	case model.SingleChoice, model.TrueFalse:
		return gradeSingleSelection(question, answer)
	case model.MultipleChoice:
		return gradeMultipleSelection(question, answer)
	case model.ShortAnswer:
		// Reserved for manual review; the engine never scores free text itself.
		return GradeResult{IsCorrect: nil, PointsEarned: 0}, nil
	default:
		return GradeResult{}, apperr.DataIntegrityf(
			"question %d has unknown type %q, no grading rule exists", question.ID, question.Type)
	}
}

func gradeSingleSelection(question *model.Question, answer *model.Answer) (GradeResult, error) {
	correctIDs := question.CorrectOptionIDs()
	if len(correctIDs) == 0 {
		return GradeResult{}, apperr.DataIntegrityf(
			"question %d (%s) has no correct option configured", question.ID, question.Type)
	}

	// Exactly one selection matching the unique correct option. Multiple
	// selections on a single-choice question are wrong, not ambiguous.
	if len(answer.SelectedOptionIDs) != 1 || answer.SelectedOptionIDs[0] != correctIDs[0] {
		return incorrect(), nil
	}
	return correct(question.Points), nil
}

func gradeMultipleSelection(question *model.Question, answer *model.Answer) (GradeResult, error) {
	correctIDs := question.CorrectOptionIDs()
	if len(correctIDs) == 0 {
		return GradeResult{}, apperr.DataIntegrityf(
			"question %d (%s) has no correct option configured", question.ID, question.Type)
	}

	// All-or-nothing set equality: any missing or extra selection scores zero.
	if len(answer.SelectedOptionIDs) != len(correctIDs) {
		return incorrect(), nil
	}
	selected := make(map[uint]bool, len(answer.SelectedOptionIDs))
	for _, id := range answer.SelectedOptionIDs {
		selected[id] = true
	}
	if len(selected) != len(correctIDs) {
		return incorrect(), nil
	}
	for _, id := range correctIDs {
		if !selected[id] {
			return incorrect(), nil
		}
	}
	return correct(question.Points), nil
}

func correct(points float64) GradeResult {
	yes := true
	return GradeResult{IsCorrect: &yes, PointsEarned: points}
}

func incorrect() GradeResult {
	no := false
	return GradeResult{IsCorrect: &no, PointsEarned: 0}
}
