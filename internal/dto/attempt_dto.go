package dto

import (
	"time"

	"github.com/lshigami/Lorikeets/internal/model"
)

// StartAttemptDTO identifies the student starting an attempt. Student
// identity comes from the request until the auth layer supplies it.
type StartAttemptDTO struct {
	StudentID uint `json:"student_id" binding:"required"`
}

// AttemptStartedDTO is returned from a successful start: the question set
// without answer keys.
type AttemptStartedDTO struct {
	AttemptID     uint                   `json:"attempt_id"`
	PublicID      string                 `json:"public_id"`
	TestID        uint                   `json:"test_id"`
	TestTitle     string                 `json:"test_title"`
	AttemptNumber int                    `json:"attempt_number"`
	StartedAt     time.Time              `json:"started_at"`
	Questions     []SanitizedQuestionDTO `json:"questions"`
}

// AnswerSubmitDTO carries one answer payload: option ids for choice types,
// free text for short answers.
type AnswerSubmitDTO struct {
	SelectedOptionIDs []uint `json:"selected_option_ids,omitempty"`
	AnswerText        string `json:"answer_text,omitempty"`
}

// AnswerFeedbackDTO is the immediate feedback of incremental answering.
// IsCorrect is null for short answers awaiting review.
type AnswerFeedbackDTO struct {
	AttemptID        uint    `json:"attempt_id"`
	QuestionID       uint    `json:"question_id"`
	IsCorrect        *bool   `json:"is_correct"`
	PointsEarned     float64 `json:"points_earned"`
	CorrectOptionIDs []uint  `json:"correct_option_ids,omitempty"`
	Explanation      string  `json:"explanation,omitempty"`
	AnsweredCount    int     `json:"answered_count"`
	TotalQuestions   int     `json:"total_questions"`
}

// BulkAnswerItemDTO is one answer inside a bulk submission.
type BulkAnswerItemDTO struct {
	QuestionID        uint   `json:"question_id" binding:"required"`
	SelectedOptionIDs []uint `json:"selected_option_ids,omitempty"`
	AnswerText        string `json:"answer_text,omitempty"`
}

// BulkAnswersDTO submits one answer per question; grading is deferred to the
// completion step.
type BulkAnswersDTO struct {
	Answers []BulkAnswerItemDTO `json:"answers" binding:"required,dive"`
}

// ReviewAnswerDTO assigns points to a short answer on a completed attempt.
type ReviewAnswerDTO struct {
	PointsEarned float64 `json:"points_earned"`
	ReviewerID   *uint   `json:"reviewer_id,omitempty"`
}

// AnsweredQuestionDTO is one question with its answer inside an attempt
// detail view. Key fields are only populated once the attempt is completed.
type AnsweredQuestionDTO struct {
	QuestionID  uint               `json:"question_id"`
	OrderInTest int                `json:"order_in_test"`
	Prompt      string             `json:"prompt"`
	Type        model.QuestionType `json:"type"`
	Points      float64            `json:"points"`

	SelectedOptionIDs []uint `json:"selected_option_ids,omitempty"`
	AnswerText        string `json:"answer_text,omitempty"`
	Answered          bool   `json:"answered"`

	// Withheld while the attempt is in progress.
	IsCorrect        *bool    `json:"is_correct,omitempty"`
	PointsEarned     *float64 `json:"points_earned,omitempty"`
	CorrectOptionIDs []uint   `json:"correct_option_ids,omitempty"`
	Explanation      string   `json:"explanation,omitempty"`
}

// AttemptDetailDTO is the full attempt view, answer keys gated by status.
type AttemptDetailDTO struct {
	AttemptID     uint                  `json:"attempt_id"`
	PublicID      string                `json:"public_id"`
	TestID        uint                  `json:"test_id"`
	TestTitle     string                `json:"test_title,omitempty"`
	StudentID     uint                  `json:"student_id"`
	AttemptNumber int                   `json:"attempt_number"`
	Status        model.AttemptStatus   `json:"status"`
	StartedAt     time.Time             `json:"started_at"`
	CompletedAt   *time.Time            `json:"completed_at,omitempty"`
	TimeSpent     int                   `json:"time_spent"`
	Score         *float64              `json:"score,omitempty"`
	PointsEarned  *float64              `json:"points_earned,omitempty"`
	TotalPoints   float64               `json:"total_points"`
	Passed        *bool                 `json:"passed,omitempty"`
	Questions     []AnsweredQuestionDTO `json:"questions"`
}

// NewAttemptDetail builds the attempt view from a fully preloaded attempt.
// When includeKeys is false, correctness, correct options and explanations
// are stripped.
func NewAttemptDetail(attempt *model.TestAttempt, includeKeys bool) AttemptDetailDTO {
	detail := AttemptDetailDTO{
		AttemptID:     attempt.ID,
		PublicID:      attempt.PublicID,
		TestID:        attempt.TestID,
		TestTitle:     attempt.Test.Title,
		StudentID:     attempt.StudentID,
		AttemptNumber: attempt.AttemptNumber,
		Status:        attempt.Status,
		StartedAt:     attempt.StartedAt,
		CompletedAt:   attempt.CompletedAt,
		TimeSpent:     attempt.TimeSpent,
		Score:         attempt.Score,
		PointsEarned:  attempt.PointsEarned,
		TotalPoints:   attempt.TotalPoints,
		Passed:        attempt.Passed,
	}

	answersByQuestion := make(map[uint]*model.Answer, len(attempt.Answers))
	for i := range attempt.Answers {
		answersByQuestion[attempt.Answers[i].QuestionID] = &attempt.Answers[i]
	}

	for _, q := range attempt.Test.Questions {
		aq := AnsweredQuestionDTO{
			QuestionID:  q.ID,
			OrderInTest: q.OrderInTest,
			Prompt:      q.Prompt,
			Type:        q.Type,
			Points:      q.Points,
		}
		if answer, ok := answersByQuestion[q.ID]; ok {
			aq.Answered = true
			aq.SelectedOptionIDs = answer.SelectedOptionIDs
			aq.AnswerText = answer.AnswerText
			if includeKeys {
				aq.IsCorrect = answer.IsCorrect
				earned := answer.PointsEarned
				aq.PointsEarned = &earned
			}
		}
		if includeKeys {
			aq.CorrectOptionIDs = q.CorrectOptionIDs()
			aq.Explanation = q.Explanation
		}
		detail.Questions = append(detail.Questions, aq)
	}
	return detail
}

// AttemptSummaryDTO lists an attempt without its answers.
type AttemptSummaryDTO struct {
	AttemptID     uint                `json:"attempt_id"`
	PublicID      string              `json:"public_id"`
	TestID        uint                `json:"test_id"`
	StudentID     uint                `json:"student_id"`
	AttemptNumber int                 `json:"attempt_number"`
	Status        model.AttemptStatus `json:"status"`
	StartedAt     time.Time           `json:"started_at"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
	Score         *float64            `json:"score,omitempty"`
	Passed        *bool               `json:"passed,omitempty"`
}

func NewAttemptSummary(attempt *model.TestAttempt) AttemptSummaryDTO {
	return AttemptSummaryDTO{
		AttemptID:     attempt.ID,
		PublicID:      attempt.PublicID,
		TestID:        attempt.TestID,
		StudentID:     attempt.StudentID,
		AttemptNumber: attempt.AttemptNumber,
		Status:        attempt.Status,
		StartedAt:     attempt.StartedAt,
		CompletedAt:   attempt.CompletedAt,
		Score:         attempt.Score,
		Passed:        attempt.Passed,
	}
}
