package dto

import (
	"time"

	"github.com/lshigami/Lorikeets/internal/model"
)

// SanitizedOptionDTO is an option as shown to a student mid-attempt: no
// is_correct marker.
type SanitizedOptionDTO struct {
	ID              uint   `json:"id"`
	OrderInQuestion int    `json:"order_in_question"`
	Text            string `json:"text"`
}

// SanitizedQuestionDTO is a question without answer keys or explanation.
type SanitizedQuestionDTO struct {
	ID          uint                 `json:"id"`
	OrderInTest int                  `json:"order_in_test"`
	Prompt      string               `json:"prompt"`
	Type        model.QuestionType   `json:"type"`
	Points      float64              `json:"points"`
	Options     []SanitizedOptionDTO `json:"options,omitempty"`
}

// NewSanitizedQuestions maps questions to their pre-submission view. Correct
// option flags and explanations must not leak before completion.
func NewSanitizedQuestions(questions []model.Question) []SanitizedQuestionDTO {
	out := make([]SanitizedQuestionDTO, 0, len(questions))
	for _, q := range questions {
		sq := SanitizedQuestionDTO{
			ID:          q.ID,
			OrderInTest: q.OrderInTest,
			Prompt:      q.Prompt,
			Type:        q.Type,
			Points:      q.Points,
		}
		for _, o := range q.Options {
			sq.Options = append(sq.Options, SanitizedOptionDTO{
				ID:              o.ID,
				OrderInQuestion: o.OrderInQuestion,
				Text:            o.Text,
			})
		}
		out = append(out, sq)
	}
	return out
}

// TestSummaryDTO lists a test for browsing.
type TestSummaryDTO struct {
	ID            uint              `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description,omitempty"`
	ChapterID     uint              `json:"chapter_id"`
	ParagraphID   *uint             `json:"paragraph_id,omitempty"`
	Purpose       model.TestPurpose `json:"purpose"`
	PassingScore  float64           `json:"passing_score"`
	QuestionCount int               `json:"question_count"`
	CreatedAt     time.Time         `json:"created_at"`
}

// TestDetailDTO is the student-facing test view, questions sanitized.
type TestDetailDTO struct {
	ID           uint                   `json:"id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description,omitempty"`
	ChapterID    uint                   `json:"chapter_id"`
	ParagraphID  *uint                  `json:"paragraph_id,omitempty"`
	Purpose      model.TestPurpose      `json:"purpose"`
	PassingScore float64                `json:"passing_score"`
	Questions    []SanitizedQuestionDTO `json:"questions,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}
