package dto

import (
	"time"

	"github.com/lshigami/Lorikeets/internal/model"
)

type ParagraphMasteryDTO struct {
	StudentID     uint                `json:"student_id"`
	ParagraphID   uint                `json:"paragraph_id"`
	AttemptsCount int                 `json:"attempts_count"`
	TestScore     float64             `json:"test_score"`
	AverageScore  float64             `json:"average_score"`
	BestScore     float64             `json:"best_score"`
	Status        model.MasteryStatus `json:"status"`
	IsCompleted   bool                `json:"is_completed"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
}

type ChapterMasteryDTO struct {
	StudentID            uint               `json:"student_id"`
	ChapterID            uint               `json:"chapter_id"`
	MasteryLevel         model.MasteryLevel `json:"mastery_level"`
	MasteryScore         float64            `json:"mastery_score"`
	ProgressPercentage   float64            `json:"progress_percentage"`
	TotalParagraphs      int                `json:"total_paragraphs"`
	CompletedParagraphs  int                `json:"completed_paragraphs"`
	MasteredParagraphs   int                `json:"mastered_paragraphs"`
	StrugglingParagraphs int                `json:"struggling_paragraphs"`
	SummativeScore       *float64           `json:"summative_score,omitempty"`
	SummativePassed      *bool              `json:"summative_passed,omitempty"`
	LastCalculatedAt     time.Time          `json:"last_calculated_at"`
}

type MasteryHistoryEntryDTO struct {
	ID            uint               `json:"id"`
	Scope         model.MasteryScope `json:"scope"`
	ChapterID     *uint              `json:"chapter_id,omitempty"`
	ParagraphID   *uint              `json:"paragraph_id,omitempty"`
	PreviousLevel string             `json:"previous_level"`
	NewLevel      string             `json:"new_level"`
	PreviousScore float64            `json:"previous_score"`
	NewScore      float64            `json:"new_score"`
	TestAttemptID uint               `json:"test_attempt_id"`
	CreatedAt     time.Time          `json:"created_at"`
}
