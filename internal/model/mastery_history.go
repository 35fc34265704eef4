package model

import "time"

type MasteryScope string

const (
	ScopeParagraph MasteryScope = "paragraph"
	ScopeChapter   MasteryScope = "chapter"
)

// MasteryHistory is an append-only transition log. A row exists only when a
// tracked level or status actually changed; first creation never writes one.
// Rows are never updated or deleted, hence no UpdatedAt/DeletedAt.
type MasteryHistory struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	StudentID uint         `json:"student_id" gorm:"not null;index"`
	Scope     MasteryScope `json:"scope" gorm:"not null;index"`

	ChapterID   *uint `json:"chapter_id,omitempty" gorm:"index"`
	ParagraphID *uint `json:"paragraph_id,omitempty" gorm:"index"`

	PreviousLevel string  `json:"previous_level" gorm:"not null"`
	NewLevel      string  `json:"new_level" gorm:"not null"`
	PreviousScore float64 `json:"previous_score"`
	NewScore      float64 `json:"new_score"`

	TestAttemptID uint      `json:"test_attempt_id" gorm:"not null;index"`
	CreatedAt     time.Time `json:"created_at"`
}
