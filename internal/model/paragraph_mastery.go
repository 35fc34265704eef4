package model

import (
	"time"

	"gorm.io/gorm"
)

type MasteryStatus string

const (
	StatusStruggling  MasteryStatus = "struggling"
	StatusProgressing MasteryStatus = "progressing"
	StatusMastered    MasteryStatus = "mastered"
)

// ParagraphMastery is one row per (student, paragraph), created on the first
// scored attempt and mutated on every subsequent one. BestScore is
// monotonically non-decreasing over the record's lifetime.
type ParagraphMastery struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	StudentID   uint      `json:"student_id" gorm:"not null;index;uniqueIndex:idx_student_paragraph"`
	ParagraphID uint      `json:"paragraph_id" gorm:"not null;uniqueIndex:idx_student_paragraph"`
	Paragraph   Paragraph `json:"paragraph,omitempty" gorm:"foreignKey:ParagraphID"`

	AttemptsCount int `json:"attempts_count" gorm:"not null"`
	// All scores are fractions in [0,1]. TestScore is the latest observation,
	// AverageScore the incremental running mean, BestScore the maximum.
	TestScore    float64 `json:"test_score"`
	AverageScore float64 `json:"average_score"`
	BestScore    float64 `json:"best_score"`

	Status      MasteryStatus `json:"status" gorm:"not null"`
	IsCompleted bool          `json:"is_completed"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
