package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Answer is unique per (attempt, question); the database index backs the
// duplicate-answer check so two concurrent submissions cannot both land.
type Answer struct {
	ID            uint     `gorm:"primarykey" json:"id"`
	TestAttemptID uint     `json:"test_attempt_id" gorm:"not null;index;uniqueIndex:idx_attempt_question"`
	QuestionID    uint     `json:"question_id" gorm:"not null;uniqueIndex:idx_attempt_question"`
	Question      Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`

	// Exactly one of the two payloads is meaningful: option ids for choice
	// types, free text for short answers.
	SelectedOptionIDs datatypes.JSONSlice[uint] `json:"selected_option_ids,omitempty"`
	AnswerText        string                    `json:"answer_text,omitempty" gorm:"type:text"`

	// IsCorrect is tri-state: nil means not yet graded (short answers stay nil
	// until a reviewer scores them).
	IsCorrect    *bool      `json:"is_correct,omitempty"`
	PointsEarned float64    `json:"points_earned"`
	GradedAt     *time.Time `json:"graded_at,omitempty"`

	ReviewedBy *uint      `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsAnswered reports whether the student supplied any payload at all.
func (a *Answer) IsAnswered() bool {
	return len(a.SelectedOptionIDs) > 0 || a.AnswerText != ""
}
