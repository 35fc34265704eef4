package model

import (
	"time"

	"gorm.io/gorm"
)

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
)

// TestAttempt is one student's run through a test. The transition
// in_progress -> completed happens exactly once and is never reversed.
type TestAttempt struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	PublicID string `json:"public_id" gorm:"size:36;uniqueIndex;not null"`

	TestID    uint `json:"test_id" gorm:"not null;index;uniqueIndex:idx_student_test_attempt_no"`
	Test      Test `json:"test,omitempty" gorm:"foreignKey:TestID"`
	StudentID uint `json:"student_id" gorm:"not null;index;uniqueIndex:idx_student_test_attempt_no"`
	// AttemptNumber is 1-based per (student, test). The unique index serializes
	// concurrent starts racing on the same number.
	AttemptNumber int `json:"attempt_number" gorm:"not null;uniqueIndex:idx_student_test_attempt_no"`

	Status      AttemptStatus `json:"status" gorm:"not null;default:'in_progress';index"`
	StartedAt   time.Time     `json:"started_at" gorm:"not null"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	TimeSpent   int           `json:"time_spent"` // seconds

	// Populated on completion. Score is a fraction in [0,1]; TotalPoints is a
	// static property of the test, including never-auto-graded questions.
	Score        *float64 `json:"score,omitempty"`
	PointsEarned *float64 `json:"points_earned,omitempty"`
	TotalPoints  float64  `json:"total_points"`
	Passed       *bool    `json:"passed,omitempty"`

	Answers   []Answer       `json:"answers,omitempty" gorm:"foreignKey:TestAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
