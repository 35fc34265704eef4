package model

import (
	"time"

	"gorm.io/gorm"
)

// TestPurpose controls whether a test's results feed the mastery engine.
// Only formative and summative attempts do; diagnostic and practice attempts
// are graded and stored but never touch mastery state.
type TestPurpose string

const (
	PurposeFormative  TestPurpose = "formative"
	PurposeSummative  TestPurpose = "summative"
	PurposeDiagnostic TestPurpose = "diagnostic"
	PurposePractice   TestPurpose = "practice"
)

// FeedsMastery reports whether attempts on this purpose update mastery records.
func (p TestPurpose) FeedsMastery() bool {
	return p == PurposeFormative || p == PurposeSummative
}

type Test struct {
	ID          uint        `gorm:"primarykey" json:"id"`
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description,omitempty"`
	ChapterID   uint        `json:"chapter_id" gorm:"not null;index"`
	Chapter     Chapter     `json:"chapter,omitempty" gorm:"foreignKey:ChapterID"`
	ParagraphID *uint       `json:"paragraph_id,omitempty" gorm:"index"`
	Purpose     TestPurpose `json:"purpose" gorm:"not null;default:'formative'"`
	// PassingScore is a fraction in [0,1] compared against the attempt score.
	PassingScore float64        `json:"passing_score" gorm:"not null"`
	Questions    []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TotalPoints sums the point value of every question, graded or not.
func (t *Test) TotalPoints() float64 {
	var total float64
	for _, q := range t.Questions {
		total += q.Points
	}
	return total
}
