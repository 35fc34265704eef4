package model

import (
	"time"

	"gorm.io/gorm"
)

type MasteryLevel string

const (
	LevelA MasteryLevel = "A"
	LevelB MasteryLevel = "B"
	LevelC MasteryLevel = "C"
)

// ChapterMastery is one row per (student, chapter), upserted after every
// graded formative or summative attempt whose test belongs to the chapter.
type ChapterMastery struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	StudentID uint    `json:"student_id" gorm:"not null;index;uniqueIndex:idx_student_chapter"`
	ChapterID uint    `json:"chapter_id" gorm:"not null;uniqueIndex:idx_student_chapter"`
	Chapter   Chapter `json:"chapter,omitempty" gorm:"foreignKey:ChapterID"`

	MasteryLevel MasteryLevel `json:"mastery_level" gorm:"not null"`
	// MasteryScore is on a 0-100 scale, rounded to 2 decimal places.
	MasteryScore       float64 `json:"mastery_score"`
	ProgressPercentage float64 `json:"progress_percentage"`

	TotalParagraphs      int `json:"total_paragraphs"`
	CompletedParagraphs  int `json:"completed_paragraphs"`
	MasteredParagraphs   int `json:"mastered_paragraphs"`
	StrugglingParagraphs int `json:"struggling_paragraphs"`

	// Set only when the triggering attempt's test is summative, on a 0-100 scale.
	SummativeScore  *float64 `json:"summative_score,omitempty"`
	SummativePassed *bool    `json:"summative_passed,omitempty"`

	LastCalculatedAt time.Time      `json:"last_calculated_at"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
