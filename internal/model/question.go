package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionType is a closed enum; the grader switches exhaustively over it and
// treats any other value as corrupt authoring data.
type QuestionType string

const (
	SingleChoice   QuestionType = "single_choice"
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
)

// HasOptions reports whether the type carries selectable options.
func (t QuestionType) HasOptions() bool {
	return t == SingleChoice || t == MultipleChoice || t == TrueFalse
}

type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	TestID      uint           `json:"test_id" gorm:"not null;index"`
	OrderInTest int            `json:"order_in_test" gorm:"not null"`
	Prompt      string         `json:"prompt" gorm:"type:text;not null"`
	Explanation string         `json:"explanation,omitempty" gorm:"type:text"`
	Type        QuestionType   `json:"type" gorm:"not null"`
	Points      float64        `json:"points" gorm:"not null"`
	Options     []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// CorrectOptionIDs returns the ids of the options flagged correct, in option order.
func (q *Question) CorrectOptionIDs() []uint {
	var ids []uint
	for _, o := range q.Options {
		if o.IsCorrect {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

type Option struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	QuestionID      uint           `json:"question_id" gorm:"not null;index"`
	OrderInQuestion int            `json:"order_in_question" gorm:"not null"`
	Text            string         `json:"text" gorm:"type:text;not null"`
	IsCorrect       bool           `json:"is_correct"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
