package model

import (
	"time"

	"gorm.io/gorm"
)

type Chapter struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Paragraphs  []Paragraph    `json:"paragraphs,omitempty" gorm:"foreignKey:ChapterID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Paragraph struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	ChapterID      uint           `json:"chapter_id" gorm:"not null;index"`
	Title          string         `json:"title" gorm:"not null"`
	OrderInChapter int            `json:"order_in_chapter" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
