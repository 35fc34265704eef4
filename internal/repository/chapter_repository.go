package repository

import (
	"github.com/lshigami/Lorikeets/internal/model"
	"gorm.io/gorm"
)

type ChapterRepository interface {
	Create(chapter *model.Chapter) error
	FindByID(id uint) (*model.Chapter, error)
	FindByIDWithParagraphs(id uint) (*model.Chapter, error)
	CountParagraphs(chapterID uint) (int64, error)
	FindParagraphByID(id uint) (*model.Paragraph, error)
}

type chapterRepository struct {
	db *gorm.DB
}

func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

func (r *chapterRepository) Create(chapter *model.Chapter) error {
	return r.db.Create(chapter).Error
}

func (r *chapterRepository) FindByID(id uint) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.db.First(&chapter, id).Error
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *chapterRepository) FindByIDWithParagraphs(id uint) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.db.
		Preload("Paragraphs", func(db *gorm.DB) *gorm.DB {
			return db.Order("paragraphs.order_in_chapter ASC")
		}).
		First(&chapter, id).Error
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *chapterRepository) CountParagraphs(chapterID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Paragraph{}).
		Where("chapter_id = ?", chapterID).
		Count(&count).Error
	return count, err
}

func (r *chapterRepository) FindParagraphByID(id uint) (*model.Paragraph, error) {
	var paragraph model.Paragraph
	err := r.db.First(&paragraph, id).Error
	if err != nil {
		return nil, err
	}
	return &paragraph, nil
}
