package repository

import (
	"github.com/lshigami/Lorikeets/internal/model"
	"gorm.io/gorm"
)

type ChapterMasteryRepository interface {
	WithTx(tx *gorm.DB) ChapterMasteryRepository
	Create(mastery *model.ChapterMastery) error
	Update(mastery *model.ChapterMastery) error
	FindByStudentAndChapter(studentID, chapterID uint) (*model.ChapterMastery, error)
}

type chapterMasteryRepository struct {
	db *gorm.DB
}

func NewChapterMasteryRepository(db *gorm.DB) ChapterMasteryRepository {
	return &chapterMasteryRepository{db: db}
}

func (r *chapterMasteryRepository) WithTx(tx *gorm.DB) ChapterMasteryRepository {
	return &chapterMasteryRepository{db: tx}
}

func (r *chapterMasteryRepository) Create(mastery *model.ChapterMastery) error {
	return r.db.Create(mastery).Error
}

func (r *chapterMasteryRepository) Update(mastery *model.ChapterMastery) error {
	return r.db.Save(mastery).Error
}

func (r *chapterMasteryRepository) FindByStudentAndChapter(studentID, chapterID uint) (*model.ChapterMastery, error) {
	var mastery model.ChapterMastery
	err := r.db.
		Where("student_id = ? AND chapter_id = ?", studentID, chapterID).
		First(&mastery).Error
	if err != nil {
		return nil, err
	}
	return &mastery, nil
}
