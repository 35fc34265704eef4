package repository

import (
	"github.com/lshigami/Lorikeets/internal/model"
	"gorm.io/gorm"
)

// ParagraphStatusCounts is the per-chapter breakdown the chapter classifier
// stores alongside the level.
type ParagraphStatusCounts struct {
	Completed  int64
	Mastered   int64
	Struggling int64
}

type ParagraphMasteryRepository interface {
	WithTx(tx *gorm.DB) ParagraphMasteryRepository
	Create(mastery *model.ParagraphMastery) error
	Update(mastery *model.ParagraphMastery) error
	FindByStudentAndParagraph(studentID, paragraphID uint) (*model.ParagraphMastery, error)
	CountStatusesByChapter(studentID, chapterID uint) (ParagraphStatusCounts, error)
}

type paragraphMasteryRepository struct {
	db *gorm.DB
}

func NewParagraphMasteryRepository(db *gorm.DB) ParagraphMasteryRepository {
	return &paragraphMasteryRepository{db: db}
}

func (r *paragraphMasteryRepository) WithTx(tx *gorm.DB) ParagraphMasteryRepository {
	return &paragraphMasteryRepository{db: tx}
}

func (r *paragraphMasteryRepository) Create(mastery *model.ParagraphMastery) error {
	return r.db.Create(mastery).Error
}

func (r *paragraphMasteryRepository) Update(mastery *model.ParagraphMastery) error {
	return r.db.Save(mastery).Error
}

func (r *paragraphMasteryRepository) FindByStudentAndParagraph(studentID, paragraphID uint) (*model.ParagraphMastery, error) {
	var mastery model.ParagraphMastery
	err := r.db.
		Where("student_id = ? AND paragraph_id = ?", studentID, paragraphID).
		First(&mastery).Error
	if err != nil {
		return nil, err
	}
	return &mastery, nil
}

func (r *paragraphMasteryRepository) CountStatusesByChapter(studentID, chapterID uint) (ParagraphStatusCounts, error) {
	var counts ParagraphStatusCounts

	base := func() *gorm.DB {
		return r.db.Model(&model.ParagraphMastery{}).
			Joins("JOIN paragraphs ON paragraphs.id = paragraph_masteries.paragraph_id").
			Where("paragraph_masteries.student_id = ? AND paragraphs.chapter_id = ?", studentID, chapterID)
	}

	if err := base().Where("paragraph_masteries.is_completed = ?", true).Count(&counts.Completed).Error; err != nil {
		return counts, err
	}
	if err := base().Where("paragraph_masteries.status = ?", model.StatusMastered).Count(&counts.Mastered).Error; err != nil {
		return counts, err
	}
	if err := base().Where("paragraph_masteries.status = ?", model.StatusStruggling).Count(&counts.Struggling).Error; err != nil {
		return counts, err
	}
	return counts, nil
}
