package repository

import (
	"github.com/lshigami/Lorikeets/internal/model"
	"gorm.io/gorm"
)

// MasteryHistoryRepository is append-only on purpose: no update or delete.
type MasteryHistoryRepository interface {
	WithTx(tx *gorm.DB) MasteryHistoryRepository
	Create(entry *model.MasteryHistory) error
	FindByStudentAndChapter(studentID, chapterID uint) ([]model.MasteryHistory, error)
	FindByStudentAndParagraph(studentID, paragraphID uint) ([]model.MasteryHistory, error)
}

type masteryHistoryRepository struct {
	db *gorm.DB
}

func NewMasteryHistoryRepository(db *gorm.DB) MasteryHistoryRepository {
	return &masteryHistoryRepository{db: db}
}

func (r *masteryHistoryRepository) WithTx(tx *gorm.DB) MasteryHistoryRepository {
	return &masteryHistoryRepository{db: tx}
}

func (r *masteryHistoryRepository) Create(entry *model.MasteryHistory) error {
	return r.db.Create(entry).Error
}

func (r *masteryHistoryRepository) FindByStudentAndChapter(studentID, chapterID uint) ([]model.MasteryHistory, error) {
	var entries []model.MasteryHistory
	err := r.db.
		Where("student_id = ? AND chapter_id = ? AND scope = ?", studentID, chapterID, model.ScopeChapter).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *masteryHistoryRepository) FindByStudentAndParagraph(studentID, paragraphID uint) ([]model.MasteryHistory, error) {
	var entries []model.MasteryHistory
	err := r.db.
		Where("student_id = ? AND paragraph_id = ? AND scope = ?", studentID, paragraphID, model.ScopeParagraph).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
