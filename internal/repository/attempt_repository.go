package repository

import (
	"github.com/lshigami/Lorikeets/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	WithTx(tx *gorm.DB) AttemptRepository
	Create(attempt *model.TestAttempt) error
	Update(attempt *model.TestAttempt) error
	FindByID(id uint) (*model.TestAttempt, error)
	FindByIDWithDetails(id uint) (*model.TestAttempt, error)
	FindInProgress(studentID, testID uint) (*model.TestAttempt, error)
	CountByStudentAndTest(studentID, testID uint) (int64, error)
	FindAllByTestAndStudent(testID, studentID uint) ([]model.TestAttempt, error)
	// FindRecentCompletedByChapter returns up to limit completed attempts on
	// formative/summative tests of the chapter, newest first.
	FindRecentCompletedByChapter(studentID, chapterID uint, limit int) ([]model.TestAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) WithTx(tx *gorm.DB) AttemptRepository {
	return &attemptRepository{db: tx}
}

func (r *attemptRepository) Create(attempt *model.TestAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) Update(attempt *model.TestAttempt) error {
	return r.db.Save(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) FindByIDWithDetails(id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.
		Preload("Test").
		Preload("Test.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_test ASC")
		}).
		Preload("Test.Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.order_in_question ASC")
		}).
		Preload("Answers").
		First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) FindInProgress(studentID, testID uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.
		Where("student_id = ? AND test_id = ? AND status = ?", studentID, testID, model.AttemptInProgress).
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) CountByStudentAndTest(studentID, testID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.TestAttempt{}).
		Where("student_id = ? AND test_id = ?", studentID, testID).
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) FindAllByTestAndStudent(testID, studentID uint) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.db.
		Where("test_id = ? AND student_id = ?", testID, studentID).
		Order("attempt_number DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindRecentCompletedByChapter(studentID, chapterID uint, limit int) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.db.
		Joins("JOIN tests ON tests.id = test_attempts.test_id").
		Where("test_attempts.student_id = ? AND test_attempts.status = ?", studentID, model.AttemptCompleted).
		Where("tests.chapter_id = ? AND tests.purpose IN ?", chapterID, []model.TestPurpose{model.PurposeFormative, model.PurposeSummative}).
		Order("test_attempts.completed_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}
