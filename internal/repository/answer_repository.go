package repository

import (
	"github.com/lshigami/Lorikeets/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	// Create relies on the unique (attempt, question) index: a concurrent
	// duplicate surfaces as a constraint violation, not a silent overwrite.
	Create(answer *model.Answer) error
	CreateBatch(answers []model.Answer) error
	Update(answer *model.Answer) error
	FindByAttemptAndQuestion(attemptID, questionID uint) (*model.Answer, error)
	FindAllByAttempt(attemptID uint) ([]model.Answer, error)
	CountByAttempt(attemptID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) CreateBatch(answers []model.Answer) error {
	return r.db.Create(&answers).Error
}

func (r *answerRepository) Update(answer *model.Answer) error {
	return r.db.Save(answer).Error
}

func (r *answerRepository) FindByAttemptAndQuestion(attemptID, questionID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.
		Where("test_attempt_id = ? AND question_id = ?", attemptID, questionID).
		First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindAllByAttempt(attemptID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("test_attempt_id = ?", attemptID).Find(&answers).Error
	return answers, err
}

func (r *answerRepository) CountByAttempt(attemptID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).
		Where("test_attempt_id = ?", attemptID).
		Count(&count).Error
	return count, err
}
