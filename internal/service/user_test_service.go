package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Lorikeets/internal/apperr"
	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/lshigami/Lorikeets/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserTestService interface {
	GetAllTests() ([]dto.TestSummaryDTO, error)
	GetTestDetails(testID uint) (*dto.TestDetailDTO, error)
	GetChapter(chapterID uint) (*model.Chapter, error)
}

type userTestService struct {
	testRepo    repository.TestRepository
	chapterRepo repository.ChapterRepository
}

func NewUserTestService(testRepo repository.TestRepository, chapterRepo repository.ChapterRepository) UserTestService {
	return &userTestService{testRepo: testRepo, chapterRepo: chapterRepo}
}

func (s *userTestService) GetAllTests() ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list tests with question count")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	var dtos []dto.TestSummaryDTO
	for _, twc := range testsWithCount {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:            twc.Test.ID,
			Title:         twc.Test.Title,
			Description:   twc.Test.Description,
			ChapterID:     twc.Test.ChapterID,
			ParagraphID:   twc.Test.ParagraphID,
			Purpose:       twc.Test.Purpose,
			PassingScore:  twc.Test.PassingScore,
			QuestionCount: twc.QuestionCount,
			CreatedAt:     twc.Test.CreatedAt,
		})
	}
	return dtos, nil
}

// GetTestDetails returns the student-facing view: questions and options
// without correct markers or explanations.
func (s *userTestService) GetTestDetails(testID uint) (*dto.TestDetailDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("test %d not found", testID)
		}
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to load test details")
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}

	resp := dto.TestDetailDTO{
		ID:           test.ID,
		Title:        test.Title,
		Description:  test.Description,
		ChapterID:    test.ChapterID,
		ParagraphID:  test.ParagraphID,
		Purpose:      test.Purpose,
		PassingScore: test.PassingScore,
		Questions:    dto.NewSanitizedQuestions(test.Questions),
		CreatedAt:    test.CreatedAt,
	}
	return &resp, nil
}

func (s *userTestService) GetChapter(chapterID uint) (*model.Chapter, error) {
	chapter, err := s.chapterRepo.FindByIDWithParagraphs(chapterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("chapter %d not found", chapterID)
		}
		return nil, fmt.Errorf("error fetching chapter %d: %w", chapterID, err)
	}
	return chapter, nil
}
