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

type AdminTestService interface {
	CreateTest(req dto.TestCreateDTO) (*dto.TestDetailDTO, error)
	CreateChapter(req dto.ChapterCreateDTO) (*model.Chapter, error)
}

type adminTestService struct {
	testRepo    repository.TestRepository
	chapterRepo repository.ChapterRepository
}

func NewAdminTestService(testRepo repository.TestRepository, chapterRepo repository.ChapterRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo, chapterRepo: chapterRepo}
}

func (s *adminTestService) CreateTest(req dto.TestCreateDTO) (*dto.TestDetailDTO, error) {
	if _, err := s.chapterRepo.FindByID(req.ChapterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("chapter %d not found", req.ChapterID)
		}
		return nil, fmt.Errorf("failed to load chapter %d: %w", req.ChapterID, err)
	}
	if req.ParagraphID != nil {
		paragraph, err := s.chapterRepo.FindParagraphByID(*req.ParagraphID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFoundf("paragraph %d not found", *req.ParagraphID)
			}
			return nil, fmt.Errorf("failed to load paragraph %d: %w", *req.ParagraphID, err)
		}
		if paragraph.ChapterID != req.ChapterID {
			return nil, apperr.InvalidStatef("paragraph %d belongs to chapter %d, not %d",
				paragraph.ID, paragraph.ChapterID, req.ChapterID)
		}
	}

	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	test := model.Test{
		Title:        req.Title,
		Description:  req.Description,
		ChapterID:    req.ChapterID,
		ParagraphID:  req.ParagraphID,
		Purpose:      model.TestPurpose(req.Purpose),
		PassingScore: req.PassingScore,
		Questions:    questions,
	}
	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Msg("Failed to create test")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}

	created, err := s.testRepo.FindByIDWithQuestions(test.ID)
	if err != nil {
		log.Error().Err(err).Uint("testID", test.ID).Msg("Failed to reload created test")
		created = &test
	}

	resp := dto.TestDetailDTO{
		ID:           created.ID,
		Title:        created.Title,
		Description:  created.Description,
		ChapterID:    created.ChapterID,
		ParagraphID:  created.ParagraphID,
		Purpose:      created.Purpose,
		PassingScore: created.PassingScore,
		Questions:    dto.NewSanitizedQuestions(created.Questions),
		CreatedAt:    created.CreatedAt,
	}
	return &resp, nil
}

// buildQuestions validates authoring input against the grading rules so the
// grader never meets a question it would have to refuse.
func buildQuestions(reqs []dto.QuestionCreateDTO) ([]model.Question, error) {
	orderSeen := make(map[int]bool, len(reqs))
	questions := make([]model.Question, 0, len(reqs))

	for _, qReq := range reqs {
		if orderSeen[qReq.OrderInTest] {
			return nil, apperr.InvalidStatef("duplicate order_in_test %d", qReq.OrderInTest)
		}
		orderSeen[qReq.OrderInTest] = true

		qType := model.QuestionType(qReq.Type)
		correctCount := 0
		for _, o := range qReq.Options {
			if o.IsCorrect {
				correctCount++
			}
		}

		switch qType {
		case model.SingleChoice:
			if len(qReq.Options) < 2 {
				return nil, apperr.InvalidStatef("question %d: single_choice needs at least 2 options", qReq.OrderInTest)
			}
			if correctCount != 1 {
				return nil, apperr.InvalidStatef("question %d: single_choice needs exactly 1 correct option, got %d", qReq.OrderInTest, correctCount)
			}
		case model.TrueFalse:
			if len(qReq.Options) != 2 {
				return nil, apperr.InvalidStatef("question %d: true_false needs exactly 2 options", qReq.OrderInTest)
			}
			if correctCount != 1 {
				return nil, apperr.InvalidStatef("question %d: true_false needs exactly 1 correct option, got %d", qReq.OrderInTest, correctCount)
			}
		case model.MultipleChoice:
			if len(qReq.Options) < 2 {
				return nil, apperr.InvalidStatef("question %d: multiple_choice needs at least 2 options", qReq.OrderInTest)
			}
			if correctCount == 0 {
				return nil, apperr.InvalidStatef("question %d: multiple_choice needs at least 1 correct option", qReq.OrderInTest)
			}
		case model.ShortAnswer:
			if len(qReq.Options) != 0 {
				return nil, apperr.InvalidStatef("question %d: short_answer cannot carry options", qReq.OrderInTest)
			}
		default:
			return nil, apperr.InvalidStatef("question %d: unknown type %q", qReq.OrderInTest, qReq.Type)
		}

		question := model.Question{
			OrderInTest: qReq.OrderInTest,
			Prompt:      qReq.Prompt,
			Explanation: qReq.Explanation,
			Type:        qType,
			Points:      qReq.Points,
		}
		for _, oReq := range qReq.Options {
			question.Options = append(question.Options, model.Option{
				OrderInQuestion: oReq.OrderInQuestion,
				Text:            oReq.Text,
				IsCorrect:       oReq.IsCorrect,
			})
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func (s *adminTestService) CreateChapter(req dto.ChapterCreateDTO) (*model.Chapter, error) {
	chapter := model.Chapter{
		Title:       req.Title,
		Description: req.Description,
	}
	for _, pReq := range req.Paragraphs {
		chapter.Paragraphs = append(chapter.Paragraphs, model.Paragraph{
			Title:          pReq.Title,
			OrderInChapter: pReq.OrderInChapter,
		})
	}
	if err := s.chapterRepo.Create(&chapter); err != nil {
		log.Error().Err(err).Msg("Failed to create chapter")
		return nil, fmt.Errorf("database error creating chapter: %w", err)
	}
	return &chapter, nil
}
