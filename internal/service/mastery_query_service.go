package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Lorikeets/internal/apperr"
	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MasteryQueryService is the read side of the mastery engine.
type MasteryQueryService interface {
	GetParagraphMastery(studentID, paragraphID uint) (*dto.ParagraphMasteryDTO, error)
	GetChapterMastery(studentID, chapterID uint) (*dto.ChapterMasteryDTO, error)
	GetChapterHistory(studentID, chapterID uint) ([]dto.MasteryHistoryEntryDTO, error)
	GetParagraphHistory(studentID, paragraphID uint) ([]dto.MasteryHistoryEntryDTO, error)
}

type masteryQueryService struct {
	paragraphRepo repository.ParagraphMasteryRepository
	chapterRepo   repository.ChapterMasteryRepository
	historyRepo   repository.MasteryHistoryRepository
}

func NewMasteryQueryService(
	paragraphRepo repository.ParagraphMasteryRepository,
	chapterRepo repository.ChapterMasteryRepository,
	historyRepo repository.MasteryHistoryRepository,
) MasteryQueryService {
	return &masteryQueryService{
		paragraphRepo: paragraphRepo,
		chapterRepo:   chapterRepo,
		historyRepo:   historyRepo,
	}
}

func (s *masteryQueryService) GetParagraphMastery(studentID, paragraphID uint) (*dto.ParagraphMasteryDTO, error) {
	mastery, err := s.paragraphRepo.FindByStudentAndParagraph(studentID, paragraphID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("no mastery record for student %d paragraph %d", studentID, paragraphID)
		}
		return nil, fmt.Errorf("failed to load paragraph mastery: %w", err)
	}

	var resp dto.ParagraphMasteryDTO
	if err := copier.Copy(&resp, mastery); err != nil {
		log.Error().Err(err).Msg("Failed to map paragraph mastery to DTO")
		return nil, fmt.Errorf("error preparing paragraph mastery response: %w", err)
	}
	return &resp, nil
}

func (s *masteryQueryService) GetChapterMastery(studentID, chapterID uint) (*dto.ChapterMasteryDTO, error) {
	mastery, err := s.chapterRepo.FindByStudentAndChapter(studentID, chapterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("no mastery record for student %d chapter %d", studentID, chapterID)
		}
		return nil, fmt.Errorf("failed to load chapter mastery: %w", err)
	}

	var resp dto.ChapterMasteryDTO
	if err := copier.Copy(&resp, mastery); err != nil {
		log.Error().Err(err).Msg("Failed to map chapter mastery to DTO")
		return nil, fmt.Errorf("error preparing chapter mastery response: %w", err)
	}
	return &resp, nil
}

func (s *masteryQueryService) GetChapterHistory(studentID, chapterID uint) ([]dto.MasteryHistoryEntryDTO, error) {
	entries, err := s.historyRepo.FindByStudentAndChapter(studentID, chapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chapter mastery history: %w", err)
	}
	var resp []dto.MasteryHistoryEntryDTO
	if err := copier.Copy(&resp, &entries); err != nil {
		return nil, fmt.Errorf("error preparing history response: %w", err)
	}
	return resp, nil
}

func (s *masteryQueryService) GetParagraphHistory(studentID, paragraphID uint) ([]dto.MasteryHistoryEntryDTO, error) {
	entries, err := s.historyRepo.FindByStudentAndParagraph(studentID, paragraphID)
	if err != nil {
		return nil, fmt.Errorf("failed to load paragraph mastery history: %w", err)
	}
	var resp []dto.MasteryHistoryEntryDTO
	if err := copier.Copy(&resp, &entries); err != nil {
		return nil, fmt.Errorf("error preparing history response: %w", err)
	}
	return resp, nil
}
