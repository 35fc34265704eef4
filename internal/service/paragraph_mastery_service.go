package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/lshigami/Lorikeets/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	// Status thresholds evaluated against best_score. 0.85 exactly is
	// mastered; 0.60 exactly is progressing, not struggling.
	masteredThreshold   = 0.85
	strugglingThreshold = 0.60
)

// ParagraphMasteryService updates the per-(student, paragraph) mastery record
// after a scored attempt and reports status transitions to the history
// recorder.
type ParagraphMasteryService interface {
	ApplyScore(tx *gorm.DB, studentID, paragraphID uint, testScore float64, attemptID uint) (*model.ParagraphMastery, error)
}

type paragraphMasteryService struct {
	masteryRepo repository.ParagraphMasteryRepository
	recorder    MasteryHistoryRecorder
}

func NewParagraphMasteryService(
	masteryRepo repository.ParagraphMasteryRepository,
	recorder MasteryHistoryRecorder,
) ParagraphMasteryService {
	return &paragraphMasteryService{masteryRepo: masteryRepo, recorder: recorder}
}

// ParagraphStatusFor maps a best score to the 3-tier status.
func ParagraphStatusFor(bestScore float64) model.MasteryStatus {
	switch {
	case bestScore >= masteredThreshold:
		return model.StatusMastered
	case bestScore < strugglingThreshold:
		return model.StatusStruggling
	default:
		return model.StatusProgressing
	}
}

// nextAverage folds one observation into the running mean without reloading
// full history: (old_average*old_count + score) / new_count.
func nextAverage(oldAverage float64, oldCount int, score float64) float64 {
	return (oldAverage*float64(oldCount) + score) / float64(oldCount+1)
}

func (s *paragraphMasteryService) ApplyScore(tx *gorm.DB, studentID, paragraphID uint, testScore float64, attemptID uint) (*model.ParagraphMastery, error) {
	repo := s.masteryRepo.WithTx(tx)
	now := time.Now()

	existing, err := repo.FindByStudentAndParagraph(studentID, paragraphID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load paragraph mastery for student %d paragraph %d: %w", studentID, paragraphID, err)
	}

	if existing == nil {
		// First scored attempt: create the record. No history entry, there is
		// no previous status to compare against.
		mastery := model.ParagraphMastery{
			StudentID:     studentID,
			ParagraphID:   paragraphID,
			AttemptsCount: 1,
			TestScore:     testScore,
			AverageScore:  testScore,
			BestScore:     testScore,
			Status:        ParagraphStatusFor(testScore),
			IsCompleted:   true,
			CompletedAt:   &now,
		}
		if err := repo.Create(&mastery); err != nil {
			return nil, fmt.Errorf("failed to create paragraph mastery: %w", err)
		}
		log.Info().Uint("studentID", studentID).Uint("paragraphID", paragraphID).
			Str("status", string(mastery.Status)).Msg("Paragraph mastery created")
		return &mastery, nil
	}

	previousStatus := existing.Status
	previousBest := existing.BestScore

	existing.AverageScore = nextAverage(existing.AverageScore, existing.AttemptsCount, testScore)
	existing.AttemptsCount++
	existing.TestScore = testScore
	if testScore > existing.BestScore {
		existing.BestScore = testScore
	}
	existing.Status = ParagraphStatusFor(existing.BestScore)

	if err := repo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update paragraph mastery: %w", err)
	}

	err = s.recorder.Record(tx, MasteryTransition{
		StudentID:     studentID,
		Scope:         model.ScopeParagraph,
		ParagraphID:   &paragraphID,
		PreviousLevel: string(previousStatus),
		NewLevel:      string(existing.Status),
		PreviousScore: previousBest,
		NewScore:      existing.BestScore,
		TestAttemptID: attemptID,
	})
	if err != nil {
		return nil, err
	}

	return existing, nil
}
