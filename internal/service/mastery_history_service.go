package service

import (
	"fmt"
	"time"

	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/lshigami/Lorikeets/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MasteryTransition is the explicit before/after pair handed to the recorder.
// Callers capture the previous value before overwriting the record so the
// comparison never depends on mutation order.
type MasteryTransition struct {
	StudentID     uint
	Scope         model.MasteryScope
	ChapterID     *uint
	ParagraphID   *uint
	PreviousLevel string
	NewLevel      string
	PreviousScore float64
	NewScore      float64
	TestAttemptID uint
}

// MasteryHistoryRecorder appends immutable transition entries. It is an
// explicit no-op when the previous value is unset (first creation) or equal
// to the new one.
type MasteryHistoryRecorder interface {
	Record(tx *gorm.DB, transition MasteryTransition) error
}

type masteryHistoryRecorder struct {
	historyRepo repository.MasteryHistoryRepository
}

func NewMasteryHistoryRecorder(historyRepo repository.MasteryHistoryRepository) MasteryHistoryRecorder {
	return &masteryHistoryRecorder{historyRepo: historyRepo}
}

// shouldRecordTransition is the single gate for history writes: no entry on
// first creation, no entry when the level did not change.
func shouldRecordTransition(previous, next string) bool {
	return previous != "" && previous != next
}

func (r *masteryHistoryRecorder) Record(tx *gorm.DB, transition MasteryTransition) error {
	if !shouldRecordTransition(transition.PreviousLevel, transition.NewLevel) {
		return nil
	}

	entry := model.MasteryHistory{
		StudentID:     transition.StudentID,
		Scope:         transition.Scope,
		ChapterID:     transition.ChapterID,
		ParagraphID:   transition.ParagraphID,
		PreviousLevel: transition.PreviousLevel,
		NewLevel:      transition.NewLevel,
		PreviousScore: transition.PreviousScore,
		NewScore:      transition.NewScore,
		TestAttemptID: transition.TestAttemptID,
		CreatedAt:     time.Now(),
	}
	if err := r.historyRepo.WithTx(tx).Create(&entry); err != nil {
		log.Error().Err(err).Uint("studentID", transition.StudentID).Str("scope", string(transition.Scope)).
			Msg("Failed to append mastery history entry")
		return fmt.Errorf("failed to append mastery history entry: %w", err)
	}

	log.Info().
		Uint("studentID", transition.StudentID).
		Str("scope", string(transition.Scope)).
		Str("from", transition.PreviousLevel).
		Str("to", transition.NewLevel).
		Uint("attemptID", transition.TestAttemptID).
		Msg("Mastery transition recorded")
	return nil
}
