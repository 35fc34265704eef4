package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/lshigami/Lorikeets/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// chapterAttemptWindow is how many recent completed attempts feed the
// classifier, newest first.
const chapterAttemptWindow = 5

// minAttemptsForClassification: below this the classifier short-circuits to
// the conservative (C, 0) default rather than guessing from thin data.
const minAttemptsForClassification = 3

// recencyWeights are aligned newest-to-oldest and renormalized by the weight
// mass actually used when fewer than 5 attempts are available.
var recencyWeights = [chapterAttemptWindow]float64{0.35, 0.25, 0.20, 0.12, 0.08}

// ChapterClassification is the full output of the A/B/C decision, kept so the
// branch taken is inspectable in logs and tests.
type ChapterClassification struct {
	Level       model.MasteryLevel
	Score       float64 // 0-100, rounded to 2 decimals
	WeightedAvg float64
	Trend       float64
	StdDev      float64
	Sufficient  bool
}

// ClassifyChapterLevel computes the A/B/C level from attempt scores given as
// fractions in [0,1], newest first. Only the newest chapterAttemptWindow
// scores are considered.
func ClassifyChapterLevel(scores []float64) ChapterClassification {
	if len(scores) > chapterAttemptWindow {
		scores = scores[:chapterAttemptWindow]
	}
	if len(scores) < minAttemptsForClassification {
		return ChapterClassification{Level: model.LevelC, Score: 0}
	}

	scaled := make([]float64, len(scores))
	for i, s := range scores {
		scaled[i] = s * 100
	}

	weightedAvg := weightedAverage(scaled)
	trend := scoreTrend(scaled)
	stdDev := populationStdDev(scaled, weightedAvg)

	// Decision rules in priority order. The trend adjustment is clamped to
	// the 0-100 scale and the final score rounded to 2 decimals.
	var level model.MasteryLevel
	var score float64
	switch {
	case weightedAvg >= 85 && (trend >= 0 || stdDev < 10):
		level = model.LevelA
		score = math.Min(100, weightedAvg+0.2*trend)
	case weightedAvg < 60 || (weightedAvg < 70 && trend < -10):
		level = model.LevelC
		score = math.Max(0, weightedAvg+0.2*trend)
	default:
		level = model.LevelB
		score = weightedAvg
	}

	return ChapterClassification{
		Level:       level,
		Score:       math.Round(score*100) / 100,
		WeightedAvg: weightedAvg,
		Trend:       trend,
		StdDev:      stdDev,
		Sufficient:  true,
	}
}

func weightedAverage(scaled []float64) float64 {
	var sum, weightMass float64
	for i, s := range scaled {
		sum += s * recencyWeights[i]
		weightMass += recencyWeights[i]
	}
	return sum / weightMass
}

// scoreTrend compares the mean of the 2 newest scores against the mean of the
// 2 oldest in the window. With exactly 3 attempts the windows share the middle
// attempt; that overlap is intentional given the data.
func scoreTrend(scaled []float64) float64 {
	n := len(scaled)
	newest := (scaled[0] + scaled[1]) / 2
	oldest := (scaled[n-2] + scaled[n-1]) / 2
	return newest - oldest
}

// populationStdDev measures spread around the weighted average, not the plain
// mean, so the consistency signal matches the score the level rules see.
func populationStdDev(scaled []float64, center float64) float64 {
	var sumSq float64
	for _, s := range scaled {
		d := s - center
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(scaled)))
}

// ChapterMasteryService recomputes a student's chapter-level classification
// after a graded attempt and stores it with the paragraph-completion
// breakdown as of that moment.
type ChapterMasteryService interface {
	Recalculate(tx *gorm.DB, studentID uint, attempt *model.TestAttempt, test *model.Test) (*model.ChapterMastery, error)
}

type chapterMasteryService struct {
	attemptRepo repository.AttemptRepository
	masteryRepo repository.ChapterMasteryRepository
	paragraphs  repository.ParagraphMasteryRepository
	chapterRepo repository.ChapterRepository
	recorder    MasteryHistoryRecorder
}

func NewChapterMasteryService(
	attemptRepo repository.AttemptRepository,
	masteryRepo repository.ChapterMasteryRepository,
	paragraphs repository.ParagraphMasteryRepository,
	chapterRepo repository.ChapterRepository,
	recorder MasteryHistoryRecorder,
) ChapterMasteryService {
	return &chapterMasteryService{
		attemptRepo: attemptRepo,
		masteryRepo: masteryRepo,
		paragraphs:  paragraphs,
		chapterRepo: chapterRepo,
		recorder:    recorder,
	}
}

func (s *chapterMasteryService) Recalculate(tx *gorm.DB, studentID uint, attempt *model.TestAttempt, test *model.Test) (*model.ChapterMastery, error) {
	chapterID := test.ChapterID

	recent, err := s.attemptRepo.WithTx(tx).FindRecentCompletedByChapter(studentID, chapterID, chapterAttemptWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent attempts for chapter %d: %w", chapterID, err)
	}
	scores := make([]float64, 0, len(recent))
	for _, a := range recent {
		if a.Score != nil {
			scores = append(scores, *a.Score)
		}
	}

	classification := ClassifyChapterLevel(scores)

	counts, err := s.paragraphs.WithTx(tx).CountStatusesByChapter(studentID, chapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to count paragraph statuses for chapter %d: %w", chapterID, err)
	}
	totalParagraphs, err := s.chapterRepo.CountParagraphs(chapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to count paragraphs of chapter %d: %w", chapterID, err)
	}
	var progress float64
	if totalParagraphs > 0 {
		progress = float64(counts.Completed) / float64(totalParagraphs) * 100
	}

	masteryRepo := s.masteryRepo.WithTx(tx)
	existing, err := masteryRepo.FindByStudentAndChapter(studentID, chapterID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load chapter mastery for student %d chapter %d: %w", studentID, chapterID, err)
	}

	previousLevel := ""
	previousScore := 0.0
	mastery := existing
	if mastery == nil {
		mastery = &model.ChapterMastery{StudentID: studentID, ChapterID: chapterID}
	} else {
		previousLevel = string(mastery.MasteryLevel)
		previousScore = mastery.MasteryScore
	}

	mastery.MasteryLevel = classification.Level
	mastery.MasteryScore = classification.Score
	mastery.ProgressPercentage = progress
	mastery.TotalParagraphs = int(totalParagraphs)
	mastery.CompletedParagraphs = int(counts.Completed)
	mastery.MasteredParagraphs = int(counts.Mastered)
	mastery.StrugglingParagraphs = int(counts.Struggling)
	mastery.LastCalculatedAt = time.Now()

	if test.Purpose == model.PurposeSummative && attempt.Score != nil {
		summative := *attempt.Score * 100
		mastery.SummativeScore = &summative
		mastery.SummativePassed = attempt.Passed
	}

	if existing == nil {
		if err := masteryRepo.Create(mastery); err != nil {
			return nil, fmt.Errorf("failed to create chapter mastery: %w", err)
		}
	} else {
		if err := masteryRepo.Update(mastery); err != nil {
			return nil, fmt.Errorf("failed to update chapter mastery: %w", err)
		}
	}

	err = s.recorder.Record(tx, MasteryTransition{
		StudentID:     studentID,
		Scope:         model.ScopeChapter,
		ChapterID:     &chapterID,
		PreviousLevel: previousLevel,
		NewLevel:      string(classification.Level),
		PreviousScore: previousScore,
		NewScore:      classification.Score,
		TestAttemptID: attempt.ID,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint("studentID", studentID).
		Uint("chapterID", chapterID).
		Str("level", string(classification.Level)).
		Float64("score", classification.Score).
		Float64("weightedAvg", classification.WeightedAvg).
		Float64("trend", classification.Trend).
		Float64("stdDev", classification.StdDev).
		Msg("Chapter mastery recalculated")

	return mastery, nil
}
