package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Lorikeets/internal/apperr"
	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/lshigami/Lorikeets/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService is the test-taking workflow: start -> answer/submit ->
// complete. Answer keys are withheld while an attempt is in progress and
// released once it is completed.
type AttemptService interface {
	StartAttempt(testID uint, req dto.StartAttemptDTO) (*dto.AttemptStartedDTO, error)
	RecordAnswer(attemptID, questionID uint, req dto.AnswerSubmitDTO) (*dto.AnswerFeedbackDTO, error)
	SubmitAnswers(attemptID uint, req dto.BulkAnswersDTO) error
	CompleteAndGrade(attemptID uint) (*dto.AttemptDetailDTO, error)
	GetAttempt(attemptID uint) (*dto.AttemptDetailDTO, error)
	GetStudentAttempts(testID, studentID uint) ([]dto.AttemptSummaryDTO, error)
	ReviewAnswer(attemptID, questionID uint, req dto.ReviewAnswerDTO) (*dto.AttemptDetailDTO, error)
}

type attemptService struct {
	testRepo     repository.TestRepository
	attemptRepo  repository.AttemptRepository
	answerRepo   repository.AnswerRepository
	grader       QuestionGrader
	scorer       AttemptScorer
	paragraphSvc ParagraphMasteryService
	chapterSvc   ChapterMasteryService
	db           *gorm.DB
}

func NewAttemptService(
	testRepo repository.TestRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	grader QuestionGrader,
	scorer AttemptScorer,
	paragraphSvc ParagraphMasteryService,
	chapterSvc ChapterMasteryService,
	db *gorm.DB,
) AttemptService {
	return &attemptService{
		testRepo:     testRepo,
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		grader:       grader,
		scorer:       scorer,
		paragraphSvc: paragraphSvc,
		chapterSvc:   chapterSvc,
		db:           db,
	}
}

func (s *attemptService) StartAttempt(testID uint, req dto.StartAttemptDTO) (*dto.AttemptStartedDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("test %d not found", testID)
		}
		return nil, fmt.Errorf("failed to load test %d: %w", testID, err)
	}
	if len(test.Questions) == 0 {
		return nil, apperr.InvalidStatef("test %d has no questions, it cannot be attempted", testID)
	}

	if inflight, err := s.attemptRepo.FindInProgress(req.StudentID, testID); err == nil {
		return nil, apperr.InvalidStatef(
			"student %d already has attempt %d in progress on test %d", req.StudentID, inflight.ID, testID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check in-progress attempts: %w", err)
	}

	count, err := s.attemptRepo.CountByStudentAndTest(req.StudentID, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to count prior attempts: %w", err)
	}

	attempt := model.TestAttempt{
		PublicID:      uuid.NewString(),
		TestID:        testID,
		StudentID:     req.StudentID,
		AttemptNumber: int(count) + 1,
		Status:        model.AttemptInProgress,
		StartedAt:     time.Now(),
		TotalPoints:   test.TotalPoints(),
	}
	// The unique (student, test, attempt_number) index turns a concurrent
	// start racing on the same number into a storage error instead of a
	// duplicate attempt number.
	if err := s.attemptRepo.Create(&attempt); err != nil {
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}

	log.Info().Uint("studentID", req.StudentID).Uint("testID", testID).
		Int("attemptNumber", attempt.AttemptNumber).Msg("Attempt started")

	resp := dto.AttemptStartedDTO{
		AttemptID:     attempt.ID,
		PublicID:      attempt.PublicID,
		TestID:        testID,
		TestTitle:     test.Title,
		AttemptNumber: attempt.AttemptNumber,
		StartedAt:     attempt.StartedAt,
		Questions:     dto.NewSanitizedQuestions(test.Questions),
	}
	return &resp, nil
}

func (s *attemptService) RecordAnswer(attemptID, questionID uint, req dto.AnswerSubmitDTO) (*dto.AnswerFeedbackDTO, error) {
	_, test, err := s.loadInProgressAttempt(attemptID)
	if err != nil {
		return nil, err
	}

	question := findQuestion(test.Questions, questionID)
	if question == nil {
		return nil, apperr.NotFoundf("question %d does not belong to test %d", questionID, test.ID)
	}

	if _, err := s.answerRepo.FindByAttemptAndQuestion(attemptID, questionID); err == nil {
		return nil, apperr.InvalidStatef("question %d is already answered in attempt %d", questionID, attemptID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing answer: %w", err)
	}

	answer := model.Answer{
		TestAttemptID:     attemptID,
		QuestionID:        questionID,
		SelectedOptionIDs: req.SelectedOptionIDs,
		AnswerText:        req.AnswerText,
	}

	result, err := s.grader.Grade(question, &answer)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	answer.IsCorrect = result.IsCorrect
	answer.PointsEarned = result.PointsEarned
	if result.IsCorrect != nil {
		answer.GradedAt = &now
	}

	// The (attempt, question) unique index is the real duplicate fence; the
	// read-then-write check above only produces the friendlier error.
	if err := s.answerRepo.Create(&answer); err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidState, err,
			"failed to record answer for question %d in attempt %d", questionID, attemptID)
	}

	answered, err := s.answerRepo.CountByAttempt(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to count answers: %w", err)
	}

	feedback := dto.AnswerFeedbackDTO{
		AttemptID:        attemptID,
		QuestionID:       questionID,
		IsCorrect:        result.IsCorrect,
		PointsEarned:     result.PointsEarned,
		CorrectOptionIDs: question.CorrectOptionIDs(),
		Explanation:      question.Explanation,
		AnsweredCount:    int(answered),
		TotalQuestions:   len(test.Questions),
	}
	return &feedback, nil
}

func (s *attemptService) SubmitAnswers(attemptID uint, req dto.BulkAnswersDTO) error {
	_, test, err := s.loadInProgressAttempt(attemptID)
	if err != nil {
		return err
	}

	if err := validateBulkAnswerSet(test.Questions, req.Answers); err != nil {
		return err
	}

	existing, err := s.answerRepo.CountByAttempt(attemptID)
	if err != nil {
		return fmt.Errorf("failed to count existing answers: %w", err)
	}
	if existing > 0 {
		return apperr.InvalidStatef("attempt %d already has %d recorded answers, bulk submission is not allowed", attemptID, existing)
	}

	answers := make([]model.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, model.Answer{
			TestAttemptID:     attemptID,
			QuestionID:        a.QuestionID,
			SelectedOptionIDs: a.SelectedOptionIDs,
			AnswerText:        a.AnswerText,
		})
	}

	// Answers are stored ungraded; grading and finalization happen in the
	// completion step.
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.answerRepo.WithTx(tx).CreateBatch(answers); err != nil {
			return fmt.Errorf("failed to store submitted answers: %w", err)
		}
		return nil
	})
}

// validateBulkAnswerSet requires exactly one answer per question of the test.
func validateBulkAnswerSet(questions []model.Question, answers []dto.BulkAnswerItemDTO) error {
	if len(answers) != len(questions) {
		return apperr.InvalidStatef(
			"submission must contain exactly one answer per question: got %d answers for %d questions",
			len(answers), len(questions))
	}
	known := make(map[uint]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}
	seen := make(map[uint]bool, len(answers))
	for _, a := range answers {
		if !known[a.QuestionID] {
			return apperr.InvalidStatef("question %d does not belong to this test", a.QuestionID)
		}
		if seen[a.QuestionID] {
			return apperr.InvalidStatef("question %d appears more than once in the submission", a.QuestionID)
		}
		seen[a.QuestionID] = true
	}
	return nil
}

func (s *attemptService) CompleteAndGrade(attemptID uint) (*dto.AttemptDetailDTO, error) {
	attempt, test, err := s.loadInProgressAttempt(attemptID)
	if err != nil {
		return nil, err
	}

	questionByID := make(map[uint]*model.Question, len(test.Questions))
	for i := range test.Questions {
		questionByID[test.Questions[i].ID] = &test.Questions[i]
	}

	// Attempt finalization, paragraph update, chapter update and history
	// entries commit together or not at all.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		answerRepo := s.answerRepo.WithTx(tx)
		answers, err := answerRepo.FindAllByAttempt(attemptID)
		if err != nil {
			return fmt.Errorf("failed to load answers for attempt %d: %w", attemptID, err)
		}

		now := time.Now()
		for i := range answers {
			question, ok := questionByID[answers[i].QuestionID]
			if !ok {
				return apperr.DataIntegrityf("answer %d references question %d outside test %d",
					answers[i].ID, answers[i].QuestionID, test.ID)
			}
			result, err := s.grader.Grade(question, &answers[i])
			if err != nil {
				return err
			}
			answers[i].IsCorrect = result.IsCorrect
			answers[i].PointsEarned = result.PointsEarned
			if result.IsCorrect != nil {
				answers[i].GradedAt = &now
			}
			if err := answerRepo.Update(&answers[i]); err != nil {
				return fmt.Errorf("failed to store grading for answer %d: %w", answers[i].ID, err)
			}
		}

		verdict := s.scorer.Score(test.Questions, answers, test.PassingScore)

		attempt.Status = model.AttemptCompleted
		attempt.CompletedAt = &now
		attempt.TimeSpent = int(now.Sub(attempt.StartedAt).Seconds())
		attempt.Score = &verdict.Score
		attempt.PointsEarned = &verdict.PointsEarned
		attempt.TotalPoints = verdict.TotalPoints
		attempt.Passed = &verdict.Passed
		if err := s.attemptRepo.WithTx(tx).Update(attempt); err != nil {
			return fmt.Errorf("failed to finalize attempt %d: %w", attemptID, err)
		}

		// Diagnostic and practice attempts are graded but never touch mastery.
		if !test.Purpose.FeedsMastery() {
			return nil
		}
		if test.ParagraphID != nil {
			if _, err := s.paragraphSvc.ApplyScore(tx, attempt.StudentID, *test.ParagraphID, verdict.Score, attempt.ID); err != nil {
				return err
			}
		}
		if _, err := s.chapterSvc.Recalculate(tx, attempt.StudentID, attempt, test); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("attemptID", attemptID).Float64("score", *attempt.Score).
		Bool("passed", *attempt.Passed).Msg("Attempt completed and graded")

	return s.GetAttempt(attemptID)
}

func (s *attemptService) GetAttempt(attemptID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("attempt %d not found", attemptID)
		}
		return nil, fmt.Errorf("failed to load attempt %d: %w", attemptID, err)
	}

	// While in progress, correct answers and explanations are withheld; once
	// completed they are included.
	includeKeys := attempt.Status == model.AttemptCompleted
	detail := dto.NewAttemptDetail(attempt, includeKeys)
	return &detail, nil
}

func (s *attemptService) GetStudentAttempts(testID, studentID uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByTestAndStudent(testID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts for test %d student %d: %w", testID, studentID, err)
	}
	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for i := range attempts {
		summaries = append(summaries, dto.NewAttemptSummary(&attempts[i]))
	}
	return summaries, nil
}

func (s *attemptService) ReviewAnswer(attemptID, questionID uint, req dto.ReviewAnswerDTO) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("attempt %d not found", attemptID)
		}
		return nil, fmt.Errorf("failed to load attempt %d: %w", attemptID, err)
	}
	if attempt.Status != model.AttemptCompleted {
		return nil, apperr.InvalidStatef("attempt %d is not completed, answers cannot be reviewed yet", attemptID)
	}

	test, err := s.testRepo.FindByIDWithQuestions(attempt.TestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load test %d: %w", attempt.TestID, err)
	}
	question := findQuestion(test.Questions, questionID)
	if question == nil {
		return nil, apperr.NotFoundf("question %d does not belong to test %d", questionID, test.ID)
	}
	if question.Type != model.ShortAnswer {
		return nil, apperr.InvalidStatef("question %d is auto-graded (%s), manual review applies to short answers only",
			questionID, question.Type)
	}
	if req.PointsEarned < 0 || req.PointsEarned > question.Points {
		return nil, apperr.InvalidStatef("review score %.2f is outside [0, %.2f] for question %d",
			req.PointsEarned, question.Points, questionID)
	}

	answer, err := s.answerRepo.FindByAttemptAndQuestion(attemptID, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("no answer for question %d in attempt %d", questionID, attemptID)
		}
		return nil, fmt.Errorf("failed to load answer: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		isCorrect := req.PointsEarned > 0
		answer.IsCorrect = &isCorrect
		answer.PointsEarned = req.PointsEarned
		answer.GradedAt = &now
		answer.ReviewedBy = req.ReviewerID
		answer.ReviewedAt = &now
		if err := s.answerRepo.WithTx(tx).Update(answer); err != nil {
			return fmt.Errorf("failed to store review for answer %d: %w", answer.ID, err)
		}

		answers, err := s.answerRepo.WithTx(tx).FindAllByAttempt(attemptID)
		if err != nil {
			return fmt.Errorf("failed to reload answers: %w", err)
		}
		verdict := s.scorer.Score(test.Questions, answers, test.PassingScore)
		attempt.Score = &verdict.Score
		attempt.PointsEarned = &verdict.PointsEarned
		attempt.Passed = &verdict.Passed
		return s.attemptRepo.WithTx(tx).Update(attempt)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("attemptID", attemptID).Uint("questionID", questionID).
		Float64("points", req.PointsEarned).Msg("Short answer reviewed, attempt rescored")

	return s.GetAttempt(attemptID)
}

// loadInProgressAttempt resolves the attempt and its test, rejecting any
// operation against a non-in_progress attempt.
func (s *attemptService) loadInProgressAttempt(attemptID uint) (*model.TestAttempt, *model.Test, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFoundf("attempt %d not found", attemptID)
		}
		return nil, nil, fmt.Errorf("failed to load attempt %d: %w", attemptID, err)
	}
	if attempt.Status != model.AttemptInProgress {
		return nil, nil, apperr.InvalidStatef("attempt %d is %s, only in_progress attempts accept this operation",
			attemptID, attempt.Status)
	}
	test, err := s.testRepo.FindByIDWithQuestions(attempt.TestID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load test %d: %w", attempt.TestID, err)
	}
	return attempt, test, nil
}

func findQuestion(questions []model.Question, id uint) *model.Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
