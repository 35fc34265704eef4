package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lorikeets/internal/controller"
	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/service"
	"github.com/rs/zerolog/log"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(as service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: as}
}

// StartAttempt godoc
// @Summary (User) Start a new attempt on a test
// @Description Creates an in-progress attempt and returns the question set without answer keys. Fails if the student already has an attempt in flight on this test.
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param request body dto.StartAttemptDTO true "Student starting the attempt"
// @Success 201 {object} dto.AttemptStartedDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already in progress"
// @Router /tests/{test_id}/attempts [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	testID, err := strconv.ParseUint(ctx.Param("test_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Test ID format"})
		return
	}
	var req dto.StartAttemptDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	started, err := c.attemptService.StartAttempt(uint(testID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("testID", testID).Msg("StartAttempt: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, started)
}

// RecordAnswer godoc
// @Summary (User) Answer one question of an in-progress attempt
// @Description Records and grades one answer immediately, returning feedback and progress. Re-answering a question is rejected.
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param question_id path int true "Question ID"
// @Param request body dto.AnswerSubmitDTO true "Selected options or free text"
// @Success 200 {object} dto.AnswerFeedbackDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Attempt or question not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt not in progress or question already answered"
// @Router /attempts/{attempt_id}/questions/{question_id}/answer [post]
func (c *AttemptController) RecordAnswer(ctx *gin.Context) {
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return
	}
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return
	}
	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	feedback, err := c.attemptService.RecordAnswer(uint(attemptID), uint(questionID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("attemptID", attemptID).Uint64("questionID", questionID).Msg("RecordAnswer: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}

// SubmitAnswers godoc
// @Summary (User) Submit all answers for an attempt at once
// @Description Bulk mode: requires exactly one answer per question; answers are stored ungraded until completion.
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param request body dto.BulkAnswersDTO true "One answer per question"
// @Success 204 "Answers stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt not in progress or answer set invalid"
// @Router /attempts/{attempt_id}/answers [post]
func (c *AttemptController) SubmitAnswers(ctx *gin.Context) {
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return
	}
	var req dto.BulkAnswersDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.attemptService.SubmitAnswers(uint(attemptID), req); err != nil {
		log.Warn().Err(err).Uint64("attemptID", attemptID).Msg("SubmitAnswers: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CompleteAttempt godoc
// @Summary (User) Complete and grade an attempt
// @Description Grades all answers, finalizes the attempt and, for formative/summative tests, updates paragraph and chapter mastery in the same transaction.
// @Tags User - Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt not in progress"
// @Router /attempts/{attempt_id}/complete [post]
func (c *AttemptController) CompleteAttempt(ctx *gin.Context) {
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return
	}

	detail, err := c.attemptService.CompleteAndGrade(uint(attemptID))
	if err != nil {
		log.Error().Err(err).Uint64("attemptID", attemptID).Msg("CompleteAttempt: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetAttempt godoc
// @Summary (User) Get details of an attempt
// @Description While the attempt is in progress, correct answers and explanations are withheld; once completed, they are included.
// @Tags User - Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return
	}

	detail, err := c.attemptService.GetAttempt(uint(attemptID))
	if err != nil {
		log.Warn().Err(err).Uint64("attemptID", attemptID).Msg("GetAttempt: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetStudentAttempts godoc
// @Summary (User) List a student's attempts on a test
// @Tags User - Attempts
// @Produce json
// @Param test_id path int true "Test ID"
// @Param student_id query int true "Student ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /tests/{test_id}/my-attempts [get]
func (c *AttemptController) GetStudentAttempts(ctx *gin.Context) {
	testID, err := strconv.ParseUint(ctx.Param("test_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Test ID format"})
		return
	}
	studentID, err := strconv.ParseUint(ctx.Query("student_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Student ID format in query"})
		return
	}

	attempts, err := c.attemptService.GetStudentAttempts(uint(testID), uint(studentID))
	if err != nil {
		log.Error().Err(err).Uint64("testID", testID).Msg("GetStudentAttempts: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
