package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lorikeets/internal/controller"
	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
	attemptService   service.AttemptService
}

func NewAdminTestController(ats service.AdminTestService, as service.AttemptService) *AdminTestController {
	return &AdminTestController{adminTestService: ats, attemptService: as}
}

// CreateTest godoc
// @Summary (Admin) Create a test with its questions and options
// @Description Authoring input is validated against the grading rules: choice questions must carry a consistent correct-option set.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.TestCreateDTO true "Test definition"
// @Success 201 {object} dto.TestDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Chapter or paragraph not found"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	created, err := c.adminTestService.CreateTest(req)
	if err != nil {
		log.Warn().Err(err).Msg("CreateTest: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// CreateChapter godoc
// @Summary (Admin) Create a chapter with its paragraphs
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.ChapterCreateDTO true "Chapter definition"
// @Success 201 {object} model.Chapter
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/chapters [post]
func (c *AdminTestController) CreateChapter(ctx *gin.Context) {
	var req dto.ChapterCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	chapter, err := c.adminTestService.CreateChapter(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateChapter: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, chapter)
}

// ReviewAnswer godoc
// @Summary (Admin) Manually grade a short answer on a completed attempt
// @Description Assigns points to a short answer and rescores the attempt. Mastery records are not re-run.
// @Tags Admin
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param question_id path int true "Question ID"
// @Param request body dto.ReviewAnswerDTO true "Assigned points"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Attempt, question, or answer not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt not completed or question not reviewable"
// @Router /admin/attempts/{attempt_id}/questions/{question_id}/review [post]
func (c *AdminTestController) ReviewAnswer(ctx *gin.Context) {
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
	var req dto.ReviewAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	detail, err := c.attemptService.ReviewAnswer(uint(attemptID), uint(questionID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("attemptID", attemptID).Uint64("questionID", questionID).Msg("ReviewAnswer: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
