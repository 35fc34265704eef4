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

type TestController struct {
	userTestService service.UserTestService
}

func NewTestController(uts service.UserTestService) *TestController {
	return &TestController{userTestService: uts}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Description Get a list of tests with question counts.
// @Tags User - Tests
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *TestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests()
	if err != nil {
		log.Error().Err(err).Msg("GetAllTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve tests", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Get a test with its questions. Correct options and explanations are never included in this view.
// @Tags User - Tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id} [get]
func (c *TestController) GetTestDetails(ctx *gin.Context) {
	testID, err := strconv.ParseUint(ctx.Param("test_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Test ID format"})
		return
	}
	details, err := c.userTestService.GetTestDetails(uint(testID))
	if err != nil {
		log.Warn().Err(err).Uint64("testID", testID).Msg("GetTestDetails: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// GetChapter godoc
// @Summary (User) Get a chapter with its paragraphs
// @Tags User - Tests
// @Produce json
// @Param chapter_id path int true "Chapter ID"
// @Success 200 {object} model.Chapter
// @Failure 400 {object} dto.ErrorResponse "Invalid Chapter ID format"
// @Failure 404 {object} dto.ErrorResponse "Chapter not found"
// @Router /chapters/{chapter_id} [get]
func (c *TestController) GetChapter(ctx *gin.Context) {
	chapterID, err := strconv.ParseUint(ctx.Param("chapter_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Chapter ID format"})
		return
	}
	chapter, err := c.userTestService.GetChapter(uint(chapterID))
	if err != nil {
		log.Warn().Err(err).Uint64("chapterID", chapterID).Msg("GetChapter: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, chapter)
}
