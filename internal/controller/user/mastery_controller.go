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

type MasteryController struct {
	masteryQuery service.MasteryQueryService
}

func NewMasteryController(mq service.MasteryQueryService) *MasteryController {
	return &MasteryController{masteryQuery: mq}
}

// GetParagraphMastery godoc
// @Summary (User) Get a student's mastery for a paragraph
// @Tags User - Mastery
// @Produce json
// @Param student_id path int true "Student ID"
// @Param paragraph_id path int true "Paragraph ID"
// @Success 200 {object} dto.ParagraphMasteryDTO
// @Failure 404 {object} dto.ErrorResponse "No mastery record yet"
// @Router /students/{student_id}/paragraphs/{paragraph_id}/mastery [get]
func (c *MasteryController) GetParagraphMastery(ctx *gin.Context) {
	studentID, paragraphID, ok := parseIDPair(ctx, "student_id", "paragraph_id")
	if !ok {
		return
	}
	mastery, err := c.masteryQuery.GetParagraphMastery(studentID, paragraphID)
	if err != nil {
		log.Warn().Err(err).Uint("studentID", studentID).Uint("paragraphID", paragraphID).Msg("GetParagraphMastery: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, mastery)
}

// GetChapterMastery godoc
// @Summary (User) Get a student's mastery for a chapter
// @Tags User - Mastery
// @Produce json
// @Param student_id path int true "Student ID"
// @Param chapter_id path int true "Chapter ID"
// @Success 200 {object} dto.ChapterMasteryDTO
// @Failure 404 {object} dto.ErrorResponse "No mastery record yet"
// @Router /students/{student_id}/chapters/{chapter_id}/mastery [get]
func (c *MasteryController) GetChapterMastery(ctx *gin.Context) {
	studentID, chapterID, ok := parseIDPair(ctx, "student_id", "chapter_id")
	if !ok {
		return
	}
	mastery, err := c.masteryQuery.GetChapterMastery(studentID, chapterID)
	if err != nil {
		log.Warn().Err(err).Uint("studentID", studentID).Uint("chapterID", chapterID).Msg("GetChapterMastery: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, mastery)
}

// GetChapterMasteryHistory godoc
// @Summary (User) Get the level-transition history for a chapter
// @Tags User - Mastery
// @Produce json
// @Param student_id path int true "Student ID"
// @Param chapter_id path int true "Chapter ID"
// @Success 200 {array} dto.MasteryHistoryEntryDTO
// @Router /students/{student_id}/chapters/{chapter_id}/mastery/history [get]
func (c *MasteryController) GetChapterMasteryHistory(ctx *gin.Context) {
	studentID, chapterID, ok := parseIDPair(ctx, "student_id", "chapter_id")
	if !ok {
		return
	}
	entries, err := c.masteryQuery.GetChapterHistory(studentID, chapterID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Uint("chapterID", chapterID).Msg("GetChapterMasteryHistory: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// GetParagraphMasteryHistory godoc
// @Summary (User) Get the status-transition history for a paragraph
// @Tags User - Mastery
// @Produce json
// @Param student_id path int true "Student ID"
// @Param paragraph_id path int true "Paragraph ID"
// @Success 200 {array} dto.MasteryHistoryEntryDTO
// @Router /students/{student_id}/paragraphs/{paragraph_id}/mastery/history [get]
func (c *MasteryController) GetParagraphMasteryHistory(ctx *gin.Context) {
	studentID, paragraphID, ok := parseIDPair(ctx, "student_id", "paragraph_id")
	if !ok {
		return
	}
	entries, err := c.masteryQuery.GetParagraphHistory(studentID, paragraphID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Uint("paragraphID", paragraphID).Msg("GetParagraphMasteryHistory: service error")
		ctx.JSON(controller.StatusForError(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

func parseIDPair(ctx *gin.Context, firstParam, secondParam string) (uint, uint, bool) {
	first, err := strconv.ParseUint(ctx.Param(firstParam), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + firstParam + " format"})
		return 0, 0, false
	}
	second, err := strconv.ParseUint(ctx.Param(secondParam), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + secondParam + " format"})
		return 0, 0, false
	}
	return uint(first), uint(second), true
}
