package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/internal/dto"
	"github.com/vocabquest/server/internal/service"
)

type StudyController struct {
	unitService        service.UnitService
	attemptService     service.AttemptService
	leaderboardService service.LeaderboardService
	contentService     service.ContentService
}

func NewStudyController(
	unitService service.UnitService,
	attemptService service.AttemptService,
	leaderboardService service.LeaderboardService,
	contentService service.ContentService,
) *StudyController {
	return &StudyController{
		unitService:        unitService,
		attemptService:     attemptService,
		leaderboardService: leaderboardService,
		contentService:     contentService,
	}
}

func (c *StudyController) RegisterRoutes(rg *gin.RouterGroup) {
	units := rg.Group("/units")
	{
		units.GET("", c.ListUnits)
		units.GET("/:unit_id", c.GetUnit)
		units.GET("/:unit_id/games/:game/session", c.StartSession)
		units.POST("/:unit_id/games/:game/attempts", c.SubmitAttempt)
		units.GET("/:unit_id/content/:kind", c.GetContent)
		units.POST("/:unit_id/content/:kind/generate", c.GenerateContent)
	}
	rg.GET("/accounts/:account_id/summary", c.GetSummary)
	rg.GET("/accounts/:account_id/progress", c.GetProgress)
	rg.GET("/leaderboard", c.GetLeaderboard)
}

func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

func parseUintQuery(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Query(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or missing " + name + " query parameter"})
		return 0, false
	}
	return uint(val), true
}

// ListUnits godoc
// @Summary List units with per-account unlock and progress state
// @Description Units of a test type in sequence order, with derived lock state and per-game progress for the given account
// @Tags study
// @Produce json
// @Param test_type query string true "Test type, e.g. ssat"
// @Param account_id query int true "Account ID"
// @Success 200 {array} dto.UnitSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /units [get]
func (c *StudyController) ListUnits(ctx *gin.Context) {
	testType := ctx.Query("test_type")
	if testType == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "test_type query parameter is required"})
		return
	}
	accountID, ok := parseUintQuery(ctx, "account_id")
	if !ok {
		return
	}

	units, err := c.unitService.ListUnits(testType, accountID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to list units")
		return
	}
	ctx.JSON(http.StatusOK, units)
}

// GetUnit godoc
// @Summary Get a unit with its words and per-game progress
// @Tags study
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Param account_id query int true "Account ID"
// @Success 200 {object} dto.UnitDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /units/{unit_id} [get]
func (c *StudyController) GetUnit(ctx *gin.Context) {
	unitID, ok := parseUintParam(ctx, "unit_id")
	if !ok {
		return
	}
	accountID, ok := parseUintQuery(ctx, "account_id")
	if !ok {
		return
	}

	unit, err := c.unitService.GetUnitDetails(unitID, accountID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get unit")
		return
	}
	ctx.JSON(http.StatusOK, unit)
}

// StartSession godoc
// @Summary Start a game round
// @Description Returns the word set for one round. Priority games narrow the set to recently missed words.
// @Tags study
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Param game path string true "Game ID, e.g. flashcards"
// @Param account_id query int true "Account ID"
// @Success 200 {object} dto.GameSessionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Unit or game is locked"
// @Failure 404 {object} dto.ErrorResponse "Unit not found or has no words"
// @Router /units/{unit_id}/games/{game}/session [get]
func (c *StudyController) StartSession(ctx *gin.Context) {
	unitID, ok := parseUintParam(ctx, "unit_id")
	if !ok {
		return
	}
	accountID, ok := parseUintQuery(ctx, "account_id")
	if !ok {
		return
	}

	session, err := c.unitService.StartSession(unitID, ctx.Param("game"), accountID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to start session")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// SubmitAttempt godoc
// @Summary Submit a finished game round
// @Description The server scores the round from per-word results and returns the refreshed progression state
// @Tags study
// @Accept json
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Param game path string true "Game ID"
// @Param attempt body dto.AttemptSubmitDTO true "Per-word results and timing"
// @Success 201 {object} dto.AttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Unit or game is locked"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse "Progress not saved"
// @Router /units/{unit_id}/games/{game}/attempts [post]
func (c *StudyController) SubmitAttempt(ctx *gin.Context) {
	unitID, ok := parseUintParam(ctx, "unit_id")
	if !ok {
		return
	}
	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AttemptSubmitDTO")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := c.attemptService.Submit(unitID, ctx.Param("game"), req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to submit attempt")
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetSummary godoc
// @Summary Get an account's progression summary for a test type
// @Tags study
// @Produce json
// @Param account_id path int true "Account ID"
// @Param test_type query string true "Test type"
// @Success 200 {object} dto.AccountSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /accounts/{account_id}/summary [get]
func (c *StudyController) GetSummary(ctx *gin.Context) {
	accountID, ok := parseUintParam(ctx, "account_id")
	if !ok {
		return
	}
	testType := ctx.Query("test_type")
	if testType == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "test_type query parameter is required"})
		return
	}

	summary, err := c.leaderboardService.Summary(accountID, testType)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get summary")
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetProgress godoc
// @Summary Get an account's per-unit, per-game progress for a test type
// @Description The same derived view the unit dashboard shows, addressed by account
// @Tags study
// @Produce json
// @Param account_id path int true "Account ID"
// @Param test_type query string true "Test type"
// @Success 200 {array} dto.UnitSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /accounts/{account_id}/progress [get]
func (c *StudyController) GetProgress(ctx *gin.Context) {
	accountID, ok := parseUintParam(ctx, "account_id")
	if !ok {
		return
	}
	testType := ctx.Query("test_type")
	if testType == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "test_type query parameter is required"})
		return
	}

	units, err := c.unitService.ListUnits(testType, accountID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get progress")
		return
	}
	ctx.JSON(http.StatusOK, units)
}

// GetLeaderboard godoc
// @Summary Get the top accounts for a test type
// @Tags study
// @Produce json
// @Param test_type query string true "Test type"
// @Param limit query int false "Row limit, default 20, max 100"
// @Success 200 {array} dto.LeaderboardRowDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /leaderboard [get]
func (c *StudyController) GetLeaderboard(ctx *gin.Context) {
	testType := ctx.Query("test_type")
	if testType == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "test_type query parameter is required"})
		return
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	rows, err := c.leaderboardService.Top(testType, limit)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get leaderboard")
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// GetContent godoc
// @Summary Get cached AI study content for a unit
// @Tags study
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Param kind path string true "Content kind: enrichment or reading"
// @Success 200 {object} dto.GeneratedContentDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No cached content"
// @Router /units/{unit_id}/content/{kind} [get]
func (c *StudyController) GetContent(ctx *gin.Context) {
	unitID, ok := parseUintParam(ctx, "unit_id")
	if !ok {
		return
	}

	content, err := c.contentService.Get(unitID, ctx.Param("kind"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to get content")
		return
	}
	ctx.JSON(http.StatusOK, content)
}

// GenerateContent godoc
// @Summary Generate AI study content for a unit
// @Description Calls the generation backend and caches the result. Falls back to the latest cached payload when generation fails.
// @Tags study
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Param kind path string true "Content kind: enrichment or reading"
// @Success 200 {object} dto.GeneratedContentDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse "Generation failed with no cached fallback"
// @Router /units/{unit_id}/content/{kind}/generate [post]
func (c *StudyController) GenerateContent(ctx *gin.Context) {
	unitID, ok := parseUintParam(ctx, "unit_id")
	if !ok {
		return
	}

	content, err := c.contentService.Generate(ctx.Request.Context(), unitID, ctx.Param("kind"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to generate content")
		return
	}
	ctx.JSON(http.StatusOK, content)
}

// respondServiceError maps service sentinels onto HTTP statuses. Anything
// unmapped is a 404 for lookup failures wrapped by the services, otherwise
// a 500.
func respondServiceError(ctx *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, service.ErrUnknownGame), errors.Is(err, service.ErrUnknownContentKind):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrUnitLocked), errors.Is(err, service.ErrGameLocked):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNoContent):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrProgressNotSaved):
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Progress not saved, please resubmit"})
	case errors.Is(err, service.ErrGenerationFailed):
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrLinkRedeemed), errors.Is(err, service.ErrSelfLink), errors.Is(err, service.ErrDuplicateSequence):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case isNotFound(err):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Msg(fallbackMsg)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallbackMsg})
	}
}
