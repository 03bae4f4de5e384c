package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/internal/dto"
	"github.com/vocabquest/server/internal/service"
	"gorm.io/gorm"
)

type ParentController struct {
	parentService service.ParentService
}

func NewParentController(parentService service.ParentService) *ParentController {
	return &ParentController{parentService: parentService}
}

func (c *ParentController) RegisterRoutes(rg *gin.RouterGroup) {
	links := rg.Group("/parent-links")
	{
		links.POST("", c.CreateLink)
		links.POST("/redeem", c.RedeemLink)
	}
	rg.GET("/parents/:account_id/report", c.GetReport)
}

// CreateLink godoc
// @Summary Create a parent invite code
// @Tags parents
// @Accept json
// @Produce json
// @Param link body dto.ParentLinkCreateDTO true "Parent account ID"
// @Success 201 {object} dto.ParentLinkDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /parent-links [post]
func (c *ParentController) CreateLink(ctx *gin.Context) {
	var req dto.ParentLinkCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ParentLinkCreateDTO")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	link, err := c.parentService.CreateLink(req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to create parent link")
		return
	}
	ctx.JSON(http.StatusCreated, link)
}

// RedeemLink godoc
// @Summary Redeem an invite code for a student account
// @Tags parents
// @Accept json
// @Produce json
// @Param redeem body dto.ParentLinkRedeemDTO true "Student ID and invite code"
// @Success 200 {object} dto.ParentLinkDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Invite code not found"
// @Failure 409 {object} dto.ErrorResponse "Code already redeemed or self-link"
// @Router /parent-links/redeem [post]
func (c *ParentController) RedeemLink(ctx *gin.Context) {
	var req dto.ParentLinkRedeemDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ParentLinkRedeemDTO")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	link, err := c.parentService.RedeemLink(req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to redeem invite code")
		return
	}
	ctx.JSON(http.StatusOK, link)
}

// GetReport godoc
// @Summary Get a parent's progress report over linked students
// @Tags parents
// @Produce json
// @Param account_id path int true "Parent account ID"
// @Param test_type query string true "Test type"
// @Success 200 {object} dto.ParentReportDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /parents/{account_id}/report [get]
func (c *ParentController) GetReport(ctx *gin.Context) {
	parentID, ok := parseUintParam(ctx, "account_id")
	if !ok {
		return
	}
	testType := ctx.Query("test_type")
	if testType == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "test_type query parameter is required"})
		return
	}

	report, err := c.parentService.Report(parentID, testType)
	if err != nil {
		respondServiceError(ctx, err, "Failed to build parent report")
		return
	}
	ctx.JSON(http.StatusOK, report)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
