package admin

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/internal/dto"
	"github.com/vocabquest/server/internal/service"
	"gorm.io/gorm"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

func (c *AdminController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/accounts", c.CreateAccount)
	rg.POST("/units", c.CreateUnit)
	rg.POST("/units/:unit_id/words/import", c.ImportWords)
}

// CreateAccount godoc
// @Summary (Admin) Create an account
// @Tags admin
// @Accept json
// @Produce json
// @Param account body dto.AccountCreateDTO true "Nickname and optional tier"
// @Success 201 {object} model.Account
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/accounts [post]
func (c *AdminController) CreateAccount(ctx *gin.Context) {
	var req dto.AccountCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AccountCreateDTO")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	account, err := c.adminService.CreateAccount(req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create account"})
		return
	}
	ctx.JSON(http.StatusCreated, account)
}

// CreateUnit godoc
// @Summary (Admin) Create a unit with its word list
// @Tags admin
// @Accept json
// @Produce json
// @Param unit body dto.UnitCreateDTO true "Unit data including words"
// @Success 201 {object} dto.UnitDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Sequence already taken for this test type"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/units [post]
func (c *AdminController) CreateUnit(ctx *gin.Context) {
	var req dto.UnitCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind UnitCreateDTO")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	unit, err := c.adminService.CreateUnit(req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSequence) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Failed to create unit")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create unit"})
		return
	}
	ctx.JSON(http.StatusCreated, unit)
}

// ImportWords godoc
// @Summary (Admin) Import words into a unit from a spreadsheet
// @Description Accepts an .xlsx or .csv upload. Existing words are skipped; bad rows are reported, not fatal.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Param file formData file true "Word list file (.xlsx or .csv)"
// @Success 200 {object} dto.ImportResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unit not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/units/{unit_id}/words/import [post]
func (c *AdminController) ImportWords(ctx *gin.Context) {
	unitID, err := strconv.ParseUint(ctx.Param("unit_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid unit_id format"})
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "file form field is required"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		log.Error().Err(err).Msg("ImportWords: failed to save upload")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to store uploaded file"})
		return
	}
	defer os.Remove(tmpPath)

	result, err := c.adminService.ImportWords(uint(unitID), tmpPath)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("unitID", unitID).Msg("Failed to import words")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to import words: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
