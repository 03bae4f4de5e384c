package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/internal/dto"
	"github.com/vocabquest/server/internal/excel"
	"github.com/vocabquest/server/internal/model"
	"github.com/vocabquest/server/internal/repository"
	"gorm.io/gorm"
)

type AdminService interface {
	CreateAccount(req dto.AccountCreateDTO) (*model.Account, error)
	CreateUnit(req dto.UnitCreateDTO) (*dto.UnitDetailDTO, error)
	ImportWords(unitID uint, filePath string) (*dto.ImportResultDTO, error)
}

type adminService struct {
	unitRepo    repository.UnitRepository
	accountRepo repository.AccountRepository
}

func NewAdminService(unitRepo repository.UnitRepository, accountRepo repository.AccountRepository) AdminService {
	return &adminService{unitRepo: unitRepo, accountRepo: accountRepo}
}

func (s *adminService) CreateAccount(req dto.AccountCreateDTO) (*model.Account, error) {
	account := model.Account{
		Nickname:         req.Nickname,
		SubscriptionTier: req.SubscriptionTier,
	}
	if account.SubscriptionTier == "" {
		account.SubscriptionTier = model.TierFree
	}
	if err := s.accountRepo.Create(&account); err != nil {
		log.Error().Err(err).Str("nickname", req.Nickname).Msg("CreateAccount: failed to create account")
		return nil, fmt.Errorf("error creating account: %w", err)
	}
	log.Info().Uint("accountID", account.ID).Str("nickname", account.Nickname).Msg("Account created")
	return &account, nil
}

func (s *adminService) CreateUnit(req dto.UnitCreateDTO) (*dto.UnitDetailDTO, error) {
	if _, err := s.unitRepo.FindBySequence(req.TestType, req.Sequence); err == nil {
		return nil, fmt.Errorf("%w: %s unit %d", ErrDuplicateSequence, req.TestType, req.Sequence)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking unit sequence: %w", err)
	}

	var unit model.Unit
	if err := copier.Copy(&unit, &req); err != nil {
		return nil, fmt.Errorf("error preparing unit: %w", err)
	}
	if err := s.unitRepo.Create(&unit); err != nil {
		log.Error().Err(err).Str("testType", req.TestType).Int("sequence", req.Sequence).
			Msg("CreateUnit: failed to create unit")
		return nil, fmt.Errorf("error creating unit: %w", err)
	}

	created, err := s.unitRepo.FindByIDWithWords(unit.ID)
	if err != nil {
		return nil, fmt.Errorf("error reloading created unit: %w", err)
	}
	var resp dto.UnitDetailDTO
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("error preparing unit details: %w", err)
	}
	log.Info().Uint("unitID", unit.ID).Str("testType", unit.TestType).Int("sequence", unit.Sequence).
		Int("words", len(created.Words)).Msg("Unit created")
	return &resp, nil
}

// ImportWords loads a spreadsheet into a unit. Rows whose word already exists
// in the unit are skipped, matched case-insensitively, so re-uploading a
// corrected file never duplicates.
func (s *adminService) ImportWords(unitID uint, filePath string) (*dto.ImportResultDTO, error) {
	unit, err := s.unitRepo.FindByID(unitID)
	if err != nil {
		return nil, fmt.Errorf("unit not found with ID %d: %w", unitID, err)
	}

	parsed, rowErrors, err := excel.ParseFile(filePath, excel.DefaultImportConfig())
	if err != nil {
		return nil, fmt.Errorf("error parsing import file: %w", err)
	}

	existing, err := s.unitRepo.FindWordTexts(unitID)
	if err != nil {
		return nil, fmt.Errorf("error fetching existing words: %w", err)
	}
	seen := make(map[string]struct{}, len(existing))
	for _, text := range existing {
		seen[strings.ToLower(text)] = struct{}{}
	}

	result := dto.ImportResultDTO{
		UnitID:         unitID,
		TotalProcessed: len(parsed) + len(rowErrors),
		Errors:         rowErrors,
	}
	var words []model.Word
	for _, p := range parsed {
		key := strings.ToLower(p.Text)
		if _, dup := seen[key]; dup {
			result.Skipped++
			continue
		}
		seen[key] = struct{}{}
		words = append(words, model.Word{
			UnitID:          unitID,
			Text:            p.Text,
			Definition:      p.Definition,
			Synonyms:        p.Synonyms,
			Antonyms:        p.Antonyms,
			ExampleSentence: p.ExampleSentence,
		})
	}
	if len(words) > 0 {
		if err := s.unitRepo.CreateWords(words); err != nil {
			log.Error().Err(err).Uint("unitID", unitID).Msg("ImportWords: failed to insert words")
			return nil, fmt.Errorf("error inserting words: %w", err)
		}
	}
	result.Created = len(words)

	log.Info().Uint("unitID", unit.ID).Int("created", result.Created).Int("skipped", result.Skipped).
		Int("rowErrors", len(rowErrors)).Msg("Word import finished")
	return &result, nil
}
