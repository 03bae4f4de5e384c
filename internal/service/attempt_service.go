package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/config"
	"github.com/vocabquest/server/internal/dto"
	"github.com/vocabquest/server/internal/gamecatalog"
	"github.com/vocabquest/server/internal/model"
	"github.com/vocabquest/server/internal/progression"
	"github.com/vocabquest/server/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttemptService is the scoring authority: it turns raw per-word results
// into a scored, persisted attempt and the refreshed progression state.
type AttemptService interface {
	Submit(unitID uint, gameID string, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error)
}

type attemptService struct {
	gateChecker
	accountRepo repository.AccountRepository
	db          *gorm.DB
	now         func() time.Time
}

func NewAttemptService(
	cfg *config.Config,
	unitRepo repository.UnitRepository,
	progressRepo repository.ProgressRepository,
	accountRepo repository.AccountRepository,
	db *gorm.DB,
) AttemptService {
	return &attemptService{
		gateChecker: gateChecker{cfg: cfg, unitRepo: unitRepo, progressRepo: progressRepo},
		accountRepo: accountRepo,
		db:          db,
		now:         time.Now,
	}
}

// Submit validates the gates, scores the round and applies it in a single
// transaction keyed by (account, unit, game): attempt append, progress
// record read-modify-write, leaderboard projection rewrite. Two rapid
// submissions serialize on the row lock instead of losing an update.
func (s *attemptService) Submit(unitID uint, gameID string, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error) {
	game, ok := gamecatalog.Get(gameID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, gameID)
	}

	unit, err := s.unitRepo.FindByID(unitID)
	if err != nil {
		return nil, fmt.Errorf("unit not found with ID %d: %w", unitID, err)
	}
	account, err := s.accountRepo.FindByID(req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("account not found with ID %d: %w", req.AccountID, err)
	}
	if err := s.checkPlayable(account, unit, game); err != nil {
		return nil, err
	}

	totalCount := len(req.Results)
	correctCount := 0
	var wrongWords []string
	for _, res := range req.Results {
		if res.Correct {
			correctCount++
		} else {
			wrongWords = append(wrongWords, res.Word)
		}
	}

	now := s.now()
	attempt := model.Attempt{
		AccountID:        account.ID,
		UnitID:           unit.ID,
		Game:             game.ID,
		Score:            progression.Score(correctCount, totalCount),
		CorrectCount:     correctCount,
		TotalCount:       totalCount,
		TimeSpentSeconds: req.TimeSpentSeconds,
		Completed:        req.Completed,
		SubmittedAt:      now,
	}
	if err := attempt.SetWrongWords(wrongWords); err != nil {
		return nil, fmt.Errorf("encoding wrong words: %w", err)
	}

	var (
		record   model.ProgressRecord
		entry    model.LeaderboardEntry
		oldLevel int
	)

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return fmt.Errorf("appending attempt: %w", err)
		}

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_id = ? AND unit_id = ? AND game = ?", account.ID, unit.ID, game.ID).
			First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = model.ProgressRecord{AccountID: account.ID, UnitID: unit.ID, Game: game.ID}
		} else if err != nil {
			return fmt.Errorf("loading progress record: %w", err)
		}
		applyAttempt(&record, &attempt, game)
		if err := tx.Save(&record).Error; err != nil {
			return fmt.Errorf("saving progress record: %w", err)
		}

		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_id = ? AND test_type = ?", account.ID, unit.TestType).
			First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry = model.LeaderboardEntry{AccountID: account.ID, TestType: unit.TestType, Level: 1}
		} else if err != nil {
			return fmt.Errorf("loading leaderboard entry: %w", err)
		}
		oldLevel = entry.Level

		totalXP, err := sumXPInTx(tx, account.ID, unit.TestType)
		if err != nil {
			return fmt.Errorf("summing progress XP: %w", err)
		}
		entry.TotalXP = totalXP
		entry.Level = progression.LevelForXP(totalXP)
		entry.Streak = progression.NextStreak(entry.Streak, entry.LastStudyDate, now)
		entry.LastStudyDate = &now

		if err := tx.Save(&entry).Error; err != nil {
			return fmt.Errorf("saving leaderboard entry: %w", err)
		}
		return nil
	})
	if txErr != nil {
		// XP was computed but nothing persisted; the caller must see this
		// as a lost update, not a silent success.
		log.Error().Err(txErr).Uint("accountID", account.ID).Uint("unitID", unit.ID).Str("game", game.ID).
			Msg("Submit: transaction failed, progress not saved")
		return nil, fmt.Errorf("%w: %v", ErrProgressNotSaved, txErr)
	}

	log.Info().Uint("accountID", account.ID).Uint("unitID", unit.ID).Str("game", game.ID).
		Int("score", attempt.Score).Int("totalXP", entry.TotalXP).Int("level", entry.Level).
		Int("streak", entry.Streak).Msg("Attempt recorded")

	return &dto.AttemptResultDTO{
		AttemptID:    attempt.ID,
		Score:        attempt.Score,
		CorrectCount: attempt.CorrectCount,
		TotalCount:   attempt.TotalCount,
		AttemptXP:    progression.AttemptXP(attempt.Score, attempt.TimeSpentSeconds, attempt.TotalCount),
		GameXP:       record.TotalXP,
		GameComplete: record.Completed,
		TotalXP:      entry.TotalXP,
		Level:        entry.Level,
		LeveledUp:    entry.Level > oldLevel,
		Streak:       entry.Streak,
	}, nil
}

// sumXPInTx mirrors ProgressRepository.SumXPByAccountAndTestType inside the
// submission transaction so the projection it writes can never drift from
// what the transaction itself just committed.
func sumXPInTx(tx *gorm.DB, accountID uint, testType string) (int, error) {
	var total int64
	err := tx.Model(&model.ProgressRecord{}).
		Joins("JOIN units ON units.id = progress_records.unit_id").
		Where("progress_records.account_id = ? AND units.test_type = ?", accountID, testType).
		Select("COALESCE(SUM(progress_records.total_xp), 0)").
		Scan(&total).Error
	return int(total), err
}
