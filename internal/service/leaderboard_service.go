package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/internal/dto"
	"github.com/vocabquest/server/internal/progression"
	"github.com/vocabquest/server/internal/repository"
	"gorm.io/gorm"
)

type LeaderboardService interface {
	Top(testType string, limit int) ([]dto.LeaderboardRowDTO, error)
	Summary(accountID uint, testType string) (*dto.AccountSummaryDTO, error)
	// Reconcile re-derives every cached entry from its progress records and
	// repairs drift. Returns how many entries were repaired.
	Reconcile() (int, error)
}

type leaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
	progressRepo    repository.ProgressRepository
	accountRepo     repository.AccountRepository
}

func NewLeaderboardService(
	leaderboardRepo repository.LeaderboardRepository,
	progressRepo repository.ProgressRepository,
	accountRepo repository.AccountRepository,
) LeaderboardService {
	return &leaderboardService{
		leaderboardRepo: leaderboardRepo,
		progressRepo:    progressRepo,
		accountRepo:     accountRepo,
	}
}

func (s *leaderboardService) Top(testType string, limit int) ([]dto.LeaderboardRowDTO, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	entries, err := s.leaderboardRepo.Top(testType, limit)
	if err != nil {
		log.Error().Err(err).Str("testType", testType).Msg("Top: failed to load leaderboard")
		return nil, fmt.Errorf("error fetching leaderboard: %w", err)
	}

	rows := make([]dto.LeaderboardRowDTO, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, dto.LeaderboardRowDTO{
			Rank:      i + 1,
			AccountID: e.AccountID,
			Nickname:  e.Account.Nickname,
			Level:     e.Level,
			TotalXP:   e.TotalXP,
			Streak:    e.Streak,
		})
	}
	return rows, nil
}

func (s *leaderboardService) Summary(accountID uint, testType string) (*dto.AccountSummaryDTO, error) {
	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("account not found with ID %d: %w", accountID, err)
	}

	summary := dto.AccountSummaryDTO{
		AccountID: account.ID,
		Nickname:  account.Nickname,
		TestType:  testType,
		Level:     1,
	}
	entry, err := s.leaderboardRepo.FindByAccountAndTestType(accountID, testType)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Nothing played yet; the zero-state summary is the answer.
	case err != nil:
		return nil, fmt.Errorf("error fetching leaderboard entry: %w", err)
	default:
		summary.Level = entry.Level
		summary.TotalXP = entry.TotalXP
		summary.Streak = entry.Streak
		summary.LastStudyDate = entry.LastStudyDate
	}
	return &summary, nil
}

func (s *leaderboardService) Reconcile() (int, error) {
	entries, err := s.leaderboardRepo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("error loading leaderboard entries: %w", err)
	}

	repaired := 0
	for i := range entries {
		entry := entries[i]
		derived, err := s.progressRepo.SumXPByAccountAndTestType(entry.AccountID, entry.TestType)
		if err != nil {
			log.Error().Err(err).Uint("accountID", entry.AccountID).Str("testType", entry.TestType).
				Msg("Reconcile: failed to derive XP total")
			continue
		}
		if derived == entry.TotalXP {
			continue
		}
		log.Warn().Uint("accountID", entry.AccountID).Str("testType", entry.TestType).
			Int("cached", entry.TotalXP).Int("derived", derived).
			Msg("Reconcile: leaderboard entry drifted, repairing")
		entry.TotalXP = derived
		entry.Level = progression.LevelForXP(derived)
		if err := s.leaderboardRepo.Save(&entry); err != nil {
			log.Error().Err(err).Uint("accountID", entry.AccountID).Msg("Reconcile: failed to save repair")
			continue
		}
		repaired++
	}
	return repaired, nil
}
