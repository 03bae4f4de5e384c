package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/config"
	"github.com/vocabquest/server/internal/gamecatalog"
	"github.com/vocabquest/server/internal/model"
	"github.com/vocabquest/server/internal/progression"
	"github.com/vocabquest/server/internal/repository"
	"gorm.io/gorm"
)

// gateChecker evaluates the three unlock gates against live progress.
// Both the session start and the submission path run the same checks, so a
// client cannot play around a locked unit by skipping the session call.
type gateChecker struct {
	cfg          *config.Config
	unitRepo     repository.UnitRepository
	progressRepo repository.ProgressRepository
}

func (g gateChecker) checkPlayable(account *model.Account, unit *model.Unit, game gamecatalog.Game) error {
	if !progression.WithinAllowance(unit.Sequence, allowanceFor(g.cfg, account)) {
		return fmt.Errorf("%w: unit %d exceeds the %s tier allowance", ErrUnitLocked, unit.ID, account.SubscriptionTier)
	}

	if unit.Sequence > 1 {
		prev, err := g.unitRepo.FindBySequence(unit.TestType, unit.Sequence-1)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// A numbering gap in the content must not brick the account.
			log.Warn().Str("test_type", unit.TestType).Int("sequence", unit.Sequence-1).
				Msg("Previous unit missing, skipping sequence gate")
		case err != nil:
			return fmt.Errorf("checking sequence gate: %w", err)
		default:
			records, err := g.progressRepo.FindByAccountAndUnit(account.ID, prev.ID)
			if err != nil {
				return fmt.Errorf("loading previous unit progress: %w", err)
			}
			done, total := requiredProgress(records)
			if !progression.SequenceUnlocked(unit.Sequence, done, total) {
				return fmt.Errorf("%w: unit %d requires completing unit %d first", ErrUnitLocked, unit.ID, prev.ID)
			}
		}
	}

	if game.Section == gamecatalog.SectionChallenge {
		records, err := g.progressRepo.FindByAccountAndUnit(account.ID, unit.ID)
		if err != nil {
			return fmt.Errorf("loading unit progress: %w", err)
		}
		done, total := learnProgress(records)
		if !progression.ChallengeUnlocked(done, total) {
			return fmt.Errorf("%w: finish the learn section of unit %d first", ErrGameLocked, unit.ID)
		}
	}

	return nil
}
