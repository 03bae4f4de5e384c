package service

import (
	"github.com/vocabquest/server/config"
	"github.com/vocabquest/server/internal/gamecatalog"
	"github.com/vocabquest/server/internal/model"
	"github.com/vocabquest/server/internal/progression"
)

// Pure aggregation helpers shared by the submission path, the dashboard
// listing and the reconciliation job. Keeping them free of gorm makes the
// spec's idempotence property directly testable.

// applyAttempt folds one scored attempt into its progress record. BestScore
// tracks the maximum for unlock purposes while TotalXP is recomputed from
// the running sums, so XP always reflects the average attempt rather than
// the lucky one. Every completed attempt counts toward the sums, including
// priority-word re-attempts over a subset of the unit.
func applyAttempt(record *model.ProgressRecord, attempt *model.Attempt, game gamecatalog.Game) {
	record.AttemptCount++
	record.ScoreSum += attempt.Score
	record.TimeSpentSum += attempt.TimeSpentSeconds
	record.QuestionSum += attempt.TotalCount
	if attempt.Score > record.BestScore {
		record.BestScore = attempt.Score
	}
	record.TotalXP = progression.GameXP(record.ScoreSum, record.AttemptCount, record.TimeSpentSum, record.QuestionSum)
	if !record.Completed && gamecatalog.AttemptCompletes(game, attempt.Score, attempt.Completed) {
		record.Completed = true
	}
	record.LastAttemptAt = attempt.SubmittedAt
}

// requiredProgress counts completed required games among a unit's records.
// The total always comes from the catalog, so a unit with no records yet
// still reports the full requirement.
func requiredProgress(records []model.ProgressRecord) (done, total int) {
	total = gamecatalog.RequiredCount()
	for _, rec := range records {
		g, ok := gamecatalog.Get(rec.Game)
		if !ok || !g.Required || !rec.Completed {
			continue
		}
		done++
	}
	return done, total
}

// learnProgress counts completed learn-section games; the challenge section
// gate reads this.
func learnProgress(records []model.ProgressRecord) (done, total int) {
	total = gamecatalog.LearnCount()
	for _, rec := range records {
		g, ok := gamecatalog.Get(rec.Game)
		if !ok || g.Section != gamecatalog.SectionLearn || !rec.Completed {
			continue
		}
		done++
	}
	return done, total
}

// sumProgressXP derives the leaderboard total from progress records: the
// invariant is that the cached LeaderboardEntry always equals this sum.
func sumProgressXP(records []model.ProgressRecord) int {
	total := 0
	for _, rec := range records {
		total += rec.TotalXP
	}
	return total
}

// allowanceFor resolves the subscription gate: how many units this account
// may play. Zero or negative means unlimited.
func allowanceFor(cfg *config.Config, account *model.Account) int {
	if account.SubscriptionTier == model.TierPremium {
		return 0
	}
	return cfg.Subscription.FreeUnitLimit
}
