package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/config"
	"github.com/vocabquest/server/internal/dto"
	"github.com/vocabquest/server/internal/gamecatalog"
	"github.com/vocabquest/server/internal/model"
	"github.com/vocabquest/server/internal/progression"
	"github.com/vocabquest/server/internal/repository"
)

type UnitService interface {
	ListUnits(testType string, accountID uint) ([]dto.UnitSummaryDTO, error)
	GetUnitDetails(unitID, accountID uint) (*dto.UnitDetailDTO, error)
	StartSession(unitID uint, gameID string, accountID uint) (*dto.GameSessionDTO, error)
}

type unitService struct {
	gateChecker
	accountRepo repository.AccountRepository
	attemptRepo repository.AttemptRepository
}

func NewUnitService(
	cfg *config.Config,
	unitRepo repository.UnitRepository,
	progressRepo repository.ProgressRepository,
	accountRepo repository.AccountRepository,
	attemptRepo repository.AttemptRepository,
) UnitService {
	return &unitService{
		gateChecker: gateChecker{cfg: cfg, unitRepo: unitRepo, progressRepo: progressRepo},
		accountRepo: accountRepo,
		attemptRepo: attemptRepo,
	}
}

type progressKey struct {
	unitID uint
	game   string
}

// ListUnits walks the test-type's units in sequence order and derives every
// lock state on the fly: nothing about unlocking is ever read from storage.
func (s *unitService) ListUnits(testType string, accountID uint) ([]dto.UnitSummaryDTO, error) {
	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("account not found with ID %d: %w", accountID, err)
	}
	units, err := s.unitRepo.FindByTestTypeWithWordCount(testType)
	if err != nil {
		log.Error().Err(err).Str("testType", testType).Msg("ListUnits: failed to load units")
		return nil, fmt.Errorf("error fetching units: %w", err)
	}
	records, err := s.progressRepo.FindByAccountAndTestType(accountID, testType)
	if err != nil {
		return nil, fmt.Errorf("error fetching progress: %w", err)
	}

	byKey := make(map[progressKey]model.ProgressRecord, len(records))
	byUnit := make(map[uint][]model.ProgressRecord)
	for _, rec := range records {
		byKey[progressKey{rec.UnitID, rec.Game}] = rec
		byUnit[rec.UnitID] = append(byUnit[rec.UnitID], rec)
	}

	allowance := allowanceFor(s.cfg, account)
	summaries := make([]dto.UnitSummaryDTO, 0, len(units))
	prevDone, prevTotal := 0, gamecatalog.RequiredCount()

	for _, uwc := range units {
		unit := uwc.Unit
		unitRecords := byUnit[unit.ID]

		unlocked := progression.UnitPlayable(unit.Sequence, prevDone, prevTotal, allowance)
		lockReason := ""
		if !unlocked {
			if !progression.WithinAllowance(unit.Sequence, allowance) {
				lockReason = "subscription"
			} else {
				lockReason = "sequence"
			}
		}

		learnDone, learnTotal := learnProgress(unitRecords)
		games := make([]dto.GameProgressDTO, 0, len(gamecatalog.Games()))
		for _, g := range gamecatalog.Games() {
			rec := byKey[progressKey{unit.ID, g.ID}]
			gameUnlocked := unlocked
			if g.Section == gamecatalog.SectionChallenge && !progression.ChallengeUnlocked(learnDone, learnTotal) {
				gameUnlocked = false
			}
			games = append(games, dto.GameProgressDTO{
				Game:         g.ID,
				Title:        g.Title,
				Section:      g.Section,
				Required:     g.Required,
				Unlocked:     gameUnlocked,
				AttemptCount: rec.AttemptCount,
				BestScore:    rec.BestScore,
				TotalXP:      rec.TotalXP,
				Completed:    rec.Completed,
			})
		}

		summaries = append(summaries, dto.UnitSummaryDTO{
			ID:         unit.ID,
			TestType:   unit.TestType,
			Sequence:   unit.Sequence,
			Title:      unit.Title,
			WordCount:  uwc.WordCount,
			Unlocked:   unlocked,
			LockReason: lockReason,
			Games:      games,
		})

		// This unit's required completion feeds the next unit's gate.
		prevDone, prevTotal = requiredProgress(unitRecords)
	}

	return summaries, nil
}

func (s *unitService) GetUnitDetails(unitID, accountID uint) (*dto.UnitDetailDTO, error) {
	unit, err := s.unitRepo.FindByIDWithWords(unitID)
	if err != nil {
		log.Error().Err(err).Uint("unitID", unitID).Msg("GetUnitDetails: unit not found")
		return nil, fmt.Errorf("unit not found with ID %d: %w", unitID, err)
	}

	var resp dto.UnitDetailDTO
	if err := copier.Copy(&resp, unit); err != nil {
		return nil, fmt.Errorf("error preparing unit details: %w", err)
	}

	records, err := s.progressRepo.FindByAccountAndUnit(accountID, unitID)
	if err != nil {
		return nil, fmt.Errorf("error fetching progress: %w", err)
	}
	byGame := make(map[string]model.ProgressRecord, len(records))
	for _, rec := range records {
		byGame[rec.Game] = rec
	}
	learnDone, learnTotal := learnProgress(records)
	for _, g := range gamecatalog.Games() {
		rec := byGame[g.ID]
		resp.Games = append(resp.Games, dto.GameProgressDTO{
			Game:         g.ID,
			Title:        g.Title,
			Section:      g.Section,
			Required:     g.Required,
			Unlocked:     g.Section != gamecatalog.SectionChallenge || progression.ChallengeUnlocked(learnDone, learnTotal),
			AttemptCount: rec.AttemptCount,
			BestScore:    rec.BestScore,
			TotalXP:      rec.TotalXP,
			Completed:    rec.Completed,
		})
	}
	return &resp, nil
}

// StartSession picks the question set for a round. Priority-selection games
// re-test words missed in the last few attempts; everything else gets the
// full unit list, shuffled.
func (s *unitService) StartSession(unitID uint, gameID string, accountID uint) (*dto.GameSessionDTO, error) {
	game, ok := gamecatalog.Get(gameID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, gameID)
	}
	unit, err := s.unitRepo.FindByIDWithWords(unitID)
	if err != nil {
		return nil, fmt.Errorf("unit not found with ID %d: %w", unitID, err)
	}
	if len(unit.Words) == 0 {
		// Recoverable "no content": the client returns to the dashboard.
		return nil, fmt.Errorf("%w: unit %d", ErrNoContent, unitID)
	}
	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("account not found with ID %d: %w", accountID, err)
	}
	if err := s.checkPlayable(account, unit, game); err != nil {
		return nil, err
	}

	byText := make(map[string]model.Word, len(unit.Words))
	texts := make([]string, 0, len(unit.Words))
	for _, w := range unit.Words {
		byText[w.Text] = w
		texts = append(texts, w.Text)
	}

	selected := texts
	remediation := false
	if game.PrioritySelection {
		attempts, err := s.attemptRepo.FindRecent(accountID, unitID, game.ID, progression.PriorityAttemptWindow)
		if err != nil {
			return nil, fmt.Errorf("error fetching recent attempts: %w", err)
		}
		recentWrong := make([][]string, 0, len(attempts))
		for _, a := range attempts {
			recentWrong = append(recentWrong, a.WrongWordList())
		}
		selected, remediation = progression.PriorityWords(recentWrong, texts, nil)
	} else {
		selected = progression.Shuffle(texts, nil)
	}

	words := make([]dto.WordDTO, 0, len(selected))
	for _, text := range selected {
		w := byText[text]
		words = append(words, dto.WordDTO{
			ID:              w.ID,
			Text:            w.Text,
			Definition:      w.Definition,
			Synonyms:        w.Synonyms,
			Antonyms:        w.Antonyms,
			ExampleSentence: w.ExampleSentence,
		})
	}

	return &dto.GameSessionDTO{
		UnitID:      unit.ID,
		Game:        game.ID,
		Remediation: remediation,
		Words:       words,
	}, nil
}
