package scheduler

import (
	"fmt"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/config"
	"github.com/vocabquest/server/internal/service"
)

// Scheduler owns the background jobs. Today that is a single nightly pass
// that repairs drifted leaderboard entries.
type Scheduler struct {
	cron    gocron.Scheduler
	cfg     *config.Config
	leaders service.LeaderboardService
}

func NewScheduler(cfg *config.Config, leaders service.LeaderboardService) (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{cron: cron, cfg: cfg, leaders: leaders}, nil
}

func (s *Scheduler) Start() error {
	if !s.cfg.Scheduler.ReconcileEnabled {
		log.Info().Msg("Leaderboard reconcile job disabled by config")
		return nil
	}

	// 02:00 server time, when submissions are quietest.
	_, err := s.cron.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(2, 0, 0))),
		gocron.NewTask(s.reconcile),
	)
	if err != nil {
		return fmt.Errorf("failed to register reconcile job: %w", err)
	}

	s.cron.Start()
	log.Info().Msg("Scheduler started, nightly leaderboard reconcile at 02:00")
	return nil
}

func (s *Scheduler) Stop() error {
	return s.cron.Shutdown()
}

func (s *Scheduler) reconcile() {
	repaired, err := s.leaders.Reconcile()
	if err != nil {
		log.Error().Err(err).Msg("Leaderboard reconcile run failed")
		return
	}
	log.Info().Int("repaired", repaired).Msg("Leaderboard reconcile run finished")
}
