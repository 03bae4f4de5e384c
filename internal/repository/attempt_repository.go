package repository

import (
	"github.com/vocabquest/server/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindRecent(accountID, unitID uint, game string, limit int) ([]model.Attempt, error)
	FindRecentByAccount(accountID uint, limit int) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

// FindRecent returns the newest attempts first; priority-word selection
// reads the top PriorityAttemptWindow of these.
func (r *attemptRepository) FindRecent(accountID, unitID uint, game string, limit int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("account_id = ? AND unit_id = ? AND game = ?", accountID, unitID, game).
		Order("submitted_at DESC, id DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindRecentByAccount(accountID uint, limit int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("account_id = ?", accountID).
		Order("submitted_at DESC, id DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}
