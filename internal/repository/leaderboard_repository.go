package repository

import (
	"github.com/vocabquest/server/internal/model"
	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	FindByAccountAndTestType(accountID uint, testType string) (*model.LeaderboardEntry, error)
	Top(testType string, limit int) ([]model.LeaderboardEntry, error)
	FindAll() ([]model.LeaderboardEntry, error)
	Save(entry *model.LeaderboardEntry) error
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) FindByAccountAndTestType(accountID uint, testType string) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	err := r.db.Where("account_id = ? AND test_type = ?", accountID, testType).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *leaderboardRepository) Top(testType string, limit int) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.db.Preload("Account").
		Where("test_type = ?", testType).
		Order("total_xp DESC, updated_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *leaderboardRepository) FindAll() ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.db.Find(&entries).Error
	return entries, err
}

func (r *leaderboardRepository) Save(entry *model.LeaderboardEntry) error {
	return r.db.Save(entry).Error
}
