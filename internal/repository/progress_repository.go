package repository

import (
	"github.com/vocabquest/server/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	FindByAccountAndUnit(accountID, unitID uint) ([]model.ProgressRecord, error)
	FindByAccountAndTestType(accountID uint, testType string) ([]model.ProgressRecord, error)
	SumXPByAccountAndTestType(accountID uint, testType string) (int, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) FindByAccountAndUnit(accountID, unitID uint) ([]model.ProgressRecord, error) {
	var records []model.ProgressRecord
	err := r.db.Where("account_id = ? AND unit_id = ?", accountID, unitID).Find(&records).Error
	return records, err
}

func (r *progressRepository) FindByAccountAndTestType(accountID uint, testType string) ([]model.ProgressRecord, error) {
	var records []model.ProgressRecord
	err := r.db.
		Joins("JOIN units ON units.id = progress_records.unit_id").
		Where("progress_records.account_id = ? AND units.test_type = ?", accountID, testType).
		Find(&records).Error
	return records, err
}

// SumXPByAccountAndTestType derives the leaderboard total from the source of
// truth. The reconciliation job compares the cached entry against this.
func (r *progressRepository) SumXPByAccountAndTestType(accountID uint, testType string) (int, error) {
	var total int64
	err := r.db.Model(&model.ProgressRecord{}).
		Joins("JOIN units ON units.id = progress_records.unit_id").
		Where("progress_records.account_id = ? AND units.test_type = ?", accountID, testType).
		Select("COALESCE(SUM(progress_records.total_xp), 0)").
		Scan(&total).Error
	return int(total), err
}
