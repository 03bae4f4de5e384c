package repository

import (
	"github.com/vocabquest/server/internal/model"
	"gorm.io/gorm"
)

type UnitRepository interface {
	Create(unit *model.Unit) error
	FindByID(id uint) (*model.Unit, error)
	FindByIDWithWords(id uint) (*model.Unit, error)
	FindByTestTypeWithWordCount(testType string) ([]UnitWithWordCount, error)
	FindBySequence(testType string, sequence int) (*model.Unit, error)
	CreateWords(words []model.Word) error
	FindWordTexts(unitID uint) ([]string, error)
}

type UnitWithWordCount struct {
	model.Unit
	WordCount int
}

type unitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) Create(unit *model.Unit) error {
	// GORM creates the associated words when unit.Words is populated.
	return r.db.Create(unit).Error
}

func (r *unitRepository) FindByID(id uint) (*model.Unit, error) {
	var unit model.Unit
	if err := r.db.First(&unit, id).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) FindByIDWithWords(id uint) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.Preload("Words", func(db *gorm.DB) *gorm.DB {
		return db.Order("words.id ASC")
	}).First(&unit, id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) FindByTestTypeWithWordCount(testType string) ([]UnitWithWordCount, error) {
	var results []UnitWithWordCount
	err := r.db.Model(&model.Unit{}).
		Select("units.*, (SELECT COUNT(*) FROM words WHERE words.unit_id = units.id AND words.deleted_at IS NULL) as word_count").
		Where("units.test_type = ? AND units.deleted_at IS NULL", testType).
		Order("units.sequence ASC").
		Scan(&results).Error
	return results, err
}

func (r *unitRepository) FindBySequence(testType string, sequence int) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.Where("test_type = ? AND sequence = ?", testType, sequence).First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) CreateWords(words []model.Word) error {
	return r.db.Create(&words).Error
}

func (r *unitRepository) FindWordTexts(unitID uint) ([]string, error) {
	var texts []string
	err := r.db.Model(&model.Word{}).
		Where("unit_id = ?", unitID).
		Order("id ASC").
		Pluck("text", &texts).Error
	return texts, err
}
