package repository

import (
	"github.com/vocabquest/server/internal/model"
	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(content *model.GeneratedContent) error
	FindLatest(unitID uint, kind string) (*model.GeneratedContent, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(content *model.GeneratedContent) error {
	return r.db.Create(content).Error
}

func (r *contentRepository) FindLatest(unitID uint, kind string) (*model.GeneratedContent, error) {
	var content model.GeneratedContent
	err := r.db.Where("unit_id = ? AND kind = ?", unitID, kind).
		Order("created_at DESC, id DESC").
		First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}
