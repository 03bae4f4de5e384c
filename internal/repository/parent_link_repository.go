package repository

import (
	"github.com/vocabquest/server/internal/model"
	"gorm.io/gorm"
)

type ParentLinkRepository interface {
	Create(link *model.ParentLink) error
	Update(link *model.ParentLink) error
	FindByCode(inviteCode string) (*model.ParentLink, error)
	FindActiveByParent(parentID uint) ([]model.ParentLink, error)
}

type parentLinkRepository struct {
	db *gorm.DB
}

func NewParentLinkRepository(db *gorm.DB) ParentLinkRepository {
	return &parentLinkRepository{db: db}
}

func (r *parentLinkRepository) Create(link *model.ParentLink) error {
	return r.db.Create(link).Error
}

func (r *parentLinkRepository) Update(link *model.ParentLink) error {
	return r.db.Save(link).Error
}

func (r *parentLinkRepository) FindByCode(inviteCode string) (*model.ParentLink, error) {
	var link model.ParentLink
	if err := r.db.Where("invite_code = ?", inviteCode).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *parentLinkRepository) FindActiveByParent(parentID uint) ([]model.ParentLink, error) {
	var links []model.ParentLink
	err := r.db.Preload("Student").
		Where("parent_id = ? AND status = ?", parentID, model.LinkStatusActive).
		Find(&links).Error
	return links, err
}
