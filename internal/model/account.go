package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	TierFree    = "free"
	TierPremium = "premium"
)

type Account struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Nickname         string         `json:"nickname" gorm:"not null;uniqueIndex"`
	SubscriptionTier string         `json:"subscription_tier" gorm:"not null;default:'free'"` // "free", "premium"
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
