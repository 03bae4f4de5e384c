package model

import (
	"time"
)

// LeaderboardEntry is a cached projection per (account, test type): its
// TotalXP must always equal the sum of that test-type's ProgressRecord XP.
// It is rewritten inside every submission transaction and re-derived by the
// nightly reconciliation job; it is never an independent source of truth.
type LeaderboardEntry struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	AccountID     uint       `json:"account_id" gorm:"not null;uniqueIndex:idx_leaderboard_key"`
	Account       Account    `json:"account,omitempty" gorm:"foreignKey:AccountID"`
	TestType      string     `json:"test_type" gorm:"not null;uniqueIndex:idx_leaderboard_key"`
	Level         int        `json:"level" gorm:"not null;default:1"`
	TotalXP       int        `json:"total_xp" gorm:"not null;index"`
	Streak        int        `json:"streak" gorm:"not null"`
	LastStudyDate *time.Time `json:"last_study_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
