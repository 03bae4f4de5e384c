package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	LinkStatusPending = "pending"
	LinkStatusActive  = "active"
)

// ParentLink connects a parent account to a student account. The parent
// creates the link and hands the invite code to the student; the link only
// grants report access once the student redeems it.
type ParentLink struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	ParentID   uint           `json:"parent_id" gorm:"not null;index"`
	Parent     Account        `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	StudentID  *uint          `json:"student_id,omitempty" gorm:"index"`
	Student    *Account       `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	InviteCode string         `json:"invite_code" gorm:"not null;uniqueIndex"`
	Status     string         `json:"status" gorm:"not null;default:'pending'"` // "pending", "active"
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
