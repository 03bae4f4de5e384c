package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ContentKindEnrichment = "enrichment"
	ContentKindReading    = "reading"
)

// GeneratedContent caches AI-generated material per (unit, kind). The most
// recent row is the fallback when a fresh generation call fails.
type GeneratedContent struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UnitID    uint           `json:"unit_id" gorm:"not null;index:idx_content_unit_kind"`
	Kind      string         `json:"kind" gorm:"not null;index:idx_content_unit_kind"` // "enrichment", "reading"
	Payload   string         `json:"payload" gorm:"type:text;not null"`                // JSON document
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
