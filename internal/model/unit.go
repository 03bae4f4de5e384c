package model

import (
	"time"

	"gorm.io/gorm"
)

// Unit is a static content grouping: an ordered slice of a test-type's word
// list. Unlock state is derived from progress, never stored here.
type Unit struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	TestType  string         `json:"test_type" gorm:"not null;uniqueIndex:idx_units_type_seq"` // "ssat", "sat", ...
	Sequence  int            `json:"sequence" gorm:"not null;uniqueIndex:idx_units_type_seq"`
	Title     string         `json:"title" gorm:"not null"`
	Words     []Word         `json:"words,omitempty" gorm:"foreignKey:UnitID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Word struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UnitID          uint           `json:"unit_id" gorm:"not null;index"`
	Text            string         `json:"text" gorm:"not null"`
	Definition      string         `json:"definition,omitempty" gorm:"type:text"`
	Synonyms        string         `json:"synonyms,omitempty" gorm:"type:text"`
	Antonyms        string         `json:"antonyms,omitempty" gorm:"type:text"`
	ExampleSentence string         `json:"example_sentence,omitempty" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
