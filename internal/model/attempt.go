package model

import (
	"encoding/json"
	"time"
)

// Attempt is one completed play of one game for one unit by one account.
// Rows are appended on submission and never mutated afterwards, so there is
// no UpdatedAt and no soft delete.
type Attempt struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	AccountID        uint      `json:"account_id" gorm:"not null;index:idx_attempts_lookup"`
	UnitID           uint      `json:"unit_id" gorm:"not null;index:idx_attempts_lookup"`
	Game             string    `json:"game" gorm:"not null;index:idx_attempts_lookup"`
	Score            int       `json:"score" gorm:"not null"` // 0-100
	CorrectCount     int       `json:"correct_count" gorm:"not null"`
	TotalCount       int       `json:"total_count" gorm:"not null"`
	TimeSpentSeconds int       `json:"time_spent_seconds" gorm:"not null"`
	Completed        bool      `json:"completed" gorm:"not null"`
	WrongWords       string    `json:"-" gorm:"type:text"` // JSON array of word text
	SubmittedAt      time.Time `json:"submitted_at" gorm:"autoCreateTime;index"`
	CreatedAt        time.Time `json:"created_at"`
}

// SetWrongWords stores the missed words as a JSON array.
func (a *Attempt) SetWrongWords(words []string) error {
	if len(words) == 0 {
		a.WrongWords = "[]"
		return nil
	}
	b, err := json.Marshal(words)
	if err != nil {
		return err
	}
	a.WrongWords = string(b)
	return nil
}

// WrongWordList decodes the stored JSON array. A malformed or empty column
// decodes to nil rather than failing the caller.
func (a *Attempt) WrongWordList() []string {
	if a.WrongWords == "" {
		return nil
	}
	var words []string
	if err := json.Unmarshal([]byte(a.WrongWords), &words); err != nil {
		return nil
	}
	return words
}
