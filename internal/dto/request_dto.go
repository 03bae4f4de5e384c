package dto

// WordResultDTO is one word's outcome inside a submitted game round.
type WordResultDTO struct {
	Word    string `json:"word" binding:"required"`
	Correct bool   `json:"correct"`
}

// AttemptSubmitDTO is the raw material of a round: per-word correctness and
// timing. The server owns scoring; clients never send a score or XP.
type AttemptSubmitDTO struct {
	AccountID        uint            `json:"account_id" binding:"required"`
	TimeSpentSeconds int             `json:"time_spent_seconds" binding:"gte=0"`
	Completed        bool            `json:"completed"`
	Results          []WordResultDTO `json:"results" binding:"required,min=1,dive"`
}

type AccountCreateDTO struct {
	Nickname         string `json:"nickname" binding:"required"`
	SubscriptionTier string `json:"subscription_tier" binding:"omitempty,oneof=free premium"`
}

type WordCreateDTO struct {
	Text            string `json:"text" binding:"required"`
	Definition      string `json:"definition"`
	Synonyms        string `json:"synonyms"`
	Antonyms        string `json:"antonyms"`
	ExampleSentence string `json:"example_sentence"`
}

// UnitCreateDTO is for admins creating a unit together with its word list.
type UnitCreateDTO struct {
	TestType string          `json:"test_type" binding:"required"`
	Sequence int             `json:"sequence" binding:"required,min=1"`
	Title    string          `json:"title" binding:"required"`
	Words    []WordCreateDTO `json:"words" binding:"required,min=1,dive"`
}

type ParentLinkCreateDTO struct {
	ParentID uint `json:"parent_id" binding:"required"`
}

type ParentLinkRedeemDTO struct {
	StudentID  uint   `json:"student_id" binding:"required"`
	InviteCode string `json:"invite_code" binding:"required"`
}
