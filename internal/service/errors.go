package service

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	ErrUnknownGame        = errors.New("unknown game")
	ErrUnknownContentKind = errors.New("unknown content kind")
	ErrUnitLocked         = errors.New("unit is locked")
	ErrGameLocked         = errors.New("challenge section is locked")
	ErrNoContent          = errors.New("unit has no words")
	ErrProgressNotSaved   = errors.New("progress not saved")
	ErrDuplicateSequence  = errors.New("a unit with this sequence already exists")
	ErrLinkRedeemed       = errors.New("invite code already redeemed")
	ErrSelfLink           = errors.New("cannot link an account to itself")
	ErrGenerationFailed   = errors.New("content generation failed and no cached content exists")
)
