package models

import "time"

// ActionResult is the outcome every auth use case returns across the trust
// boundary. Reason carries a deliberately generic message when OK is false;
// distinct internal failures map many-to-one onto these messages so callers
// cannot enumerate accounts.
type ActionResult struct {
	OK     bool
	Reason string
}

// LoginResult extends ActionResult with the issued token material. The
// fields are set only when OK is true.
type LoginResult struct {
	ActionResult
	Token            string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

func Success() ActionResult {
	return ActionResult{OK: true}
}

func Failure(reason string) ActionResult {
	return ActionResult{OK: false, Reason: reason}
}
