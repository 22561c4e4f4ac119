package models

import "time"

// OTP represents a one-time passcode entry keyed by the normalized login.
// At most one live entry exists per login; the entry is consumed on the
// first successful verification or dropped once ExpiresAt passes.
type OTP struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
