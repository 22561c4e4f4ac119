package models

import "fmt"

// Login types persisted in the login_type cookie after password login.
const (
	LoginTypeSuperAdmin = "SUPERADMIN"
	LoginTypeUser       = "USER"
)

// Credentials is the per-request credential threaded through every backend
// call. It replaces the process-wide bearer variable of earlier revisions so
// concurrent requests from different sessions cannot race.
type Credentials struct {
	Bearer string
}

// SendCodeRequest is the payload for the OTP send endpoints.
type SendCodeRequest struct {
	Login string `json:"login"`
}

// VerifyRequest is the payload for the code verification endpoint.
type VerifyRequest struct {
	Login string `json:"login"`
	Code  string `json:"code"`
}

// PasswordLoginRequest is the payload for the password login endpoint.
type PasswordLoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AcceptTermsRequest is the payload for the terms acceptance endpoint.
type AcceptTermsRequest struct {
	Login string `json:"login"`
}

// SendCodeResult reports the outcome of an OTP send. Code is only populated
// in dev-visibility mode.
type SendCodeResult struct {
	OK   bool   `json:"ok"`
	Code string `json:"code,omitempty"`
}

// PasswordLoginResult reports the outcome of a password login attempt.
// NeedsVerification is set when the backend rejected the login because the
// email is not verified yet; a verification code has already been sent as a
// side effect in that case.
type PasswordLoginResult struct {
	OK                bool
	Login             string
	LoginType         string
	Token             string
	Message           string
	NeedsVerification bool
}

// BackendLoginResult is the raw outcome of the adapter's password login.
type BackendLoginResult struct {
	OK      bool
	Message string
}

// UpstreamError is a definitive backend failure surfaced verbatim to the
// caller. Status carries the upstream HTTP status code.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream request failed (status %d)", e.Status)
}
