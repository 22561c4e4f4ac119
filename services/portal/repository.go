package portal

import (
	"context"

	"github.com/yashpatel/fileportal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/yashpatel/fileportal/services/portal OTPRepo

// OTPRepo is the one-time passcode store used in local OTP mode. Entries
// are keyed by the lower-cased login and expire after their TTL.
type OTPRepo interface {
	// CreateOTP stores the entry, replacing any live entry for the login.
	CreateOTP(ctx context.Context, otp *models.OTP) error
	// VerifyOTP reports whether an unexpired entry with the given code
	// exists, consuming it on success. Each entry verifies at most once.
	VerifyOTP(ctx context.Context, login, code string) (bool, error)
	// GetOTP peeks at the live entry without consuming it. Returns nil
	// when no unexpired entry exists.
	GetOTP(ctx context.Context, login string) (*models.OTP, error)
}
