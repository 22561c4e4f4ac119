package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/yashpatel/fileportal/internal/pkg/models"
)

// MemoryOTPRepo keeps OTP entries in process memory. Used in local mode
// where no Redis is available. Entries do not survive a restart.
type MemoryOTPRepo struct {
	mu      sync.Mutex
	entries map[string]*models.OTP
	ttl     time.Duration
}

// NewMemoryOTPRepo creates an in-memory OTP store
func NewMemoryOTPRepo(ttl time.Duration) *MemoryOTPRepo {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &MemoryOTPRepo{
		entries: make(map[string]*models.OTP),
		ttl:     ttl,
	}
}

// CreateOTP stores the entry under the login, replacing any live entry.
func (r *MemoryOTPRepo) CreateOTP(ctx context.Context, otp *models.OTP) error {
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = time.Now()
	}
	if otp.ExpiresAt.IsZero() {
		otp.ExpiresAt = otp.CreatedAt.Add(r.ttl)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[strings.ToLower(otp.Login)] = otp
	return nil
}

// VerifyOTP reports whether a live entry with the given code exists and
// consumes it on success. Expired entries are dropped on sight.
func (r *MemoryOTPRepo) VerifyOTP(ctx context.Context, login, code string) (bool, error) {
	key := strings.ToLower(login)

	r.mu.Lock()
	defer r.mu.Unlock()

	otp, found := r.entries[key]
	if !found {
		return false, nil
	}
	if time.Now().After(otp.ExpiresAt) {
		delete(r.entries, key)
		return false, nil
	}
	if otp.Code != code {
		return false, nil
	}

	delete(r.entries, key)
	return true, nil
}

// GetOTP peeks at the live entry without consuming it.
func (r *MemoryOTPRepo) GetOTP(ctx context.Context, login string) (*models.OTP, error) {
	key := strings.ToLower(login)

	r.mu.Lock()
	defer r.mu.Unlock()

	otp, found := r.entries[key]
	if !found {
		return nil, nil
	}
	if time.Now().After(otp.ExpiresAt) {
		delete(r.entries, key)
		return nil, nil
	}
	return otp, nil
}
