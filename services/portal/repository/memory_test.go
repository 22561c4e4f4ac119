package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashpatel/fileportal/internal/pkg/models"
)

func TestMemoryOTPRepo_CreateAndVerify(t *testing.T) {
	repo := NewMemoryOTPRepo(10 * time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.CreateOTP(ctx, &models.OTP{ID: "otp-1", Login: "YPatel@corp.example.com", Code: "12345"}))

	ok, err := repo.VerifyOTP(ctx, "ypatel@corp.example.com", "12345")
	assert.NoError(t, err)
	assert.True(t, ok)

	// Consumed on success.
	ok, err = repo.VerifyOTP(ctx, "ypatel@corp.example.com", "12345")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryOTPRepo_ReplaceOnResend(t *testing.T) {
	repo := NewMemoryOTPRepo(10 * time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.CreateOTP(ctx, &models.OTP{ID: "otp-1", Login: "a@b.co", Code: "11111"}))
	require.NoError(t, repo.CreateOTP(ctx, &models.OTP{ID: "otp-2", Login: "a@b.co", Code: "22222"}))

	ok, err := repo.VerifyOTP(ctx, "a@b.co", "11111")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.VerifyOTP(ctx, "a@b.co", "22222")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryOTPRepo_Expiry(t *testing.T) {
	repo := NewMemoryOTPRepo(10 * time.Minute)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repo.CreateOTP(ctx, &models.OTP{
		ID:        "otp-1",
		Login:     "a@b.co",
		Code:      "12345",
		CreatedAt: now.Add(-2 * time.Minute),
		ExpiresAt: now.Add(-time.Minute),
	}))

	ok, err := repo.VerifyOTP(ctx, "a@b.co", "12345")
	assert.NoError(t, err)
	assert.False(t, ok)

	otp, err := repo.GetOTP(ctx, "a@b.co")
	assert.NoError(t, err)
	assert.Nil(t, otp)
}

func TestMemoryOTPRepo_GetOTPPeeks(t *testing.T) {
	repo := NewMemoryOTPRepo(10 * time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.CreateOTP(ctx, &models.OTP{ID: "otp-1", Login: "a@b.co", Code: "12345"}))

	otp, err := repo.GetOTP(ctx, "a@b.co")
	require.NoError(t, err)
	require.NotNil(t, otp)
	assert.Equal(t, "12345", otp.Code)

	ok, err := repo.VerifyOTP(ctx, "a@b.co", "12345")
	assert.NoError(t, err)
	assert.True(t, ok)
}
