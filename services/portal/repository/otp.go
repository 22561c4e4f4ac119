package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yashpatel/fileportal/internal/pkg/constants"
	"github.com/yashpatel/fileportal/internal/pkg/database"
	"github.com/yashpatel/fileportal/internal/pkg/models"
)

// RedisOTPRepo stores OTP entries in Redis with a TTL, for deployments
// where the portal runs more than one replica.
type RedisOTPRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewRedisOTPRepo creates a Redis-backed OTP store
func NewRedisOTPRepo(redisClient *database.RedisClient, ttl time.Duration) *RedisOTPRepo {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisOTPRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func otpKey(login string) string {
	return fmt.Sprintf(constants.KeyPortalOTP, strings.ToLower(login))
}

// CreateOTP stores the entry under the login key, replacing any live entry.
// Redis expiry enforces the TTL.
func (r *RedisOTPRepo) CreateOTP(ctx context.Context, otp *models.OTP) error {
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = time.Now()
	}
	if otp.ExpiresAt.IsZero() {
		otp.ExpiresAt = otp.CreatedAt.Add(r.ttl)
	}

	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	if err := r.redisClient.Set(ctx, otpKey(otp.Login), data, r.ttl); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}
	return nil
}

// VerifyOTP reports whether a live entry with the given code exists and
// consumes it on success, so each code verifies at most once.
func (r *RedisOTPRepo) VerifyOTP(ctx context.Context, login, code string) (bool, error) {
	key := otpKey(login)

	val, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return false, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	if otp.Code != code {
		return false, nil
	}

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return false, fmt.Errorf("failed to consume OTP: %w", err)
	}
	return true, nil
}

// GetOTP peeks at the live entry without consuming it.
func (r *RedisOTPRepo) GetOTP(ctx context.Context, login string) (*models.OTP, error) {
	val, err := r.redisClient.Get(ctx, otpKey(login))
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}
	return &otp, nil
}
