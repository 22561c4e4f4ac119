package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yashpatel/fileportal/internal/pkg/jwt"
	"github.com/yashpatel/fileportal/internal/pkg/logger"
	"github.com/yashpatel/fileportal/internal/pkg/models"
	"github.com/yashpatel/fileportal/internal/utils"
)

// Backend phrasings that mean the account exists but the email address has
// not been verified yet.
var needsVerificationRe = regexp.MustCompile(`(?i)not\s+verified|verify\s+your|unverified|verification\s+(is\s+)?required`)

func (uc *PortalUC) normalize(raw string) (string, error) {
	return utils.NormalizeLogin(raw, uc.cfg.Auth.EmailDomain, uc.cfg.Auth.DomainRewrite)
}

// SendCode issues a verification code for the login. In local OTP mode the
// code is generated and stored here; otherwise the backend sends it.
func (uc *PortalUC) SendCode(ctx context.Context, login string) (*models.SendCodeResult, error) {
	normalized, err := uc.normalize(login)
	if err != nil {
		return nil, err
	}

	if uc.cfg.OTP.LocalMode {
		code := utils.GenerateOTPCode(uc.cfg.OTP.Digits)
		now := time.Now()
		otp := &models.OTP{
			ID:        uuid.New().String(),
			Login:     normalized,
			Code:      code,
			CreatedAt: now,
			ExpiresAt: now.Add(time.Duration(uc.cfg.OTP.TTLMinutes) * time.Minute),
		}
		if err := uc.otpRepo.CreateOTP(ctx, otp); err != nil {
			return nil, err
		}

		logger.Info("Generated local verification code",
			logger.String("login", normalized))

		result := &models.SendCodeResult{OK: true}
		if uc.cfg.OTP.ShowDevOTP {
			result.Code = code
		}
		return result, nil
	}

	ok, err := uc.backendGW.SendCode(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return &models.SendCodeResult{OK: ok}, nil
}

// VerifyCode checks a verification code. A configured expected code takes
// precedence over both the local store and the backend, for fixed-code
// demo environments.
func (uc *PortalUC) VerifyCode(ctx context.Context, login, code string) (bool, error) {
	normalized, err := uc.normalize(login)
	if err != nil {
		return false, err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return false, nil
	}

	if expected := uc.cfg.Auth.ExpectedOTP; expected != "" {
		return code == expected, nil
	}

	if uc.cfg.OTP.LocalMode {
		return uc.otpRepo.VerifyOTP(ctx, normalized, code)
	}

	return uc.backendGW.VerifyCode(ctx, normalized, code)
}

// PasswordLogin authenticates the login against the backend and resolves
// the session's login type. Backend unreachability is reported as a failed
// attempt rather than an error so the sign-in page can show a message.
func (uc *PortalUC) PasswordLogin(ctx context.Context, login, password string) (*models.PasswordLoginResult, error) {
	normalized, err := uc.normalize(login)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return &models.PasswordLoginResult{OK: false, Message: "enter your password"}, nil
	}

	res, err := uc.backendGW.LoginWithPassword(ctx, normalized, password)
	if err != nil {
		logger.Warn("Password login backend unreachable",
			logger.String("login", normalized),
			logger.Err(err))
		return &models.PasswordLoginResult{OK: false, Message: "Couldn't reach the server"}, nil
	}

	if !res.OK {
		result := &models.PasswordLoginResult{OK: false, Message: res.Message}
		if needsVerificationRe.MatchString(res.Message) {
			result.NeedsVerification = true
			if _, sendErr := uc.SendCode(ctx, normalized); sendErr != nil {
				logger.Warn("Failed to send verification code after unverified login",
					logger.String("login", normalized),
					logger.Err(sendErr))
			}
		}
		return result, nil
	}

	loginType := models.LoginTypeUser
	if uc.IsSuperAdmin(ctx, normalized) {
		loginType = models.LoginTypeSuperAdmin
	}

	result := &models.PasswordLoginResult{
		OK:        true,
		Login:     normalized,
		LoginType: loginType,
		Message:   res.Message,
	}

	if uc.cfg.JWT.Secret != "" {
		token, _, tokenErr := jwt.GenerateToken(normalized, loginType, uc.cfg.JWT)
		if tokenErr != nil {
			return nil, tokenErr
		}
		result.Token = token
	}

	return result, nil
}

// AcceptTerms records the login's terms acceptance.
func (uc *PortalUC) AcceptTerms(ctx context.Context, login string) (bool, error) {
	normalized, err := uc.normalize(login)
	if err != nil {
		return false, err
	}
	return uc.backendGW.AcceptTerms(ctx, normalized)
}

// IsSuperAdmin resolves superadmin status: the local allowlist wins, then
// the backend lookup. Lookup failures degrade to a regular user session.
func (uc *PortalUC) IsSuperAdmin(ctx context.Context, login string) bool {
	for _, admin := range uc.cfg.Auth.SuperAdmins {
		if strings.EqualFold(strings.TrimSpace(admin), login) {
			return true
		}
	}

	ok, err := uc.backendGW.IsSuperAdmin(ctx, login)
	if err != nil {
		logger.Warn("Superadmin lookup failed, treating as regular user",
			logger.String("login", login),
			logger.Err(err))
		return false
	}
	return ok
}
