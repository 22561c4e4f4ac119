package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yashpatel/fileportal/internal/pkg/logger"
	"github.com/yashpatel/fileportal/internal/pkg/models"
)

// loginBody duplicates the login under every identifier key the backend
// might expect.
func loginBody(login string) map[string]interface{} {
	return map[string]interface{}{
		"login":      login,
		"email":      login,
		"username":   login,
		"identifier": login,
	}
}

// SendCode asks the backend to send a verification code to the login.
func (g *BackendClient) SendCode(ctx context.Context, login string) (bool, error) {
	res, err := g.client.Do(ctx, http.MethodPost, g.cfg.Backend.Paths.SendCode, loginBody(login), models.Credentials{})
	if err != nil {
		return false, err
	}

	ok := res.OK || flagSet(res.Map(), "ok", "success", "sent", "status")
	return ok, nil
}

// VerifyCode checks a verification code with the backend. The HTTP status
// alone is not trusted here: a 200 carrying {ok:false} must fail.
func (g *BackendClient) VerifyCode(ctx context.Context, login, code string) (bool, error) {
	body := loginBody(login)
	body["code"] = code
	body["otp"] = code
	body["token"] = code

	res, err := g.client.Do(ctx, http.MethodPost, g.cfg.Backend.Paths.VerifyCode, body, models.Credentials{})
	if err != nil {
		return false, err
	}

	return flagSet(res.Map(), "ok", "valid", "verified", "success", "status"), nil
}

// passwordLoginCandidates returns the deduplicated path list for password
// login: the configured path first, then the common conventions.
func (g *BackendClient) passwordLoginCandidates() []string {
	raw := []string{
		g.cfg.Backend.Paths.PasswordLogin,
		"/auth/login",
		"/auth/signin",
		"/auth/password",
		"/login",
	}

	seen := make(map[string]bool, len(raw))
	paths := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}

// LoginWithPassword attempts password login against each candidate path in
// order. Unlike the CRUD fallback, unreachable candidates are skipped
// rather than treated as definitive, because login conventions vary the
// most across backend deployments. Success is detected from flags, token
// presence, a user-shaped object, or a success-sounding message.
func (g *BackendClient) LoginWithPassword(ctx context.Context, login, password string) (*models.BackendLoginResult, error) {
	body := loginBody(login)
	body["password"] = password
	body["pass"] = password

	var fallbackMessage string
	for _, path := range g.passwordLoginCandidates() {
		res, err := g.client.Do(ctx, http.MethodPost, path, body, models.Credentials{})
		if err != nil {
			logger.Warn("Password login candidate unreachable",
				logger.String("path", path),
				logger.Err(err))
			continue
		}

		m := res.Map()
		ok := flagSet(m, "ok", "valid", "authenticated", "success", "status") ||
			hasToken(m) ||
			(hasUserObject(m) && stringField(m, "error") == "") ||
			messageOK(m)
		if ok {
			return &models.BackendLoginResult{OK: true, Message: stringField(m, "message")}, nil
		}

		if fallbackMessage == "" {
			fallbackMessage = stringField(m, "message", "error")
		}
		if !g.cfg.Backend.RouteProbing {
			break
		}
	}

	return &models.BackendLoginResult{OK: false, Message: fallbackMessage}, nil
}

// AcceptTerms records the login's terms acceptance with the backend.
func (g *BackendClient) AcceptTerms(ctx context.Context, login string) (bool, error) {
	body := map[string]interface{}{
		"login":    login,
		"email":    login,
		"accepted": true,
	}

	res, err := g.client.Do(ctx, http.MethodPost, g.cfg.Backend.Paths.AcceptTerms, body, models.Credentials{})
	if err != nil {
		return false, err
	}

	return flagSet(res.Map(), "ok", "accepted", "success", "status"), nil
}

// IsSuperAdmin asks the backend whether the login is a superadmin.
func (g *BackendClient) IsSuperAdmin(ctx context.Context, login string) (bool, error) {
	path := g.cfg.Backend.Paths.SuperAdmin + "?email=" + url.QueryEscape(login)

	res, err := g.client.Do(ctx, http.MethodGet, path, nil, models.Credentials{})
	if err != nil {
		return false, err
	}
	if !res.OK {
		return false, nil
	}

	m := res.Map()
	if m == nil {
		return false, nil
	}
	b, ok := m["superadmin"].(bool)
	return ok && b, nil
}
