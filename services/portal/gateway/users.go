package gateway

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	httpclient "github.com/yashpatel/fileportal/internal/pkg/http"
	"github.com/yashpatel/fileportal/internal/pkg/logger"
	"github.com/yashpatel/fileportal/internal/pkg/models"
)

func (g *BackendClient) usersListPath() string {
	if p := g.cfg.Backend.Paths.UsersList; p != "" {
		return p
	}
	return g.cfg.Backend.Paths.Users
}

func (g *BackendClient) usersCreatePath() string {
	if p := g.cfg.Backend.Paths.UsersCreate; p != "" {
		return p
	}
	return g.cfg.Backend.Paths.Users
}

func (g *BackendClient) usersUpdatePath(id int) string {
	p := g.cfg.Backend.Paths.UsersUpdate
	if p == "" {
		p = g.cfg.Backend.Paths.Users
	}
	return withID(p, id)
}

func (g *BackendClient) usersDeletePath(id int) string {
	p := g.cfg.Backend.Paths.UsersDelete
	if p == "" {
		p = g.cfg.Backend.Paths.Users
	}
	return withID(p, id)
}

// withID substitutes an {id} placeholder or appends the id as a path
// segment. A zero id returns the path untouched.
func withID(path string, id int) string {
	if id <= 0 {
		return strings.ReplaceAll(path, "/{id}", "")
	}
	idStr := strconv.Itoa(id)
	if strings.Contains(path, "{id}") {
		return strings.ReplaceAll(path, "{id}", idStr)
	}
	if strings.HasSuffix(path, "/") {
		return path + idStr
	}
	return path + "/" + idStr
}

// userBody builds the outgoing payload honoring the configured field-name
// remapping.
func (g *BackendClient) userBody(name, email, mobile, tempPassword string) map[string]interface{} {
	keys := g.cfg.Backend.UserKeys
	body := map[string]interface{}{
		keys.Name:   name,
		keys.Email:  email,
		keys.Mobile: mobile,
	}
	if tempPassword != "" {
		body[keys.TempPassword] = tempPassword
	}
	return body
}

// decodeUser reshapes an upstream user record into the portal shape.
func (g *BackendClient) decodeUser(m map[string]interface{}) models.User {
	keys := g.cfg.Backend.UserKeys
	return models.User{
		ID:           intField(m, "id", "userId", "user_id", "userID", "_id"),
		Name:         stringField(m, "name", keys.Name),
		Email:        stringField(m, "email", keys.Email),
		Mobile:       stringField(m, "mobile", keys.Mobile),
		TempPassword: stringField(m, "tempPassword", "temp_password", keys.TempPassword),
	}
}

// ListUsers fetches all user records. Upstream failures yield an empty
// listing; only transport failures surface as errors.
func (g *BackendClient) ListUsers(ctx context.Context, creds models.Credentials) ([]models.User, error) {
	res, err := g.client.Do(ctx, http.MethodGet, g.usersListPath(), nil, creds)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return []models.User{}, nil
	}

	raw := extractList(res.Data, "users", "data")
	users := make([]models.User, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			users = append(users, g.decodeUser(m))
		}
	}
	return users, nil
}

// AddUser creates a user record, probing the method-swapped and
// "/create"-suffixed variants when the primary route is unknown upstream.
func (g *BackendClient) AddUser(ctx context.Context, creds models.Credentials, input *models.UserInput) (*models.User, error) {
	body := g.userBody(input.Name, input.Email, input.Mobile, input.TempPassword)

	method := g.cfg.Backend.Methods.UsersCreate
	primary := g.usersCreatePath()

	candidates := []httpclient.Candidate{{Path: primary, Method: method}}
	altMethod := http.MethodPut
	if method != http.MethodPost {
		altMethod = http.MethodPost
	}
	candidates = append(candidates, httpclient.Candidate{Path: primary, Method: altMethod})
	if !strings.HasSuffix(primary, "/create") {
		candidates = append(candidates, httpclient.Candidate{
			Path:   strings.TrimRight(primary, "/") + "/create",
			Method: method,
		})
	}

	res, err := g.client.DoWithFallback(ctx, candidates, body, creds)
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		return nil, &models.UpstreamError{Status: res.Status, Message: res.Message()}
	}

	user := g.decodeUser(extractRecord(res.Data, "user", "data"))
	fillUserDefaults(&user, input.Name, input.Email, input.Mobile, input.TempPassword)
	return &user, nil
}

// UpdateUser updates a user record. Falls back through the method-swapped
// variant, the id-in-body variant, and finally the create route (some
// backends upsert on POST).
func (g *BackendClient) UpdateUser(ctx context.Context, creds models.Credentials, input *models.UserUpdate) (*models.User, error) {
	body := g.userBody(input.Name, input.Email, input.Mobile, input.TempPassword)
	body["id"] = input.ID

	method := g.cfg.Backend.Methods.UsersUpdate
	primary := g.usersUpdatePath(input.ID)

	altMethod := http.MethodPatch
	if method != http.MethodPut {
		altMethod = http.MethodPut
	}
	candidates := []httpclient.Candidate{
		{Path: primary, Method: method},
		{Path: primary, Method: altMethod},
		{Path: g.usersUpdatePath(0), Method: method},
		{Path: g.usersCreatePath(), Method: http.MethodPost},
	}

	res, err := g.client.DoWithFallback(ctx, candidates, body, creds)
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		return nil, &models.UpstreamError{Status: res.Status, Message: res.Message()}
	}

	user := g.decodeUser(extractRecord(res.Data, "user", "data"))
	if user.ID == 0 {
		user.ID = input.ID
	}
	fillUserDefaults(&user, input.Name, input.Email, input.Mobile, "")
	return &user, nil
}

// DeleteUser removes a user record. Candidates vary in whether the id
// travels in the path or the body, so the fallback loop is inlined here.
func (g *BackendClient) DeleteUser(ctx context.Context, creds models.Credentials, id int) (bool, error) {
	method := g.cfg.Backend.Methods.UsersDelete
	primary := g.usersDeletePath(id)

	delSuffix := primary
	if !strings.HasSuffix(primary, "/delete") {
		delSuffix = strings.TrimRight(g.usersDeletePath(0), "/") + "/delete"
	}

	candidates := []httpclient.Candidate{
		{Path: primary, Method: method},
		{Path: g.usersDeletePath(0), Method: method},
		{Path: delSuffix, Method: method},
	}
	if method == http.MethodDelete {
		candidates = append(candidates, httpclient.Candidate{Path: delSuffix, Method: http.MethodPost})
	}
	if !g.cfg.Backend.RouteProbing {
		candidates = candidates[:1]
	}

	idStr := strconv.Itoa(id)
	for _, cand := range candidates {
		var body interface{}
		if !strings.Contains(cand.Path, idStr) {
			body = map[string]interface{}{"id": id}
		}

		res, err := g.client.Do(ctx, cand.Method, cand.Path, body, creds)
		if err != nil {
			return false, err
		}
		if res.Success() {
			return true, nil
		}
		if res.Status != http.StatusNotFound && res.Status != http.StatusMethodNotAllowed {
			break
		}

		logger.Warn("Backend route candidate rejected, probing next",
			logger.String("method", cand.Method),
			logger.String("path", cand.Path),
			logger.Int("status", res.Status))
	}
	return false, nil
}

// NotifyTempPassword emails credentials via the backend's notify endpoint.
// Skipped silently when no path is configured, to avoid guaranteed 404s.
func (g *BackendClient) NotifyTempPassword(ctx context.Context, email, name, tempPassword string) (bool, error) {
	path := g.cfg.Backend.Paths.NotifyTemp
	if path == "" {
		return false, nil
	}

	body := map[string]interface{}{
		"email":        email,
		"tempPassword": tempPassword,
	}
	if name != "" {
		body["name"] = name
	}

	res, err := g.client.Do(ctx, http.MethodPost, path, body, models.Credentials{})
	if err != nil {
		return false, err
	}
	return res.OK, nil
}

func fillUserDefaults(u *models.User, name, email, mobile, tempPassword string) {
	if u.Name == "" {
		u.Name = name
	}
	if u.Email == "" {
		u.Email = email
	}
	if u.Mobile == "" {
		u.Mobile = mobile
	}
	if u.TempPassword == "" {
		u.TempPassword = tempPassword
	}
}
