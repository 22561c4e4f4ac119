package gateway

import (
	"context"
	"net/http"

	httpclient "github.com/yashpatel/fileportal/internal/pkg/http"
	"github.com/yashpatel/fileportal/internal/pkg/models"
)

// accountCandidates returns the account route candidates: the configured
// path first, then the common conventions.
func (g *BackendClient) accountCandidates(method string) []httpclient.Candidate {
	raw := []string{g.cfg.Backend.Paths.Accounts, "/accounts", "/api/accounts"}

	seen := make(map[string]bool, len(raw))
	candidates := make([]httpclient.Candidate, 0, len(raw))
	for _, p := range raw {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		candidates = append(candidates, httpclient.Candidate{Path: p, Method: method})
	}
	return candidates
}

func decodeAccount(m map[string]interface{}) models.Account {
	return models.Account{
		AccountID:    stringField(m, "accountId", "account_id", "id"),
		ClientName:   stringField(m, "clientName", "client_name"),
		AccountName:  stringField(m, "accountName", "account_name"),
		GSTNumber:    stringField(m, "gstNumber", "gst_number"),
		ContactEmail: stringField(m, "contactEmail", "contact_email"),
		ContactPhone: stringField(m, "contactPhone", "contact_phone"),
		Status:       stringField(m, "status"),
	}
}

// ListAccounts fetches all account records.
func (g *BackendClient) ListAccounts(ctx context.Context, creds models.Credentials) ([]models.Account, error) {
	res, err := g.client.DoWithFallback(ctx, g.accountCandidates(http.MethodGet), nil, creds)
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		return nil, &models.UpstreamError{Status: res.Status, Message: res.Message()}
	}

	raw := extractList(res.Data, "data", "accounts")
	accounts := make([]models.Account, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			accounts = append(accounts, decodeAccount(m))
		}
	}
	return accounts, nil
}

// AddAccount creates an account record. The backend expects snake_case
// field names for accounts.
func (g *BackendClient) AddAccount(ctx context.Context, creds models.Credentials, input *models.AccountInput) (*models.Account, error) {
	payload := map[string]interface{}{
		"client_name":   input.ClientName,
		"account_name":  input.AccountName,
		"gst_number":    orNil(input.GSTNumber),
		"contact_email": orNil(input.ContactEmail),
		"contact_phone": orNil(input.ContactPhone),
	}

	res, err := g.client.DoWithFallback(ctx, g.accountCandidates(http.MethodPost), payload, creds)
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		return nil, &models.UpstreamError{Status: res.Status, Message: res.Message()}
	}

	account := decodeAccount(extractRecord(res.Data, "data", "account"))
	if account.ClientName == "" {
		account.ClientName = input.ClientName
	}
	if account.AccountName == "" {
		account.AccountName = input.AccountName
	}
	return &account, nil
}

func orNil(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
