package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/yashpatel/fileportal/internal/pkg/models"
)

// ErrMissingAccountField is returned when an account create request lacks
// its required fields. The message is user-facing.
var ErrMissingAccountField = errors.New("client name and account name are required")

// ListAccounts returns all backend account records.
func (uc *PortalUC) ListAccounts(ctx context.Context, creds models.Credentials) ([]models.Account, error) {
	return uc.backendGW.ListAccounts(ctx, creds)
}

// AddAccount creates an account record after validating the required fields.
func (uc *PortalUC) AddAccount(ctx context.Context, creds models.Credentials, input *models.AccountInput) (*models.Account, error) {
	input.ClientName = strings.TrimSpace(input.ClientName)
	input.AccountName = strings.TrimSpace(input.AccountName)
	if input.ClientName == "" || input.AccountName == "" {
		return nil, ErrMissingAccountField
	}

	return uc.backendGW.AddAccount(ctx, creds, input)
}
