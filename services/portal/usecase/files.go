package usecase

import (
	"context"

	"github.com/yashpatel/fileportal/internal/pkg/models"
)

// ListFiles returns the file listing scoped to the login.
func (uc *PortalUC) ListFiles(ctx context.Context, creds models.Credentials, login string) ([]models.FileRecord, error) {
	normalized, err := uc.normalize(login)
	if err != nil {
		return nil, err
	}
	return uc.backendGW.ListFiles(ctx, creds, normalized)
}
