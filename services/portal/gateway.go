package portal

import (
	"context"

	"github.com/yashpatel/fileportal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/yashpatel/fileportal/services/portal BackendGW

// BackendGW translates each logical portal operation into HTTP calls
// against the external REST backend.
type BackendGW interface {
	// auth operations
	SendCode(ctx context.Context, login string) (bool, error)
	VerifyCode(ctx context.Context, login, code string) (bool, error)
	LoginWithPassword(ctx context.Context, login, password string) (*models.BackendLoginResult, error)
	AcceptTerms(ctx context.Context, login string) (bool, error)
	IsSuperAdmin(ctx context.Context, login string) (bool, error)

	// file operations
	ListFiles(ctx context.Context, creds models.Credentials, login string) ([]models.FileRecord, error)

	// user operations
	ListUsers(ctx context.Context, creds models.Credentials) ([]models.User, error)
	AddUser(ctx context.Context, creds models.Credentials, input *models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, creds models.Credentials, input *models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, creds models.Credentials, id int) (bool, error)
	NotifyTempPassword(ctx context.Context, email, name, tempPassword string) (bool, error)

	// account operations
	ListAccounts(ctx context.Context, creds models.Credentials) ([]models.Account, error)
	AddAccount(ctx context.Context, creds models.Credentials, input *models.AccountInput) (*models.Account, error)
}
