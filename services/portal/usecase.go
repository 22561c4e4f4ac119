package portal

import (
	"context"

	"github.com/yashpatel/fileportal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/yashpatel/fileportal/services/portal PortalUC

// PortalUC represents the portal usecase interface
type PortalUC interface {
	// sign-in flow
	SendCode(ctx context.Context, login string) (*models.SendCodeResult, error)
	VerifyCode(ctx context.Context, login, code string) (bool, error)
	PasswordLogin(ctx context.Context, login, password string) (*models.PasswordLoginResult, error)
	AcceptTerms(ctx context.Context, login string) (bool, error)
	Register(ctx context.Context, req *models.RegisterRequest) error
	IsSuperAdmin(ctx context.Context, login string) bool

	// dashboard data
	ListFiles(ctx context.Context, creds models.Credentials, login string) ([]models.FileRecord, error)

	// user management
	ListUsers(ctx context.Context, creds models.Credentials) ([]models.User, error)
	AddUser(ctx context.Context, creds models.Credentials, input *models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, creds models.Credentials, input *models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, creds models.Credentials, id int) (bool, error)

	// account management
	ListAccounts(ctx context.Context, creds models.Credentials) ([]models.Account, error)
	AddAccount(ctx context.Context, creds models.Credentials, input *models.AccountInput) (*models.Account, error)
}
