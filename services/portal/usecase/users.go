package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/yashpatel/fileportal/internal/pkg/logger"
	"github.com/yashpatel/fileportal/internal/pkg/models"
)

// Validation failures surfaced to the caller. Messages are user-facing.
var (
	ErrEmailExists      = errors.New("an account with this email already exists")
	ErrMissingUserField = errors.New("name, email and mobile are required")
	ErrMissingUserID    = errors.New("a valid user id is required")
)

// Register self-registers a new user via the admin create route, after
// checking the email is not already taken. The temporary password email is
// best effort.
func (uc *PortalUC) Register(ctx context.Context, req *models.RegisterRequest) error {
	name := strings.TrimSpace(strings.TrimSpace(req.FirstName) + " " + strings.TrimSpace(req.LastName))
	mobile := strings.TrimSpace(req.Phone)
	if mobile == "" {
		mobile = strings.TrimSpace(req.Mobile)
	}
	if name == "" || mobile == "" || strings.TrimSpace(req.Password) == "" {
		return ErrMissingUserField
	}

	email, err := uc.normalize(req.Email)
	if err != nil {
		return err
	}

	creds := models.Credentials{}
	existing, err := uc.backendGW.ListUsers(ctx, creds)
	if err != nil {
		return err
	}
	for _, u := range existing {
		if strings.EqualFold(u.Email, email) {
			return ErrEmailExists
		}
	}

	input := &models.UserInput{
		Name:         name,
		Email:        email,
		Mobile:       mobile,
		TempPassword: req.Password,
	}
	if _, err := uc.backendGW.AddUser(ctx, creds, input); err != nil {
		return err
	}

	if _, notifyErr := uc.backendGW.NotifyTempPassword(ctx, email, name, req.Password); notifyErr != nil {
		logger.Warn("Failed to send credentials email after registration",
			logger.String("email", email),
			logger.Err(notifyErr))
	}
	return nil
}

// ListUsers returns all backend user records.
func (uc *PortalUC) ListUsers(ctx context.Context, creds models.Credentials) ([]models.User, error) {
	return uc.backendGW.ListUsers(ctx, creds)
}

// AddUser creates a user record after validating the required fields.
func (uc *PortalUC) AddUser(ctx context.Context, creds models.Credentials, input *models.UserInput) (*models.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Mobile = strings.TrimSpace(input.Mobile)
	if input.Name == "" || input.Mobile == "" {
		return nil, ErrMissingUserField
	}

	email, err := uc.normalize(input.Email)
	if err != nil {
		return nil, err
	}
	input.Email = email

	return uc.backendGW.AddUser(ctx, creds, input)
}

// UpdateUser updates a user record after validating the required fields.
func (uc *PortalUC) UpdateUser(ctx context.Context, creds models.Credentials, input *models.UserUpdate) (*models.User, error) {
	if input.ID <= 0 {
		return nil, ErrMissingUserID
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Mobile = strings.TrimSpace(input.Mobile)
	if input.Name == "" || input.Mobile == "" {
		return nil, ErrMissingUserField
	}

	email, err := uc.normalize(input.Email)
	if err != nil {
		return nil, err
	}
	input.Email = email

	return uc.backendGW.UpdateUser(ctx, creds, input)
}

// DeleteUser removes a user record.
func (uc *PortalUC) DeleteUser(ctx context.Context, creds models.Credentials, id int) (bool, error) {
	if id <= 0 {
		return false, ErrMissingUserID
	}
	return uc.backendGW.DeleteUser(ctx, creds, id)
}
