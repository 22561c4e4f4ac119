package usecase

import (
	"github.com/yashpatel/fileportal/internal/pkg/models"
	"github.com/yashpatel/fileportal/services/portal"
)

// PortalUC implements the portal usecase interface
type PortalUC struct {
	cfg       *models.Config
	otpRepo   portal.OTPRepo
	backendGW portal.BackendGW
}

// NewPortalUC creates a new portal usecase
func NewPortalUC(
	cfg *models.Config,
	otpRepo portal.OTPRepo,
	backendGW portal.BackendGW,
) *PortalUC {
	return &PortalUC{
		cfg:       cfg,
		otpRepo:   otpRepo,
		backendGW: backendGW,
	}
}
