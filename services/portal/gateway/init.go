package gateway

import (
	httpclient "github.com/yashpatel/fileportal/internal/pkg/http"
	"github.com/yashpatel/fileportal/internal/pkg/models"
)

// BackendClient implements the backend gateway against the external REST
// service. The exact routes and verbs of that service are configured per
// operation, with an optional fallback search for deployments where the
// upstream contract is uncertain.
type BackendClient struct {
	cfg    *models.Config
	client *httpclient.Client
}

// NewBackendClient creates a new backend gateway
func NewBackendClient(cfg *models.Config, client *httpclient.Client) *BackendClient {
	return &BackendClient{
		cfg:    cfg,
		client: client,
	}
}
