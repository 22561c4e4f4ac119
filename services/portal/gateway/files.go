package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yashpatel/fileportal/internal/pkg/models"
)

// ListFiles fetches the file listing for a login. Upstream failures yield
// an empty listing rather than an error; only transport failures surface.
func (g *BackendClient) ListFiles(ctx context.Context, creds models.Credentials, login string) ([]models.FileRecord, error) {
	path := g.cfg.Backend.Paths.ListFiles + "?login=" + url.QueryEscape(login)

	res, err := g.client.Do(ctx, http.MethodGet, path, nil, creds)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return []models.FileRecord{}, nil
	}

	raw := extractList(res.Data, "files", "data")
	files := make([]models.FileRecord, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			files = append(files, models.FileRecord(m))
		}
	}
	return files, nil
}
