package apibridge

import (
	"context"

	"github.com/apibridge/client-go/internal/api"
)

// KeysService groups the API key endpoints.
type KeysService struct {
	api *api.Client
}

// List returns all API keys without their secrets.
func (s *KeysService) List(ctx context.Context) ([]APIKey, error) {
	return s.api.ListKeys(ctx)
}

// Create creates an API key. The returned Key is shown only once.
func (s *KeysService) Create(ctx context.Context, name string) (*CreatedKey, error) {
	return s.api.CreateKey(ctx, name)
}
