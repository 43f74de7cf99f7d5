package apibridge

import (
	"context"

	"github.com/apibridge/client-go/internal/api"
)

// LLMService groups the LLM provider endpoints. The server tries active
// providers in priority order and fails over on errors.
type LLMService struct {
	api *api.Client
}

// Providers returns the configured providers ordered by priority.
func (s *LLMService) Providers(ctx context.Context) ([]LLMProvider, error) {
	return s.api.ListProviders(ctx)
}

// CreateProvider adds a provider configuration. The API key is stored
// encrypted by the server and never returned.
func (s *LLMService) CreateProvider(ctx context.Context, in *LLMProviderInput) (*LLMProvider, error) {
	return s.api.CreateProvider(ctx, in)
}

// DeleteProvider removes a provider configuration.
func (s *LLMService) DeleteProvider(ctx context.Context, id string) error {
	return s.api.DeleteProvider(ctx, id)
}

// TestProvider checks credentials without storing them. A rejected key is
// reported in the result, not as an error.
func (s *LLMService) TestProvider(ctx context.Context, in *ProviderTestRequest) (*ProviderTestResult, error) {
	return s.api.TestProvider(ctx, in)
}
