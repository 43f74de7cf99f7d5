package apibridge

import (
	"context"

	"github.com/apibridge/client-go/internal/api"
)

// HandshakeService groups the site-owner permission endpoints.
type HandshakeService struct {
	api *api.Client
}

// Initiate drafts a permission request. The server stores it as
// PENDING_APPROVAL until Approve is called.
func (s *HandshakeService) Initiate(ctx context.Context, in *HandshakeInput) (*Handshake, error) {
	return s.api.InitiateHandshake(ctx, in)
}

// Approve approves and sends a drafted request.
func (s *HandshakeService) Approve(ctx context.Context, id string) (*Handshake, error) {
	return s.api.ApproveHandshake(ctx, id)
}

// SystemService groups server-level endpoints.
type SystemService struct {
	api *api.Client
}

// Health returns the server health report.
func (s *SystemService) Health(ctx context.Context) (*Health, error) {
	return s.api.GetHealth(ctx)
}
