package cli

import (
	"context"
	"errors"
	"fmt"

	apibridge "github.com/apibridge/client-go"
	"github.com/apibridge/client-go/internal/cliconfig"
)

// FormatError turns an error into the one-line message printed before exit.
func FormatError(err error) string {
	var netErr *apibridge.NetworkError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out (raise --timeout)"
	case errors.Is(err, apibridge.ErrUnauthorized):
		return err.Error() + " (check --api-key or " + cliconfig.EnvAPIKey + ")"
	case errors.As(err, &netErr):
		return fmt.Sprintf("cannot reach the API server: %v", netErr.Err)
	}
	return err.Error()
}
