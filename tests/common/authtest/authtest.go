//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"beads-store/internal/pkg/config"
	"beads-store/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken signs an access token the way the external identity service
// would. Tokens are the only way past the auth middleware in e2e tests.
func IssueToken(t *testing.T, cfg config.Config, userID uuid.UUID, role string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err, "invalid JWT duration in test config")

	token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(userID, role)
	require.NoError(t, err, "failed to sign test token")
	return token
}
