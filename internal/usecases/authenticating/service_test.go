package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/twmops/revenue-insight-api/internal/config"
)

func newTestConfig(t *testing.T, apiKey string) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.APIKeyHash = string(hash)
	cfg.Auth.TokenTTL = 60

	return cfg
}

func TestIssueAndValidateToken(t *testing.T) {
	service := NewService(newTestConfig(t, "valid-key"))

	token, err := service.IssueToken("valid-key")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "api-client", claims.Subject)
}

func TestIssueToken_WrongKey(t *testing.T) {
	service := NewService(newTestConfig(t, "valid-key"))

	_, err := service.IssueToken("wrong-key")

	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestIssueToken_Disabled(t *testing.T) {
	service := NewService(&config.Config{})

	assert.False(t, service.Enabled())

	_, err := service.IssueToken("anything")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := NewService(newTestConfig(t, "valid-key"))

	_, err := service.ValidateToken("not-a-token")

	assert.Error(t, err)
}
