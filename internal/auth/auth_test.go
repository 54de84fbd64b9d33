package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zone-service/internal/model"
)

const testSecret = "test-secret"

func TestParserRoundTrip(t *testing.T) {
	claims := Claims{
		UserID: uuid.New(),
		OrgID:  uuid.New(),
		Role:   model.RoleInstaller,
	}

	raw, err := Sign(testSecret, claims, time.Minute)
	require.NoError(t, err)

	parser := NewParser(testSecret)
	parsed, err := parser.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, claims.OrgID, parsed.OrgID)
	assert.Equal(t, model.RoleInstaller, parsed.Role)
}

func TestParserRejectsBadTokens(t *testing.T) {
	parser := NewParser(testSecret)

	t.Run("garbage", func(t *testing.T) {
		_, err := parser.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		raw, err := Sign("other-secret", Claims{UserID: uuid.New()}, time.Minute)
		require.NoError(t, err)
		_, err = parser.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		raw, err := Sign(testSecret, Claims{UserID: uuid.New()}, -time.Minute)
		require.NoError(t, err)
		_, err = parser.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		raw, err := Sign(testSecret, Claims{}, time.Minute)
		require.NoError(t, err)
		_, err = parser.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
