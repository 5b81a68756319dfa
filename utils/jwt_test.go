package utils

import (
	"errors"
	"testing"
	"time"

	"hdmonks/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, exp, err := GenerateToken(testSecret, "p-1", "acme", models.RolePartner, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "p-1", claims.Subject)
	assert.Equal(t, "acme", claims.Username)
	assert.Equal(t, models.RolePartner, claims.Role)
}

func TestParseToken_Expired(t *testing.T) {
	token, _, err := GenerateToken(testSecret, "a-1", "admin", models.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.True(t, errors.Is(err, models.ErrTokenExpired))
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(testSecret, "a-1", "admin", models.RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), token)
	assert.True(t, errors.Is(err, models.ErrInvalidToken))
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")
	assert.True(t, errors.Is(err, models.ErrInvalidToken))
}

func TestHashToken_Stable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
