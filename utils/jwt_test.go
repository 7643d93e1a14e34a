package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xndadelin/NXT/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT("test-secret")

	user := models.User{ID: 42, Username: "alice", Admin: true}
	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.Admin)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-a")
	token, err := GenerateToken(models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	InitJWT("secret-b")
	_, err = ParseToken(token)
	assert.Error(t, err)
}
