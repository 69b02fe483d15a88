package util

import (
	"devquiz_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 7},
		Email:     "dev@example.com",
		Role:      model.Admin,
	}

	token, err := GenerateJWT(user, "0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, "0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "dev@example.com", claims.Email)
	assert.Equal(t, model.Admin, claims.Role)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 7}, Role: model.Candidate}

	token, err := GenerateJWT(user, "0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "another-secret-another-secret-xx")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 7}, Role: model.Candidate}

	token, err := GenerateJWT(user, "0123456789abcdef0123456789abcdef", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "0123456789abcdef0123456789abcdef")
	assert.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", "0123456789abcdef0123456789abcdef")
	assert.Error(t, err)
}
