package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateAndParseJWT(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test_secret")

		token, err := GenerateJWT("user-1", "admin", "a@b.com")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := ParseJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "a@b.com", claims.Email)
	})

	t.Run("Missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := GenerateJWT("user-1", "user", "a@b.com")
		assert.Error(t, err)

		_, err = ParseJWT("whatever")
		assert.Error(t, err)
	})

	t.Run("Tampered token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test_secret")

		token, err := GenerateJWT("user-1", "user", "a@b.com")
		assert.NoError(t, err)

		_, err = ParseJWT(token + "x")
		assert.Error(t, err)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test_secret")
		token, err := GenerateJWT("user-1", "user", "a@b.com")
		assert.NoError(t, err)

		t.Setenv("JWT_SECRET", "another_secret")
		_, err = ParseJWT(token)
		assert.Error(t, err)
	})
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superadmin").Valid())
	assert.False(t, Role("").Valid())
}
