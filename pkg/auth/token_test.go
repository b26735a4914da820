package auth

import (
	"testing"
	"time"

	"github.com/eventra/eventra/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(clock utils.Clock) *TokenService {
	return NewTokenService("test-secret", time.Hour, "eventra", clock)
}

func TestTokenService_RoundTrip(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)}
	tokens := newTestTokenService(clock)

	token, err := tokens.Generate("user-1")
	require.NoError(t, err)

	userID, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenService_GenerateRequiresSubject(t *testing.T) {
	tokens := newTestTokenService(utils.SystemClock{})

	_, err := tokens.Generate("")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ValidateRejectsExpired(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)}
	tokens := newTestTokenService(clock)

	token, err := tokens.Generate("user-1")
	require.NoError(t, err)

	clock.FixedNow = clock.FixedNow.Add(2 * time.Hour)

	_, err = tokens.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ValidateRejectsGarbage(t *testing.T) {
	tokens := newTestTokenService(utils.SystemClock{})

	_, err := tokens.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Validate("   ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestTokenService_ValidateRejectsWrongSecret(t *testing.T) {
	clock := utils.SystemClock{}
	token, err := NewTokenService("one-secret", time.Hour, "eventra", clock).Generate("user-1")
	require.NoError(t, err)

	_, err = NewTokenService("another-secret", time.Hour, "eventra", clock).Validate(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenFromHeader(t *testing.T) {
	token, err := TokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = TokenFromHeader("bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "abc.def.ghi", "Basic abc", "Bearer"} {
		_, err := TokenFromHeader(header)
		assert.ErrorIs(t, err, ErrMissingToken, "header %q", header)
	}
}
