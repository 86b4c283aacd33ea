package sec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhatmusic/riyaaz/internal/storage"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testAdmin() storage.Admin {
	return storage.Admin{ID: "admin-1", Username: "prabhat"}
}

func TestTokensRoundTrip(t *testing.T) {
	t.Parallel()

	tokens := NewTokens(testSecret)
	raw, err := tokens.Issue(testAdmin())
	require.NoError(t, err)

	claims, err := tokens.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "prabhat", claims.Username)
}

func TestTokensExpiry(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokens(testSecret)
	tokens.now = func() time.Time { return issued }

	raw, err := tokens.Issue(testAdmin())
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		checker := NewTokens(testSecret)
		checker.now = func() time.Time { return issued.Add(TokenTTL - time.Minute) }
		_, err := checker.Validate(raw)
		require.NoError(t, err)
	})

	t.Run("expired after 24h", func(t *testing.T) {
		checker := NewTokens(testSecret)
		checker.now = func() time.Time { return issued.Add(TokenTTL + time.Minute) }
		_, err := checker.Validate(raw)
		require.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestTokensValidateFailures(t *testing.T) {
	t.Parallel()

	tokens := NewTokens(testSecret)

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		other := NewTokens("another-secret-another-secret-yes")
		raw, err := other.Issue(testAdmin())
		require.NoError(t, err)

		_, err = tokens.Validate(raw)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("garbage input", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", "garbage", "a.b.c", "Bearer whatever"} {
			_, err := tokens.Validate(raw)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		}
	})

	t.Run("missing identity claims", func(t *testing.T) {
		t.Parallel()
		raw, err := tokens.Issue(storage.Admin{})
		require.NoError(t, err)
		_, err = tokens.Validate(raw)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}
