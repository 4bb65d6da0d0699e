package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, at time.Time) *TokenService {
	t.Helper()
	svc, err := NewTokenService(Config{
		Secret:    "test-secret",
		Algorithm: "HS256",
		TTL:       20 * time.Minute,
	})
	require.NoError(t, err)
	return svc.WithClock(func() time.Time { return at })
}

func TestIssueValidateRoundTrip(t *testing.T) {
	svc := newTestService(t, testBase)

	token, err := svc.Issue("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3)

	subject, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestValidateExpired(t *testing.T) {
	svc := newTestService(t, testBase)
	token, err := svc.Issue("alice")
	require.NoError(t, err)

	// Still valid one second before the deadline.
	svc.WithClock(func() time.Time { return testBase.Add(20*time.Minute - time.Second) })
	_, err = svc.Validate(token)
	assert.NoError(t, err)

	svc.WithClock(func() time.Time { return testBase.Add(20*time.Minute + time.Second) })
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateWrongSecret(t *testing.T) {
	svc := newTestService(t, testBase)
	token, err := svc.Issue("alice")
	require.NoError(t, err)

	other, err := NewTokenService(Config{Secret: "other-secret", Algorithm: "HS256", TTL: 20 * time.Minute})
	require.NoError(t, err)
	other.WithClock(func() time.Time { return testBase })

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidateTampered(t *testing.T) {
	svc := newTestService(t, testBase)
	token, err := svc.Issue("alice")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	tampered := parts[0] + ".eyJzdWIiOiJtYWxsb3J5In0." + parts[2]

	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidateGarbage(t *testing.T) {
	svc := newTestService(t, testBase)
	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := svc.Validate(tok)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tok)
	}
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	svc := newTestService(t, testBase)

	claims := jwt.MapClaims{"sub": "alice", "exp": testBase.Add(time.Hour).Unix()}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(unsigned)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidateMissingSubject(t *testing.T) {
	svc := newTestService(t, testBase)

	claims := jwt.MapClaims{"exp": testBase.Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestNewTokenServiceAlgorithms(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		_, err := NewTokenService(Config{Secret: "s", Algorithm: alg, TTL: time.Minute})
		assert.NoError(t, err, alg)
	}
	for _, alg := range []string{"RS256", "none", "", "ES256"} {
		_, err := NewTokenService(Config{Secret: "s", Algorithm: alg, TTL: time.Minute})
		assert.Error(t, err, alg)
	}
}
