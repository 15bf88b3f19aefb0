package auth

import (
	"strings"
	"testing"
	"time"

	"vendo/config"
	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/service"
	"vendo/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_token_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func testTokenConfig() config.TokenConfig {
	return config.TokenConfig{
		Secret:     testSecret,
		Algorithm:  "HS256",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
		Issuer:     "vendo",
	}
}

func newTestJWTService(t *testing.T, clock *fakeClock) *jwtService {
	t.Helper()

	svc, err := NewJWTServiceWithOptions(testTokenConfig(), WithClock(clock.Now))
	require.NoError(t, err)

	return svc
}

func assertInvalidToken(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken), "expected ErrInvalidToken, got %v", err)
}

func TestNewJWTServiceWithOptions_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.TokenConfig)
	}{
		{name: "empty secret", mutate: func(cfg *config.TokenConfig) { cfg.Secret = "" }},
		{name: "rsa algorithm", mutate: func(cfg *config.TokenConfig) { cfg.Algorithm = "RS256" }},
		{name: "unknown algorithm", mutate: func(cfg *config.TokenConfig) { cfg.Algorithm = "HS1024" }},
		{name: "zero access ttl", mutate: func(cfg *config.TokenConfig) { cfg.AccessTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testTokenConfig()
			tt.mutate(&cfg)

			svc, err := NewJWTServiceWithOptions(cfg)
			assert.Error(t, err)
			assert.Nil(t, svc)
		})
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	clock := newFakeClock()
	svc := newTestJWTService(t, clock)

	pair, err := svc.GenerateTokens("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.WithinDuration(t, clock.Now().Add(30*time.Minute), pair.AccessExpiresAt, 0)

	accessClaims, err := svc.ValidateTokenType(pair.AccessToken, entity.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "alice", accessClaims.Subject())
	assert.Equal(t, entity.TokenTypeAccess, accessClaims.Type())
	assert.WithinDuration(t, clock.Now().Add(30*time.Minute), accessClaims.ExpiresAt(), 0)
	assert.WithinDuration(t, clock.Now(), accessClaims.IssuedAt(), 0)
	assert.Equal(t, "vendo", accessClaims[service.ClaimIssuer])
	assert.NotEmpty(t, accessClaims[service.ClaimID])

	refreshClaims, err := svc.ValidateTokenType(pair.RefreshToken, entity.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "alice", refreshClaims.Subject())
	assert.WithinDuration(t, clock.Now().Add(7*24*time.Hour), refreshClaims.ExpiresAt(), 0)
	assert.NotEqual(t, accessClaims[service.ClaimID], refreshClaims[service.ClaimID])
}

func TestJWTService_IssuePreservesClaims(t *testing.T) {
	clock := newFakeClock()
	svc := newTestJWTService(t, clock)

	in := service.Claims{
		"sub":     "a@x.com",
		"channel": "storefront",
		"locale":  "en-US",
	}

	token, err := svc.Issue(in, 5*time.Minute)
	require.NoError(t, err)

	out, err := svc.ValidateToken(token)
	require.NoError(t, err)

	for k, v := range in {
		assert.Equal(t, v, out[k], "claim %q", k)
	}
	assert.WithinDuration(t, clock.Now().Add(5*time.Minute), out.ExpiresAt(), 0)
	assert.Len(t, in, 3, "Issue must not mutate the caller's claims")
}

func TestJWTService_IssueRejectsNonPositiveTTL(t *testing.T) {
	svc := newTestJWTService(t, newFakeClock())

	for _, ttl := range []time.Duration{0, -time.Second} {
		token, err := svc.Issue(service.Claims{"sub": "alice"}, ttl)
		assert.Error(t, err)
		assert.Empty(t, token)
	}
}

func TestJWTService_IssueRejectsEmptySubject(t *testing.T) {
	svc := newTestJWTService(t, newFakeClock())

	_, err := svc.IssueAccessToken("")
	assert.Error(t, err)

	_, err = svc.GenerateTokens("")
	assert.Error(t, err)
}

func TestJWTService_Expiry(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		valid   bool
	}{
		{name: "immediately", advance: 0, valid: true},
		{name: "one second before exp", advance: 30*time.Minute - time.Second, valid: true},
		{name: "exactly at exp", advance: 30 * time.Minute, valid: false},
		{name: "past exp", advance: 31 * time.Minute, valid: false},
		{name: "a day later", advance: 24 * time.Hour, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			svc := newTestJWTService(t, clock)

			token, err := svc.IssueAccessToken("alice")
			require.NoError(t, err)

			clock.Advance(tt.advance)

			claims, err := svc.ValidateToken(token)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, "alice", claims.Subject())
			} else {
				assertInvalidToken(t, err)
				assert.Nil(t, claims)
			}
		})
	}
}

func TestJWTService_Expiry_SubSecondClock(t *testing.T) {
	tests := []struct {
		name    string
		ttl     time.Duration
		wantExp time.Time
	}{
		{name: "ttl shorter than the remaining fraction", ttl: 200 * time.Millisecond, wantExp: time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC)},
		{name: "ttl crossing a second boundary", ttl: 500 * time.Millisecond, wantExp: time.Date(2026, 3, 1, 12, 0, 2, 0, time.UTC)},
		{name: "one nanosecond", ttl: time.Nanosecond, wantExp: time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC)},
		{name: "whole minutes", ttl: time.Minute, wantExp: time.Date(2026, 3, 1, 12, 1, 1, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 700_000_000, time.UTC)}
			svc := newTestJWTService(t, clock)

			token, err := svc.Issue(service.Claims{"sub": "alice"}, tt.ttl)
			require.NoError(t, err)

			claims, err := svc.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "alice", claims.Subject())

			exp := claims.ExpiresAt()
			assert.True(t, tt.wantExp.Equal(exp), "exp %s, want %s", exp, tt.wantExp)
		})
	}
}

func TestJWTService_RefreshTokenPassesUntypedValidation(t *testing.T) {
	clock := newFakeClock()
	svc := newTestJWTService(t, clock)

	refresh, err := svc.IssueRefreshToken("alice")
	require.NoError(t, err)

	clock.Advance(6 * 24 * time.Hour)

	claims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject())
	assert.Equal(t, entity.TokenTypeRefresh, claims.Type())

	clock.Advance(24 * time.Hour)

	_, err = svc.ValidateToken(refresh)
	assertInvalidToken(t, err)
}

func TestJWTService_TypedValidationRejectsOtherType(t *testing.T) {
	svc := newTestJWTService(t, newFakeClock())

	pair, err := svc.GenerateTokens("alice")
	require.NoError(t, err)

	_, err = svc.ValidateTokenType(pair.RefreshToken, entity.TokenTypeAccess)
	assertInvalidToken(t, err)

	_, err = svc.ValidateTokenType(pair.AccessToken, entity.TokenTypeRefresh)
	assertInvalidToken(t, err)
}

func TestJWTService_UntypedTokenFailsTypedValidation(t *testing.T) {
	svc := newTestJWTService(t, newFakeClock())

	token, err := svc.Issue(service.Claims{"sub": "alice"}, time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.NoError(t, err)

	_, err = svc.ValidateTokenType(token, entity.TokenTypeAccess)
	assertInvalidToken(t, err)
}

func TestJWTService_DifferentSecret(t *testing.T) {
	clock := newFakeClock()
	svc := newTestJWTService(t, clock)

	otherCfg := testTokenConfig()
	otherCfg.Secret = "another_secret_that_the_server_does_not_hold"
	other, err := NewJWTServiceWithOptions(otherCfg, WithClock(clock.Now))
	require.NoError(t, err)

	forged, err := other.IssueAccessToken("alice")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(forged)
	assertInvalidToken(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedTokens(t *testing.T) {
	svc := newTestJWTService(t, newFakeClock())

	valid, err := svc.IssueAccessToken("alice")
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)

	tampered := parts[0] + "." + parts[1] + "x" + "." + parts[2]

	tokens := map[string]string{
		"empty":             "",
		"not a jwt":         "clearly-not-a-jwt-token-format",
		"two segments":      parts[0] + "." + parts[1],
		"truncated":         valid[:len(valid)-6],
		"tampered payload":  tampered,
		"garbage signature": parts[0] + "." + parts[1] + ".AAAA",
	}

	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateToken(token)
			assertInvalidToken(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	clock := newFakeClock()
	svc := newTestJWTService(t, clock)

	claims := jwt.MapClaims{
		"sub":  "alice",
		"type": "access",
		"exp":  clock.Now().Add(time.Hour).Unix(),
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(none)
	assertInvalidToken(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.ValidateToken(hs512)
	assertInvalidToken(t, err)
}

func TestJWTService_RequiresExpiry(t *testing.T) {
	svc := newTestJWTService(t, newFakeClock())

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice", "type": "access"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(noExp)
	assertInvalidToken(t, err)
}

func TestJWTService_AcceptsLegacyShapedToken(t *testing.T) {
	clock := newFakeClock()
	svc := newTestJWTService(t, clock)

	// sub + exp only, as issued by earlier deployments.
	legacy, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": clock.Now().Add(10 * time.Minute).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(legacy)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject())
}

func TestJWTService_HS512(t *testing.T) {
	cfg := testTokenConfig()
	cfg.Algorithm = "HS512"

	svc, err := NewJWTServiceWithOptions(cfg)
	require.NoError(t, err)

	token, err := svc.IssueAccessToken("alice")
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)
	assert.Equal(t, "HS512", parsed.Method.Alg())

	_, err = svc.ValidateTokenType(token, entity.TokenTypeAccess)
	assert.NoError(t, err)
}
