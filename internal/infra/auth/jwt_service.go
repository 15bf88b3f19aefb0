package auth

import (
	"log/slog"
	"time"

	"vendo/config"
	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/service"
	"vendo/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// jwtService is the JWT implementation of service.TokenService. Access and
// refresh tokens share one secret and one algorithm; the "type" claim tells them apart.
type jwtService struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
	now        func() time.Time
	parser     *jwt.Parser
	logger     *slog.Logger
}

// JWTServiceParams holds dependencies for the token service, injected by Fx.
type JWTServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Option customizes a jwtService.
type Option func(*jwtService)

// WithClock replaces time.Now for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *jwtService) {
		s.now = now
	}
}

// WithLogger sets the logger used for rejected-token diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *jwtService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewJWTService builds the token service from the token section of the config.
func NewJWTService(params JWTServiceParams) (service.TokenService, error) {
	return NewJWTServiceWithOptions(params.Config.Token, WithLogger(params.Logger))
}

// NewJWTServiceWithOptions validates cfg and builds the token service.
func NewJWTServiceWithOptions(cfg config.TokenConfig, opts ...Option) (*jwtService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token secret must be provided")
	}

	alg := cfg.Algorithm
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("token algorithm %q is not an HMAC method", alg)
	}

	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token ttl values must be positive")
	}

	s := &jwtService{
		secret:     []byte(cfg.Secret),
		method:     method,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		issuer:     cfg.Issuer,
		now:        time.Now,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	return s, nil
}

// Issue signs claims with iat, exp = now+ttl and a fresh jti.
func (s *jwtService) Issue(claims service.Claims, ttl time.Duration) (string, error) {
	token, _, err := s.sign(claims, ttl)

	return token, err
}

// IssueAccessToken issues a short-lived access token for subject.
func (s *jwtService) IssueAccessToken(subject string) (string, error) {
	token, _, err := s.issueTyped(subject, entity.TokenTypeAccess, s.accessTTL)

	return token, err
}

// IssueRefreshToken issues a long-lived refresh token for subject.
func (s *jwtService) IssueRefreshToken(subject string) (string, error) {
	token, _, err := s.issueTyped(subject, entity.TokenTypeRefresh, s.refreshTTL)

	return token, err
}

// GenerateTokens issues an access and refresh token pair for subject.
func (s *jwtService) GenerateTokens(subject string) (*entity.TokenPair, error) {
	accessToken, accessExp, err := s.issueTyped(subject, entity.TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, _, err := s.issueTyped(subject, entity.TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: accessExp,
		TokenType:       entity.BearerScheme,
	}, nil
}

// ValidateToken checks signature, structure and expiry. A token is valid
// strictly before its exp. Every failure is ErrInvalidToken.
func (s *jwtService) ValidateToken(tokenString string) (service.Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, err := s.parser.ParseWithClaims(tokenString, mapClaims, s.keyFunc); err != nil {
		s.logger.Debug("Token rejected", slog.String("reason", rejectReason(err)))

		return nil, domainerrors.ErrInvalidToken.WrapMessage(rejectReason(err))
	}

	return service.Claims(mapClaims), nil
}

// ValidateTokenType validates the token and requires a subject and a matching type claim.
func (s *jwtService) ValidateTokenType(tokenString string, expected entity.TokenType) (service.Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type() != expected {
		s.logger.Debug("Token rejected", slog.String("reason", "type mismatch"),
			slog.String("expected", expected.String()), slog.String("actual", claims.Type().String()))

		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected token type")
	}

	if claims.Subject() == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("missing subject")
	}

	return claims, nil
}

func (s *jwtService) issueTyped(subject string, typ entity.TokenType, ttl time.Duration) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("token subject must not be empty")
	}

	return s.sign(service.Claims{
		service.ClaimSubject: subject,
		service.ClaimType:    typ.String(),
	}, ttl)
}

func (s *jwtService) sign(claims service.Claims, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		return "", time.Time{}, errors.Errorf("token ttl must be positive, got %s", ttl)
	}

	now := s.now()
	expiresAt := ceilSecond(now.Add(ttl))

	payload := make(jwt.MapClaims, len(claims)+4)
	for k, v := range claims {
		payload[k] = v
	}
	payload[service.ClaimIssuedAt] = now.Unix()
	payload[service.ClaimExpiresAt] = expiresAt.Unix()
	if _, ok := payload[service.ClaimID]; !ok {
		payload[service.ClaimID] = uuid.NewString()
	}
	if _, ok := payload[service.ClaimIssuer]; !ok && s.issuer != "" {
		payload[service.ClaimIssuer] = s.issuer
	}

	signed, err := jwt.NewWithClaims(s.method, payload).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return signed, expiresAt, nil
}

// ceilSecond rounds t up to a whole second. exp is carried in whole seconds
// and must stay after the issuing instant.
func ceilSecond(t time.Time) time.Time {
	truncated := t.Truncate(time.Second)
	if truncated.Equal(t) {
		return t
	}

	return truncated.Add(time.Second)
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}

// rejectReason is only logged; clients always see INVALID_TOKEN.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "missing required claim"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return "signature invalid"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "unverifiable"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "not valid yet"
	default:
		return "invalid"
	}
}
