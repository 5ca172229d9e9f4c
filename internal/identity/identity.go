// Package identity resolves the caller of a request from an HS256 bearer token.
// The token subject is the caller identity the ledger authorizes against.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/osse101/Lockbox_Go/internal/domain"
)

type ctxKey string

const callerKey ctxKey = "caller"

// Config configures token verification and signing
type Config struct {
	Secret    string
	Issuer    string
	ClockSkew time.Duration

	// CacheSize bounds the verified token cache; negative disables it
	CacheSize int
	CacheTTL  time.Duration
}

// Verifier checks bearer tokens and extracts the caller
type Verifier struct {
	secret []byte
	issuer string
	skew   time.Duration
	cache  *tokenCache
}

// NewVerifier creates a verifier. An empty secret is rejected.
func NewVerifier(cfg Config) (*Verifier, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, errors.New(ErrMsgSecretMissing)
	}
	skew := cfg.ClockSkew
	if skew <= 0 {
		skew = DefaultClockSkew
	}
	v := &Verifier{secret: []byte(secret), issuer: cfg.Issuer, skew: skew}
	if cfg.CacheSize >= 0 {
		size, ttl := cfg.CacheSize, cfg.CacheTTL
		if size == 0 {
			size = DefaultCacheSize
		}
		if ttl <= 0 {
			ttl = DefaultCacheTTL
		}
		v.cache = newTokenCache(size, ttl)
	}
	return v, nil
}

// Verify parses tokenString and returns its subject
func (v *Verifier) Verify(tokenString string) (string, error) {
	if v.cache != nil {
		if subject, ok := v.cache.Get(tokenString, time.Now()); ok {
			return subject, nil
		}
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.skew),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(ErrMsgUnexpectedMethod)
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if !token.Valid {
		return "", domain.ErrUnauthenticated
	}
	if err := domain.ValidateIdentity(claims.Subject); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgSubjectMissing)
	}
	if v.cache != nil {
		v.cache.Set(tokenString, claims.Subject, claims.ExpiresAt.Time)
	}
	return claims.Subject, nil
}

// Signer mints bearer tokens for a caller identity
type Signer struct {
	secret []byte
	issuer string
}

// NewSigner creates a signer sharing a verifier's configuration
func NewSigner(cfg Config) (*Signer, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, errors.New(ErrMsgSecretMissing)
	}
	return &Signer{secret: []byte(secret), issuer: cfg.Issuer}, nil
}

// Sign returns a token for subject valid for ttl from now
func (s *Signer) Sign(subject string, ttl time.Duration) (string, error) {
	if err := domain.ValidateIdentity(subject); err != nil {
		return "", fmt.Errorf("invalid subject: %w", err)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// WithCaller returns a context carrying caller
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromContext returns the authenticated caller, if any
func CallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(callerKey).(string)
	return caller, ok && caller != ""
}
