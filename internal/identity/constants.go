package identity

import "time"

// DefaultClockSkew is the leeway applied to exp/iat/nbf checks
const DefaultClockSkew = 30 * time.Second

// Verified token cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute
)

// DefaultTokenTTL is the lifetime of minted tokens when none is given
const DefaultTokenTTL = 24 * time.Hour

const (
	HeaderAuthorization = "Authorization"
	BearerScheme        = "Bearer"
)

const (
	ErrMsgSecretMissing    = "jwt secret not configured"
	ErrMsgUnexpectedMethod = "unexpected signing method"
	ErrMsgSubjectMissing   = "token has no subject"
)

const LogMsgTokenRejected = "Bearer token rejected"
