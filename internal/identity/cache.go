package identity

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedCaller is a verified token's subject and the moment the token stops being valid
type cachedCaller struct {
	Subject   string
	ExpiresAt time.Time
}

// tokenCache remembers recently verified bearer tokens so repeat requests
// skip signature checks. An entry never outlives the token it came from.
type tokenCache struct {
	lru *expirable.LRU[string, cachedCaller]
}

func newTokenCache(size int, ttl time.Duration) *tokenCache {
	return &tokenCache{
		lru: expirable.NewLRU[string, cachedCaller](size, nil, ttl),
	}
}

// Get returns the cached subject for token if it is still valid at now
func (c *tokenCache) Get(token string, now time.Time) (string, bool) {
	entry, found := c.lru.Get(token)
	if !found {
		return "", false
	}
	if !now.Before(entry.ExpiresAt) {
		c.lru.Remove(token)
		return "", false
	}
	return entry.Subject, true
}

func (c *tokenCache) Set(token, subject string, expiresAt time.Time) {
	c.lru.Add(token, cachedCaller{Subject: subject, ExpiresAt: expiresAt})
}

func (c *tokenCache) Len() int {
	return c.lru.Len()
}
