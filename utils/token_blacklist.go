package utils

import (
	"context"
	"sync"
	"time"
)

// Logout revokes bearer tokens before their natural expiry. Revocations live
// in Redis with a TTL matching the token; when Redis is unavailable an
// in-memory map keeps logout working within a single process.

type blacklistEntry struct {
	expiresAt time.Time
}

var (
	blacklist   = map[string]blacklistEntry{}
	blacklistMu sync.RWMutex
)

// BlacklistToken marks a token as revoked until its expiration.
func BlacklistToken(token string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if rc.Set(ctx, "jwt:blacklist:"+token, "1", ttl).Err() == nil {
			return
		}
	}
	blacklistLocally(token, expiresAt)
}

// blacklistLocally records a revocation in the fallback map. Expired entries
// are swept on every insertion so the map stays bounded by the number of
// tokens revoked within one TTL window.
func blacklistLocally(token string, expiresAt time.Time) {
	blacklistMu.Lock()
	sweepExpiredLocked(time.Now())
	blacklist[token] = blacklistEntry{expiresAt: expiresAt}
	blacklistMu.Unlock()
}

func sweepExpiredLocked(now time.Time) {
	for token, entry := range blacklist {
		if now.After(entry.expiresAt) {
			delete(blacklist, token)
		}
	}
}

// IsTokenBlacklisted reports whether a token was revoked before expiry.
func IsTokenBlacklisted(token string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if n, err := rc.Exists(ctx, "jwt:blacklist:"+token).Result(); err == nil && n > 0 {
			return true
		}
	}

	blacklistMu.RLock()
	entry, ok := blacklist[token]
	blacklistMu.RUnlock()
	if !ok {
		return false
	}

	if time.Now().After(entry.expiresAt) {
		blacklistMu.Lock()
		delete(blacklist, token)
		blacklistMu.Unlock()
		return false
	}

	return true
}
