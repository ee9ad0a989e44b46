package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/bloghub/microservices/internal/api/metrics"
	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

const defaultCacheTTL = 30 * time.Second

// CachingValidator wraps a TokenValidator with a short-lived Redis cache of
// validated principals, keyed by token digest. It trades a bounded window on
// the user-existence re-check (at most the TTL) for one network round-trip
// per token per TTL. Validation failures are never cached, and a cache entry
// never outlives its token: the entry TTL is clamped to the token's exp and
// the expiry is re-checked on every hit, so an expired token fails even when
// the entry is still present.
// Key format: authcache:<sha256 hex of Authorization header>
type CachingValidator struct {
	inner  ports.TokenValidator
	client *redis.Client
	ttl    time.Duration
}

// cachedPrincipal is the stored cache entry. ExpiresAt mirrors the token's
// exp claim in unix seconds.
type cachedPrincipal struct {
	Principal domain.Principal `json:"principal"`
	ExpiresAt int64            `json:"expires_at"`
}

func NewCachingValidator(inner ports.TokenValidator, client *redis.Client, ttl time.Duration) *CachingValidator {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachingValidator{inner: inner, client: client, ttl: ttl}
}

func (v *CachingValidator) Validate(ctx context.Context, authorization string) (*domain.Principal, error) {
	key := v.key(authorization)

	if data, err := v.client.Get(ctx, key).Bytes(); err == nil {
		var entry cachedPrincipal
		if json.Unmarshal(data, &entry) == nil && time.Now().Unix() < entry.ExpiresAt {
			metrics.TokenCacheTotal.WithLabelValues("hit").Inc()
			return &entry.Principal, nil
		}
	}
	metrics.TokenCacheTotal.WithLabelValues("miss").Inc()

	principal, err := v.inner.Validate(ctx, authorization)
	if err != nil {
		return nil, err
	}

	// The inner validator has verified the token; only the exp claim is
	// read back here to bound the entry's lifetime. A token without a
	// readable exp is not cached.
	exp, ok := tokenExpiry(authorization)
	if !ok {
		return principal, nil
	}
	ttl := v.ttl
	if remaining := time.Until(exp); remaining < ttl {
		ttl = remaining
	}
	if ttl <= 0 {
		return principal, nil
	}

	// Best effort: an unreachable cache must not fail an authenticated request.
	if data, err := json.Marshal(cachedPrincipal{Principal: *principal, ExpiresAt: exp.Unix()}); err == nil {
		_ = v.client.Set(ctx, key, data, ttl).Err()
	}

	return principal, nil
}

func (v *CachingValidator) key(authorization string) string {
	sum := sha256.Sum256([]byte(authorization))
	return "authcache:" + hex.EncodeToString(sum[:])
}

// tokenExpiry reads the exp claim of the bearer token without verifying the
// signature.
func tokenExpiry(authorization string) (time.Time, bool) {
	raw := authorization
	if parts := strings.SplitN(authorization, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		raw = parts[1]
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
