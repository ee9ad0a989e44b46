package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/bloghub/microservices/internal/auth"
	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

// verifyingValidator stands in for the remote validation call: it verifies
// the token locally and counts invocations so tests can tell hits from
// misses.
type verifyingValidator struct {
	verifier *auth.Verifier
	calls    int
}

func (v *verifyingValidator) Validate(_ context.Context, authorization string) (*domain.Principal, error) {
	v.calls++
	claims, err := v.verifier.Verify(authorization[len("Bearer "):])
	if err != nil {
		return nil, err
	}
	principal := claims.Principal()
	return &principal, nil
}

func newCacheFixture(t *testing.T, tokenTTL time.Duration) (string, *verifyingValidator, *miniredis.Miniredis, *CachingValidator) {
	t.Helper()
	issuer, err := auth.NewIssuer("test-secret", "HS256", tokenTTL)
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}
	verifier, err := auth.NewVerifier("test-secret", "HS256")
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	token, err := issuer.Issue(&domain.User{ID: 7, Username: "alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	inner := &verifyingValidator{verifier: verifier}
	return "Bearer " + token, inner, mr, NewCachingValidator(inner, client, 30*time.Second)
}

func TestCachingValidator_HitSkipsInner(t *testing.T) {
	header, inner, _, cached := newCacheFixture(t, time.Minute)

	first, err := cached.Validate(context.Background(), header)
	if err != nil {
		t.Fatalf("first validate: %v", err)
	}
	second, err := cached.Validate(context.Background(), header)
	if err != nil {
		t.Fatalf("second validate: %v", err)
	}

	if inner.calls != 1 {
		t.Fatalf("expected one upstream call, got %d", inner.calls)
	}
	if first.ID != 7 || second.ID != 7 || second.Email != "alice@example.com" {
		t.Fatalf("unexpected principals: %+v / %+v", first, second)
	}
}

func TestCachingValidator_ExpiredTokenNotServedFromCache(t *testing.T) {
	header, inner, _, cached := newCacheFixture(t, time.Second)

	if _, err := cached.Validate(context.Background(), header); err != nil {
		t.Fatalf("validate before expiry: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	// The entry may still sit in Redis; the expiry stored with it must
	// force revalidation, which fails on the expired token.
	if _, err := cached.Validate(context.Background(), header); err == nil {
		t.Fatalf("expired token accepted from cache")
	}
	if inner.calls != 2 {
		t.Fatalf("expected revalidation after expiry, got %d upstream calls", inner.calls)
	}
}

func TestCachingValidator_EntryTTLClampedToTokenExpiry(t *testing.T) {
	header, _, mr, cached := newCacheFixture(t, 2*time.Second)

	if _, err := cached.Validate(context.Background(), header); err != nil {
		t.Fatalf("validate: %v", err)
	}

	key := cached.key(header)
	if !mr.Exists(key) {
		t.Fatalf("principal not cached")
	}
	if ttl := mr.TTL(key); ttl > 2*time.Second {
		t.Fatalf("entry TTL %v outlives the token", ttl)
	}
}

func TestCachingValidator_FailureNotCached(t *testing.T) {
	header, inner, mr, cached := newCacheFixture(t, -time.Second)

	for i := 0; i < 2; i++ {
		if _, err := cached.Validate(context.Background(), header); err == nil {
			t.Fatalf("expected error for expired token")
		}
	}
	if inner.calls != 2 {
		t.Fatalf("failures must not be cached, got %d upstream calls", inner.calls)
	}
	if len(mr.Keys()) != 0 {
		t.Fatalf("failure left keys in the cache: %v", mr.Keys())
	}
}

func TestCachingValidator_DistinctTokensDistinctEntries(t *testing.T) {
	header, _, _, cached := newCacheFixture(t, time.Minute)

	if _, err := cached.Validate(context.Background(), header); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cached.key(header) == cached.key(header+"x") {
		t.Fatalf("different headers map to the same cache key")
	}
	if _, err := cached.Validate(context.Background(), header+"x"); err == nil {
		t.Fatalf("tampered token must not reuse the cached principal")
	}
}

var _ ports.TokenValidator = (*verifyingValidator)(nil)
