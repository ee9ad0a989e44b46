// Package metrics defines and registers all custom Prometheus metrics for
// the bloghub services. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; both
// services expose them on /metrics next to the echoprometheus request
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bloghub"

// ── Auth metrics (user service) ───────────────────────────────────────────────

// SignInsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts tokens minted at successful login.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of JWTs issued.",
	},
)

// TokenValidationsTotal counts validate-token outcomes on the user service.
// Label:
//   - result: "valid", "expired", "signature_invalid", "malformed", "unknown_user"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of token validations performed by the user service, by result.",
	},
	[]string{"result"},
)

// AuthEventsRecordedTotal counts audit trail rows written by the dispatcher.
// Label:
//   - kind: "sign_up", "sign_in", "validate_token"
var AuthEventsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_recorded_total",
		Help:      "Total number of auth audit events persisted, by kind.",
	},
	[]string{"kind"},
)

// ── Remote gate metrics (post service) ────────────────────────────────────────

// RemoteValidationsTotal counts calls from the post service to the user
// service's validation endpoint.
// Label:
//   - result: "valid", "rejected" (upstream non-200), "unreachable" (transport failure)
//
// The wire behavior collapses rejected and unreachable into one 401; this
// label is what keeps outages distinguishable from token rejections.
var RemoteValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_validations_total",
		Help:      "Total number of remote token validation calls, by result.",
	},
	[]string{"result"},
)

// TokenCacheTotal counts validated-principal cache decisions.
// Label:
//   - result: "hit" or "miss"
var TokenCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_cache_total",
		Help:      "Total number of validated-principal cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Post metrics ──────────────────────────────────────────────────────────────

// PostsCreatedTotal counts newly created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)
