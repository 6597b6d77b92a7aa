// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "streamix"

var (
	// AuthFailuresTotal tracks rejected requests at the authentication gate.
	// Labels:
	//   - reason: missing, expired, invalid
	AuthFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Total number of requests rejected by the authentication gate",
		},
		[]string{"reason"},
	)

	// ProfileLimitRejectionsTotal tracks profile creations rejected by the
	// per-account cap.
	// Labels:
	//   - layer: precheck (application count), constraint (database trigger)
	ProfileLimitRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_limit_rejections_total",
			Help:      "Total number of profile creations rejected by the per-account limit",
		},
		[]string{"layer"},
	)

	// CacheOperationsTotal tracks catalog cache operations.
	// Labels:
	//   - operation: get, set, delete
	//   - status: hit, miss, success, error
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Total number of cache operations",
		},
		[]string{"operation", "status"},
	)

	// SingleflightRequestsTotal tracks catalog fetch coalescing.
	// Labels:
	//   - result: initiated (new execution), shared (reused result)
	SingleflightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "singleflight_requests_total",
			Help:      "Total number of singleflight requests",
		},
		[]string{"result"},
	)
)

// Auth failure reason constants.
const (
	AuthReasonMissing = "missing"
	AuthReasonExpired = "expired"
	AuthReasonInvalid = "invalid"
)

// Profile limit rejection layer constants.
const (
	LimitLayerPrecheck   = "precheck"
	LimitLayerConstraint = "constraint"
)

// Cache operation status constants.
const (
	CacheStatusHit     = "hit"
	CacheStatusMiss    = "miss"
	CacheStatusSuccess = "success"
	CacheStatusError   = "error"
)

// Cache operation type constants.
const (
	CacheOpGet    = "get"
	CacheOpSet    = "set"
	CacheOpDelete = "delete"
)

// Singleflight result constants.
const (
	SingleflightInitiated = "initiated"
	SingleflightShared    = "shared"
)
