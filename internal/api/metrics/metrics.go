// Package metrics defines and registers all custom Prometheus metrics for
// the blog editor API. It is the single source of truth for metric names,
// labels, and help strings. Registration happens implicitly via promauto
// against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// PostsSavedTotal counts successful save-draft and publish calls.
// Labels:
//   - status: the target status applied ("draft" or "published")
//   - outcome: "created" (new document) or "updated" (existing document)
var PostsSavedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_saved_total",
		Help:      "Total number of posts saved, by target status and outcome.",
	},
	[]string{"status", "outcome"},
)

// PostsDeletedTotal counts successful post deletions.
var PostsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of posts deleted.",
	},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing", "bad_format", "expired", "invalid", or "revoked"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware, by reason.",
	},
	[]string{"reason"},
)
