// Package metrics defines and registers the custom Prometheus metrics for the
// portfolio API. It is the single source of truth for metric names, labels,
// and help strings; request-level HTTP metrics come from echoprometheus and
// are not declared here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// AuthFailuresTotal counts rejected requests at the auth gate.
// Label:
//   - reason: "no_token", "expired", "malformed", "invalid", "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authentication middleware.",
	},
	[]string{"reason"},
)

// TokensIssuedTotal counts minted tokens.
// Label:
//   - flow: "register", "login", "refresh"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of JWTs issued, by flow.",
	},
	[]string{"flow"},
)

// ContactSubmissionsTotal counts accepted contact-form submissions.
var ContactSubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact-form messages persisted.",
	},
)

// UploadsTotal counts image uploads.
// Labels:
//   - kind: "image" (object storage) or "icon" (local disk)
//   - result: "ok" or "rejected"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of image upload attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)
