// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_searches_total",
			Help: "Total number of job searches executed, by sort mode",
		},
		[]string{"sort_by"},
	)

	JobsPosted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_jobs_posted_total",
			Help: "Total number of jobs posted",
		},
	)

	ApplicationsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_applications_submitted_total",
			Help: "Total number of applications submitted",
		},
	)

	NotificationsPushed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_notifications_total",
			Help: "Total number of notifications pushed, by kind",
		},
		[]string{"kind"},
	)

	MutationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_mutations_rejected_total",
			Help: "Total number of mutations rejected, by error code",
		},
		[]string{"error_code"},
	)
)
