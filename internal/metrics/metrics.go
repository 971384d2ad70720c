package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "portfolio"
)

var (
	// GitHub Metrics
	GitHubFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "github_fetch_total",
		Help:      "Count of upstream repository list requests by outcome.",
	}, []string{"status"})

	GitHubFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "github_fetch_duration_seconds",
		Help:      "Time taken by upstream repository list requests.",
		Buckets:   prometheus.DefBuckets,
	})

	GitHubSharedFetchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "github_shared_fetches_total",
		Help:      "Number of fetches that joined an in-flight request for the same handle.",
	})

	// Feed Metrics
	FeedSessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "feed_sessions_active",
		Help:      "Number of open repository feed sessions.",
	})

	// Discord Metrics
	AuthCallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_callback_total",
		Help:      "Count of Discord callback completions by outcome.",
	}, []string{"outcome"})

	ProfileStreamsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "profile_streams_active",
		Help:      "Number of connected profile event streams.",
	})

	// Contact Metrics
	ContactSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Count of contact form submissions by outcome.",
	}, []string{"status"})
)
