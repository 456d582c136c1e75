package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	ApplicationsSubmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_applications_submitted_total",
			Help: "Total number of job application submission attempts.",
		},
		[]string{"service", "result"},
	)

	InterviewsScheduledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_interviews_scheduled_total",
			Help: "Total number of interview scheduling attempts.",
		},
		[]string{"service", "result"},
	)

	AccessDeniedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_access_denied_total",
			Help: "Total number of authorization denials.",
		},
		[]string{"service", "resource"},
	)
)

func MustRegister(serviceName string) {
	HTTPRequestsTotal = HTTPRequestsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	HTTPRequestDurationSeconds = HTTPRequestDurationSeconds.MustCurryWith(prometheus.Labels{"service": serviceName}).(*prometheus.HistogramVec)
	ApplicationsSubmittedTotal = ApplicationsSubmittedTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	InterviewsScheduledTotal = InterviewsScheduledTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	AccessDeniedTotal = AccessDeniedTotal.MustCurryWith(prometheus.Labels{"service": serviceName})

	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		ApplicationsSubmittedTotal,
		InterviewsScheduledTotal,
		AccessDeniedTotal,
	)
}
