// Package metrics provides Prometheus instrumentation for the job engine
// and the HTTP server that exposes it.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	jobsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "runlet_jobs_started_total",
			Help: "Jobs whose process reached the running state",
		},
	)

	jobsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "runlet_jobs_completed_total",
			Help: "Jobs that reached a terminal status, by outcome kind",
		},
		[]string{"outcome"},
	)

	jobsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "runlet_jobs_failed_total",
			Help: "Job runs that failed without resolving a terminal status",
		},
	)

	outputBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "runlet_job_output_bytes_total",
			Help: "Combined stdout/stderr bytes captured from finished jobs",
		},
	)
)

func init() {
	prometheus.MustRegister(
		jobsStarted,
		jobsCompleted,
		jobsFailed,
		outputBytes,
	)
}

// JobStarted records a job whose process was spawned successfully.
func JobStarted() {
	jobsStarted.Inc()
}

// JobCompleted records a job that reached a terminal status. outcome is
// "exit_code" or "signal".
func JobCompleted(outcome string) {
	jobsCompleted.WithLabelValues(outcome).Inc()
}

// JobFailed records a job run that failed before resolving an outcome.
func JobFailed() {
	jobsFailed.Inc()
}

// AddOutputBytes records output captured from a finished job.
func AddOutputBytes(n int) {
	outputBytes.Add(float64(n))
}
