package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFirst  = "first"
	outcomeSecond = "second"
	outcomeFailed = "failed"
)

type Metrics struct {
	statesEvaluated prometheus.Counter
	memoHits        prometheus.Counter
	solves          *prometheus.CounterVec
	duration        prometheus.Histogram
}

// Create solver metrics registered on 'reg', a nil registerer leaves them unregistered
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		statesEvaluated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "collinear",
			Name:      "solver_states_evaluated_total",
			Help:      "Total number of distinct game states computed by the solver.",
		}),
		memoHits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "collinear",
			Name:      "solver_memo_hits_total",
			Help:      "Total number of state lookups answered by the memo table.",
		}),
		solves: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "collinear",
			Name:      "solver_solves_total",
			Help:      "Total number of solves by outcome (first, second, failed).",
		}, []string{"outcome"}),
		duration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: "collinear",
			Name:      "solver_solve_duration_seconds",
			Help:      "Time spent in one solve.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

func (m *Metrics) observe(stats Stats, win bool, err error) {
	if m == nil {
		return
	}
	m.statesEvaluated.Add(float64(stats.States))
	m.memoHits.Add(float64(stats.MemoHits))
	m.duration.Observe(stats.Elapsed.Seconds())

	switch {
	case err != nil:
		m.solves.WithLabelValues(outcomeFailed).Inc()
	case win:
		m.solves.WithLabelValues(outcomeFirst).Inc()
	default:
		m.solves.WithLabelValues(outcomeSecond).Inc()
	}
}
