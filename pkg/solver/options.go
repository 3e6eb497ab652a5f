package solver

import (
	"github.com/go-kit/log"
)

type settings struct {
	limits   *Limits
	listener StatsListener
	logger   log.Logger
	metrics  *Metrics
}

func defaultSettings() settings {
	return settings{
		limits:   DefaultLimits(),
		listener: NewStatsListener(),
		logger:   log.NewNopLogger(),
	}
}

type Option func(*settings)

func WithLimits(limits *Limits) Option {
	return func(s *settings) {
		if limits != nil {
			s.limits = limits
		}
	}
}

func WithListener(listener StatsListener) Option {
	return func(s *settings) {
		s.listener = listener
	}
}

func WithLogger(logger log.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(s *settings) {
		s.metrics = metrics
	}
}
