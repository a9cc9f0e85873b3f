package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"
	"max.ks1230/splitwise-slack/internal/logger"
)

type metricsConfig interface {
	Pushgateway() string
	Job() string
}

// pushMetrics hands the run's metrics to a pushgateway, the process does not
// live long enough to be scraped.
func pushMetrics(cfg metricsConfig) {
	if cfg.Pushgateway() == "" {
		return
	}
	err := push.New(cfg.Pushgateway(), cfg.Job()).
		Gatherer(prometheus.DefaultGatherer).
		Push()
	if err != nil {
		logger.Error("failed to push metrics", zap.Error(err))
	}
}
