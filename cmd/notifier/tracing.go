package main

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/splitwise-slack/internal/logger"
)

type tracingConfig interface {
	Agent() string
	ServiceName() string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// initTracing installs a jaeger tracer as the global one. Without an agent
// the opentracing no-op tracer stays in place.
func initTracing(cfg tracingConfig) (io.Closer, error) {
	if cfg.Agent() == "" {
		return nopCloser{}, nil
	}

	c := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.Agent(),
		},
	}
	tracer, closer, err := c.NewTracer()
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracing enabled", zap.String("agent", cfg.Agent()))
	return closer, nil
}
