package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/splitwise-slack/internal/clients/cache"
	"max.ks1230/splitwise-slack/internal/clients/slack"
	"max.ks1230/splitwise-slack/internal/clients/splitwise"
	"max.ks1230/splitwise-slack/internal/config"
	"max.ks1230/splitwise-slack/internal/entity/currency"
	"max.ks1230/splitwise-slack/internal/entity/expense"
	"max.ks1230/splitwise-slack/internal/logger"
	"max.ks1230/splitwise-slack/internal/model/notifier"
	"max.ks1230/splitwise-slack/internal/model/payloads"
	"max.ks1230/splitwise-slack/internal/model/storage"
)

type currencySource interface {
	GetCurrencies(ctx context.Context) (*currency.List, error)
}

type stateStorage interface {
	Load(ctx context.Context) (*expense.Snapshot, error)
	Save(ctx context.Context, snapshot *expense.Snapshot) error
}

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to the yaml config")
	dryRun := flag.Bool("dry-run", false, "log payloads instead of saving state and posting them")
	flag.Parse()

	if err := run(*configPath, *dryRun); err != nil {
		logger.Error("run failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(configPath string, dryRun bool) error {
	logger.Info("Notifier init - start")

	conf, err := config.New(configPath)
	if err != nil {
		return errors.Wrap(err, "init config")
	}

	closer, err := initTracing(conf.Jaeger())
	if err != nil {
		return errors.Wrap(err, "init tracing")
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close tracer", zap.Error(err))
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client, err := splitwise.New(conf.Splitwise())
	if err != nil {
		return errors.Wrap(err, "init splitwise client")
	}

	var currencies currencySource = client
	if conf.Memcached().Enabled() {
		cached, err := cache.NewMemcache(conf.Memcached(), client)
		if err != nil {
			logger.Warn("memcached ping failed, cache reads will fall back to the API", zap.Error(err))
		}
		currencies = cached
	}

	state, closeState, err := newStateStorage(ctx, conf)
	if err != nil {
		return errors.Wrap(err, "init state storage")
	}
	defer closeState()

	service := notifier.NewService(
		client,
		currencies,
		state,
		payloads.NewFormatter(conf.Slack()),
		slack.New(conf.Slack()),
		notifier.DryRun(dryRun),
	)

	logger.Info("Notifier init - end")

	_, err = service.Run(ctx)
	pushMetrics(conf.Metrics())
	return err
}

func newStateStorage(ctx context.Context, conf *config.Service) (stateStorage, func(), error) {
	switch conf.State().Backend() {
	case config.PostgresBackend:
		db, err := storage.NewPostgresStorage(ctx, conf.Postgres(), conf.State().StateKey())
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return storage.NewFileStorage(conf.State().Path()), func() {}, nil
	}
}
