package notifier

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/splitwise-slack/internal/entity/currency"
	"max.ks1230/splitwise-slack/internal/entity/expense"
	"max.ks1230/splitwise-slack/internal/entity/slack"
	"max.ks1230/splitwise-slack/internal/logger"
)

//go:generate minimock -i expenseSource,currencySource,stateStorage,payloadSender -o ./mock/ -s _mock.go

type expenseSource interface {
	GetExpenses(ctx context.Context) (*expense.List, error)
	GetGroups(ctx context.Context) (*expense.GroupList, error)
}

type currencySource interface {
	GetCurrencies(ctx context.Context) (*currency.List, error)
}

type stateStorage interface {
	Load(ctx context.Context) (*expense.Snapshot, error)
	Save(ctx context.Context, snapshot *expense.Snapshot) error
}

type payloadFormatter interface {
	Format(ctx context.Context, expenses []expense.Expense, currencies currency.Table, seen map[int64]struct{}) ([]slack.Payload, error)
}

type payloadSender interface {
	Send(ctx context.Context, payloads ...slack.Payload) error
}

// Service runs one poll: fetch, diff against the stored snapshot, announce.
type Service struct {
	expenses   expenseSource
	currencies currencySource
	state      stateStorage
	formatter  payloadFormatter
	sender     payloadSender
	dryRun     bool
}

type Option func(*Service)

// DryRun formats and logs payloads without saving state or posting them.
func DryRun(enabled bool) Option {
	return func(s *Service) {
		s.dryRun = enabled
	}
}

func NewService(
	expenses expenseSource,
	currencies currencySource,
	state stateStorage,
	formatter payloadFormatter,
	sender payloadSender,
	opts ...Option,
) *Service {
	s := &Service{
		expenses:   expenses,
		currencies: currencies,
		state:      state,
		formatter:  formatter,
		sender:     sender,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Result struct {
	Fetched  int
	Groups   int
	Payloads []slack.Payload
}

type inputs struct {
	expenses   *expense.List
	currencies *currency.List
	groups     *expense.GroupList
	prior      *expense.Snapshot
}

func (s *Service) Run(ctx context.Context) (*Result, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "run")
	defer span.Finish()

	start := time.Now()
	res, err := s.run(ctx)
	observeRun(time.Since(start), err != nil)

	if err != nil {
		ext.Error.Set(span, true)
	}
	return res, err
}

func (s *Service) run(ctx context.Context) (*Result, error) {
	logger.Info("Run - start", zap.Bool("dryRun", s.dryRun))
	defer logger.Info("Run - end")

	in, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	gaugeFetchedExpenses.Set(float64(len(in.expenses.Expenses)))
	logger.Info("fetched",
		zap.Int("expenses", len(in.expenses.Expenses)),
		zap.Int("currencies", len(in.currencies.Currencies)),
		zap.Int("groups", len(in.groups.Groups)),
		zap.Bool("priorState", in.prior != nil))

	payloads, err := s.formatter.Format(ctx, in.expenses.Expenses, in.currencies.Table(), in.prior.IDs())
	if err != nil {
		return nil, err
	}

	res := &Result{
		Fetched:  len(in.expenses.Expenses),
		Groups:   len(in.groups.Groups),
		Payloads: payloads,
	}

	if s.dryRun {
		logger.Info("dry run, nothing saved or sent", zap.Any("payloads", payloads))
		return res, nil
	}

	if err = s.publish(ctx, in.expenses, payloads); err != nil {
		return res, err
	}
	logger.Info("payloads sent", zap.Int("count", len(payloads)))
	return res, nil
}

// read fetches the three API resources and the prior snapshot concurrently.
func (s *Service) read(ctx context.Context) (*inputs, error) {
	in := &inputs{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		in.expenses, err = s.expenses.GetExpenses(gctx)
		return errors.Wrap(err, "fetch expenses")
	})
	g.Go(func() (err error) {
		in.currencies, err = s.currencies.GetCurrencies(gctx)
		return errors.Wrap(err, "fetch currencies")
	})
	g.Go(func() (err error) {
		in.groups, err = s.expenses.GetGroups(gctx)
		return errors.Wrap(err, "fetch groups")
	})
	g.Go(func() (err error) {
		in.prior, err = s.state.Load(gctx)
		return errors.Wrap(err, "read state")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

// publish saves the full fetched list and sends the payloads. Neither waits
// for the other, and both run to completion.
func (s *Service) publish(ctx context.Context, fetched *expense.List, payloads []slack.Payload) error {
	var g errgroup.Group

	g.Go(func() error {
		return errors.Wrap(s.state.Save(ctx, fetched), "save state")
	})
	g.Go(func() error {
		if len(payloads) == 0 {
			return nil
		}
		err := s.sender.Send(ctx, payloads...)
		observePayloads(len(payloads), err == nil)
		return errors.Wrap(err, "send payloads")
	})

	return g.Wait()
}
