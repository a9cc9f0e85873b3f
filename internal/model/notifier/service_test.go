package notifier

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/splitwise-slack/internal/entity/currency"
	"max.ks1230/splitwise-slack/internal/entity/expense"
	"max.ks1230/splitwise-slack/internal/entity/slack"
	"max.ks1230/splitwise-slack/internal/model/customerr"
	"max.ks1230/splitwise-slack/internal/model/notifier/mock"
	"max.ks1230/splitwise-slack/internal/model/payloads"
	"max.ks1230/splitwise-slack/internal/model/storage"
)

type channelConfig string

func (c channelConfig) Channel() string { return string(c) }

var (
	ann     = expense.User{FirstName: "Ann", LastName: "Lee"}
	created = time.Date(2016, 2, 1, 10, 0, 0, 0, time.UTC)
)

func newExpense(id int64, code string) expense.Expense {
	return expense.Expense{
		ID:           id,
		CreatedAt:    created.Add(time.Duration(id) * time.Minute),
		Date:         "2016-02-01",
		Cost:         "10.00",
		CurrencyCode: code,
		Description:  "Pizza",
		CreatedBy:    &ann,
		Users:        []expense.UserShare{{User: ann, PaidShare: "10.00", OwedShare: "0.00", NetBalance: "0.00"}},
	}
}

func deletedExpense(id int64) expense.Expense {
	e := newExpense(id, "USD")
	deletedAt := "2016-02-02T00:00:00Z"
	e.DeletedAt = &deletedAt
	return e
}

var usd = &currency.List{Currencies: []currency.Currency{{Code: "USD", Unit: "$"}}}

var groups = &expense.GroupList{Groups: []expense.Group{{ID: 1, Name: "Flat"}}}

type fixture struct {
	expenses   *mock.ExpenseSourceMock
	currencies *mock.CurrencySourceMock
	state      *mock.StateStorageMock
	sender     *mock.PayloadSenderMock
}

func newFixture(t *testing.T) (*fixture, *minimock.Controller) {
	m := minimock.NewController(t)
	return &fixture{
		expenses:   mock.NewExpenseSourceMock(m),
		currencies: mock.NewCurrencySourceMock(m),
		state:      mock.NewStateStorageMock(m),
		sender:     mock.NewPayloadSenderMock(m),
	}, m
}

func (f *fixture) service(opts ...Option) *Service {
	return NewService(f.expenses, f.currencies, f.state,
		payloads.NewFormatter(channelConfig("#expenses")), f.sender, opts...)
}

func Test_OnFirstRun_ShouldNotifyAllAndSaveFullList(t *testing.T) {
	f, m := newFixture(t)
	defer m.Finish()

	fetched := &expense.List{Expenses: []expense.Expense{newExpense(2, "USD"), deletedExpense(3), newExpense(1, "USD")}}
	f.expenses.GetExpensesMock.Return(fetched, nil)
	f.expenses.GetGroupsMock.Return(groups, nil)
	f.currencies.GetCurrenciesMock.Return(usd, nil)
	f.state.LoadMock.Return(nil, nil)
	f.state.SaveMock.
		Inspect(func(_ context.Context, snapshot *expense.Snapshot) {
			assert.Equal(m, fetched, snapshot)
		}).
		Return(nil)
	f.sender.SendMock.
		Inspect(func(_ context.Context, sent ...slack.Payload) {
			assert.Len(m, sent, 2)
		}).
		Return(nil)

	res, err := f.service().Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Fetched)
	assert.Equal(t, 1, res.Groups)
	require.Len(t, res.Payloads, 2)
	assert.Equal(t, "#expenses", res.Payloads[0].Channel)
	assert.Contains(t, res.Payloads[0].Text, "added a $10.00 receipt")
}

func Test_OnSeenExpense_ShouldSaveButNotSend(t *testing.T) {
	f, m := newFixture(t)
	defer m.Finish()

	fetched := &expense.List{Expenses: []expense.Expense{newExpense(1, "USD")}}
	f.expenses.GetExpensesMock.Return(fetched, nil)
	f.expenses.GetGroupsMock.Return(groups, nil)
	f.currencies.GetCurrenciesMock.Return(usd, nil)
	f.state.LoadMock.Return(&expense.Snapshot{Expenses: []expense.Expense{{ID: 1}}}, nil)
	f.state.SaveMock.Return(nil)

	res, err := f.service().Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res.Payloads)
	assert.Equal(t, uint64(0), f.sender.SendAfterCounter())
}

func Test_OnCorruptedState_ShouldFailWithoutSideEffects(t *testing.T) {
	f, m := newFixture(t)
	defer m.Finish()

	f.expenses.GetExpensesMock.Return(&expense.List{Expenses: []expense.Expense{newExpense(1, "USD")}}, nil)
	f.expenses.GetGroupsMock.Return(groups, nil)
	f.currencies.GetCurrenciesMock.Return(usd, nil)
	f.state.LoadMock.Return(nil, &customerr.ParseError{Source: "state.json", Err: errors.New("unexpected EOF")})

	res, err := f.service().Run(context.Background())

	assert.Nil(t, res)
	var parseErr *customerr.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, uint64(0), f.state.SaveAfterCounter())
	assert.Equal(t, uint64(0), f.sender.SendAfterCounter())
}

func Test_OnFetchError_ShouldAbort(t *testing.T) {
	f, m := newFixture(t)
	defer m.Finish()

	f.expenses.GetExpensesMock.Return(&expense.List{Expenses: []expense.Expense{}}, nil)
	f.expenses.GetGroupsMock.Return(nil, &customerr.FetchError{Endpoint: "get_groups", Err: errors.New("timeout")})
	f.currencies.GetCurrenciesMock.Return(usd, nil)
	f.state.LoadMock.Return(nil, nil)

	_, err := f.service().Run(context.Background())

	var fetchErr *customerr.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "get_groups", fetchErr.Endpoint)
	assert.Equal(t, uint64(0), f.state.SaveAfterCounter())
	assert.Equal(t, uint64(0), f.sender.SendAfterCounter())
}

func Test_OnUnknownCurrency_ShouldAbortBeforeSave(t *testing.T) {
	f, m := newFixture(t)
	defer m.Finish()

	f.expenses.GetExpensesMock.Return(&expense.List{Expenses: []expense.Expense{newExpense(1, "GBP")}}, nil)
	f.expenses.GetGroupsMock.Return(groups, nil)
	f.currencies.GetCurrenciesMock.Return(usd, nil)
	f.state.LoadMock.Return(nil, nil)

	_, err := f.service().Run(context.Background())

	var currErr *customerr.UnknownCurrencyError
	require.True(t, errors.As(err, &currErr))
	assert.Equal(t, uint64(0), f.state.SaveAfterCounter())
	assert.Equal(t, uint64(0), f.sender.SendAfterCounter())
}

func Test_OnDeliveryError_ShouldStillSaveAndReportError(t *testing.T) {
	f, m := newFixture(t)
	defer m.Finish()

	f.expenses.GetExpensesMock.Return(&expense.List{Expenses: []expense.Expense{newExpense(1, "USD")}}, nil)
	f.expenses.GetGroupsMock.Return(groups, nil)
	f.currencies.GetCurrenciesMock.Return(usd, nil)
	f.state.LoadMock.Return(nil, nil)
	f.state.SaveMock.Return(nil)
	f.sender.SendMock.Return(&customerr.DeliveryError{Index: 0, Err: errors.New("500")})

	_, err := f.service().Run(context.Background())

	var deliveryErr *customerr.DeliveryError
	require.True(t, errors.As(err, &deliveryErr))
	assert.Equal(t, uint64(1), f.state.SaveAfterCounter())
}

func Test_OnSaveError_ShouldStillSend(t *testing.T) {
	f, m := newFixture(t)
	defer m.Finish()

	f.expenses.GetExpensesMock.Return(&expense.List{Expenses: []expense.Expense{newExpense(1, "USD")}}, nil)
	f.expenses.GetGroupsMock.Return(groups, nil)
	f.currencies.GetCurrenciesMock.Return(usd, nil)
	f.state.LoadMock.Return(nil, nil)
	f.state.SaveMock.Return(errors.New("disk full"))
	f.sender.SendMock.Return(nil)

	_, err := f.service().Run(context.Background())

	assert.ErrorContains(t, err, "save state: disk full")
	assert.Equal(t, uint64(1), f.sender.SendAfterCounter())
}

func Test_OnDryRun_ShouldNeitherSaveNorSend(t *testing.T) {
	f, m := newFixture(t)
	defer m.Finish()

	f.expenses.GetExpensesMock.Return(&expense.List{Expenses: []expense.Expense{newExpense(1, "USD")}}, nil)
	f.expenses.GetGroupsMock.Return(groups, nil)
	f.currencies.GetCurrenciesMock.Return(usd, nil)
	f.state.LoadMock.Return(nil, nil)

	res, err := f.service(DryRun(true)).Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, res.Payloads, 1)
	assert.Equal(t, uint64(0), f.state.SaveAfterCounter())
	assert.Equal(t, uint64(0), f.sender.SendAfterCounter())
}

type recordingSender struct {
	mu   sync.Mutex
	sent []slack.Payload
}

func (r *recordingSender) Send(_ context.Context, payloads ...slack.Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, payloads...)
	return nil
}

func Test_OnSecondRunWithSameData_ShouldNotifyNothing(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	source := mock.NewExpenseSourceMock(m)
	currencies := mock.NewCurrencySourceMock(m)
	source.GetExpensesMock.Return(&expense.List{Expenses: []expense.Expense{newExpense(1, "USD"), newExpense(2, "USD")}}, nil)
	source.GetGroupsMock.Return(groups, nil)
	currencies.GetCurrenciesMock.Return(usd, nil)

	sender := &recordingSender{}
	state := storage.NewFileStorage(filepath.Join(t.TempDir(), "state.json"))
	service := NewService(source, currencies, state, payloads.NewFormatter(channelConfig("#expenses")), sender)

	first, err := service.Run(context.Background())
	require.NoError(t, err)
	second, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, first.Payloads, 2)
	assert.Empty(t, second.Payloads)
	assert.Len(t, sender.sent, 2)
}
