package payloads

import (
	"context"
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
	"max.ks1230/splitwise-slack/internal/model/payloads/mock"
)

var currencies = currency.Table{
	"USD": {Code: "USD", Unit: "$"},
	"EUR": {Code: "EUR", Unit: "€"},
}

var (
	ann = expense.User{FirstName: "Ann", LastName: "Lee"}
	bob = expense.User{FirstName: "Bob", LastName: "Ray"}
)

func newFormatter(t *testing.T) *Formatter {
	m := minimock.NewController(t)
	t.Cleanup(m.Finish)

	cfg := mock.NewConfigMock(m)
	cfg.ChannelMock.Return("#expenses")
	return NewFormatter(cfg)
}

func receipt(id int64, created time.Time) expense.Expense {
	return expense.Expense{
		ID:             id,
		CreatedAt:      created,
		Date:           "2016-02-01",
		Cost:           "10.00",
		CurrencyCode:   "USD",
		CreationMethod: "equal",
		Description:    "Pizza",
		CreatedBy:      &ann,
		Users: []expense.UserShare{
			{User: ann, PaidShare: "10.00", OwedShare: "5.00", NetBalance: "5.00"},
			{User: bob, PaidShare: "0.00", OwedShare: "5.00", NetBalance: "-5.00"},
		},
	}
}

func strPtr(s string) *string {
	return &s
}

var base = time.Date(2016, 2, 1, 10, 0, 0, 0, time.UTC)

func Test_OnNewReceipt_ShouldFormatReceiptPayload(t *testing.T) {
	f := newFormatter(t)

	res, err := f.Format(context.Background(), []expense.Expense{receipt(1, base)}, currencies, nil)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, slack.Payload{
		Channel: "#expenses",
		Text:    "*Ann Lee added a $10.00 receipt for Pizza on 2016-02-01*",
		Attachments: []slack.Attachment{{
			Fallback: "Ann Lee added a $10.00 receipt for Pizza on 2016-02-01",
			Color:    slack.ColorRed,
			Fields: []slack.Field{
				{Title: "Ann Lee", Value: "Paid $10.00 and is owed $5.00", Short: true},
				{Title: "Bob Ray", Value: "Owes $5.00", Short: true},
			},
		}},
	}, res[0])
	assert.Contains(t, res[0].Text, "added a $10.00 receipt")
}

func Test_OnPayment_ShouldFormatPaymentPayload(t *testing.T) {
	f := newFormatter(t)
	payment := expense.Expense{
		ID:             2,
		CreatedAt:      base,
		Date:           "2016-02-02",
		Cost:           "25.50",
		CurrencyCode:   "EUR",
		CreationMethod: expense.PaymentMethod,
		Users: []expense.UserShare{
			{User: bob, PaidShare: "25.50", OwedShare: "0.0", NetBalance: "25.50"},
			{User: ann, PaidShare: "0.0", OwedShare: "25.50", NetBalance: "-25.50"},
		},
	}

	res, err := f.Format(context.Background(), []expense.Expense{payment}, currencies, nil)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "*€25.50 payment recorded at 2016-02-02*", res[0].Text)
	require.Len(t, res[0].Attachments, 1)
	assert.Equal(t, slack.ColorGreen, res[0].Attachments[0].Color)
	assert.Equal(t, []slack.Field{
		{Title: "Bob Ray", Value: "Paid €25.50", Short: true},
		{Title: "Ann Lee", Value: "Received €25.50", Short: true},
	}, res[0].Attachments[0].Fields)
}

func Test_OnDetails_ShouldPrependDetailsAttachment(t *testing.T) {
	f := newFormatter(t)
	exp := receipt(3, base)
	exp.Details = strPtr("Line A\n\rLine B")

	res, err := f.Format(context.Background(), []expense.Expense{exp}, currencies, nil)

	require.NoError(t, err)
	require.Len(t, res[0].Attachments, 2)
	assert.Equal(t, slack.Attachment{
		Fallback: "Details",
		Color:    slack.ColorGreen,
		Fields: []slack.Field{
			{Title: "Detail", Value: "Line A", Short: false},
			{Title: "Detail", Value: "Line B", Short: false},
		},
	}, res[0].Attachments[0])
	assert.Equal(t, slack.ColorRed, res[0].Attachments[1].Color)
}

func Test_OnEmptyDetails_ShouldSkipDetailsAttachment(t *testing.T) {
	f := newFormatter(t)
	exp := receipt(3, base)
	exp.Details = strPtr("")

	res, err := f.Format(context.Background(), []expense.Expense{exp}, currencies, nil)

	require.NoError(t, err)
	assert.Len(t, res[0].Attachments, 1)
}

func Test_OnSeenOrDeleted_ShouldSkip(t *testing.T) {
	f := newFormatter(t)
	deleted := receipt(2, base)
	deleted.DeletedAt = strPtr("2016-02-03T00:00:00Z")
	exps := []expense.Expense{receipt(1, base), deleted, receipt(3, base)}

	res, err := f.Format(context.Background(), exps, currencies, map[int64]struct{}{1: {}})

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func Test_OnAllSeen_ShouldReturnNothing(t *testing.T) {
	f := newFormatter(t)

	res, err := f.Format(context.Background(), []expense.Expense{receipt(1, base)}, currencies, map[int64]struct{}{1: {}})

	require.NoError(t, err)
	assert.Empty(t, res)
}

func Test_OnUnorderedInput_ShouldSortOldestFirstKeepingTies(t *testing.T) {
	f := newFormatter(t)
	exps := []expense.Expense{
		receipt(1, base.Add(2*time.Hour)),
		receipt(2, base),
		receipt(3, base.Add(time.Hour)),
		receipt(4, base),
	}
	for i := range exps {
		exps[i].Description = string(rune('a' + i))
	}

	res, err := f.Format(context.Background(), exps, currencies, nil)

	require.NoError(t, err)
	require.Len(t, res, 4)
	got := make([]string, 0, len(res))
	for _, p := range res {
		got = append(got, p.Text)
	}
	assert.Equal(t, []string{
		"*Ann Lee added a $10.00 receipt for b on 2016-02-01*",
		"*Ann Lee added a $10.00 receipt for d on 2016-02-01*",
		"*Ann Lee added a $10.00 receipt for c on 2016-02-01*",
		"*Ann Lee added a $10.00 receipt for a on 2016-02-01*",
	}, got)
}

func Test_OnUnknownCurrency_ShouldFail(t *testing.T) {
	f := newFormatter(t)
	exp := receipt(5, base)
	exp.CurrencyCode = "XYZ"

	res, err := f.Format(context.Background(), []expense.Expense{receipt(1, base), exp}, currencies, nil)

	assert.Nil(t, res)
	var currErr *customerr.UnknownCurrencyError
	require.True(t, errors.As(err, &currErr))
	assert.Equal(t, "XYZ", currErr.Code)
	assert.Equal(t, int64(5), currErr.ExpenseID)
}

func Test_OnUnknownCurrencyOfSeenExpense_ShouldIgnore(t *testing.T) {
	f := newFormatter(t)
	exp := receipt(5, base)
	exp.CurrencyCode = "XYZ"

	res, err := f.Format(context.Background(), []expense.Expense{exp}, currencies, map[int64]struct{}{5: {}})

	assert.NoError(t, err)
	assert.Empty(t, res)
}

func Test_OnMissingCreator_ShouldUsePlaceholder(t *testing.T) {
	f := newFormatter(t)
	exp := receipt(6, base)
	exp.CreatedBy = nil

	res, err := f.Format(context.Background(), []expense.Expense{exp}, currencies, nil)

	require.NoError(t, err)
	assert.Equal(t, "*Someone added a $10.00 receipt for Pizza on 2016-02-01*", res[0].Text)
}

func Test_OnConfiguredChannel_ShouldAddressEveryPayload(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	cfg := mock.NewConfigMock(m)
	cfg.ChannelMock.Expect().Return("#flat")
	f := NewFormatter(cfg)

	res, err := f.Format(context.Background(), []expense.Expense{receipt(1, base), receipt(2, base)}, currencies, nil)

	require.NoError(t, err)
	require.Len(t, res, 2)
	for _, p := range res {
		assert.Equal(t, "#flat", p.Channel)
	}
	assert.Equal(t, uint64(1), cfg.ChannelAfterCounter())
}
