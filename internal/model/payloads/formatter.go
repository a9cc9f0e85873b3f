package payloads

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/splitwise-slack/internal/entity/currency"
	"max.ks1230/splitwise-slack/internal/entity/expense"
	"max.ks1230/splitwise-slack/internal/entity/slack"
	"max.ks1230/splitwise-slack/internal/logger"
	"max.ks1230/splitwise-slack/internal/model/customerr"
)

const (
	detailsSeparator = "\n\r"
	detailsFallback  = "Details"
	detailTitle      = "Detail"
	unknownCreator   = "Someone"
)

//go:generate minimock -i config -o ./mock/ -s _mock.go

type config interface {
	Channel() string
}

type Formatter struct {
	channel string
}

func NewFormatter(config config) *Formatter {
	return &Formatter{channel: config.Channel()}
}

// Format builds one payload per expense that is neither deleted nor in seen,
// oldest first.
func (f *Formatter) Format(
	ctx context.Context,
	expenses []expense.Expense,
	currencies currency.Table,
	seen map[int64]struct{},
) ([]slack.Payload, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "formatPayloads")
	defer span.Finish()

	fresh := filterUnseen(expenses, seen)
	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].CreatedAt.Before(fresh[j].CreatedAt)
	})
	span.SetTag("fresh", len(fresh))

	res := make([]slack.Payload, 0, len(fresh))
	for i := range fresh {
		p, err := f.format(&fresh[i], currencies)
		if err != nil {
			return nil, errors.Wrap(err, "format payloads")
		}
		res = append(res, p)
	}

	logger.Info("formatted payloads",
		zap.Int("fetched", len(expenses)),
		zap.Int("seen", len(seen)),
		zap.Int("payloads", len(res)))
	return res, nil
}

func filterUnseen(exps []expense.Expense, seen map[int64]struct{}) []expense.Expense {
	res := make([]expense.Expense, 0)
	for _, exp := range exps {
		if exp.Deleted() {
			continue
		}
		if _, ok := seen[exp.ID]; ok {
			continue
		}
		res = append(res, exp)
	}
	return res
}

func (f *Formatter) format(exp *expense.Expense, currencies currency.Table) (slack.Payload, error) {
	unit, ok := currencies.Unit(exp.CurrencyCode)
	if !ok {
		return slack.Payload{}, &customerr.UnknownCurrencyError{Code: exp.CurrencyCode, ExpenseID: exp.ID}
	}

	if exp.IsPayment() {
		return f.formatPayment(exp, unit)
	}
	return f.formatReceipt(exp, unit)
}

func (f *Formatter) formatPayment(exp *expense.Expense, unit string) (slack.Payload, error) {
	description := fmt.Sprintf("%s%s payment recorded at %s", unit, exp.Cost, exp.Date)

	fields := make([]slack.Field, 0, len(exp.Users))
	for _, share := range exp.Users {
		paid, err := share.PaidShare.IsPositive()
		if err != nil {
			return slack.Payload{}, errors.Wrapf(err, "expense %d", exp.ID)
		}
		value := "Received " + unit + share.OwedShare.String()
		if paid {
			value = "Paid " + unit + share.PaidShare.String()
		}
		fields = append(fields, slack.Field{Title: share.User.FullName(), Value: value, Short: true})
	}

	return f.payload(description, slack.Attachment{
		Fallback: description,
		Color:    slack.ColorGreen,
		Fields:   fields,
	}), nil
}

func (f *Formatter) formatReceipt(exp *expense.Expense, unit string) (slack.Payload, error) {
	creator := exp.Creator()
	if creator == "" {
		creator = unknownCreator
	}
	description := fmt.Sprintf("%s added a %s%s receipt for %s on %s",
		creator, unit, exp.Cost, exp.Description, exp.Date)

	fields := make([]slack.Field, 0, len(exp.Users))
	for _, share := range exp.Users {
		paid, err := share.PaidShare.IsPositive()
		if err != nil {
			return slack.Payload{}, errors.Wrapf(err, "expense %d", exp.ID)
		}
		value := "Owes " + unit + share.OwedShare.String()
		if paid {
			value = fmt.Sprintf("Paid %s%s and is owed %s%s", unit, share.PaidShare, unit, share.NetBalance)
		}
		fields = append(fields, slack.Field{Title: share.User.FullName(), Value: value, Short: true})
	}

	attachments := make([]slack.Attachment, 0, 2)
	if details := exp.DetailsText(); details != "" {
		attachments = append(attachments, detailsAttachment(details))
	}
	attachments = append(attachments, slack.Attachment{
		Fallback: description,
		Color:    slack.ColorRed,
		Fields:   fields,
	})

	return f.payload(description, attachments...), nil
}

func detailsAttachment(details string) slack.Attachment {
	lines := strings.Split(details, detailsSeparator)
	fields := make([]slack.Field, 0, len(lines))
	for _, line := range lines {
		fields = append(fields, slack.Field{Title: detailTitle, Value: line, Short: false})
	}
	return slack.Attachment{
		Fallback: detailsFallback,
		Color:    slack.ColorGreen,
		Fields:   fields,
	}
}

func (f *Formatter) payload(description string, attachments ...slack.Attachment) slack.Payload {
	return slack.Payload{
		Channel:     f.channel,
		Text:        "*" + description + "*",
		Attachments: attachments,
	}
}
