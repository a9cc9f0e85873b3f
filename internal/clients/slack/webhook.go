package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/splitwise-slack/internal/entity/slack"
	"max.ks1230/splitwise-slack/internal/logger"
	"max.ks1230/splitwise-slack/internal/model/customerr"
)

const maxErrorBytes = 512

type config interface {
	WebhookURL() string
	Timeout() time.Duration
}

// Webhook posts payloads to a Slack incoming webhook.
type Webhook struct {
	url    string
	client *http.Client
}

func New(cfg config) *Webhook {
	return &Webhook{
		url:    cfg.WebhookURL(),
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

// Send posts every payload in order. A failed post does not stop the ones
// after it; the first failure is returned as a *customerr.DeliveryError.
func (w *Webhook) Send(ctx context.Context, payloads ...slack.Payload) error {
	logger.Info("Send - start", zap.Int("payloads", len(payloads)))
	defer logger.Info("Send - end")

	var first error
	for i := range payloads {
		err := w.post(ctx, &payloads[i])
		if err == nil {
			continue
		}
		err = &customerr.DeliveryError{Index: i, Err: err}
		logger.Error("failed to deliver payload", zap.Int("index", i), zap.Error(err))
		if first == nil {
			first = err
		}
	}
	return first
}

func (w *Webhook) SendOne(ctx context.Context, payload slack.Payload) error {
	if err := w.post(ctx, &payload); err != nil {
		return &customerr.DeliveryError{Index: 0, Err: err}
	}
	return nil
}

func (w *Webhook) post(ctx context.Context, payload *slack.Payload) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "slack.post")
	defer func() {
		if err != nil {
			ext.Error.Set(span, true)
		}
		span.Finish()
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := w.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "post webhook")
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBytes))
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &customerr.StatusError{Code: res.StatusCode, Body: string(bytes.TrimSpace(respBody))}
	}
	return nil
}
