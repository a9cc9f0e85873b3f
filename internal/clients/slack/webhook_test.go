package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/splitwise-slack/internal/entity/slack"
	"max.ks1230/splitwise-slack/internal/model/customerr"
)

type testConfig struct {
	url string
}

func (c testConfig) WebhookURL() string     { return c.url }
func (c testConfig) Timeout() time.Duration { return time.Second }

type recorder struct {
	mu       sync.Mutex
	received []slack.Payload
	failText string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var p slack.Payload
	if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.mu.Lock()
	r.received = append(r.received, p)
	r.mu.Unlock()

	if req.Header.Get("Content-Type") != "application/json" {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		return
	}
	if p.Text == r.failText {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("invalid_payload"))
		return
	}
	_, _ = w.Write([]byte("ok"))
}

func payload(text string) slack.Payload {
	return slack.Payload{
		Channel: "#expenses",
		Text:    text,
		Attachments: []slack.Attachment{{
			Fallback: text,
			Color:    slack.ColorRed,
			Fields:   []slack.Field{{Title: "Ann Lee", Value: "Owes $5.00", Short: true}},
		}},
	}
}

func Test_OnSend_ShouldPostEachPayloadInOrder(t *testing.T) {
	rec := &recorder{failText: "-"}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	err := New(testConfig{url: srv.URL}).Send(context.Background(), payload("first"), payload("second"))
	require.NoError(t, err)

	require.Len(t, rec.received, 2)
	assert.Equal(t, "first", rec.received[0].Text)
	assert.Equal(t, "second", rec.received[1].Text)
	assert.Equal(t, "#expenses", rec.received[0].Channel)
	assert.Equal(t, []slack.Field{{Title: "Ann Lee", Value: "Owes $5.00", Short: true}}, rec.received[0].Attachments[0].Fields)
}

func Test_OnFailedPost_ShouldContinueAndReportFirstIndex(t *testing.T) {
	rec := &recorder{failText: "bad"}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	err := New(testConfig{url: srv.URL}).Send(context.Background(),
		payload("ok-1"), payload("bad"), payload("ok-2"), payload("bad"))

	var deliveryErr *customerr.DeliveryError
	require.True(t, errors.As(err, &deliveryErr))
	assert.Equal(t, 1, deliveryErr.Index)
	assert.Contains(t, err.Error(), "invalid_payload")
	assert.Len(t, rec.received, 4)
}

func Test_OnSendWithNothing_ShouldNotPost(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	assert.NoError(t, New(testConfig{url: srv.URL}).Send(context.Background()))
	assert.Empty(t, rec.received)
}

func Test_OnSendOne_ShouldPostSinglePayload(t *testing.T) {
	rec := &recorder{failText: "bad"}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	hook := New(testConfig{url: srv.URL})
	assert.NoError(t, hook.SendOne(context.Background(), payload("only")))

	err := hook.SendOne(context.Background(), payload("bad"))
	var deliveryErr *customerr.DeliveryError
	require.True(t, errors.As(err, &deliveryErr))
	assert.Equal(t, 0, deliveryErr.Index)
	assert.Len(t, rec.received, 2)
}
