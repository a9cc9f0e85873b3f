package splitwise

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/splitwise-slack/internal/entity/currency"
	"max.ks1230/splitwise-slack/internal/entity/expense"
	"max.ks1230/splitwise-slack/internal/logger"
	"max.ks1230/splitwise-slack/internal/model/customerr"
)

const (
	SessionCookie = "_splitwise_session"

	ExpensesEndpoint   = "get_expenses"
	CurrenciesEndpoint = "get_currencies"
	GroupsEndpoint     = "get_groups"

	maxBodyBytes  = 32 << 20
	maxErrorBytes = 512
)

type config interface {
	Session() string
	URL() string
	Timeout() time.Duration
}

type validator interface {
	Validate() error
}

// Client talks to the Splitwise v3.0 API on behalf of one run. The session
// cookie lives in the client's own jar and dies with it.
type Client struct {
	baseURL *url.URL
	client  *http.Client
}

func New(cfg config) (*Client, error) {
	base, err := url.Parse(cfg.URL())
	if err != nil {
		return nil, errors.Wrap(err, "parse splitwise url")
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}
	jar.SetCookies(&url.URL{Scheme: base.Scheme, Host: base.Host, Path: "/"}, []*http.Cookie{{
		Name:  SessionCookie,
		Value: cfg.Session(),
		Path:  "/",
	}})

	return &Client{
		baseURL: base,
		client: &http.Client{
			Jar:     jar,
			Timeout: cfg.Timeout(),
		},
	}, nil
}

func (c *Client) GetExpenses(ctx context.Context) (*expense.List, error) {
	res := &expense.List{}
	if err := c.get(ctx, ExpensesEndpoint, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) GetCurrencies(ctx context.Context) (*currency.List, error) {
	res := &currency.List{}
	if err := c.get(ctx, CurrenciesEndpoint, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) GetGroups(ctx context.Context) (*expense.GroupList, error) {
	res := &expense.GroupList{}
	if err := c.get(ctx, GroupsEndpoint, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out validator) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "splitwise."+endpoint)
	defer func() {
		if err != nil {
			ext.Error.Set(span, true)
		}
		span.Finish()
	}()

	endpointURL := c.baseURL.ResolveReference(&url.URL{Path: endpoint})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL.String(), nil)
	if err != nil {
		return &customerr.FetchError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return &customerr.FetchError{Endpoint: endpoint, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return &customerr.FetchError{Endpoint: endpoint, Err: errors.Wrap(err, "read body")}
	}
	ext.HTTPStatusCode.Set(span, uint16(res.StatusCode))

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &customerr.FetchError{Endpoint: endpoint, Err: &customerr.StatusError{
			Code: res.StatusCode,
			Body: truncate(body, maxErrorBytes),
		}}
	}
	logger.Debug("new response from splitwise", zap.String("endpoint", endpoint), zap.Int("bytes", len(body)))

	if err = json.Unmarshal(body, out); err != nil {
		return &customerr.ParseError{Source: endpoint, Err: errors.Wrap(err, "unmarshalling response")}
	}
	if err = out.Validate(); err != nil {
		return &customerr.ParseError{Source: endpoint, Err: err}
	}
	return nil
}

func truncate(body []byte, n int) string {
	s := strings.TrimSpace(string(body))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
