package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/splitwise-slack/internal/entity/currency"
	"max.ks1230/splitwise-slack/internal/logger"
)

const (
	currenciesKey = "splitwise:currencies"

	// memcached reads larger expirations as unix timestamps
	maxRelativeExpiration = 30 * 24 * time.Hour
)

type config interface {
	Hosts() []string
	TTL() time.Duration
}

type currencySource interface {
	GetCurrencies(ctx context.Context) (*currency.List, error)
}

// itemStore is the subset of *memcache.Client used here.
type itemStore interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
}

// Currencies serves the currency list from memcached and falls back to the
// API on a miss or on any cache failure.
type Currencies struct {
	store  itemStore
	source currencySource
	ttl    time.Duration
}

func NewMemcache(cfg config, source currencySource) (*Currencies, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", cfg.Hosts()))
	mc := memcache.New(cfg.Hosts()...)
	return newCurrencies(mc, source, cfg.TTL()), mc.Ping()
}

func newCurrencies(store itemStore, source currencySource, ttl time.Duration) *Currencies {
	return &Currencies{store: store, source: source, ttl: ttl}
}

func (c *Currencies) GetCurrencies(ctx context.Context) (*currency.List, error) {
	if list, err := c.cached(); err == nil {
		logger.Info("currencies served from cache", zap.Int("count", len(list.Currencies)))
		return list, nil
	} else if !errors.Is(err, memcache.ErrCacheMiss) {
		logger.Error("cannot read currencies from cache", zap.Error(err))
	}

	list, err := c.source.GetCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	if err = c.remember(list); err != nil {
		logger.Error("cannot cache currencies", zap.Error(err))
	}
	return list, nil
}

func (c *Currencies) cached() (*currency.List, error) {
	item, err := c.store.Get(currenciesKey)
	if err != nil {
		return nil, err
	}
	list := &currency.List{}
	if err = json.Unmarshal(item.Value, list); err != nil {
		return nil, errors.Wrap(err, "decode cached currencies")
	}
	if err = list.Validate(); err != nil {
		return nil, errors.Wrap(err, "cached currencies")
	}
	return list, nil
}

func (c *Currencies) remember(list *currency.List) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return errors.Wrap(err, "encode currencies")
	}
	return c.store.Set(&memcache.Item{
		Key:        currenciesKey,
		Value:      raw,
		Expiration: expiration(c.ttl),
	})
}

func expiration(ttl time.Duration) int32 {
	if ttl > maxRelativeExpiration {
		ttl = maxRelativeExpiration
	}
	return int32(ttl / time.Second)
}
