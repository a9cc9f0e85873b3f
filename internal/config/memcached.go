package config

import "time"

const (
	defaultCacheTTL = 24 * time.Hour
	// memcached treats longer expirations as absolute timestamps
	maxCacheTTL = 30 * 24 * time.Hour
)

type MemcachedConfig struct {
	NodeHosts []string      `yaml:"hosts"`
	CacheTTL  time.Duration `yaml:"currencies-ttl"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

func (s *MemcachedConfig) Enabled() bool {
	return len(s.NodeHosts) > 0
}

func (s *MemcachedConfig) TTL() time.Duration {
	return s.CacheTTL
}
