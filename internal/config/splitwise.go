package config

import "time"

const (
	defaultSplitwiseURL = "https://secure.splitwise.com/api/v3.0/"
	defaultTimeout      = 10 * time.Second
)

type SplitwiseConfig struct {
	SessionToken   string        `yaml:"session"`
	BaseURL        string        `yaml:"url"`
	RequestTimeout time.Duration `yaml:"timeout"`
}

func (s *SplitwiseConfig) Session() string {
	return s.SessionToken
}

func (s *SplitwiseConfig) URL() string {
	return s.BaseURL
}

func (s *SplitwiseConfig) Timeout() time.Duration {
	return s.RequestTimeout
}
