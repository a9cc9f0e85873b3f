package config

import "time"

type SlackConfig struct {
	Webhook        string        `yaml:"webhook-url"`
	ChannelName    string        `yaml:"channel"`
	RequestTimeout time.Duration `yaml:"timeout"`
}

func (s *SlackConfig) WebhookURL() string {
	return s.Webhook
}

func (s *SlackConfig) Channel() string {
	return s.ChannelName
}

func (s *SlackConfig) Timeout() time.Duration {
	return s.RequestTimeout
}
