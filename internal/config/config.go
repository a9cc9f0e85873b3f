package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "data/config.yaml"

const (
	sessionEnvKey = "SPLITWISE_SESSION"
	webhookEnvKey = "SLACK_WEBHOOK_URL"
)

type config struct {
	Splitwise SplitwiseConfig `yaml:"splitwise"`
	Slack     SlackConfig     `yaml:"slack"`
	State     StateConfig     `yaml:"state"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type Service struct {
	config config
}

// New reads the yaml file at path. Secrets found in the environment (or in a
// .env file next to the binary) take precedence over the file.
func New(path string) (*Service, error) {
	// .env is optional
	_ = godotenv.Load()

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	s.applyEnv()
	s.applyDefaults()

	if err = s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) applyEnv() {
	if v := os.Getenv(sessionEnvKey); v != "" {
		s.config.Splitwise.SessionToken = v
	}
	if v := os.Getenv(webhookEnvKey); v != "" {
		s.config.Slack.Webhook = v
	}
}

func (s *Service) applyDefaults() {
	if s.config.Splitwise.BaseURL == "" {
		s.config.Splitwise.BaseURL = defaultSplitwiseURL
	}
	if s.config.Splitwise.RequestTimeout <= 0 {
		s.config.Splitwise.RequestTimeout = defaultTimeout
	}
	if s.config.Slack.RequestTimeout <= 0 {
		s.config.Slack.RequestTimeout = defaultTimeout
	}
	if s.config.State.StateBackend == "" {
		s.config.State.StateBackend = FileBackend
	}
	if s.config.State.Key == "" {
		s.config.State.Key = defaultStateKey
	}
	if s.config.Memcached.CacheTTL <= 0 {
		s.config.Memcached.CacheTTL = defaultCacheTTL
	}
	if s.config.Metrics.JobName == "" {
		s.config.Metrics.JobName = defaultJobName
	}
	if s.config.Jaeger.Service == "" {
		s.config.Jaeger.Service = defaultJobName
	}
}

func (s *Service) validate() error {
	var problems []string

	if s.config.Splitwise.SessionToken == "" {
		problems = append(problems, fmt.Sprintf("splitwise session token is required (yaml splitwise.session or %s)", sessionEnvKey))
	}
	if err := checkURL(s.config.Splitwise.BaseURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid splitwise url: %v", err))
	}
	if s.config.Slack.Webhook == "" {
		problems = append(problems, fmt.Sprintf("slack webhook url is required (yaml slack.webhook-url or %s)", webhookEnvKey))
	} else if err := checkURL(s.config.Slack.Webhook); err != nil {
		problems = append(problems, fmt.Sprintf("invalid slack webhook url: %v", err))
	}
	if s.config.Slack.ChannelName == "" {
		problems = append(problems, "slack channel is required")
	}

	if s.config.Memcached.CacheTTL > maxCacheTTL {
		problems = append(problems, fmt.Sprintf("memcached currencies-ttl %v exceeds %v", s.config.Memcached.CacheTTL, maxCacheTTL))
	}

	switch s.config.State.StateBackend {
	case FileBackend:
		if s.config.State.FilePath == "" {
			problems = append(problems, "state file path is required for the file backend")
		}
	case PostgresBackend:
		if s.config.Postgres.Hostname == "" || s.config.Postgres.Db == "" {
			problems = append(problems, "postgres host and db are required for the postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown state backend %q: must be %s or %s",
			s.config.State.StateBackend, FileBackend, PostgresBackend))
	}

	if len(problems) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(problems, "\n- "))
	}
	return nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme %q is not http(s)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

func (s *Service) Splitwise() *SplitwiseConfig {
	return &s.config.Splitwise
}

func (s *Service) Slack() *SlackConfig {
	return &s.config.Slack
}

func (s *Service) State() *StateConfig {
	return &s.config.State
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}
