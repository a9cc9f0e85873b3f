package config

const defaultJobName = "splitwise-slack"

type MetricsConfig struct {
	PushgatewayURL string `yaml:"pushgateway"`
	JobName        string `yaml:"job"`
}

func (m *MetricsConfig) Pushgateway() string {
	return m.PushgatewayURL
}

func (m *MetricsConfig) Job() string {
	return m.JobName
}
