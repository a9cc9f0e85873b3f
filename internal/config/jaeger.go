package config

type JaegerConfig struct {
	AgentHostPort string `yaml:"agent"`
	Service       string `yaml:"service"`
}

func (j *JaegerConfig) Agent() string {
	return j.AgentHostPort
}

func (j *JaegerConfig) ServiceName() string {
	return j.Service
}
