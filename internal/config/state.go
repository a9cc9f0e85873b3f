package config

const (
	FileBackend     = "file"
	PostgresBackend = "postgres"

	defaultStateKey = "default"
)

type StateConfig struct {
	StateBackend string `yaml:"backend"`
	FilePath     string `yaml:"path"`
	Key          string `yaml:"key"`
}

func (s *StateConfig) Backend() string {
	return s.StateBackend
}

func (s *StateConfig) Path() string {
	return s.FilePath
}

// StateKey identifies the snapshot row when state lives in postgres.
func (s *StateConfig) StateKey() string {
	return s.Key
}
