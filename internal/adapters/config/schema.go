package config

// SupportedVersion is the only config file version understood by the loader.
const SupportedVersion = "1"

// Configfile represents the structure of the xcbatch.yaml configuration file.
type Configfile struct {
	Version       string            `yaml:"version"`
	Mode          string            `yaml:"mode"`
	LogDir        string            `yaml:"logDir"`
	Tool          string            `yaml:"tool"`
	SuccessMarker string            `yaml:"successMarker"`
	Formatter     []string          `yaml:"formatter"`
	EnvFile       string            `yaml:"envFile"`
	Environment   map[string]string `yaml:"environment"`
}
