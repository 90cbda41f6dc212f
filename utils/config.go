package utils

import (
	"io"

	"gopkg.in/yaml.v2"
)

// PipeConfig is the optional YAML configuration of the collector pipeline.
// Flags keep working without it; a config file overrides their defaults.
type PipeConfig struct {
	Listen    string `yaml:"listen"`
	Workers   int    `yaml:"workers"`
	Format    string `yaml:"format"`
	Transport string `yaml:"transport"`
	QueueSize int    `yaml:"queue-size"`
	Blocking  bool   `yaml:"blocking"`
}

// LoadConfig reads a PipeConfig from YAML.
func LoadConfig(f io.Reader) (*PipeConfig, error) {
	config := &PipeConfig{}
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}
