package registry

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
)

type Configuration struct {
	Admin    string `toml:"admin"`
	StoreDir string `toml:"store-dir"`
	LogLevel string `toml:"log-level"`
}

func Setup(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("configuration load failed (%s): %w", path, err)
	}
	var conf Configuration
	if err := toml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("configuration parse failed (%s): %w", path, err)
	}
	if conf.LogLevel == "" {
		conf.LogLevel = "info"
	}
	if _, err := uuid.Parse(conf.Admin); err != nil {
		return nil, fmt.Errorf("invalid admin identity %q: %w", conf.Admin, err)
	}
	return &conf, nil
}
