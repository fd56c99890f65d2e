package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/psychoticbeef/mcdctree/treecheck"
)

// config is the shape of an optional .mcdctree.yaml sitting next to the
// analysis root. Flags passed on the command line override these values.
type config struct {
	MaxReorderVars int      `yaml:"max-reorder-vars"`
	Excludes       []string `yaml:"excludes"`
}

func defaultConfig() config {
	return config{MaxReorderVars: treecheck.DefaultMaxReorderVariables}
}

func loadConfig(root string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(filepath.Join(root, ".mcdctree.yaml"))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
