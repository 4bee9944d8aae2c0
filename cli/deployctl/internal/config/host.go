package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMarker      = "docker-compose.yml"
	DefaultWorkdirHint = "/opt/entersys-admin"
	DefaultServiceURL  = "https://admin.entersys.mx"
	DefaultLogLevel    = "info"
)

type HostConfig struct {
	// Marker is the file that must exist in the working directory.
	Marker      string `yaml:"marker"`
	WorkdirHint string `yaml:"workdir_hint"`
	ServiceURL  string `yaml:"service_url"`
	// PlanFile replaces the built-in step sequence. Relative paths resolve
	// against the config file's directory.
	PlanFile string `yaml:"plan_file"`
	LogLevel string `yaml:"log_level"`
}

// WithDefaults fills every empty field with the built-in value.
func (c HostConfig) WithDefaults() HostConfig {
	if strings.TrimSpace(c.Marker) == "" {
		c.Marker = DefaultMarker
	}
	if strings.TrimSpace(c.WorkdirHint) == "" {
		c.WorkdirHint = DefaultWorkdirHint
	}
	if strings.TrimSpace(c.ServiceURL) == "" {
		c.ServiceURL = DefaultServiceURL
	}
	if v := strings.TrimSpace(os.Getenv("DEPLOYKIT_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
	return c
}

// ResolvePlan returns PlanFile as an absolute path or "" when unset.
func (c HostConfig) ResolvePlan(base string) string {
	p := strings.TrimSpace(c.PlanFile)
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) || base == "" {
		return p
	}
	return filepath.Join(base, p)
}

// ReadHostConfig loads DEPLOYKIT_CONFIG, falling back to
// <UserConfigDir>/deploykit/config.yaml. A missing file yields defaults.
func ReadHostConfig() (HostConfig, string, error) {
	var cfg HostConfig
	path := strings.TrimSpace(os.Getenv("DEPLOYKIT_CONFIG"))
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "deploykit", "config.yaml")
		} else if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "deploykit", "config.yaml")
		}
	}
	if strings.TrimSpace(path) == "" {
		return cfg.WithDefaults(), "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg.WithDefaults(), filepath.Dir(path), nil
		}
		return cfg.WithDefaults(), filepath.Dir(path), errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg.WithDefaults(), filepath.Dir(path), errors.Wrapf(err, "parse config %s", path)
	}
	return cfg.WithDefaults(), filepath.Dir(path), nil
}
