package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadHostConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	data := "marker: compose.yaml\nservice_url: https://staging.example.com\nplan_file: release.yaml\nlog_level: debug\n"
	if err := os.WriteFile(cfgPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DEPLOYKIT_CONFIG", cfgPath)
	t.Setenv("DEPLOYKIT_LOG_LEVEL", "")
	cfg, base, err := ReadHostConfig()
	if err != nil {
		t.Fatalf("ReadHostConfig error: %v", err)
	}
	if base != dir {
		t.Fatalf("expected base %q, got %q", dir, base)
	}
	if cfg.Marker != "compose.yaml" {
		t.Fatalf("marker=%q", cfg.Marker)
	}
	if cfg.ServiceURL != "https://staging.example.com" {
		t.Fatalf("service url=%q", cfg.ServiceURL)
	}
	if cfg.WorkdirHint != DefaultWorkdirHint {
		t.Fatalf("workdir hint not defaulted: %q", cfg.WorkdirHint)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level=%q", cfg.LogLevel)
	}
	if got := cfg.ResolvePlan(base); got != filepath.Join(dir, "release.yaml") {
		t.Fatalf("plan path=%q", got)
	}
}

func TestReadHostConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DEPLOYKIT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("DEPLOYKIT_LOG_LEVEL", "")
	cfg, _, err := ReadHostConfig()
	if err != nil {
		t.Fatalf("ReadHostConfig error: %v", err)
	}
	want := HostConfig{
		Marker:      DefaultMarker,
		WorkdirHint: DefaultWorkdirHint,
		ServiceURL:  DefaultServiceURL,
		LogLevel:    DefaultLogLevel,
	}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
	if cfg.ResolvePlan("/etc") != "" {
		t.Fatalf("unset plan file should resolve to empty path")
	}
}

func TestReadHostConfigInvalidYAML(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("marker: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DEPLOYKIT_CONFIG", cfgPath)
	if _, _, err := ReadHostConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLogLevelEnvOverride(t *testing.T) {
	t.Setenv("DEPLOYKIT_LOG_LEVEL", "warn")
	if got := (HostConfig{LogLevel: "debug"}).WithDefaults().LogLevel; got != "warn" {
		t.Fatalf("log level=%q", got)
	}
}

func TestResolvePlanAbsolute(t *testing.T) {
	cfg := HostConfig{PlanFile: "/srv/plan.yaml"}
	if got := cfg.ResolvePlan("/etc/deploykit"); got != "/srv/plan.yaml" {
		t.Fatalf("plan path=%q", got)
	}
}
