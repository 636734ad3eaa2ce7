package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Theme != "" || cfg.DataDir != "" || cfg.Logging != nil {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
theme: light
data_dir: /tmp/breza-test
logging:
  level: debug
  debug_mode: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetTheme() != "light" {
		t.Errorf("theme = %q", cfg.GetTheme())
	}
	if cfg.GetDataDir() != "/tmp/breza-test" {
		t.Errorf("data dir = %q", cfg.GetDataDir())
	}
	lc := cfg.GetLogging()
	if lc.Level != "debug" || !lc.DebugMode {
		t.Errorf("logging = %+v", lc)
	}
	if lc.File != filepath.Join("/tmp/breza-test", "breza.log") {
		t.Errorf("log file default = %q", lc.File)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestAccessorDefaults(t *testing.T) {
	cfg := &UserConfig{}

	if cfg.GetTheme() != "auto" {
		t.Errorf("default theme = %q", cfg.GetTheme())
	}
	if cfg.GetDataDir() != DefaultDir() {
		t.Errorf("default data dir = %q", cfg.GetDataDir())
	}

	lc := cfg.GetLogging()
	if lc.Level != "info" {
		t.Errorf("default level = %q", lc.Level)
	}
	if lc.File != filepath.Join(DefaultDir(), "breza.log") {
		t.Errorf("default log file = %q", lc.File)
	}
	if lc.DebugMode {
		t.Error("debug mode must default off")
	}
}

func TestGetLoggingFillsPartialSection(t *testing.T) {
	cfg := &UserConfig{
		DataDir: "/tmp/elsewhere",
		Logging: &LoggingConfig{DebugMode: true},
	}
	lc := cfg.GetLogging()
	if lc.Level != "info" {
		t.Errorf("level = %q", lc.Level)
	}
	if lc.File != filepath.Join("/tmp/elsewhere", "breza.log") {
		t.Errorf("file = %q", lc.File)
	}
	if !lc.DebugMode {
		t.Error("explicit debug mode lost")
	}
}

func TestBuildNopWhenDisabled(t *testing.T) {
	lg, err := LoggingConfig{}.Build(false, false)
	if err != nil {
		t.Fatal(err)
	}
	if lg == nil {
		t.Fatal("expected a logger")
	}
	// A no-op logger never errors on Sync.
	if err := lg.Sync(); err != nil {
		t.Errorf("Sync: %v", err)
	}
}

func TestBuildToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "breza.log")
	lg, err := LoggingConfig{DebugMode: true, Level: "debug", File: file}.Build(false, true)
	if err != nil {
		t.Fatal(err)
	}
	lg.Debug("hello")
	_ = lg.Sync()

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file empty")
	}
}
