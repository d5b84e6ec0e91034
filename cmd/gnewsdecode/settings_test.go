package main

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes into dir for the duration of the test; equivalent to
// t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadSettingsDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	settings, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if settings.TimeoutSeconds != defaultTimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want %d", settings.TimeoutSeconds, defaultTimeoutSeconds)
	}
	if settings.OutputDirectory != defaultOutputDir {
		t.Errorf("OutputDirectory = %q, want %q", settings.OutputDirectory, defaultOutputDir)
	}
	if settings.Proxy != "" {
		t.Errorf("Proxy should default to empty, got %q", settings.Proxy)
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	chdir(t, t.TempDir())

	if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `proxy: socks5://localhost:1080
timeout_seconds: 10
interval_ms: 500
output_directory: out
`
	if err := os.WriteFile(filepath.Join(defaultConfigDir, "settings.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if settings.Proxy != "socks5://localhost:1080" {
		t.Errorf("Proxy = %q", settings.Proxy)
	}
	if settings.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want 10", settings.TimeoutSeconds)
	}
	if settings.IntervalMS != 500 {
		t.Errorf("IntervalMS = %d, want 500", settings.IntervalMS)
	}
	if settings.OutputDirectory != "out" {
		t.Errorf("OutputDirectory = %q, want %q", settings.OutputDirectory, "out")
	}
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	chdir(t, t.TempDir())

	if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(defaultConfigDir, "settings.yaml"), []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadSettings(); err == nil {
		t.Error("loadSettings() should fail on broken YAML")
	}
}
