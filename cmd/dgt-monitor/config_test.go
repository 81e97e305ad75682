package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := loadConfig(path)
		if err != nil {
			t.Fatalf("loadConfig(%q): %v", path, err)
		}

		if cfg.Serial.BaudRate != 9600 {
			t.Errorf("default baud rate = %d, want 9600", cfg.Serial.BaudRate)
		}
		if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
			t.Errorf("default log config = %+v", cfg.Log)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitor.yaml")
	content := `
serial:
  device: /dev/ttyUSB1
  baud_rate: 19200
  read_timeout_ms: 250
log:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Serial.Device != "/dev/ttyUSB1" || cfg.Serial.BaudRate != 19200 {
		t.Errorf("serial config = %+v", cfg.Serial)
	}

	port := cfg.portConfig()
	if port.ReadTimeout != 250*time.Millisecond {
		t.Errorf("read timeout = %v, want 250ms", port.ReadTimeout)
	}

	if _, err := cfg.Log.buildLogger(); err != nil {
		t.Errorf("buildLogger: %v", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("serial: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig on broken yaml succeeded, want error")
	}
}

func TestBuildLoggerValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{"console", LogConfig{Level: "info", Format: "console"}, false},
		{"json", LogConfig{Level: "warn", Format: "json"}, false},
		{"empty format defaults to console", LogConfig{Level: "error"}, false},
		{"bad level", LogConfig{Level: "verbose", Format: "console"}, true},
		{"bad format", LogConfig{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.buildLogger()
			if (err != nil) != tt.wantErr {
				t.Errorf("buildLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
