package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/dgtkit/go-dgt/serialport"
)

// Config is the monitor configuration, loaded from a yaml file.
type Config struct {
	Serial SerialConfig `yaml:"serial"`
	Log    LogConfig    `yaml:"log"`
}

// SerialConfig names the serial device and line settings.
type SerialConfig struct {
	Device        string `yaml:"device"`
	BaudRate      int    `yaml:"baud_rate"`
	ReadTimeoutMS int    `yaml:"read_timeout_ms"`
}

// LogConfig controls the monitor's logging output.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`

	// Format is console or json
	Format string `yaml:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Serial: SerialConfig{
			BaudRate:      serialport.DefaultBaudRate,
			ReadTimeoutMS: int(serialport.DefaultReadTimeout / time.Millisecond),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// loadConfig reads the yaml config at path, falling back to defaults when
// path is empty or the file does not exist.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// portConfig converts the yaml settings into a serialport.Config.
func (c *Config) portConfig() serialport.Config {
	return serialport.Config{
		Device:      c.Serial.Device,
		BaudRate:    c.Serial.BaudRate,
		ReadTimeout: time.Duration(c.Serial.ReadTimeoutMS) * time.Millisecond,
	}
}

// buildLogger creates a zap logger per the log settings.
func (c *LogConfig) buildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", c.Level, err)
	}

	var enc zapcore.Encoder
	switch c.Format {
	case "", "console":
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), level)
	return zap.New(core), nil
}
