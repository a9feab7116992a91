package config

import (
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vbind/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vbind.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 7070

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultTick is the default interval between demo updates.
	DefaultTick = time.Second

	// DefaultMetricsPath is where Prometheus metrics are served.
	DefaultMetricsPath = "/metrics"

	// DefaultExportDir is where file snapshots are written.
	DefaultExportDir = "snapshots"
)

// Config represents the complete vbind.yaml configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
	Log     LogConfig     `yaml:"log"`
	Export  ExportConfig  `yaml:"export"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `yaml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `yaml:"port,omitempty"`

	// Tick is the interval between demo updates (e.g. "500ms").
	Tick time.Duration `yaml:"tick,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Path      string `yaml:"path,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`

	// Name is the tracer name.
	Name string `yaml:"name,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
}

// ExportConfig contains snapshot export settings.
type ExportConfig struct {
	// Dir is the directory for file snapshots.
	Dir string   `yaml:"dir,omitempty"`
	S3  S3Config `yaml:"s3,omitempty"`
}

// S3Config contains S3 snapshot store settings.
type S3Config struct {
	Bucket string `yaml:"bucket,omitempty"`
	Region string `yaml:"region,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string `yaml:"endpoint,omitempty"`
}

// New returns a configuration with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
			Tick: DefaultTick,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Path:      DefaultMetricsPath,
			Namespace: "vbind",
		},
		Tracing: TracingConfig{
			Name: "vbind-preview",
		},
		Log: LogConfig{
			Level: "info",
		},
		Export: ExportConfig{
			Dir: DefaultExportDir,
		},
	}
}

// Load reads vbind.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E120").
			WithDetail("Could not read " + path).
			Wrap(err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid YAML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration as YAML.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// Addr returns host:port for the preview server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// SlogLevel maps Log.Level to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// applyDefaults fills zero values that the file left empty.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Tick == 0 {
		c.Server.Tick = DefaultTick
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "vbind"
	}
	if c.Tracing.Name == "" {
		c.Tracing.Name = "vbind-preview"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Export.Dir == "" {
		c.Export.Dir = DefaultExportDir
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("E121").
			WithValuef("server.port: %d", c.Server.Port).
			WithSuggestion("Use a port between 1 and 65535")
	}
	if c.Server.Tick < 10*time.Millisecond {
		return errors.New("E121").
			WithValuef("server.tick: %s", c.Server.Tick).
			WithSuggestion("Use a tick of at least 10ms")
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E121").
			WithValuef("metrics.path: %q", c.Metrics.Path).
			WithSuggestion("The metrics path must start with /")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("E121").
			WithValuef("log.level: %q", c.Log.Level).
			WithSuggestion("Use debug, info, warn or error")
	}
	if s := c.Export.S3; (s.Bucket == "") != (s.Region == "") {
		return errors.New("E121").
			WithValue("export.s3").
			WithSuggestion("Set both bucket and region, or neither")
	}
	return nil
}
