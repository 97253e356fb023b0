package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"noteremote/internal/resolve"
)

// Config is the application configuration, loaded from
// ~/.config/noteremote/config.toml with NOTEREMOTE_* environment overrides.
type Config struct {
	Target  TargetConfig  `mapstructure:"target"`
	Match   MatchConfig   `mapstructure:"match"`
	Scroll  ScrollConfig  `mapstructure:"scroll"`
	Logging LoggingConfig `mapstructure:"logging"`
	Paths   PathsConfig   `mapstructure:"paths"`
}

// TargetConfig identifies the controlled application's windows.
type TargetConfig struct {
	Keywords             []string `mapstructure:"keywords"`
	Executables          []string `mapstructure:"executables"`
	ModernClass          string   `mapstructure:"modern_class"`
	LegacyClassSubstring string   `mapstructure:"legacy_class_substring"`
}

// MatchConfig tunes the signature-matching heuristics. The weights are not
// derived from a principled model; they were tuned against one application's
// window taxonomy and other targets may need different values.
type MatchConfig struct {
	MinScore         int `mapstructure:"min_score"`
	Handle           int `mapstructure:"handle"`
	Executable       int `mapstructure:"executable"`
	TargetExecutable int `mapstructure:"target_executable"`
	TitleKeyword     int `mapstructure:"title_keyword"`
	Class            int `mapstructure:"class"`
	ProcessID        int `mapstructure:"process_id"`
	TitleSubstring   int `mapstructure:"title_substring"`
	SharedKeyword    int `mapstructure:"shared_keyword"`
	ModernClass      int `mapstructure:"modern_class"`
}

// ScrollConfig tunes the centering loop.
type ScrollConfig struct {
	SettleTimeoutMS int `mapstructure:"settle_timeout_ms"`
	PollIntervalMS  int `mapstructure:"poll_interval_ms"`
	CenterTolerance int `mapstructure:"center_tolerance"`
	MaxRepeats      int `mapstructure:"max_repeats"`
	MaxIterations   int `mapstructure:"max_iterations"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// PathsConfig contains file locations.
type PathsConfig struct {
	DataDir       string `mapstructure:"data_dir"`
	LogFile       string `mapstructure:"log_file"`
	SignatureFile string `mapstructure:"signature_file"`
}

// Load loads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "noteremote"))
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("NOTEREMOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No config file: defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Paths.DataDir = expandPath(cfg.Paths.DataDir)
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)
	cfg.Paths.SignatureFile = expandPath(cfg.Paths.SignatureFile)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}
	dataDir := filepath.Join(homeDir, ".local", "share", "noteremote")

	v.SetDefault("target.keywords", []string{"onenote", "원노트"})
	v.SetDefault("target.executables", []string{"onenote.exe", "onenoteim.exe"})
	v.SetDefault("target.modern_class", "ApplicationFrameWindow")
	v.SetDefault("target.legacy_class_substring", "omain")

	defaults := resolve.DefaultWeights()
	v.SetDefault("match.min_score", resolve.DefaultMinScore)
	v.SetDefault("match.handle", defaults.Handle)
	v.SetDefault("match.executable", defaults.Executable)
	v.SetDefault("match.target_executable", defaults.TargetExecutable)
	v.SetDefault("match.title_keyword", defaults.TitleKeyword)
	v.SetDefault("match.class", defaults.Class)
	v.SetDefault("match.process_id", defaults.ProcessID)
	v.SetDefault("match.title_substring", defaults.TitleSubstring)
	v.SetDefault("match.shared_keyword", defaults.SharedKeyword)
	v.SetDefault("match.modern_class", defaults.ModernClass)

	v.SetDefault("scroll.settle_timeout_ms", 300)
	v.SetDefault("scroll.poll_interval_ms", 30)
	v.SetDefault("scroll.center_tolerance", 10)
	v.SetDefault("scroll.max_repeats", 5)
	v.SetDefault("scroll.max_iterations", 3)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.color", "auto")

	v.SetDefault("paths.data_dir", dataDir)
	v.SetDefault("paths.log_file", filepath.Join(dataDir, "noteremote.log"))
	v.SetDefault("paths.signature_file", filepath.Join(dataDir, "signature.json"))
}

// ResolveTarget converts the target section into the resolver's Target.
func (c *Config) ResolveTarget() resolve.Target {
	return resolve.Target{
		Keywords:             c.Target.Keywords,
		ExecutableNames:      c.Target.Executables,
		ModernClass:          c.Target.ModernClass,
		LegacyClassSubstring: c.Target.LegacyClassSubstring,
	}
}

// ResolveWeights converts the match section into scorer weights.
func (c *Config) ResolveWeights() resolve.Weights {
	return resolve.Weights{
		Handle:           c.Match.Handle,
		Executable:       c.Match.Executable,
		TargetExecutable: c.Match.TargetExecutable,
		TitleKeyword:     c.Match.TitleKeyword,
		Class:            c.Match.Class,
		ProcessID:        c.Match.ProcessID,
		TitleSubstring:   c.Match.TitleSubstring,
		SharedKeyword:    c.Match.SharedKeyword,
		ModernClass:      c.Match.ModernClass,
	}
}

// SettleTimeout returns the configured settle timeout as a duration.
func (c *Config) SettleTimeout() time.Duration {
	return time.Duration(c.Scroll.SettleTimeoutMS) * time.Millisecond
}

// PollInterval returns the configured poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Scroll.PollIntervalMS) * time.Millisecond
}

// expandPath expands ~ and environment variables in paths.
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}
	return os.ExpandEnv(path)
}
