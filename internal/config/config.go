package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the resolved runtime configuration.
type Config struct {
	DataDir          string
	DBPath           string
	RecentWindowDays int

	HTTP   HTTPConfig
	Logger LoggerConfig
	TUI    TUIConfig
}

type HTTPConfig struct {
	Addr string
	Mode string
}

type LoggerConfig struct {
	Level    string
	Encoding string
	// File receives log output while the terminal UI owns the screen.
	File string
}

type TUIConfig struct {
	Theme string
}

// Load reads lighttrack.yml from configDir (if present), then environment
// variables prefixed with LIGHTTRACK_. dataDir is used when neither source
// names a data directory.
func Load(configDir, dataDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("LIGHTTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, dataDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.DataDir = v.GetString("data_dir")
	cfg.DBPath = v.GetString("db_path")
	// Databases created by the timetrap-schema build are still honoured.
	if cfg.DBPath == "" {
		cfg.DBPath = strings.TrimSpace(os.Getenv("TIMETRAP_DB_PATH"))
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, DBFileName)
	}
	if !filepath.IsAbs(cfg.DBPath) {
		abs, err := filepath.Abs(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("resolve db path: %w", err)
		}
		cfg.DBPath = abs
	}

	cfg.RecentWindowDays = v.GetInt("recent_window_days")
	if cfg.RecentWindowDays <= 0 {
		cfg.RecentWindowDays = DefaultRecentWindow
	}

	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.HTTP.Mode = v.GetString("http.mode")
	cfg.Logger.Level = v.GetString("log.level")
	cfg.Logger.Encoding = v.GetString("log.encoding")
	cfg.Logger.File = v.GetString("log.file")
	if cfg.Logger.File == "" {
		cfg.Logger.File = filepath.Join(filepath.Dir(cfg.DBPath), AppName+".log")
	}
	cfg.TUI.Theme = v.GetString("tui.theme")

	return cfg, nil
}

func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("db_path", "")
	v.SetDefault("recent_window_days", DefaultRecentWindow)
	v.SetDefault("http.addr", DefaultHTTPAddr)
	v.SetDefault("http.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("tui.theme", "default")
}
