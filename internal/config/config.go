package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ConfigDir  string   `mapstructure:"config_dir"`
	MirrorDir  string   `mapstructure:"mirror_dir"`
	SyncScript string   `mapstructure:"sync_script"`
	Text       string   `mapstructure:"text"`
	IgnoreList []string `mapstructure:"ignore_list"`
	Port       int      `mapstructure:"port"`
}

// Defaults returns the built-in layout rooted at home.
func Defaults(home string) Config {
	return Config{
		ConfigDir:  filepath.Join(home, ".config"),
		MirrorDir:  filepath.Join(home, ".mydotfiles", "Backup"),
		SyncScript: filepath.Join(home, ".mydotfiles", "sync_dots.sh"),
		Text:       " | ",
		IgnoreList: []string{},
		Port:       9310,
	}
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home dir: %w", err)
	}

	return LoadFrom(home)
}

// LoadFrom reads $home/.config/confsync/config.yaml if present and applies
// CONFSYNC_* environment overrides on top of Defaults(home).
func LoadFrom(home string) (*Config, error) {
	def := Defaults(home)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(home, ".config", "confsync"))

	v.SetDefault("config_dir", def.ConfigDir)
	v.SetDefault("mirror_dir", def.MirrorDir)
	v.SetDefault("sync_script", def.SyncScript)
	v.SetDefault("text", def.Text)
	v.SetDefault("ignore_list", def.IgnoreList)
	v.SetDefault("port", def.Port)

	v.SetEnvPrefix("CONFSYNC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := errors.AsType[viper.ConfigFileNotFoundError](err); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigDir = expandHome(cfg.ConfigDir, home)
	cfg.MirrorDir = expandHome(cfg.MirrorDir, home)
	cfg.SyncScript = expandHome(cfg.SyncScript, home)

	return &cfg, nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
