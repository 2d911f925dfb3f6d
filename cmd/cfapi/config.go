package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/odvcencio/cfapi/pkg/api"
	"github.com/spf13/cobra"
)

const (
	envConfigPath = "CFAPI_CONFIG"
	envAPIKey     = "CURSEFORGE_API_KEY"
)

// fileConfig is the on-disk TOML config.
type fileConfig struct {
	APIKey             string `toml:"api_key"`
	BaseURL            string `toml:"base_url"`
	GameID             int    `toml:"game_id"`
	LegacyFingerprints bool   `toml:"legacy_fingerprints"`
	Timeout            string `toml:"timeout"`
	UserAgent          string `toml:"user_agent"`
}

// configFilePath picks the config file to read. explicit is true when the
// user named the file, in which case it must exist.
func configFilePath(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if p := os.Getenv(envConfigPath); p != "" {
		return p, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "cfapi", "config.toml"), false
}

// loadConfigFile reads path into an api.Config. A missing implicit config
// yields the zero Config.
func loadConfigFile(path string, explicit bool) (api.Config, error) {
	var cfg api.Config
	if path == "" {
		return cfg, nil
	}

	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("read config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.APIKey = strings.TrimSpace(fc.APIKey)
	cfg.BaseURL = fc.BaseURL
	cfg.GameID = fc.GameID
	cfg.LegacyFingerprints = fc.LegacyFingerprints
	cfg.UserAgent = fc.UserAgent
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil || d < 0 {
			return cfg, fmt.Errorf("read config %s: invalid timeout %q", path, fc.Timeout)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// resolveConfig layers defaults, the config file, the environment and
// flags, in increasing precedence.
func (o *globalOptions) resolveConfig() (api.Config, error) {
	cfg, err := loadConfigFile(configFilePath(o.configPath))
	if err != nil {
		return api.Config{}, err
	}
	if key := strings.TrimSpace(os.Getenv(envAPIKey)); key != "" {
		cfg.APIKey = key
	}
	if o.apiKey != "" {
		cfg.APIKey = o.apiKey
	}
	return cfg, nil
}

// newClient builds an API client whose HTTP traffic is logged to the
// command's stderr.
func (o *globalOptions) newClient(cmd *cobra.Command) (*api.Client, error) {
	cfg, err := o.resolveConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), o.verbose)
	cfg.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: newLoggingTransport(http.DefaultTransport, logger),
	}
	if cfg.APIKey == "" {
		logger.Warn("no API key configured; set " + envAPIKey + " or api_key in the config file")
	}
	return api.NewClient(cfg)
}
