package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/realmctl"
	configFileName = "config.yaml"

	// TokenEnvVar names the environment variable holding the bearer token.
	TokenEnvVar = "BNET_TOKEN"
)

// Load reads the configuration from the given path, or from the user config
// file when path is empty. A missing file yields the defaults; a present but
// unreadable or invalid file is an error. File settings overlay the
// defaults, so a config file only needs the fields it changes.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = UserConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg = merge(cfg, overlay)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// UserConfigPath returns the per-user config file path.
func UserConfigPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// merge overlays file settings onto the defaults. Regions replace by name;
// unmentioned defaults survive.
func merge(base, overlay Config) Config {
	merged := base
	if overlay.DefaultRegion != "" {
		merged.DefaultRegion = overlay.DefaultRegion
	}
	if overlay.RequestInterval != 0 {
		merged.RequestInterval = overlay.RequestInterval
	}
	if len(overlay.Regions) > 0 {
		regions := make(map[string]RegionConfig, len(base.Regions)+len(overlay.Regions))
		for name, rc := range base.Regions {
			regions[name] = rc
		}
		for name, rc := range overlay.Regions {
			regions[name] = rc
		}
		merged.Regions = regions
	}
	return merged
}

// ResolveToken resolves the API credential: an explicit value (flag) wins,
// then the environment, then a .env file in the working directory. The
// credential is never read from the config file. An empty result means no
// credential; the pipeline surfaces that before any network call.
func ResolveToken(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token
	}
	// Best effort; a missing .env is the common case.
	_ = godotenv.Load()
	return os.Getenv(TokenEnvVar)
}
