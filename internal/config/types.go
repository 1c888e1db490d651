// Package config defines realmctl's configuration: the set of known regions
// with their API endpoints, the request throttle interval, and credential
// resolution.
package config

import (
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "50ms" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// RegionConfig is one region's connection parameters.
type RegionConfig struct {
	APIURL    string `yaml:"apiURL"`
	Namespace string `yaml:"namespace"`
	Locale    string `yaml:"locale"`
}

// Config is the top-level realmctl configuration.
type Config struct {
	DefaultRegion   string                  `yaml:"defaultRegion,omitempty"`
	RequestInterval Duration                `yaml:"requestInterval,omitempty"`
	Regions         map[string]RegionConfig `yaml:"regions,omitempty"`
}

// DefaultConfig returns the built-in configuration used when no config file
// is present.
func DefaultConfig() Config {
	return Config{
		DefaultRegion:   "us",
		RequestInterval: Duration(50 * time.Millisecond),
		Regions: map[string]RegionConfig{
			"us": {APIURL: "https://us.api.blizzard.com", Namespace: "dynamic-us", Locale: "en_US"},
			"eu": {APIURL: "https://eu.api.blizzard.com", Namespace: "dynamic-eu", Locale: "en_GB"},
			"kr": {APIURL: "https://kr.api.blizzard.com", Namespace: "dynamic-kr", Locale: "ko_KR"},
			"tw": {APIURL: "https://tw.api.blizzard.com", Namespace: "dynamic-tw", Locale: "zh_TW"},
		},
	}
}

// RegionNames returns the configured region names sorted alphabetically,
// with the default region first. The order is the TUI tab order.
func (c Config) RegionNames() []string {
	names := make([]string, 0, len(c.Regions))
	for name := range c.Regions {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if name == c.DefaultRegion && i > 0 {
			copy(names[1:i+1], names[:i])
			names[0] = name
			break
		}
	}
	return names
}

// Validate checks that every region carries the fields the pipeline needs.
func (c Config) Validate() error {
	if len(c.Regions) == 0 {
		return fmt.Errorf("no regions configured")
	}
	for name, rc := range c.Regions {
		if rc.APIURL == "" {
			return fmt.Errorf("region %q: apiURL is required", name)
		}
		if rc.Namespace == "" {
			return fmt.Errorf("region %q: namespace is required", name)
		}
	}
	if c.DefaultRegion != "" {
		if _, ok := c.Regions[c.DefaultRegion]; !ok {
			return fmt.Errorf("defaultRegion %q is not a configured region", c.DefaultRegion)
		}
	}
	return nil
}
