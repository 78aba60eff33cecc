// Package config is for app wide settings that are unmarshalled
// from Viper, seeded from an embedded settings.yaml.
package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/spf13/viper"
)

//go:embed settings.yaml
var defaultSettings []byte

// AlignConfig holds the scoring and heuristic knobs of the alignment engine.
type AlignConfig struct {
	// score for a compatible residue pair
	Match int `mapstructure:"match"`

	// score for an incompatible residue pair
	Mismatch int `mapstructure:"mismatch"`

	// linear gap penalty used by the accurate algorithm
	Gap int `mapstructure:"gap"`

	// seed length for the fast algorithm's exact anchor
	AnchorLength int `mapstructure:"anchor-length"`
}

// Config is the root-level settings struct: the embedded defaults merged
// with an optional user settings file.
type Config struct {
	// alignment engine settings
	Align AlignConfig `mapstructure:"align"`

	// percent identity below which a result is flagged on stderr
	MinIdentity int `mapstructure:"min-identity"`

	// default worker count for batches (0 = all CPUs)
	Threads int `mapstructure:"threads"`
}

// New returns a Config populated from the embedded defaults, optionally
// merged with the user settings file at path.
func New(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultSettings)); err != nil {
		return Config{}, fmt.Errorf("read embedded settings: %w", err)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("merge settings %s: %w", path, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode settings: %w", err)
	}
	return c, nil
}
