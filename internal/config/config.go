// Package config declares the viper keys, defaults and validation used by
// the netgen command line.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/netgen/builder"
)

// Key names one configuration setting. The same name is used for the
// command-line flag (with '_' as '-'), the config file entry and, upper-cased
// with the NETGEN_ prefix, the environment variable.
type Key string

const (
	Seed       Key = "seed"
	Trials     Key = "trials"
	MaxRetries Key = "max_retries"
	Rewire     Key = "rewire"
	Trace      Key = "trace"
	Verbose    Key = "verbose"
)

// EnvPrefix prefixes every environment variable read by New.
const EnvPrefix = "NETGEN"

// ErrInvalidSetting is returned by Read for out-of-range values.
var ErrInvalidSetting = errors.New("config: invalid setting")

var defaults = map[Key]any{
	Seed:       uint64(1),
	Trials:     1,
	MaxRetries: builder.DefaultMaxRetries,
	Rewire:     builder.RewireDistinct.String(),
	Trace:      false,
	Verbose:    false,
}

// Flag returns the command-line flag name of k.
func (k Key) Flag() string { return strings.ReplaceAll(string(k), "_", "-") }

// New returns a viper instance with defaults set and environment binding
// enabled.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(string(k), d)
	}

	return v
}

// Load merges the config file at path into v. An empty path is a no-op.
func Load(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// Settings is the resolved, validated configuration of one run.
type Settings struct {
	Seed       uint64
	Trials     int
	MaxRetries int
	Rewire     builder.RewirePolicy
	Trace      bool
	Verbose    bool
}

// Read resolves and validates the settings held by v.
func Read(v *viper.Viper) (Settings, error) {
	s := Settings{
		Seed:       v.GetUint64(string(Seed)),
		Trials:     v.GetInt(string(Trials)),
		MaxRetries: v.GetInt(string(MaxRetries)),
		Trace:      v.GetBool(string(Trace)),
		Verbose:    v.GetBool(string(Verbose)),
	}
	if s.Trials < 1 {
		return Settings{}, fmt.Errorf("%w: %s=%d must be ≥ 1", ErrInvalidSetting, Trials, s.Trials)
	}
	if s.MaxRetries < 1 {
		return Settings{}, fmt.Errorf("%w: %s=%d must be ≥ 1", ErrInvalidSetting, MaxRetries, s.MaxRetries)
	}
	switch r := v.GetString(string(Rewire)); r {
	case builder.RewireDistinct.String():
		s.Rewire = builder.RewireDistinct
	case builder.RewireIndependent.String():
		s.Rewire = builder.RewireIndependent
	default:
		return Settings{}, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, Rewire, r)
	}

	return s, nil
}
