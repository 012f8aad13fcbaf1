package timer

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	// TimerKey is the Viper subkey under which timer configuration should be
	// stored.  FromViper *does not* assume this key.
	TimerKey = "timer"
)

// Sub returns the standard child Viper, using TimerKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(TimerKey)
	}

	return nil
}

// Config stores the construction parameters for a timer.
type Config struct {
	// MaxDuration is the upper bound for the timer's value and for durations
	// accepted when arming.  It accepts anything castable to an int, so
	// configuration sources that emit strings still work.  If unset,
	// DefaultMaxDuration is used.
	MaxDuration interface{} `json:"maxDuration"`
}

// FromViper produces a Config from a (possibly nil) Viper instance.
// Callers should use FromViper(Sub(v)) if the standard subkey is desired.
func FromViper(v *viper.Viper) (*Config, error) {
	c := new(Config)
	if v != nil {
		if err := v.Unmarshal(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Config) maxDuration() (int, error) {
	if c == nil || c.MaxDuration == nil {
		return DefaultMaxDuration, nil
	}

	maxDuration, err := cast.ToIntE(c.MaxDuration)
	if err != nil {
		return 0, err
	}

	if maxDuration < 1 {
		return 0, fmt.Errorf("The maximum duration must be positive: %d", maxDuration)
	}

	return maxDuration, nil
}

// Options translates this Config into constructor options for New or
// NewCountdown.
func (c *Config) Options() ([]Option, error) {
	maxDuration, err := c.maxDuration()
	if err != nil {
		return nil, err
	}

	return []Option{WithMaxDuration(maxDuration)}, nil
}

// New constructs a moded Timer from this configuration.
func (c *Config) New() (*Timer, error) {
	options, err := c.Options()
	if err != nil {
		return nil, err
	}

	return New(options...), nil
}

// NewCountdown constructs a single-mode CountdownTimer from this configuration.
func (c *Config) NewCountdown() (*CountdownTimer, error) {
	options, err := c.Options()
	if err != nil {
		return nil, err
	}

	return NewCountdown(options...), nil
}
