package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jsphweid/keywheel/constants"
	"github.com/spf13/viper"
)

const EnvPrefix = "KEYWHEEL"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("wheel.segment_count", constants.DefaultSegmentCount)
	v.SetDefault("wheel.radii", []float64{60, 120, 180})
	v.SetDefault("export.dir", "./out")
	v.SetDefault("export.tempo", constants.DefaultTempo)
	v.SetDefault("export.velocity", constants.DefaultVelocity)
	v.SetDefault("midi.in_port", 0)
	v.SetDefault("midi.debounce_ms", 80)
}

// Load reads configuration. Environment variables win over the config
// file, e.g. KEYWHEEL_SERVER_PORT=9000. A missing config file is fine.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file path. An empty path
// searches ./keywheel.yaml and $HOME/.keywheel/keywheel.yaml.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("keywheel")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.keywheel")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags, and that wheel radii are
// ascending.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !sort.Float64sAreSorted(cfg.Wheel.Radii) {
		return fmt.Errorf("invalid configuration: wheel.radii must be ascending, got %v", cfg.Wheel.Radii)
	}
	return nil
}
