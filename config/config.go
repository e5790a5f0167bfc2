// Package config loads keywheel settings from defaults, an optional
// keywheel.yaml and KEYWHEEL_* environment variables.
package config

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Wheel  WheelConfig  `mapstructure:"wheel" validate:"required"`
	Export ExportConfig `mapstructure:"export" validate:"required"`
	Midi   MidiConfig   `mapstructure:"midi" validate:"required"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel       string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}

// WheelConfig sets the default wheel drawn by the paths endpoints. Radii
// go from the innermost ring outward.
type WheelConfig struct {
	SegmentCount int       `mapstructure:"segment_count" validate:"gte=2,lte=96"`
	Radii        []float64 `mapstructure:"radii" validate:"min=2,dive,gte=0"`
}

type ExportConfig struct {
	Dir      string  `mapstructure:"dir" validate:"required"`
	Tempo    float64 `mapstructure:"tempo" validate:"gt=0,lte=400"`
	Velocity int     `mapstructure:"velocity" validate:"gte=1,lte=127"`
}

type MidiConfig struct {
	InPort     int `mapstructure:"in_port" validate:"gte=0"`
	DebounceMs int `mapstructure:"debounce_ms" validate:"gte=0,lte=5000"`
}
