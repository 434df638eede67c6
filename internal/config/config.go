// Package config holds the application configuration, loaded through Viper
// from a YAML file with environment-variable overrides (prefix NBCLASS).
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration object.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Motion MotionConfig `mapstructure:"motion" yaml:"motion"`
}

// LoggerConfig controls the zap logger bootstrap.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// MotionConfig contains the tunable parameters of the motion synthesis.
// The defaults reproduce the canonical behavior; overriding them changes the
// "personality" of the generated movement without touching core code.
type MotionConfig struct {
	// MoveDuration is the default duration of a move when the caller does
	// not specify one.
	MoveDuration time.Duration `mapstructure:"move_duration" yaml:"move_duration"`
	// FPS controls waypoint density: steps = max(1, duration_seconds * fps).
	FPS int `mapstructure:"fps" yaml:"fps"`
	// Humanlike selects curved, jittered paths by default; linear paths are
	// still available per call.
	Humanlike bool `mapstructure:"humanlike" yaml:"humanlike"`
	// CurveOffsetMax bounds the random control-point offset, in pixels.
	// The offset is drawn uniformly from [-CurveOffsetMax, CurveOffsetMax].
	CurveOffsetMax int `mapstructure:"curve_offset_max" yaml:"curve_offset_max"`
	// JitterAmplitude scales the per-step hand-tremor perturbation, in pixels.
	JitterAmplitude float64 `mapstructure:"jitter_amplitude" yaml:"jitter_amplitude"`
	// ClickHoldMinMs/ClickHoldMaxMs bound the randomized press-to-release
	// interval of a click.
	ClickHoldMinMs int `mapstructure:"click_hold_min_ms" yaml:"click_hold_min_ms"`
	ClickHoldMaxMs int `mapstructure:"click_hold_max_ms" yaml:"click_hold_max_ms"`
	// DoubleClickGapMinMs/DoubleClickGapMaxMs bound the randomized interval
	// between the two clicks of a double-click.
	DoubleClickGapMinMs int `mapstructure:"double_click_gap_min_ms" yaml:"double_click_gap_min_ms"`
	DoubleClickGapMaxMs int `mapstructure:"double_click_gap_max_ms" yaml:"double_click_gap_max_ms"`
	// DragHoldMs is the fixed pause between grabbing and moving during a drag.
	DragHoldMs int `mapstructure:"drag_hold_ms" yaml:"drag_hold_ms"`
	// WheelDelta is the per-detent wheel unit (120 on every platform that
	// inherited the Win32 convention).
	WheelDelta int `mapstructure:"wheel_delta" yaml:"wheel_delta"`
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "nbclass")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	v.SetDefault("motion.move_duration", 500*time.Millisecond)
	v.SetDefault("motion.fps", 60)
	v.SetDefault("motion.humanlike", true)
	v.SetDefault("motion.curve_offset_max", 30)
	v.SetDefault("motion.jitter_amplitude", 2.0)
	v.SetDefault("motion.click_hold_min_ms", 10)
	v.SetDefault("motion.click_hold_max_ms", 50)
	v.SetDefault("motion.double_click_gap_min_ms", 50)
	v.SetDefault("motion.double_click_gap_max_ms", 150)
	v.SetDefault("motion.drag_hold_ms", 50)
	v.SetDefault("motion.wheel_delta", 120)
}

// DefaultMotion returns the canonical motion parameters without going
// through Viper. Library consumers that embed the core directly start here.
func DefaultMotion() MotionConfig {
	return MotionConfig{
		MoveDuration:        500 * time.Millisecond,
		FPS:                 60,
		Humanlike:           true,
		CurveOffsetMax:      30,
		JitterAmplitude:     2.0,
		ClickHoldMinMs:      10,
		ClickHoldMaxMs:      50,
		DoubleClickGapMinMs: 50,
		DoubleClickGapMaxMs: 150,
		DragHoldMs:          50,
		WheelDelta:          120,
	}
}

// Normalize clamps out-of-range values instead of failing, so a sloppy
// config file degrades to usable behavior.
func (m *MotionConfig) Normalize() {
	if m.MoveDuration < 0 {
		m.MoveDuration = 0
	}
	if m.FPS < 1 {
		m.FPS = 60
	}
	if m.CurveOffsetMax < 0 {
		m.CurveOffsetMax = -m.CurveOffsetMax
	}
	if m.JitterAmplitude < 0 {
		m.JitterAmplitude = 0
	}
	if m.ClickHoldMinMs < 0 {
		m.ClickHoldMinMs = 0
	}
	if m.ClickHoldMaxMs < m.ClickHoldMinMs {
		m.ClickHoldMaxMs = m.ClickHoldMinMs
	}
	if m.DoubleClickGapMinMs < 0 {
		m.DoubleClickGapMinMs = 0
	}
	if m.DoubleClickGapMaxMs < m.DoubleClickGapMinMs {
		m.DoubleClickGapMaxMs = m.DoubleClickGapMinMs
	}
	if m.DragHoldMs < 0 {
		m.DragHoldMs = 0
	}
	if m.WheelDelta == 0 {
		m.WheelDelta = 120
	}
}

// Load unmarshals the full configuration out of the supplied Viper instance.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	cfg.Motion.Normalize()
	return &cfg, nil
}
