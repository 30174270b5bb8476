package ink

import (
	"github.com/kelseyhightower/envconfig"
)

// RenderConfig describes how a stroke is rendered. It is frozen into the
// stroke at creation; recolor actions change only its Color.
type RenderConfig struct {
	// Color is the stroke color as an sRGB hex string ("#rrggbb").
	Color string `json:"color"`
	// Opacity is the stroke alpha in [0, 1].
	Opacity float64 `json:"opacity"`
	// BaseStrokeWidth is the nominal width in world pixels, > 0.
	BaseStrokeWidth float64 `json:"baseStrokeWidth"`
	// MinWidth and MaxWidth clamp the modulated width. MinWidth <= MaxWidth.
	MinWidth float64 `json:"minWidth"`
	MaxWidth float64 `json:"maxWidth"`
	// Smoothness is the Catmull-Rom tension in [0, 1].
	Smoothness float64 `json:"smoothness"`
	// Streamline is the input smoothing intensity in [0, 1].
	Streamline float64 `json:"streamline"`
	// PressureInfluence scales how strongly pressure drives width, >= 0.
	PressureInfluence float64 `json:"pressureInfluence"`
	// VelocityInfluence scales how strongly speed thins the line, in [0, 1].
	VelocityInfluence float64 `json:"velocityInfluence"`
}

// DefaultRenderConfig returns a fountain-pen-like render config.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Color:             "#1a1a2e",
		Opacity:           1.0,
		BaseStrokeWidth:   3.0,
		MinWidth:          0.5,
		MaxWidth:          8.0,
		Smoothness:        0.5,
		Streamline:        0.5,
		PressureInfluence: 1.0,
		VelocityInfluence: 0.4,
	}
}

// rgba resolves the config's color and opacity to a render color.
func (c RenderConfig) rgba() RGBA {
	return Hex(c.Color).WithAlpha(c.Opacity)
}

// EngineConfig holds engine-level defaults, settable from the environment.
// Grid, sound, and haptic settings are live-tunable afterwards through the
// corresponding Engine setters.
type EngineConfig struct {
	GridType       string  `envconfig:"INK_GRID" default:"none"`
	SoundProfile   string  `envconfig:"INK_SOUND_PROFILE" default:"fountain"`
	SoundVolume    float64 `envconfig:"INK_SOUND_VOLUME" default:"0.8"`
	SurfaceTexture float64 `envconfig:"INK_SURFACE_TEXTURE" default:"0.3"`
	HapticsEnabled bool    `envconfig:"INK_HAPTICS" default:"true"`
	RawMode        bool    `envconfig:"INK_RAW_MODE" default:"false"`
}

// DefaultEngineConfig returns the built-in engine defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		GridType:       "none",
		SoundProfile:   "fountain",
		SoundVolume:    0.8,
		SurfaceTexture: 0.3,
		HapticsEnabled: true,
	}
}

// ConfigFromEnv loads engine defaults from INK_* environment variables,
// falling back to the built-in defaults for unset values.
func ConfigFromEnv() (EngineConfig, error) {
	var cfg EngineConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DefaultEngineConfig(), err
	}
	cfg.SoundVolume = clamp(cfg.SoundVolume, 0, 1)
	cfg.SurfaceTexture = clamp(cfg.SurfaceTexture, 0, 1)
	return cfg, nil
}
