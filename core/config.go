// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration defines a global bootstrap configuration.
// It is built once at startup and passed by value afterwards.
type Configuration struct {
	Window   WindowConfiguration   `yaml:"window"`
	Instance InstanceConfiguration `yaml:"instance"`
	Time     TimeConfiguration     `yaml:"time"`
	Log      LogConfiguration      `yaml:"log"`
}

// WindowConfiguration is used to configure the presentation window
type WindowConfiguration struct {
	Title  string `yaml:"title" env:"KORU_WINDOW_TITLE"`
	Width  uint32 `yaml:"width" env:"KORU_WINDOW_WIDTH"`
	Height uint32 `yaml:"height" env:"KORU_WINDOW_HEIGHT"`

	// Backend selects the windowing library, sdl or glfw
	Backend string `yaml:"backend" env:"KORU_WINDOW_BACKEND"`
}

// InstanceConfiguration configures instance creation and diagnostics
type InstanceConfiguration struct {
	DebugMode bool `yaml:"debug" env:"KORU_DEBUG"`

	// APIVersion is the Vulkan version requested, "1.0" when empty
	APIVersion string `yaml:"api_version" env:"KORU_API_VERSION"`

	// ValidationLayer is requested when DebugMode is set and
	// the runtime supports it
	ValidationLayer string `yaml:"validation_layer" env:"KORU_VALIDATION_LAYER"`

	// MessageSeverity is the least severe validation message forwarded.
	// Verbose messages are logged at debug level, so they only show
	// when log.level is debug or lower.
	MessageSeverity string `yaml:"message_severity" env:"KORU_MESSAGE_SEVERITY"`

	Extensions []string `yaml:"extensions" env:"KORU_EXTENSIONS" envSeparator:","`
	Layers     []string `yaml:"layers" env:"KORU_LAYERS" envSeparator:","`
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// EventPollDelay is the event loop period in milliseconds
	EventPollDelay int `yaml:"event_poll_delay" env:"KORU_EVENT_POLL_DELAY"`
}

// LogConfiguration configures the logger
type LogConfiguration struct {
	Level  string `yaml:"level" env:"KORU_LOG_LEVEL"`
	Format string `yaml:"format" env:"KORU_LOG_FORMAT"`
}

// DefaultValidationLayer is the Khronos validation layer
const DefaultValidationLayer = "VK_LAYER_KHRONOS_validation"

// DefaultConfiguration returns the configuration used when nothing overrides it
func DefaultConfiguration() Configuration {
	return Configuration{
		Window: WindowConfiguration{
			Title:   "template",
			Width:   800,
			Height:  600,
			Backend: "sdl",
		},
		Instance: InstanceConfiguration{
			APIVersion:      "1.0.0",
			ValidationLayer: DefaultValidationLayer,
			MessageSeverity: "info",
		},
		Time: TimeConfiguration{
			EventPollDelay: 16,
		},
		Log: LogConfiguration{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfiguration builds a configuration from defaults, an optional
// YAML file, an optional .env file and the environment, in that order.
func LoadConfiguration(path string) (Configuration, error) {
	cfg := DefaultConfiguration()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Configuration{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Configuration{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Configuration{}, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Configuration{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside bootstrap
func (c Configuration) Validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Window.Backend {
	case "sdl", "glfw":
	default:
		return fmt.Errorf("unknown window backend %q", c.Window.Backend)
	}
	if _, err := ParseSeverity(c.Instance.MessageSeverity); err != nil {
		return err
	}
	if _, err := ParseAPIVersion(c.Instance.APIVersion); err != nil {
		return err
	}
	if c.Time.EventPollDelay <= 0 {
		return fmt.Errorf("invalid event poll delay %d", c.Time.EventPollDelay)
	}
	return nil
}
