package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/depeter/jellyreel/internal/carousel"
	"github.com/depeter/jellyreel/internal/constants"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Playback PlaybackConfig `toml:"playback"`
	UI       UIConfig       `toml:"ui"`
	Carousel CarouselConfig `toml:"carousel"`
	Keybinds KeybindConfig  `toml:"keybinds"`
}

type ServerConfig struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Token    string `toml:"token"`
	UserID   string `toml:"user_id"`
	// Live enables the server notification socket so the carousel
	// rebuilds when the library changes.
	Live bool `toml:"live"`
}

type PlaybackConfig struct {
	HWAccel       string `toml:"hwdec"`
	AudioLanguage string `toml:"audio_language"`
	SubLanguage   string `toml:"sub_language"`
	Volume        int    `toml:"volume"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

// CarouselConfig mirrors carousel.Options in config-file units.
type CarouselConfig struct {
	Flickable   bool    `toml:"flickable"`
	AspectRatio float64 `toml:"aspect_ratio"`
	Gap         float64 `toml:"gap"`
	IntervalMS  int     `toml:"interval_ms"`
	DurationMS  int     `toml:"duration_ms"`
	// Artwork is "backdrop" or "primary". Primary artwork keeps each
	// item's own aspect ratio.
	Artwork       string `toml:"artwork"`
	FeaturedLimit int    `toml:"featured_limit"`
	// Resume starts on the item that was active when the app last closed.
	Resume bool `toml:"resume"`
}

type KeybindConfig struct {
	Prev       string `toml:"prev"`
	Next       string `toml:"next"`
	Play       string `toml:"play"`
	Stop       string `toml:"stop"`
	Fullscreen string `toml:"fullscreen"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Live: true},
		Playback: PlaybackConfig{
			HWAccel:       "auto-safe",
			AudioLanguage: "eng",
			SubLanguage:   "eng",
			Volume:        100,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1920,
			Height:     1080,
		},
		Carousel: CarouselConfig{
			Flickable:     true,
			AspectRatio:   carousel.DefaultAspectRatio,
			Gap:           carousel.DefaultGap,
			IntervalMS:    int(carousel.DefaultInterval / time.Millisecond),
			DurationMS:    int(carousel.DefaultDuration / time.Millisecond),
			Artwork:       "backdrop",
			FeaturedLimit: 12,
			Resume:        true,
		},
		Keybinds: KeybindConfig{
			Prev:       "Left",
			Next:       "Right",
			Play:       "Enter",
			Stop:       "S",
			Fullscreen: "F",
		},
	}
}

// Options converts the section into engine options.
func (c CarouselConfig) Options() carousel.Options {
	return carousel.Options{
		Flickable:   c.Flickable,
		AspectRatio: c.AspectRatio,
		Gap:         c.Gap,
		Interval:    time.Duration(c.IntervalMS) * time.Millisecond,
		Duration:    time.Duration(c.DurationMS) * time.Millisecond,
	}
}

// UsePrimaryArtwork reports whether slides show primary images instead of
// backdrops.
func (c CarouselConfig) UsePrimaryArtwork() bool {
	return c.Artwork == "primary"
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, constants.AppName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file from the default location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path over the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
