package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/depeter/bentolio/internal/carousel"
)

type Config struct {
	Carousel CarouselConfig `toml:"carousel"`
	Profile  ProfileConfig  `toml:"profile"`
	Catalog  CatalogConfig  `toml:"catalog"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
	Keybinds KeybindConfig  `toml:"keybinds"`
}

type CarouselConfig struct {
	AutoplayInterval time.Duration `toml:"autoplay_interval"`
	ResumeDelay      time.Duration `toml:"resume_delay"`
	DeadZone         float64       `toml:"dead_zone"`
	CommitThreshold  float64       `toml:"commit_threshold"`
}

type SocialLink struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

type ProfileConfig struct {
	FirstName     string       `toml:"first_name"`
	LastName      string       `toml:"last_name"`
	Title         string       `toml:"title"`
	CurvedText    string       `toml:"curved_text"`
	Description   string       `toml:"description"`
	ProfileImage  string       `toml:"profile_image"`
	ContactLink   string       `toml:"contact_link"`
	NavLinks      []string     `toml:"nav_links"`
	Socials       []SocialLink `toml:"socials"`
	Background    string       `toml:"bg"`
	Secondary     string       `toml:"secondary"`
	SecondaryText string       `toml:"secondary_text"`
}

type CatalogConfig struct {
	Path     string `toml:"path"`
	Category string `toml:"category"`
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Language   string `toml:"language"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

type KeybindConfig struct {
	Next         string `toml:"next"`
	Prev         string `toml:"prev"`
	NextCategory string `toml:"next_category"`
	Fullscreen   string `toml:"fullscreen"`
}

func DefaultConfig() *Config {
	return &Config{
		Carousel: CarouselConfig{
			AutoplayInterval: carousel.DefaultAutoplayInterval,
			ResumeDelay:      carousel.DefaultResumeDelay,
			DeadZone:         carousel.DefaultDeadZone,
			CommitThreshold:  carousel.DefaultCommitThreshold,
		},
		Profile: ProfileConfig{
			FirstName:    "Julia",
			LastName:     "Huang",
			Title:        "Artist Redefining Architecture with AI-Driven Design",
			CurvedText:   "Architecture",
			Description:  "Julia Huang is an innovative AI artist, renowned for blending cutting-edge technology with creative expression. Based in LA, she crafts unique digital art experiences accessible globally.",
			ProfileImage: "images/bentolio.png",
			ContactLink:  "#",
			NavLinks:     []string{"projects", "about", "contact"},
			Socials: []SocialLink{
				{Name: "Instagram", URL: "#"},
				{Name: "Twitter", URL: "#"},
				{Name: "LinkedIn", URL: "#"},
			},
			Background:    "#FADCD9",
			Secondary:     "#F8AFA6",
			SecondaryText: "#000000",
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1200,
			Height:     860,
			Language:   "en",
		},
		Log: LogConfig{
			Level: "info",
		},
		Keybinds: KeybindConfig{
			Next:         "Right",
			Prev:         "Left",
			NextCategory: "Tab",
			Fullscreen:   "F",
		},
	}
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
	return filepath.Join(configHome, "bentolio"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults.
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
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

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

// CatalogPath resolves the catalog path against the config directory.
func (c *Config) CatalogPath() string {
	p := c.Catalog.Path
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if dir, err := ConfigDir(); err == nil {
		return filepath.Join(dir, p)
	}
	return p
}

// CarouselOptions converts the carousel section for carousel.New.
func (c *Config) CarouselOptions(logger *zap.Logger) carousel.Options {
	return carousel.Options{
		AutoplayInterval: c.Carousel.AutoplayInterval,
		ResumeDelay:      c.Carousel.ResumeDelay,
		DeadZone:         c.Carousel.DeadZone,
		CommitThreshold:  c.Carousel.CommitThreshold,
		Logger:           logger,
	}
}
