package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/depeter/bentolio/internal/carousel"
)

var (
	// ErrThresholds is returned when the commit threshold does not exceed
	// the dead zone.
	ErrThresholds = errors.New("commit_threshold must be greater than dead_zone")
	// ErrColor is returned for a color that is not #RGB or #RRGGBB.
	ErrColor = errors.New("invalid color")
)

// Validate replaces unusable carousel values with defaults and checks
// colors and gesture thresholds.
func (c *Config) Validate() error {
	cc := &c.Carousel
	if cc.AutoplayInterval <= 0 {
		cc.AutoplayInterval = carousel.DefaultAutoplayInterval
	}
	if cc.ResumeDelay <= 0 {
		cc.ResumeDelay = carousel.DefaultResumeDelay
	}
	if cc.DeadZone <= 0 {
		cc.DeadZone = carousel.DefaultDeadZone
	}
	if cc.CommitThreshold <= 0 {
		cc.CommitThreshold = carousel.DefaultCommitThreshold
	}
	if cc.CommitThreshold <= cc.DeadZone {
		return fmt.Errorf("carousel: %w (%.0f <= %.0f)", ErrThresholds, cc.CommitThreshold, cc.DeadZone)
	}

	for name, v := range map[string]string{
		"bg":             c.Profile.Background,
		"secondary":      c.Profile.Secondary,
		"secondary_text": c.Profile.SecondaryText,
	} {
		if v == "" {
			continue
		}
		if _, err := ParseHexColor(v); err != nil {
			return fmt.Errorf("profile.%s: %w", name, err)
		}
	}

	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		def := DefaultConfig().UI
		c.UI.Width, c.UI.Height = def.Width, def.Height
	}
	return nil
}

// ParseHexColor parses #RGB or #RRGGBB.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
