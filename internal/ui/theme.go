package ui

import (
	"image/color"

	"github.com/depeter/bentolio/internal/config"
)

// Colors. ApplyProfileTheme overrides the profile-driven ones.
var (
	ColorBackground    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorCard          = color.RGBA{R: 0xFA, G: 0xDC, B: 0xD9, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorSecondary     = color.RGBA{R: 0xF8, G: 0xAF, B: 0xA6, A: 0xFF}
	ColorSecondaryText = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorText          = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x55, G: 0x55, B: 0x5C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x9A, G: 0x9A, B: 0xA0, A: 0xFF}
	ColorDark          = color.RGBA{R: 0x1C, G: 0x1C, B: 0x1C, A: 0xFF}
	ColorPlaceholder   = color.RGBA{R: 0xEE, G: 0xE4, B: 0xE2, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorPrimary       = color.RGBA{R: 0xEF, G: 0x77, B: 0x22, A: 0xFF}
)

// Layout constants
const (
	PagePadding = 24
	CardGap     = 16
	CardRadius  = 24

	HeaderHeight = 56

	FontSizeHero    = 44
	FontSizeTitle   = 28
	FontSizeHeading = 20
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	ScrollAnimSpeed = 0.12

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60

	// Layouts narrower than this stack the cards in one column.
	CompactWidth = 900
)

// ApplyProfileTheme sets the page colors from the profile section. The
// config has already validated the hex strings; bad values keep the
// current color.
func ApplyProfileTheme(p config.ProfileConfig) {
	if c, err := config.ParseHexColor(p.Background); err == nil {
		ColorCard = c
	}
	if c, err := config.ParseHexColor(p.Secondary); err == nil {
		ColorSecondary = c
	}
	if c, err := config.ParseHexColor(p.SecondaryText); err == nil {
		ColorSecondaryText = c
	}
}
