package ui

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/bentolio/internal/cache"
	"github.com/depeter/bentolio/internal/carousel"
)

// ProjectScreen shows one carousel item full size.
type ProjectScreen struct {
	item     carousel.Item
	imgCache *cache.ImageCache

	mu    sync.Mutex
	image *ebiten.Image
}

func NewProjectScreen(item carousel.Item, imgCache *cache.ImageCache) *ProjectScreen {
	return &ProjectScreen{item: item, imgCache: imgCache}
}

func (ps *ProjectScreen) Name() string { return "Project: " + ps.item.Name }

func (ps *ProjectScreen) OnEnter() {
	if ps.imgCache == nil || ps.item.Image == "" {
		return
	}
	ps.imgCache.LoadAsync(ps.item.Image, func(img *ebiten.Image) {
		ps.mu.Lock()
		ps.image = img
		ps.mu.Unlock()
	})
}

func (ps *ProjectScreen) OnExit() {}

func (ps *ProjectScreen) Update() (*ScreenTransition, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	if x, y, ok := MouseJustClicked(); ok && ps.backRect().Contains(float64(x), float64(y)) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

func (ps *ProjectScreen) backRect() Rect {
	return Rect{X: PagePadding, Y: PagePadding, W: 44, H: 44}
}

func (ps *ProjectScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	back := ps.backRect()
	DrawFilledRoundRect(dst, back, back.W/2, ColorSecondary)
	drawChevron(dst, float32(back.X+back.W/2), float32(back.Y+back.H/2), 8, true, ColorSecondaryText)

	DrawBoldText(dst, ps.item.Name, back.X+back.W+CardGap, back.Y+4, FontSizeTitle, ColorText)
	if ps.item.Link != "" && ps.item.Link != "#" {
		DrawText(dst, truncateText(ps.item.Link, w/2, FontSizeSmall), back.X+back.W+CardGap, back.Y+FontSizeTitle+10, FontSizeSmall, ColorTextMuted)
	}

	imgRect := Rect{
		X: PagePadding,
		Y: back.Y + back.H + CardGap*2,
		W: w - 2*PagePadding,
		H: h - back.Y - back.H - CardGap*2 - PagePadding,
	}

	ps.mu.Lock()
	img := ps.image
	ps.mu.Unlock()
	if img != nil {
		DrawCard(dst, imgRect, ColorCard)
		DrawImageCover(dst, img, imgRect)
	} else {
		DrawPlaceholder(dst, imgRect, ps.item.Name)
	}
}
