package ui

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/depeter/bentolio/internal/cache"
	"github.com/depeter/bentolio/internal/config"
	"github.com/depeter/bentolio/internal/locale"
)

// appearFrames is the length of the entrance animation at 60 TPS.
const appearFrames = 45.0

// BentoScreen is the portfolio page: a header and six cards around the
// project showcase.
type BentoScreen struct {
	profile  config.ProfileConfig
	showcase *Showcase
	bar      *CategoryBar
	ctrl     Carousel
	images   *cache.ImageCache
	loc      *locale.Locale
	log      *zap.Logger

	scroll ScrollState
	layout BentoLayout
	width  float64
	height float64
	appear float64

	contactRect Rect
}

// NewBentoScreen builds the page. bar may be nil when the catalog has a
// single list.
func NewBentoScreen(profile config.ProfileConfig, showcase *Showcase, bar *CategoryBar, ctrl Carousel, images *cache.ImageCache, loc *locale.Locale, logger *zap.Logger) *BentoScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BentoScreen{
		profile:  profile,
		showcase: showcase,
		bar:      bar,
		ctrl:     ctrl,
		images:   images,
		loc:      loc,
		log:      logger.Named("bento"),
	}
}

func (bs *BentoScreen) Name() string { return "Bento" }

func (bs *BentoScreen) OnEnter() {
	if bs.images != nil && bs.profile.ProfileImage != "" {
		bs.images.LoadAsync(bs.profile.ProfileImage, func(*ebiten.Image) {})
	}
}

func (bs *BentoScreen) OnExit() {
	bs.showcase.Cancel()
}

// Resize sets the viewport and recomputes the layout.
func (bs *BentoScreen) Resize(w, h float64) {
	if w == bs.width && h == bs.height {
		return
	}
	bs.width, bs.height = w, h
	bs.layout = ComputeLayout(w)
	bs.scroll.SetContentHeight(bs.layout.Height, h)
}

// screenRect converts a content rectangle to screen coordinates.
func (bs *BentoScreen) screenRect(r Rect) Rect {
	return r.Offset(0, -bs.scroll.ScrollY)
}

func (bs *BentoScreen) Update() (*ScreenTransition, error) {
	if bs.appear < 1 {
		bs.appear = math.Min(1, bs.appear+1/appearFrames)
	}
	bs.showcase.SetBounds(bs.screenRect(bs.layout.Showcase))

	mx, my := CursorPosition()
	if _, dy := MouseWheelDelta(); dy != 0 {
		if !bs.showcase.HandleWheel(mx, my, dy) {
			bs.scroll.HandleWheel(dy)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !IsModifierPressed() {
		if tr := bs.openCurrent(); tr != nil {
			return tr, nil
		}
	}

	in := ReadPointer()
	if in.JustPressed {
		if bs.bar != nil && bs.bar.HandleClick(in.X, in.Y) {
			return nil, nil
		}
		if bs.showcase.ArrowHit(in.X, in.Y) {
			return bs.openCurrent(), nil
		}
		if bs.contactRect.Contains(in.X, in.Y) {
			bs.log.Info("contact link selected", zap.String("link", bs.profile.ContactLink))
		}
	}
	bs.showcase.UpdatePointer(in)
	return nil, nil
}

func (bs *BentoScreen) openCurrent() *ScreenTransition {
	st := bs.ctrl.State()
	if st.Item == nil {
		return nil
	}
	bs.showcase.Cancel()
	return &ScreenTransition{Type: TransitionPush, Screen: NewProjectScreen(*st.Item, bs.images)}
}

func (bs *BentoScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	bs.Resize(float64(b.Dx()), float64(b.Dy()))
	bs.scroll.Animate()
	dst.Fill(ColorBackground)

	l := bs.layout
	p := easeOutBack(bs.appear)
	settled := bs.appear >= 1

	if !settled {
		for _, r := range l.Cards() {
			DrawCard(dst, scaleRect(bs.screenRect(r), p), ColorCard)
		}
		return
	}

	bs.drawHeader(dst, bs.screenRect(l.Header))
	bs.drawTitle(dst, bs.screenRect(l.Title))
	bs.drawPortrait(dst, bs.screenRect(l.Portrait))
	bs.drawDescription(dst, bs.screenRect(l.Description))
	bs.drawContact(dst, bs.screenRect(l.Contact))
	bs.showcase.Draw(dst)
	bs.drawSocials(dst, bs.screenRect(l.Socials))
}

func (bs *BentoScreen) drawHeader(dst *ebiten.Image, r Rect) {
	DrawCard(dst, r, ColorCard)
	x := r.X + 28
	cy := r.Y + r.H/2

	first := bs.loc.Upper(bs.profile.FirstName) + " "
	fw, fh := MeasureText(first, FontSizeHeading)
	DrawText(dst, first, x, cy-fh/2, FontSizeHeading, ColorText)
	DrawBoldText(dst, bs.loc.Upper(bs.profile.LastName), x+fw, cy-fh/2, FontSizeHeading, ColorText)

	right := r.X + r.W - 28
	if bs.bar != nil && bs.bar.Visible() && r.W >= CompactWidth-2*PagePadding {
		bs.bar.Draw(dst, right-bs.bar.Width(), cy-categoryBarHeight/2)
		return
	}
	if bs.bar != nil {
		bs.bar.clearHits()
	}

	const linkGap = 40.0
	for i := len(bs.profile.NavLinks) - 1; i >= 0; i-- {
		label := bs.loc.Upper(bs.profile.NavLinks[i])
		w, h := MeasureText(label, FontSizeSmall)
		right -= w
		if right < x+fw+160 {
			break
		}
		DrawText(dst, label, right, cy-h/2, FontSizeSmall, ColorText)
		right -= linkGap
	}
}

func (bs *BentoScreen) drawTitle(dst *ebiten.Image, r Rect) {
	DrawCard(dst, r, ColorCard)
	pad := 32.0

	drawFlowerIcon(dst, float32(r.X+r.W-pad-24), float32(r.Y+pad+24), 24, ColorSecondary)

	if curved := strings.TrimSpace(bs.profile.CurvedText); curved != "" {
		const badgeR = 46.0
		cx, cy := r.X+pad+badgeR, r.Y+pad+badgeR
		ring := bs.loc.Upper(curved) + " • "
		n := float64(len([]rune(ring)))
		DrawFilledRoundRect(dst, Rect{X: cx - badgeR, Y: cy - badgeR, W: 2 * badgeR, H: 2 * badgeR}, badgeR, ColorSecondary)
		DrawTextOnArc(dst, ring, cx, cy, badgeR-12, 2*math.Pi*(n-1)/n, FontSizeCaption, ColorSecondaryText)
		drawRingIcon(dst, float32(cx), float32(cy), 8, ColorSecondaryText)
	}

	maxW := r.W*0.9 - pad
	lines := wrapTitle(bs.profile.Title, bs.profile.CurvedText, maxW)
	lineH := FontSizeHero * 1.1
	y := r.Y + r.H - pad - float64(len(lines))*lineH
	for _, line := range lines {
		x := r.X + pad
		for _, w := range line {
			face := GetBoldFace(FontSizeHero)
			if w.curved {
				face = GetFace(FontSizeHero)
			}
			drawWithFace(dst, w.text, face, x, y, ColorText)
			x += w.width + titleSpace()
		}
		y += lineH
	}
}

// titleWord is a word of the title with its rendered width.
type titleWord struct {
	text   string
	width  float64
	curved bool
}

func titleSpace() float64 {
	w, _ := text.Measure(" ", GetBoldFace(FontSizeHero), 0)
	return w
}

// wrapTitle splits title into lines, setting the words of curved in the
// light face.
func wrapTitle(title, curved string, maxW float64) [][]titleWord {
	curvedWords := make(map[string]bool)
	if strings.Contains(title, curved) {
		for _, w := range strings.Fields(curved) {
			curvedWords[w] = true
		}
	}
	measure := func(word string) float64 {
		face := GetBoldFace(FontSizeHero)
		if curvedWords[word] {
			face = GetFace(FontSizeHero)
		}
		w, _ := text.Measure(word, face, 0)
		return w
	}
	var out [][]titleWord
	for _, line := range wrapWords(strings.Fields(title), maxW, titleSpace(), measure) {
		words := make([]titleWord, len(line))
		for i, w := range line {
			words[i] = titleWord{text: w, width: measure(w), curved: curvedWords[w]}
		}
		out = append(out, words)
	}
	return out
}

// wrapWords greedily packs words into lines no wider than maxW. A word
// wider than maxW gets a line of its own.
func wrapWords(words []string, maxW, space float64, measure func(string) float64) [][]string {
	var lines [][]string
	var line []string
	lineW := 0.0
	for _, w := range words {
		ww := measure(w)
		if len(line) > 0 && lineW+space+ww > maxW {
			lines = append(lines, line)
			line, lineW = nil, 0
		}
		if len(line) > 0 {
			lineW += space
		}
		line = append(line, w)
		lineW += ww
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

func (bs *BentoScreen) drawPortrait(dst *ebiten.Image, r Rect) {
	var img *ebiten.Image
	if bs.images != nil {
		img = bs.images.Get(bs.profile.ProfileImage)
	}
	if img == nil {
		DrawPlaceholder(dst, r, bs.loc.T(locale.Loading))
		return
	}
	DrawCard(dst, r, ColorCard)
	DrawImageCover(dst, img, r)
}

func (bs *BentoScreen) drawDescription(dst *ebiten.Image, r Rect) {
	DrawCard(dst, r, ColorCard)
	pad := 28.0
	drawRingIcon(dst, float32(r.X+pad+14), float32(r.Y+pad+14), 14, ColorText)

	maxW := r.W*0.9 - pad
	face := GetFace(FontSizeSmall)
	lines := wrapWords(strings.Fields(bs.profile.Description), maxW, measureWith(face, " "), func(w string) float64 {
		return measureWith(face, w)
	})
	lineH := FontSizeSmall * 1.5
	y := r.Y + r.H - pad - float64(len(lines))*lineH
	for _, line := range lines {
		DrawText(dst, strings.Join(line, " "), r.X+pad, y, FontSizeSmall, ColorText)
		y += lineH
	}
}

func measureWith(face *text.GoTextFace, s string) float64 {
	w, _ := text.Measure(s, face, 0)
	return w
}

func (bs *BentoScreen) drawContact(dst *ebiten.Image, r Rect) {
	bs.contactRect = r
	DrawCard(dst, r, ColorSecondary)
	pad := 28.0

	DrawTextWrapped(dst, bs.loc.T(locale.ContactPrompt), r.X+pad, r.Y+pad, 90, FontSizeSmall, ColorSecondaryText)
	drawArrowIcon(dst, float32(r.X+r.W-pad-14), float32(r.Y+pad+14), 14, ColorSecondaryText)

	label := bs.loc.T(locale.ContactMe)
	size := 50.0
	if w, _ := MeasureText(label, size); w > r.W-2*pad {
		size = FontSizeTitle
	}
	_, h := MeasureText(label, size)
	DrawText(dst, label, r.X+pad, r.Y+r.H-pad-h, size, ColorSecondaryText)
}

func (bs *BentoScreen) drawSocials(dst *ebiten.Image, r Rect) {
	DrawCard(dst, r, ColorCard)
	n := len(bs.profile.Socials)
	if n == 0 {
		return
	}
	pad := 40.0
	slot := (r.W - 2*pad) / float64(n)
	for i, s := range bs.profile.Socials {
		cx := r.X + pad + slot*(float64(i)+0.5)
		DrawTextCentered(dst, truncateText(s.Name, slot-8, FontSizeSmall), cx, r.Y+r.H/2, FontSizeSmall, ColorText)
	}
}

// scaleRect shrinks r around its center by factor p.
func scaleRect(r Rect, p float64) Rect {
	w, h := r.W*p, r.H*p
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// easeOutBack overshoots slightly before settling at 1, like a spring.
func easeOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	t = math.Max(0, math.Min(1, t))
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}
