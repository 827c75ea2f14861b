package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/depeter/bentolio/internal/carousel"
)

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func requireDisjoint(t *testing.T, cards []Rect) {
	t.Helper()
	for i := range cards {
		require.False(t, cards[i].Empty(), "card %d is empty", i)
		for j := i + 1; j < len(cards); j++ {
			require.False(t, overlaps(cards[i], cards[j]), "cards %d and %d overlap", i, j)
		}
	}
}

func TestComputeLayoutWide(t *testing.T) {
	t.Parallel()

	l := ComputeLayout(1600)
	requireDisjoint(t, l.Cards())

	// Content is capped and centered.
	require.InDelta(t, maxContentWidth, l.Header.W, 0.001)
	require.InDelta(t, (1600-maxContentWidth)/2.0, l.Header.X, 0.001)

	// Showcase sits right of the hero row and shares its top edge.
	require.Greater(t, l.Showcase.X, l.Portrait.X+l.Portrait.W)
	require.Equal(t, l.Title.Y, l.Showcase.Y)
	require.InDelta(t, l.Contact.Y+l.Contact.H, l.Socials.Y+l.Socials.H, 0.001)
	require.InDelta(t, l.Header.X+l.Header.W, l.Showcase.X+l.Showcase.W, 0.001)
	require.Greater(t, l.Height, l.Socials.Y+l.Socials.H)
}

func TestComputeLayoutCompactStacks(t *testing.T) {
	t.Parallel()

	l := ComputeLayout(600)
	cards := l.Cards()
	requireDisjoint(t, cards)
	for i := 1; i < len(cards); i++ {
		require.Equal(t, cards[0].X, cards[i].X)
		require.Equal(t, cards[0].W, cards[i].W)
		require.Greater(t, cards[i].Y, cards[i-1].Y)
	}
	require.Greater(t, l.Height, 600.0)
}

func TestRectContains(t *testing.T) {
	t.Parallel()

	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	require.True(t, r.Contains(10, 20))
	require.True(t, r.Contains(40, 60))
	require.False(t, r.Contains(41, 30))
	require.False(t, r.Contains(20, 19))
	require.True(t, r.Offset(0, -20).Contains(20, 0))
	require.True(t, Rect{}.Empty())
}

func TestScrollStateClamps(t *testing.T) {
	t.Parallel()

	var s ScrollState
	s.SetContentHeight(1000, 600)
	require.Equal(t, 400.0, s.MaxScrollY)

	s.HandleWheel(-3)
	require.Equal(t, 3.0*ScrollWheelSpeed, s.TargetScrollY)
	s.HandleWheel(-100)
	require.Equal(t, 400.0, s.TargetScrollY)
	s.HandleWheel(100)
	require.Zero(t, s.TargetScrollY)

	s.HandleWheel(-2)
	s.SetContentHeight(500, 600)
	require.Zero(t, s.MaxScrollY)
	require.Zero(t, s.TargetScrollY)

	s.TargetScrollY = 100
	for i := 0; i < 200; i++ {
		s.Animate()
	}
	require.InDelta(t, 100, s.ScrollY, 0.01)
	s.Reset()
	require.Zero(t, s.ScrollY)
}

func TestWrapWords(t *testing.T) {
	t.Parallel()

	width := func(s string) float64 { return float64(len(s)) }
	words := strings.Fields("Artist Redefining Architecture with AI-Driven Design")

	lines := wrapWords(words, 20, 1, width)
	require.Equal(t, [][]string{
		{"Artist", "Redefining"},
		{"Architecture", "with"},
		{"AI-Driven", "Design"},
	}, lines)

	for _, line := range wrapWords(words, 5, 1, width) {
		require.Len(t, line, 1)
	}
	require.Nil(t, wrapWords(nil, 10, 1, width))
}

func TestUpcoming(t *testing.T) {
	t.Parallel()

	items := []carousel.Item{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	names := func(in []carousel.Item) []string {
		out := make([]string, len(in))
		for i, it := range in {
			out[i] = it.Name
		}
		return out
	}

	require.Equal(t, []string{"D", "A", "B"}, names(upcoming(items, 2, 10)))
	require.Equal(t, []string{"B"}, names(upcoming(items, 0, 1)))
	require.Empty(t, upcoming(items, 0, 0))
	require.Empty(t, upcoming(items[:1], 0, 3))
}

func TestWheelToDeltaY(t *testing.T) {
	t.Parallel()

	// Scrolling down in ebiten is negative; the carousel expects positive.
	require.Positive(t, WheelToDeltaY(-1))
	require.Negative(t, WheelToDeltaY(1))
}

func TestEaseOutBackSettles(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0, easeOutBack(0), 1e-9)
	require.InDelta(t, 1, easeOutBack(1), 1e-9)
	require.InDelta(t, 1, easeOutBack(2), 1e-9)

	r := scaleRect(Rect{X: 0, Y: 0, W: 100, H: 50}, 0.5)
	require.Equal(t, Rect{X: 25, Y: 12.5, W: 50, H: 25}, r)
}

func TestDebugInfoLines(t *testing.T) {
	t.Parallel()

	item := carousel.Item{Name: "Musea"}
	lines := DebugInfo{
		State:    carousel.State{Index: 1, Total: 4, Item: &item, AutoPlaying: true, DragDirection: carousel.DirectionNone},
		Captures: 2,
		Releases: 2,
	}.Lines()

	joined := strings.Join(lines, "\n")
	require.Contains(t, joined, "(default)")
	require.Contains(t, joined, "1 / 4  Musea")
	require.Contains(t, joined, "taken=2 released=2")
	require.Contains(t, joined, "dir=none")
}
