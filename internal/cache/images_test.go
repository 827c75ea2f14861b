package cache

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 0xEF, G: 0x77, B: 0x22, A: 0xFF})
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func newTestCache(t *testing.T) *ImageCache {
	t.Helper()
	ic := NewImageCache(t.TempDir(), nil)
	ic.toImage = func(image.Image) *ebiten.Image { return new(ebiten.Image) }
	return ic
}

func waitImage(t *testing.T, ch <-chan *ebiten.Image) *ebiten.Image {
	t.Helper()
	select {
	case img := <-ch:
		return img
	case <-time.After(5 * time.Second):
		t.Fatal("image load timed out")
		return nil
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	ic := NewImageCache("/srv/assets", nil)
	require.Equal(t, filepath.Join("/srv/assets", "images", "a.png"), ic.Resolve("/images/a.png"))
	require.Equal(t, filepath.Join("/srv/assets", "b.png"), ic.Resolve("b.png"))
	require.Empty(t, ic.Resolve("https://example.com/a.png"))
	require.Empty(t, ic.Resolve("  "))
}

func TestLoadAsyncDecodesAndCaches(t *testing.T) {
	t.Parallel()

	ic := newTestCache(t)
	writePNG(t, filepath.Join(ic.Root(), "images", "logo.png"))

	ch := make(chan *ebiten.Image, 2)
	ic.LoadAsync("images/logo.png", func(img *ebiten.Image) { ch <- img })
	img := waitImage(t, ch)
	require.NotNil(t, img)
	require.Same(t, img, ic.Get("images/logo.png"))
	require.Equal(t, Stats{Loaded: 1}, ic.Stats())

	ic.LoadAsync("images/logo.png", func(img *ebiten.Image) { ch <- img })
	require.Same(t, img, waitImage(t, ch), "second load is served from memory")
	require.Equal(t, int64(1), ic.Stats().Loaded)

	ic.Clear()
	require.Nil(t, ic.Get("images/logo.png"))
}

func TestLoadAsyncCountsFailures(t *testing.T) {
	t.Parallel()

	ic := newTestCache(t)
	bad := filepath.Join(ic.Root(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))

	ic.LoadAsync("bad.png", func(*ebiten.Image) { t.Error("callback on failed load") })
	ic.LoadAsync("missing.png", func(*ebiten.Image) { t.Error("callback on missing file") })
	ic.LoadAsync("https://example.com/remote.png", func(*ebiten.Image) { t.Error("remote refs are not fetched") })

	require.Eventually(t, func() bool { return ic.Stats().Failed == 2 }, 5*time.Second, 10*time.Millisecond)
	require.Zero(t, ic.Stats().Loaded)
}

func TestDecodeFileError(t *testing.T) {
	t.Parallel()

	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
