package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type mapSource struct {
	def  []Item
	cats map[string][]Item
}

func (m mapSource) DefaultItems() []Item { return m.def }

func (m mapSource) Items(key string) ([]Item, bool) {
	items, ok := m.cats[key]
	return items, ok
}

type captureRecorder struct {
	captures, releases int
}

func (r *captureRecorder) Capture() { r.captures++ }
func (r *captureRecorder) Release() { r.releases++ }

func items(names ...string) []Item {
	out := make([]Item, len(names))
	for i, n := range names {
		out[i] = Item{ID: n, Name: n}
	}
	return out
}

func newTestController(t *testing.T, src Source, opts Options) (*Controller, *ManualClock, *Scheduler) {
	t.Helper()
	clock := NewManualClock(epoch)
	sched := NewScheduler(clock)
	c := New(src, sched, opts)
	t.Cleanup(c.Close)
	return c, clock, sched
}

func abc() Flat { return Flat(items("A", "B", "C")) }

func TestForwardBackwardWrap(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		for i := 0; i < n; i++ {
			require.Equal(t, (i+1)%n, Forward(i, n))
			require.Equal(t, (i-1+n)%n, Backward(i, n))

			fwd, back := i, i
			for k := 0; k < n; k++ {
				fwd = Forward(fwd, n)
				back = Backward(back, n)
			}
			require.Equal(t, i, fwd, "forward period n=%d", n)
			require.Equal(t, i, back, "backward period n=%d", n)
		}
	}
	require.Zero(t, Forward(3, 0))
	require.Zero(t, Backward(3, 0))
}

func TestMountDefaults(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestController(t, abc(), Options{})
	st := c.State()
	require.Equal(t, 0, st.Index)
	require.Equal(t, 3, st.Total)
	require.True(t, st.AutoPlaying)
	require.False(t, st.Dragging)
	require.Equal(t, DirectionNone, st.DragDirection)
	require.Equal(t, "A", st.Item.Name)
	require.True(t, c.AutoplayScheduled())
}

func TestAutoplayAdvancesEveryInterval(t *testing.T) {
	t.Parallel()

	c, clock, sched := newTestController(t, abc(), Options{})

	clock.Advance(2999 * time.Millisecond)
	sched.Advance()
	require.Equal(t, 0, c.CurrentIndex())

	clock.Advance(time.Millisecond)
	sched.Advance()
	require.Equal(t, 1, c.CurrentIndex())

	clock.Advance(6 * time.Second)
	sched.Advance()
	require.Equal(t, 0, c.CurrentIndex())
}

func TestWheelScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		delta float64
		want  int
	}{
		{name: "scroll down advances", delta: 10, want: 1},
		{name: "scroll up wraps backward", delta: -10, want: 2},
		{name: "zero delta goes backward", delta: 0, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _, _ := newTestController(t, abc(), Options{})
			c.OnWheel(tt.delta)
			require.Equal(t, tt.want, c.CurrentIndex())
			require.False(t, c.IsAutoPlaying())
			require.False(t, c.AutoplayScheduled())
			require.True(t, c.ResumePending())
		})
	}
}

func TestDragScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start int
		delta float64
		want  int
	}{
		{name: "drag left from last wraps forward", start: 2, delta: -60, want: 0},
		{name: "drag right from first wraps backward", start: 0, delta: 60, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _, _ := newTestController(t, abc(), Options{})
			for c.CurrentIndex() != tt.start {
				c.TickAutoplay()
			}
			c.BeginDrag(100)
			c.UpdateDrag(100 + tt.delta)
			require.Equal(t, tt.want, c.CurrentIndex())
			require.False(t, c.IsDragging())
			require.Equal(t, DirectionNone, c.DragDirection())
		})
	}
}

func TestDragThresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		delta     float64
		dragging  bool
		direction Direction
		index     int
	}{
		{name: "inside dead zone", delta: 10, dragging: false, direction: DirectionNone, index: 0},
		{name: "inside dead zone left", delta: -10, dragging: false, direction: DirectionNone, index: 0},
		{name: "past dead zone right", delta: 11, dragging: true, direction: DirectionRight, index: 0},
		{name: "past dead zone left", delta: -30, dragging: true, direction: DirectionLeft, index: 0},
		{name: "at commit threshold", delta: 50, dragging: true, direction: DirectionRight, index: 0},
		{name: "past commit threshold", delta: 51, dragging: false, direction: DirectionNone, index: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _, _ := newTestController(t, abc(), Options{})
			c.BeginDrag(0)
			require.False(t, c.IsDragging())
			c.UpdateDrag(tt.delta)
			require.Equal(t, tt.dragging, c.IsDragging())
			require.Equal(t, tt.direction, c.DragDirection())
			require.Equal(t, tt.index, c.CurrentIndex())
		})
	}
}

func TestDragCommitsOncePerGesture(t *testing.T) {
	t.Parallel()

	rec := &captureRecorder{}
	c, _, _ := newTestController(t, abc(), Options{Capture: rec})

	c.BeginDrag(200)
	require.Equal(t, 1, rec.captures)
	c.UpdateDrag(140)
	require.Equal(t, 1, c.CurrentIndex())
	require.Equal(t, 1, rec.releases)
	require.False(t, c.GestureActive())

	c.UpdateDrag(0)
	c.UpdateDrag(-500)
	c.EndDrag()
	require.Equal(t, 1, c.CurrentIndex())
	require.Equal(t, 1, rec.releases)
}

func TestEndDragWithoutCommit(t *testing.T) {
	t.Parallel()

	rec := &captureRecorder{}
	c, clock, sched := newTestController(t, abc(), Options{Capture: rec})

	c.BeginDrag(0)
	c.UpdateDrag(30)
	require.True(t, c.IsDragging())
	require.False(t, c.ResumePending())

	c.EndDrag()
	require.Equal(t, 0, c.CurrentIndex())
	require.False(t, c.IsDragging())
	require.Equal(t, DirectionNone, c.DragDirection())
	require.True(t, c.ResumePending())
	require.Equal(t, 1, rec.releases)

	clock.Advance(5 * time.Second)
	sched.Advance()
	require.True(t, c.IsAutoPlaying())
	require.True(t, c.AutoplayScheduled())
}

func TestResumeFiresAfterLastInteraction(t *testing.T) {
	t.Parallel()

	resumes := 0
	wasPlaying := false
	c, clock, sched := newTestController(t, abc(), Options{
		OnChange: func(st State) {
			if st.AutoPlaying && !wasPlaying {
				resumes++
			}
			wasPlaying = st.AutoPlaying
		},
	})

	c.OnWheel(1)
	clock.Advance(4 * time.Second)
	sched.Advance()
	c.OnWheel(1)
	require.Equal(t, 1, sched.Pending(), "only one resume may be pending")

	clock.Advance(4 * time.Second)
	sched.Advance()
	require.False(t, c.IsAutoPlaying(), "first resume was cancelled by the second wheel")

	clock.Advance(time.Second)
	sched.Advance()
	require.True(t, c.IsAutoPlaying())
	require.Equal(t, 1, resumes)
	require.Equal(t, 2, c.CurrentIndex())

	clock.Advance(3 * time.Second)
	sched.Advance()
	require.Equal(t, 0, c.CurrentIndex())
}

func TestBeginDragCancelsPendingResume(t *testing.T) {
	t.Parallel()

	c, clock, sched := newTestController(t, abc(), Options{})
	c.OnWheel(1)
	c.BeginDrag(0)
	require.False(t, c.ResumePending())

	clock.Advance(time.Minute)
	sched.Advance()
	require.False(t, c.IsAutoPlaying(), "autoplay stays paused while the pointer is down")
}

func TestSetCategoryResetsIndex(t *testing.T) {
	t.Parallel()

	src := mapSource{
		def: items("A", "B", "C"),
		cats: map[string][]Item{
			"X":     items("x1", "x2"),
			"empty": nil,
		},
	}
	c, _, _ := newTestController(t, src, Options{})
	c.OnWheel(-1)
	require.Equal(t, 2, c.CurrentIndex())

	c.SetCategory("X")
	require.Equal(t, "X", c.Category())
	require.Equal(t, 0, c.CurrentIndex())
	require.Equal(t, 2, c.Len())
	require.Equal(t, "x1", c.CurrentItem().Name)
	require.False(t, c.IsAutoPlaying(), "category switch keeps the autoplay flag")

	c.SetCategory("empty")
	require.Zero(t, c.Len())
	require.Nil(t, c.CurrentItem())

	c.SetCategory("missing")
	require.Zero(t, c.Len())

	c.SetCategory(DefaultCategory)
	require.Equal(t, 3, c.Len())
	require.Equal(t, 0, c.CurrentIndex())
}

func TestSetCategoryReschedulesAutoplay(t *testing.T) {
	t.Parallel()

	src := mapSource{
		def:  items("A", "B", "C"),
		cats: map[string][]Item{"one": items("solo")},
	}
	c, clock, sched := newTestController(t, src, Options{})

	clock.Advance(2 * time.Second)
	sched.Advance()
	c.SetCategory(DefaultCategory)
	clock.Advance(2 * time.Second)
	sched.Advance()
	require.Equal(t, 0, c.CurrentIndex(), "interval restarts on sequence change")

	c.SetCategory("one")
	require.False(t, c.AutoplayScheduled())
	require.Zero(t, sched.Pending())
}

func TestSingleItemNeverMoves(t *testing.T) {
	t.Parallel()

	c, clock, sched := newTestController(t, Flat(items("only")), Options{})
	require.False(t, c.AutoplayScheduled())

	c.TickAutoplay()
	c.OnWheel(1)
	c.OnWheel(-1)
	c.BeginDrag(0)
	c.UpdateDrag(80)
	c.BeginDrag(0)
	c.UpdateDrag(-80)
	c.EndDrag()
	clock.Advance(time.Minute)
	sched.Advance()

	require.Equal(t, 0, c.CurrentIndex())
	require.False(t, c.AutoplayScheduled())
}

func TestEmptySequenceIsNoop(t *testing.T) {
	t.Parallel()

	changes := 0
	c, clock, sched := newTestController(t, Flat(nil), Options{
		OnChange: func(State) { changes++ },
	})

	require.NotPanics(t, func() {
		c.TickAutoplay()
		c.OnWheel(1)
		c.OnWheel(-1)
		c.BeginDrag(0)
		c.UpdateDrag(100)
		c.EndDrag()
		clock.Advance(time.Minute)
		sched.Advance()
	})
	require.Zero(t, changes)
	require.Zero(t, c.CurrentIndex())
	require.Nil(t, c.CurrentItem())
	require.True(t, c.IsAutoPlaying())
	require.Zero(t, sched.Pending())
}

func TestWheelDuringDragKeepsStateConsistent(t *testing.T) {
	t.Parallel()

	rec := &captureRecorder{}
	c, _, sched := newTestController(t, abc(), Options{Capture: rec})

	c.BeginDrag(0)
	c.UpdateDrag(20)
	c.OnWheel(1)
	require.Equal(t, 1, c.CurrentIndex())
	require.True(t, c.IsDragging())
	require.Equal(t, 1, sched.Pending())

	c.BeginDrag(0)
	require.Equal(t, 2, rec.captures)
	require.Equal(t, 1, rec.releases, "restarting a gesture releases the previous one")
	require.False(t, c.IsDragging())

	c.EndDrag()
	require.Equal(t, rec.captures, rec.releases)
}

func TestCloseCancelsTimers(t *testing.T) {
	t.Parallel()

	rec := &captureRecorder{}
	clock := NewManualClock(epoch)
	sched := NewScheduler(clock)
	c := New(abc(), sched, Options{Capture: rec})

	c.OnWheel(1)
	c.BeginDrag(0)
	c.Close()
	c.Close()

	require.Zero(t, sched.Pending())
	require.Equal(t, 1, rec.releases)

	clock.Advance(time.Minute)
	sched.Advance()
	c.OnWheel(1)
	c.SetCategory("anything")
	require.Equal(t, 1, c.CurrentIndex())
}

func TestCustomThresholds(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestController(t, abc(), Options{DeadZone: 2, CommitThreshold: 5})
	c.BeginDrag(0)
	c.UpdateDrag(-3)
	require.True(t, c.IsDragging())
	c.UpdateDrag(-6)
	require.Equal(t, 1, c.CurrentIndex())
}

func TestDirectionString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "left", DirectionLeft.String())
	require.Equal(t, "right", DirectionRight.String())
	require.Equal(t, "none", DirectionNone.String())
}
