package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/depeter/bentolio/internal/carousel"
)

var panel = Rect{X: 100, Y: 100, W: 300, H: 400}

func newTrackedController(t *testing.T, names ...string) (*carousel.Controller, *PointerTracker, *carousel.ManualClock, *carousel.Scheduler) {
	t.Helper()
	items := make([]carousel.Item, len(names))
	for i, n := range names {
		items[i] = carousel.Item{ID: n, Name: n}
	}
	clock := carousel.NewManualClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	sched := carousel.NewScheduler(clock)
	tracker := NewPointerTracker()
	tracker.Bounds = panel
	ctrl := carousel.New(carousel.Flat(items), sched, carousel.Options{Capture: tracker})
	tracker.SetTarget(ctrl)
	t.Cleanup(ctrl.Close)
	return ctrl, tracker, clock, sched
}

func press(x, y float64) PointerInput { return PointerInput{X: x, Y: y, Pressed: true, JustPressed: true} }
func hold(x, y float64) PointerInput { return PointerInput{X: x, Y: y, Pressed: true} }
func lift(x, y float64) PointerInput { return PointerInput{X: x, Y: y} }

func TestPointerTrackerCommitsOncePerGesture(t *testing.T) {
	t.Parallel()

	ctrl, tracker, _, _ := newTrackedController(t, "A", "B", "C")

	tracker.Update(press(200, 200))
	require.True(t, tracker.Active())
	require.True(t, tracker.Captured())
	require.True(t, ctrl.GestureActive())

	tracker.Update(hold(180, 200))
	require.True(t, ctrl.IsDragging())
	require.Equal(t, carousel.DirectionLeft, ctrl.DragDirection())
	require.Equal(t, 0, ctrl.CurrentIndex())

	tracker.Update(hold(140, 200))
	require.Equal(t, 1, ctrl.CurrentIndex())
	require.False(t, tracker.Captured())

	// The rest of the motion belongs to a finished gesture.
	tracker.Update(hold(20, 200))
	tracker.Update(hold(-200, 200))
	require.Equal(t, 1, ctrl.CurrentIndex())

	tracker.Update(lift(-200, 200))
	require.False(t, tracker.Active())

	captures, releases := tracker.CaptureCounts()
	require.Equal(t, 1, captures)
	require.Equal(t, 1, releases)
}

func TestPointerTrackerDragRightShowsPrevious(t *testing.T) {
	t.Parallel()

	ctrl, tracker, _, _ := newTrackedController(t, "A", "B", "C")

	tracker.Update(press(200, 300))
	tracker.Update(hold(251, 300))
	require.Equal(t, 2, ctrl.CurrentIndex())
}

func TestPointerTrackerReleaseBeforeCommit(t *testing.T) {
	t.Parallel()

	ctrl, tracker, clock, sched := newTrackedController(t, "A", "B", "C")

	tracker.Update(press(200, 300))
	tracker.Update(hold(230, 300))
	require.True(t, ctrl.IsDragging())
	require.Equal(t, carousel.DirectionRight, ctrl.DragDirection())

	tracker.Update(lift(230, 300))
	require.False(t, ctrl.GestureActive())
	require.False(t, ctrl.IsDragging())
	require.Equal(t, 0, ctrl.CurrentIndex())
	require.True(t, ctrl.ResumePending())

	captures, releases := tracker.CaptureCounts()
	require.Equal(t, 1, captures)
	require.Equal(t, 1, releases)

	clock.Advance(carousel.DefaultResumeDelay)
	sched.Advance()
	require.True(t, ctrl.IsAutoPlaying())
}

func TestPointerTrackerIgnoresPressOutsideBounds(t *testing.T) {
	t.Parallel()

	ctrl, tracker, _, _ := newTrackedController(t, "A", "B", "C")

	tracker.Update(press(10, 10))
	tracker.Update(hold(200, 10))
	tracker.Update(lift(200, 10))

	require.False(t, tracker.Active())
	require.False(t, ctrl.GestureActive())
	require.True(t, ctrl.IsAutoPlaying())
	captures, _ := tracker.CaptureCounts()
	require.Zero(t, captures)
}

func TestPointerTrackerMovesOutsideBoundsStillCount(t *testing.T) {
	t.Parallel()

	ctrl, tracker, _, _ := newTrackedController(t, "A", "B", "C")

	tracker.Update(press(390, 300))
	tracker.Update(hold(600, 900))
	require.Equal(t, 2, ctrl.CurrentIndex())
}

func TestPointerTrackerCancelReleasesCapture(t *testing.T) {
	t.Parallel()

	ctrl, tracker, _, _ := newTrackedController(t, "A", "B", "C")

	tracker.Update(press(200, 300))
	tracker.Cancel()
	require.False(t, tracker.Active())
	require.False(t, tracker.Captured())
	require.False(t, ctrl.GestureActive())

	tracker.Cancel()
	_, releases := tracker.CaptureCounts()
	require.Equal(t, 1, releases)
}

func TestPointerTrackerEmptyCarousel(t *testing.T) {
	t.Parallel()

	ctrl, tracker, _, _ := newTrackedController(t)

	tracker.Update(press(200, 300))
	tracker.Update(hold(400, 300))
	tracker.Update(lift(400, 300))

	captures, releases := tracker.CaptureCounts()
	require.Zero(t, captures)
	require.Zero(t, releases)
	require.Zero(t, ctrl.Len())
}

func TestPointerTrackerCloseMidGesture(t *testing.T) {
	t.Parallel()

	ctrl, tracker, _, _ := newTrackedController(t, "A", "B")

	tracker.Update(press(200, 300))
	ctrl.Close()
	require.False(t, tracker.Captured())

	tracker.Update(lift(200, 300))
	captures, releases := tracker.CaptureCounts()
	require.Equal(t, 1, captures)
	require.Equal(t, 1, releases)
}
