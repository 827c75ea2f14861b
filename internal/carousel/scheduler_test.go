package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestSchedulerAfterFuncFiresOnce(t *testing.T) {
	t.Parallel()

	clock := NewManualClock(epoch)
	sched := NewScheduler(clock)

	fired := 0
	timer := sched.AfterFunc(time.Second, func() { fired++ })
	require.True(t, timer.Active())

	clock.Advance(999 * time.Millisecond)
	require.Zero(t, sched.Advance())
	require.Zero(t, fired)

	clock.Advance(time.Millisecond)
	require.Equal(t, 1, sched.Advance())
	require.Equal(t, 1, fired)
	require.False(t, timer.Active())

	clock.Advance(time.Hour)
	sched.Advance()
	require.Equal(t, 1, fired)
	require.Zero(t, sched.Pending())
}

func TestSchedulerEveryCatchesUp(t *testing.T) {
	t.Parallel()

	clock := NewManualClock(epoch)
	sched := NewScheduler(clock)

	fired := 0
	timer := sched.Every(3*time.Second, func() { fired++ })

	clock.Advance(9 * time.Second)
	require.Equal(t, 3, sched.Advance())
	require.Equal(t, 3, fired)
	require.True(t, timer.Active())
	require.Equal(t, epoch.Add(12*time.Second), timer.Deadline())
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	t.Parallel()

	sched := NewScheduler(NewManualClock(epoch))
	timer := sched.AfterFunc(time.Second, func() { t.Fatal("stopped timer fired") })

	require.True(t, timer.Stop())
	require.False(t, timer.Stop())

	var nilTimer *Timer
	require.False(t, nilTimer.Stop())
	require.False(t, nilTimer.Active())
}

func TestSchedulerRunsInDeadlineOrder(t *testing.T) {
	t.Parallel()

	clock := NewManualClock(epoch)
	sched := NewScheduler(clock)

	var order []string
	sched.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	sched.AfterFunc(time.Second, func() { order = append(order, "a") })
	sched.AfterFunc(2*time.Second, func() { order = append(order, "c") })

	clock.Advance(5 * time.Second)
	sched.Advance()
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestSchedulerTaskCanRearm(t *testing.T) {
	t.Parallel()

	clock := NewManualClock(epoch)
	sched := NewScheduler(clock)

	fired := 0
	var arm func()
	arm = func() {
		sched.AfterFunc(time.Second, func() {
			fired++
			arm()
		})
	}
	arm()

	clock.Advance(time.Second)
	sched.Advance()
	require.Equal(t, 1, fired)
	require.Equal(t, 1, sched.Pending())
}

func TestSchedulerEveryRejectsNonPositivePeriod(t *testing.T) {
	t.Parallel()

	sched := NewScheduler(NewManualClock(epoch))
	timer := sched.Every(0, func() {})
	require.False(t, timer.Active())
	require.Zero(t, sched.Pending())
}
