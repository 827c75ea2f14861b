// Package carousel implements the showcase carousel controller: an index
// into the active item sequence that advances on an autoplay interval and
// moves on wheel and pointer-drag gestures, independent of any renderer.
package carousel

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// Default timing and gesture thresholds.
const (
	DefaultAutoplayInterval = 3000 * time.Millisecond
	DefaultResumeDelay      = 5000 * time.Millisecond
	DefaultDeadZone         = 10.0
	DefaultCommitThreshold  = 50.0
)

// DefaultCategory selects the source's default item list.
const DefaultCategory = ""

// Item is one entry of the active sequence.
type Item struct {
	ID    string
	Name  string
	Image string
	Link  string
}

// Direction is the horizontal direction of an in-flight drag.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Source resolves category keys to item sequences.
type Source interface {
	DefaultItems() []Item
	Items(key string) ([]Item, bool)
}

// Flat is a Source without categories.
type Flat []Item

func (f Flat) DefaultItems() []Item { return f }

func (f Flat) Items(string) ([]Item, bool) { return nil, false }

// PointerCapture is notified when a drag gesture starts listening for
// pointer moves and when it stops. Release is called exactly once per
// Capture.
type PointerCapture interface {
	Capture()
	Release()
}

// State is a read-only snapshot handed to renderers.
type State struct {
	Category      string
	Index         int
	Total         int
	Item          *Item
	Dragging      bool
	DragDirection Direction
	AutoPlaying   bool
}

// Options configures a Controller. Zero fields take the defaults.
type Options struct {
	AutoplayInterval time.Duration
	ResumeDelay      time.Duration
	DeadZone         float64
	CommitThreshold  float64

	Logger   *zap.Logger
	OnChange func(State)
	Capture  PointerCapture
}

func (o Options) withDefaults() Options {
	if o.AutoplayInterval <= 0 {
		o.AutoplayInterval = DefaultAutoplayInterval
	}
	if o.ResumeDelay <= 0 {
		o.ResumeDelay = DefaultResumeDelay
	}
	if o.DeadZone <= 0 {
		o.DeadZone = DefaultDeadZone
	}
	if o.CommitThreshold <= 0 {
		o.CommitThreshold = DefaultCommitThreshold
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type gesture struct {
	anchor float64
}

// Controller owns the carousel state. It is not safe for concurrent use:
// all calls, including Scheduler.Advance, must come from one goroutine.
type Controller struct {
	src   Source
	sched *Scheduler
	opts  Options
	log   *zap.Logger

	category    string
	items       []Item
	index       int
	autoPlaying bool
	dragging    bool
	direction   Direction

	gesture  *gesture
	autoplay *Timer
	resume   *Timer
	closed   bool
}

// New mounts a controller on src's default list with autoplay on.
func New(src Source, sched *Scheduler, opts Options) *Controller {
	if src == nil {
		src = Flat(nil)
	}
	if sched == nil {
		sched = NewScheduler(nil)
	}
	opts = opts.withDefaults()
	c := &Controller{
		src:         src,
		sched:       sched,
		opts:        opts,
		log:         opts.Logger.Named("carousel"),
		category:    DefaultCategory,
		items:       cloneItems(src.DefaultItems()),
		autoPlaying: true,
	}
	c.scheduleAutoplay()
	return c
}

// Forward returns the index after i in a sequence of n, wrapping to 0.
func Forward(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}

// Backward returns the index before i in a sequence of n, wrapping to n-1.
func Backward(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i - 1 + n) % n
}

// SetCategory replaces the active sequence and rewinds to the first item.
// Unknown keys select an empty sequence. The autoplay flag is unchanged.
func (c *Controller) SetCategory(key string) {
	if c.closed {
		return
	}
	var items []Item
	if key == DefaultCategory {
		items = c.src.DefaultItems()
	} else if found, ok := c.src.Items(key); ok {
		items = found
	} else {
		c.log.Debug("unknown category", zap.String("category", key))
	}

	c.category = key
	c.items = cloneItems(items)
	c.index = 0
	c.log.Debug("category selected",
		zap.String("category", key),
		zap.Int("items", len(c.items)))
	c.scheduleAutoplay()
	c.notify()
}

// TickAutoplay advances one item. It does nothing while autoplay is paused
// or when there is nothing to cycle.
func (c *Controller) TickAutoplay() {
	if c.closed || !c.autoPlaying || len(c.items) <= 1 {
		return
	}
	c.index = Forward(c.index, len(c.items))
	c.notify()
}

// OnWheel moves forward for a positive deltaY and backward otherwise.
func (c *Controller) OnWheel(deltaY float64) {
	if c.closed || len(c.items) == 0 {
		return
	}
	c.pause()
	if deltaY > 0 {
		c.index = Forward(c.index, len(c.items))
	} else {
		c.index = Backward(c.index, len(c.items))
	}
	c.armResume()
	c.notify()
}

// BeginDrag starts a drag gesture anchored at x. Dragging is not flagged
// until the pointer leaves the dead zone.
func (c *Controller) BeginDrag(x float64) {
	if c.closed || len(c.items) == 0 {
		return
	}
	if c.gesture != nil {
		c.finishGesture()
	}
	c.pause()
	c.resume.Stop()
	c.resume = nil
	c.gesture = &gesture{anchor: x}
	if c.opts.Capture != nil {
		c.opts.Capture.Capture()
	}
	c.notify()
}

// UpdateDrag feeds a pointer position to the active gesture. Past the
// commit threshold the gesture resolves into a single move: dragging right
// shows the previous item, dragging left the next one.
func (c *Controller) UpdateDrag(x float64) {
	if c.closed || c.gesture == nil || len(c.items) == 0 {
		return
	}
	delta := x - c.gesture.anchor
	dist := math.Abs(delta)

	if dist > c.opts.DeadZone {
		c.dragging = true
		if delta > 0 {
			c.direction = DirectionRight
		} else {
			c.direction = DirectionLeft
		}
	}

	if dist > c.opts.CommitThreshold {
		if delta > 0 {
			c.index = Backward(c.index, len(c.items))
		} else {
			c.index = Forward(c.index, len(c.items))
		}
		c.log.Debug("drag committed",
			zap.Float64("delta", delta),
			zap.Int("index", c.index))
		c.finishGesture()
		c.armResume()
	}
	c.notify()
}

// EndDrag handles pointer release before the gesture committed.
func (c *Controller) EndDrag() {
	if c.closed || c.gesture == nil {
		return
	}
	c.finishGesture()
	c.armResume()
	c.notify()
}

// Close unmounts the controller: both timers are cancelled and any
// captured pointer is released. Later calls are no-ops.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	if c.gesture != nil {
		c.finishGesture()
	}
	c.autoplay.Stop()
	c.resume.Stop()
	c.autoplay, c.resume = nil, nil
	c.closed = true
}

func (c *Controller) finishGesture() {
	c.gesture = nil
	c.dragging = false
	c.direction = DirectionNone
	if c.opts.Capture != nil {
		c.opts.Capture.Release()
	}
}

func (c *Controller) pause() {
	if c.autoPlaying {
		c.log.Debug("autoplay paused")
	}
	c.autoPlaying = false
	c.autoplay.Stop()
	c.autoplay = nil
}

func (c *Controller) armResume() {
	c.resume.Stop()
	c.resume = c.sched.AfterFunc(c.opts.ResumeDelay, c.resumeAutoplay)
}

func (c *Controller) resumeAutoplay() {
	c.resume = nil
	if c.closed {
		return
	}
	c.autoPlaying = true
	c.log.Debug("autoplay resumed")
	c.scheduleAutoplay()
	c.notify()
}

func (c *Controller) scheduleAutoplay() {
	c.autoplay.Stop()
	c.autoplay = nil
	if c.closed || !c.autoPlaying || len(c.items) <= 1 {
		return
	}
	c.autoplay = c.sched.Every(c.opts.AutoplayInterval, c.TickAutoplay)
}

func (c *Controller) notify() {
	if c.opts.OnChange != nil {
		c.opts.OnChange(c.State())
	}
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	return State{
		Category:      c.category,
		Index:         c.index,
		Total:         len(c.items),
		Item:          c.CurrentItem(),
		Dragging:      c.dragging,
		DragDirection: c.direction,
		AutoPlaying:   c.autoPlaying,
	}
}

// CurrentItem returns a copy of the item at the current index, or nil.
func (c *Controller) CurrentItem() *Item {
	if len(c.items) == 0 {
		return nil
	}
	it := c.items[c.index]
	return &it
}

// Items returns a copy of the active sequence.
func (c *Controller) Items() []Item { return cloneItems(c.items) }

func (c *Controller) CurrentIndex() int { return c.index }

func (c *Controller) Len() int { return len(c.items) }

func (c *Controller) Category() string { return c.category }

func (c *Controller) IsDragging() bool { return c.dragging }

func (c *Controller) DragDirection() Direction { return c.direction }

func (c *Controller) IsAutoPlaying() bool { return c.autoPlaying }

// GestureActive reports whether a drag gesture is listening for moves.
func (c *Controller) GestureActive() bool { return c.gesture != nil }

// AutoplayScheduled reports whether the autoplay interval timer is live.
func (c *Controller) AutoplayScheduled() bool { return c.autoplay.Active() }

// ResumePending reports whether an autoplay resume is armed.
func (c *Controller) ResumePending() bool { return c.resume.Active() }

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
