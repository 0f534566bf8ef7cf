package listview

import (
	"log/slog"
	"os"
)

// viewLogLevel controls the log level for list view debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var viewLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		viewLogLevel.Set(slog.LevelDebug)
	} else {
		viewLogLevel.Set(slog.LevelInfo)
	}
}

var viewLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: viewLogLevel}))

// Item is a focusable child of the container. Bounds are reported in
// container coordinates and already account for the current scroll
// offset.
type Item interface {
	Bounds() Rect
	SetSelected(selected bool)
}

// Host is the scrollable container the View decorates. The concrete
// host owns layout and scrolling; the View only tells it where to go
// and which regions need repainting.
type Host interface {
	// Size returns the viewport size.
	Size() Vec2

	// Padding returns the viewport padding.
	Padding() Insets

	// LayoutDirection returns the horizontal reading order.
	LayoutDirection() LayoutDirection

	// ScrollBy shifts content by (dx, dy) immediately.
	ScrollBy(dx, dy float32)

	// SmoothScrollBy shifts content by (dx, dy) over time.
	SmoothScrollBy(dx, dy float32)

	// ScrollRectIntoView is the host's default behavior for bringing a
	// child rect on screen, used when no anchor fraction is set.
	// Returns true if any scrolling was performed.
	ScrollRectIntoView(child Item, rect Rect, immediate bool) bool

	// Invalidate marks a region as needing repaint.
	Invalidate(r Rect)
}

// View adds D-pad focus handling to a Host: animated selector overlays
// that follow the focused item, and camera positioning that keeps the
// focused item at a fixed fraction of the viewport.
type View struct {
	host Host

	background Paintable
	foreground Paintable

	velocity        float32 // Selector travel speed, px/s; <= 0 means instant
	smoothScrolling bool

	anchorX    float32
	anchorY    float32
	anchorXSet bool
	anchorYSet bool

	inTouchMode bool
	hasFocus    bool
	lastFocused Item

	transition selectorTransition

	unsubscribe func()
}

// ViewOption configures a View at construction.
type ViewOption func(*View)

// WithSelectorVelocity sets the selector travel speed in pixels per
// second. Zero or negative makes selector moves instant.
func WithSelectorVelocity(pxPerSec float32) ViewOption {
	return func(v *View) { v.velocity = pxPerSec }
}

// WithSmoothScrolling toggles smooth camera scrolling. When disabled
// every camera adjustment is an immediate jump.
func WithSmoothScrolling(enabled bool) ViewOption {
	return func(v *View) { v.smoothScrolling = enabled }
}

// WithScrollOffsetFractionX anchors the focused item horizontally at
// the given fraction of the viewport (0 = left edge, 0.5 = center).
func WithScrollOffsetFractionX(fraction float32) ViewOption {
	return func(v *View) { v.SetScrollOffsetFractionX(fraction) }
}

// WithScrollOffsetFractionY anchors the focused item vertically at
// the given fraction of the viewport (0 = top edge, 0.5 = center).
func WithScrollOffsetFractionY(fraction float32) ViewOption {
	return func(v *View) { v.SetScrollOffsetFractionY(fraction) }
}

// WithBackgroundSelector installs the selector layer drawn behind
// items.
func WithBackgroundSelector(p Paintable) ViewOption {
	return func(v *View) { v.SetBackgroundSelector(p) }
}

// WithForegroundSelector installs the selector layer drawn over items.
func WithForegroundSelector(p Paintable) ViewOption {
	return func(v *View) { v.SetForegroundSelector(p) }
}

// New creates a View decorating the given host. By default smooth
// scrolling is off, selector moves are instant, and no axis is
// anchored.
func New(host Host, opts ...ViewOption) *View {
	v := &View{
		host: host,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetBackgroundSelector replaces the layer drawn behind items.
func (v *View) SetBackgroundSelector(p Paintable) {
	v.replaceLayer(&v.background, p)
}

// SetForegroundSelector replaces the layer drawn over items.
func (v *View) SetForegroundSelector(p Paintable) {
	v.replaceLayer(&v.foreground, p)
}

func (v *View) replaceLayer(slot *Paintable, p Paintable) {
	if old := *slot; old != nil {
		old.SetCallback(nil)
		if !old.Bounds().IsZero() {
			v.invalidateRect(old.Bounds())
		}
	}
	*slot = p
	if p != nil {
		p.SetCallback(v)
		p.SetVisible(selectorVisible(v.inTouchMode, v.hasFocus))
	}
}

// BackgroundSelector returns the layer drawn behind items, or nil.
func (v *View) BackgroundSelector() Paintable { return v.background }

// ForegroundSelector returns the layer drawn over items, or nil.
func (v *View) ForegroundSelector() Paintable { return v.foreground }

// SelectorVelocity returns the selector travel speed in px/s.
func (v *View) SelectorVelocity() float32 { return v.velocity }

// SetSelectorVelocity sets the selector travel speed in px/s.
func (v *View) SetSelectorVelocity(pxPerSec float32) { v.velocity = pxPerSec }

// SmoothScrolling reports whether smooth camera scrolling is enabled.
func (v *View) SmoothScrolling() bool { return v.smoothScrolling }

// SetSmoothScrolling toggles smooth camera scrolling.
func (v *View) SetSmoothScrolling(enabled bool) { v.smoothScrolling = enabled }

// ScrollOffsetFractionX returns the horizontal anchor and whether it
// is set.
func (v *View) ScrollOffsetFractionX() (float32, bool) {
	return v.anchorX, v.anchorXSet
}

// SetScrollOffsetFractionX anchors the focused item horizontally.
func (v *View) SetScrollOffsetFractionX(fraction float32) {
	v.anchorX = fraction
	v.anchorXSet = true
}

// ClearScrollOffsetFractionX removes the horizontal anchor.
func (v *View) ClearScrollOffsetFractionX() {
	v.anchorX = 0
	v.anchorXSet = false
}

// ScrollOffsetFractionY returns the vertical anchor and whether it is
// set.
func (v *View) ScrollOffsetFractionY() (float32, bool) {
	return v.anchorY, v.anchorYSet
}

// SetScrollOffsetFractionY anchors the focused item vertically.
func (v *View) SetScrollOffsetFractionY(fraction float32) {
	v.anchorY = fraction
	v.anchorYSet = true
}

// ClearScrollOffsetFractionY removes the vertical anchor.
func (v *View) ClearScrollOffsetFractionY() {
	v.anchorY = 0
	v.anchorYSet = false
}

// FocusedItem returns the item the selector currently tracks, or nil.
func (v *View) FocusedItem() Item { return v.lastFocused }

// Attach subscribes the View to touch mode changes. Call Detach when
// the container leaves the screen.
func (v *View) Attach(notifier TouchModeNotifier) {
	v.Detach()
	if notifier == nil {
		return
	}
	v.inTouchMode = notifier.InTouchMode()
	v.unsubscribe = notifier.Subscribe(v.OnTouchModeChanged)
	v.enforceSelectorVisibility()
}

// Detach cancels the touch mode subscription.
func (v *View) Detach() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// OnTouchModeChanged updates selector visibility when the user
// switches between pointer and key input.
func (v *View) OnTouchModeChanged(inTouchMode bool) {
	if v.inTouchMode == inTouchMode {
		return
	}
	v.inTouchMode = inTouchMode
	viewLogger.Debug("touch mode changed", "inTouchMode", inTouchMode)
	v.enforceSelectorVisibility()
}

// OnFocusChanged updates selector visibility when the container gains
// or loses focus.
func (v *View) OnFocusChanged(hasFocus bool) {
	if v.hasFocus == hasFocus {
		return
	}
	v.hasFocus = hasFocus
	viewLogger.Debug("container focus changed", "hasFocus", hasFocus)
	v.enforceSelectorVisibility()
}

// OnKeyDispatch notes that key input reached the container. Key
// traffic means the user is navigating, so the selector must show.
func (v *View) OnKeyDispatch() {
	if v.inTouchMode {
		v.inTouchMode = false
		v.enforceSelectorVisibility()
	}
}

// RequestChildFocus moves focus to child, starting a selector
// transition from the previously focused item. Focusing the already
// focused item is a no-op.
func (v *View) RequestChildFocus(child Item) {
	if child == v.lastFocused {
		return
	}
	prev := v.lastFocused
	v.lastFocused = child
	v.animateSelectorChange(child, prev)
}

// ClearFocus forgets the focused item and empties the selector
// layers. Call when the host replaces its contents, so the selector
// does not keep tracking discarded items. A transition in flight is
// dropped without firing its end effect.
func (v *View) ClearFocus() {
	v.transition = selectorTransition{}
	v.lastFocused = nil
	v.emptyLayer(v.background)
	v.emptyLayer(v.foreground)
}

func (v *View) emptyLayer(p Paintable) {
	if p == nil {
		return
	}
	old := p.Bounds()
	if old.IsZero() {
		return
	}
	p.SetBounds(Rect{})
	v.invalidateRect(old)
}

// OnScrolled must be called whenever the host's content shifts by
// (dx, dy). The transition endpoints always follow the content; the
// layers themselves follow only when no transition is running, since a
// running transition repositions them every Tick anyway.
func (v *View) OnScrolled(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}

	if v.transition.state == transitionRunning {
		v.transition.source = v.transition.source.Offset(-dx, -dy)
		v.transition.dest = v.transition.dest.Offset(-dx, -dy)
		return
	}

	v.shiftLayer(v.background, dx, dy)
	v.shiftLayer(v.foreground, dx, dy)
}

func (v *View) shiftLayer(p Paintable, dx, dy float32) {
	if p == nil {
		return
	}
	old := p.Bounds()
	if old.IsZero() {
		return
	}
	p.SetBounds(old.Offset(-dx, -dy))
	v.invalidateRect(old)
	v.InvalidatePaintable(p)
}

// DrawBackground emits the background selector layer. Call before
// drawing items.
func (v *View) DrawBackground(dl *DrawList) {
	if v.background != nil && v.background.Visible() {
		v.background.Draw(dl)
	}
}

// DrawForeground emits the foreground selector layer. Call after
// drawing items.
func (v *View) DrawForeground(dl *DrawList) {
	if v.foreground != nil && v.foreground.Visible() {
		v.foreground.Draw(dl)
	}
}

// InvalidatePaintable implements DrawCallback by forwarding the
// layer's region to the host.
func (v *View) InvalidatePaintable(p Paintable) {
	v.invalidateRect(p.Bounds())
}

func (v *View) invalidateRect(r Rect) {
	if r.IsZero() {
		return
	}
	v.host.Invalidate(r)
}
