package listview

// ListItem is a single labeled row in a ListBox.
type ListItem struct {
	Label string

	box      *ListBox
	index    int
	selected bool
}

// Bounds returns the row rectangle in container coordinates, shifted
// by the current scroll offset.
func (it *ListItem) Bounds() Rect {
	return it.box.itemBounds(it.index)
}

// SetSelected marks the row as the selector's resting target. The row
// renders its label with the selected text color.
func (it *ListItem) SetSelected(selected bool) {
	if it.selected == selected {
		return
	}
	it.selected = selected
	it.box.Invalidate(it.Bounds())
}

// Selected reports whether the row is the selector's resting target.
func (it *ListItem) Selected() bool { return it.selected }

// ListBox is a vertically scrolling list of labeled rows with D-pad
// navigation. It implements Host; a View decorates it with selector
// overlays and camera positioning.
type ListBox struct {
	view  *View
	style ListBoxStyle

	size Vec2
	dir  LayoutDirection

	items    []*ListItem
	focusIdx int

	scrollY       float32
	smoothRemainY float32

	focused bool
	fontTex uint32

	dirty        Rect
	onInvalidate func(Rect)
}

// NewListBox creates an empty list box of the given viewport size.
// View options configure the decorating View.
func NewListBox(width, height float32, opts ...ViewOption) *ListBox {
	b := &ListBox{
		style:    DefaultListBoxStyle(),
		size:     Vec2{X: width, Y: height},
		focusIdx: -1,
	}
	b.view = New(b, opts...)
	return b
}

// View returns the decorating View, for selector and camera tuning.
func (b *ListBox) View() *View { return b.view }

// Style returns the current style.
func (b *ListBox) Style() ListBoxStyle { return b.style }

// SetStyle replaces the style and repaints.
func (b *ListBox) SetStyle(s ListBoxStyle) {
	b.style = s
	b.Invalidate(b.viewportRect())
}

// SetLayoutDirection sets the horizontal reading order.
func (b *ListBox) SetLayoutDirection(dir LayoutDirection) { b.dir = dir }

// SetFontTexture sets the backend texture handle used for labels.
func (b *ListBox) SetFontTexture(tex uint32) { b.fontTex = tex }

// SetOnInvalidate installs an observer for damage regions.
func (b *ListBox) SetOnInvalidate(fn func(Rect)) { b.onInvalidate = fn }

// SetItems replaces the list contents and resets focus and scroll.
// The View's focus state is cleared too, so the selector does not
// track a discarded row.
func (b *ListBox) SetItems(labels []string) {
	b.items = b.items[:0]
	for _, label := range labels {
		b.appendItem(label)
	}
	b.focusIdx = -1
	b.scrollY = 0
	b.smoothRemainY = 0
	b.view.ClearFocus()
	b.Invalidate(b.viewportRect())
}

// AddItem appends a row and returns it.
func (b *ListBox) AddItem(label string) *ListItem {
	it := b.appendItem(label)
	b.Invalidate(it.Bounds())
	return it
}

func (b *ListBox) appendItem(label string) *ListItem {
	it := &ListItem{Label: label, box: b, index: len(b.items)}
	b.items = append(b.items, it)
	return it
}

// Items returns the rows in order.
func (b *ListBox) Items() []*ListItem { return b.items }

// FocusIndex returns the index of the focused row, or -1.
func (b *ListBox) FocusIndex() int { return b.focusIdx }

// SetFocused tells the list whether it is the focused container.
func (b *ListBox) SetFocused(focused bool) {
	if b.focused == focused {
		return
	}
	b.focused = focused
	b.view.OnFocusChanged(focused)
	if focused && b.focusIdx < 0 && len(b.items) > 0 {
		b.FocusItem(0)
	}
}

// FocusItem moves focus to the row at index, clamped to the list, and
// asks the camera to bring it on screen.
func (b *ListBox) FocusItem(index int) {
	if len(b.items) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(b.items) {
		index = len(b.items) - 1
	}
	if index == b.focusIdx {
		return
	}
	b.focusIdx = index
	it := b.items[index]
	b.view.RequestChildFocus(it)
	r := it.Bounds()
	b.view.RequestChildRectOnScreen(it, Rect{W: r.W, H: r.H}, false)
}

// HandleInput processes one frame of navigation input. Key traffic is
// routed through the View so the selector reappears after pointer use.
func (b *ListBox) HandleInput(input *InputState) {
	if input.AnyKeyActivity() {
		b.view.OnKeyDispatch()
	}

	switch {
	case input.KeyRepeated(KeyDown):
		b.FocusItem(b.focusIdx + 1)
	case input.KeyRepeated(KeyUp):
		b.FocusItem(b.focusIdx - 1)
	case input.KeyRepeated(KeyPageDown):
		b.FocusItem(b.focusIdx + b.pageSize())
	case input.KeyRepeated(KeyPageUp):
		b.FocusItem(b.focusIdx - b.pageSize())
	case input.KeyPressed(KeyHome):
		b.FocusItem(0)
	case input.KeyPressed(KeyEnd):
		b.FocusItem(len(b.items) - 1)
	}

	if input.MouseWheelY != 0 {
		b.ScrollBy(0, -input.MouseWheelY*b.rowStride())
	}
}

// Tick advances smooth scrolling and the selector animation by dt
// seconds.
func (b *ListBox) Tick(dt float32) {
	if b.smoothRemainY != 0 {
		step := b.smoothRemainY * clampf(dt*smoothScrollRate, 0, 1)
		b.smoothRemainY -= step
		if absf32(b.smoothRemainY) < 0.5 {
			step += b.smoothRemainY
			b.smoothRemainY = 0
		}
		b.applyScroll(step)
	}
	b.view.Tick(dt)
}

// smoothScrollRate is the exponential approach rate for smooth
// scrolling, per second.
const smoothScrollRate float32 = 12

// Size implements Host.
func (b *ListBox) Size() Vec2 { return b.size }

// Padding implements Host.
func (b *ListBox) Padding() Insets { return b.style.Padding }

// LayoutDirection implements Host.
func (b *ListBox) LayoutDirection() LayoutDirection { return b.dir }

// ScrollBy implements Host with an immediate jump. Any pending smooth
// scroll is dropped so the two cannot fight.
func (b *ListBox) ScrollBy(dx, dy float32) {
	b.smoothRemainY = 0
	b.applyScroll(dy)
}

// SmoothScrollBy implements Host by accumulating the distance, which
// Tick then consumes over the following frames.
func (b *ListBox) SmoothScrollBy(dx, dy float32) {
	b.smoothRemainY += dy
}

// ScrollRectIntoView implements Host with plain edge alignment: scroll
// the minimum distance that brings the rect fully inside the padded
// viewport.
func (b *ListBox) ScrollRectIntoView(child Item, rect Rect, immediate bool) bool {
	bounds := child.Bounds()
	childTop := bounds.Y + rect.Y
	childBottom := childTop + rect.H

	parentTop := b.style.Padding.Top
	parentBottom := b.size.Y - b.style.Padding.Bottom

	offTop := minf(0, childTop-parentTop)
	offBottom := maxf(0, childBottom-parentBottom)

	var dy float32
	if offTop != 0 {
		dy = offTop
	} else {
		dy = minf(childTop-parentTop, offBottom)
	}

	if dy == 0 {
		return false
	}
	if immediate {
		b.ScrollBy(0, dy)
	} else {
		b.SmoothScrollBy(0, dy)
	}
	return true
}

// Invalidate implements Host by accumulating the damage region.
func (b *ListBox) Invalidate(r Rect) {
	b.dirty = b.dirty.Union(r)
	if b.onInvalidate != nil {
		b.onInvalidate(r)
	}
}

// Dirty returns and clears the accumulated damage region.
func (b *ListBox) Dirty() Rect {
	r := b.dirty
	b.dirty = Rect{}
	return r
}

// applyScroll shifts content by dy, clamped to the scroll range, and
// notifies the View of the actual shift.
func (b *ListBox) applyScroll(dy float32) {
	newY := clampf(b.scrollY+dy, 0, b.maxScroll())
	actual := newY - b.scrollY
	if actual == 0 {
		return
	}
	b.scrollY = newY
	b.Invalidate(b.viewportRect())
	b.view.OnScrolled(0, actual)
}

func (b *ListBox) maxScroll() float32 {
	content := float32(len(b.items)) * b.rowStride()
	if len(b.items) > 0 {
		content -= b.style.ItemGap
	}
	inner := b.size.Y - b.style.Padding.Top - b.style.Padding.Bottom
	return maxf(0, content-inner)
}

func (b *ListBox) rowStride() float32 {
	return b.style.ItemHeight + b.style.ItemGap
}

func (b *ListBox) pageSize() int {
	inner := b.size.Y - b.style.Padding.Top - b.style.Padding.Bottom
	n := int(inner / b.rowStride())
	if n < 1 {
		n = 1
	}
	return n
}

func (b *ListBox) itemBounds(index int) Rect {
	return Rect{
		X: b.style.Padding.Left,
		Y: b.style.Padding.Top + float32(index)*b.rowStride() - b.scrollY,
		W: b.size.X - b.style.Padding.Left - b.style.Padding.Right,
		H: b.style.ItemHeight,
	}
}

func (b *ListBox) viewportRect() Rect {
	return Rect{W: b.size.X, H: b.size.Y}
}

// Draw emits the whole list for this frame: background, the selector
// layer behind items, the rows, then the selector layer on top.
func (b *ListBox) Draw(dl *DrawList) {
	dl.PushClipRect(0, 0, b.size.X, b.size.Y)

	dl.AddRect(0, 0, b.size.X, b.size.Y, b.style.BackgroundColor)

	b.view.DrawBackground(dl)

	for i, it := range b.items {
		r := b.itemBounds(i)
		if r.Bottom() < 0 || r.Y > b.size.Y {
			continue
		}
		color := b.style.TextColor
		if it.selected {
			color = b.style.SelectedTextColor
		}
		textY := r.Y + (r.H-FontCharHeight*b.style.FontScale)*0.5
		dl.SetTexture(b.fontTex)
		dl.AddText(r.X+b.style.TextInset, textY, it.Label, color, b.style.FontScale, FontCharWidth, FontCharHeight)
		dl.SetTexture(0)
	}

	b.view.DrawForeground(dl)

	dl.PopClipRect()
}
