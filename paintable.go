package listview

// DrawCallback receives damage notifications from a Paintable when its
// appearance or bounds change. The View implements this and forwards
// the dirty region to its host.
type DrawCallback interface {
	InvalidatePaintable(p Paintable)
}

// Paintable is a selector overlay layer. The View positions it over
// the focused item and drives its visibility; the concrete type decides
// what pixels to emit.
type Paintable interface {
	// Bounds returns the current layer rectangle in container coordinates.
	Bounds() Rect

	// SetBounds moves the layer. Implementations should not invalidate
	// here; the View invalidates both old and new regions itself.
	SetBounds(r Rect)

	// Visible reports whether the layer currently draws anything.
	Visible() bool

	// SetVisible shows or hides the layer.
	SetVisible(visible bool)

	// SetCallback installs the damage sink. Called by the View when
	// the layer is attached; called with nil on detach.
	SetCallback(cb DrawCallback)

	// Draw emits the layer's primitives at its current bounds.
	Draw(dl *DrawList)
}

// RectPaintable is a simple selector layer: a filled rectangle with an
// optional outline. Either color may be transparent.
type RectPaintable struct {
	Fill      uint32
	Outline   uint32
	Thickness float32

	bounds  Rect
	visible bool
	cb      DrawCallback
}

// NewRectPaintable returns a visible layer with the given colors.
func NewRectPaintable(fill, outline uint32, thickness float32) *RectPaintable {
	return &RectPaintable{
		Fill:      fill,
		Outline:   outline,
		Thickness: thickness,
		visible:   true,
	}
}

func (p *RectPaintable) Bounds() Rect     { return p.bounds }
func (p *RectPaintable) SetBounds(r Rect) { p.bounds = r }
func (p *RectPaintable) Visible() bool    { return p.visible }

func (p *RectPaintable) Draw(dl *DrawList) {
	if !p.visible || p.bounds.IsZero() {
		return
	}
	dl.AddRect(p.bounds.X, p.bounds.Y, p.bounds.W, p.bounds.H, p.Fill)
	if p.Thickness > 0 {
		dl.AddRectOutline(p.bounds.X, p.bounds.Y, p.bounds.W, p.bounds.H, p.Outline, p.Thickness)
	}
}

func (p *RectPaintable) SetVisible(visible bool) {
	if p.visible == visible {
		return
	}
	p.visible = visible
	p.InvalidateSelf()
}

func (p *RectPaintable) SetCallback(cb DrawCallback) {
	p.cb = cb
}

// InvalidateSelf reports the layer's current region as dirty.
func (p *RectPaintable) InvalidateSelf() {
	if p.cb != nil {
		p.cb.InvalidatePaintable(p)
	}
}
