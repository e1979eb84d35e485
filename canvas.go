package nodegraph

import "math"

// Canvas is the coordinate engine: it maps editor-space geometry through
// pan and zoom into screen space. Modeled on the teacher's Camera type
// (windowScreenPos/windowScreenSize/scroll/zoom with precomputed inverse
// zoom), generalized from a render-camera into a pure coordinate mapper
// that never touches a graphics context.
type Canvas struct {
	windowScreenPos  Point
	windowScreenSize Size

	clientOrigin Point
	clientSize   Size

	zoom    float64
	invZoom float64

	alignToPixel bool
}

func NewCanvas() *Canvas {
	c := &Canvas{zoom: 1, invZoom: 1}
	return c
}

// SetWindow updates the screen-space rectangle the canvas is drawn into.
func (c *Canvas) SetWindow(pos Point, size Size) {
	c.windowScreenPos = pos
	c.windowScreenSize = size
}

// Zoom returns the current per-axis zoom factor.
func (c *Canvas) Zoom() float64 { return c.zoom }

// SetZoom sets the zoom factor, recomputing the cached inverse. Zoom
// must be positive; callers are expected to clamp before calling (a
// negative zoom is a programming misuse, see debugf in editor.go).
func (c *Canvas) SetZoom(z float64) {
	if z <= 0 {
		debugf("Canvas.SetZoom: non-positive zoom %v ignored", z)
		return
	}
	c.zoom = z
	c.invZoom = 1 / z
	c.recomputeClientSize()
}

func (c *Canvas) recomputeClientSize() {
	// When zoom < 1 the effective client area grows by the inverse so
	// the user can author at design resolution while seeing a shrunken
	// view, matching the teacher's camera visible-bounds expansion.
	c.clientSize = Size{
		W: c.windowScreenSize.W * c.invZoom,
		H: c.windowScreenSize.H * c.invZoom,
	}
}

// Origin returns the client-space origin (scroll position).
func (c *Canvas) Origin() Point { return c.clientOrigin }

// SetOrigin sets the client-space origin, optionally snapping to whole
// pixels when pixel alignment is requested.
func (c *Canvas) SetOrigin(p Point) {
	if c.alignToPixel {
		p = Point{math.Floor(p.X), math.Floor(p.Y)}
	}
	c.clientOrigin = p
}

func (c *Canvas) SetPixelAlign(on bool) { c.alignToPixel = on }

// FromScreen converts a screen-space point to canvas (editor) space.
func (c *Canvas) FromScreen(p Point) Point {
	return Point{
		X: (p.X - c.windowScreenPos.X - c.clientOrigin.X) * c.invZoom,
		Y: (p.Y - c.windowScreenPos.Y - c.clientOrigin.Y) * c.invZoom,
	}
}

// ToScreen converts a canvas-space point to screen space.
func (c *Canvas) ToScreen(p Point) Point {
	return Point{
		X: p.X*c.zoom + c.clientOrigin.X + c.windowScreenPos.X,
		Y: p.Y*c.zoom + c.clientOrigin.Y + c.windowScreenPos.Y,
	}
}

// FromClient converts a client-space point (screen minus window
// translation) to canvas space, omitting the window offset.
func (c *Canvas) FromClient(p Point) Point {
	return Point{(p.X - c.clientOrigin.X) * c.invZoom, (p.Y - c.clientOrigin.Y) * c.invZoom}
}

// ToClient converts a canvas-space point to client space.
func (c *Canvas) ToClient(p Point) Point {
	return Point{p.X*c.zoom + c.clientOrigin.X, p.Y*c.zoom + c.clientOrigin.Y}
}

// GetVisibleBounds returns the editor-space rectangle covered by the window.
func (c *Canvas) GetVisibleBounds() Rect {
	topLeft := c.FromScreen(c.windowScreenPos)
	size := Size{c.windowScreenSize.W * c.invZoom, c.windowScreenSize.H * c.invZoom}
	return RectFromPosSize(topLeft, size)
}

// ScreenSize returns the window's screen-space size.
func (c *Canvas) ScreenSize() Size { return c.windowScreenSize }

// ZoomAroundScreenPoint changes zoom to newZoom while keeping the
// canvas-space point under the given screen-space point fixed, the
// core mechanic behind wheel-zoom (spec §8 scenario 6).
func (c *Canvas) ZoomAroundScreenPoint(screenPt Point, newZoom float64) {
	if newZoom <= 0 {
		return
	}
	before := c.FromScreen(screenPt)
	c.SetZoom(newZoom)
	after := c.FromScreen(screenPt)
	delta := after.Sub(before).Scale(c.zoom)
	c.SetOrigin(c.clientOrigin.Add(delta))
}
