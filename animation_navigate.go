package nodegraph

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NavigateAnimation eases the canvas scroll and zoom from their
// current values to a target over a duration, using ease-out-quad —
// grounded on the teacher's camera.go scrollAnim, which drives the
// same two-tween (scroll X/Y, zoom) shape with gween.
type NavigateAnimation struct {
	animation

	scrollX *gween.Tween
	scrollY *gween.Tween
	zoom    *gween.Tween

	canvas *Canvas
	onDone func()
}

func newNavigateAnimation(canvas *Canvas) *NavigateAnimation {
	return &NavigateAnimation{canvas: canvas}
}

// NavigateTo starts easing the canvas to targetOrigin/targetZoom over
// duration seconds. duration == 0 snaps immediately.
func (n *NavigateAnimation) NavigateTo(targetOrigin Point, targetZoom float64, duration float64) {
	start := n.canvas.Origin()
	startZoom := n.canvas.Zoom()
	if duration <= 0 {
		n.canvas.SetOrigin(targetOrigin)
		n.canvas.SetZoom(targetZoom)
		n.Stop()
		return
	}
	n.scrollX = gween.New(float32(start.X), float32(targetOrigin.X), float32(duration), ease.OutQuad)
	n.scrollY = gween.New(float32(start.Y), float32(targetOrigin.Y), float32(duration), ease.OutQuad)
	n.zoom = gween.New(float32(startZoom), float32(targetZoom), float32(duration), ease.OutQuad)
	n.animation.Play(duration)
}

func (n *NavigateAnimation) update(dt float64) {
	if !n.IsPlaying() {
		return
	}
	x, doneX := n.scrollX.Update(float32(dt))
	y, _ := n.scrollY.Update(float32(dt))
	z, doneZ := n.zoom.Update(float32(dt))
	n.canvas.SetOrigin(Point{float64(x), float64(y)})
	n.canvas.SetZoom(float64(z))
	if doneX && doneZ {
		n.Stop()
		if n.onDone != nil {
			n.onDone()
		}
	}
}

// navigationZoomMargin is c_NavigationZoomMargin from the spec: content
// bounds cover at most (1 - margin) of the visible area after a
// NavigateTo zoom-to-fit.
const navigationZoomMargin = 0.1

// computeFitZoom picks a zoom such that bounds covers at most
// (1-navigationZoomMargin) of the window.
func computeFitZoom(bounds Rect, window Size, zoomLevels []float64) float64 {
	bs := bounds.Size()
	if bs.W <= 0 || bs.H <= 0 {
		return 1
	}
	margin := 1 - navigationZoomMargin
	zx := (window.W * margin) / bs.W
	zy := (window.H * margin) / bs.H
	target := minF(zx, zy)
	best := zoomLevels[0]
	for _, z := range zoomLevels {
		if z <= target && z > best {
			best = z
		}
	}
	if target < zoomLevels[0] {
		best = target
	}
	return best
}
