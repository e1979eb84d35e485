package nodegraph

import "github.com/hajimehoshi/ebiten/v2"

// DrawCmd is one contiguous draw call: a run of indices into the
// channel's vertex/index buffers sharing a clip rect and texture id.
// Vocabulary borrowed from the teacher's batch.go, which accumulates
// ebiten.Vertex/uint32 before a single DrawTriangles32 call — the core
// never issues that call itself (it never rasterizes), but reusing the
// vertex type keeps the host display list concretely typed.
type DrawCmd struct {
	ClipRect  Rect
	TextureID uint64
	IdxCount  int
	IdxOffset int
}

// DrawChannel is one parallel command buffer merged into the host
// display list at end of frame.
type DrawChannel struct {
	Vtx  []ebiten.Vertex
	Idx  []uint32
	Cmds []DrawCmd
}

func (ch *DrawChannel) currentClip() Rect {
	if len(ch.Cmds) == 0 {
		return Rect{}
	}
	return ch.Cmds[len(ch.Cmds)-1].ClipRect
}

func (ch *DrawChannel) currentTexture() uint64 {
	if len(ch.Cmds) == 0 {
		return 0
	}
	return ch.Cmds[len(ch.Cmds)-1].TextureID
}

// AddTriangle appends a single filled triangle in the given color.
func (ch *DrawChannel) AddTriangle(a, b, c Point, col Color, clip Rect, tex uint64) {
	base := uint32(len(ch.Vtx))
	ch.Vtx = append(ch.Vtx,
		vertexOf(a, col), vertexOf(b, col), vertexOf(c, col),
	)
	idxStart := len(ch.Idx)
	ch.Idx = append(ch.Idx, base, base+1, base+2)
	ch.Cmds = append(ch.Cmds, DrawCmd{ClipRect: clip, TextureID: tex, IdxCount: 3, IdxOffset: idxStart})
}

func vertexOf(p Point, col Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(p.X), DstY: float32(p.Y),
		ColorR: col.R, ColorG: col.G, ColorB: col.B, ColorA: col.A,
	}
}

// DrawList is the host-facing stack of channels. The core grows it,
// swaps channels for reordering, transforms vertex ranges from canvas
// space to screen space, and clamps clip rects, then hands the merged
// result to the host. This engine never interprets what is drawn in a
// channel — it is purely a post-process layer, per the teacher's
// batch.go flush semantics generalized from "draw calls" to "channels".
type DrawList struct {
	Channels  []DrawChannel
	current   int
	clipStack []Rect
}

func NewDrawList() *DrawList {
	return &DrawList{Channels: []DrawChannel{{}}, clipStack: []Rect{{}}}
}

// Grow ensures at least n channels exist. New channels start empty;
// they carry no clip rect or texture state from the outer list.
func (dl *DrawList) Grow(n int) {
	for len(dl.Channels) < n {
		dl.Channels = append(dl.Channels, DrawChannel{})
	}
}

// SetCurrent selects which channel subsequent draw commands append to.
func (dl *DrawList) SetCurrent(i int) {
	if i < 0 || i >= len(dl.Channels) {
		debugf("DrawList.SetCurrent: channel %d out of range (have %d)", i, len(dl.Channels))
		return
	}
	dl.current = i
}

func (dl *DrawList) Current() *DrawChannel { return &dl.Channels[dl.current] }

// Swap exchanges the command/index buffers of two channels, used for
// reordering without copying vertices.
func (dl *DrawList) Swap(a, b int) {
	dl.Channels[a], dl.Channels[b] = dl.Channels[b], dl.Channels[a]
}

// TransformRange rewrites every vertex covered by commands in channels
// [begin,end) as pos = (pos + preOffset) * scale + postOffset — how
// canvas-space geometry becomes screen-space after layout.
func (dl *DrawList) TransformRange(begin, end int, preOffset, postOffset Point, scale float64) {
	for ci := begin; ci < end && ci < len(dl.Channels); ci++ {
		ch := &dl.Channels[ci]
		for i := range ch.Vtx {
			x := (float64(ch.Vtx[i].DstX) + preOffset.X) * scale + postOffset.X
			y := (float64(ch.Vtx[i].DstY) + preOffset.Y) * scale + postOffset.Y
			ch.Vtx[i].DstX = float32(x)
			ch.Vtx[i].DstY = float32(y)
		}
	}
}

// TranslateAndClampClip adds offset to every command's clip rect in
// channels [begin,end) and intersects with the outer list's current
// clip rect top.
func (dl *DrawList) TranslateAndClampClip(begin, end int, offset Point) {
	outer := dl.clipStack[len(dl.clipStack)-1]
	for ci := begin; ci < end && ci < len(dl.Channels); ci++ {
		ch := &dl.Channels[ci]
		for i := range ch.Cmds {
			r := ch.Cmds[i].ClipRect.Translate(offset)
			ch.Cmds[i].ClipRect = intersectRect(r, outer)
		}
	}
}

func intersectRect(a, b Rect) Rect {
	if b == (Rect{}) {
		return a
	}
	return Rect{
		Min: Point{maxF(a.Min.X, b.Min.X), maxF(a.Min.Y, b.Min.Y)},
		Max: Point{minF(a.Max.X, b.Max.X), minF(a.Max.Y, b.Max.Y)},
	}
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// PushClip / PopClip manage the outer clip-rect stack; only
// TranslateAndClampClip reads it.
func (dl *DrawList) PushClip(r Rect) { dl.clipStack = append(dl.clipStack, r) }
func (dl *DrawList) PopClip() {
	if len(dl.clipStack) > 1 {
		dl.clipStack = dl.clipStack[:len(dl.clipStack)-1]
	}
}

// Merge concatenates all channels in order into a single flat channel,
// the final step before handing the display list to the host.
func (dl *DrawList) Merge() DrawChannel {
	var out DrawChannel
	for _, ch := range dl.Channels {
		base := uint32(len(out.Vtx))
		out.Vtx = append(out.Vtx, ch.Vtx...)
		idxBase := len(out.Idx)
		for _, idx := range ch.Idx {
			out.Idx = append(out.Idx, idx+base)
		}
		for _, cmd := range ch.Cmds {
			cmd.IdxOffset += idxBase
			out.Cmds = append(out.Cmds, cmd)
		}
	}
	return out
}
