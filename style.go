package nodegraph

// Color is a linear RGBA color in [0,1], matching the teacher's vertex
// color convention (ebiten.Vertex's ColorR/G/B/A fields).
type Color struct {
	R, G, B, A float32
}

// StyleColor names an entry in Style's color table.
type StyleColor int

const (
	ColorBg StyleColor = iota
	ColorGrid
	ColorNodeBg
	ColorNodeBorder
	ColorHovNodeBorder
	ColorSelNodeBorder
	ColorNodeSelRect
	ColorNodeSelRectBorder
	ColorHovLinkBorder
	ColorSelLinkBorder
	ColorHighlightLinkBorder
	ColorLinkSelRect
	ColorLinkSelRectBorder
	ColorPinRect
	ColorPinRectBorder
	ColorFlow
	ColorFlowMarker
	ColorGroupBg
	ColorGroupBorder

	styleColorCount
)

// StyleVar names an entry in Style's scalar-var table, pushable the
// same way colors are.
type StyleVar int

const (
	VarNodePadding StyleVar = iota // a single scalar slot, not a vec4
	VarNodeRounding
	VarNodeBorderWidth
	VarHoveredNodeBorderWidth
	VarHoveredNodeBorderOffset
	VarSelectedNodeBorderWidth
	VarSelectedNodeBorderOffset
	VarPinRounding
	VarPinBorderWidth
	VarPinRadius
	VarPinArrowSize
	VarPinArrowWidth
	VarLinkStrength
	VarSourceDirectionX
	VarSourceDirectionY
	VarTargetDirectionX
	VarTargetDirectionY
	VarScrollDuration
	VarFlowMarkerDistance
	VarFlowSpeed
	VarFlowDuration
	VarPivotAlignmentX
	VarPivotAlignmentY
	VarPivotSizeX
	VarPivotSizeY
	VarPivotScaleX
	VarPivotScaleY
	VarGroupRounding
	VarGroupBorderWidth
	VarHighlightConnectedLinks // nonzero means on; kept as float for table symmetry
	VarSnapLinkToPinDir        // nonzero means on

	styleVarCount
)

// Style holds the editor's visual constants: the named color table and
// the named scalar-var table, each with a push/pop stack so the host
// can temporarily override a value (e.g. while drawing a single node).
type Style struct {
	colors [styleColorCount]Color
	vars   [styleVarCount]float64

	colorStack []colorStackEntry
	varStack   []varStackEntry
}

type colorStackEntry struct {
	idx StyleColor
	old Color
}

type varStackEntry struct {
	idx StyleVar
	old float64
}

// DefaultStyle returns the built-in style, matching the teacher's
// pattern of a single constructor returning sane defaults (cf.
// EmitterConfig zero-value fallbacks in particle.go).
func DefaultStyle() *Style {
	s := &Style{}
	s.colors[ColorBg] = Color{0.15, 0.15, 0.17, 1}
	s.colors[ColorGrid] = Color{0.3, 0.3, 0.32, 0.3}
	s.colors[ColorNodeBg] = Color{0.2, 0.2, 0.22, 1}
	s.colors[ColorNodeBorder] = Color{0.4, 0.4, 0.42, 1}
	s.colors[ColorHovNodeBorder] = Color{0.6, 0.6, 0.9, 1}
	s.colors[ColorSelNodeBorder] = Color{1, 0.8, 0.2, 1}
	s.colors[ColorNodeSelRect] = Color{0.3, 0.5, 1, 0.1}
	s.colors[ColorNodeSelRectBorder] = Color{0.3, 0.5, 1, 0.8}
	s.colors[ColorHovLinkBorder] = Color{0.6, 0.6, 0.9, 1}
	s.colors[ColorSelLinkBorder] = Color{1, 0.8, 0.2, 1}
	s.colors[ColorHighlightLinkBorder] = Color{1, 1, 1, 1}
	s.colors[ColorLinkSelRect] = Color{0.3, 0.5, 1, 0.1}
	s.colors[ColorLinkSelRectBorder] = Color{0.3, 0.5, 1, 0.8}
	s.colors[ColorPinRect] = Color{0.8, 0.8, 0.8, 1}
	s.colors[ColorPinRectBorder] = Color{0.4, 0.4, 0.4, 1}
	s.colors[ColorFlow] = Color{1, 1, 0.5, 1}
	s.colors[ColorFlowMarker] = Color{1, 1, 0.8, 1}
	s.colors[ColorGroupBg] = Color{0.18, 0.2, 0.2, 0.5}
	s.colors[ColorGroupBorder] = Color{0.4, 0.5, 0.5, 1}

	s.vars[VarNodeRounding] = 8
	s.vars[VarNodeBorderWidth] = 1
	s.vars[VarHoveredNodeBorderWidth] = 2
	s.vars[VarHoveredNodeBorderOffset] = 0
	s.vars[VarSelectedNodeBorderWidth] = 2
	s.vars[VarSelectedNodeBorderOffset] = 0
	s.vars[VarPinRounding] = 4
	s.vars[VarPinBorderWidth] = 1
	s.vars[VarPinRadius] = 0
	s.vars[VarPinArrowSize] = 0
	s.vars[VarPinArrowWidth] = 0
	s.vars[VarLinkStrength] = 100
	s.vars[VarSourceDirectionX] = 1
	s.vars[VarTargetDirectionX] = -1
	s.vars[VarScrollDuration] = 0.4
	s.vars[VarFlowMarkerDistance] = 30
	s.vars[VarFlowSpeed] = 150
	s.vars[VarFlowDuration] = 2
	s.vars[VarPivotAlignmentX] = 0
	s.vars[VarPivotAlignmentY] = 0.5
	s.vars[VarPivotSizeX] = 0
	s.vars[VarPivotSizeY] = 0
	s.vars[VarPivotScaleX] = 1
	s.vars[VarPivotScaleY] = 1
	s.vars[VarGroupRounding] = 6
	s.vars[VarGroupBorderWidth] = 1
	s.vars[VarHighlightConnectedLinks] = 1
	s.vars[VarSnapLinkToPinDir] = 0
	return s
}

func (s *Style) Color(c StyleColor) Color { return s.colors[c] }
func (s *Style) Var(v StyleVar) float64   { return s.vars[v] }

func (s *Style) PushColor(c StyleColor, col Color) {
	s.colorStack = append(s.colorStack, colorStackEntry{c, s.colors[c]})
	s.colors[c] = col
}

func (s *Style) PopColor(count int) {
	if count <= 0 {
		count = 1
	}
	for i := 0; i < count && len(s.colorStack) > 0; i++ {
		n := len(s.colorStack) - 1
		e := s.colorStack[n]
		s.colors[e.idx] = e.old
		s.colorStack = s.colorStack[:n]
	}
}

func (s *Style) PushVar(v StyleVar, val float64) {
	s.varStack = append(s.varStack, varStackEntry{v, s.vars[v]})
	s.vars[v] = val
}

func (s *Style) PopVar(count int) {
	if count <= 0 {
		count = 1
	}
	for i := 0; i < count && len(s.varStack) > 0; i++ {
		n := len(s.varStack) - 1
		e := s.varStack[n]
		s.vars[e.idx] = e.old
		s.varStack = s.varStack[:n]
	}
}
