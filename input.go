package nodegraph

// MouseButton indexes the host's mouse buttons; the editor doesn't
// hardcode left/right/middle, it maps configured indices onto
// whichever slot the host reports (spec §6 Config button indices).
type MouseButton int

// Key is a host keycode; the core only cares about a handful of named
// keys for shortcuts and navigation (spec §4.4).
type Key int

const (
	KeyNone Key = iota
	KeyDelete
	KeyF
	KeySpace
	KeyX
	KeyC
	KeyV
	KeyD
)

type KeyModifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// InputState is the per-frame input snapshot the host supplies. The
// core never polls a device itself (spec §1 non-goal); SetInput is the
// single point of entry, generalized from the teacher's Input type
// (pointer position/buttons/wheel/mods each frame) to a host-pushed
// rather than ebiten-polled shape.
type InputState struct {
	CursorScreen Point
	ButtonsDown  map[MouseButton]bool
	ButtonsUp    map[MouseButton]bool // released this frame
	Wheel        float64
	KeysDown     map[Key]bool
	Mods         KeyModifiers
	WindowFocus  bool
}

func (in InputState) isDown(b MouseButton) bool  { return in.ButtonsDown != nil && in.ButtonsDown[b] }
func (in InputState) wasReleased(b MouseButton) bool {
	return in.ButtonsUp != nil && in.ButtonsUp[b]
}
func (in InputState) isKeyDown(k Key) bool { return in.KeysDown != nil && in.KeysDown[k] }

// frameProbe is the per-frame hit-test result the editor computes by
// walking the object tree back-to-front. computeFrameProbe fills in the
// hot object and the click flags; active, doubleClicked and
// backgroundDoubleClicked are never set (spec §4.4).
type frameProbe struct {
	hot           Drawable
	hotID         EntityID
	hotKind       objectKind
	active        Drawable
	clicked       bool
	doubleClicked bool

	backgroundClicked       bool
	backgroundDoubleClicked bool
	backgroundClickButton   MouseButton
}

type objectKind int

const (
	objNone objectKind = iota
	objNode
	objPin
	objLink
)

// CursorKind is the cursor shape an action may request.
type CursorKind int

const (
	CursorArrow CursorKind = iota
	CursorMove
	CursorResizeNS
	CursorResizeEW
	CursorResizeNESW
	CursorResizeNWSE
	CursorCrosshair
	CursorNotAllowed
)

// AcceptResult is the tri-state an action's Accept returns (spec §4.4).
type AcceptResult int

const (
	AcceptFalse AcceptResult = iota
	AcceptTrue
	AcceptPossible
)

// Action is the per-kind interaction handler, replacing the source's
// virtual Accept/Process/Reject/Cursor/Name hierarchy with an
// interface implemented once per concrete kind and dispatched from a
// priority-ordered slice (design note: "the arbitration order is data,
// not inheritance").
type Action interface {
	Name() string
	Accept(ctx *Context, probe *frameProbe) AcceptResult
	Process(ctx *Context) bool
	Cursor() CursorKind
}

// interactionState owns the priority-ordered action list, the current
// action (if any), and the last-computed frame probe.
type interactionState struct {
	actions []Action
	current Action
	probe   frameProbe
	cursor  CursorKind

	lastCursorScreen Point
	pressStart       map[MouseButton]Point
	pressObject      map[MouseButton]EntityID
}

func newInteractionState(ctx *Context) *interactionState {
	is := &interactionState{
		pressStart:  make(map[MouseButton]Point),
		pressObject: make(map[MouseButton]EntityID),
	}
	// Priority order from spec §4.4's table.
	is.actions = []Action{
		newNavigateAction(ctx),
		newContextMenuAction(ctx),
		newShortcutAction(ctx),
		newSizeAction(ctx),
		newDragAction(ctx),
		newSelectAction(ctx),
		newCreateAction(ctx),
		newDeleteAction(ctx),
	}
	return is
}

// processFrame runs hit-testing, then arbitrates actions: continue the
// current one if still active, else scan for the first Accept==True.
func (is *interactionState) processFrame(ctx *Context) {
	is.probe = ctx.computeFrameProbe()
	is.cursor = CursorArrow

	if is.current != nil {
		if is.current.Process(ctx) {
			is.cursor = is.current.Cursor()
			return
		}
		is.current = nil
	}

	for _, a := range is.actions {
		switch a.Accept(ctx, &is.probe) {
		case AcceptTrue:
			is.current = a
			is.cursor = a.Cursor()
			a.Process(ctx)
			return
		case AcceptPossible:
			if is.cursor == CursorArrow {
				is.cursor = a.Cursor()
			}
		}
	}
}

func (is *interactionState) CurrentName() string {
	if is.current == nil {
		return "none"
	}
	return is.current.Name()
}
