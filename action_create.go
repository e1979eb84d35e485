package nodegraph

// createState is the None -> Possible -> Create -> None sequence from
// spec §4.4's create-item action details.
type createState int

const (
	createNone createState = iota
	createPossible
	createPending
)

// createAction handles dragging from a live pin to either another
// compatible pin (new link) or empty canvas (new node).
type createAction struct {
	ctx *Context

	state      createState
	originPin  EntityID
	candidatePin EntityID // 0 if candidate is empty canvas
	cursorCanvas Point

	accepted bool
	rejected bool
}

func newCreateAction(ctx *Context) *createAction { return &createAction{ctx: ctx} }

func (a *createAction) Name() string { return "create" }

func (a *createAction) Accept(ctx *Context, probe *frameProbe) AcceptResult {
	btn := MouseButton(ctx.cfg.DragButtonIndex)
	if probe.hotKind != objPin || !ctx.input.isDown(btn) {
		return AcceptFalse
	}
	pin, ok := ctx.store.findPin(probe.hotID)
	if !ok || !pin.live {
		return AcceptFalse
	}
	a.originPin = pin.ID
	a.state = createPossible
	return AcceptTrue
}

func (a *createAction) Process(ctx *Context) bool {
	btn := MouseButton(ctx.cfg.DragButtonIndex)
	a.cursorCanvas = ctx.Canvas.FromScreen(ctx.input.CursorScreen)
	a.candidatePin = a.findCandidatePin(ctx)

	if ctx.input.isDown(btn) {
		return true
	}

	// Button released: finalize through the query protocol. The host
	// drives QueryNewLink/QueryNewNode + AcceptNewItem/RejectNewItem
	// during its BeginCreate block this same frame; record the pending
	// candidate so ctx.inCreate() queries see it.
	ctx.pendingCreate = &pendingCreateItem{
		originPin:    a.originPin,
		candidatePin: a.candidatePin,
		canvasPoint:  a.cursorCanvas,
	}
	a.state = createNone
	return false
}

func (a *createAction) findCandidatePin(ctx *Context) EntityID {
	var best EntityID
	ctx.store.eachPin(func(p *Pin) {
		if !p.live || p.ID == a.originPin {
			return
		}
		if p.HitPoint(a.cursorCanvas) {
			best = p.ID
		}
	})
	return best
}

func (a *createAction) Cursor() CursorKind { return CursorCrosshair }

// pendingCreateItem is the candidate the host's BeginCreate block
// queries this frame, mirroring the source's Possible-state candidate.
type pendingCreateItem struct {
	originPin    EntityID
	candidatePin EntityID
	canvasPoint  Point
	resolved     bool
}
