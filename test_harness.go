package nodegraph

// syntheticPointerEvent is a single injected pointer event in screen
// coordinates, fed through the same per-frame input pipeline as real
// input. Grounded directly on the teacher's inject.go, which queues
// these for automated driving of its ebiten.Game loop; here they feed
// Context.SetInput instead of a live mouse.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
}

// InputInjector accumulates a queue of synthetic pointer events and
// applies exactly one per call to Step, mirroring inject.go's
// one-event-per-frame consumption.
type InputInjector struct {
	queue []syntheticPointerEvent
	mods  KeyModifiers
	focus bool
}

func NewInputInjector() *InputInjector { return &InputInjector{focus: true} }

func (inj *InputInjector) InjectPress(x, y float64, btn MouseButton) {
	inj.queue = append(inj.queue, syntheticPointerEvent{x, y, true, btn})
}

func (inj *InputInjector) InjectMove(x, y float64, btn MouseButton) {
	inj.queue = append(inj.queue, syntheticPointerEvent{x, y, true, btn})
}

func (inj *InputInjector) InjectRelease(x, y float64, btn MouseButton) {
	inj.queue = append(inj.queue, syntheticPointerEvent{x, y, false, btn})
}

func (inj *InputInjector) InjectClick(x, y float64, btn MouseButton) {
	inj.InjectPress(x, y, btn)
	inj.InjectRelease(x, y, btn)
}

// InjectDrag queues a full drag sequence: press at (fromX,fromY),
// linearly-interpolated moves over frames-2 intermediate frames, and
// release at (toX,toY). Minimum frames is 2.
func (inj *InputInjector) InjectDrag(fromX, fromY, toX, toY float64, frames int, btn MouseButton) {
	if frames < 2 {
		frames = 2
	}
	inj.InjectPress(fromX, fromY, btn)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		inj.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, btn)
	}
	inj.InjectRelease(toX, toY, btn)
}

// Step pops one queued event (if any) and feeds it to ctx as this
// frame's InputState; the caller runs Begin/End around it. Returns
// false when the queue was empty (caller should supply its own input and drive the
// frame manually that tick).
func (inj *InputInjector) Step(ctx *Context) bool {
	if len(inj.queue) == 0 {
		return false
	}
	evt := inj.queue[0]
	inj.queue = inj.queue[1:]
	buttons := map[MouseButton]bool{}
	up := map[MouseButton]bool{}
	if evt.pressed {
		buttons[evt.button] = true
	} else {
		up[evt.button] = true
	}
	ctx.SetInput(InputState{
		CursorScreen: Point{evt.screenX, evt.screenY},
		ButtonsDown:  buttons,
		ButtonsUp:    up,
		Mods:         inj.mods,
		WindowFocus:  inj.focus,
	})
	return true
}

// testStep is one named, asserting step in a TestRunner script,
// grounded on the teacher's debug.go TestRunner/testStep sequencing.
type testStep struct {
	name   string
	action func(ctx *Context, inj *InputInjector)
	assert func(ctx *Context) error
}

// TestRunner drives a named sequence of frames against an editor
// Context, used to express the end-to-end scenarios from spec §8 as
// ordinary Go tests without a live GUI.
type TestRunner struct {
	ctx  *Context
	inj  *InputInjector
	steps []testStep
}

func NewTestRunner(ctx *Context) *TestRunner {
	return &TestRunner{ctx: ctx, inj: NewInputInjector()}
}

func (r *TestRunner) Step(name string, action func(ctx *Context, inj *InputInjector), assert func(ctx *Context) error) {
	r.steps = append(r.steps, testStep{name: name, action: action, assert: assert})
}

// Run executes every step in order: each step's action runs, then the
// injector drains any queued synthetic events (one per frame, each
// wrapped in its own Begin/End), then the step's assertion runs
// against the resulting state.
func (r *TestRunner) Run() []error {
	var errs []error
	for _, s := range r.steps {
		if s.action != nil {
			s.action(r.ctx, r.inj)
		}
		for {
			r.ctx.Begin()
			consumed := r.inj.Step(r.ctx)
			r.ctx.End()
			if !consumed {
				break
			}
		}
		if s.assert != nil {
			if err := s.assert(r.ctx); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}
