package nodegraph

// animState is the lifecycle state shared by every concrete animation,
// grounded on the teacher's animation.go TweenGroup state machine
// (state/time/duration, Play/Update/Stop).
type animState int

const (
	animIdle animState = iota
	animPlaying
)

// animation is the base every concrete animation embeds. Play
// registers it with the editor's live-animation list; Update advances
// it and dispatches onUpdate/onFinish, matching the teacher's base
// class contract.
type animation struct {
	state    animState
	time     float64
	duration float64

	onUpdate func(progress float64)
	onFinish func()
}

func (a *animation) Play(duration float64) {
	a.state = animPlaying
	a.time = 0
	a.duration = duration
}

func (a *animation) Stop() {
	a.state = animIdle
}

func (a *animation) IsPlaying() bool { return a.state == animPlaying }

// update advances by dt seconds and returns whether the animation is
// still playing afterward.
func (a *animation) update(dt float64) bool {
	if a.state != animPlaying {
		return false
	}
	a.time += dt
	progress := 1.0
	if a.duration > 0 {
		progress = a.time / a.duration
	}
	if progress >= 1 {
		progress = 1
		if a.onUpdate != nil {
			a.onUpdate(progress)
		}
		if a.onFinish != nil {
			a.onFinish()
		}
		a.Stop()
		return false
	}
	if a.onUpdate != nil {
		a.onUpdate(progress)
	}
	return true
}

// animationHost advances every live animation once per frame at a
// single point inside End, per spec §5 ("no suspension points").
type animationHost struct {
	navigate *NavigateAnimation
	flows    map[EntityID]*FlowAnimation
}

func newAnimationHost() *animationHost {
	return &animationHost{flows: make(map[EntityID]*FlowAnimation)}
}

func (h *animationHost) update(dt float64) {
	if h.navigate != nil {
		h.navigate.update(dt)
	}
	for _, f := range h.flows {
		f.update(dt)
	}
}
