package nodegraph

import "testing"

func submitLinkableGraph(ctx *Context) (outPinID, inPinID EntityID) {
	ctx.BeginNode(1)
	out := ctx.BeginPin(11, PinOutput)
	out.Pivot = RectFromPosSize(Point{100, 100}, Size{12, 12})
	ctx.EndPin()
	ctx.EndNode(Size{120, 60})

	ctx.BeginNode(2)
	in := ctx.BeginPin(12, PinInput)
	in.Pivot = RectFromPosSize(Point{300, 100}, Size{12, 12})
	ctx.EndPin()
	ctx.EndNode(Size{120, 60})
	return 11, 12
}

// TestDragFromPinToCompatiblePinCreatesLink drives a drag from one
// pin's pivot to a compatible pin's pivot across three frames and
// checks the host's create-query protocol reports a linkable candidate
// (spec §8 scenario "create a link by dragging between pins").
func TestDragFromPinToCompatiblePinCreatesLink(t *testing.T) {
	ctx := CreateEditor(Config{})
	ctx.Canvas.SetWindow(Point{}, Size{800, 600})

	var outID, inID EntityID
	submit := func() { outID, inID = submitLinkableGraph(ctx) }

	press := InputState{CursorScreen: Point{106, 106}, ButtonsDown: map[MouseButton]bool{0: true}, WindowFocus: true}
	driveFrame(ctx, press, submit)

	move := InputState{CursorScreen: Point{306, 106}, ButtonsDown: map[MouseButton]bool{0: true}, WindowFocus: true}
	driveFrame(ctx, move, submit)

	release := InputState{CursorScreen: Point{306, 106}, ButtonsUp: map[MouseButton]bool{0: true}, WindowFocus: true}
	driveFrame(ctx, release, submit)

	if !ctx.BeginCreate() {
		t.Fatalf("expected a pending create candidate after dragging between pins")
	}
	start, end, ok := ctx.QueryNewLink()
	if !ok {
		t.Fatalf("expected QueryNewLink to report a link candidate")
	}
	if start != outID || end != inID {
		t.Errorf("expected candidate endpoints (%v,%v), got (%v,%v)", outID, inID, start, end)
	}
	if !ctx.AcceptNewItem() {
		t.Errorf("expected AcceptNewItem to succeed for a compatible pin pair")
	}
	ctx.EndCreate()

	in, _ := ctx.FindPin(inID)
	if in.Link != outID || !in.HasConnection {
		t.Errorf("expected the receiver pin to record the new link, got Link=%v HasConnection=%v", in.Link, in.HasConnection)
	}
}

// TestDragFromPinToSameNodePinIsRejectedOnAccept exercises the reject
// path: the candidate sits on the same node as the origin, so AcceptNewItem
// must report failure instead of creating a link (spec §8 scenario
// "reject an incompatible link").
func TestDragFromPinToSameNodePinIsRejectedOnAccept(t *testing.T) {
	ctx := CreateEditor(Config{})
	ctx.Canvas.SetWindow(Point{}, Size{800, 600})

	var a, b EntityID
	submit := func() {
		ctx.BeginNode(1)
		pa := ctx.BeginPin(11, PinOutput)
		pa.Pivot = RectFromPosSize(Point{100, 100}, Size{12, 12})
		ctx.EndPin()
		pb := ctx.BeginPin(13, PinInput)
		pb.Pivot = RectFromPosSize(Point{140, 100}, Size{12, 12})
		ctx.EndPin()
		ctx.EndNode(Size{120, 60})
		a, b = 11, 13
	}

	press := InputState{CursorScreen: Point{106, 106}, ButtonsDown: map[MouseButton]bool{0: true}, WindowFocus: true}
	driveFrame(ctx, press, submit)

	release := InputState{CursorScreen: Point{146, 106}, ButtonsUp: map[MouseButton]bool{0: true}, WindowFocus: true}
	driveFrame(ctx, release, submit)

	_, _, ok := ctx.QueryNewLink()
	if !ok {
		t.Fatalf("expected a candidate pin under the cursor even though it is incompatible")
	}
	if ctx.AcceptNewItem() {
		t.Errorf("expected AcceptNewItem to fail for two pins on the same node")
	}
	ctx.EndCreate()

	pin, _ := ctx.FindPin(b)
	if pin.HasConnection {
		t.Errorf("expected the rejected candidate to remain unlinked")
	}
	_ = a
}
