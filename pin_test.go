package nodegraph

import "testing"

func newTestEditor() *Context {
	return CreateEditor(Config{})
}

func submitTwoNodeGraph(ctx *Context) (n1, n2 EntityID, out, in EntityID) {
	ctx.Begin()
	ctx.BeginNode(1)
	pOut := ctx.BeginPin(11, PinOutput)
	pOut.Pivot = RectFromPosSize(Point{100, 100}, Size{1, 1})
	ctx.EndPin()
	ctx.EndNode(Size{80, 40})

	ctx.BeginNode(2)
	pIn := ctx.BeginPin(12, PinInput)
	pIn.Pivot = RectFromPosSize(Point{300, 100}, Size{1, 1})
	ctx.EndPin()
	ctx.EndNode(Size{80, 40})
	ctx.End()
	return 1, 2, 11, 12
}

func TestCanLinkToAntiReflexive(t *testing.T) {
	ctx := newTestEditor()
	submitTwoNodeGraph(ctx)
	p, _ := ctx.FindPin(11)
	if reason := p.CanLinkTo(p, ctx); reason == LinkOK {
		t.Errorf("expected a pin to reject linking to itself")
	}
}

func TestCanLinkToSymmetricUnderKindSwap(t *testing.T) {
	ctx := newTestEditor()
	submitTwoNodeGraph(ctx)
	a, _ := ctx.FindPin(11)
	b, _ := ctx.FindPin(12)
	if a.CanLinkTo(b, ctx) != LinkOK {
		t.Errorf("expected output->input to be linkable")
	}
	if b.CanLinkTo(a, ctx) != LinkOK {
		t.Errorf("expected input->output to be symmetric with output->input")
	}
}

func TestLinkToSetsConnectionFlags(t *testing.T) {
	ctx := newTestEditor()
	submitTwoNodeGraph(ctx)
	out, _ := ctx.FindPin(11)
	in, _ := ctx.FindPin(12)
	if out.LinkTo(in, ctx) != LinkOK {
		t.Fatalf("expected link to succeed")
	}
	if in.Link != out.ID {
		t.Errorf("expected receiver's Link to reference provider")
	}
	if !in.HasConnection {
		t.Errorf("expected receiver HasConnection true")
	}
}

func TestCanLinkToRejectsSameNode(t *testing.T) {
	ctx := newTestEditor()
	ctx.Begin()
	ctx.BeginNode(1)
	a := ctx.BeginPin(11, PinOutput)
	ctx.EndPin()
	b := ctx.BeginPin(13, PinInput)
	ctx.EndPin()
	ctx.EndNode(Size{80, 40})
	ctx.End()
	if reason := a.CanLinkTo(b, ctx); reason != LinkRejectSameNode {
		t.Errorf("expected LinkRejectSameNode, got %v", reason)
	}
}

func TestAcceptLinkFuncVeto(t *testing.T) {
	ctx := newTestEditor()
	submitTwoNodeGraph(ctx)
	n2, _ := ctx.FindNode(2)
	n2.AcceptLinkFunc = func(receiver, provider EntityID) bool { return false }
	out, _ := ctx.FindPin(11)
	in, _ := ctx.FindPin(12)
	if reason := out.CanLinkTo(in, ctx); reason != LinkRejectVetoed {
		t.Errorf("expected veto to reject the link, got %v", reason)
	}
}
