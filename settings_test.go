package nodegraph

import "testing"

func TestNodeSettingsRoundTrip(t *testing.T) {
	rec := &NodeSettings{Location: Point{12, 34}, Size: Size{56, 78}}
	data := encodeNodeSettings(rec)

	s := newSettingsStore()
	if ok := s.decodeNodeSettings(EntityID(1), data); !ok {
		t.Fatalf("decode failed")
	}
	got := s.nodes[1]
	if got.Location != rec.Location || got.Size != rec.Size {
		t.Errorf("round trip mismatch: want %+v, got %+v", rec, got)
	}
}

func TestDocumentRoundTripPreservesGeneratorState(t *testing.T) {
	s := newSettingsStore()
	s.nodeRecord(1).Location = Point{1, 2}
	s.nodeRecord(1).Size = Size{3, 4}
	s.view = ViewSettings{Scroll: Point{9, 9}, Zoom: 2}
	s.selection = []EntityID{1}
	s.generatorState = 7

	data := s.encodeDocument()

	restored := newSettingsStore()
	if ok := restored.decodeDocument(data); !ok {
		t.Fatalf("decodeDocument failed")
	}
	if restored.generatorState != 7 {
		t.Errorf("expected generator state to round trip, got %d", restored.generatorState)
	}
	if restored.view != s.view {
		t.Errorf("expected view to round trip: want %+v, got %+v", s.view, restored.view)
	}
	rec, ok := restored.nodes[1]
	wantLoc, wantSize := Point{1, 2}, Size{3, 4}
	if !ok || rec.Location != wantLoc || rec.Size != wantSize {
		t.Errorf("expected node 1 to round trip, got %+v", rec)
	}
}

func TestDecodeDocumentRejectsMissingNodesKey(t *testing.T) {
	s := newSettingsStore()
	if ok := s.decodeDocument([]byte(`{"view":{"scroll":{"x":0,"y":0},"zoom":1}}`)); ok {
		t.Errorf("expected decode to fail when \"nodes\" key is absent")
	}
}

func TestDirtyClearsOnlyOnSuccessfulSave(t *testing.T) {
	s := newSettingsStore()
	rec := s.nodeRecord(1)
	rec.makeDirty(DirtyPosition)

	fail := true
	cfg := Config{
		SaveNodeSettings: func(id EntityID, data []byte, reason DirtyReason) bool {
			return !fail
		},
	}
	s.runSaveCycle(&cfg)
	if !rec.dirty {
		t.Errorf("expected dirty to survive a failed save")
	}

	fail = false
	s.runSaveCycle(&cfg)
	if rec.dirty {
		t.Errorf("expected dirty to clear after a successful save")
	}
}
