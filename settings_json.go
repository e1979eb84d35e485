package nodegraph

import (
	"encoding/json"
	"strconv"
)

// The JSON schema itself is external to the core's concern per spec
// §1 ("the JSON codec itself is external; only the schema is part of
// this spec"); stdlib encoding/json is the one justified stdlib
// dependency in this module (see DESIGN.md) since nothing in the
// example pack offers a preferred third-party codec for this shape
// and the spec explicitly scopes the library choice out.

type jsonVec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonNodeSettings struct {
	Location  jsonVec2  `json:"location"`
	Size      jsonVec2  `json:"size"`
	GroupSize *jsonVec2 `json:"group_size,omitempty"`
}

type jsonView struct {
	Scroll jsonVec2 `json:"scroll"`
	Zoom   float64  `json:"zoom"`
}

type jsonDocument struct {
	Nodes          map[string]jsonNodeSettings `json:"nodes"`
	Selection      []uint64                    `json:"selection"`
	View           jsonView                    `json:"view"`
	GeneratorState uint64                      `json:"state.generator_state"`
}

func encodeNodeSettings(rec *NodeSettings) []byte {
	js := jsonNodeSettings{
		Location: jsonVec2{rec.Location.X, rec.Location.Y},
		Size:     jsonVec2{rec.Size.W, rec.Size.H},
	}
	if rec.hasGroup {
		js.GroupSize = &jsonVec2{rec.GroupSize.W, rec.GroupSize.H}
	}
	data, _ := json.Marshal(js)
	return data
}

// decodeNodeSettings parses a single node's JSON. Required key
// "location" missing causes the record to be skipped (spec §4.7).
func (s *settingsStore) decodeNodeSettings(id EntityID, data []byte) bool {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return false
	}
	if _, ok := keys["location"]; !ok {
		return false
	}
	var js jsonNodeSettings
	if err := json.Unmarshal(data, &js); err != nil {
		return false
	}
	rec := s.nodeRecord(id)
	rec.Location = Point{js.Location.X, js.Location.Y}
	rec.Size = Size{js.Size.W, js.Size.H}
	if js.GroupSize != nil {
		rec.hasGroup = true
		rec.GroupSize = Size{js.GroupSize.W, js.GroupSize.H}
	}
	return true
}

func (s *settingsStore) encodeDocument() []byte {
	doc := jsonDocument{
		Nodes:          make(map[string]jsonNodeSettings, len(s.nodes)),
		View:           jsonView{Scroll: jsonVec2{s.view.Scroll.X, s.view.Scroll.Y}, Zoom: s.view.Zoom},
		GeneratorState: s.generatorState,
	}
	for id, rec := range s.nodes {
		js := jsonNodeSettings{
			Location: jsonVec2{rec.Location.X, rec.Location.Y},
			Size:     jsonVec2{rec.Size.W, rec.Size.H},
		}
		if rec.hasGroup {
			js.GroupSize = &jsonVec2{rec.GroupSize.W, rec.GroupSize.H}
		}
		doc.Nodes[idKey(id)] = js
	}
	for _, id := range s.selection {
		doc.Selection = append(doc.Selection, uint64(id))
	}
	data, _ := json.Marshal(doc)
	return data
}

// decodeDocument parses the whole-document JSON. Required key "nodes"
// missing causes the whole document to be skipped, leaving defaults in
// place (spec §7).
func (s *settingsStore) decodeDocument(data []byte) bool {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}
	if doc.Nodes == nil {
		return false
	}
	for key, js := range doc.Nodes {
		id := keyToID(key)
		rec := s.nodeRecord(id)
		rec.Location = Point{js.Location.X, js.Location.Y}
		rec.Size = Size{js.Size.W, js.Size.H}
		if js.GroupSize != nil {
			rec.hasGroup = true
			rec.GroupSize = Size{js.GroupSize.W, js.GroupSize.H}
		}
	}
	s.selection = s.selection[:0]
	for _, raw := range doc.Selection {
		s.selection = append(s.selection, EntityID(raw))
	}
	s.view = ViewSettings{Scroll: Point{doc.View.Scroll.X, doc.View.Scroll.Y}, Zoom: doc.View.Zoom}
	if doc.GeneratorState > s.generatorState {
		s.generatorState = doc.GeneratorState
	}
	return true
}

func idKey(id EntityID) string {
	return strconv.FormatUint(uint64(id), 10)
}

func keyToID(key string) EntityID {
	v, _ := strconv.ParseUint(key, 10, 64)
	return EntityID(v)
}

