package nodegraph

import "runtime"

// CanvasSizeMode governs how the view adapts when the host window resizes.
type CanvasSizeMode int

const (
	FitVerticalView CanvasSizeMode = iota
	FitHorizontalView
	CenterOnly
)

// defaultZoomLevels is the discrete wheel-zoom table used when
// Config.CustomZoomLevels is nil.
var defaultZoomLevels = []float64{
	0.1, 0.15, 0.2, 0.25, 0.33, 0.5, 0.75, 1.0,
	1.25, 1.5, 2.0, 2.5, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0,
}

// Config configures an Editor at construction. It is a plain struct
// following the teacher's RunConfig (willow.go) and EmitterConfig
// (particle.go) style: flat fields, zero value means "use the
// default". The six settings callbacks are optional function fields
// rather than a registry, matching that same plain-struct texture.
type Config struct {
	// SettingsFile holds a settings path for the host's own use. The
	// editor never reads it; settings load and save only through the
	// callbacks below.
	SettingsFile string

	// LoadSettings/SaveSettings persist the whole-document JSON blob.
	// Save returning false leaves the dirty bit set for retry next frame.
	LoadSettings func() ([]byte, bool)
	SaveSettings func(data []byte, reason DirtyReason) bool

	// LoadNodeSettings/SaveNodeSettings persist a single node's settings
	// JSON, keyed by node id.
	LoadNodeSettings func(id EntityID) ([]byte, bool)
	SaveNodeSettings func(id EntityID, data []byte, reason DirtyReason) bool

	// BeginSave/EndSave bracket a save cycle; both optional.
	BeginSave func()
	EndSave   func()

	// UserPointer is opaque host data threaded through callbacks.
	UserPointer any

	// CustomZoomLevels overrides the default wheel-zoom table.
	CustomZoomLevels []float64

	CanvasSizeMode CanvasSizeMode

	// Mouse button indices; defaults {0,0,1,1} applied in CreateEditor.
	DragButtonIndex        int
	SelectButtonIndex      int
	NavigateButtonIndex    int
	ContextMenuButtonIndex int

	EnableSmoothZoom bool
	SmoothZoomPower  float64

	// Debug enables contract-violation assertions (panics) and stderr
	// tracing, matching the teacher's globalDebug/SetDebugMode gate.
	Debug bool
}

// withDefaults returns a copy of cfg with zero-value fields replaced
// by their documented defaults.
func (cfg Config) withDefaults() Config {
	if cfg.CustomZoomLevels == nil {
		cfg.CustomZoomLevels = defaultZoomLevels
	}
	if cfg.DragButtonIndex == 0 && cfg.SelectButtonIndex == 0 &&
		cfg.NavigateButtonIndex == 0 && cfg.ContextMenuButtonIndex == 0 {
		cfg.DragButtonIndex = 0
		cfg.SelectButtonIndex = 0
		cfg.NavigateButtonIndex = 1
		cfg.ContextMenuButtonIndex = 1
	}
	if cfg.SmoothZoomPower == 0 {
		if runtime.GOOS == "darwin" {
			cfg.SmoothZoomPower = 1.1
		} else {
			cfg.SmoothZoomPower = 1.3
		}
	}
	return cfg
}
