package rubberband

import "trove/internal/domain"

// ItemRect pairs an entity with its bounding box in container-local,
// scroll-adjusted coordinates. The rendering layer recomputes these
// after layout.
type ItemRect struct {
	Key  domain.Key
	Rect domain.Rect
}

// State holds the rubber-band machine. A press over an item defers the
// band until the pointer has travelled past the start threshold; a
// press over empty space starts it immediately.
type State struct {
	Active     bool         // a band rectangle is live
	Pending    bool         // pressed over an item, waiting for threshold
	PressPoint domain.Point // where the pointer went down
	Additive   bool         // Ctrl/Cmd held at press time
	Band       domain.Rect  // current normalized rectangle, valid when Active
}
