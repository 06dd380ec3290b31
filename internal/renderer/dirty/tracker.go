package dirty

import "github.com/dshills/glyphpaint/internal/geometry"

// Tracker records dirty regions and coalesces them.
// It is owned by a single render loop and is not safe for concurrent use.
type Tracker struct {
	// regions contains the current dirty regions, clipped to the screen.
	regions []geometry.Rect

	// fullRedraw indicates the entire screen needs redrawing.
	fullRedraw bool

	// maxRegions is the maximum number of regions before forcing full redraw.
	maxRegions int

	screen geometry.Rect

	// coalesceThreshold is the fraction of the screen that triggers full redraw.
	coalesceThreshold float64
}

// NewTracker creates a tracker for a screen of the given size.
// Negative dimensions are treated as zero.
func NewTracker(width, height int) *Tracker {
	return &Tracker{
		regions:           make([]geometry.Rect, 0, 16),
		maxRegions:        32,
		screen:            screenRect(width, height),
		coalesceThreshold: 0.5,
	}
}

func screenRect(width, height int) geometry.Rect {
	return geometry.Rect{Max: geometry.Pt(max(0, width), max(0, height))}
}

// MarkFullRedraw marks the entire screen as needing redraw.
func (t *Tracker) MarkFullRedraw() {
	t.fullRedraw = true
	t.regions = t.regions[:0]
}

// MarkRegion marks a rectangular region as dirty.
// The region is clipped to the screen; empty results are dropped.
func (t *Tracker) MarkRegion(r geometry.Rect) {
	if t.fullRedraw {
		return
	}

	r = r.Intersect(t.screen)
	if r.Empty() {
		return
	}

	for i := range t.regions {
		if merged, ok := merge(t.regions[i], r); ok {
			t.regions[i] = merged
			t.coalesce()
			t.checkThreshold()
			return
		}
	}

	t.regions = append(t.regions, r)
	if len(t.regions) > t.maxRegions {
		t.coalesce()
	}
	if len(t.regions) > t.maxRegions {
		t.MarkFullRedraw()
		return
	}
	t.checkThreshold()
}

// coalesce merges overlapping or adjacent regions until none remain.
func (t *Tracker) coalesce() {
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(t.regions) && !changed; i++ {
			for j := i + 1; j < len(t.regions); j++ {
				if merged, ok := merge(t.regions[i], t.regions[j]); ok {
					t.regions[i] = merged
					t.regions = append(t.regions[:j], t.regions[j+1:]...)
					changed = true
					break
				}
			}
		}
	}
}

func (t *Tracker) checkThreshold() {
	if t.dirtyAreaRatio() > t.coalesceThreshold {
		t.MarkFullRedraw()
	}
}

// dirtyAreaRatio returns the ratio of dirty area to total screen area.
func (t *Tracker) dirtyAreaRatio() float64 {
	total := area(t.screen)
	if total == 0 {
		return 0
	}
	dirty := 0
	for _, r := range t.regions {
		dirty += area(r)
	}
	return float64(dirty) / float64(total)
}

// IsDirty returns true if anything is marked dirty.
func (t *Tracker) IsDirty() bool {
	return t.fullRedraw || len(t.regions) > 0
}

// NeedsFullRedraw returns true if a full redraw is needed.
func (t *Tracker) NeedsFullRedraw() bool {
	return t.fullRedraw
}

// Regions returns a copy of the current dirty regions.
// If a full redraw is needed, returns a single region covering the screen.
func (t *Tracker) Regions() []geometry.Rect {
	if t.fullRedraw {
		if t.screen.Empty() {
			return nil
		}
		return []geometry.Rect{t.screen}
	}
	out := make([]geometry.Rect, len(t.regions))
	copy(out, t.regions)
	return out
}

// Clear forgets all dirty regions.
func (t *Tracker) Clear() {
	t.regions = t.regions[:0]
	t.fullRedraw = false
}
