package engine

import (
	"log/slog"

	"github.com/piwi3910/CartonPack/internal/model"
)

// PackMode controls whether a packer run may use lookahead simulation.
// Lookahead itself spawns nested runs; those always run in ModeSinglePass,
// which keeps the recursion exactly one level deep.
type PackMode int

const (
	ModeFull       PackMode = iota // Lookahead enabled
	ModeSinglePass                 // Lookahead disabled, used inside simulations
)

// lookaheadWindow caps how many pending items a simulation may consider,
// bounding the cost of a single comparison to a constant.
const lookaheadWindow = 8

// itemKey is the cache-relevant fingerprint of one pending item.
type itemKey struct {
	width, length, depth, weight int
	rotation                     model.RotationPolicy
}

// lookaheadKey identifies one simulated sub-problem exactly. Two comparator
// calls that would simulate the identical situation must build equal keys.
type lookaheadKey struct {
	widthLeft, lengthLeft, depthLeft int
	candWidth, candLength            int
	rowLength                        int
	windowLen                        int
	window                           [lookaheadWindow]itemKey
}

// lookaheadCache memoizes simulation scores for one top-level packing run.
// It is created per outer run and shared with every nested comparator, so
// unrelated runs can never serve each other stale scores. The simulation
// counter tracks cache misses for diagnostics.
type lookaheadCache struct {
	scores      map[lookaheadKey]int
	simulations int
}

func newLookaheadCache() *lookaheadCache {
	return &lookaheadCache{scores: make(map[lookaheadKey]int)}
}

// orientationContext carries everything a comparison between two candidate
// orientations for the same item at the same cursor needs to see.
type orientationContext struct {
	mode      PackMode
	box       model.Box
	x, y, z   int
	widthLeft, lengthLeft, depthLeft int
	rowLength int
	nextItems *ItemList
	packed    model.PackedList
	cache     *lookaheadCache
	log       *slog.Logger
}

// best returns the highest-ranked candidate under compare. Candidates must
// be non-empty and all belong to the same item.
func (c *orientationContext) best(candidates []model.Orientation) model.Orientation {
	winner := candidates[0]
	for _, cand := range candidates[1:] {
		if c.compare(cand, winner) < 0 {
			winner = cand
		}
	}
	return winner
}

// compare ranks two candidate orientations. Negative means a packs better
// than b, positive the reverse, zero means they are equivalent.
//
// Precedence: exact fit per axis (width, length, depth), then whether the
// next pending item still fits beside the candidate, then the lookahead
// simulation score, then the tightest leftover gap and largest footprint.
func (c *orientationContext) compare(a, b model.Orientation) int {
	axes := []struct{ free, aDim, bDim int }{
		{c.widthLeft, a.Width, b.Width},
		{c.lengthLeft, a.Length, b.Length},
		{c.depthLeft, a.Depth, b.Depth},
	}
	for _, ax := range axes {
		aExact := ax.free-ax.aDim == 0
		bExact := ax.free-ax.bDim == 0
		if aExact != bExact {
			if aExact {
				return -1
			}
			return 1
		}
	}

	if c.mode == ModeFull && c.nextItems.Count() > 0 {
		aFits := c.nextItemFits(a)
		bFits := c.nextItemFits(b)
		if aFits != bFits {
			if aFits {
				return -1
			}
			return 1
		}

		aScore := c.lookaheadScore(a)
		bScore := c.lookaheadScore(b)
		if aScore != bScore {
			if aScore > bScore {
				return -1
			}
			return 1
		}
	}

	aGap := minInt(c.widthLeft-a.Width, c.lengthLeft-a.Length)
	bGap := minInt(c.widthLeft-b.Width, c.lengthLeft-b.Length)
	if aGap != bGap {
		if aGap < bGap {
			return -1
		}
		return 1
	}
	if a.Footprint() != b.Footprint() {
		if a.Footprint() > b.Footprint() {
			return -1
		}
		return 1
	}
	return 0
}

// nextItemFits reports whether the head of the pending queue could be placed
// in the width gap the candidate would leave open. Geometry only; the gap is
// modelled as a weight-unbounded working volume. The gap's real origin and
// the live ledger are passed through so position-sensitive placement
// constraints see the situation they would actually be placed into.
func (c *orientationContext) nextItemFits(o model.Orientation) bool {
	next, ok := c.nextItems.Peek()
	if !ok {
		return false
	}
	gapWidth := c.widthLeft - o.Width
	if gapWidth <= 0 {
		return false
	}
	vol := workingVolume(gapWidth, c.lengthLeft, c.depthLeft)
	return len(possibleOrientations(vol, next, gapWidth, c.lengthLeft, c.depthLeft, c.x+o.Width, c.y, c.z, c.packed)) > 0
}

// lookaheadScore counts how many of the next pending items (capped at the
// window size) could still be packed after committing the candidate. Two
// working volumes are tried in turn: the remainder of the current row, then
// the rows below it, with the second fed only what the first left over. Both
// run in single-pass mode so the recursion stops here. Scores are memoized
// in the run's shared cache.
func (c *orientationContext) lookaheadScore(o model.Orientation) int {
	window := c.nextItems.PeekN(lookaheadWindow)
	if len(window) == 0 {
		return 0
	}

	key := lookaheadKey{
		widthLeft:  c.widthLeft,
		lengthLeft: c.lengthLeft,
		depthLeft:  c.depthLeft,
		candWidth:  o.Width,
		candLength: o.Length,
		rowLength:  c.rowLength,
		windowLen:  len(window),
	}
	for i, it := range window {
		key.window[i] = itemKey{it.Width, it.Length, it.Depth, it.Weight, it.Rotation}
	}
	if score, ok := c.cache.scores[key]; ok {
		return score
	}

	c.cache.simulations++
	rowLength := maxInt(o.Length, c.rowLength)
	score := 0
	remaining := window

	if gapWidth := c.widthLeft - o.Width; gapWidth > 0 {
		vol := workingVolume(gapWidth, rowLength, c.depthLeft)
		sub := newVolumePacker(vol, NewItemList(remaining...), ModeSinglePass, c.cache, c.log)
		res := sub.Pack()
		score += len(res.Items)
		remaining = withoutItems(remaining, res.Items.Items())
	}
	if len(remaining) > 0 && c.lengthLeft-rowLength > 0 {
		vol := workingVolume(c.widthLeft, c.lengthLeft-rowLength, c.depthLeft)
		sub := newVolumePacker(vol, NewItemList(remaining...), ModeSinglePass, c.cache, c.log)
		res := sub.Pack()
		score += len(res.Items)
	}

	c.log.Debug("lookahead simulated",
		"item", o.Item.Description,
		"orientation", []int{o.Width, o.Length, o.Depth},
		"window", len(window),
		"score", score)

	c.cache.scores[key] = score
	return score
}

func withoutItems(items []model.Item, used []model.Item) []model.Item {
	ids := make(map[string]bool, len(used))
	for _, it := range used {
		ids[it.ID] = true
	}
	var out []model.Item
	for _, it := range items {
		if !ids[it.ID] {
			out = append(out, it)
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
