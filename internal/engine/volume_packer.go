package engine

import (
	"io"
	"log/slog"
	"math"

	"github.com/piwi3910/CartonPack/internal/model"
)

// workingVolume builds a synthetic box used only to drive lookahead
// simulations. It has no meaningful weight ceiling; only its geometry counts.
func workingVolume(width, length, depth int) model.Box {
	return model.Box{
		ID:          "working-volume",
		Reference:   "working-volume",
		InnerWidth:  width,
		InnerLength: length,
		InnerDepth:  depth,
		MaxWeight:   math.MaxInt32,
	}
}

// VolumePacker fills a single box from an ordered item queue. It walks the
// box row by row along the width axis, wraps rows along the length axis, and
// stacks closed layers along the depth axis. Items that fit nowhere end up
// in the unpacked list; that is a result, not an error.
type VolumePacker struct {
	box   model.Box
	items *ItemList
	mode  PackMode
	cache *lookaheadCache
	log   *slog.Logger

	packed   model.PackedList
	layer    packedLayer
	closed   packedLayer
	unpacked []model.Item

	x, y, z                          int
	widthLeft, lengthLeft, depthLeft int
	rowLength                        int
}

// NewVolumePacker creates a full-mode packer with a fresh lookahead cache
// and no trace output.
func NewVolumePacker(box model.Box, items *ItemList) *VolumePacker {
	return newVolumePacker(box, items, ModeFull, newLookaheadCache(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newVolumePacker wires an existing cache and logger into a run. Lookahead
// simulations use it to share the caller's cache in single-pass mode.
func newVolumePacker(box model.Box, items *ItemList, mode PackMode, cache *lookaheadCache, log *slog.Logger) *VolumePacker {
	return &VolumePacker{
		box:        box,
		items:      items,
		mode:       mode,
		cache:      cache,
		log:        log,
		widthLeft:  box.InnerWidth,
		lengthLeft: box.InnerLength,
		depthLeft:  box.InnerDepth,
	}
}

// SetLogger installs a trace sink for placement and lookahead events.
func (p *VolumePacker) SetLogger(log *slog.Logger) {
	if log != nil {
		p.log = log
	}
}

// Pack consumes the queue and returns the packed box plus leftovers.
func (p *VolumePacker) Pack() model.PackedBox {
	for {
		item, ok := p.items.Peek()
		if !ok {
			break
		}
		if p.tryPlace(item) {
			p.items.Pop()
			continue
		}
		if p.advanceRow() {
			continue
		}
		if p.advanceLayer() {
			continue
		}
		p.items.Pop()
		p.unpacked = append(p.unpacked, item)
		p.log.Debug("item does not fit anywhere", "item", item.Description, "box", p.box.Reference)
	}
	p.closed.merge(p.layer)
	p.layer = packedLayer{}

	return model.PackedBox{
		Box:           p.box,
		Items:         p.packed,
		Unpacked:      p.unpacked,
		ContentWidth:  p.closed.width(),
		ContentLength: p.closed.length(),
		ContentDepth:  p.closed.depth(),
	}
}

// tryPlace attempts to commit the item at the current cursor. On success the
// cursor moves right by the chosen orientation's width.
func (p *VolumePacker) tryPlace(item model.Item) bool {
	candidates := possibleOrientations(p.box, item, p.widthLeft, p.lengthLeft, p.depthLeft, p.x, p.y, p.z, p.packed)
	if len(candidates) == 0 {
		return false
	}

	ctx := &orientationContext{
		mode:       p.mode,
		box:        p.box,
		x:          p.x,
		y:          p.y,
		z:          p.z,
		widthLeft:  p.widthLeft,
		lengthLeft: p.lengthLeft,
		depthLeft:  p.depthLeft,
		rowLength:  p.rowLength,
		nextItems:  p.items.Rest(),
		packed:     p.packed,
		cache:      p.cache,
		log:        p.log,
	}
	chosen := ctx.best(candidates)

	placed := model.PlacedItem{Orientation: chosen, X: p.x, Y: p.y, Z: p.z}
	p.packed.Insert(placed)
	p.layer.insert(placed)

	p.log.Debug("placed item",
		"item", item.Description,
		"at", []int{p.x, p.y, p.z},
		"dims", []int{chosen.Width, chosen.Length, chosen.Depth})

	p.x += chosen.Width
	p.widthLeft -= chosen.Width
	if chosen.Length > p.rowLength {
		p.rowLength = chosen.Length
	}
	return true
}

// advanceRow wraps the cursor to the start of the next row within the
// current layer. Fails when no row is open or no length remains below it.
func (p *VolumePacker) advanceRow() bool {
	if p.rowLength == 0 || p.lengthLeft-p.rowLength <= 0 {
		return false
	}
	p.x = 0
	p.y += p.rowLength
	p.lengthLeft -= p.rowLength
	p.widthLeft = p.box.InnerWidth
	p.rowLength = 0
	return true
}

// advanceLayer closes the current layer into the accumulated result and
// starts a fresh one above it. Fails when the layer is empty or no depth
// remains above it.
func (p *VolumePacker) advanceLayer() bool {
	layerDepth := p.layer.depth()
	if layerDepth == 0 || p.depthLeft-layerDepth <= 0 {
		return false
	}
	p.closed.merge(p.layer)
	p.layer = packedLayer{}

	p.z += layerDepth
	p.depthLeft -= layerDepth
	p.x, p.y = 0, 0
	p.widthLeft = p.box.InnerWidth
	p.lengthLeft = p.box.InnerLength
	p.rowLength = 0
	return true
}
