package physics

import (
	"math"

	"github.com/automoto/arrowfall/components"
	"github.com/yohamta/donburi"
)

// generateTileCollisions fills the queue with every solid foreground tile the
// character genuinely overlaps.
func (e *Engine) generateTileCollisions(ter Terrain, character *donburi.Entry) {
	e.queue.reset()
	body := components.Body.Get(character)
	x0, y0, x1, y1 := tileRange(body)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !solidTile(ter, x, y) {
				continue
			}
			tile := tileBody(x, y)
			px, py := PenetrationX(body, &tile), PenetrationY(body, &tile)
			if px < 0 && py < 0 {
				e.queue.push(TileCollision{
					Axis:         LeastPenetrationAxis(px, py),
					Character:    character.Entity(),
					TilePosition: tile.Position,
					Penetration:  math.Abs(px * py),
				})
			}
		}
	}
}

// resolveTileCollisions resolves the deepest collisions first, at most
// maxResolutions of them.
func (e *Engine) resolveTileCollisions(w donburi.World) {
	for n := uint8(0); n < e.maxResolutions && e.queue.Len() > 0; n++ {
		e.resolveTileCollision(w, e.queue.pop())
	}
}

func (e *Engine) resolveTileCollision(w donburi.World, c TileCollision) {
	if !w.Valid(c.Character) {
		return
	}
	entry := w.Entry(c.Character)
	if !entry.HasComponent(components.Body) {
		return
	}
	body := components.Body.Get(entry)

	// An earlier resolution in this batch may already have cleared it
	x, y := c.TilePosition.Floor()
	tile := tileBody(x, y)
	if !Collide(body, &tile) {
		return
	}

	ResolveWithStatic(body, &tile)
	TileCollisionEvent.Publish(w, c)
}

// resolveCharacterCollisions separates every overlapping pair of characters
// as soon as it is found.
func (e *Engine) resolveCharacterCollisions(w donburi.World) {
	for i, c1 := range e.characters {
		b1 := components.Body.Get(c1)
		for _, c2 := range e.characters[i+1:] {
			b2 := components.Body.Get(c2)
			p := Penetration(b1, b2)
			if p.X == 0 || p.Y == 0 {
				continue
			}

			ResolveWithDynamic(b1, b2)

			axis := AxisY
			if math.Abs(p.X) < math.Abs(p.Y) {
				axis = AxisX
			}
			CharactersCollisionEvent.Publish(w, CharactersCollision{
				C1:   c1.Entity(),
				C2:   c2.Entity(),
				Axis: axis,
			})
		}
	}
}

// resolveArrow reports every character the arrow touches, then stops it dead
// on any solid tile.
func (e *Engine) resolveArrow(w donburi.World, ter Terrain, arrow *donburi.Entry) {
	body := components.Body.Get(arrow)

	for _, c := range e.characters {
		if Collide(body, components.Body.Get(c)) {
			ArrowHitEvent.Publish(w, ArrowHit{
				Arrow:     arrow.Entity(),
				Character: c.Entity(),
			})
		}
	}

	if ter == nil {
		return
	}

	data := components.Arrow.Get(arrow)
	x0, y0, x1, y1 := tileRange(body)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			if !solidTile(ter, x, y) {
				continue
			}
			tile := tileBody(x, y)
			if Collide(body, &tile) {
				ResolveWithStatic(body, &tile)
				body.Velocity.Clear()
				data.Stuck = true
			}
		}
	}
}
