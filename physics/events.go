package physics

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Collision events. Records are queued while a step runs and delivered to
// subscribers when the step ends, so handlers never run while the engine is
// iterating the world and may freely remove entities.
var (
	TileCollisionEvent       = events.NewEventType[TileCollision]()
	ArrowHitEvent            = events.NewEventType[ArrowHit]()
	CharactersCollisionEvent = events.NewEventType[CharactersCollision]()
)

// flushEvents delivers queued events in the order the step produced them.
func flushEvents(w donburi.World) {
	TileCollisionEvent.ProcessEvents(w)
	ArrowHitEvent.ProcessEvents(w)
	CharactersCollisionEvent.ProcessEvents(w)
}
