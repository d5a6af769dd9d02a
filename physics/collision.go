package physics

import (
	"container/heap"

	"github.com/automoto/arrowfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TileCollision is a character overlapping a solid foreground tile during one
// step. Character is a handle: once the entity is removed the record is inert.
type TileCollision struct {
	Axis         Axis
	Character    donburi.Entity
	TilePosition gamemath.Vector2
	// Penetration is |px*py|, only meaningful as an ordering key.
	Penetration float64
}

// CharactersCollision is an overlap between two characters, resolved as found.
type CharactersCollision struct {
	C1, C2 donburi.Entity
	Axis   Axis
}

// ArrowHit is an arrow touching a character. The engine never decides what a
// hit means; subscribers do.
type ArrowHit struct {
	Arrow     donburi.Entity
	Character donburi.Entity
}

// tileCollisions is a max-heap on Penetration.
type tileCollisions []TileCollision

func (q tileCollisions) Len() int           { return len(q) }
func (q tileCollisions) Less(i, j int) bool { return q[i].Penetration > q[j].Penetration }
func (q tileCollisions) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *tileCollisions) Push(x any) {
	*q = append(*q, x.(TileCollision))
}

func (q *tileCollisions) Pop() any {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]
	return c
}

func (q *tileCollisions) push(c TileCollision) {
	heap.Push(q, c)
}

func (q *tileCollisions) pop() TileCollision {
	return heap.Pop(q).(TileCollision)
}

// reset empties the queue but keeps its storage for the next character.
func (q *tileCollisions) reset() {
	*q = (*q)[:0]
}
