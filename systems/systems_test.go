package systems

import (
	"testing"

	"github.com/automoto/arrowfall/components"
	cfg "github.com/automoto/arrowfall/config"
	"github.com/automoto/arrowfall/physics"
	"github.com/automoto/arrowfall/shared/gamemath"
	"github.com/automoto/arrowfall/systems/factory"
	"github.com/automoto/arrowfall/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var stone = terrain.Tile{ID: 1, Name: "stone", Solid: true}

// newArena builds a 12x8 room with a floor on row 6.
func newArena(t *testing.T) *Simulation {
	t.Helper()
	ter := terrain.New(12, 8)
	ter.Fill(terrain.Fore, 0, 6, 11, 6, stone)

	w := donburi.NewWorld()
	factory.CreateLevel(w, t.Name(), ter)
	return NewSimulation(w, physics.NewEngine(cfg.Physics))
}

func settle(s *Simulation, seconds float64) {
	for t := 0.0; t < seconds; t += 1.0 / 60 {
		s.Update(1.0 / 60)
	}
}

func TestCharacterLandsAndIsGrounded(t *testing.T) {
	s := newArena(t)
	c := factory.CreateCharacter(s.World(), "red", gamemath.Vec(2, 3), gamemath.Vector2{})

	settle(s, 1.5)

	require.True(t, c.Valid())
	body := components.Body.Get(c)
	assert.InDelta(t, 6.0, body.Max().Y, 0.05)
	assert.True(t, components.Character.Get(c).OnGround)
}

func TestJumpOnlyFromGround(t *testing.T) {
	s := newArena(t)
	c := factory.CreateCharacter(s.World(), "red", gamemath.Vec(2, 1), gamemath.Vector2{})

	// Mid-air jump is ignored
	ApplyControl(s.World(), c, Control{Jump: true})
	assert.GreaterOrEqual(t, components.Body.Get(c).Velocity.Y, 0.0)

	settle(s, 1.5)
	require.True(t, components.Character.Get(c).OnGround)

	ApplyControl(s.World(), c, Control{Jump: true})
	assert.Equal(t, -cfg.Gameplay.JumpSpeed, components.Body.Get(c).Velocity.Y)
	assert.False(t, components.Character.Get(c).OnGround)
}

func TestRunningIsOneUpdateOnly(t *testing.T) {
	s := newArena(t)
	c := factory.CreateCharacter(s.World(), "red", gamemath.Vec(2, 4.6), gamemath.Vector2{})
	settle(s, 0.5)
	start := components.Body.Get(c).Position.X

	ApplyControl(s.World(), c, Control{Direction: 1})
	s.Update(0.1)
	moved := components.Body.Get(c).Position.X
	assert.Greater(t, moved, start)
	assert.Equal(t, 1.0, components.Character.Get(c).Facing)

	// Without input the character stays put
	s.Update(0.1)
	assert.InDelta(t, moved, components.Body.Get(c).Position.X, 1e-9)
}

func TestArrowKillsOtherCharacter(t *testing.T) {
	s := newArena(t)
	shooter := factory.CreateCharacter(s.World(), "red", gamemath.Vec(1, 4.6), gamemath.Vector2{})
	target := factory.CreateCharacter(s.World(), "blue", gamemath.Vec(6, 4.6), gamemath.Vector2{})
	settle(s, 0.2)

	arrow := ApplyControl(s.World(), shooter, Control{Fire: true})
	require.NotNil(t, arrow)
	arrowEntity := arrow.Entity()
	targetEntity := target.Entity()

	settle(s, 1)

	assert.False(t, s.World().Valid(targetEntity), "target swept")
	assert.False(t, s.World().Valid(arrowEntity), "arrow swept")
	assert.True(t, shooter.Valid())
	assert.Equal(t, 0, components.Character.Get(shooter).Hits)
}

func TestArrowHitReactions(t *testing.T) {
	w := donburi.NewWorld()
	owner := factory.CreateCharacter(w, "red", gamemath.Vec(1, 1), gamemath.Vector2{})
	other := factory.CreateCharacter(w, "blue", gamemath.Vec(3, 1), gamemath.Vector2{})
	arrow := factory.CreateArrow(w, owner, gamemath.Vec(1, 0))

	// Own arrows pass through
	arrowHit(w, physics.ArrowHit{Arrow: arrow.Entity(), Character: owner.Entity()})
	assert.False(t, components.Character.Get(owner).Dead)
	assert.False(t, components.Arrow.Get(arrow).Spent)

	// Stuck arrows are harmless
	components.Arrow.Get(arrow).Stuck = true
	arrowHit(w, physics.ArrowHit{Arrow: arrow.Entity(), Character: other.Entity()})
	assert.False(t, components.Character.Get(other).Dead)

	components.Arrow.Get(arrow).Stuck = false
	arrowHit(w, physics.ArrowHit{Arrow: arrow.Entity(), Character: other.Entity()})
	assert.True(t, components.Character.Get(other).Dead)
	assert.Equal(t, 1, components.Character.Get(other).Hits)
	assert.True(t, components.Arrow.Get(arrow).Spent)

	// Removed entities are ignored
	w.Remove(other.Entity())
	assert.NotPanics(t, func() {
		arrowHit(w, physics.ArrowHit{Arrow: arrow.Entity(), Character: other.Entity()})
	})
}

func TestStomp(t *testing.T) {
	w := donburi.NewWorld()
	lower := factory.CreateCharacter(w, "red", gamemath.Vec(1, 2), gamemath.Vec(1, 1))
	upper := factory.CreateCharacter(w, "blue", gamemath.Vec(1.2, 1.1), gamemath.Vec(1, 1))

	// Side collisions are just shoves
	stomp(w, physics.CharactersCollision{C1: lower.Entity(), C2: upper.Entity(), Axis: physics.AxisX})
	assert.False(t, components.Character.Get(lower).Dead)

	stomp(w, physics.CharactersCollision{C1: lower.Entity(), C2: upper.Entity(), Axis: physics.AxisY})
	assert.True(t, components.Character.Get(lower).Dead)
	assert.False(t, components.Character.Get(upper).Dead)
	assert.Equal(t, 1, components.Character.Get(upper).Stomps)
	assert.Equal(t, -cfg.Gameplay.StompBounce, components.Body.Get(upper).Velocity.Y)
}

func TestPlaceOnGround(t *testing.T) {
	w := donburi.NewWorld()
	c := factory.CreateCharacter(w, "red", gamemath.Vec(1, 3.6), gamemath.Vec(0.8, 1.4))

	// Ceiling bumps do not ground
	placeOnGround(w, physics.TileCollision{Axis: physics.AxisY, Character: c.Entity(), TilePosition: gamemath.Vec(1, 2)})
	assert.False(t, components.Character.Get(c).OnGround)

	placeOnGround(w, physics.TileCollision{Axis: physics.AxisX, Character: c.Entity(), TilePosition: gamemath.Vec(1, 5)})
	assert.False(t, components.Character.Get(c).OnGround)

	placeOnGround(w, physics.TileCollision{Axis: physics.AxisY, Character: c.Entity(), TilePosition: gamemath.Vec(1, 5)})
	assert.True(t, components.Character.Get(c).OnGround)
}

func TestSweep(t *testing.T) {
	w := donburi.NewWorld()
	alive := factory.CreateCharacter(w, "red", gamemath.Vec(1, 1), gamemath.Vector2{})
	dead := factory.CreateCharacter(w, "blue", gamemath.Vec(3, 1), gamemath.Vector2{})
	spent := factory.CreateLooseArrow(w, donburi.Null, gamemath.Vec(5, 1), gamemath.Vec(1, 0))
	kept := factory.CreateLooseArrow(w, donburi.Null, gamemath.Vec(6, 1), gamemath.Vec(1, 0))

	components.Character.Get(dead).Dead = true
	components.Arrow.Get(spent).Spent = true
	deadEntity, spentEntity := dead.Entity(), spent.Entity()

	assert.Equal(t, 2, Sweep(w))
	assert.True(t, alive.Valid())
	assert.True(t, kept.Valid())
	assert.False(t, w.Valid(deadEntity))
	assert.False(t, w.Valid(spentEntity))
	assert.Equal(t, 0, Sweep(w))
}
