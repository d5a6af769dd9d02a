package terrain

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stone = Tile{ID: 1, Name: "stone", Solid: true}

func TestTerrainBounds(t *testing.T) {
	ter := New(4, 3)

	assert.True(t, ter.IsInside(0, 0))
	assert.True(t, ter.IsInside(3, 2))
	assert.False(t, ter.IsInside(-1, 0))
	assert.False(t, ter.IsInside(4, 0))
	assert.False(t, ter.IsInside(0, 3))

	// Outside reads are empty air, outside writes are dropped
	ter.Set(Fore, 10, 10, stone)
	assert.True(t, ter.Get(Fore, 10, 10).IsEmpty())
	assert.False(t, ter.IsSolid(Fore, 10, 10))
}

func TestTerrainSetKeepsIndexInSync(t *testing.T) {
	ter := New(4, 4)

	ter.Set(Fore, 1, 2, stone)
	assert.True(t, ter.Get(Fore, 1, 2).IsSolid())
	assert.True(t, ter.IsSolid(Fore, 1, 2))
	assert.False(t, ter.IsSolid(Back, 1, 2))
	assert.False(t, ter.IsSolid(Fore, 2, 2))

	ter.Set(Fore, 1, 2, Tile{ID: 2, Name: "vine"})
	assert.False(t, ter.Get(Fore, 1, 2).IsSolid())
	assert.False(t, ter.IsSolid(Fore, 1, 2))

	ter.Set(Fore, 1, 2, Tile{})
	assert.True(t, ter.Get(Fore, 1, 2).IsEmpty())
	assert.False(t, ter.IsSolid(Fore, 1, 2))
}

func TestTerrainSolidBelow(t *testing.T) {
	ter := New(5, 5)
	ter.Fill(Fore, 0, 4, 1, 4, stone)

	assert.True(t, ter.SolidBelow(0.5, 1.5, 4))
	assert.True(t, ter.SolidBelow(1.2, 2.2, 4.5))
	// Span ending on a tile edge does not reach the next tile
	assert.False(t, ter.SolidBelow(2, 3, 4))
	assert.False(t, ter.SolidBelow(0.5, 1.5, 3))
}

func TestLoadTMX(t *testing.T) {
	level, err := LoadTMX(os.DirFS("testdata"), "arena.tmx", DefaultLoadOptions)
	require.NoError(t, err)

	ter := level.Terrain
	assert.Equal(t, 6, ter.Width())
	assert.Equal(t, 4, ter.Height())

	// Walls and floor
	assert.True(t, ter.Get(Fore, 0, 0).IsSolid())
	assert.True(t, ter.Get(Fore, 5, 2).IsSolid())
	assert.True(t, ter.Get(Fore, 3, 3).IsSolid())
	assert.Equal(t, "stone", ter.Get(Fore, 0, 3).Name)
	assert.True(t, ter.IsSolid(Fore, 2, 3))

	// Vine tiles are decorative
	assert.Equal(t, "vine", ter.Get(Fore, 3, 2).Name)
	assert.False(t, ter.Get(Fore, 3, 2).IsSolid())
	assert.Equal(t, "vine", ter.Get(Back, 1, 1).Name)
	assert.False(t, ter.Get(Back, 1, 1).IsSolid())
	assert.True(t, ter.Get(Fore, 2, 1).IsEmpty())

	require.Len(t, level.Spawns, 2)
	assert.Equal(t, "red", level.Spawns[0].Name)
	assert.InDelta(t, 1.0, level.Spawns[0].Position.X, 1e-9)
	assert.InDelta(t, 1.0, level.Spawns[0].Position.Y, 1e-9)
	assert.InDelta(t, 0.75, level.Spawns[0].Size.X, 1e-9)
	assert.InDelta(t, 1.25, level.Spawns[0].Size.Y, 1e-9)
	assert.Equal(t, "blue", level.Spawns[1].Name)
}

func TestLoadTMXMissingForeLayer(t *testing.T) {
	opts := DefaultLoadOptions
	opts.ForeLayer = "walls"

	_, err := LoadTMX(os.DirFS("testdata"), "arena.tmx", opts)
	assert.Error(t, err)
}

func TestLoadTMXMissingFile(t *testing.T) {
	_, err := LoadTMX(os.DirFS("testdata"), "missing.tmx", DefaultLoadOptions)
	assert.Error(t, err)
}
