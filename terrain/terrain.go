// Package terrain holds the tile grid the physics engine collides against.
// Solid tiles are mirrored into one resolv.Space per layer so probes can use
// the same cell queries as the rest of the game.
package terrain

import (
	"math"

	"github.com/automoto/arrowfall/tags"
	"github.com/solarlune/resolv"
)

// Layer selects one of the two tile planes.
type Layer int

const (
	Back Layer = iota
	Fore
	layerCount
)

// cellSize is the resolv cell extent of one tile.
const cellSize = 16

// Tile is one grid cell. The zero Tile is empty air.
type Tile struct {
	ID    int
	Name  string
	Solid bool
}

func (t Tile) IsSolid() bool {
	return t.Solid
}

func (t Tile) IsEmpty() bool {
	return t == Tile{}
}

type Terrain struct {
	width, height int
	tiles         [layerCount][]Tile
	objects       [layerCount][]*resolv.Object
	spaces        [layerCount]*resolv.Space
}

// New returns an empty terrain of width x height tiles.
func New(width, height int) *Terrain {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	t := &Terrain{width: width, height: height}
	for l := Layer(0); l < layerCount; l++ {
		t.tiles[l] = make([]Tile, width*height)
		t.objects[l] = make([]*resolv.Object, width*height)
		t.spaces[l] = resolv.NewSpace(width*cellSize, height*cellSize, cellSize, cellSize)
	}
	return t
}

func (t *Terrain) Width() int  { return t.width }
func (t *Terrain) Height() int { return t.height }

func (t *Terrain) IsInside(x, y int) bool {
	return x >= 0 && y >= 0 && x < t.width && y < t.height
}

// Get returns the tile at (x, y), or empty air outside the grid.
func (t *Terrain) Get(layer Layer, x, y int) Tile {
	if !t.IsInside(x, y) || !validLayer(layer) {
		return Tile{}
	}
	return t.tiles[layer][y*t.width+x]
}

// Set replaces the tile at (x, y) and keeps the resolv index in sync.
// Out of range coordinates are ignored.
func (t *Terrain) Set(layer Layer, x, y int, tile Tile) {
	if !t.IsInside(x, y) || !validLayer(layer) {
		return
	}
	i := y*t.width + x
	t.tiles[layer][i] = tile

	if old := t.objects[layer][i]; old != nil {
		t.spaces[layer].Remove(old)
		t.objects[layer][i] = nil
	}
	if tile.IsEmpty() {
		return
	}

	objTags := []string{tags.ResolvTile}
	if tile.Solid {
		objTags = append(objTags, tags.ResolvSolid)
	}
	obj := resolv.NewObject(float64(x*cellSize), float64(y*cellSize), cellSize, cellSize, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, cellSize, cellSize))
	obj.Data = tile
	t.spaces[layer].Add(obj)
	t.objects[layer][i] = obj
}

// Fill sets every tile of the inclusive rectangle.
func (t *Terrain) Fill(layer Layer, x0, y0, x1, y1 int, tile Tile) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t.Set(layer, x, y, tile)
		}
	}
}

// IsSolid reports whether the resolv cell at (x, y) holds a solid tile.
func (t *Terrain) IsSolid(layer Layer, x, y int) bool {
	if !t.IsInside(x, y) || !validLayer(layer) {
		return false
	}
	cell := t.spaces[layer].Cell(x, y)
	return cell != nil && cell.ContainsTags(tags.ResolvSolid)
}

// SolidBelow reports whether any solid foreground tile lies directly under
// the span [minX, maxX) at height y.
func (t *Terrain) SolidBelow(minX, maxX, y float64) bool {
	ty := int(math.Floor(y))
	x0 := int(math.Floor(minX))
	x1 := int(math.Ceil(maxX)) - 1
	for x := x0; x <= x1; x++ {
		if t.IsSolid(Fore, x, ty) {
			return true
		}
	}
	return false
}

// Space exposes the resolv index of a layer.
func (t *Terrain) Space(layer Layer) *resolv.Space {
	if !validLayer(layer) {
		return nil
	}
	return t.spaces[layer]
}

func validLayer(l Layer) bool {
	return l >= 0 && l < layerCount
}
