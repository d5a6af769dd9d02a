package terrain

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/arrowfall/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// LoadOptions names the TMX layers and object group the loader reads.
type LoadOptions struct {
	ForeLayer  string
	BackLayer  string
	SpawnGroup string
}

var DefaultLoadOptions = LoadOptions{
	ForeLayer:  "fore",
	BackLayer:  "back",
	SpawnGroup: "Characters",
}

// Level is a loaded TMX map in tile units.
type Level struct {
	Name    string
	Terrain *Terrain
	Spawns  []Spawn
}

// Spawn is a character placement from the spawn object group.
type Spawn struct {
	Name     string
	Position gamemath.Vector2
	Size     gamemath.Vector2
}

// LoadTMX parses a TMX file into a terrain. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. Tiles take their solidity from the tileset tile
// property "solid"; tiles without it are solid on the fore layer only.
func LoadTMX(fsys fs.FS, tmxPath string, opts LoadOptions) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	level := &Level{
		Name:    tmxPath,
		Terrain: New(levelMap.Width, levelMap.Height),
	}

	foundFore := false
	for _, layer := range levelMap.Layers {
		var target Layer
		switch layer.Name {
		case opts.ForeLayer:
			target = Fore
			foundFore = true
		case opts.BackLayer:
			target = Back
		default:
			continue
		}
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("load TMX %s: layer %q has %d tiles, want %d",
				tmxPath, layer.Name, len(layer.Tiles), levelMap.Width*levelMap.Height)
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				lt := layer.Tiles[y*levelMap.Width+x]
				if lt == nil || lt.IsNil() {
					continue
				}
				level.Terrain.Set(target, x, y, tileFromTMX(lt, target))
			}
		}
	}
	if !foundFore {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, opts.ForeLayer)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != opts.SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			level.Spawns = append(level.Spawns, Spawn{
				Name:     o.Name,
				Position: gamemath.Vec(o.X/tileW, o.Y/tileH),
				Size:     gamemath.Vec(o.Width/tileW, o.Height/tileH),
			})
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].Position.X < level.Spawns[j].Position.X
	})

	return level, nil
}

func tileFromTMX(lt *tiled.LayerTile, layer Layer) Tile {
	tile := Tile{
		ID:    int(lt.ID) + 1,
		Solid: layer == Fore,
	}
	if lt.Tileset == nil {
		return tile
	}
	// Global ids keep 0 free for air
	tile.ID = int(lt.Tileset.FirstGID + lt.ID)
	tilesetTile, err := lt.Tileset.GetTilesetTile(lt.ID)
	if err != nil {
		return tile
	}
	tile.Name = tilesetTile.Properties.GetString("name")
	if len(tilesetTile.Properties.Get("solid")) > 0 {
		tile.Solid = tilesetTile.Properties.GetBool("solid")
	}
	return tile
}
