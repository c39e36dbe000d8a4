package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from a room file.
const (
	GroupWalls        = "Walls"
	GroupPlayerSpawn  = "PlayerSpawn"
	GroupEnemySpawn   = "EnemySpawn"
	GroupInteractives = "Interactives"
)

// LoadRoom parses a TMX file into room data. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadRoom(fsys fs.FS, tmxPath string) (*RoomData, error) {
	roomMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &RoomData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(roomMap.Width * roomMap.TileWidth),
		Height: float64(roomMap.Height * roomMap.TileHeight),
	}

	for _, og := range roomMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("%s: wall object %d has no area", tmxPath, o.ID)
				}
				data.Walls = append(data.Walls, WallRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				data.PlayerSpawns = append(data.PlayerSpawns, SpawnPoint{X: o.X, Y: o.Y})
			}
		case GroupEnemySpawn:
			for _, o := range og.Objects {
				data.EnemySpawns = append(data.EnemySpawns, EnemySpawn{
					X:    o.X,
					Y:    o.Y,
					Type: o.Properties.GetString("enemyType"),
				})
			}
		case GroupInteractives:
			for _, o := range og.Objects {
				data.Interactives = append(data.Interactives, InteractiveSpawn{
					X:    o.X,
					Y:    o.Y,
					Kind: o.Name,
				})
			}
		}
	}

	if len(data.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("%s: no %s object", tmxPath, GroupPlayerSpawn)
	}

	return data, nil
}

// LoadAllRooms discovers all .tmx files in roomsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllRooms(fsys fs.FS, roomsDir string) (map[string]*RoomData, []string, error) {
	pattern := roomsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", roomsDir)
	}

	rooms := make(map[string]*RoomData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadRoom(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		rooms[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return rooms, names, nil
}
