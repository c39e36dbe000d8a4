package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/dungeon-crawler/shared/leveldata"
)

// RoomsDir is the directory of TMX rooms inside FS.
const RoomsDir = "levels"

var (
	//go:embed all:levels
	FS embed.FS
)

// LoadRoom loads an embedded room by stem name, e.g. "hub".
func LoadRoom(name string) (*leveldata.RoomData, error) {
	room, err := leveldata.LoadRoom(FS, RoomsDir+"/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", name, err)
	}
	return room, nil
}

// MustLoadRoom is LoadRoom for rooms that ship with the binary.
func MustLoadRoom(name string) *leveldata.RoomData {
	room, err := LoadRoom(name)
	if err != nil {
		panic(err)
	}
	return room
}
