package session

import (
	"github.com/abhisek/dungeonquiz/internal/pack"
)

// packLoadedMsg is sent when the dungeon's pack has been fetched and parsed.
type packLoadedMsg struct {
	Pack *pack.Pack
	Err  error
}
