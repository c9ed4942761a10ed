package internal

import "github.com/bruni-arendelle/simple-virtual-list/internal/keymap"

type Config struct {
	KeyMap    keymap.KeyMap
	ItemCount int
	RowLines  int
	Overscan  int
	Version   string
}
