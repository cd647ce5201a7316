// Package gamedata holds the embedded monster and item catalog and the
// spawn rules that place them on each level.
package gamedata

import "embed"

//go:embed *.json
var dataFS embed.FS
