package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MonsterDef defines a monster type.
type MonsterDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Glyph       string `json:"glyph"`
	Color       string `json:"color"`
	HP          int    `json:"hp"`
	Defense     int    `json:"defense"`
	Power       int    `json:"power"`
	Vision      int    `json:"vision"`
	SpawnWeight int    `json:"spawnWeight"` // relative frequency
	MinDepth    int    `json:"minDepth"`    // shallowest level it appears on
}

// ItemDef defines an item type. Zero-valued effect fields are absent.
type ItemDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Glyph       string `json:"glyph"`
	Color       string `json:"color"`
	Consumable  bool   `json:"consumable"`
	Heal        int    `json:"heal,omitempty"`
	Damage      int    `json:"damage,omitempty"`
	Range       int    `json:"range,omitempty"`
	Radius      int    `json:"radius,omitempty"`
	Confusion   int    `json:"confusion,omitempty"`
	SpawnWeight int    `json:"spawnWeight"`
	MinDepth    int    `json:"minDepth"`
}

// PlayerDef holds the starting stats of the player.
type PlayerDef struct {
	Name    string `json:"name"`
	Glyph   string `json:"glyph"`
	Color   string `json:"color"`
	HP      int    `json:"hp"`
	Defense int    `json:"defense"`
	Power   int    `json:"power"`
	Vision  int    `json:"vision"`
}

// SpawnRules bound how much is placed in each room.
type SpawnRules struct {
	MaxMonstersPerRoom int `json:"maxMonstersPerRoom"`
	MaxItemsPerRoom    int `json:"maxItemsPerRoom"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune { return glyphRune(m.Glyph) }

// TCellColor returns the monster's color, white if it does not parse.
func (m *MonsterDef) TCellColor() tcell.Color { return colorOr(m.Color, tcell.ColorWhite) }

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune { return glyphRune(i.Glyph) }

// TCellColor returns the item's color, white if it does not parse.
func (i *ItemDef) TCellColor() tcell.Color { return colorOr(i.Color, tcell.ColorWhite) }

// GlyphRune returns the glyph as a rune for rendering.
func (p *PlayerDef) GlyphRune() rune { return glyphRune(p.Glyph) }

// TCellColor returns the player's color, yellow if it does not parse.
func (p *PlayerDef) TCellColor() tcell.Color { return colorOr(p.Color, tcell.ColorYellow) }

func glyphRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

type monstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

type itemsFile struct {
	Items []ItemDef `json:"items"`
}

type rulesFile struct {
	Player PlayerDef  `json:"player"`
	Spawn  SpawnRules `json:"spawn"`
}

// Catalog is everything the spawners need.
type Catalog struct {
	Player   PlayerDef
	Spawn    SpawnRules
	Monsters *Table[MonsterDef]
	Items    *Table[ItemDef]
}

// LoadCatalog reads the embedded monsters.json, items.json and rules.json.
func LoadCatalog() (*Catalog, error) {
	monsters, err := Load[monstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	if len(monsters.Monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}

	items, err := Load[itemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	if len(items.Items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}

	rules, err := Load[rulesFile]("rules.json")
	if err != nil {
		return nil, err
	}
	if rules.Player.HP <= 0 {
		return nil, fmt.Errorf("rules.json: player hp %d must be positive", rules.Player.HP)
	}

	return &Catalog{
		Player: rules.Player,
		Spawn:  rules.Spawn,
		Monsters: NewTable(monsters.Monsters, func(m *MonsterDef) (int, int) {
			return m.SpawnWeight, m.MinDepth
		}),
		Items: NewTable(items.Items, func(i *ItemDef) (int, int) {
			return i.SpawnWeight, i.MinDepth
		}),
	}, nil
}

// MustLoadCatalog loads the catalog, panicking on error.
// The game cannot run without it.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}
