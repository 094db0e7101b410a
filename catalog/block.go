// This file is part of go-mc/server project.
// Copyright (C) 2023.  Tnze
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownName повертається, коли текстова назва не відповідає жодному значенню
var ErrUnknownName = errors.New("catalog: unknown name")

// Block - стандартні блоки 4D Miner. Значення збігається з ID в чанку.
type Block uint8

const (
	Air Block = iota
	Grass
	Dirt
	Stone
	Wood
	Leaf
	Lava
	IronOre
	DeadlyOre
	Chest
	MidnightGrass
	MidnightSoil
	MidnightStone
	MidnightWood
	MidnightLeaf
	Bush
	MidnightBush
	RedFlower
	WhiteFlower
	BlueFlower
	TallGrass
	Sand
	Sandstone
	Cactus
	Snow
	Ice
	SnowyBush
	Glass
	SolenoidOre
	SnowyLeaf
	Pumpkin
	JackOLantern
	Barrier
	ChunkBorder

	blockCount
)

type blockInfo struct {
	key  string // назва в конфігах
	name string // назва для людей
}

var blocks = [blockCount]blockInfo{
	Air:           {"air", "Air"},
	Grass:         {"grass", "Grass"},
	Dirt:          {"dirt", "Dirt"},
	Stone:         {"stone", "Stone"},
	Wood:          {"wood", "Wood"},
	Leaf:          {"leaf", "Leaf"},
	Lava:          {"lava", "Lava"},
	IronOre:       {"iron_ore", "Iron Ore"},
	DeadlyOre:     {"deadly_ore", "Deadly Ore"},
	Chest:         {"chest", "Chest"},
	MidnightGrass: {"midnight_grass", "Midnight Grass"},
	MidnightSoil:  {"midnight_soil", "Midnight Soil"},
	MidnightStone: {"midnight_stone", "Midnight Stone"},
	MidnightWood:  {"midnight_wood", "Midnight Wood"},
	MidnightLeaf:  {"midnight_leaf", "Midnight Leaf"},
	Bush:          {"bush", "Bush"},
	MidnightBush:  {"midnight_bush", "Midnight Bush"},
	RedFlower:     {"red_flower", "Red Flower"},
	WhiteFlower:   {"white_flower", "White Flower"},
	BlueFlower:    {"blue_flower", "Blue Flower"},
	TallGrass:     {"tall_grass", "Tall Grass"},
	Sand:          {"sand", "Sand"},
	Sandstone:     {"sandstone", "Sandstone"},
	Cactus:        {"cactus", "Cactus"},
	Snow:          {"snow", "Snow"},
	Ice:           {"ice", "Ice"},
	SnowyBush:     {"snowy_bush", "Snowy Bush"},
	Glass:         {"glass", "Glass"},
	SolenoidOre:   {"solenoid_ore", "Solenoid Ore"},
	SnowyLeaf:     {"snowy_leaf", "Snowy Leaf"},
	Pumpkin:       {"pumpkin", "Pumpkin"},
	JackOLantern:  {"jack_o_lantern", "Jack o'Lantern"},
	Barrier:       {"barrier", "Barrier"},
	ChunkBorder:   {"chunk_border", "Chunk Border"},
}

// blockNames - зворотна таблиця, заповнюється один раз при старті
var blockNames = make(map[string]Block, blockCount)

func init() {
	for id, info := range blocks {
		blockNames[info.key] = Block(id)
	}
}

// Lookup повертає блок за ID з чанку
func Lookup(id byte) (Block, bool) {
	if id >= byte(blockCount) {
		return 0, false
	}
	return Block(id), true
}

// ParseBlock шукає блок за назвою з конфігу, наприклад "iron_ore"
func ParseBlock(s string) (Block, error) {
	var b Block
	err := b.UnmarshalText([]byte(s))
	return b, err
}

// ID повертає байт, який пишеться в чанк
func (b Block) ID() byte { return byte(b) }

// Valid перевіряє чи є такий блок у каталозі
func (b Block) Valid() bool { return b < blockCount }

func (b Block) Name() string {
	if !b.Valid() {
		return ""
	}
	return blocks[b].name
}

func (b Block) Type() CollectableType { return TypeBlock }

func (b Block) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Block(%d)", uint8(b))
	}
	return blocks[b].name
}

// Key повертає назву блоку для конфігів
func (b Block) Key() string {
	if !b.Valid() {
		return ""
	}
	return blocks[b].key
}

func (b Block) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: block id %d", ErrUnknownName, uint8(b))
	}
	return []byte(b.Key()), nil
}

func (b *Block) UnmarshalText(text []byte) error {
	v, ok := lookupName(blockNames, text)
	if !ok {
		return fmt.Errorf("%w: block %q", ErrUnknownName, text)
	}
	*b = v
	return nil
}
