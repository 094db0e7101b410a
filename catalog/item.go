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

import "fmt"

// Item - стандартні предмети 4D Miner
type Item uint8

const (
	Stick Item = iota
	Hammer
	IronPick
	DeadlyPick
	IronAxe
	DeadlyAxe
	Ultrahammer
	SolenoidCollector
	Rock
	Hypersilk
	IronBars
	DeadlyBars
	SolenoidBars
	Compass
	Glasses
	KleinBottle
	HealthPotion
	RedLens
	GreenLens
	BlueLens
	Alidade

	itemCount
)

type itemInfo struct {
	key  string
	name string
	typ  CollectableType
}

var items = [itemCount]itemInfo{
	Stick:             {"stick", "Stick", TypeTool},
	Hammer:            {"hammer", "Hammer", TypeTool},
	IronPick:          {"iron_pick", "Iron Pick", TypeTool},
	DeadlyPick:        {"deadly_pick", "Deadly Pick", TypeTool},
	IronAxe:           {"iron_axe", "Iron Axe", TypeTool},
	DeadlyAxe:         {"deadly_axe", "Deadly Axe", TypeTool},
	Ultrahammer:       {"ultrahammer", "Ultrahammer", TypeTool},
	SolenoidCollector: {"solenoid_collector", "Solenoid Collector", TypeTool},
	Rock:              {"rock", "Rock", TypeItem},
	Hypersilk:         {"hypersilk", "Hypersilk", TypeItem},
	IronBars:          {"iron_bars", "Iron Bars", TypeItem},
	DeadlyBars:        {"deadly_bars", "Deadly Bars", TypeItem},
	SolenoidBars:      {"solenoid_bars", "Solenoid Bars", TypeItem},
	Compass:           {"compass", "Compass", TypeItem},
	Glasses:           {"glasses", "4D Glasses", TypeItem},
	KleinBottle:       {"klein_bottle", "Klein Bottle", TypeItem},
	HealthPotion:      {"health_potion", "Health Potion", TypeItem},
	RedLens:           {"red_lens", "Red Lens", TypeItem},
	GreenLens:         {"green_lens", "Green Lens", TypeItem},
	BlueLens:          {"blue_lens", "Blue Lens", TypeItem},
	Alidade:           {"alidade", "Alidade", TypeItem},
}

var itemNames = make(map[string]Item, itemCount)

func init() {
	for id, info := range items {
		itemNames[info.key] = Item(id)
	}
}

func (i Item) Valid() bool { return i < itemCount }

func (i Item) Name() string {
	if !i.Valid() {
		return ""
	}
	return items[i].name
}

func (i Item) Type() CollectableType {
	if !i.Valid() {
		return TypeItem
	}
	return items[i].typ
}

func (i Item) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Item(%d)", uint8(i))
	}
	return items[i].name
}

func (i Item) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: item id %d", ErrUnknownName, uint8(i))
	}
	return []byte(items[i].key), nil
}

func (i *Item) UnmarshalText(text []byte) error {
	v, ok := lookupName(itemNames, text)
	if !ok {
		return fmt.Errorf("%w: item %q", ErrUnknownName, text)
	}
	*i = v
	return nil
}
