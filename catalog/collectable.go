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

// Йоу, чат! Це каталог всього, що можна тримати в інвентарі 4D Miner.
// Чанки про ці назви нічого не знають - там лише байтові ID.
// Таблиці тут незмінні і потрібні тільки для конфігів та людських назв.

package catalog

import (
	"fmt"
	"strings"
)

// Collectable - все, що може лежати в інвентарі гравця
type Collectable interface {
	Name() string
	Type() CollectableType
}

// CollectableType - до якої категорії належить предмет
type CollectableType uint8

const (
	TypeBlock CollectableType = iota
	TypeItem
	TypeTool
)

// String повертає назву типу так, як вона пишеться в файлах даних
func (t CollectableType) String() string {
	switch t {
	case TypeBlock:
		return "block"
	case TypeItem:
		return "material"
	case TypeTool:
		return "tool"
	}
	return fmt.Sprintf("CollectableType(%d)", uint8(t))
}

func (t CollectableType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText приймає "block", "tool" та "material" або "item" без урахування регістру
func (t *CollectableType) UnmarshalText(text []byte) error {
	v := string(text)
	switch {
	case strings.EqualFold(v, "item"), strings.EqualFold(v, "material"):
		*t = TypeItem
	case strings.EqualFold(v, "block"):
		*t = TypeBlock
	case strings.EqualFold(v, "tool"):
		*t = TypeTool
	default:
		return fmt.Errorf("%w: %q is not the name of a CollectableType", ErrUnknownName, v)
	}
	return nil
}

// lookupName шукає ключ у таблиці назв без урахування регістру
func lookupName[T any](names map[string]T, text []byte) (T, bool) {
	v, ok := names[strings.ToLower(string(text))]
	return v, ok
}
