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

// Йоу, чат! Зараз розберемо план редагування чанку!
// План - це TOML файл зі списком заповнень, які виконуються по черзі.

package edit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"FDMToolkit/catalog"
	"FDMToolkit/chunk"
)

// Помилки валідації кроків плану
var (
	ErrOutOfBounds   = errors.New("region is out of chunk bounds")
	ErrEmptyPalette  = errors.New("dither palette is empty")
	ErrUnknownPolicy = errors.New("unknown fill policy")
)

// Plan - головна структура плану
// Поля з тегом `toml` читаються з файлу
type Plan struct {
	// Чи обрізати зайві дані при читанні чанку замість помилки
	Lenient bool `toml:"lenient"`

	// Заповнення, по порядку
	Fill []Step `toml:"fill"`
}

// Step - одне заповнення області
type Step struct {
	Policy  PolicyKind      `toml:"policy"`
	Block   catalog.Block   `toml:"block"`   // для solid та hollow
	Palette []catalog.Block `toml:"palette"` // для dither
	Start   [4]int          `toml:"start"`
	End     [4]int          `toml:"end"`
}

// StepError повідомляє, який саме крок плану зламався
type StepError struct {
	Index int
	Err   error
}

func (e *StepError) Error() string { return fmt.Sprintf("fill step %d: %v", e.Index, e.Err) }

func (e *StepError) Unwrap() error { return e.Err }

// PolicyKind - назва політики заповнення
type PolicyKind uint8

const (
	PolicySolid PolicyKind = iota
	PolicyHollow
	PolicyDither
)

var policyNames = [...]string{
	PolicySolid:  "solid",
	PolicyHollow: "hollow",
	PolicyDither: "dither",
}

func (k PolicyKind) String() string {
	if int(k) < len(policyNames) {
		return policyNames[k]
	}
	return fmt.Sprintf("PolicyKind(%d)", uint8(k))
}

func (k PolicyKind) MarshalText() ([]byte, error) {
	if int(k) >= len(policyNames) {
		return nil, ErrUnknownPolicy
	}
	return []byte(policyNames[k]), nil
}

// UnmarshalText перетворює текст з плану в PolicyKind
// Наприклад "hollow" -> PolicyHollow
func (k *PolicyKind) UnmarshalText(text []byte) error {
	for i, name := range policyNames {
		if strings.EqualFold(name, string(text)) {
			*k = PolicyKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownPolicy, text)
}

// Rect повертає область кроку
func (s *Step) Rect() chunk.Rect4 {
	return chunk.NewRect4(chunk.Point(s.Start), chunk.Point(s.End))
}

// Params збирає параметри заповнення для chunk.Chunk.FillWith.
// Dither отримує свій лічильник на кожен виклик.
func (s *Step) Params() chunk.FillParams {
	rect := s.Rect()
	switch s.Policy {
	case PolicyHollow:
		return chunk.HollowFill(s.Block.ID(), rect)
	case PolicyDither:
		palette := make([]byte, len(s.Palette))
		for i, b := range s.Palette {
			palette[i] = b.ID()
		}
		return chunk.DitherFill(palette, rect)
	default:
		return chunk.SolidFill(s.Block.ID(), rect)
	}
}

// Validate перевіряє крок до виконання, бо сам Fill меж не перевіряє
func (s *Step) Validate() error {
	if s.Policy > PolicyDither {
		return ErrUnknownPolicy
	}
	if !s.Rect().InChunk() {
		return fmt.Errorf("%w: %v..%v", ErrOutOfBounds, s.Start, s.End)
	}
	if s.Policy == PolicyDither && len(s.Palette) == 0 {
		return ErrEmptyPalette
	}
	return nil
}

// Validate перевіряє всі кроки плану
func (p *Plan) Validate() error {
	for i := range p.Fill {
		if err := p.Fill[i].Validate(); err != nil {
			return &StepError{Index: i, Err: err}
		}
	}
	return nil
}

// Apply виконує план над чанком і повертає скільки вокселів записано.
// Якщо хоч один крок невалідний, чанк лишається без змін.
func (p *Plan) Apply(c *chunk.Chunk) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	n := 0
	for i := range p.Fill {
		params := p.Fill[i].Params()
		c.FillWith(params)
		n += params.Rect.Volume()
	}
	return n, nil
}

// Parse читає план з TOML тексту
func Parse(data string) (Plan, error) {
	var p Plan
	meta, err := toml.Decode(data, &p)
	return checkDecoded(p, meta, err)
}

// Load читає план з файлу
// Якщо знайдемо невідомі ключі - повернемо помилку
func Load(path string) (Plan, error) {
	var p Plan
	meta, err := toml.DecodeFile(path, &p)
	return checkDecoded(p, meta, err)
}

func checkDecoded(p Plan, meta toml.MetaData, err error) (Plan, error) {
	if err != nil {
		return Plan{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var err UnknownKeysError
		for _, key := range undecoded {
			err = append(err, key.String())
		}
		return Plan{}, err
	}
	return p, nil
}

// UnknownKeysError - це список невідомих ключів у плані
type UnknownKeysError []string

func (e UnknownKeysError) Error() string {
	return "unknown config keys: [" + strings.Join(e, ", ") + "]"
}
