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

package chunk

import (
	"io"
	"slices"
	"strings"
)

// CompressedChunk - чанк у вигляді послідовності груп.
// Сума Span всіх груп завжди рівно Hypervolume.
//
// Після створення CompressedChunk не змінюється, тому його можна
// вільно ділити між горутинами тільки для читання.
type CompressedChunk struct {
	groups []BlockGroup
}

// FilledCompressed створює стиснутий чанк, повністю заповнений блоком id
func FilledCompressed(id byte) *CompressedChunk {
	return &CompressedChunk{groups: appendGroups(nil, id, Hypervolume)}
}

// FromGroups збирає повний чанк з часткового списку груп.
// Все, що лишилось після груп, заповнюється блоком fill.
// Групи з нульовою довжиною нічого не описують і пропускаються.
func FromGroups(groups []BlockGroup, fill byte) (*CompressedChunk, error) {
	out := make([]BlockGroup, 0, len(groups)+1)
	total := 0
	for _, g := range groups {
		if g.Span == 0 {
			continue
		}
		total += int(g.Span)
		if total > Hypervolume {
			return nil, &CapacityExceededError{LastGroup: g, Excess: total - Hypervolume}
		}
		out = append(out, g)
	}
	return &CompressedChunk{groups: withRemainingFilled(out, total, fill)}, nil
}

// withRemainingFilled доповнює групи блоком fill до повного Hypervolume
func withRemainingFilled(groups []BlockGroup, total int, fill byte) []BlockGroup {
	return appendGroups(groups, fill, Hypervolume-total)
}

// Decode читає чанк з байтів у строгому режимі: будь-яке переповнення
// повертає *CapacityExceededError і жодного чанку.
// Якщо даних менше, ніж на весь чанк, решта заповнюється повітрям.
func Decode(b []byte) (*CompressedChunk, error) {
	return decode(b, false)
}

// DecodeLenient працює як Decode, але на переповненні обрізає
// групу рівно до місця, що лишилось, відкидає решту байтів і повертає
// валідний чанк разом з *CapacityExceededError для діагностики.
func DecodeLenient(b []byte) (*CompressedChunk, error) {
	return decode(b, true)
}

func decode(b []byte, lenient bool) (*CompressedChunk, error) {
	if len(b)%2 != 0 {
		return nil, &MalformedPairingError{Length: len(b)}
	}

	groups := make([]BlockGroup, 0, min(len(b)/2, Hypervolume)+Hypervolume/MaxSpan+1)
	total := 0
	for i := 0; i < len(b); i += 2 {
		g := BlockGroup{BlockID: b[i], Span: b[i+1]}
		if g.Span == 0 {
			continue
		}
		if total+int(g.Span) > Hypervolume {
			err := &CapacityExceededError{LastGroup: g, Excess: total + int(g.Span) - Hypervolume}
			if !lenient {
				return nil, err
			}
			if rest := Hypervolume - total; rest > 0 {
				groups = append(groups, BlockGroup{BlockID: g.BlockID, Span: byte(rest)})
			}
			return &CompressedChunk{groups: groups}, err
		}
		total += int(g.Span)
		groups = append(groups, g)
	}
	return &CompressedChunk{groups: withRemainingFilled(groups, total, 0)}, nil
}

// Len повертає кількість груп
func (c *CompressedChunk) Len() int { return len(c.groups) }

// Group повертає i-ту групу
func (c *CompressedChunk) Group(i int) BlockGroup { return c.groups[i] }

// Groups повертає копію всіх груп
func (c *CompressedChunk) Groups() []BlockGroup { return slices.Clone(c.groups) }

// Equal порівнює групи по порядку
func (c *CompressedChunk) Equal(o *CompressedChunk) bool {
	return slices.Equal(c.groups, o.groups)
}

// Bytes кодує чанк в формат [id, span][id, span]...
func (c *CompressedChunk) Bytes() []byte {
	return c.AppendBytes(make([]byte, 0, 2*len(c.groups)))
}

// AppendBytes дописує закодований чанк до dst
func (c *CompressedChunk) AppendBytes(dst []byte) []byte {
	for _, g := range c.groups {
		dst = append(dst, g.BlockID, g.Span)
	}
	return dst
}

// WriteTo записує закодований чанк в w
func (c *CompressedChunk) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Bytes())
	return int64(n), err
}

// Decompressed розгортає групи в розпакований чанк
func (c *CompressedChunk) Decompressed() *Chunk {
	d := new(Chunk)
	pos := 0
	for _, g := range c.groups {
		end := pos + int(g.Span)
		if g.BlockID != 0 {
			for i := pos; i < end; i++ {
				d.blocks[i] = g.BlockID
			}
		}
		pos = end
	}
	return d
}

// Block шукає групу, яка покриває координату
func (c *CompressedChunk) Block(x, y, z, w int) (byte, bool) {
	if !inBounds(x, y, z, w) {
		return 0, false
	}
	target, pos := index(x, y, z, w), 0
	for _, g := range c.groups {
		pos += int(g.Span)
		if target < pos {
			return g.BlockID, true
		}
	}
	return 0, false
}

// String виводить всі групи підряд
func (c *CompressedChunk) String() string {
	var sb strings.Builder
	for _, g := range c.groups {
		sb.WriteString(g.String())
	}
	return sb.String()
}
