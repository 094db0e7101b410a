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

// Йоу, чат! Сьогодні ми розберемо чанк світу 4D Miner!
// Чанк - це шматок світу 8x128x8x8 блоків. Тримаємо його у двох формах:
// Chunk - "розпакована" сітка, де кожен воксель має свій байт,
// CompressedChunk - послідовність груп (id, довжина), як на диску.

package chunk

// ChunkData - спільний інтерфейс обох форм чанку
type ChunkData interface {
	// Decompressed повертає еквівалентний розпакований чанк
	Decompressed() *Chunk
	// Block намагається дістати ID блоку за 4D координатою
	Block(x, y, z, w int) (byte, bool)
}

var (
	_ ChunkData = (*Chunk)(nil)
	_ ChunkData = (*CompressedChunk)(nil)
)

// Chunk - розпакований чанк. Блоки лежать в канонічному порядку:
// X найповільніша вісь, W найшвидша. Нульове значення - чанк з повітря.
//
// Chunk не синхронізований: заповнювати його може лише один власник за раз.
type Chunk struct {
	blocks [Hypervolume]byte
}

// Filled створює чанк, повністю заповнений блоком id
func Filled(id byte) *Chunk {
	c := new(Chunk)
	if id != 0 {
		for i := range c.blocks {
			c.blocks[i] = id
		}
	}
	return c
}

// DecodeDense декодує байти і одразу розпаковує результат
func DecodeDense(b []byte) (*Chunk, error) {
	cc, err := Decode(b)
	if err != nil {
		return nil, err
	}
	return cc.Decompressed(), nil
}

// Block повертає блок за координатою, або false якщо координата поза чанком
func (c *Chunk) Block(x, y, z, w int) (byte, bool) {
	if !inBounds(x, y, z, w) {
		return 0, false
	}
	return c.blocks[index(x, y, z, w)], true
}

// Decompressed повертає копію чанку, бо він і так розпакований
func (c *Chunk) Decompressed() *Chunk {
	cp := *c
	return &cp
}

// Equal порівнює два чанки воксель за вокселем
func (c *Chunk) Equal(o *Chunk) bool {
	return c.blocks == o.blocks
}

// Count рахує скільки вокселів містять блок id
func (c *Chunk) Count(id byte) (n int) {
	for _, b := range c.blocks {
		if b == id {
			n++
		}
	}
	return
}

// Fill заповнює область блоком id
func (c *Chunk) Fill(id byte, rect Rect4) {
	c.FillWith(SolidFill(id, rect))
}

// FillWith проходить область в канонічному порядку і ставить
// в кожен воксель те, що вирішить політика.
//
// Область має лежати в межах чанку (див. Rect4.InChunk),
// інакше метод панікує на виході за межі масиву.
func (c *Chunk) FillWith(params FillParams) {
	lo, hi := params.Rect.Bounds()
	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				base := index(x, y, z, 0)
				for w := lo[3]; w <= hi[3]; w++ {
					c.blocks[base+w] = params.Policy.Block(Point{x, y, z, w})
				}
			}
		}
	}
}

// Compress стискає чанк одним проходом у канонічному порядку.
// Кожна група не довша за MaxSpan, сусідні групи мають різні ID
// (крім випадку, коли попередня група вже має довжину MaxSpan),
// а сума довжин рівно Hypervolume.
func (c *Chunk) Compress() *CompressedChunk {
	groups := make([]BlockGroup, 0, 64)
	cur, span := c.blocks[0], 1
	for _, id := range c.blocks[1:] {
		if id == cur && span < MaxSpan {
			span++
			continue
		}
		groups = append(groups, BlockGroup{BlockID: cur, Span: byte(span)})
		cur, span = id, 1
	}
	// останню групу скидаємо завжди, якої б довжини вона не була
	groups = append(groups, BlockGroup{BlockID: cur, Span: byte(span)})
	return &CompressedChunk{groups: groups}
}
