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

// Йоу, чат! Тут ми вивантажуємо чанк у NBT, щоб його могли прочитати
// інші інструменти. Всередині NBT лежать ті самі байти [id, span],
// а поруч - палітра з людськими назвами блоків.

package export

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"

	"FDMToolkit/catalog"
	"FDMToolkit/chunk"
)

// Format - значення поля Format в кореневому тезі
const Format = "fdm-rle"

// Document - кореневий NBT тег дампу
type Document struct {
	Format     string   `nbt:"Format"`
	Dimensions []int32  `nbt:"Dimensions"`
	Palette    []string `nbt:"Palette"`
	Runs       []byte   `nbt:"Runs"`
}

// NewDocument описує стиснутий чанк
func NewDocument(c *chunk.CompressedChunk) Document {
	return Document{
		Format:     Format,
		Dimensions: []int32{chunk.Width, chunk.Height, chunk.Length, chunk.Weth},
		Palette:    palette(c),
		Runs:       c.Bytes(),
	}
}

// palette збирає назви блоків у порядку першої появи
func palette(c *chunk.CompressedChunk) []string {
	var seen [256]bool
	names := []string{}
	for i := 0; i < c.Len(); i++ {
		id := c.Group(i).BlockID
		if seen[id] {
			continue
		}
		seen[id] = true
		if b, ok := catalog.Lookup(id); ok {
			names = append(names, b.Name())
		} else {
			names = append(names, fmt.Sprintf("block#%d", id))
		}
	}
	return names
}

// WriteNBT пише gzip(NBT) дамп чанку в w
func WriteNBT(w io.Writer, c *chunk.CompressedChunk) error {
	gw := gzip.NewWriter(w)
	if err := nbt.NewEncoder(gw).Encode(NewDocument(c), ""); err != nil {
		return fmt.Errorf("encode nbt fail: %w", err)
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("close gzip writer fail: %w", err)
	}
	return nil
}

// ReadNBT читає дамп, записаний WriteNBT, і перевіряє дані через строгий декодер
func ReadNBT(r io.Reader) (*chunk.CompressedChunk, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip reader fail: %w", err)
	}
	data, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("read gzip fail: %w", err)
	}
	if err := gr.Close(); err != nil {
		return nil, fmt.Errorf("close gzip reader fail: %w", err)
	}

	var doc Document
	if err := nbt.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse nbt fail: %w", err)
	}
	if doc.Format != Format {
		return nil, fmt.Errorf("unexpected format %q", doc.Format)
	}
	return chunk.Decode(doc.Runs)
}

// Bytes - зручна обгортка над WriteNBT
func Bytes(c *chunk.CompressedChunk) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteNBT(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
