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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomChunk генерує чанк з довгими і короткими пробігами
func randomChunk(seed int64) *Chunk {
	r := rand.New(rand.NewSource(seed))
	c := new(Chunk)
	for i := 0; i < Hypervolume; {
		id := byte(r.Intn(4))
		n := 1 + r.Intn(600)
		for ; n > 0 && i < Hypervolume; n-- {
			c.blocks[i] = id
			i++
		}
	}
	return c
}

func spanSum(c *CompressedChunk) (n int) {
	for _, g := range c.groups {
		n += int(g.Span)
	}
	return
}

func TestChunk_FilledCompress(t *testing.T) {
	c := Filled(3).Compress()
	require.Equal(t, (Hypervolume+MaxSpan-1)/MaxSpan, c.Len())
	require.Equal(t, Hypervolume, spanSum(c))
	for i := 0; i < c.Len()-1; i++ {
		require.Equal(t, BlockGroup{BlockID: 3, Span: MaxSpan}, c.Group(i))
	}
	require.Equal(t, BlockGroup{BlockID: 3, Span: Hypervolume % MaxSpan}, c.Group(c.Len()-1))
	require.True(t, c.Equal(FilledCompressed(3)))
}

func TestChunk_RoundTrip(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		d := randomChunk(seed)
		c := d.Compress()
		require.Equal(t, Hypervolume, spanSum(c))
		require.True(t, d.Equal(c.Decompressed()), "seed %d", seed)
	}
}

func TestChunk_CompressMaximal(t *testing.T) {
	c := randomChunk(42).Compress()
	for i := 1; i < c.Len(); i++ {
		prev, cur := c.Group(i-1), c.Group(i)
		require.NotZero(t, cur.Span)
		if prev.BlockID == cur.BlockID {
			require.Equal(t, byte(MaxSpan), prev.Span, "group %d could be merged", i)
		}
	}
}

func TestChunk_CompressLastVoxel(t *testing.T) {
	// останній воксель відрізняється від усіх попередніх
	d := new(Chunk)
	d.blocks[Hypervolume-1] = 9
	c := d.Compress()
	require.Equal(t, BlockGroup{BlockID: 9, Span: 1}, c.Group(c.Len()-1))
	require.Equal(t, Hypervolume, spanSum(c))
	require.True(t, d.Equal(c.Decompressed()))
}

func TestChunk_Block(t *testing.T) {
	d := new(Chunk)
	d.blocks[index(7, 127, 7, 7)] = 4
	d.blocks[index(1, 2, 3, 4)] = 5

	tests := []struct {
		p    Point
		id   byte
		isOk bool
	}{
		{Point{0, 0, 0, 0}, 0, true},
		{Point{7, 127, 7, 7}, 4, true},
		{Point{1, 2, 3, 4}, 5, true},
		{Point{8, 0, 0, 0}, 0, false},
		{Point{0, 128, 0, 0}, 0, false},
		{Point{0, 0, -1, 0}, 0, false},
		{Point{0, 0, 0, 8}, 0, false},
	}
	c := d.Compress()
	for _, tt := range tests {
		id, ok := d.Block(tt.p[0], tt.p[1], tt.p[2], tt.p[3])
		require.Equal(t, tt.isOk, ok, "%v", tt.p)
		require.Equal(t, tt.id, id, "%v", tt.p)

		id, ok = c.Block(tt.p[0], tt.p[1], tt.p[2], tt.p[3])
		require.Equal(t, tt.isOk, ok, "compressed %v", tt.p)
		require.Equal(t, tt.id, id, "compressed %v", tt.p)
	}
}

func TestChunk_CanonicalOrder(t *testing.T) {
	// друга позиція в канонічному порядку - це w=1
	d := new(Chunk)
	d.Fill(6, NewRect4(Point{0, 0, 0, 1}, Point{0, 0, 0, 1}))
	c := d.Compress()
	require.Equal(t, BlockGroup{BlockID: 0, Span: 1}, c.Group(0))
	require.Equal(t, BlockGroup{BlockID: 6, Span: 1}, c.Group(1))

	// x=1 починається після Height*Length*Weth вокселів
	_, hi := NewRect4(Point{}, Point{0, Height - 1, Length - 1, Weth - 1}).Bounds()
	require.Equal(t, Height*Length*Weth-1, index(hi[0], hi[1], hi[2], hi[3]))
	require.Equal(t, Height*Length*Weth, index(1, 0, 0, 0))
}

func TestChunk_DecompressedCopy(t *testing.T) {
	d := Filled(2)
	cp := d.Decompressed()
	cp.Fill(0, NewRect4(Point{}, Point{}))
	id, _ := d.Block(0, 0, 0, 0)
	require.Equal(t, byte(2), id)
	require.Equal(t, Hypervolume-1, cp.Count(2))
}

func TestDecodeDense(t *testing.T) {
	d, err := DecodeDense([]byte{7, 3})
	require.NoError(t, err)
	require.Equal(t, 3, d.Count(7))
	require.Equal(t, Hypervolume-3, d.Count(0))

	_, err = DecodeDense([]byte{7})
	require.ErrorIs(t, err, ErrMalformedPairing)
}
