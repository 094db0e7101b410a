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

import "golang.org/x/exp/constraints"

// sort2 повертає пару (менше, більше)
func sort2[T constraints.Ordered](a, b T) (T, T) {
	if a > b {
		return b, a
	}
	return a, b
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// index перетворює 4D координату в лінійну позицію канонічного порядку
func index(x, y, z, w int) int {
	return x*(Height*Length*Weth) + y*(Length*Weth) + z*Weth + w
}

// inBounds перевіряє чи лежить координата всередині чанку
func inBounds(x, y, z, w int) bool {
	return x >= 0 && x < Width &&
		y >= 0 && y < Height &&
		z >= 0 && z < Length &&
		w >= 0 && w < Weth
}
