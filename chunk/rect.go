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

// Point - координата вокселя (x, y, z, w)
type Point [4]int

// Rect4 - 4D прямокутна область між двома кутами.
// Кути можна задавати в будь-якому порядку, межі включні з обох боків.
type Rect4 struct {
	Start Point
	End   Point
}

// NewRect4 створює область від start до end
func NewRect4(start, end Point) Rect4 {
	return Rect4{Start: start, End: end}
}

// Bounds повертає нормалізовані кути: покоординатний мінімум і максимум
func (r Rect4) Bounds() (lo, hi Point) {
	for i := range lo {
		lo[i], hi[i] = sort2(r.Start[i], r.End[i])
	}
	return
}

// Contains перевіряє чи лежить точка всередині області
func (r Rect4) Contains(p Point) bool {
	lo, hi := r.Bounds()
	for i := range p {
		if p[i] < lo[i] || p[i] > hi[i] {
			return false
		}
	}
	return true
}

// HasOnPerimeter перевіряє чи лежить точка на межі області:
// вона має бути всередині по всіх осях і збігатися з мінімумом
// або максимумом хоча б по одній з них
func (r Rect4) HasOnPerimeter(p Point) bool {
	if !r.Contains(p) {
		return false
	}
	lo, hi := r.Bounds()
	for i := range p {
		if p[i] == lo[i] || p[i] == hi[i] {
			return true
		}
	}
	return false
}

// Volume - кількість вокселів в області
func (r Rect4) Volume() int {
	lo, hi := r.Bounds()
	v := 1
	for i := range lo {
		v *= hi[i] - lo[i] + 1
	}
	return v
}

// InChunk перевіряє що обидва кути лежать в межах чанку.
// Fill цього не перевіряє, тому викликаючий код має зробити це сам.
func (r Rect4) InChunk() bool {
	return inBounds(r.Start[0], r.Start[1], r.Start[2], r.Start[3]) &&
		inBounds(r.End[0], r.End[1], r.End[2], r.End[3])
}
