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

// Йоу, чат! Тут розбираємо як заповнювати області в чанку.
// Кожне заповнення - це область плюс "політика", яка для кожного
// вокселя вирішує, який блок туди поставити.

package chunk

import "math"

// Policy обирає ID блоку для вокселя. Fill викликає її рівно один раз
// на кожен воксель області, в канонічному порядку.
type Policy interface {
	Block(p Point) byte
}

// PolicyFunc дозволяє використати звичайну функцію як Policy
type PolicyFunc func(p Point) byte

func (f PolicyFunc) Block(p Point) byte { return f(p) }

// Solid ставить один і той же блок всюди
type Solid byte

func (s Solid) Block(Point) byte { return byte(s) }

// Hollow ставить блок на межі Rect, а всередині - повітря.
// Внутрішність перезаписується, а не лишається як була.
type Hollow struct {
	ID   byte
	Rect Rect4
}

func (h Hollow) Block(p Point) byte {
	if h.Rect.HasOnPerimeter(p) {
		return h.ID
	}
	return 0
}

// Dither перебирає палітру по колу, залежно лише від кількості викликів.
// Тому візерунок відтворюється тільки при тому ж порядку обходу.
type Dither struct {
	palette []byte
	n       uint
}

// NewDither створює політику з копією палітри
func NewDither(palette []byte) *Dither {
	return &Dither{palette: append([]byte(nil), palette...)}
}

// Block спочатку збільшує лічильник, потім бере palette[n % len].
// Порожня палітра дає повітря.
func (d *Dither) Block(Point) byte {
	if d.n == math.MaxUint {
		d.n = 0
	}
	d.n++
	if len(d.palette) == 0 {
		return 0
	}
	return d.palette[d.n%uint(len(d.palette))]
}

// FillParams - що і де заповнювати
type FillParams struct {
	Policy Policy
	Rect   Rect4
}

// WithPolicy заповнює область довільною політикою
func WithPolicy(p Policy, rect Rect4) FillParams {
	return FillParams{Policy: p, Rect: rect}
}

// SolidFill заповнює всю область блоком id
func SolidFill(id byte, rect Rect4) FillParams {
	return FillParams{Policy: Solid(id), Rect: rect}
}

// HollowFill робить з області порожню коробку зі стінками з id
func HollowFill(id byte, rect Rect4) FillParams {
	return FillParams{Policy: Hollow{ID: id, Rect: rect}, Rect: rect}
}

// DitherFill заповнює область блоками з палітри по черзі
func DitherFill(palette []byte, rect Rect4) FillParams {
	return FillParams{Policy: NewDither(palette), Rect: rect}
}
