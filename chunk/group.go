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

// Йоу, чат! Тут живе найменша цеглинка формату чанків - BlockGroup.
// Це пара (ID блоку, довжина пробігу), з яких складається стиснутий чанк.

package chunk

import "fmt"

// Розміри чанку по кожній осі. X змінюється найповільніше, W - найшвидше.
const (
	Width  = 8   // вісь X
	Height = 128 // вісь Y
	Length = 8   // вісь Z
	Weth   = 8   // вісь W
)

// Hypervolume - точна кількість вокселів у кожному чанку
const Hypervolume = Width * Height * Length * Weth

// MaxSpan - максимальна довжина однієї групи, влазить в один байт
const MaxSpan = 255

// BlockGroup - пара ID блоку і кількості блоків підряд
// у канонічному порядку обходу. Span завжди в межах [1, 255].
type BlockGroup struct {
	BlockID byte
	Span    byte
}

// String виводить групу у вигляді "[span * block#id]"
func (g BlockGroup) String() string {
	return fmt.Sprintf("[%d * block#%d]", g.Span, g.BlockID)
}

// appendGroups дописує до dst групи блоку id загальною довжиною n,
// розбиваючи її на шматки не довші за MaxSpan
func appendGroups(dst []BlockGroup, id byte, n int) []BlockGroup {
	for n > 0 {
		span := clamp(n, 1, MaxSpan)
		dst = append(dst, BlockGroup{BlockID: id, Span: byte(span)})
		n -= span
	}
	return dst
}
