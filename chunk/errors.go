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
	"errors"
	"fmt"
)

// Помилки, які може повернути декодер чанків.
// Порівнювати через errors.Is, а деталі діставати через errors.As.
var (
	ErrMalformedPairing = errors.New("chunk: broken id/run-length pair")
	ErrCapacityExceeded = errors.New("chunk: too much data")
)

// MalformedPairingError - вхідних байтів непарна кількість,
// тому їх неможливо розбити на пари [id, span]
type MalformedPairingError struct {
	Length int // скільки байтів отримали
}

func (e *MalformedPairingError) Error() string {
	return fmt.Sprintf("a chunk-reading error occurred: expected an even number of bytes, but found an odd amount (%d)", e.Length)
}

func (e *MalformedPairingError) Is(target error) bool { return target == ErrMalformedPairing }

// CapacityExceededError - сума довжин груп вилазить за Hypervolume
type CapacityExceededError struct {
	// LastGroup - група, на якій стався переповнення, в тому вигляді, як вона прийшла
	LastGroup BlockGroup
	// Excess - на скільки вокселів дані виходять за межі чанку
	Excess int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("a chunk-reading error occurred: data for, at most, %d blocks was expected, but data for %d more block(s) was found (at %v)",
		Hypervolume, e.Excess, e.LastGroup)
}

func (e *CapacityExceededError) Is(target error) bool { return target == ErrCapacityExceeded }
