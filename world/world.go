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

// Йоу, чат! Тут живе індекс світу - мапа від координат чанку до самого чанку.
// Світ 4D Miner має висоту рівно в один чанк, тому ключ - це (x, z, w)
// в координатах чанків. Кожен завантажений чанк має свій м'ютекс,
// бо заповнювати чанк може лише один власник за раз.

package world

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"FDMToolkit/chunk"
	"FDMToolkit/metrics"
)

// ErrChunkNotLoaded повертається коли чанка за координатами немає в індексі
var ErrChunkNotLoaded = errors.New("chunk is not loaded")

// Height - висота всього світу по осі Y
const Height = chunk.Height

// World - індекс завантажених чанків
type World struct {
	log     *zap.Logger      // логер для відлагодження
	metrics *metrics.Metrics // лічильники кодека

	lock   sync.Mutex
	chunks map[[3]int64]*LoadedChunk // завантажені чанки
}

// LoadedChunk - розпакований чанк зі своїм м'ютексом
type LoadedChunk struct {
	sync.Mutex
	*chunk.Chunk
}

// New створює порожній світ
func New(logger *zap.Logger, m *metrics.Metrics) *World {
	return &World{
		log:     logger,
		metrics: m,
		chunks:  make(map[[3]int64]*LoadedChunk),
	}
}

// Load декодує байти чанку і кладе його в індекс за координатами pos.
// В lenient режимі переповнений чанк все одно завантажується,
// а помилка повертається для діагностики.
func (w *World) Load(pos [3]int64, data []byte, lenient bool) error {
	logger := w.log.With(zap.Int64("x", pos[0]), zap.Int64("z", pos[1]), zap.Int64("w", pos[2]))
	logger.Debug("Loading chunk", zap.Int("bytes", len(data)))

	decode := chunk.Decode
	if lenient {
		decode = chunk.DecodeLenient
	}
	c, err := decode(data)
	w.metrics.ObserveDecode(len(data), c, err)
	if c == nil {
		logger.Error("Decode chunk fail", zap.Error(err))
		return fmt.Errorf("decode chunk %v fail: %w", pos, err)
	}
	if err != nil {
		logger.Warn("Chunk data clipped", zap.Error(err))
	}

	w.Put(pos, c.Decompressed())
	logger.Debug("Loaded chunk", zap.Int("groups", c.Len()))
	return err
}

// Put кладе чанк в індекс, замінюючи попередній
func (w *World) Put(pos [3]int64, c *chunk.Chunk) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.chunks[pos] = &LoadedChunk{Chunk: c}
}

// Chunk повертає завантажений чанк
func (w *World) Chunk(pos [3]int64) (*LoadedChunk, bool) {
	w.lock.Lock()
	defer w.lock.Unlock()
	lc, ok := w.chunks[pos]
	return lc, ok
}

// Edit викликає fn з ексклюзивним доступом до чанку
func (w *World) Edit(pos [3]int64, fn func(c *chunk.Chunk)) error {
	lc, ok := w.Chunk(pos)
	if !ok {
		return ErrChunkNotLoaded
	}
	lc.Lock()
	defer lc.Unlock()
	fn(lc.Chunk)
	return nil
}

// Fill заповнює область в чанку pos і рахує записані воксели.
// Область має лежати в межах чанку.
func (w *World) Fill(pos [3]int64, params chunk.FillParams) error {
	err := w.Edit(pos, func(c *chunk.Chunk) { c.FillWith(params) })
	if err == nil {
		w.metrics.VoxelsFilled.Add(float64(params.Rect.Volume()))
	}
	return err
}

// Block повертає блок за глобальними координатами світу
func (w *World) Block(x int64, y int, z, wc int64) (byte, bool) {
	pos := [3]int64{floorDiv(x, chunk.Width), floorDiv(z, chunk.Length), floorDiv(wc, chunk.Weth)}
	lc, ok := w.Chunk(pos)
	if !ok {
		return 0, false
	}
	lc.Lock()
	defer lc.Unlock()
	return lc.Block(
		int(x-pos[0]*chunk.Width),
		y,
		int(z-pos[1]*chunk.Length),
		int(wc-pos[2]*chunk.Weth),
	)
}

// Store стискає чанк і повертає його байти
func (w *World) Store(pos [3]int64) ([]byte, error) {
	lc, ok := w.Chunk(pos)
	if !ok {
		return nil, ErrChunkNotLoaded
	}
	lc.Lock()
	data := lc.Compress().Bytes()
	lc.Unlock()
	w.metrics.BytesWritten.Add(float64(len(data)))
	return data, nil
}

// Unload вивантажує чанк і повертає його байти
func (w *World) Unload(pos [3]int64) ([]byte, error) {
	data, err := w.Store(pos)
	if err != nil {
		return nil, err
	}
	w.lock.Lock()
	delete(w.chunks, pos)
	w.lock.Unlock()
	w.log.Debug("Unloaded chunk", zap.Int64("x", pos[0]), zap.Int64("z", pos[1]), zap.Int64("w", pos[2]))
	return data, nil
}

// Len повертає кількість завантажених чанків
func (w *World) Len() int {
	w.lock.Lock()
	defer w.lock.Unlock()
	return len(w.chunks)
}

// floorDiv ділить з округленням вниз, щоб -1 потрапляв у чанк -1
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
