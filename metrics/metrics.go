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

package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"FDMToolkit/chunk"
)

// Значення мітки reason для помилок декодування
const (
	ReasonMalformedPairing = "malformed_pairing"
	ReasonCapacityExceeded = "capacity_exceeded"
	ReasonOther            = "other"
)

// Metrics тримає всі Prometheus лічильники тулкіту
type Metrics struct {
	ChunksDecoded prometheus.Counter
	DecodeErrors  *prometheus.CounterVec
	BytesRead     prometheus.Counter
	BytesWritten  prometheus.Counter
	VoxelsFilled  prometheus.Counter
}

// New створює лічильники і реєструє їх в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChunksDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fdm_chunks_decoded_total",
			Help: "Total chunks successfully decoded",
		}),
		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fdm_chunk_decode_errors_total",
			Help: "Total chunk decode failures by reason",
		}, []string{"reason"}),
		BytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fdm_chunk_bytes_read_total",
			Help: "Total chunk bytes handed to the decoder",
		}),
		BytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fdm_chunk_bytes_written_total",
			Help: "Total encoded chunk bytes produced",
		}),
		VoxelsFilled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fdm_voxels_filled_total",
			Help: "Total voxels written by fill operations",
		}),
	}
	reg.MustRegister(m.ChunksDecoded, m.DecodeErrors, m.BytesRead, m.BytesWritten, m.VoxelsFilled)
	return m
}

// ObserveDecode рахує одну спробу декодування n байтів.
// Чанк, декодований в lenient режимі разом з помилкою, рахується в обох лічильниках.
func (m *Metrics) ObserveDecode(n int, c *chunk.CompressedChunk, err error) {
	m.BytesRead.Add(float64(n))
	if c != nil {
		m.ChunksDecoded.Inc()
	}
	if err != nil {
		m.DecodeErrors.WithLabelValues(Reason(err)).Inc()
	}
}

// Reason класифікує помилку декодування для мітки reason
func Reason(err error) string {
	switch {
	case errors.Is(err, chunk.ErrMalformedPairing):
		return ReasonMalformedPairing
	case errors.Is(err, chunk.ErrCapacityExceeded):
		return ReasonCapacityExceeded
	default:
		return ReasonOther
	}
}
