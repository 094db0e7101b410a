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

package edit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FDMToolkit/catalog"
	"FDMToolkit/chunk"
)

const housePlan = `
lenient = true

[[fill]]
policy = "solid"
block = "sandstone"
start = [0, 0, 0, 0]
end = [7, 4, 7, 7]

[[fill]]
policy = "hollow"
block = "sandstone"
start = [0, 4, 0, 0]
end = [7, 8, 7, 7]

[[fill]]
policy = "Dither"
palette = ["stone", "dirt"]
start = [0, 20, 0, 0]
end = [0, 20, 0, 3]
`

func TestParse(t *testing.T) {
	p, err := Parse(housePlan)
	require.NoError(t, err)
	require.True(t, p.Lenient)
	require.Len(t, p.Fill, 3)

	assert.Equal(t, PolicySolid, p.Fill[0].Policy)
	assert.Equal(t, catalog.Sandstone, p.Fill[0].Block)
	assert.Equal(t, [4]int{7, 4, 7, 7}, p.Fill[0].End)
	assert.Equal(t, PolicyHollow, p.Fill[1].Policy)
	assert.Equal(t, PolicyDither, p.Fill[2].Policy)
	assert.Equal(t, []catalog.Block{catalog.Stone, catalog.Dirt}, p.Fill[2].Palette)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		plan string
	}{
		{"unknown key", "lenient = true\ncolor = \"red\"\n"},
		{"unknown policy", "[[fill]]\npolicy = \"sphere\"\n"},
		{"unknown block", "[[fill]]\nblock = \"bedrock\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.plan)
			require.Error(t, err)
		})
	}

	_, err := Parse("lenient = true\ncolor = \"red\"\n")
	var unknown UnknownKeysError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, UnknownKeysError{"color"}, unknown)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	require.NoError(t, os.WriteFile(path, []byte(housePlan), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	require.Len(t, p.Fill, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestPlan_Apply(t *testing.T) {
	p, err := Parse(housePlan)
	require.NoError(t, err)

	c := new(chunk.Chunk)
	n, err := p.Apply(c)
	require.NoError(t, err)
	assert.Equal(t, 8*5*8*8+8*5*8*8+4, n)

	id, _ := c.Block(3, 2, 3, 3)
	assert.Equal(t, catalog.Sandstone.ID(), id)
	// hollow перезаписав внутрішність шару y=5..7 повітрям
	id, _ = c.Block(3, 6, 3, 3)
	assert.Equal(t, catalog.Air.ID(), id)
	id, _ = c.Block(3, 8, 3, 3)
	assert.Equal(t, catalog.Sandstone.ID(), id)

	for w, want := range []catalog.Block{catalog.Dirt, catalog.Stone, catalog.Dirt, catalog.Stone} {
		id, _ = c.Block(0, 20, 0, w)
		assert.Equal(t, want.ID(), id, "w=%d", w)
	}
}

func TestPlan_ValidateLeavesChunkUntouched(t *testing.T) {
	p := Plan{Fill: []Step{
		{Policy: PolicySolid, Block: catalog.Stone, End: [4]int{1, 1, 1, 1}},
		{Policy: PolicySolid, Block: catalog.Stone, End: [4]int{8, 0, 0, 0}},
	}}
	c := new(chunk.Chunk)
	_, err := p.Apply(c)
	require.ErrorIs(t, err, ErrOutOfBounds)

	var se *StepError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Index)
	assert.Equal(t, chunk.Hypervolume, c.Count(0))

	p = Plan{Fill: []Step{{Policy: PolicyDither}}}
	require.ErrorIs(t, p.Validate(), ErrEmptyPalette)

	p = Plan{Fill: []Step{{Policy: PolicyKind(9)}}}
	require.ErrorIs(t, p.Validate(), ErrUnknownPolicy)

	p = Plan{Fill: []Step{{Start: [4]int{-1, 0, 0, 0}}}}
	require.ErrorIs(t, p.Validate(), ErrOutOfBounds)
}

func TestPolicyKind_Text(t *testing.T) {
	text, err := PolicyHollow.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "hollow", string(text))

	_, err = PolicyKind(7).MarshalText()
	require.ErrorIs(t, err, ErrUnknownPolicy)
	assert.Equal(t, "PolicyKind(7)", PolicyKind(7).String())
}
