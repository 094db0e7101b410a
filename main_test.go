package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"FDMToolkit/chunk"
	"FDMToolkit/edit"
	"FDMToolkit/export"
)

func TestWriteNBT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunk.nbt")
	c := chunk.Filled(4).Compress()
	require.NoError(t, writeNBT(path, c.Bytes()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	back, err := export.ReadNBT(f)
	require.NoError(t, err)
	require.True(t, c.Equal(back))

	require.ErrorIs(t, writeNBT(path, []byte{1}), chunk.ErrMalformedPairing)
}

// oversized - 258 груп по 255 блоків id, на 254 воксели більше ніж треба
func oversized(id byte) []byte {
	b := make([]byte, 0, 2*258)
	for i := 0; i < 258; i++ {
		b = append(b, id, 255)
	}
	return b
}

const stonePlan = `
[[fill]]
policy = "solid"
block = "stone"
start = [0, 0, 0, 0]
end = [0, 0, 0, 7]
`

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte // nil означає без -in
		plan    string
		lenient bool
		wantErr error
		want    func() *chunk.Chunk
	}{
		{
			name: "no input is air",
			want: func() *chunk.Chunk { return new(chunk.Chunk) },
		},
		{
			name: "no input with plan",
			plan: stonePlan,
			want: func() *chunk.Chunk {
				c := new(chunk.Chunk)
				c.Fill(3, chunk.NewRect4(chunk.Point{0, 0, 0, 0}, chunk.Point{0, 0, 0, 7}))
				return c
			},
		},
		{
			name:  "partial input is padded",
			input: []byte{7, 100, 3, 155},
			want: func() *chunk.Chunk {
				c, _ := chunk.DecodeDense([]byte{7, 100, 3, 155})
				return c
			},
		},
		{
			name:    "strict rejects overflow",
			input:   oversized(5),
			wantErr: chunk.ErrCapacityExceeded,
		},
		{
			name:    "lenient flag clips overflow",
			input:   oversized(5),
			lenient: true,
			want:    func() *chunk.Chunk { return chunk.Filled(5) },
		},
		{
			name:  "lenient plan clips overflow",
			input: oversized(5),
			plan:  "lenient = true\n" + stonePlan,
			want: func() *chunk.Chunk {
				c := chunk.Filled(5)
				c.Fill(3, chunk.NewRect4(chunk.Point{0, 0, 0, 0}, chunk.Point{0, 0, 0, 7}))
				return c
			},
		},
		{
			name:    "lenient still rejects odd length",
			input:   []byte{1, 2, 3},
			lenient: true,
			wantErr: chunk.ErrMalformedPairing,
		},
		{
			name:    "invalid plan",
			plan:    "[[fill]]\nblock = \"stone\"\nend = [8, 0, 0, 0]\n",
			wantErr: edit.ErrOutOfBounds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			opts := options{
				OutPath:     filepath.Join(dir, "out.bin"),
				Lenient:     tt.lenient,
				MetricsPath: filepath.Join(dir, "metrics.prom"),
			}
			if tt.input != nil {
				opts.InPath = filepath.Join(dir, "in.bin")
				require.NoError(t, os.WriteFile(opts.InPath, tt.input, 0o644))
			}
			if tt.plan != "" {
				opts.PlanPath = filepath.Join(dir, "plan.toml")
				require.NoError(t, os.WriteFile(opts.PlanPath, []byte(tt.plan), 0o644))
			}

			err := run(zap.NewNop(), opts)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				_, statErr := os.Stat(opts.OutPath)
				assert.True(t, os.IsNotExist(statErr), "output must not be written on error")
				return
			}
			require.NoError(t, err)

			data, err := os.ReadFile(opts.OutPath)
			require.NoError(t, err)
			got, err := chunk.Decode(data)
			require.NoError(t, err)
			require.True(t, tt.want().Equal(got.Decompressed()))
			require.True(t, tt.want().Compress().Equal(got))

			prom, err := os.ReadFile(opts.MetricsPath)
			require.NoError(t, err)
			assert.Contains(t, string(prom), "fdm_chunk_bytes_written_total")
		})
	}
}

func TestRun_NBT(t *testing.T) {
	dir := t.TempDir()
	opts := options{NBTPath: filepath.Join(dir, "chunk.nbt")}
	require.NoError(t, run(zap.NewNop(), opts))

	f, err := os.Open(opts.NBTPath)
	require.NoError(t, err)
	defer f.Close()
	back, err := export.ReadNBT(f)
	require.NoError(t, err)
	require.True(t, back.Equal(chunk.FilledCompressed(0)))
}
