package onebased_test

import (
	"testing"

	rng "github.com/leesper/go_rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caio/go-fenwick/onebased"
	"github.com/caio/go-fenwick/zerobased"
)

func collectUp(p, length int) []int {
	var out []int
	s := onebased.Up(p, length)
	for x, ok := s.Next(); ok; x, ok = s.Next() {
		out = append(out, x)
	}
	return out
}

func collectDown(p int) []int {
	var out []int
	s := onebased.Down(p)
	for x, ok := s.Next(); ok; x, ok = s.Next() {
		out = append(out, x)
	}
	return out
}

func TestNextSteps(t *testing.T) {
	assert.Equal(t, 0b10, onebased.NextUp(0b1))
	assert.Equal(t, 0b100, onebased.NextUp(0b10))
	assert.Equal(t, 0b1000, onebased.NextUp(0b110))
	assert.Equal(t, 0b1000, onebased.NextUp(0b111))

	assert.Equal(t, 0, onebased.NextDown(0b1))
	assert.Equal(t, 0b100, onebased.NextDown(0b101))
	assert.Equal(t, 0b110, onebased.NextDown(0b111))
}

func TestDownBoundary(t *testing.T) {
	require.Empty(t, collectDown(0))
	require.Equal(t, []int{1}, collectDown(1))
}

func TestUpBoundary(t *testing.T) {
	require.Equal(t, []int{0b1, 0b10, 0b100}, collectUp(1, 0b100))
	require.Equal(t, []int{0b100}, collectUp(0b100, 0b100))
	require.Empty(t, collectUp(0b111, 0b100))
	require.Empty(t, collectUp(0, 10))
	require.Empty(t, collectUp(1, 0))
}

func TestDownSequence(t *testing.T) {
	init := 0b1101110101011010000
	want := []int{
		0b1101110101011010000,
		0b1101110101011000000,
		0b1101110101010000000,
		0b1101110101000000000,
		0b1101110100000000000,
		0b1101110000000000000,
		0b1101100000000000000,
		0b1101000000000000000,
		0b1100000000000000000,
		0b1000000000000000000,
	}

	require.Equal(t, want, collectDown(init))
}

func TestUpSequence(t *testing.T) {
	init := 0b1101110101011010000
	limit := 0b100000000000000000000
	want := []int{
		0b001101110101011010000,
		0b001101110101011100000,
		0b001101110101100000000,
		0b001101110110000000000,
		0b001101111000000000000,
		0b001110000000000000000,
		0b010000000000000000000,
		0b100000000000000000000,
	}

	require.Equal(t, want, collectUp(init, limit))
}

// The two conventions describe the same walks, one position apart.
func TestMatchesZeroBased(t *testing.T) {
	gen := rng.NewUniformGenerator(0xBEEF)

	for trial := 0; trial < 1000; trial++ {
		length := int(gen.Int32Range(1, 1<<20))
		p := int(gen.Int32Range(1, int32(length)+1))

		want := collectUp(p, length)
		zs := zerobased.Up(p-1, length)
		var got []int
		for x, ok := zs.Next(); ok; x, ok = zs.Next() {
			got = append(got, x+1)
		}
		require.Equal(t, want, got)

		want = collectDown(p)
		zd := zerobased.Down(p - 1)
		got = got[:0]
		for x, ok := zd.Next(); ok; x, ok = zd.Next() {
			got = append(got, x+1)
		}
		require.Equal(t, want, got)
	}
}

func TestRestartable(t *testing.T) {
	require.Equal(t, collectUp(13, 100), collectUp(13, 100))
	require.Equal(t, collectDown(100), collectDown(100))
}

func TestTraversalProperties(t *testing.T) {
	gen := rng.NewUniformGenerator(0xFACE)

	for trial := 0; trial < 1000; trial++ {
		length := int(gen.Int32Range(1, 1<<20))
		p := int(gen.Int32Range(1, int32(length)+1))

		up := collectUp(p, length)
		require.NotEmpty(t, up)
		assert.Equal(t, p, up[0])
		for k, x := range up {
			assert.LessOrEqual(t, x, length)
			if k > 0 {
				assert.Greater(t, x, up[k-1])
			}
		}

		down := collectDown(p)
		require.NotEmpty(t, down)
		assert.Equal(t, p, down[0])
		for k, x := range down {
			assert.GreaterOrEqual(t, x, 1)
			if k > 0 {
				assert.Less(t, x, down[k-1])
			}
		}
	}
}
