package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomTable builds a random function table on {0,1}^v.
func randomTable(t *testing.T, v int) []Element {
	t.Helper()
	return randomElements(t, 1<<uint(v))
}

func TestHypercube(t *testing.T) {
	t.Run("LexicographicOrder", func(t *testing.T) {
		cube := Hypercube(2)
		require.Len(t, cube, 4)
		want := [][]uint64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
		for i, bits := range cube {
			for j, b := range bits {
				e := FromUint64(want[i][j])
				assert.True(t, b.Equal(&e), "entry %d bit %d", i, j)
			}
		}
	})

	t.Run("ZeroVariables", func(t *testing.T) {
		cube := Hypercube(0)
		require.Len(t, cube, 1)
		assert.Empty(t, cube[0])
	})
}

func TestBitsToIndex(t *testing.T) {
	for i, bits := range Hypercube(3) {
		assert.Equal(t, i, BitsToIndex(bits))
	}
}

func TestChi(t *testing.T) {
	// Chi(w, x) is the indicator of w on the cube.
	cube := Hypercube(3)
	for _, w := range cube {
		for _, x := range cube {
			got := Chi(w, x)
			if BitsToIndex(w) == BitsToIndex(x) {
				assert.True(t, got.IsOne())
			} else {
				assert.True(t, got.IsZero())
			}
		}
	}
}

func TestExtensionAgreesOnCube(t *testing.T) {
	const v = 3
	table := randomTable(t, v)
	f := TableFunc(table)

	t.Run("EvalExtension", func(t *testing.T) {
		for _, w := range Hypercube(v) {
			got := EvalExtension(f, w)
			want := f(w)
			assert.True(t, got.Equal(&want))
		}
	})

	t.Run("SymbolicExtension", func(t *testing.T) {
		ext := Extension(f, v)
		for _, w := range Hypercube(v) {
			got := evalAll(t, ext, w)
			want := f(w)
			assert.True(t, got.Equal(&want))
		}
	})

	t.Run("MultiExtension", func(t *testing.T) {
		multi := MultiExtension(f, v)
		for _, w := range Hypercube(v) {
			got := multi.Eval(w)
			want := f(w)
			assert.True(t, got.Equal(&want))
		}
	})

	t.Run("FormsAgreeOffCube", func(t *testing.T) {
		r := randomElements(t, v)
		direct := EvalExtension(f, r)
		symbolic := evalAll(t, Extension(f, v), r)
		expanded := MultiExtension(f, v).Eval(r)
		assert.True(t, direct.Equal(&symbolic))
		assert.True(t, direct.Equal(&expanded))
	})
}

func TestExtensionFrom(t *testing.T) {
	const v = 2
	table := randomTable(t, v)
	f := TableFunc(table)

	// Shifting variable indices must not change values: substitute at
	// the shifted indices.
	shifted := ExtensionFrom(f, v, 4)
	r := randomElements(t, v)
	p := shifted
	for j, x := range r {
		p = p.EvalIndex(x, 4+j)
	}
	p = p.ApplyAll()
	require.Empty(t, p.Monomials)

	want := EvalExtension(f, r)
	assert.True(t, p.Constant.Equal(&want))
}

func TestChiMonomial(t *testing.T) {
	w := []Element{Zero(), One()}
	m := ChiMonomial(w)
	require.Len(t, m.Terms, 2)

	// w_0 = 0 gives (1 - x_1), w_1 = 1 gives x_2.
	minusOne := FromInt64(-1)
	assert.True(t, m.Terms[0].Coeff.Equal(&minusOne))
	assert.Equal(t, 1, m.Terms[0].Index)
	assert.True(t, m.Terms[0].Const.IsOne())
	assert.True(t, m.Terms[1].Coeff.IsOne())
	assert.Equal(t, 2, m.Terms[1].Index)
	assert.True(t, m.Terms[1].Const.IsZero())
}

func TestExtensionSkipsZeroSummands(t *testing.T) {
	table := []Element{Zero(), FromUint64(5), Zero(), Zero()}
	ext := Extension(TableFunc(table), 2)
	assert.Len(t, ext.Monomials, 1)
}
