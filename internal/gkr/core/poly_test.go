package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalAll substitutes vals[j] for x_{j+1} and returns the resulting
// constant.
func evalAll(t *testing.T, p Polynomial, vals []Element) Element {
	t.Helper()
	for j, v := range vals {
		p = p.EvalIndex(v, j+1)
	}
	p = p.ApplyAll()
	require.Empty(t, p.Monomials, "polynomial not fully evaluated")
	return p.Constant
}

func randomElements(t *testing.T, n int) []Element {
	t.Helper()
	out := make([]Element, n)
	for i := range out {
		e, err := Random()
		require.NoError(t, err)
		out[i] = e
	}
	return out
}

func TestTerm(t *testing.T) {
	t.Run("Eval", func(t *testing.T) {
		// 3x + 5 at x = 7
		term := NewTerm(FromUint64(3), 1, FromUint64(5))
		got := term.Eval(FromUint64(7))
		want := FromUint64(26)
		assert.True(t, got.Equal(&want))
	})

	t.Run("IsConstant", func(t *testing.T) {
		assert.True(t, NewTerm(Zero(), 1, FromUint64(5)).IsConstant())
		assert.False(t, NewTerm(One(), 1, FromUint64(5)).IsConstant())
	})
}

func TestMonomial(t *testing.T) {
	t.Run("EvalUnivariate", func(t *testing.T) {
		// 2 * (x + 1) * (3x + 2) at x = 2
		m := NewMonomial(FromUint64(2), []Term{
			NewTerm(One(), 1, One()),
			NewTerm(FromUint64(3), 1, FromUint64(2)),
		})
		got := m.EvalUnivariate(FromUint64(2))
		want := FromUint64(48)
		assert.True(t, got.Equal(&want))
	})

	t.Run("EvalUnivariateShortCircuitsOnZeroFactor", func(t *testing.T) {
		// (x - 4) vanishes at x = 4
		m := NewMonomial(FromUint64(7), []Term{
			NewTerm(One(), 1, FromInt64(-4)),
			NewTerm(FromUint64(5), 1, One()),
		})
		got := m.EvalUnivariate(FromUint64(4))
		assert.True(t, got.IsZero())
	})

	t.Run("ExpansionMatchesEval", func(t *testing.T) {
		m := NewMonomial(FromUint64(3), []Term{
			NewTerm(FromUint64(2), 1, One()),
			NewTerm(One(), 1, FromUint64(4)),
			NewTerm(FromUint64(5), 1, Zero()),
		})
		exp := m.Expansion()
		require.Equal(t, 3, exp.Degree)
		require.Len(t, exp.Coeffs, 4)

		// Evaluate the expansion little-endian and compare.
		x := FromUint64(11)
		got := Zero()
		for k, c := range exp.Coeffs {
			p := Pow(x, uint64(k))
			p.Mul(&p, &c)
			got.Add(&got, &p)
		}
		want := m.EvalUnivariate(x)
		assert.True(t, got.Equal(&want))
	})
}

func TestPolynomialAlgebra(t *testing.T) {
	// x1 + 2 and (3 x2 + 1) * x1 as building blocks
	pa := NewPolynomial([]Monomial{
		NewMonomial(One(), []Term{NewTerm(One(), 1, Zero())}),
	}, FromUint64(2))
	pb := NewPolynomial([]Monomial{
		NewMonomial(One(), []Term{
			NewTerm(FromUint64(3), 2, One()),
			NewTerm(One(), 1, Zero()),
		}),
	}, Zero())

	t.Run("AddCommutes", func(t *testing.T) {
		vals := randomElements(t, 2)
		left := evalAll(t, pa.Add(pb), vals)
		right := evalAll(t, pb.Add(pa), vals)
		assert.True(t, left.Equal(&right))
	})

	t.Run("MulCommutes", func(t *testing.T) {
		vals := randomElements(t, 2)
		left := evalAll(t, pa.Mul(pb), vals)
		right := evalAll(t, pb.Mul(pa), vals)
		assert.True(t, left.Equal(&right))
	})

	t.Run("MulAssociates", func(t *testing.T) {
		pc := NewPolynomial([]Monomial{
			NewMonomial(FromUint64(5), []Term{NewTerm(One(), 2, One())}),
		}, One())
		vals := randomElements(t, 2)
		left := evalAll(t, pa.Mul(pb).Mul(pc), vals)
		right := evalAll(t, pa.Mul(pb.Mul(pc)), vals)
		assert.True(t, left.Equal(&right))
	})

	t.Run("MulAgreesWithValues", func(t *testing.T) {
		vals := randomElements(t, 2)
		got := evalAll(t, pa.Mul(pb), vals)
		va := evalAll(t, pa, vals)
		vb := evalAll(t, pb, vals)
		var want Element
		want.Mul(&va, &vb)
		assert.True(t, got.Equal(&want))
	})

	t.Run("EvalIndexCommutes", func(t *testing.T) {
		p := pa.Mul(pb)
		x1, x2 := FromUint64(9), FromUint64(13)
		first := p.EvalIndex(x1, 1).EvalIndex(x2, 2).ApplyAll()
		second := p.EvalIndex(x2, 2).EvalIndex(x1, 1).ApplyAll()
		assert.True(t, first.Constant.Equal(&second.Constant))
		assert.Empty(t, first.Monomials)
		assert.Empty(t, second.Monomials)
	})

	t.Run("EvalIndexIdempotent", func(t *testing.T) {
		p := pa.Mul(pb).EvalIndex(FromUint64(4), 1)
		again := p.EvalIndex(FromUint64(99), 1)
		vals := randomElements(t, 2)
		left := evalAll(t, p, vals)
		right := evalAll(t, again, vals)
		assert.True(t, left.Equal(&right))
	})

	t.Run("ZeroSubstitutionKillsMonomial", func(t *testing.T) {
		// (x1 - 3) * x2 vanishes entirely at x1 = 3
		p := NewPolynomial([]Monomial{
			NewMonomial(One(), []Term{
				NewTerm(One(), 1, FromInt64(-3)),
				NewTerm(One(), 2, Zero()),
			}),
		}, Zero())
		got := p.EvalIndex(FromUint64(3), 1)
		assert.Empty(t, got.Monomials)
		assert.True(t, got.Constant.IsZero())
	})

	t.Run("ApplyAllAbsorbsConstantMonomials", func(t *testing.T) {
		p := NewPolynomial([]Monomial{
			NewMonomial(FromUint64(2), []Term{NewTerm(Zero(), 1, FromUint64(3))}),
			NewMonomial(One(), []Term{NewTerm(One(), 1, Zero())}),
		}, One())
		got := p.ApplyAll()
		require.Len(t, got.Monomials, 1)
		want := FromUint64(7)
		assert.True(t, got.Constant.Equal(&want))
	})

	t.Run("EmptyPolynomialEvaluatesToZero", func(t *testing.T) {
		p := NewPolynomial(nil, Zero())
		got := p.EvalUnivariate(FromUint64(5))
		assert.True(t, got.IsZero())
		assert.Equal(t, []Element{Zero()}, p.Coefficients())
	})
}

func TestPolynomialCoefficients(t *testing.T) {
	t.Run("MatchesUnivariateEvaluation", func(t *testing.T) {
		// (2x + 1)(x + 4) + 3 = 2x^2 + 9x + 7
		p := NewPolynomial([]Monomial{
			NewMonomial(One(), []Term{
				NewTerm(FromUint64(2), 1, One()),
				NewTerm(One(), 1, FromUint64(4)),
			}),
		}, FromUint64(3))
		coeffs := p.Coefficients()
		require.Len(t, coeffs, 3)
		want := []Element{FromUint64(2), FromUint64(9), FromUint64(7)}
		for i := range want {
			assert.True(t, coeffs[i].Equal(&want[i]), "coefficient %d", i)
		}

		x := FromUint64(17)
		got := EvalUnivariate(coeffs, x)
		direct := p.EvalUnivariate(x)
		assert.True(t, got.Equal(&direct))
	})

	t.Run("ConstantSurvivesExpansion", func(t *testing.T) {
		p := NewPolynomial([]Monomial{
			NewMonomial(One(), []Term{NewTerm(One(), 1, Zero())}),
		}, FromUint64(42))
		coeffs := p.Coefficients()
		require.Len(t, coeffs, 2)
		want := FromUint64(42)
		assert.True(t, coeffs[1].Equal(&want))
	})

	t.Run("LeadingZerosTrimmed", func(t *testing.T) {
		// (x + 1) + (-1)(x + 0) = 1, degree 0 after cancellation
		p := NewPolynomial([]Monomial{
			NewMonomial(One(), []Term{NewTerm(One(), 1, One())}),
			NewMonomial(FromInt64(-1), []Term{NewTerm(One(), 1, Zero())}),
		}, Zero())
		coeffs := p.Coefficients()
		require.Len(t, coeffs, 1)
		want := One()
		assert.True(t, coeffs[0].Equal(&want))
	})

	t.Run("IsUnivariate", func(t *testing.T) {
		uni := NewPolynomial([]Monomial{
			NewMonomial(One(), []Term{NewTerm(One(), 3, Zero()), NewTerm(One(), 3, One())}),
		}, Zero())
		multi := NewPolynomial([]Monomial{
			NewMonomial(One(), []Term{NewTerm(One(), 1, Zero()), NewTerm(One(), 2, One())}),
		}, Zero())
		assert.True(t, uni.IsUnivariate())
		assert.False(t, multi.IsUnivariate())
	})

	t.Run("MaxDegree", func(t *testing.T) {
		p := NewPolynomial([]Monomial{
			NewMonomial(One(), []Term{NewTerm(One(), 1, Zero())}),
			NewMonomial(One(), []Term{NewTerm(One(), 1, Zero()), NewTerm(One(), 1, One())}),
		}, Zero())
		assert.Equal(t, 2, p.MaxDegree())
	})
}
