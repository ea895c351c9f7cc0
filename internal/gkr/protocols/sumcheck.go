// Package protocols implements the sum-check sub-protocol and the GKR
// layer-by-layer reduction, together with the proof record they
// produce.
package protocols

import (
	"github.com/proofworks/gkr-prover/internal/gkr/core"
	"github.com/proofworks/gkr-prover/internal/gkr/utils"
)

// ProveSumcheck proves Σ_{x ∈ {0,1}^v} g(x) = c for a symbolic
// polynomial g over the variable range [start, start+v). Round j emits
// the big-endian coefficient vector of the univariate
//
//	g_j(X) = Σ_{x_{j+1..v-1} ∈ {0,1}} g(r_0, …, r_{j-1}, X, x_{j+1}, …)
//
// and derives the round challenge r_j by hashing those coefficients.
// It returns the v round vectors and the v challenges.
func ProveSumcheck(g core.Polynomial, v, start int) ([][]core.Element, []core.Element) {
	rounds := make([][]core.Element, 0, v)
	challenges := make([]core.Element, 0, v)

	current := g
	for j := 0; j < v; j++ {
		if j > 0 {
			current = current.EvalIndex(challenges[j-1], start+j-1).ApplyAll()
		}
		acc := core.NewPolynomial(nil, core.Zero())
		for _, assignment := range core.Hypercube(v - j - 1) {
			sub := current
			for k, x := range assignment {
				sub = sub.EvalIndex(x, start+j+1+k)
			}
			acc = acc.Add(sub)
		}
		coeffs := acc.Coefficients()
		rounds = append(rounds, coeffs)
		challenges = append(challenges, utils.HashElements(coeffs...))
	}
	return rounds, challenges
}

// VerifySumcheck checks a sum-check transcript against a claim. Each
// round must satisfy g_j(0) + g_j(1) = expected, and each recorded
// challenge must match the hash of the round's canonical coefficient
// vector. On success it returns the final expected value g(r), which
// the caller must tie to an oracle for g.
//
// The verifier is total: malformed transcripts reject, they never
// panic. Transport padding (leading zero coefficients, trailing zero
// rounds beyond v) is trimmed before hashing.
func VerifySumcheck(claim core.Element, rounds [][]core.Element, challenges []core.Element, v int) (core.Element, bool) {
	if v < 0 || len(rounds) < v || len(challenges) < v {
		return core.Element{}, false
	}
	zero := core.Zero()
	one := core.One()
	expected := claim
	for i := 0; i < v; i++ {
		coeffs := core.TrimLeadingZeros(rounds[i])
		var sum core.Element
		g0 := core.EvalUnivariate(coeffs, zero)
		g1 := core.EvalUnivariate(coeffs, one)
		sum.Add(&g0, &g1)
		if !sum.Equal(&expected) {
			return core.Element{}, false
		}
		if h := utils.HashElements(coeffs...); !h.Equal(&challenges[i]) {
			return core.Element{}, false
		}
		expected = core.EvalUnivariate(coeffs, challenges[i])
	}
	return expected, true
}
