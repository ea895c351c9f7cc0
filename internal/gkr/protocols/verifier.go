package protocols

import (
	"github.com/proofworks/gkr-prover/internal/gkr/core"
	"github.com/proofworks/gkr-prover/internal/gkr/utils"
)

// maxLogWidth bounds the layer widths a proof may declare, so a
// malformed proof cannot drive the verifier into squeezing an enormous
// challenge vector or expecting an enormous number of sum-check rounds.
const maxLogWidth = 32

// Verify checks a GKR proof. It replays the Fiat-Shamir transcript
// under the same domain separator the prover used to rederive z_0 and
// every r*, verifies each layer's sum-check, ties the sum-check's
// final value to the add/mult recombination of the line polynomial q,
// and finally checks the surviving claim against the input layer's
// extension.
//
// The verifier is total: it accepts or rejects, never errors or
// panics, and handles transport-padded proofs.
func Verify(p *Proof, domain string) bool {
	if p == nil || p.Depth < 1 || len(p.K) < p.Depth {
		return false
	}
	layers := p.Depth - 1
	if len(p.SumcheckProofs) < layers || len(p.SumcheckR) < layers ||
		len(p.Q) < layers || len(p.F) < layers || len(p.R) < layers ||
		len(p.Add) < layers || len(p.Mult) < layers {
		return false
	}
	for _, k := range p.K[:p.Depth] {
		if k < 0 || k > maxLogWidth {
			return false
		}
	}

	channel := utils.NewChannel(domain)
	channel.AbsorbExpansion(p.D)
	z := channel.ChallengeVector(p.K[0])
	if len(p.Z) > 0 && !prefixEqual(p.Z[0], z) {
		return false
	}
	m := p.D.Eval(z)

	zero := core.Zero()
	one := core.One()
	for i := 0; i < layers; i++ {
		kn := p.K[i+1]
		v := 2 * kn
		if len(p.SumcheckR[i]) < v {
			return false
		}
		expected, ok := VerifySumcheck(m, p.SumcheckProofs[i], p.SumcheckR[i], v)
		if !ok {
			return false
		}
		bStar := p.SumcheckR[i][:kn]
		cStar := p.SumcheckR[i][kn:v]

		q := core.TrimLeadingZeros(p.Q[i])
		channel.Absorb(q...)
		if rStar := channel.Challenge(); !rStar.Equal(&p.R[i]) {
			return false
		}

		q0 := core.EvalUnivariate(q, zero)
		q1 := core.EvalUnivariate(q, one)

		point := make([]core.Element, 0, len(z)+v)
		point = append(point, z...)
		point = append(point, bStar...)
		point = append(point, cStar...)

		var addPart, multPart, expectedF core.Element
		addEval := p.Add[i].Eval(point)
		multEval := p.Mult[i].Eval(point)
		addPart.Add(&q0, &q1)
		addPart.Mul(&addPart, &addEval)
		multPart.Mul(&q0, &q1)
		multPart.Mul(&multPart, &multEval)
		expectedF.Add(&addPart, &multPart)

		if !p.F[i].Equal(&expectedF) {
			return false
		}
		if !expected.Equal(&p.F[i]) {
			return false
		}

		m = core.EvalUnivariate(q, p.R[i])
		z = Line(bStar, cStar, p.R[i])
		if len(p.Z) > i+1 && !prefixEqual(p.Z[i+1], z) {
			return false
		}
	}

	input := p.InputFunc.Eval(z)
	return m.Equal(&input)
}

// prefixEqual reports whether recorded starts with the derived vector;
// anything beyond it is transport padding and must be zero.
func prefixEqual(recorded, derived []core.Element) bool {
	if len(recorded) < len(derived) {
		return false
	}
	for i := range derived {
		if !recorded[i].Equal(&derived[i]) {
			return false
		}
	}
	for _, e := range recorded[len(derived):] {
		if !e.IsZero() {
			return false
		}
	}
	return true
}
