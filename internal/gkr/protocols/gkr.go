package protocols

import (
	"fmt"

	"github.com/proofworks/gkr-prover/internal/gkr/circuit"
	"github.com/proofworks/gkr-prover/internal/gkr/core"
	"github.com/proofworks/gkr-prover/internal/gkr/utils"
)

// Prove runs the GKR prover over a circuit and a claimed output vector
// D for layer 0. Layer by layer it builds the combined polynomial
//
//	f_i(b, c) = add̃_i(z_i, b, c)·(W̃_{i+1}(b) + W̃_{i+1}(c))
//	          + mult̃_i(z_i, b, c)·(W̃_{i+1}(b)·W̃_{i+1}(c))
//
// runs sum-check over it, restricts W̃_{i+1} to the line through the
// two sum-check points, and propagates the claim to the next layer.
// z_0 and each r* come from the Fiat-Shamir transcript seeded with the
// domain separator; each sum-check round challenge is the hash of that
// round's coefficient vector alone and does not depend on the domain
// separator or on earlier transcript contents. Proving needs no
// interaction.
//
// Prove never fails on a valid circuit; errors are structural.
func Prove(c *circuit.Circuit, output []core.Element, domain string) (*Proof, error) {
	if c == nil {
		return nil, fmt.Errorf("nil circuit")
	}
	if len(output) != c.Width(0) {
		return nil, fmt.Errorf("output length %d does not match layer 0 width %d", len(output), c.Width(0))
	}
	d := c.Depth()
	k0 := c.K(0)
	dPoly := core.MultiExtension(core.TableFunc(output), k0)

	channel := utils.NewChannel(domain)
	channel.AbsorbExpansion(dPoly)

	z := make([][]core.Element, d)
	z[0] = channel.ChallengeVector(k0)

	proof := &Proof{D: dPoly, Depth: d}
	for i := 0; i < d-1; i++ {
		ki := c.K(i)
		kn := c.K(i + 1)
		vars := ki + 2*kn

		// add̃_i and mult̃_i partially evaluated at z_i. Variables
		// 1..k_i hold z, then k_i+1..k_i+k_n hold b, then c.
		addExt := core.Extension(c.AddPredicate(i), vars)
		multExt := core.Extension(c.MultPredicate(i), vars)
		for j, r := range z[i] {
			addExt = addExt.EvalIndex(r, j+1)
			multExt = multExt.EvalIndex(r, j+1)
		}
		addExt = addExt.ApplyAll()
		multExt = multExt.ApplyAll()

		wb := core.ExtensionFrom(c.ValueFunc(i+1), kn, ki+1)
		wc := core.ExtensionFrom(c.ValueFunc(i+1), kn, ki+kn+1)
		f := addExt.Mul(wb.Add(wc)).Add(multExt.Mul(wb).Mul(wc))

		start := ki + 1
		rounds, r := ProveSumcheck(f, 2*kn, start)
		proof.SumcheckProofs = append(proof.SumcheckProofs, rounds)
		proof.SumcheckR = append(proof.SumcheckR, r)

		bStar := r[:kn]
		cStar := r[kn : 2*kn]

		nextW := core.Extension(c.ValueFunc(i+1), kn)
		q := ReducePolynomial(bStar, cStar, nextW)
		proof.Q = append(proof.Q, q)

		// Final sum-check oracle value f_i(r).
		restricted := f
		for j, x := range r {
			restricted = restricted.EvalIndex(x, start+j)
		}
		restricted = restricted.ApplyAll()
		proof.F = append(proof.F, restricted.Constant)

		channel.Absorb(q...)
		rStar := channel.Challenge()
		proof.R = append(proof.R, rStar)
		z[i+1] = Line(bStar, cStar, rStar)

		proof.Add = append(proof.Add, core.MultiExtension(c.AddPredicate(i), vars))
		proof.Mult = append(proof.Mult, core.MultiExtension(c.MultPredicate(i), vars))
		proof.K = append(proof.K, ki)
	}
	proof.K = append(proof.K, c.K(d-1))
	proof.Z = z
	proof.InputFunc = core.MultiExtension(c.ValueFunc(d-1), c.K(d-1))
	return proof, nil
}
