package protocols

import "github.com/proofworks/gkr-prover/internal/gkr/core"

// Line evaluates the unique affine line through b at t=0 and c at t=1:
// b + t·(c - b), elementwise.
func Line(b, c []core.Element, t core.Element) []core.Element {
	out := make([]core.Element, len(b))
	for i := range b {
		var d core.Element
		d.Sub(&c[i], &b[i])
		d.Mul(&d, &t)
		out[i].Add(&b[i], &d)
	}
	return out
}

// ReducePolynomial restricts the multilinear polynomial w to the line
// through b and c: it returns the big-endian coefficient vector of
// q(t) = w(ℓ(b, c, t)). Every factor a·x_j + const of w is rewritten as
// the affine factor in t obtained by substituting
// x_j = (c_j - b_j)·t + b_j.
func ReducePolynomial(b, c []core.Element, w core.Polynomial) []core.Element {
	line := make([]core.Term, len(b))
	for i := range b {
		var gradient core.Element
		gradient.Sub(&c[i], &b[i])
		line[i] = core.NewTerm(gradient, 1, b[i])
	}

	monomials := make([]core.Monomial, 0, len(w.Monomials))
	for _, m := range w.Monomials {
		terms := make([]core.Term, 0, len(m.Terms))
		for _, t := range m.Terms {
			l := line[t.Index-1]
			var coeff, constant core.Element
			coeff.Mul(&l.Coeff, &t.Coeff)
			constant.Mul(&l.Const, &t.Coeff)
			constant.Add(&constant, &t.Const)
			terms = append(terms, core.NewTerm(coeff, 1, constant))
		}
		monomials = append(monomials, core.NewMonomial(m.Coeff, terms))
	}
	return core.NewPolynomial(monomials, w.Constant).Coefficients()
}
