package core

// Hypercube enumerates {0,1}^v in lexicographic order (all-zeros first,
// last bit fastest). The order is stable so the prover and verifier
// walk the cube identically.
func Hypercube(v int) [][]Element {
	size := 1 << uint(v)
	out := make([][]Element, size)
	for i := 0; i < size; i++ {
		bits := make([]Element, v)
		for j := 0; j < v; j++ {
			if i>>(uint(v-1-j))&1 == 1 {
				bits[j].SetOne()
			}
		}
		out[i] = bits
	}
	return out
}

// Chi evaluates the multilinear Lagrange basis polynomial
// Π_i (x_i·w_i + (1-x_i)·(1-w_i)) for w on the boolean hypercube.
func Chi(w, x []Element) Element {
	one := One()
	prod := One()
	for i := range x {
		var a, b, f Element
		a.Mul(&x[i], &w[i])
		b.Sub(&one, &x[i])
		f.Sub(&one, &w[i])
		b.Mul(&b, &f)
		a.Add(&a, &b)
		prod.Mul(&prod, &a)
	}
	return prod
}

// EvalExtension evaluates the unique multilinear extension of f at r:
// Σ_{w ∈ {0,1}^|r|} f(w)·Chi(w, r).
func EvalExtension(f func([]Element) Element, r []Element) Element {
	acc := Zero()
	for _, w := range Hypercube(len(r)) {
		var v Element
		fw := f(w)
		chi := Chi(w, r)
		v.Mul(&fw, &chi)
		acc.Add(&acc, &v)
	}
	return acc
}

// ChiMonomial builds the monomial form of Chi(w, ·) with variable
// indices starting at 1: w_i = 0 contributes the factor (1 - x_{i+1}),
// w_i = 1 contributes x_{i+1}.
func ChiMonomial(w []Element) Monomial {
	return ChiMonomialFrom(w, 1)
}

// ChiMonomialFrom is ChiMonomial with variable indices starting at k.
func ChiMonomialFrom(w []Element, k int) Monomial {
	terms := make([]Term, 0, len(w))
	for i, wi := range w {
		if wi.IsZero() {
			terms = append(terms, NewTerm(FromInt64(-1), i+k, One()))
		} else {
			terms = append(terms, NewTerm(One(), i+k, Zero()))
		}
	}
	return NewMonomial(One(), terms)
}

// Extension builds the symbolic multilinear extension of f over
// {0,1}^v, with variable indices 1..v. Zero summands are skipped.
func Extension(f func([]Element) Element, v int) Polynomial {
	return ExtensionFrom(f, v, 1)
}

// ExtensionFrom is Extension with variable indices shifted to start
// at k, covering k..k+v-1.
func ExtensionFrom(f func([]Element) Element, v, k int) Polynomial {
	var monomials []Monomial
	for _, w := range Hypercube(v) {
		fw := f(w)
		if fw.IsZero() {
			continue
		}
		monomials = append(monomials, ChiMonomialFrom(w, k).Scale(fw))
	}
	return NewPolynomial(monomials, Zero())
}

// MultiExtension builds the multilinear extension of f over {0,1}^v in
// compact multivariate expansion form.
func MultiExtension(f func([]Element) Element, v int) MultivariateExpansion {
	poly := Extension(f, v)
	res := NewMultivariateExpansion(v)
	for _, m := range poly.Monomials {
		rows := MultivariateExpansion{
			Vars: v,
			Rows: []ExpansionRow{{Coeff: m.Coeff, Exponents: make([]uint64, v)}},
		}
		for _, t := range m.Terms {
			rows = rows.MulTerm(t)
		}
		res = res.Add(rows)
	}
	if !poly.Constant.IsZero() {
		res = res.Add(MultivariateExpansion{
			Vars: v,
			Rows: []ExpansionRow{{Coeff: poly.Constant, Exponents: make([]uint64, v)}},
		})
	}
	return res.Compact()
}

// TableFunc turns a table of 2^v values indexed by the hypercube into a
// function on boolean vectors, reading bits most significant first.
func TableFunc(values []Element) func([]Element) Element {
	return func(bits []Element) Element {
		return values[BitsToIndex(bits)]
	}
}

// BitsToIndex decodes a boolean vector into its hypercube index, most
// significant bit first.
func BitsToIndex(bits []Element) int {
	idx := 0
	for _, b := range bits {
		idx <<= 1
		if !b.IsZero() {
			idx |= 1
		}
	}
	return idx
}
