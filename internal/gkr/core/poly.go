package core

// Term is an affine factor a·x_i + b in a single named variable x_i.
// Variable indices are 1-based; index conventions for the protocol are
// fixed by the caller when the term is built.
type Term struct {
	Coeff Element
	Index int
	Const Element
}

// NewTerm creates a term a·x_index + b.
func NewTerm(coeff Element, index int, constant Element) Term {
	return Term{Coeff: coeff, Index: index, Const: constant}
}

// Eval evaluates the term at x.
func (t Term) Eval(x Element) Element {
	var res Element
	res.Mul(&t.Coeff, &x)
	res.Add(&res, &t.Const)
	return res
}

// IsConstant reports whether the term does not depend on its variable.
func (t Term) IsConstant() bool {
	return t.Coeff.IsZero()
}

// expansion converts the term into the degree-1 expansion b + a·x.
func (t Term) expansion() UnivariateExpansion {
	return UnivariateExpansion{Coeffs: []Element{t.Const, t.Coeff}, Degree: 1}
}

// Monomial is a product of terms scaled by a field coefficient:
// c · Π_t (a_t·x_{i_t} + b_t). The same variable index may appear in
// several factors, raising its degree.
type Monomial struct {
	Coeff Element
	Terms []Term
}

// NewMonomial creates a monomial from a scalar coefficient and factors.
func NewMonomial(coeff Element, terms []Term) Monomial {
	return Monomial{Coeff: coeff, Terms: terms}
}

// Mul multiplies two monomials by concatenating their factor lists.
func (m Monomial) Mul(other Monomial) Monomial {
	var coeff Element
	coeff.Mul(&m.Coeff, &other.Coeff)
	terms := make([]Term, 0, len(m.Terms)+len(other.Terms))
	terms = append(terms, m.Terms...)
	terms = append(terms, other.Terms...)
	return Monomial{Coeff: coeff, Terms: terms}
}

// Scale multiplies the monomial's scalar coefficient by n.
func (m Monomial) Scale(n Element) Monomial {
	var coeff Element
	coeff.Mul(&m.Coeff, &n)
	return Monomial{Coeff: coeff, Terms: m.Terms}
}

// apply folds constant factors into the scalar coefficient. It returns
// the reduced monomial, or a bare field element when every factor was
// constant (or some factor was identically zero).
func (m Monomial) apply() (Monomial, Element, bool) {
	res := m.Coeff
	var kept []Term
	for _, t := range m.Terms {
		if t.Coeff.IsZero() {
			if t.Const.IsZero() {
				return Monomial{}, Zero(), true
			}
			res.Mul(&res, &t.Const)
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == 0 {
		return Monomial{}, res, true
	}
	return Monomial{Coeff: res, Terms: kept}, Element{}, false
}

// EvalUnivariate evaluates the monomial assuming all factors share one
// variable. Any zero factor short-circuits the product.
func (m Monomial) EvalUnivariate(x Element) Element {
	res := One()
	for _, t := range m.Terms {
		v := t.Eval(x)
		if v.IsZero() {
			return Zero()
		}
		res.Mul(&res, &v)
	}
	res.Mul(&res, &m.Coeff)
	return res
}

// Expansion multiplies the factors out into a univariate expansion,
// scaled by the monomial's coefficient. All factors must share one
// variable for the result to be meaningful.
func (m Monomial) Expansion() UnivariateExpansion {
	if len(m.Terms) == 0 {
		return UnivariateExpansion{Coeffs: []Element{m.Coeff}, Degree: 0}
	}
	res := m.Terms[0].expansion().Scale(m.Coeff)
	for _, t := range m.Terms[1:] {
		res = res.MulTerm(t)
	}
	return res
}

// Polynomial is a sparse symbolic multivariate polynomial: a sum of
// monomials plus a scalar constant. Values are immutable; every
// operation returns a new polynomial.
type Polynomial struct {
	Monomials []Monomial
	Constant  Element
}

// NewPolynomial creates a polynomial from monomials and a constant.
func NewPolynomial(monomials []Monomial, constant Element) Polynomial {
	return Polynomial{Monomials: monomials, Constant: constant}
}

// Add concatenates the monomial lists and sums the constants.
func (p Polynomial) Add(other Polynomial) Polynomial {
	monomials := make([]Monomial, 0, len(p.Monomials)+len(other.Monomials))
	monomials = append(monomials, p.Monomials...)
	monomials = append(monomials, other.Monomials...)
	var constant Element
	constant.Add(&p.Constant, &other.Constant)
	return Polynomial{Monomials: monomials, Constant: constant}
}

// Mul multiplies two polynomials: the pairwise cross product of the
// monomial lists plus the cross terms against each scalar constant.
func (p Polynomial) Mul(other Polynomial) Polynomial {
	var monomials []Monomial
	for _, a := range p.Monomials {
		for _, b := range other.Monomials {
			monomials = append(monomials, a.Mul(b))
		}
	}
	if !other.Constant.IsZero() {
		for _, a := range p.Monomials {
			monomials = append(monomials, a.Scale(other.Constant))
		}
	}
	if !p.Constant.IsZero() {
		for _, b := range other.Monomials {
			monomials = append(monomials, b.Scale(p.Constant))
		}
	}
	var constant Element
	constant.Mul(&p.Constant, &other.Constant)
	return Polynomial{Monomials: monomials, Constant: constant}
}

// EvalIndex substitutes x_index = x. Factors in the substituted variable
// are evaluated and folded into each monomial's coefficient; a zero
// factor kills the whole monomial. Monomials left with no factors
// collapse into the polynomial's constant. The result is free of
// x_index, so a repeated substitution for the same index is a no-op.
func (p Polynomial) EvalIndex(x Element, index int) Polynomial {
	var monomials []Monomial
	constant := p.Constant
	for _, m := range p.Monomials {
		var kept []Term
		coeff := m.Coeff
		dead := false
		for _, t := range m.Terms {
			if t.Index != index {
				kept = append(kept, t)
				continue
			}
			v := t.Eval(x)
			if v.IsZero() {
				dead = true
				break
			}
			coeff.Mul(&coeff, &v)
		}
		if dead {
			continue
		}
		if len(kept) == 0 {
			constant.Add(&constant, &coeff)
			continue
		}
		monomials = append(monomials, Monomial{Coeff: coeff, Terms: kept})
	}
	return Polynomial{Monomials: monomials, Constant: constant}
}

// ApplyAll normalizes the polynomial by absorbing purely-constant
// monomials into the scalar constant.
func (p Polynomial) ApplyAll() Polynomial {
	var monomials []Monomial
	constant := p.Constant
	for _, m := range p.Monomials {
		reduced, c, isConst := m.apply()
		if isConst {
			constant.Add(&constant, &c)
			continue
		}
		monomials = append(monomials, reduced)
	}
	return Polynomial{Monomials: monomials, Constant: constant}
}

// EvalUnivariate evaluates the polynomial assuming it is univariate.
func (p Polynomial) EvalUnivariate(x Element) Element {
	res := p.Constant
	for _, m := range p.Monomials {
		v := m.EvalUnivariate(x)
		res.Add(&res, &v)
	}
	return res
}

// IsUnivariate reports whether all factors of all monomials share a
// single variable index. The empty polynomial counts as univariate.
func (p Polynomial) IsUnivariate() bool {
	index := 0
	for _, m := range p.Monomials {
		for _, t := range m.Terms {
			if index == 0 {
				index = t.Index
			} else if t.Index != index {
				return false
			}
		}
	}
	return true
}

// MaxDegree returns the largest factor count across monomials, an upper
// bound on the polynomial's degree in any single variable.
func (p Polynomial) MaxDegree() int {
	highest := 0
	for _, m := range p.Monomials {
		if len(m.Terms) > highest {
			highest = len(m.Terms)
		}
	}
	return highest
}

// Expansion converts a univariate polynomial into its expansion form.
// The caller must ensure the polynomial is univariate (after ApplyAll).
func (p Polynomial) Expansion() UnivariateExpansion {
	res := UnivariateExpansion{Coeffs: []Element{p.Constant}, Degree: 0}
	for _, m := range p.Monomials {
		res = res.Add(m.Expansion())
	}
	return res
}

// Coefficients returns the coefficient vector of the univariate
// expansion, highest degree first, with leading zeros trimmed. The zero
// polynomial yields [0].
func (p Polynomial) Coefficients() []Element {
	exp := p.ApplyAll().Expansion()
	coeffs := make([]Element, len(exp.Coeffs))
	for i, c := range exp.Coeffs {
		coeffs[len(coeffs)-1-i] = c
	}
	return TrimLeadingZeros(coeffs)
}
