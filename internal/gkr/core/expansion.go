package core

// UnivariateExpansion is a dense univariate polynomial Σ coeffs[k]·x^k.
// Coefficients are little-endian: Coeffs[k] multiplies x^k and
// len(Coeffs) == Degree + 1.
type UnivariateExpansion struct {
	Coeffs []Element
	Degree int
}

// NewUnivariateExpansion creates an expansion from little-endian
// coefficients.
func NewUnivariateExpansion(coeffs []Element, degree int) UnivariateExpansion {
	return UnivariateExpansion{Coeffs: coeffs, Degree: degree}
}

// extend zero-pads a coefficient slice on the right to length n.
func extend(coeffs []Element, n int) []Element {
	if len(coeffs) >= n {
		return coeffs
	}
	out := make([]Element, n)
	copy(out, coeffs)
	return out
}

// Add sums two expansions, padding the shorter one with zeros.
func (e UnivariateExpansion) Add(other UnivariateExpansion) UnivariateExpansion {
	degree := e.Degree
	if other.Degree > degree {
		degree = other.Degree
	}
	a := extend(e.Coeffs, degree+1)
	b := extend(other.Coeffs, degree+1)
	coeffs := make([]Element, degree+1)
	for i := range coeffs {
		coeffs[i].Add(&a[i], &b[i])
	}
	return UnivariateExpansion{Coeffs: coeffs, Degree: degree}
}

// MulTerm multiplies the expansion by an affine term a·x + b: the
// coefficients shifted up by one and scaled by a, plus the original
// scaled by b.
func (e UnivariateExpansion) MulTerm(t Term) UnivariateExpansion {
	shifted := make([]Element, len(e.Coeffs)+1)
	for i, c := range e.Coeffs {
		shifted[i+1].Mul(&c, &t.Coeff)
	}
	scaled := make([]Element, len(e.Coeffs))
	for i, c := range e.Coeffs {
		scaled[i].Mul(&c, &t.Const)
	}
	m := UnivariateExpansion{Coeffs: shifted, Degree: e.Degree + 1}
	return m.Add(UnivariateExpansion{Coeffs: scaled, Degree: e.Degree})
}

// Scale multiplies every coefficient by n.
func (e UnivariateExpansion) Scale(n Element) UnivariateExpansion {
	coeffs := make([]Element, len(e.Coeffs))
	for i, c := range e.Coeffs {
		coeffs[i].Mul(&c, &n)
	}
	return UnivariateExpansion{Coeffs: coeffs, Degree: e.Degree}
}

// EvalUnivariate evaluates a big-endian coefficient vector at x by
// Horner's rule: coeffs[0] is the highest-degree coefficient and the
// last entry is the constant. This is the single evaluation entry point
// shared by the prover and the verifier.
func EvalUnivariate(coeffs []Element, x Element) Element {
	if len(coeffs) == 0 {
		return Zero()
	}
	res := coeffs[0]
	for i := 1; i < len(coeffs); i++ {
		res.Mul(&res, &x)
		res.Add(&res, &coeffs[i])
	}
	return res
}

// TrimLeadingZeros strips leading zero coefficients from a big-endian
// vector, keeping at least one entry. Transport padding prepends zeros,
// so trimming recovers the canonical vector.
func TrimLeadingZeros(coeffs []Element) []Element {
	i := 0
	for i < len(coeffs)-1 && coeffs[i].IsZero() {
		i++
	}
	return coeffs[i:]
}

// ExpansionRow is one monomial c · x_1^{e_1} … x_v^{e_v} of a
// multivariate expansion.
type ExpansionRow struct {
	Coeff     Element
	Exponents []uint64
}

// MultivariateExpansion is a dense-exponent, sparse-row representation
// of a multivariate polynomial: a list of rows [c, e_1, …, e_v]. After
// Compact each exponent tuple appears at most once and no row has a
// zero coefficient.
type MultivariateExpansion struct {
	Vars int
	Rows []ExpansionRow
}

// NewMultivariateExpansion creates an empty expansion in v variables.
func NewMultivariateExpansion(v int) MultivariateExpansion {
	return MultivariateExpansion{Vars: v}
}

// Add concatenates the row lists.
func (e MultivariateExpansion) Add(other MultivariateExpansion) MultivariateExpansion {
	rows := make([]ExpansionRow, 0, len(e.Rows)+len(other.Rows))
	rows = append(rows, e.Rows...)
	rows = append(rows, other.Rows...)
	return MultivariateExpansion{Vars: e.Vars, Rows: rows}
}

// MulTerm multiplies the expansion by the affine term a·x_j + b: each
// row produces one copy with e_j raised and the coefficient scaled by
// a, and one copy scaled by b. Rows whose coefficient becomes zero are
// dropped rather than carried as phantom monomials.
func (e MultivariateExpansion) MulTerm(t Term) MultivariateExpansion {
	rows := make([]ExpansionRow, 0, 2*len(e.Rows))
	for _, row := range e.Rows {
		var up Element
		up.Mul(&row.Coeff, &t.Coeff)
		if !up.IsZero() {
			exps := make([]uint64, len(row.Exponents))
			copy(exps, row.Exponents)
			exps[t.Index-1]++
			rows = append(rows, ExpansionRow{Coeff: up, Exponents: exps})
		}
		var flat Element
		flat.Mul(&row.Coeff, &t.Const)
		if !flat.IsZero() {
			exps := make([]uint64, len(row.Exponents))
			copy(exps, row.Exponents)
			rows = append(rows, ExpansionRow{Coeff: flat, Exponents: exps})
		}
	}
	return MultivariateExpansion{Vars: e.Vars, Rows: rows}
}

// Compact merges rows with identical exponent tuples and drops rows
// with zero coefficients. Row order is the first-seen order, so the
// result is deterministic.
func (e MultivariateExpansion) Compact() MultivariateExpansion {
	index := make(map[string]int, len(e.Rows))
	var rows []ExpansionRow
	for _, row := range e.Rows {
		key := exponentKey(row.Exponents)
		if at, ok := index[key]; ok {
			rows[at].Coeff.Add(&rows[at].Coeff, &row.Coeff)
			continue
		}
		index[key] = len(rows)
		exps := make([]uint64, len(row.Exponents))
		copy(exps, row.Exponents)
		rows = append(rows, ExpansionRow{Coeff: row.Coeff, Exponents: exps})
	}
	kept := rows[:0]
	for _, row := range rows {
		if !row.Coeff.IsZero() {
			kept = append(kept, row)
		}
	}
	return MultivariateExpansion{Vars: e.Vars, Rows: kept}
}

func exponentKey(exps []uint64) string {
	buf := make([]byte, 0, 8*len(exps))
	for _, e := range exps {
		buf = append(buf,
			byte(e>>56), byte(e>>48), byte(e>>40), byte(e>>32),
			byte(e>>24), byte(e>>16), byte(e>>8), byte(e))
	}
	return string(buf)
}

// Eval evaluates the expansion at r: Σ_rows c · Π r_i^{e_i}. Exponent
// positions beyond len(r) are transport padding and are ignored.
func (e MultivariateExpansion) Eval(r []Element) Element {
	res := Zero()
	for _, row := range e.Rows {
		val := row.Coeff
		for i, exp := range row.Exponents {
			if exp == 0 || i >= len(r) {
				continue
			}
			p := Pow(r[i], exp)
			val.Mul(&val, &p)
		}
		res.Add(&res, &val)
	}
	return res
}
