package core

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is an element of the prime field the protocol runs over.
// It is the BN254 scalar field element of gnark-crypto; the canonical
// representative always lies in [0, p).
type Element = fr.Element

// Zero returns the additive identity.
func Zero() Element {
	var z Element
	return z
}

// One returns the multiplicative identity.
func One() Element {
	var z Element
	z.SetOne()
	return z
}

// FromInt64 returns the field element congruent to v.
func FromInt64(v int64) Element {
	var z Element
	z.SetInt64(v)
	return z
}

// FromUint64 returns the field element congruent to v.
func FromUint64(v uint64) Element {
	var z Element
	z.SetUint64(v)
	return z
}

// FromString parses a decimal string into a field element.
func FromString(s string) (Element, error) {
	var z Element
	_, err := z.SetString(s)
	return z, err
}

// Random samples a uniform field element.
func Random() (Element, error) {
	var z Element
	_, err := z.SetRandom()
	return z, err
}

// Add returns a + b.
func Add(a, b Element) Element {
	var z Element
	z.Add(&a, &b)
	return z
}

// Sub returns a - b.
func Sub(a, b Element) Element {
	var z Element
	z.Sub(&a, &b)
	return z
}

// Neg returns -a.
func Neg(a Element) Element {
	var z Element
	z.Neg(&a)
	return z
}

// Mul returns a * b.
func Mul(a, b Element) Element {
	var z Element
	z.Mul(&a, &b)
	return z
}

// Inverse returns a^-1. The inverse of zero is zero.
func Inverse(a Element) Element {
	var z Element
	z.Inverse(&a)
	return z
}

// Pow returns a^k.
func Pow(a Element, k uint64) Element {
	var z Element
	z.Exp(a, new(big.Int).SetUint64(k))
	return z
}

// Equal reports whether a and b are the same field element.
func Equal(a, b Element) bool {
	return a.Equal(&b)
}

// Modulus returns the field modulus p.
func Modulus() *big.Int {
	return fr.Modulus()
}
