package utils

import "github.com/proofworks/gkr-prover/internal/gkr/core"

// IsPowerOfTwo checks if a number is a power of 2.
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// Log2 computes the base-2 logarithm of a power of 2. It returns -1
// when n is not a power of 2.
func Log2(n int) int {
	if !IsPowerOfTwo(n) {
		return -1
	}
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// PadRight appends zero elements until the slice has length n.
func PadRight(xs []core.Element, n int) []core.Element {
	if len(xs) >= n {
		return xs
	}
	out := make([]core.Element, n)
	copy(out, xs)
	return out
}

// PadLeft prepends zero elements until the slice has length n. For
// big-endian coefficient vectors this adds zero high-degree
// coefficients, which preserves the polynomial.
func PadLeft(xs []core.Element, n int) []core.Element {
	if len(xs) >= n {
		return xs
	}
	out := make([]core.Element, n)
	copy(out[n-len(xs):], xs)
	return out
}
