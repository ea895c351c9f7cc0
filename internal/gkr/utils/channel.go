package utils

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"

	"github.com/proofworks/gkr-prover/internal/gkr/core"
)

// HashElements hashes a sequence of field elements to a single field
// element with MiMC over Fp. It is the Fiat-Shamir oracle shared by the
// prover and the verifier.
func HashElements(elems ...core.Element) core.Element {
	h := mimc.NewMiMC()
	for _, e := range elems {
		b := e.Bytes()
		h.Write(b[:])
	}
	var out core.Element
	out.SetBytes(h.Sum(nil))
	return out
}

// Channel is a Fiat-Shamir transcript over field elements. The prover
// absorbs the values it commits to and squeezes its challenges; the
// verifier replays the same sequence and must land on the same
// challenges.
type Channel struct {
	state core.Element
}

// NewChannel creates a transcript seeded with a domain separator.
// Transcripts with different separators produce unrelated challenge
// streams, so proofs from one deployment cannot be replayed against
// another. Prover and verifier must use the same separator.
func NewChannel(domain string) *Channel {
	var seed core.Element
	seed.SetBytes([]byte(domain))
	return &Channel{state: HashElements(seed)}
}

// Absorb binds elements into the transcript state.
func (c *Channel) Absorb(elems ...core.Element) {
	seq := make([]core.Element, 0, len(elems)+1)
	seq = append(seq, c.state)
	seq = append(seq, elems...)
	c.state = HashElements(seq...)
}

// AbsorbExpansion binds a multivariate expansion into the transcript,
// row by row: the coefficient followed by each exponent.
func (c *Channel) AbsorbExpansion(e core.MultivariateExpansion) {
	for _, row := range e.Rows {
		elems := make([]core.Element, 0, len(row.Exponents)+1)
		elems = append(elems, row.Coeff)
		for _, exp := range row.Exponents {
			elems = append(elems, core.FromUint64(exp))
		}
		c.Absorb(elems...)
	}
}

// Challenge squeezes one field element from the transcript.
func (c *Channel) Challenge() core.Element {
	c.state = HashElements(c.state)
	return c.state
}

// ChallengeVector squeezes n field elements from the transcript.
func (c *Channel) ChallengeVector(n int) []core.Element {
	out := make([]core.Element, n)
	for i := range out {
		out[i] = c.Challenge()
	}
	return out
}
