package protocols

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/proofworks/gkr-prover/internal/gkr/core"
	"github.com/proofworks/gkr-prover/internal/gkr/utils"
)

// Proof carries everything the prover emits: per layer the sum-check
// round polynomials, challenges and final value, the line polynomial q
// and the chosen r*, plus the claimed output extension D, the z
// challenge vectors, the circuit's add/mult wiring extensions, the
// input layer extension, the depth and the layer log-widths.
//
// The proof is built in a single pass by Prove and then only read.
type Proof struct {
	SumcheckProofs [][][]core.Element
	SumcheckR      [][]core.Element
	F              []core.Element
	D              core.MultivariateExpansion
	Q              [][]core.Element
	Z              [][]core.Element
	R              []core.Element
	Depth          int
	InputFunc      core.MultivariateExpansion
	Add            []core.MultivariateExpansion
	Mult           []core.MultivariateExpansion
	K              []int
}

// Pad returns a transport-normalized copy: round coefficient vectors
// and q vectors left-padded with zeros to the maximum length, round
// lists padded to the maximum round count, and challenge/z vectors and
// wiring rows right-padded to the maximum width. Padding never changes what the
// proof verifies to; challenges are always derived from the canonical
// unpadded vectors.
func (p *Proof) Pad() *Proof {
	maxCoeffs := 0
	largest2K := 0
	for _, layer := range p.SumcheckProofs {
		if len(layer) > largest2K {
			largest2K = len(layer)
		}
		for _, round := range layer {
			if len(round) > maxCoeffs {
				maxCoeffs = len(round)
			}
		}
	}
	maxQ := 0
	for _, q := range p.Q {
		if len(q) > maxQ {
			maxQ = len(q)
		}
	}
	maxK := 0
	for _, k := range p.K {
		if k > maxK {
			maxK = k
		}
	}

	out := &Proof{
		F:         append([]core.Element(nil), p.F...),
		D:         p.D,
		R:         append([]core.Element(nil), p.R...),
		Depth:     p.Depth,
		InputFunc: p.InputFunc,
		K:         append([]int(nil), p.K...),
	}
	for _, layer := range p.SumcheckProofs {
		padded := make([][]core.Element, 0, largest2K)
		for _, round := range layer {
			padded = append(padded, utils.PadLeft(round, maxCoeffs))
		}
		for len(padded) < largest2K {
			padded = append(padded, make([]core.Element, maxCoeffs))
		}
		out.SumcheckProofs = append(out.SumcheckProofs, padded)
	}
	for _, r := range p.SumcheckR {
		out.SumcheckR = append(out.SumcheckR, utils.PadRight(r, largest2K))
	}
	for _, q := range p.Q {
		out.Q = append(out.Q, utils.PadLeft(q, maxQ))
	}
	for _, z := range p.Z {
		out.Z = append(out.Z, utils.PadRight(z, maxK))
	}
	rowWidth := maxK + largest2K
	out.Add = padExpansions(p.Add, rowWidth)
	out.Mult = padExpansions(p.Mult, rowWidth)
	return out
}

// padExpansions right-pads every row to width exponent positions and
// every expansion to the maximum row count with zero rows.
func padExpansions(exps []core.MultivariateExpansion, width int) []core.MultivariateExpansion {
	maxRows := 0
	for _, e := range exps {
		if len(e.Rows) > maxRows {
			maxRows = len(e.Rows)
		}
	}
	out := make([]core.MultivariateExpansion, 0, len(exps))
	for _, e := range exps {
		padded := core.MultivariateExpansion{Vars: width}
		for _, row := range e.Rows {
			exponents := make([]uint64, width)
			copy(exponents, row.Exponents)
			padded.Rows = append(padded.Rows, core.ExpansionRow{Coeff: row.Coeff, Exponents: exponents})
		}
		for len(padded.Rows) < maxRows {
			padded.Rows = append(padded.Rows, core.ExpansionRow{Exponents: make([]uint64, width)})
		}
		out = append(out, padded)
	}
	return out
}

// proofWire is the JSON shape of a proof. Field elements serialize as
// canonical decimal strings; expansion rows serialize coefficient
// first, then exponents.
type proofWire struct {
	D              [][]string   `json:"D"`
	Z              [][]string   `json:"z"`
	SumcheckProofs [][][]string `json:"sumcheck_proofs"`
	SumcheckR      [][]string   `json:"sumcheck_r"`
	Q              [][]string   `json:"q"`
	F              []string     `json:"f"`
	R              []string     `json:"r"`
	Depth          int          `json:"d"`
	K              []int        `json:"k"`
	InputFunc      [][]string   `json:"input_func"`
	Add            [][][]string `json:"add"`
	Mult           [][][]string `json:"mult"`
}

// MarshalJSON implements json.Marshaler.
func (p *Proof) MarshalJSON() ([]byte, error) {
	wire := proofWire{
		D:         expansionToWire(p.D),
		Depth:     p.Depth,
		K:         p.K,
		InputFunc: expansionToWire(p.InputFunc),
		F:         elementsToWire(p.F),
		R:         elementsToWire(p.R),
	}
	for _, layer := range p.SumcheckProofs {
		rounds := make([][]string, 0, len(layer))
		for _, round := range layer {
			rounds = append(rounds, elementsToWire(round))
		}
		wire.SumcheckProofs = append(wire.SumcheckProofs, rounds)
	}
	for _, r := range p.SumcheckR {
		wire.SumcheckR = append(wire.SumcheckR, elementsToWire(r))
	}
	for _, q := range p.Q {
		wire.Q = append(wire.Q, elementsToWire(q))
	}
	for _, z := range p.Z {
		wire.Z = append(wire.Z, elementsToWire(z))
	}
	for _, a := range p.Add {
		wire.Add = append(wire.Add, expansionToWire(a))
	}
	for _, m := range p.Mult {
		wire.Mult = append(wire.Mult, expansionToWire(m))
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Proof) UnmarshalJSON(data []byte) error {
	var wire proofWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	var err error
	if p.D, err = expansionFromWire(wire.D); err != nil {
		return fmt.Errorf("proof field D: %w", err)
	}
	if p.InputFunc, err = expansionFromWire(wire.InputFunc); err != nil {
		return fmt.Errorf("proof field input_func: %w", err)
	}
	if p.F, err = elementsFromWire(wire.F); err != nil {
		return fmt.Errorf("proof field f: %w", err)
	}
	if p.R, err = elementsFromWire(wire.R); err != nil {
		return fmt.Errorf("proof field r: %w", err)
	}
	p.Depth = wire.Depth
	p.K = wire.K
	p.SumcheckProofs = nil
	for _, layer := range wire.SumcheckProofs {
		rounds := make([][]core.Element, 0, len(layer))
		for _, round := range layer {
			es, err := elementsFromWire(round)
			if err != nil {
				return fmt.Errorf("proof field sumcheck_proofs: %w", err)
			}
			rounds = append(rounds, es)
		}
		p.SumcheckProofs = append(p.SumcheckProofs, rounds)
	}
	p.SumcheckR = nil
	for _, r := range wire.SumcheckR {
		es, err := elementsFromWire(r)
		if err != nil {
			return fmt.Errorf("proof field sumcheck_r: %w", err)
		}
		p.SumcheckR = append(p.SumcheckR, es)
	}
	p.Q = nil
	for _, q := range wire.Q {
		es, err := elementsFromWire(q)
		if err != nil {
			return fmt.Errorf("proof field q: %w", err)
		}
		p.Q = append(p.Q, es)
	}
	p.Z = nil
	for _, z := range wire.Z {
		es, err := elementsFromWire(z)
		if err != nil {
			return fmt.Errorf("proof field z: %w", err)
		}
		p.Z = append(p.Z, es)
	}
	p.Add = nil
	for _, a := range wire.Add {
		e, err := expansionFromWire(a)
		if err != nil {
			return fmt.Errorf("proof field add: %w", err)
		}
		p.Add = append(p.Add, e)
	}
	p.Mult = nil
	for _, m := range wire.Mult {
		e, err := expansionFromWire(m)
		if err != nil {
			return fmt.Errorf("proof field mult: %w", err)
		}
		p.Mult = append(p.Mult, e)
	}
	return nil
}

func elementsToWire(elems []core.Element) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.String()
	}
	return out
}

func elementsFromWire(ss []string) ([]core.Element, error) {
	out := make([]core.Element, len(ss))
	for i, s := range ss {
		e, err := core.FromString(s)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", s, err)
		}
		out[i] = e
	}
	return out, nil
}

func expansionToWire(e core.MultivariateExpansion) [][]string {
	out := make([][]string, 0, len(e.Rows))
	for _, row := range e.Rows {
		r := make([]string, 0, len(row.Exponents)+1)
		r = append(r, row.Coeff.String())
		for _, exp := range row.Exponents {
			r = append(r, strconv.FormatUint(exp, 10))
		}
		out = append(out, r)
	}
	return out
}

func expansionFromWire(rows [][]string) (core.MultivariateExpansion, error) {
	e := core.MultivariateExpansion{}
	for _, row := range rows {
		if len(row) == 0 {
			return core.MultivariateExpansion{}, fmt.Errorf("empty expansion row")
		}
		coeff, err := core.FromString(row[0])
		if err != nil {
			return core.MultivariateExpansion{}, fmt.Errorf("row coefficient %q: %w", row[0], err)
		}
		exps := make([]uint64, len(row)-1)
		for i, s := range row[1:] {
			exps[i], err = strconv.ParseUint(s, 10, 64)
			if err != nil {
				return core.MultivariateExpansion{}, fmt.Errorf("row exponent %q: %w", s, err)
			}
		}
		if len(exps) > e.Vars {
			e.Vars = len(exps)
		}
		e.Rows = append(e.Rows, core.ExpansionRow{Coeff: coeff, Exponents: exps})
	}
	return e, nil
}
