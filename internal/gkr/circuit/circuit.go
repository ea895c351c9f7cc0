// Package circuit models layered arithmetic circuits of ADD and MULT
// gates. Wiring is stored as explicit (out, left, right) triples per
// gate type; the protocol reads it back as boolean predicates on
// {0,1}^{k_i + 2k_{i+1}} and layer values as functions on {0,1}^{k_i}.
package circuit

import (
	"fmt"

	"github.com/proofworks/gkr-prover/internal/gkr/core"
	"github.com/proofworks/gkr-prover/internal/gkr/utils"
)

// Wire connects gate Out of a layer to gates Left and Right of the
// layer below.
type Wire struct {
	Out   int `json:"out"`
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Layer is one level of the circuit. Layer 0 is the output layer; the
// last layer is the input and carries no wiring. Values holds W_i, the
// gate values, and must have power-of-two length.
type Layer struct {
	Values []core.Element
	Add    []Wire
	Mult   []Wire
}

// Circuit is an ordered sequence of layers, output first. It is built
// once and read-only afterwards.
type Circuit struct {
	layers []Layer
	add    []map[Wire]bool
	mult   []map[Wire]bool
}

// New validates the layers and builds a circuit. Structural problems -
// widths that are not powers of two, out-of-range wires, gates driven
// by anything other than exactly one wire, or values inconsistent with
// the wiring - are reported as errors.
func New(layers []Layer) (*Circuit, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("circuit must have at least one layer")
	}
	c := &Circuit{
		layers: layers,
		add:    make([]map[Wire]bool, len(layers)),
		mult:   make([]map[Wire]bool, len(layers)),
	}
	for i, layer := range layers {
		if !utils.IsPowerOfTwo(len(layer.Values)) {
			return nil, fmt.Errorf("layer %d width %d is not a power of two", i, len(layer.Values))
		}
		if i == len(layers)-1 {
			if len(layer.Add) != 0 || len(layer.Mult) != 0 {
				return nil, fmt.Errorf("input layer %d must not carry wiring", i)
			}
			continue
		}
		if err := c.indexLayer(i); err != nil {
			return nil, err
		}
	}
	if err := c.checkValues(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromInput computes the inner layer values from the input layer
// through the wiring, then validates the result. The supplied layers
// need only carry wiring; any pre-set inner values are overwritten.
func NewFromInput(layers []Layer, input []core.Element) (*Circuit, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("circuit must have at least one layer")
	}
	d := len(layers)
	if len(input) != len(layers[d-1].Values) && len(layers[d-1].Values) != 0 {
		return nil, fmt.Errorf("input length %d does not match input layer width %d", len(input), len(layers[d-1].Values))
	}
	layers[d-1].Values = append([]core.Element(nil), input...)
	for i := d - 2; i >= 0; i-- {
		below := layers[i+1].Values
		width := len(layers[i].Values)
		if width == 0 {
			width = wiringWidth(layers[i])
		}
		values := make([]core.Element, width)
		for _, w := range layers[i].Add {
			if err := wireInRange(w, width, len(below)); err != nil {
				return nil, fmt.Errorf("layer %d add wire: %w", i, err)
			}
			values[w.Out].Add(&below[w.Left], &below[w.Right])
		}
		for _, w := range layers[i].Mult {
			if err := wireInRange(w, width, len(below)); err != nil {
				return nil, fmt.Errorf("layer %d mult wire: %w", i, err)
			}
			values[w.Out].Mul(&below[w.Left], &below[w.Right])
		}
		layers[i].Values = values
	}
	return New(layers)
}

func wiringWidth(layer Layer) int {
	max := 0
	for _, w := range layer.Add {
		if w.Out+1 > max {
			max = w.Out + 1
		}
	}
	for _, w := range layer.Mult {
		if w.Out+1 > max {
			max = w.Out + 1
		}
	}
	for !utils.IsPowerOfTwo(max) {
		max++
	}
	return max
}

func wireInRange(w Wire, width, below int) error {
	if w.Out < 0 || w.Out >= width {
		return fmt.Errorf("gate %d out of range [0,%d)", w.Out, width)
	}
	if w.Left < 0 || w.Left >= below || w.Right < 0 || w.Right >= below {
		return fmt.Errorf("inputs (%d,%d) out of range [0,%d)", w.Left, w.Right, below)
	}
	return nil
}

func (c *Circuit) indexLayer(i int) error {
	layer := c.layers[i]
	below := len(c.layers[i+1].Values)
	width := len(layer.Values)
	driven := make([]int, width)
	c.add[i] = make(map[Wire]bool, len(layer.Add))
	c.mult[i] = make(map[Wire]bool, len(layer.Mult))
	for _, w := range layer.Add {
		if err := wireInRange(w, width, below); err != nil {
			return fmt.Errorf("layer %d add wire: %w", i, err)
		}
		c.add[i][w] = true
		driven[w.Out]++
	}
	for _, w := range layer.Mult {
		if err := wireInRange(w, width, below); err != nil {
			return fmt.Errorf("layer %d mult wire: %w", i, err)
		}
		c.mult[i][w] = true
		driven[w.Out]++
	}
	for z, n := range driven {
		if n != 1 {
			return fmt.Errorf("layer %d gate %d driven by %d wires, want exactly 1", i, z, n)
		}
	}
	return nil
}

// checkValues enforces W_i(z) = W_{i+1}(b) + W_{i+1}(c) for add wires
// and the product for mult wires.
func (c *Circuit) checkValues() error {
	for i := 0; i < len(c.layers)-1; i++ {
		below := c.layers[i+1].Values
		for _, w := range c.layers[i].Add {
			var want core.Element
			want.Add(&below[w.Left], &below[w.Right])
			if !want.Equal(&c.layers[i].Values[w.Out]) {
				return fmt.Errorf("layer %d gate %d: value does not match add wiring", i, w.Out)
			}
		}
		for _, w := range c.layers[i].Mult {
			var want core.Element
			want.Mul(&below[w.Left], &below[w.Right])
			if !want.Equal(&c.layers[i].Values[w.Out]) {
				return fmt.Errorf("layer %d gate %d: value does not match mult wiring", i, w.Out)
			}
		}
	}
	return nil
}

// Depth returns the number of layers.
func (c *Circuit) Depth() int {
	return len(c.layers)
}

// Width returns the number of gates at layer i.
func (c *Circuit) Width(i int) int {
	return len(c.layers[i].Values)
}

// K returns k_i, the log2 width of layer i.
func (c *Circuit) K(i int) int {
	return utils.Log2(len(c.layers[i].Values))
}

// Values returns the gate values W_i of layer i.
func (c *Circuit) Values(i int) []core.Element {
	return c.layers[i].Values
}

// ValueFunc returns W_i as a function on {0,1}^{k_i}.
func (c *Circuit) ValueFunc(i int) func([]core.Element) core.Element {
	return core.TableFunc(c.layers[i].Values)
}

// AddPredicate returns the boolean indicator add_i on
// {0,1}^{k_i + 2k_{i+1}}: one exactly when gate z of layer i is an ADD
// of gates b and c of layer i+1.
func (c *Circuit) AddPredicate(i int) func([]core.Element) core.Element {
	return c.predicate(c.add[i], i)
}

// MultPredicate is AddPredicate for MULT gates.
func (c *Circuit) MultPredicate(i int) func([]core.Element) core.Element {
	return c.predicate(c.mult[i], i)
}

func (c *Circuit) predicate(wires map[Wire]bool, i int) func([]core.Element) core.Element {
	ki := c.K(i)
	kn := c.K(i + 1)
	return func(bits []core.Element) core.Element {
		w := Wire{
			Out:   core.BitsToIndex(bits[:ki]),
			Left:  core.BitsToIndex(bits[ki : ki+kn]),
			Right: core.BitsToIndex(bits[ki+kn:]),
		}
		if wires[w] {
			return core.One()
		}
		return core.Zero()
	}
}
