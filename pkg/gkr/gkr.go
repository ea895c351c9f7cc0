package gkr

import (
	"encoding/json"

	"github.com/proofworks/gkr-prover/internal/gkr/circuit"
	"github.com/proofworks/gkr-prover/internal/gkr/core"
	"github.com/proofworks/gkr-prover/internal/gkr/protocols"
	"github.com/proofworks/gkr-prover/internal/gkr/utils"
)

// NewCircuit validates fully-specified layers (values and wiring) and
// builds a circuit.
func NewCircuit(layers []Layer) (*Circuit, error) {
	c, err := circuit.New(layers)
	if err != nil {
		return nil, newError(ErrInvalidCircuit, "invalid circuit", err)
	}
	return c, nil
}

// NewCircuitFromInput computes the inner layer values from the input
// vector through the wiring, then validates the circuit.
func NewCircuitFromInput(layers []Layer, input []Element) (*Circuit, error) {
	c, err := circuit.NewFromInput(layers, input)
	if err != nil {
		return nil, newError(ErrInvalidCircuit, "invalid circuit", err)
	}
	return c, nil
}

// Prover generates GKR proofs under a fixed configuration.
type Prover struct {
	config *Config
}

// NewProver creates a prover from a validated configuration.
func NewProver(config *Config) (*Prover, error) {
	if err := config.Validate(); err != nil {
		return nil, newError(ErrInvalidConfig, "invalid configuration", err)
	}
	return &Prover{config: config}, nil
}

// Prove generates a GKR proof that the circuit's output layer equals
// the claimed output vector. Proving an honest claim over a valid
// circuit never fails; errors are structural.
func (p *Prover) Prove(c *Circuit, output []Element) (*Proof, error) {
	proof, err := protocols.Prove(c, output, p.config.DomainSeparator)
	if err != nil {
		return nil, newError(ErrProofGeneration, "proving failed", err)
	}
	return proof, nil
}

// Verifier checks GKR proofs under a fixed configuration.
type Verifier struct {
	config *Config
}

// NewVerifier creates a verifier from a validated configuration.
func NewVerifier(config *Config) (*Verifier, error) {
	if err := config.Validate(); err != nil {
		return nil, newError(ErrInvalidConfig, "invalid configuration", err)
	}
	return &Verifier{config: config}, nil
}

// Verify checks a GKR proof. It is total: tampered or malformed proofs
// reject, they never error.
func (v *Verifier) Verify(p *Proof) bool {
	return protocols.Verify(p, v.config.DomainSeparator)
}

// Prove is a convenience wrapper proving under DefaultConfig.
func Prove(c *Circuit, output []Element) (*Proof, error) {
	proof, err := protocols.Prove(c, output, DefaultConfig().DomainSeparator)
	if err != nil {
		return nil, newError(ErrProofGeneration, "proving failed", err)
	}
	return proof, nil
}

// Verify is a convenience wrapper verifying under DefaultConfig.
func Verify(p *Proof) bool {
	return protocols.Verify(p, DefaultConfig().DomainSeparator)
}

// OutputExpansion returns the multilinear extension of an output
// vector in expansion form, for comparing a proof's claimed output D
// against a publicly known output.
func OutputExpansion(output []Element) (MultivariateExpansion, error) {
	v := utils.Log2(len(output))
	if v < 0 {
		return MultivariateExpansion{}, newError(ErrInvalidInput, "output length is not a power of two", nil)
	}
	return core.MultiExtension(core.TableFunc(output), v), nil
}

// MarshalProof encodes a proof to the JSON wire format.
func MarshalProof(p *Proof) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, newError(ErrSerialization, "marshaling proof failed", err)
	}
	return data, nil
}

// UnmarshalProof decodes a proof from the JSON wire format.
func UnmarshalProof(data []byte) (*Proof, error) {
	var p Proof
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, newError(ErrSerialization, "unmarshaling proof failed", err)
	}
	return &p, nil
}
