package gkr

import (
	"github.com/proofworks/gkr-prover/internal/gkr/circuit"
	"github.com/proofworks/gkr-prover/internal/gkr/core"
	"github.com/proofworks/gkr-prover/internal/gkr/protocols"
)

// Element is an element of the proof system's prime field.
type Element = core.Element

// Circuit is a layered arithmetic circuit of ADD and MULT gates.
type Circuit = circuit.Circuit

// Layer is one circuit level: gate values plus wiring to the layer
// below. The input layer carries no wiring.
type Layer = circuit.Layer

// Wire connects an output gate to two gates of the layer below.
type Wire = circuit.Wire

// Proof is the transport object produced by the prover.
type Proof = protocols.Proof

// MultivariateExpansion is the row form of a multivariate polynomial
// used for the claimed output, the wiring predicates and the input
// layer inside a Proof.
type MultivariateExpansion = core.MultivariateExpansion
