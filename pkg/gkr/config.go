package gkr

import (
	"fmt"

	"github.com/proofworks/gkr-prover/internal/gkr/core"
)

// Config represents the configuration for GKR proving and verifying.
type Config struct {
	// FieldModulus is the decimal modulus of the prime field the
	// protocol runs over. The field is fixed at build time; the value
	// here documents the deployment and is checked against it.
	FieldModulus string

	// DomainSeparator seeds the Fiat-Shamir transcript. Prover and
	// verifier must use the same separator; proofs made under one
	// separator reject under another.
	DomainSeparator string
}

// DefaultConfig returns the default prover/verifier configuration.
func DefaultConfig() *Config {
	return &Config{
		FieldModulus:    core.Modulus().String(),
		DomainSeparator: "gkr-prover/transcript/v1",
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DomainSeparator == "" {
		return fmt.Errorf("domain separator must not be empty")
	}
	if c.FieldModulus != core.Modulus().String() {
		return fmt.Errorf("field modulus %q does not match the compiled-in field (%s)",
			c.FieldModulus, core.Modulus().String())
	}
	return nil
}
