package cli

import (
	"fmt"

	"lukechampine.com/uint128"

	"github.com/katalvlaran/permindex/internal/config"
	"github.com/katalvlaran/permindex/permutation"
)

// format renders p according to the configured output format.
func (c *CLI) format(p permutation.Permutation) string {
	if c.Config.Format == config.FormatCSV {
		return p.CSV()
	}
	return p.String()
}

// pad extends p to length when length is set; 0 leaves p minimal.
func pad(p permutation.Permutation, length int) (permutation.Permutation, error) {
	if length == 0 {
		return p, nil
	}
	q, err := p.ExtendLength(length)
	if err != nil {
		return nil, fmt.Errorf("pad %v to %d: %w", p, length, err)
	}
	return q, nil
}

// parseOrdinal reads a decimal ordinal in [0, 2^128).
func parseOrdinal(s string) (uint128.Uint128, error) {
	n, err := uint128.FromString(s)
	if err != nil {
		return uint128.Zero, fmt.Errorf("invalid ordinal %q: %w", s, err)
	}
	return n, nil
}
