package synth

import (
	"errors"
	"fmt"
)

// ErrExhausted is matched by every ExhaustionError via errors.Is.
var ErrExhausted = errors.New("sku space exhausted")

// ExhaustionError reports that no unused SKU could be found for a prefix,
// either because all numbers are issued or the attempt cap was hit.
// The generation cycle that hit it must fail; nothing was issued.
type ExhaustionError struct {
	Prefix   string
	Attempts int
	Issued   int
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("%s: prefix %s (%d issued, %d attempts)", ErrExhausted, e.Prefix, e.Issued, e.Attempts)
}

// Is makes errors.Is(err, ErrExhausted) match.
func (e *ExhaustionError) Is(target error) bool {
	return target == ErrExhausted
}
