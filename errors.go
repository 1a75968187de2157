package permindex

import "errors"

// ErrNegativeLength indicates a negative length was requested from Shuffle.
var ErrNegativeLength = errors.New("permindex: length must be non-negative")
