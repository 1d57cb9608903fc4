package profile

import "errors"

// ErrInvalidConfiguration indicates that a requested profile identifier is
// not present in the registry.
var ErrInvalidConfiguration = errors.New("invalid configuration")
