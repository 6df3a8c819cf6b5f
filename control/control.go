package control

import "github.com/zeebo/errs"

// Error is the error class for control block failures.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a field accessor is called on a block
// of the wrong type.
var ErrInvalidOperation = Error.New("invalid operation")

// MaxDataSize is the largest payload a single block can carry.
const MaxDataSize = 64
