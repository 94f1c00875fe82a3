// Package column implements the columnar values operated on by the
// fixed-size-array reduction kernels.  A column is immutable once built:
// operations read existing columns and construct new ones.
package column

import "github.com/brimdata/zarr"

// Any is the interface implemented by all concrete column representations.
type Any interface {
	Type() zarr.Type
	Len() uint32
}
