package column

import (
	"fmt"

	"github.com/brimdata/zarr"
)

// Array is a fixed-size array column: Len() rows of exactly Typ.Size
// elements each, stored row-major in Values.  Nulls marks whole rows as
// null; element-level nulls live on the inner Values column and are
// independent of row nulls.
type Array struct {
	Typ    *zarr.TypeArray
	Values Any
	Nulls  *Bool
}

var _ Any = (*Array)(nil)

func NewArray(typ *zarr.TypeArray, values Any, nulls *Bool) (*Array, error) {
	if values.Type() != typ.Inner {
		return nil, fmt.Errorf("array of %s cannot hold values of type %s", typ.Inner, values.Type())
	}
	if n := values.Len(); n%uint32(typ.Size) != 0 {
		return nil, fmt.Errorf("array of size %d cannot be built from %d values", typ.Size, n)
	}
	rows := values.Len() / uint32(typ.Size)
	if nulls != nil && nulls.Len() != rows {
		return nil, fmt.Errorf("null mask length %d does not match row count %d", nulls.Len(), rows)
	}
	return &Array{Typ: typ, Values: values, Nulls: nulls}, nil
}

func (a *Array) Type() zarr.Type {
	return a.Typ
}

// Width returns the fixed arity of each row.
func (a *Array) Width() uint32 {
	return uint32(a.Typ.Size)
}

func (a *Array) Len() uint32 {
	return a.Values.Len() / a.Width()
}
