package column

import (
	"fmt"

	"github.com/brimdata/zarr"
)

// List is a variable-length list column.  Row slot holds the elements of
// Values in [Offsets[slot], Offsets[slot+1]).
type List struct {
	Typ     *zarr.TypeList
	Offsets []uint32
	Values  Any
	Nulls   *Bool
}

var _ Any = (*List)(nil)

func NewList(typ *zarr.TypeList, offsets []uint32, values Any, nulls *Bool) (*List, error) {
	if values.Type() != typ.Inner {
		return nil, fmt.Errorf("list of %s cannot hold values of type %s", typ.Inner, values.Type())
	}
	if len(offsets) == 0 {
		return nil, fmt.Errorf("list column requires at least one offset")
	}
	if end := offsets[len(offsets)-1]; end != values.Len() {
		return nil, fmt.Errorf("final offset %d does not match value count %d", end, values.Len())
	}
	return &List{Typ: typ, Offsets: offsets, Values: values, Nulls: nulls}, nil
}

func (l *List) Type() zarr.Type {
	return l.Typ
}

func (l *List) Len() uint32 {
	return uint32(len(l.Offsets) - 1)
}
