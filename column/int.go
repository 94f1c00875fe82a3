package column

import "github.com/brimdata/zarr"

// Int holds signed-integer values of any width.  Typ records the logical
// width while Values carries everything as int64.
type Int struct {
	Typ    zarr.Type
	Values []int64
	Nulls  *Bool
}

var _ Any = (*Int)(nil)

func NewInt(typ zarr.Type, values []int64, nulls *Bool) *Int {
	return &Int{Typ: typ, Values: values, Nulls: nulls}
}

func (i *Int) Type() zarr.Type {
	return i.Typ
}

func (i *Int) Len() uint32 {
	return uint32(len(i.Values))
}

func (i *Int) Value(slot uint32) int64 {
	return i.Values[slot]
}
