package column

import "github.com/brimdata/zarr"

type Uint struct {
	Typ    zarr.Type
	Values []uint64
	Nulls  *Bool
}

var _ Any = (*Uint)(nil)

func NewUint(typ zarr.Type, values []uint64, nulls *Bool) *Uint {
	return &Uint{Typ: typ, Values: values, Nulls: nulls}
}

func (u *Uint) Type() zarr.Type {
	return u.Typ
}

func (u *Uint) Len() uint32 {
	return uint32(len(u.Values))
}

func (u *Uint) Value(slot uint32) uint64 {
	return u.Values[slot]
}
