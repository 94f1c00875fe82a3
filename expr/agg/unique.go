package agg

import (
	"fmt"

	"github.com/brimdata/zarr"
	"github.com/brimdata/zarr/column"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Unique returns a list column holding the distinct non-null element
// values of each row.  With maintainOrder set, values appear in
// first-occurrence order; otherwise they are sorted, which lets a later
// implementation swap in a cheaper dedup without changing the contract.
// A null row produces a null list; a row of all-null elements produces
// an empty list.
func Unique(arr *column.Array, maintainOrder bool) *column.List {
	typ := zarr.NewTypeList(arr.Typ.Inner)
	switch in := arr.Values.(type) {
	case *column.Int:
		vals, offsets, nulls := uniqueRows(arr, in.Values, in.Nulls, maintainOrder)
		return &column.List{Typ: typ, Offsets: offsets, Values: column.NewInt(arr.Typ.Inner, vals, nil), Nulls: nulls}
	case *column.Uint:
		vals, offsets, nulls := uniqueRows(arr, in.Values, in.Nulls, maintainOrder)
		return &column.List{Typ: typ, Offsets: offsets, Values: column.NewUint(arr.Typ.Inner, vals, nil), Nulls: nulls}
	case *column.Float:
		vals, offsets, nulls := uniqueRows(arr, in.Values, in.Nulls, maintainOrder)
		return &column.List{Typ: typ, Offsets: offsets, Values: column.NewFloat(arr.Typ.Inner, vals, nil), Nulls: nulls}
	default:
		panic(fmt.Sprintf("unsupported array element column %T", arr.Values))
	}
}

func uniqueRows[T constraints.Ordered](arr *column.Array, elems []T, enulls *column.Bool, maintainOrder bool) ([]T, []uint32, *column.Bool) {
	rows, width := arr.Len(), arr.Width()
	offsets := make([]uint32, rows+1)
	nulls := column.NewBoolEmpty(rows)
	out := make([]T, 0, len(elems))
	seen := make(map[T]struct{}, width)
	for row := uint32(0); row < rows; row++ {
		if arr.Nulls.Contains(row) {
			nulls.Set(row)
			offsets[row+1] = uint32(len(out))
			continue
		}
		for v := range seen {
			delete(seen, v)
		}
		start := len(out)
		for slot := row * width; slot < (row+1)*width; slot++ {
			if enulls.Contains(slot) {
				continue
			}
			v := elems[slot]
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
		if !maintainOrder {
			slices.Sort(out[start:])
		}
		offsets[row+1] = uint32(len(out))
	}
	return out, offsets, nulls
}

// ToList reinterprets the fixed-size array column as a list column of
// the same elements.  No data is copied or reordered: the output shares
// the input's element column, offsets are the multiples of the arity,
// and null elements pass through unchanged.
func ToList(arr *column.Array) *column.List {
	rows, width := arr.Len(), arr.Width()
	offsets := make([]uint32, rows+1)
	for i := range offsets {
		offsets[i] = uint32(i) * width
	}
	return &column.List{
		Typ:     zarr.NewTypeList(arr.Typ.Inner),
		Offsets: offsets,
		Values:  arr.Values,
		Nulls:   arr.Nulls,
	}
}
