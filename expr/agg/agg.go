// Package agg implements the row-wise reduction kernels for fixed-size
// array columns.  Each kernel reduces the N elements of every row to one
// output row, preserving row count and order.  A null input row always
// produces a null output row.
package agg

import (
	"fmt"

	"github.com/brimdata/zarr/column"
)

// A Reducer computes output rows from input rows of a fixed-size array
// column.  Reduce may be called concurrently on disjoint row ranges as
// long as every range begins on a multiple of 64 rows so that no two
// callers touch the same null-mask word.
type Reducer interface {
	Reduce(off, end uint32)
	Result() column.Any
}

func NewMin(arr *column.Array) Reducer {
	return newMathReducer(arr, minFunc, false)
}

func NewMax(arr *column.Array) Reducer {
	return newMathReducer(arr, maxFunc, false)
}

// NewSum returns a Reducer that sums the non-null elements of each row.
// A non-null row whose elements are all null sums to zero, not null.
func NewSum(arr *column.Array) Reducer {
	return newMathReducer(arr, addFunc, true)
}

func newMathReducer(arr *column.Array, fn *function, zeroIfEmpty bool) Reducer {
	rows := arr.Len()
	switch in := arr.Values.(type) {
	case *column.Int:
		return &mathInt{
			arr:         arr,
			in:          in,
			fn:          fn,
			zeroIfEmpty: zeroIfEmpty,
			out:         make([]int64, rows),
			nulls:       column.NewBoolEmpty(rows),
		}
	case *column.Uint:
		return &mathUint{
			arr:         arr,
			in:          in,
			fn:          fn,
			zeroIfEmpty: zeroIfEmpty,
			out:         make([]uint64, rows),
			nulls:       column.NewBoolEmpty(rows),
		}
	case *column.Float:
		return &mathFloat{
			arr:         arr,
			in:          in,
			fn:          fn,
			zeroIfEmpty: zeroIfEmpty,
			out:         make([]float64, rows),
			nulls:       column.NewBoolEmpty(rows),
		}
	default:
		panic(fmt.Sprintf("unsupported array element column %T", arr.Values))
	}
}
