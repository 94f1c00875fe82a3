package agg

import (
	"fmt"
	"math"

	"github.com/brimdata/zarr"
	"github.com/brimdata/zarr/column"
	"golang.org/x/exp/slices"
)

// floatLoader returns an accessor yielding the element in a slot as a
// float64, along with the element null mask.
func floatLoader(values column.Any) (func(slot uint32) float64, *column.Bool) {
	switch in := values.(type) {
	case *column.Int:
		return func(slot uint32) float64 { return float64(in.Values[slot]) }, in.Nulls
	case *column.Uint:
		return func(slot uint32) float64 { return float64(in.Values[slot]) }, in.Nulls
	case *column.Float:
		return func(slot uint32) float64 { return in.Values[slot] }, in.Nulls
	default:
		panic(fmt.Sprintf("unsupported array element column %T", values))
	}
}

// variance computes the per-row sample variance (or standard deviation
// when sqrt is set) of the non-null elements with ddof degrees of freedom
// subtracted from the count when normalizing.  A row whose non-null count
// n satisfies n-ddof <= 0 produces a null output row.
type variance struct {
	arr   *column.Array
	load  func(slot uint32) float64
	enull *column.Bool
	ddof  int
	sqrt  bool
	out   []float64
	nulls *column.Bool
}

func NewVar(arr *column.Array, ddof int) Reducer {
	return newVariance(arr, ddof, false)
}

func NewStd(arr *column.Array, ddof int) Reducer {
	return newVariance(arr, ddof, true)
}

func newVariance(arr *column.Array, ddof int, sqrt bool) Reducer {
	load, enull := floatLoader(arr.Values)
	rows := arr.Len()
	return &variance{
		arr:   arr,
		load:  load,
		enull: enull,
		ddof:  ddof,
		sqrt:  sqrt,
		out:   make([]float64, rows),
		nulls: column.NewBoolEmpty(rows),
	}
}

func (v *variance) Reduce(off, end uint32) {
	width := v.arr.Width()
	for row := off; row < end; row++ {
		if v.arr.Nulls.Contains(row) {
			v.nulls.Set(row)
			continue
		}
		var sum float64
		var n int
		for slot := row * width; slot < (row+1)*width; slot++ {
			if v.enull.Contains(slot) {
				continue
			}
			sum += v.load(slot)
			n++
		}
		if n-v.ddof <= 0 {
			v.nulls.Set(row)
			continue
		}
		mean := sum / float64(n)
		var m2 float64
		for slot := row * width; slot < (row+1)*width; slot++ {
			if v.enull.Contains(slot) {
				continue
			}
			d := v.load(slot) - mean
			m2 += d * d
		}
		result := m2 / float64(n-v.ddof)
		if v.sqrt {
			result = math.Sqrt(result)
		}
		v.out[row] = result
	}
}

func (v *variance) Result() column.Any {
	return column.NewFloat(zarr.TypeFloat64, v.out, v.nulls)
}

// median computes the per-row median of the non-null elements.  The
// result is a float even for integer input; an even element count
// averages the two middle values.
type median struct {
	arr   *column.Array
	load  func(slot uint32) float64
	enull *column.Bool
	out   []float64
	nulls *column.Bool
}

func NewMedian(arr *column.Array) Reducer {
	load, enull := floatLoader(arr.Values)
	rows := arr.Len()
	return &median{
		arr:   arr,
		load:  load,
		enull: enull,
		out:   make([]float64, rows),
		nulls: column.NewBoolEmpty(rows),
	}
}

func (m *median) Reduce(off, end uint32) {
	width := m.arr.Width()
	// Scratch is per call, not per reducer, so concurrent Reduce calls
	// do not share it.
	scratch := make([]float64, 0, width)
	for row := off; row < end; row++ {
		if m.arr.Nulls.Contains(row) {
			m.nulls.Set(row)
			continue
		}
		scratch = scratch[:0]
		for slot := row * width; slot < (row+1)*width; slot++ {
			if m.enull.Contains(slot) {
				continue
			}
			scratch = append(scratch, m.load(slot))
		}
		n := len(scratch)
		if n == 0 {
			m.nulls.Set(row)
			continue
		}
		slices.Sort(scratch)
		if n%2 == 1 {
			m.out[row] = scratch[n/2]
		} else {
			m.out[row] = (scratch[n/2-1] + scratch[n/2]) / 2
		}
	}
}

func (m *median) Result() column.Any {
	return column.NewFloat(zarr.TypeFloat64, m.out, m.nulls)
}
