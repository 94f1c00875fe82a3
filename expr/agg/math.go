package agg

import (
	"math"

	"github.com/brimdata/zarr/column"
)

// function bundles the per-encoding reduction step with its initial
// state, in the manner of a fold.
type function struct {
	init    initial
	float64 func(float64, float64) float64
	int64   func(int64, int64) int64
	uint64  func(uint64, uint64) uint64
}

type initial struct {
	float64 float64
	int64   int64
	uint64  uint64
}

var minFunc = &function{
	init: initial{math.MaxFloat64, math.MaxInt64, math.MaxUint64},
	float64: func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	},
	int64: func(a, b int64) int64 {
		if a < b {
			return a
		}
		return b
	},
	uint64: func(a, b uint64) uint64 {
		if a < b {
			return a
		}
		return b
	},
}

var maxFunc = &function{
	init: initial{-math.MaxFloat64, math.MinInt64, 0},
	float64: func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	},
	int64: func(a, b int64) int64 {
		if a > b {
			return a
		}
		return b
	},
	uint64: func(a, b uint64) uint64 {
		if a > b {
			return a
		}
		return b
	},
}

var addFunc = &function{
	float64: func(a, b float64) float64 { return a + b },
	int64:   func(a, b int64) int64 { return a + b },
	uint64:  func(a, b uint64) uint64 { return a + b },
}

type mathInt struct {
	arr         *column.Array
	in          *column.Int
	fn          *function
	zeroIfEmpty bool
	out         []int64
	nulls       *column.Bool
}

func (m *mathInt) Reduce(off, end uint32) {
	width := m.arr.Width()
	for row := off; row < end; row++ {
		if m.arr.Nulls.Contains(row) {
			m.nulls.Set(row)
			continue
		}
		state := m.fn.init.int64
		var ok bool
		for slot := row * width; slot < (row+1)*width; slot++ {
			if m.in.Nulls.Contains(slot) {
				continue
			}
			state = m.fn.int64(state, m.in.Values[slot])
			ok = true
		}
		if !ok {
			if !m.zeroIfEmpty {
				m.nulls.Set(row)
			}
			continue
		}
		m.out[row] = state
	}
}

func (m *mathInt) Result() column.Any {
	return column.NewInt(m.arr.Typ.Inner, m.out, m.nulls)
}

type mathUint struct {
	arr         *column.Array
	in          *column.Uint
	fn          *function
	zeroIfEmpty bool
	out         []uint64
	nulls       *column.Bool
}

func (m *mathUint) Reduce(off, end uint32) {
	width := m.arr.Width()
	for row := off; row < end; row++ {
		if m.arr.Nulls.Contains(row) {
			m.nulls.Set(row)
			continue
		}
		state := m.fn.init.uint64
		var ok bool
		for slot := row * width; slot < (row+1)*width; slot++ {
			if m.in.Nulls.Contains(slot) {
				continue
			}
			state = m.fn.uint64(state, m.in.Values[slot])
			ok = true
		}
		if !ok {
			if !m.zeroIfEmpty {
				m.nulls.Set(row)
			}
			continue
		}
		m.out[row] = state
	}
}

func (m *mathUint) Result() column.Any {
	return column.NewUint(m.arr.Typ.Inner, m.out, m.nulls)
}

type mathFloat struct {
	arr         *column.Array
	in          *column.Float
	fn          *function
	zeroIfEmpty bool
	out         []float64
	nulls       *column.Bool
}

func (m *mathFloat) Reduce(off, end uint32) {
	width := m.arr.Width()
	for row := off; row < end; row++ {
		if m.arr.Nulls.Contains(row) {
			m.nulls.Set(row)
			continue
		}
		state := m.fn.init.float64
		var ok bool
		for slot := row * width; slot < (row+1)*width; slot++ {
			if m.in.Nulls.Contains(slot) {
				continue
			}
			state = m.fn.float64(state, m.in.Values[slot])
			ok = true
		}
		if !ok {
			if !m.zeroIfEmpty {
				m.nulls.Set(row)
			}
			continue
		}
		m.out[row] = state
	}
}

func (m *mathFloat) Result() column.Any {
	return column.NewFloat(m.arr.Typ.Inner, m.out, m.nulls)
}
