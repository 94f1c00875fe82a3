// Package arrowconv converts fixed-size array columns to and from Arrow
// FixedSizeList arrays so columns can cross the engine boundary in a
// standard interchange format.
package arrowconv

import (
	"errors"
	"fmt"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/apache/arrow/go/v11/arrow/memory"
	"github.com/brimdata/zarr"
	"github.com/brimdata/zarr/column"
)

var ErrUnsupportedType = errors.New("arrowconv: unsupported type")

// DataType returns the Arrow data type corresponding to typ.
func DataType(typ zarr.Type) (arrow.DataType, error) {
	switch typ.ID() {
	case zarr.IDUint8:
		return arrow.PrimitiveTypes.Uint8, nil
	case zarr.IDUint16:
		return arrow.PrimitiveTypes.Uint16, nil
	case zarr.IDUint32:
		return arrow.PrimitiveTypes.Uint32, nil
	case zarr.IDUint64:
		return arrow.PrimitiveTypes.Uint64, nil
	case zarr.IDInt8:
		return arrow.PrimitiveTypes.Int8, nil
	case zarr.IDInt16:
		return arrow.PrimitiveTypes.Int16, nil
	case zarr.IDInt32:
		return arrow.PrimitiveTypes.Int32, nil
	case zarr.IDInt64:
		return arrow.PrimitiveTypes.Int64, nil
	case zarr.IDFloat32:
		return arrow.PrimitiveTypes.Float32, nil
	case zarr.IDFloat64:
		return arrow.PrimitiveTypes.Float64, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
}

// ToArrow converts arr to an Arrow FixedSizeList array.  The caller owns
// the returned array and must Release it.
func ToArrow(a *column.Array, mem memory.Allocator) (*array.FixedSizeList, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	elemType, err := DataType(a.Typ.Inner)
	if err != nil {
		return nil, err
	}
	width := a.Width()
	b := array.NewFixedSizeListBuilder(mem, int32(width), elemType)
	defer b.Release()
	vb := b.ValueBuilder()
	appendElem, err := newElemAppender(vb, a.Values)
	if err != nil {
		return nil, err
	}
	rows := a.Len()
	for row := uint32(0); row < rows; row++ {
		if a.Nulls.Contains(row) {
			// AppendNull leaves the child builder untouched, so the
			// row's slots must be filled to keep later rows aligned.
			b.AppendNull()
			for i := uint32(0); i < width; i++ {
				vb.AppendNull()
			}
			continue
		}
		b.Append(true)
		for slot := row * width; slot < (row+1)*width; slot++ {
			appendElem(slot)
		}
	}
	return b.NewListArray(), nil
}

func newElemAppender(b array.Builder, values column.Any) (func(slot uint32), error) {
	switch in := values.(type) {
	case *column.Int:
		return newIntAppender(b, in)
	case *column.Uint:
		return newUintAppender(b, in)
	case *column.Float:
		return newFloatAppender(b, in)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, values.Type())
}

func newIntAppender(b array.Builder, in *column.Int) (func(slot uint32), error) {
	switch b := b.(type) {
	case *array.Int8Builder:
		return func(slot uint32) {
			if in.Nulls.Contains(slot) {
				b.AppendNull()
			} else {
				b.Append(int8(in.Values[slot]))
			}
		}, nil
	case *array.Int16Builder:
		return func(slot uint32) {
			if in.Nulls.Contains(slot) {
				b.AppendNull()
			} else {
				b.Append(int16(in.Values[slot]))
			}
		}, nil
	case *array.Int32Builder:
		return func(slot uint32) {
			if in.Nulls.Contains(slot) {
				b.AppendNull()
			} else {
				b.Append(int32(in.Values[slot]))
			}
		}, nil
	case *array.Int64Builder:
		return func(slot uint32) {
			if in.Nulls.Contains(slot) {
				b.AppendNull()
			} else {
				b.Append(in.Values[slot])
			}
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, in.Typ)
}

func newUintAppender(b array.Builder, in *column.Uint) (func(slot uint32), error) {
	switch b := b.(type) {
	case *array.Uint8Builder:
		return func(slot uint32) {
			if in.Nulls.Contains(slot) {
				b.AppendNull()
			} else {
				b.Append(uint8(in.Values[slot]))
			}
		}, nil
	case *array.Uint16Builder:
		return func(slot uint32) {
			if in.Nulls.Contains(slot) {
				b.AppendNull()
			} else {
				b.Append(uint16(in.Values[slot]))
			}
		}, nil
	case *array.Uint32Builder:
		return func(slot uint32) {
			if in.Nulls.Contains(slot) {
				b.AppendNull()
			} else {
				b.Append(uint32(in.Values[slot]))
			}
		}, nil
	case *array.Uint64Builder:
		return func(slot uint32) {
			if in.Nulls.Contains(slot) {
				b.AppendNull()
			} else {
				b.Append(in.Values[slot])
			}
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, in.Typ)
}

func newFloatAppender(b array.Builder, in *column.Float) (func(slot uint32), error) {
	switch b := b.(type) {
	case *array.Float32Builder:
		return func(slot uint32) {
			if in.Nulls.Contains(slot) {
				b.AppendNull()
			} else {
				b.Append(float32(in.Values[slot]))
			}
		}, nil
	case *array.Float64Builder:
		return func(slot uint32) {
			if in.Nulls.Contains(slot) {
				b.AppendNull()
			} else {
				b.Append(in.Values[slot])
			}
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, in.Typ)
}
