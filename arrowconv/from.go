package arrowconv

import (
	"fmt"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/brimdata/zarr"
	"github.com/brimdata/zarr/column"
)

// TypeOf returns the column type corresponding to the Arrow data type dt.
func TypeOf(dt arrow.DataType) (zarr.Type, error) {
	switch dt.ID() {
	case arrow.UINT8:
		return zarr.TypeUint8, nil
	case arrow.UINT16:
		return zarr.TypeUint16, nil
	case arrow.UINT32:
		return zarr.TypeUint32, nil
	case arrow.UINT64:
		return zarr.TypeUint64, nil
	case arrow.INT8:
		return zarr.TypeInt8, nil
	case arrow.INT16:
		return zarr.TypeInt16, nil
	case arrow.INT32:
		return zarr.TypeInt32, nil
	case arrow.INT64:
		return zarr.TypeInt64, nil
	case arrow.FLOAT32:
		return zarr.TypeFloat32, nil
	case arrow.FLOAT64:
		return zarr.TypeFloat64, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, dt)
}

// FromArrow converts an Arrow FixedSizeList array to a fixed-size array
// column.  Values are copied, so the column does not retain the Arrow
// array.
func FromArrow(a *array.FixedSizeList) (*column.Array, error) {
	listType := a.DataType().(*arrow.FixedSizeListType)
	inner, err := TypeOf(listType.Elem())
	if err != nil {
		return nil, err
	}
	width := int(listType.Len())
	rows := a.Len()
	var rowNulls *column.Bool
	if a.NullN() > 0 {
		rowNulls = column.NewBoolEmpty(uint32(rows))
		for row := 0; row < rows; row++ {
			if a.IsNull(row) {
				rowNulls.Set(uint32(row))
			}
		}
	}
	// The child's values for row i start at (offset+i)*width.
	base := a.Data().Offset() * width
	nslots := rows * width
	values, err := copyElems(a.ListValues(), inner, base, nslots)
	if err != nil {
		return nil, err
	}
	return column.NewArray(zarr.NewTypeArray(inner, width), values, rowNulls)
}

func copyElems(elems arrow.Array, typ zarr.Type, base, nslots int) (column.Any, error) {
	var elemNulls *column.Bool
	null := func(i int) {
		if elemNulls == nil {
			elemNulls = column.NewBoolEmpty(uint32(nslots))
		}
		elemNulls.Set(uint32(i))
	}
	switch elems := elems.(type) {
	case *array.Uint8:
		out := make([]uint64, nslots)
		for i := 0; i < nslots; i++ {
			if elems.IsNull(base + i) {
				null(i)
			} else {
				out[i] = uint64(elems.Value(base + i))
			}
		}
		return column.NewUint(typ, out, elemNulls), nil
	case *array.Uint16:
		out := make([]uint64, nslots)
		for i := 0; i < nslots; i++ {
			if elems.IsNull(base + i) {
				null(i)
			} else {
				out[i] = uint64(elems.Value(base + i))
			}
		}
		return column.NewUint(typ, out, elemNulls), nil
	case *array.Uint32:
		out := make([]uint64, nslots)
		for i := 0; i < nslots; i++ {
			if elems.IsNull(base + i) {
				null(i)
			} else {
				out[i] = uint64(elems.Value(base + i))
			}
		}
		return column.NewUint(typ, out, elemNulls), nil
	case *array.Uint64:
		out := make([]uint64, nslots)
		for i := 0; i < nslots; i++ {
			if elems.IsNull(base + i) {
				null(i)
			} else {
				out[i] = elems.Value(base + i)
			}
		}
		return column.NewUint(typ, out, elemNulls), nil
	case *array.Int8:
		out := make([]int64, nslots)
		for i := 0; i < nslots; i++ {
			if elems.IsNull(base + i) {
				null(i)
			} else {
				out[i] = int64(elems.Value(base + i))
			}
		}
		return column.NewInt(typ, out, elemNulls), nil
	case *array.Int16:
		out := make([]int64, nslots)
		for i := 0; i < nslots; i++ {
			if elems.IsNull(base + i) {
				null(i)
			} else {
				out[i] = int64(elems.Value(base + i))
			}
		}
		return column.NewInt(typ, out, elemNulls), nil
	case *array.Int32:
		out := make([]int64, nslots)
		for i := 0; i < nslots; i++ {
			if elems.IsNull(base + i) {
				null(i)
			} else {
				out[i] = int64(elems.Value(base + i))
			}
		}
		return column.NewInt(typ, out, elemNulls), nil
	case *array.Int64:
		out := make([]int64, nslots)
		for i := 0; i < nslots; i++ {
			if elems.IsNull(base + i) {
				null(i)
			} else {
				out[i] = elems.Value(base + i)
			}
		}
		return column.NewInt(typ, out, elemNulls), nil
	case *array.Float32:
		out := make([]float64, nslots)
		for i := 0; i < nslots; i++ {
			if elems.IsNull(base + i) {
				null(i)
			} else {
				out[i] = float64(elems.Value(base + i))
			}
		}
		return column.NewFloat(typ, out, elemNulls), nil
	case *array.Float64:
		out := make([]float64, nslots)
		for i := 0; i < nslots; i++ {
			if elems.IsNull(base + i) {
				null(i)
			} else {
				out[i] = elems.Value(base + i)
			}
		}
		return column.NewFloat(typ, out, elemNulls), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, elems.DataType())
}
