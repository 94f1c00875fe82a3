package arrowconv

import (
	"testing"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/apache/arrow/go/v11/arrow/memory"
	"github.com/brimdata/zarr"
	"github.com/brimdata/zarr/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripInt(t *testing.T) {
	// Three rows of width two.  Row 1 is null, and element 5 (row 2,
	// slot 1) is null.
	elemNulls := column.NewBoolEmpty(6)
	elemNulls.Set(5)
	values := column.NewInt(zarr.TypeInt64, []int64{1, 2, 0, 0, 5, 0}, elemNulls)
	rowNulls := column.NewBoolEmpty(3)
	rowNulls.Set(1)
	in, err := column.NewArray(zarr.NewTypeArray(zarr.TypeInt64, 2), values, rowNulls)
	require.NoError(t, err)

	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)
	a, err := ToArrow(in, mem)
	require.NoError(t, err)
	defer a.Release()
	require.Equal(t, 3, a.Len())
	assert.True(t, a.IsNull(1))
	assert.False(t, a.IsNull(0))
	assert.False(t, a.IsNull(2))
	// The null row still occupies its slots in the child array so the
	// rows that follow it stay aligned.
	child := a.ListValues().(*array.Int64)
	require.Equal(t, 6, child.Len())
	assert.Equal(t, int64(5), child.Value(4))
	assert.True(t, child.IsNull(2))
	assert.True(t, child.IsNull(3))

	out, err := FromArrow(a)
	require.NoError(t, err)
	assert.Equal(t, in.Typ.String(), out.Typ.String())
	assert.Equal(t, in.Len(), out.Len())
	outValues := out.Values.(*column.Int)
	assert.True(t, out.Nulls.Contains(1))
	assert.False(t, out.Nulls.Contains(0))
	assert.False(t, out.Nulls.Contains(2))
	assert.Equal(t, int64(1), outValues.Values[0])
	assert.Equal(t, int64(2), outValues.Values[1])
	assert.Equal(t, int64(5), outValues.Values[4])
	assert.False(t, outValues.Nulls.Contains(4))
	assert.True(t, outValues.Nulls.Contains(5))
}

func TestRoundTripFloatNoNulls(t *testing.T) {
	values := column.NewFloat(zarr.TypeFloat64, []float64{1.5, 2.5, 3.5, 4.5}, nil)
	in, err := column.NewArray(zarr.NewTypeArray(zarr.TypeFloat64, 2), values, nil)
	require.NoError(t, err)
	a, err := ToArrow(in, nil)
	require.NoError(t, err)
	defer a.Release()
	out, err := FromArrow(a)
	require.NoError(t, err)
	assert.Nil(t, out.Nulls)
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 4.5}, out.Values.(*column.Float).Values)
}

func TestRoundTripUintNarrow(t *testing.T) {
	values := column.NewUint(zarr.TypeUint16, []uint64{10, 20, 30}, nil)
	in, err := column.NewArray(zarr.NewTypeArray(zarr.TypeUint16, 3), values, nil)
	require.NoError(t, err)
	a, err := ToArrow(in, nil)
	require.NoError(t, err)
	defer a.Release()
	listType := a.DataType().(*arrow.FixedSizeListType)
	assert.Equal(t, arrow.UINT16, listType.Elem().ID())
	out, err := FromArrow(a)
	require.NoError(t, err)
	assert.Equal(t, zarr.IDUint16, out.Typ.Inner.ID())
	assert.Equal(t, []uint64{10, 20, 30}, out.Values.(*column.Uint).Values)
}

func TestDataTypeUnsupported(t *testing.T) {
	_, err := DataType(zarr.NewTypeArray(zarr.TypeInt64, 2))
	assert.ErrorIs(t, err, ErrUnsupportedType)
	_, err = TypeOf(arrow.BinaryTypes.String)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
