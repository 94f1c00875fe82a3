// Package expr provides the array-reduction expression node and its
// evaluation.  A reduction is a closed set of operation kinds carried as
// a tag on the node and dispatched by one switch at evaluation time.
package expr

import (
	"fmt"

	"github.com/brimdata/zarr"
	"github.com/brimdata/zarr/column"
	"github.com/brimdata/zarr/expr/agg"
)

type ArrayOp int

const (
	ArrayMin ArrayOp = iota
	ArrayMax
	ArraySum
	ArrayStd
	ArrayVar
	ArrayMedian
	ArrayUnique
	ArrayToList
)

func (o ArrayOp) String() string {
	switch o {
	case ArrayMin:
		return "arr_min"
	case ArrayMax:
		return "arr_max"
	case ArraySum:
		return "arr_sum"
	case ArrayStd:
		return "arr_std"
	case ArrayVar:
		return "arr_var"
	case ArrayMedian:
		return "arr_median"
	case ArrayUnique:
		return "arr_unique"
	case ArrayToList:
		return "arr_to_list"
	}
	return fmt.Sprintf("ArrayOp(%d)", int(o))
}

// ArrayReduction is an expression leaf that reduces each row of a
// fixed-size array column to a scalar or list.  Ddof applies to ArrayStd
// and ArrayVar; MaintainOrder applies to ArrayUnique.
type ArrayReduction struct {
	Op            ArrayOp
	Ddof          int
	MaintainOrder bool
}

// NewArrayReduction returns a reduction node for op with Ddof defaulted
// to 1.
func NewArrayReduction(op ArrayOp) *ArrayReduction {
	return &ArrayReduction{Op: op, Ddof: 1}
}

// Check validates typ against the reduction's input constraint and
// returns the type of the result column.  It must succeed before Eval is
// called; a failure is a schema mismatch, not a data error.
func (a *ArrayReduction) Check(typ zarr.Type) (zarr.Type, error) {
	at, ok := typ.(*zarr.TypeArray)
	if !ok {
		return nil, &zarr.SchemaMismatchError{
			Op:   a.Op.String(),
			Type: typ,
			Want: "fixed-size array of a primitive type",
		}
	}
	inner := at.Inner
	if !zarr.IsPrimitive(inner.ID()) {
		return nil, &zarr.SchemaMismatchError{
			Op:   a.Op.String(),
			Type: typ,
			Want: "fixed-size array of a primitive type",
		}
	}
	switch a.Op {
	case ArrayMin, ArrayMax, ArraySum:
		if !zarr.IsNumber(inner.ID()) {
			return nil, &zarr.SchemaMismatchError{
				Op:   a.Op.String(),
				Type: typ,
				Want: "fixed-size array of a numeric type",
			}
		}
		return inner, nil
	case ArrayStd, ArrayVar, ArrayMedian:
		if !zarr.IsNumber(inner.ID()) {
			return nil, &zarr.SchemaMismatchError{
				Op:   a.Op.String(),
				Type: typ,
				Want: "fixed-size array of a numeric type",
			}
		}
		return zarr.TypeFloat64, nil
	case ArrayUnique, ArrayToList:
		return zarr.NewTypeList(inner), nil
	}
	return nil, fmt.Errorf("unknown array reduction %q", a.Op)
}

// Eval applies the reduction to col sequentially.  The output column has
// the same row count and order as the input.
func (a *ArrayReduction) Eval(col column.Any) (column.Any, error) {
	if _, err := a.Check(col.Type()); err != nil {
		return nil, err
	}
	arr := col.(*column.Array)
	switch a.Op {
	case ArrayUnique:
		return agg.Unique(arr, a.MaintainOrder), nil
	case ArrayToList:
		return agg.ToList(arr), nil
	}
	r, err := a.newReducer(arr)
	if err != nil {
		return nil, err
	}
	r.Reduce(0, arr.Len())
	return r.Result(), nil
}

func (a *ArrayReduction) newReducer(arr *column.Array) (agg.Reducer, error) {
	switch a.Op {
	case ArrayMin:
		return agg.NewMin(arr), nil
	case ArrayMax:
		return agg.NewMax(arr), nil
	case ArraySum:
		return agg.NewSum(arr), nil
	case ArrayStd:
		return agg.NewStd(arr, a.Ddof), nil
	case ArrayVar:
		return agg.NewVar(arr, a.Ddof), nil
	case ArrayMedian:
		return agg.NewMedian(arr), nil
	}
	return nil, fmt.Errorf("unknown array reduction %q", a.Op)
}
