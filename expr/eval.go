package expr

import (
	"context"
	"runtime"

	"github.com/brimdata/zarr/column"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Evaluator runs reductions with row-partitioned parallelism.  Rows are
// independent, so scalar reductions are computed by workers over disjoint
// row ranges writing into one preallocated result.  Ranges are aligned to
// 64 rows so no two workers share a null-mask word.  List-shaped results
// (unique, to_list) have per-row output sizes and are evaluated
// sequentially.
type Evaluator struct {
	parallelism int
	logger      *zap.Logger
}

func NewEvaluator(parallelism int, logger *zap.Logger) *Evaluator {
	if parallelism < 1 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{parallelism: parallelism, logger: logger}
}

func (e *Evaluator) Eval(ctx context.Context, a *ArrayReduction, col column.Any) (column.Any, error) {
	if _, err := a.Check(col.Type()); err != nil {
		return nil, err
	}
	arr := col.(*column.Array)
	rows := arr.Len()
	switch a.Op {
	case ArrayUnique, ArrayToList:
		return a.Eval(col)
	}
	r, err := a.newReducer(arr)
	if err != nil {
		return nil, err
	}
	chunk := partition(rows, e.parallelism)
	if chunk >= rows {
		r.Reduce(0, rows)
		return r.Result(), nil
	}
	e.logger.Debug("parallel array reduction",
		zap.Stringer("op", a.Op),
		zap.Uint32("rows", rows),
		zap.Uint32("chunk", chunk))
	group, ctx := errgroup.WithContext(ctx)
	for off := uint32(0); off < rows; off += chunk {
		off, end := off, off+chunk
		if end > rows {
			end = rows
		}
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.Reduce(off, end)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return r.Result(), nil
}

// partition returns the per-worker chunk size for rows split p ways,
// rounded up to a multiple of 64.
func partition(rows uint32, p int) uint32 {
	chunk := rows / uint32(p)
	if chunk < 64 {
		return 64
	}
	return (chunk + 63) &^ 63
}
