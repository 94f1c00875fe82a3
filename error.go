package zarr

import "fmt"

// SchemaMismatchError indicates that an operation was applied to a column
// whose declared type does not satisfy the operation's input constraint.
// It is detected during type checking, before any data is evaluated.
type SchemaMismatchError struct {
	Op   string
	Type Type
	Want string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s but column has type %s", e.Op, e.Want, e.Type)
}
