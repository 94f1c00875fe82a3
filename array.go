package zarr

import "fmt"

// TypeArray is the type of a fixed-size array column: every row holds
// exactly Size elements of type Inner.  Size is set at construction and
// is invariant for the life of the type.
type TypeArray struct {
	Inner Type
	Size  int
}

func NewTypeArray(inner Type, size int) *TypeArray {
	if size < 1 {
		panic("array type must have size >= 1")
	}
	return &TypeArray{Inner: inner, Size: size}
}

func (t *TypeArray) ID() int {
	return IDArray
}

func (t *TypeArray) String() string {
	return fmt.Sprintf("array[%s,%d]", t.Inner, t.Size)
}

// TypeList is the type of a variable-length list column, e.g., the result
// of reinterpreting a fixed-size array row as a list or of deduplicating
// its elements.
type TypeList struct {
	Inner Type
}

func NewTypeList(inner Type) *TypeList {
	return &TypeList{Inner: inner}
}

func (t *TypeList) ID() int {
	return IDList
}

func (t *TypeList) String() string {
	return fmt.Sprintf("list[%s]", t.Inner)
}
