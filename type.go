package zarr

// Type is the interface implemented by all data types in the column model.
// ID returns a small-integer identifier for the underlying encoding and is
// the preferred way to switch on a type's kind instead of using the go
// .(type) operator on a Type instance.
type Type interface {
	ID() int
	String() string
}

const (
	IDUint8   = 0
	IDUint16  = 1
	IDUint32  = 2
	IDUint64  = 3
	IDInt8    = 4
	IDInt16   = 5
	IDInt32   = 6
	IDInt64   = 7
	IDFloat32 = 8
	IDFloat64 = 9

	IDArray = 10
	IDList  = 11
)

var (
	TypeUint8   = &TypeOfUint8{}
	TypeUint16  = &TypeOfUint16{}
	TypeUint32  = &TypeOfUint32{}
	TypeUint64  = &TypeOfUint64{}
	TypeInt8    = &TypeOfInt8{}
	TypeInt16   = &TypeOfInt16{}
	TypeInt32   = &TypeOfInt32{}
	TypeInt64   = &TypeOfInt64{}
	TypeFloat32 = &TypeOfFloat32{}
	TypeFloat64 = &TypeOfFloat64{}
)

// True iff the type id is a signed or unsigned integer.
func IsInteger(id int) bool {
	return id <= IDInt64
}

// True iff the type id is an integer or a float.
func IsNumber(id int) bool {
	return id <= IDFloat64
}

// True iff the type id is a float encoding.
func IsFloat(id int) bool {
	return id == IDFloat32 || id == IDFloat64
}

// True iff the type id is a number encoding and is signed.
func IsSigned(id int) bool {
	return id >= IDInt8 && id <= IDInt64
}

// True iff the type id is a primitive encoding, i.e., not an array or list.
func IsPrimitive(id int) bool {
	return id <= IDFloat64
}

// InnerType returns the element type of the array or list type typ, or nil
// if typ is not an array or list.
func InnerType(typ Type) Type {
	switch typ := typ.(type) {
	case *TypeArray:
		return typ.Inner
	case *TypeList:
		return typ.Inner
	}
	return nil
}
