package column

import "math/bits"

// Bool is a bitmap.  It backs both boolean columns and the null masks
// hung off the other column representations.
type Bool struct {
	Bits   []uint64
	length uint32
}

func NewBoolEmpty(length uint32) *Bool {
	return &Bool{
		Bits:   make([]uint64, (length+63)/64),
		length: length,
	}
}

// NewBool builds a bitmap of length n with the given slots set.
func NewBool(slots []uint32, n uint32) *Bool {
	b := NewBoolEmpty(n)
	for _, slot := range slots {
		b.Set(slot)
	}
	return b
}

func (b *Bool) Value(slot uint32) bool {
	return (b.Bits[slot>>6] & (1 << (slot & 0x3f))) != 0
}

func (b *Bool) Set(slot uint32) {
	b.Bits[slot>>6] |= 1 << (slot & 0x3f)
}

func (b *Bool) Len() uint32 {
	return b.length
}

func (b *Bool) TrueCount() uint32 {
	var n uint32
	for _, word := range b.Bits {
		n += uint32(bits.OnesCount64(word))
	}
	return n
}

// Contains returns true if b is non-nil and has slot set.  It exists so
// callers can test a possibly nil null mask without the nil check.
func (b *Bool) Contains(slot uint32) bool {
	return b != nil && b.Value(slot)
}
