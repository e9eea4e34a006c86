package normalize

// Integer is the two-part wire representation of a 64-bit graph integer:
// a signed high word and a signed low word, as graph drivers without a
// native 64-bit type expose it.
type Integer struct {
	High int32
	Low  int32
}

// IntegerFromInt64 splits v into its high and low 32-bit halves.
func IntegerFromInt64(v int64) Integer {
	return Integer{
		High: int32(v >> 32),
		Low:  int32(v),
	}
}

// LowBits returns only the low 32-bit half, read as a signed integer.
// Anything above 32 bits is lost.
func (i Integer) LowBits() int64 {
	return int64(i.Low)
}

// ToNumber reconstructs the full value from both halves.
func (i Integer) ToNumber() int64 {
	return int64(i.High)<<32 | int64(uint32(i.Low))
}
