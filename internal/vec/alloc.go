package vec

// Zeroed returns a Vector of length n with every element zero.
//
// The backing array is a single heap allocation zero-filled by the runtime;
// the value never materializes on the call stack, so the helper is safe for
// multi-megabyte parameter aggregates. Layers carve their weight and bias
// views out of one Zeroed slice so that a whole layer is one contiguous
// block of memory.
//
// The pattern is only valid because the all-zero bit pattern of a float32
// buffer is itself a valid value; it must not be imitated for types holding
// pointers or invariants an all-zero state would break. Allocation failure
// is not recoverable: the runtime aborts the process, matching the
// all-or-nothing nature of startup parameter allocation.
func Zeroed(n int) Vector {
	return make(Vector, n)
}
