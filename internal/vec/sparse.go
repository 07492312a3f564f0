package vec

// SparseVector lists the active feature indices of an implicitly one-hot
// input over a large feature space.
//
// Indices are not required to be sorted or deduplicated: a repeated index
// contributes its weight row once per occurrence, which is exactly the
// one-hot-sum semantics of the equivalent dense input. An out-of-range
// index is a caller contract violation and panics in the row lookup.
type SparseVector []int
