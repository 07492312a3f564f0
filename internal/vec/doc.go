// Package vec implements the fixed-dimension numeric primitives behind the
// evalnet layers: dense vectors, row-major matrices, sparse active-index
// lists, and the element-wise Adam update.
//
// Dimensions are fixed when a value is constructed and validated once at
// that point; per-operation shape checks are deliberately absent. Handing an
// operation operands of mismatched dimensions is a programming error, not a
// runtime condition the package defends against.
package vec
