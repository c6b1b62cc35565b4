//go:build !hdltypes_nocheck

package hdltypes

// boundsCheck enables index and slice validation. Build with the
// hdltypes_nocheck tag to drop it from verified hot paths.
const boundsCheck = true
