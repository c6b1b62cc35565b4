//go:build hdltypes_nocheck

package hdltypes

const boundsCheck = false
