//go:build hdltypes_debug

package hdltypes

import (
	"fmt"
)

func assertLogic(A Logic) {
	if A > DontCare {
		panic(fmt.Sprintf("hdltypes: invalid Logic ordinal %d", uint8(A)))
	}
}

func assertBit(A Bit) {
	if A > Bit1 {
		panic(fmt.Sprintf("hdltypes: invalid Bit ordinal %d", uint8(A)))
	}
}
