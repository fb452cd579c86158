package compiler

import "github.com/llir/llvm/ir/types"

// Fixture integers are C ints
var i32 = types.I32

// transformSig is the signature of every indirect call target: i32 (i32)
func transformSig() *types.FuncType {
	return types.NewFunc(i32, i32)
}
