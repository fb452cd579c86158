package compiler

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

// Symbol names of the emitted fixture. Instrumentation tooling looks these up.
const (
	AddOneName       = "add_one"
	MultiplyTwoName  = "multiply_two"
	CallIndirectName = "call_indirect"
	MainName         = "main"
)

// Arguments main passes to the first and second indirect call
const (
	firstArg  = 5
	secondArg = 3
)

type Compiler struct {
	module *ir.Module

	// eligible indirect call targets, in binding order
	targets []*ir.Func

	callIndirect *ir.Func

	blockIndex uint64
}

// NewCompiler creates a compiler for the given target triple. An empty
// triple leaves the module without one.
func NewCompiler(targetTriple string) *Compiler {
	c := &Compiler{
		module: ir.NewModule(),
	}
	c.module.TargetTriple = targetTriple
	return c
}

// Compile populates the module with the fixture functions. Calling it more
// than once is an error.
func (c *Compiler) Compile() error {
	if len(c.module.Funcs) > 0 {
		return fmt.Errorf("module already compiled")
	}

	c.targets = []*ir.Func{
		c.compileAddOne(),
		c.compileMultiplyTwo(),
	}
	c.callIndirect = c.compileCallIndirect()
	c.compileMain()

	return nil
}

// Module returns the underlying LLVM module.
func (c *Compiler) Module() *ir.Module {
	return c.module
}

// GetIR renders the module as textual LLVM IR.
func (c *Compiler) GetIR() string {
	return c.module.String()
}

// Compile is a shorthand for NewCompiler + Compile + GetIR.
func Compile(targetTriple string) (string, error) {
	c := NewCompiler(targetTriple)
	if err := c.Compile(); err != nil {
		return "", err
	}
	return c.GetIR(), nil
}

func (c *Compiler) compileAddOne() *ir.Func {
	x := ir.NewParam("x", i32)
	fn := c.module.NewFunc(AddOneName, i32, x)

	entry := fn.NewBlock(c.getBlockName())
	entry.NewRet(entry.NewAdd(x, constant.NewInt(i32, 1)))

	return fn
}

func (c *Compiler) compileMultiplyTwo() *ir.Func {
	x := ir.NewParam("x", i32)
	fn := c.module.NewFunc(MultiplyTwoName, i32, x)

	entry := fn.NewBlock(c.getBlockName())
	entry.NewRet(entry.NewMul(x, constant.NewInt(i32, 2)))

	return fn
}

// compileCallIndirect emits a function whose only call has a parameter as
// its callee, so the call site can not be resolved statically.
func (c *Compiler) compileCallIndirect() *ir.Func {
	fnParam := ir.NewParam("fn", types.NewPointer(transformSig()))
	x := ir.NewParam("x", i32)
	fn := c.module.NewFunc(CallIndirectName, i32, fnParam, x)

	entry := fn.NewBlock(c.getBlockName())
	entry.NewRet(entry.NewCall(fnParam, x))

	return fn
}

func (c *Compiler) compileMain() *ir.Func {
	fn := c.module.NewFunc(MainName, i32)
	entry := fn.NewBlock(c.getBlockName())

	first := entry.NewCall(c.callIndirect, c.targets[0], constant.NewInt(i32, firstArg))
	first.SetName("result")

	second := entry.NewCall(c.callIndirect, c.targets[1], constant.NewInt(i32, secondArg))
	total := entry.NewAdd(first, second)
	total.SetName("total")

	positive := entry.NewICmp(enum.IPredSGT, total, constant.NewInt(i32, 0))
	status := entry.NewSelect(positive, constant.NewInt(i32, 0), constant.NewInt(i32, 1))
	entry.NewRet(status)

	return fn
}
