package compiler

import "fmt"

func (c *Compiler) getBlockName() string {
	name := fmt.Sprintf("block-%d", c.blockIndex)
	c.blockIndex++
	return name
}
