// Package chunk holds the bytecode container used by the disassembler.
package chunk

import "fmt"

type OpCode byte

const (
	OpReturn OpCode = iota
	OpConstant
)

func (op OpCode) String() string {
	switch op {
	case OpReturn:
		return "OP_RETURN"
	case OpConstant:
		return "OP_CONSTANT"
	default:
		return fmt.Sprintf("OP_UNKNOWN(%d)", byte(op))
	}
}

// Chunk is a sequence of bytecode with the source line of every byte and a
// pool of constants referenced by OpConstant.
type Chunk struct {
	Code      []byte
	Lines     []int
	Constants []float64
}

func New() *Chunk {
	return &Chunk{}
}

// Write appends one byte of code that came from line.
func (c *Chunk) Write(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

func (c *Chunk) WriteOp(op OpCode, line int) {
	c.Write(byte(op), line)
}

// AddConstant stores value and returns its index in the constant pool.
func (c *Chunk) AddConstant(value float64) int {
	c.Constants = append(c.Constants, value)
	return len(c.Constants) - 1
}
