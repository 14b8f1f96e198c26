package chunk

import (
	"fmt"
	"io"
	"strconv"
)

// Disassemble writes a listing of every instruction in c under a
// `== name ==` header.
func Disassemble(w io.Writer, c *Chunk, name string) {
	fmt.Fprintf(w, "== %s ==\n", name)
	for offset := 0; offset < len(c.Code); {
		offset = DisassembleInstruction(w, c, offset)
	}
}

// DisassembleInstruction writes the instruction at offset and returns the
// offset of the next one.
func DisassembleInstruction(w io.Writer, c *Chunk, offset int) int {
	fmt.Fprintf(w, "%04d ", offset)
	if offset > 0 && c.Lines[offset] == c.Lines[offset-1] {
		fmt.Fprint(w, "   | ")
	} else {
		fmt.Fprintf(w, "%4d ", c.Lines[offset])
	}

	op := OpCode(c.Code[offset])
	switch op {
	case OpReturn:
		return simpleInstruction(w, op, offset)
	case OpConstant:
		return constantInstruction(w, op, c, offset)
	default:
		fmt.Fprintf(w, "Unknown opcode %d\n", c.Code[offset])
		return offset + 1
	}
}

func simpleInstruction(w io.Writer, op OpCode, offset int) int {
	fmt.Fprintln(w, op.String())
	return offset + 1
}

func constantInstruction(w io.Writer, op OpCode, c *Chunk, offset int) int {
	if offset+1 >= len(c.Code) {
		fmt.Fprintf(w, "%-16s <truncated>\n", op.String())
		return offset + 1
	}
	index := int(c.Code[offset+1])
	value := "<missing>"
	if index < len(c.Constants) {
		value = strconv.FormatFloat(c.Constants[index], 'g', -1, 64)
	}
	fmt.Fprintf(w, "%-16s %4d '%s'\n", op.String(), index, value)
	return offset + 2
}
