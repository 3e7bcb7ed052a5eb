package asm

import (
	"strings"

	"github.com/ezrec/ffa/catalog"
	"github.com/ezrec/ffa/diag"
	"github.com/ezrec/ffa/symbol"
	"github.com/ezrec/ffa/token"
	"github.com/ezrec/ffa/word"
)

const (
	FLAG_BIT  = uint16(1 << word.ADDRESS) // Literal flag of STACK, write flag of SOPER and MOPER.
	ADDR_MASK = uint16(word.MEMORY - 1)   // Address field.
	SOPER_MAX = 0xff                      // Largest SOPER literal.
)

// writes returns true for the functions that set the write flag.
func writes(function string) bool {
	return function == "READC" || function == "WRITEC"
}

// parseInstruction parses the function and operand of an instruction, and
// allocates its word.
func (ps *pass) parseInstruction(line *Line, group catalog.Category, rest string) string {
	fn, rest := token.Next(rest)

	inst := &Instruction{Category: group, Function: strings.ToUpper(fn.Text)}
	if fn.Kind == token.COMMENT {
		line.Comment = fn.Text
		inst.Function = ""
	} else {
		inst.Operand, rest = ps.parseOperand(line, rest)
	}
	line.Stmt = inst

	if len(line.Label) > 0 {
		ps.defineLabel(line, line.Label, ps.ctx.LC)
	}

	if !ps.allocate(line) {
		return rest
	}

	if !ps.Opcodes.IsInstruction(group.String(), inst.Function) {
		ps.report(line, diag.BadFunction)
		line.Invalidate()
		return rest
	}

	if inst.Operand.Kind == OPERAND_MALFORMED {
		line.Invalidate()
		return rest
	}

	if inst.Operand.Kind == OPERAND_SYMBOL {
		sym, err := ps.symbols.Get(inst.Operand.Text)
		if err == nil && sym.Usage == symbol.EQUATED {
			inst.Equated = sym.Label
			inst.Relocations = sym.Relocations
			inst.Operand.Value = sym.Value
		}
	}

	code, err := ps.Encode(inst)
	if err != nil {
		ps.reportErr(line, err)
		line.Invalidate()
		return rest
	}

	line.Word = code
	return rest
}

// Encode builds the word of an instruction. Label and expression operands
// leave the address field zero for pass 2. Validation failures are
// reported as a diag.Key.
func (asm *Assembler) Encode(inst *Instruction) (code uint16, err error) {
	prefix, err := asm.Opcodes.Prefix(inst.Category, inst.Function)
	if err != nil {
		err = diag.BadFunction
		return
	}

	op := inst.Operand
	numeric := op.Kind.Numeric() || len(inst.Equated) > 0
	value := uint16(op.Value)

	var flag uint16
	if writes(inst.Function) {
		flag = FLAG_BIT
	}

	switch inst.Category {
	case catalog.CNTL:
		switch inst.Function {
		case "HALT":
			if !numeric || op.Value > word.MAX_ADDR {
				err = diag.HaltRange
				return
			}
		case "DUMP":
			if !numeric || op.Value < 1 || op.Value > 3 {
				err = diag.DumpOperand
				return
			}
		case "CLRD", "CLRT":
			if op.Kind != OPERAND_NONE {
				err = diag.NoOperand
				return
			}
		case "GOTO":
			if op.Kind != OPERAND_SYMBOL && op.Kind != OPERAND_EXPRESSION {
				err = diag.OperandKind
				return
			}
		}
		code = prefix
		if numeric {
			code |= value & ADDR_MASK
		}
	case catalog.STACK:
		switch {
		case op.Kind == OPERAND_NONE:
			err = diag.OperandRequired
		case numeric:
			if op.Value > word.MAX_ADDR {
				err = diag.LiteralRange
				return
			}
			code = prefix | value
			if inst.Relocations == 0 {
				code |= FLAG_BIT
			}
		case op.Kind == OPERAND_EXPRESSION:
			code = prefix | FLAG_BIT
		case op.Kind == OPERAND_SYMBOL:
			code = prefix
		default:
			err = diag.OperandKind
		}
	case catalog.JUMP, catalog.MOPER:
		switch {
		case op.Kind == OPERAND_NONE:
			err = diag.OperandRequired
		case numeric:
			if op.Value > word.MAX_ADDR {
				err = diag.LiteralRange
				if inst.Category == catalog.JUMP {
					err = diag.HaltRange
				}
				return
			}
			code = prefix | flag | value
		case op.Kind == OPERAND_SYMBOL, op.Kind == OPERAND_EXPRESSION:
			code = prefix | flag
		default:
			err = diag.OperandKind
		}
	case catalog.SOPER:
		if !numeric || op.Value > SOPER_MAX {
			err = diag.SoperRange
			return
		}
		code = prefix | flag | value
	}

	return
}
