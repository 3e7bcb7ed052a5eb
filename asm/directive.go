package asm

import (
	"github.com/ezrec/ffa/catalog"
	"github.com/ezrec/ffa/diag"
	"github.com/ezrec/ffa/symbol"
	"github.com/ezrec/ffa/word"
)

const (
	EQU_OPERATORS  = 1 // Operators allowed by EQU and ADC.
	EQUE_OPERATORS = 3 // Operators allowed by EQUE and ADCE.
)

// maxOperators returns the operator limit of an expression directive.
func maxOperators(kind catalog.Directive) int {
	switch kind {
	case catalog.EQUE, catalog.ADCE:
		return EQUE_OPERATORS
	}
	return EQU_OPERATORS
}

// parseDirective parses the operand of a directive and applies it.
func (ps *pass) parseDirective(line *Line, kind catalog.Directive, rest string) string {
	stmt := &Directive{Kind: kind}
	stmt.Operand, rest = ps.parseOperand(line, rest)
	line.Stmt = stmt

	switch kind {
	case catalog.START:
		ps.directiveStart(line, stmt)
	case catalog.END:
		ps.directiveEnd(line, stmt)
	case catalog.EQU, catalog.EQUE:
		ps.directiveEqu(line, stmt)
	case catalog.ENTRY:
		ps.directiveEntry(line, stmt)
	case catalog.EXTRN:
		ps.directiveExtrn(line, stmt)
	case catalog.RESET:
		ps.directiveReset(line, stmt)
	case catalog.DAT:
		ps.directiveDat(line, stmt)
	case catalog.ADC, catalog.ADCE:
		ps.directiveAdc(line, stmt)
	case catalog.NOP:
		ps.directiveNop(line, stmt)
	}

	return rest
}

// ignoreLabel warns about a label on a directive that does not take one.
func (ps *pass) ignoreLabel(line *Line) {
	if len(line.Label) > 0 {
		ps.report(line, diag.LabelIgnored)
	}
}

func (ps *pass) directiveStart(line *Line, stmt *Directive) {
	if ps.ctx.Started {
		ps.report(line, diag.SecondStart)
		return
	}

	op := stmt.Operand
	name := line.Label
	load := 0
	if len(name) == 0 {
		if op.Kind != OPERAND_SYMBOL || len(op.Text) < LABEL_MIN || len(op.Text) > LABEL_MAX {
			ps.report(line, diag.StartLabel)
			return
		}
		name = op.Text
	} else {
		if op.Kind != OPERAND_NUMBER || op.Value > word.MAX_ADDR {
			ps.report(line, diag.StartOperand)
			return
		}
		load = op.Value
	}

	ps.ctx.Started = true
	ps.ctx.Program = name
	ps.ctx.Start = load
	ps.ctx.LC = load
	ps.eval.Program = name
	line.LC = load

	_ = ps.symbols.Define(name, load, symbol.PROGRAM_NAME, 0)
}

func (ps *pass) directiveEnd(line *Line, stmt *Directive) {
	ps.ignoreLabel(line)

	op := stmt.Operand
	if op.Kind != OPERAND_SYMBOL || op.Text != ps.ctx.Program {
		ps.report(line, diag.EndName)
		return
	}

	ps.ctx.Ended = true
}

func (ps *pass) directiveEqu(line *Line, stmt *Directive) {
	label := line.Label
	if len(label) == 0 {
		ps.report(line, diag.EquLabel)
		return
	}

	if ps.symbols.Contains(label) {
		ps.report(line, diag.Redefined)
		return
	}

	op := stmt.Operand
	sym := symbol.Symbol{Label: label, LC: ps.ctx.LC, Usage: symbol.EQUATED}

	switch {
	case op.Kind.Numeric():
		if op.Value > word.MAX_ADDR {
			ps.report(line, diag.EquRange)
			return
		}
		sym.Value = op.Value
	case op.Kind == OPERAND_SYMBOL, op.Kind == OPERAND_EXPRESSION:
		var err error
		sym.Value, sym.Relocations, err = ps.eval.Equ(op.Text, ps.ctx.LC, maxOperators(stmt.Kind))
		if err != nil {
			ps.reportErr(line, err)
			return
		}
	case op.Kind == OPERAND_MALFORMED:
		return
	default:
		ps.report(line, diag.EquOperand)
		return
	}

	stmt.Operand.Value = sym.Value
	_ = ps.symbols.Add(sym)
}

func (ps *pass) directiveEntry(line *Line, stmt *Directive) {
	ps.ignoreLabel(line)

	op := stmt.Operand
	if op.Kind != OPERAND_SYMBOL {
		ps.report(line, diag.OperandKind)
		return
	}

	sym, err := ps.symbols.Get(op.Text)
	if err != nil {
		_ = ps.symbols.Define(op.Text, symbol.NoLocation, symbol.ENTRY, 0)
		return
	}

	switch sym.Usage {
	case symbol.LABEL:
		sym.Usage = symbol.ENTRY
		_ = ps.symbols.Replace(sym)
	case symbol.ENTRY:
	default:
		ps.report(line, diag.EntryUsage)
	}
}

func (ps *pass) directiveExtrn(line *Line, stmt *Directive) {
	ps.ignoreLabel(line)

	op := stmt.Operand
	if op.Kind != OPERAND_SYMBOL {
		ps.report(line, diag.OperandKind)
		return
	}

	if ps.symbols.Contains(op.Text) {
		ps.report(line, diag.ExtrnDefined)
		return
	}

	_ = ps.symbols.Define(op.Text, symbol.NoLocation, symbol.EXTERNAL, 0)
}

func (ps *pass) directiveReset(line *Line, stmt *Directive) {
	label := line.Label
	if len(label) == 0 {
		ps.report(line, diag.ResetLabel)
		return
	}

	op := stmt.Operand
	target := -1
	switch op.Kind {
	case OPERAND_SYMBOL:
		sym, err := ps.symbols.Get(op.Text)
		if err == nil && sym.Usage == symbol.EQUATED {
			target = sym.Value
		}
	case OPERAND_NUMBER, OPERAND_HEX, OPERAND_BINARY, OPERAND_INTEGER, OPERAND_CHAR:
		target = op.Value
	}

	if target < 0 || target > word.MAX_ADDR {
		ps.report(line, diag.ResetOperand)
		return
	}

	if target <= ps.ctx.LC {
		ps.report(line, diag.ResetBackward)
		return
	}

	ps.defineLabel(line, label, target)
	stmt.Operand.Value = target
	ps.ctx.LC = target
	line.LC = target
}

func (ps *pass) directiveDat(line *Line, stmt *Directive) {
	if len(line.Label) > 0 {
		ps.defineLabel(line, line.Label, ps.ctx.LC)
	}
	if !ps.allocate(line) {
		return
	}

	op := stmt.Operand
	switch {
	case op.Kind.Literal():
		line.Word = uint16(op.Value)
	case op.Kind == OPERAND_MALFORMED:
	default:
		ps.report(line, diag.DatOperand)
	}
}

func (ps *pass) directiveAdc(line *Line, stmt *Directive) {
	if len(line.Label) > 0 {
		ps.defineLabel(line, line.Label, ps.ctx.LC)
	}
	if !ps.allocate(line) {
		return
	}

	if stmt.Operand.Kind == OPERAND_NONE {
		ps.report(line, diag.OperandRequired)
	}
}

func (ps *pass) directiveNop(line *Line, stmt *Directive) {
	if len(line.Label) > 0 {
		ps.defineLabel(line, line.Label, ps.ctx.LC)
	}
	if !ps.allocate(line) {
		return
	}

	line.Word = NOP_WORD
	if stmt.Operand.Kind != OPERAND_NONE {
		ps.report(line, diag.NoOperand)
	}
}
