package asm

import (
	"io"
	"time"

	"github.com/ezrec/ffa/catalog"
	"github.com/ezrec/ffa/diag"
	"github.com/ezrec/ffa/expr"
	"github.com/ezrec/ffa/object"
	"github.com/ezrec/ffa/symbol"
	"github.com/ezrec/ffa/word"
)

// Assemble runs both passes over the source.
func (asm *Assembler) Assemble(input io.Reader, now time.Time) (prog *Program, obj *object.File, err error) {
	prog, err = asm.Parse(input)
	if err != nil {
		return
	}

	obj, err = asm.Emit(prog, now)
	return
}

// Emit runs pass 2 over a parsed program and builds its object file. The
// lines of prog receive their final encoding, flags and diagnostics, so a
// program may be emitted only once.
func (asm *Assembler) Emit(prog *Program, now time.Time) (obj *object.File, err error) {
	asm.defaults()

	if prog.Context.Fatal || !prog.Context.Started {
		err = ErrNoProgram
		return
	}

	if prog.Context.Emitted {
		err = ErrEmitted
		return
	}
	prog.Context.Emitted = true

	ps := &pass{
		Assembler: asm,
		ctx:       &prog.Context,
		prog:      prog,
		symbols:   prog.Symbols,
	}
	ps.eval = &expr.Evaluator{Verbose: asm.Verbose, Symbols: prog.Symbols, Program: prog.Context.Program}

	name := prog.Context.Program
	obj = &object.File{End: object.End{Program: name}}

	obj.Linking = ps.entries()

	for _, line := range prog.Lines {
		if !line.Addressed {
			dir, ok := line.Directive()
			if ok && dir.Kind == catalog.RESET && len(line.Errors) == 0 {
				obj.Linking = append(obj.Linking, object.Linking{Entry: line.Label, Location: dir.Operand.Value, Program: name})
			}
			continue
		}

		mod := ps.resolve(line)

		txt := object.Text{Location: line.LC, Word: line.Word, Flag: line.Flag, Program: name}
		if mod != nil {
			txt.Adjustments = mod.Len()
			obj.Modify = append(obj.Modify, *mod)
		}
		obj.Text = append(obj.Text, txt)

		if asm.Verbose {
			ps.logLine(line)
		}
	}

	version := asm.Version
	if version == 0 {
		version = object.DEFAULT_VERSION
	}

	obj.Header = object.Header{
		Name:         name,
		Load:         prog.Context.Start,
		Length:       prog.Length(),
		Start:        prog.Context.Start,
		Date:         now,
		Version:      version,
		AsmID:        asm.AsmID,
		TotalLinking: len(obj.Linking),
		TotalText:    len(obj.Text),
		TotalModify:  len(obj.Modify),
	}

	return
}

// entries returns the linking records of the located entry symbols, and
// reports those never given an address.
func (ps *pass) entries() (linking []object.Linking) {
	for _, label := range ps.symbols.Sorted() {
		sym, _ := ps.symbols.Get(label)
		if sym.Usage != symbol.ENTRY {
			continue
		}

		if sym.Located() {
			linking = append(linking, object.Linking{Entry: label, Location: sym.LC, Program: ps.ctx.Program})
			continue
		}

		for _, line := range ps.prog.Lines {
			dir, ok := line.Directive()
			if ok && dir.Kind == catalog.ENTRY && dir.Operand.Text == label {
				ps.report(line, diag.EntryUndefined)
			}
		}
	}

	return
}

// inModule returns true if an address lies within the program.
func (ps *pass) inModule(addr int) bool {
	start := ps.ctx.Start
	return start <= addr && addr <= start+ps.prog.Length()
}

// resolve classifies an addressed line, patching its word. A modification
// record is returned for words that need link time adjustment.
func (ps *pass) resolve(line *Line) (mod *object.Modification) {
	line.Flag = object.ABSOLUTE

	switch stmt := line.Stmt.(type) {
	case *Instruction:
		mod = ps.resolveInstruction(line, stmt)
	case *Directive:
		if stmt.Kind == catalog.ADC || stmt.Kind == catalog.ADCE {
			mod = ps.resolveAdc(line, stmt)
		}
	}

	if mod == nil {
		return
	}

	if mod.Len() > object.MAX_ADJUSTMENTS {
		ps.report(line, diag.Truncated)
		mod.Adjustments = mod.Adjustments[:object.MAX_ADJUSTMENTS]
	}

	line.Flag = object.MODIFY
	mod.Location = line.LC
	mod.Word = line.Word
	mod.Program = ps.ctx.Program
	return
}

// fail reports a diagnostic and invalidates the line.
func (ps *pass) fail(line *Line, err error) {
	ps.reportErr(line, err)
	line.Invalidate()
}

func (ps *pass) resolveInstruction(line *Line, inst *Instruction) (mod *object.Modification) {
	if len(inst.Equated) > 0 {
		switch inst.Relocations {
		case 0:
		case 1:
			line.Flag = object.RELOCATABLE
		default:
			mod = &object.Modification{}
			for range inst.Relocations {
				mod.Add(true, ps.ctx.Program)
			}
		}
		return
	}

	op := inst.Operand
	switch op.Kind {
	case OPERAND_SYMBOL:
		sym, err := ps.symbols.Get(op.Text)
		switch {
		case err != nil:
			ps.fail(line, diag.UndefinedOperand)
		case sym.Usage == symbol.EXTERNAL:
			mod = &object.Modification{}
			mod.Add(true, sym.Label)
		case sym.Usage == symbol.EQUATED:
			ps.fail(line, diag.EquForward)
		case sym.Located():
			line.Word = line.Word&^ADDR_MASK | uint16(sym.LC)
			line.Flag = object.RELOCATABLE
		default:
			ps.fail(line, diag.UndefinedOperand)
		}
	case OPERAND_EXPRESSION:
		mod = &object.Modification{}
		value, err := ps.eval.Operand(op.Text, line.LC, mod)
		if err == nil && !ps.inModule(value) {
			err = diag.OutsideModule
		}
		if err != nil {
			ps.fail(line, err)
			mod = nil
			return
		}
		line.Word = line.Word&^ADDR_MASK | uint16(value)
	}

	return
}

// localOnly returns true if every adjustment is to this program.
func (ps *pass) localOnly(mod *object.Modification) bool {
	for _, adj := range mod.Adjustments {
		if adj.Label != ps.ctx.Program {
			return false
		}
	}
	return true
}

func (ps *pass) resolveAdc(line *Line, dir *Directive) (mod *object.Modification) {
	op := dir.Operand
	switch {
	case op.Kind.Numeric():
		line.Word = uint16(op.Value)
	case op.Kind == OPERAND_SYMBOL, op.Kind == OPERAND_EXPRESSION:
		mod = &object.Modification{}
		res, err := ps.eval.Adc(op.Text, line.LC, maxOperators(dir.Kind), mod)
		if err == nil && !res.Literal && !res.Absolute && ps.localOnly(mod) && !ps.inModule(res.Value) {
			err = diag.OutsideModule
		}
		if err != nil {
			ps.fail(line, err)
			mod = nil
			return
		}

		line.Word = uint16(word.Convert(res.Value, word.BITS))
		if res.Relocations == 0 {
			mod = nil
		}
	}

	return
}
