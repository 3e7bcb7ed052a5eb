// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"
	"unicode"

	"github.com/ezrec/ffa/catalog"
	"github.com/ezrec/ffa/diag"
	"github.com/ezrec/ffa/expr"
	"github.com/ezrec/ffa/object"
	"github.com/ezrec/ffa/symbol"
	"github.com/ezrec/ffa/token"
	"github.com/ezrec/ffa/word"
)

const (
	LABEL_MIN = 2  // Shortest label.
	LABEL_MAX = 32 // Longest label.
)

// Assembler is a two pass assembler for the FFA machine. The zero value
// uses the default catalogs.
type Assembler struct {
	Verbose    bool                // If set, verbosely logs the assembler actions.
	Opcodes    *catalog.Opcodes    // Instruction table.
	Directives *catalog.Directives // Enabled directives.
	Errors     *diag.Catalog       // Diagnostic messages.
	Version    int                 // Header version; 0 selects object.DEFAULT_VERSION.
	AsmID      string              // Header assembler id; "" selects object.DEFAULT_ASM_ID.
}

// Context is the run scoped state of one assembly.
type Context struct {
	LC            int    // Location counter.
	Start         int    // Load address.
	Program       string // Program name.
	Started       bool   // START seen.
	Ended         bool   // END seen.
	Fatal         bool   // A Fatal diagnostic ended the run.
	Emitted       bool   // Pass 2 has run.
	TotalErrors   int    // Count of Fatal and Serious diagnostics.
	TotalWarnings int    // Count of Warning diagnostics.
}

// Program is the result of pass 1.
type Program struct {
	Context Context
	Lines   []*Line
	Symbols *symbol.Table
}

// Length returns the module length in words.
func (prog *Program) Length() int {
	return prog.Context.LC - prog.Context.Start
}

// TotalErrors returns the count of Fatal and Serious diagnostics.
func (prog *Program) TotalErrors() int {
	return prog.Context.TotalErrors
}

// Report returns the assembly listing of the program.
func (prog *Program) Report() (rpt *object.Report) {
	rpt = &object.Report{}
	for _, line := range prog.Lines {
		rpt.Rows = append(rpt.Rows, object.Row{
			LC:        line.LC,
			Addressed: line.Addressed,
			Word:      line.Word,
			Flag:      line.Flag,
			LineNo:    line.LineNo,
			Source:    line.Source,
			Errors:    line.Errors,
		})
	}
	return
}

// pass holds the state shared by the line handlers of one run.
type pass struct {
	*Assembler
	ctx     *Context
	prog    *Program
	symbols *symbol.Table
	eval    *expr.Evaluator
	fatal   *ErrFatal
}

func (asm *Assembler) defaults() {
	if asm.Opcodes == nil {
		asm.Opcodes = catalog.DefaultOpcodes()
	}
	if asm.Directives == nil {
		asm.Directives = catalog.DefaultDirectives()
	}
	if asm.Errors == nil {
		asm.Errors = diag.DefaultCatalog()
	}
}

// reserved returns true for instruction group and directive names.
func (asm *Assembler) reserved(name string) bool {
	return asm.Opcodes.IsGroup(name) || asm.Directives.Contains(name)
}

// isStart returns true if the source line is a START directive.
func (asm *Assembler) isStart(source string) bool {
	tok, rest := token.Next(source)
	if !asm.reserved(tok.Text) && startsLabel(source) {
		tok, _ = token.Next(rest)
	}
	dir, ok := asm.Directives.Lookup(tok.Text)
	return ok && dir == catalog.START
}

// startsLabel returns true if the line has something in the label column.
func startsLabel(source string) bool {
	return len(source) > 0 && !strings.ContainsRune(" \t:", rune(source[0]))
}

// report records a diagnostic on a line.
func (ps *pass) report(line *Line, key diag.Key) {
	err := ps.Errors.Lookup(key)
	line.Errors = append(line.Errors, err)

	switch key.Category {
	case diag.FATAL:
		ps.ctx.TotalErrors++
		ps.ctx.Fatal = true
		if ps.fatal == nil {
			ps.fatal = &ErrFatal{LineNo: line.LineNo, Line: line.Source, Err: err}
		}
	case diag.SERIOUS:
		ps.ctx.TotalErrors++
	case diag.WARNING:
		ps.ctx.TotalWarnings++
	}

	if ps.Verbose {
		log.Printf("%d: %v", line.LineNo, err)
	}
}

// reportErr records an evaluator failure on a line.
func (ps *pass) reportErr(line *Line, err error) {
	var key diag.Key
	if !errors.As(err, &key) {
		key = diag.Malformed
	}
	ps.report(line, key)
}

// Parse runs pass 1 over the source. If a Fatal diagnostic ends the run,
// the lines read so far are returned with an *ErrFatal.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.defaults()

	prog = &Program{Symbols: symbol.NewTable()}
	ps := &pass{
		Assembler: asm,
		ctx:       &prog.Context,
		prog:      prog,
		symbols:   prog.Symbols,
	}
	ps.eval = &expr.Evaluator{Verbose: asm.Verbose, Symbols: prog.Symbols}

	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := &Line{
			Source: strings.TrimRight(scanner.Text(), "\r"),
			LineNo: lineno,
			LC:     ps.ctx.LC,
		}
		prog.Lines = append(prog.Lines, line)

		switch {
		case lineno == 1 && !asm.isStart(line.Source):
			ps.report(line, diag.NoStart)
		case ps.ctx.Ended:
			if !blank(line.Source) {
				ps.report(line, diag.AfterEnd)
				break
			}
			line.Comment = parseComment(line.Source)
		default:
			ps.parseLine(line)
		}

		if asm.Verbose {
			ps.logLine(line)
		}

		if ps.fatal != nil {
			err = ps.fatal
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if lineno == 0 {
		line := &Line{LineNo: 1}
		prog.Lines = append(prog.Lines, line)
		ps.report(line, diag.NoStart)
		err = ps.fatal
		return
	}

	if !ps.ctx.Ended {
		ps.report(prog.Lines[len(prog.Lines)-1], diag.NoEnd)
	}

	return
}

// parseComment returns the comment of a blank line.
func parseComment(source string) (comment string) {
	tok, _ := token.Next(source)
	if tok.Kind == token.COMMENT {
		comment = tok.Text
	}
	return
}

func (ps *pass) logLine(line *Line) {
	switch stmt := line.Stmt.(type) {
	case *Instruction:
		group, function, _ := ps.Opcodes.Decode(line.Word)
		log.Printf("%d: %04X %v %v %v (%v %v) %v", line.LineNo, line.LC, word.Binary(int(line.Word), word.BITS), stmt.Category, stmt.Function, group, function, stmt.Operand.Text)
	case *Directive:
		log.Printf("%d: %04X %v %v", line.LineNo, line.LC, stmt.Kind, stmt.Operand.Text)
	case Invalidated:
		log.Printf("%d: %04X %v invalidated", line.LineNo, line.LC, word.Binary(int(line.Word), word.BITS))
	}
}

// parseLine runs pass 1 on a single line.
func (ps *pass) parseLine(line *Line) {
	rest := line.Source

	if blank(rest) {
		line.Comment = parseComment(rest)
		return
	}

	var label string
	hasLabel := false
	if startsLabel(rest) {
		tok, after := token.Next(rest)
		if !ps.reserved(tok.Text) {
			rest = after
			hasLabel = true
			switch {
			case len(tok.Text) == 0 || !unicode.IsLetter(rune(tok.Text[0])) || tok.Kind != token.LABEL_OR_COMMAND:
				ps.report(line, diag.LabelSyntax)
			case len(tok.Text) < LABEL_MIN || len(tok.Text) > LABEL_MAX:
				ps.report(line, diag.LabelLength)
			default:
				label = tok.Text
			}
		}
	}
	line.Label = label

	cmd, rest := token.Next(rest)

	if group, ok := ps.Opcodes.Group(cmd.Text); ok && cmd.Kind == token.LABEL_OR_COMMAND {
		rest = ps.parseInstruction(line, group, rest)
	} else if dir, ok := ps.Directives.Lookup(cmd.Text); ok && cmd.Kind == token.LABEL_OR_COMMAND {
		rest = ps.parseDirective(line, dir, rest)
	} else {
		if cmd.Kind == token.COMMENT {
			line.Comment = cmd.Text
		}
		if len(label) > 0 {
			ps.defineLabel(line, label, ps.ctx.LC)
		}
		missing := cmd.Kind == token.EMPTY || cmd.Kind == token.COMMENT
		if len(label) > 0 || !hasLabel || !missing {
			ps.report(line, diag.BadCategory)
		}
		return
	}

	if ps.fatal != nil {
		return
	}

	ps.parseTrailing(line, rest)

	if line.Addressed && line.Has(diag.SERIOUS) && !line.Invalidated() {
		line.Invalidate()
	}
}

// parseTrailing checks for anything after the operand.
func (ps *pass) parseTrailing(line *Line, rest string) {
	tok, _ := token.Next(rest)
	switch tok.Kind {
	case token.EMPTY:
	case token.COMMENT:
		line.Comment = tok.Text
	default:
		ps.report(line, diag.Trailing)
	}
}

// parseOperand reads an operand, and any comment in its place.
func (ps *pass) parseOperand(line *Line, rest string) (op Operand, after string) {
	tok, after := token.Next(rest)
	if tok.Kind == token.COMMENT {
		line.Comment = tok.Text
	}

	op = ParseOperand(tok)
	if op.Kind == OPERAND_MALFORMED {
		ps.report(line, diag.Malformed)
	}
	return
}

// allocate assigns the word at the location counter to the line.
func (ps *pass) allocate(line *Line) (ok bool) {
	if ps.ctx.LC > word.MAX_ADDR {
		ps.report(line, diag.TooLarge)
		return
	}

	line.LC = ps.ctx.LC
	line.Addressed = true
	ps.ctx.LC++
	return true
}

// defineLabel defines a label at lc. An entry without an address takes
// lc; any other existing symbol is kept.
func (ps *pass) defineLabel(line *Line, label string, lc int) {
	sym, err := ps.symbols.Get(label)
	if err != nil {
		_ = ps.symbols.Define(label, lc, symbol.LABEL, 0)
		return
	}

	if sym.Usage == symbol.ENTRY && !sym.Located() {
		sym.LC = lc
		_ = ps.symbols.Replace(sym)
		return
	}

	ps.report(line, diag.Redefined)
}
