package asm

import (
	"strconv"
	"strings"

	"github.com/ezrec/ffa/catalog"
	"github.com/ezrec/ffa/diag"
	"github.com/ezrec/ffa/object"
	"github.com/ezrec/ffa/token"
	"github.com/ezrec/ffa/word"
)

// NOP_WORD is the encoding of an invalidated line, SOPER ADD,0.
const NOP_WORD = uint16(0x8000)

// OperandKind is the syntactic form of an operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NONE       = OperandKind(0) // none
	OPERAND_SYMBOL     = OperandKind(1) // symbol
	OPERAND_NUMBER     = OperandKind(2) // number
	OPERAND_EXPRESSION = OperandKind(3) // expression
	OPERAND_HEX        = OperandKind(4) // X=
	OPERAND_BINARY     = OperandKind(5) // B=
	OPERAND_INTEGER    = OperandKind(6) // I=
	OPERAND_CHAR       = OperandKind(7) // C=
	OPERAND_MALFORMED  = OperandKind(8) // malformed
)

// Literal returns true for the X=, B=, I= and C= forms.
func (kind OperandKind) Literal() bool {
	switch kind {
	case OPERAND_HEX, OPERAND_BINARY, OPERAND_INTEGER, OPERAND_CHAR:
		return true
	}
	return false
}

// Numeric returns true if the operand has a value in pass 1.
func (kind OperandKind) Numeric() bool {
	return kind == OPERAND_NUMBER || kind.Literal()
}

// Operand is a parsed operand. Value is the 16-bit encoding of a numeric
// operand.
type Operand struct {
	Text  string
	Kind  OperandKind
	Value int
}

// ParseOperand converts an operand token.
func ParseOperand(tok token.Token) (op Operand) {
	op.Text = tok.Text

	switch tok.Kind {
	case token.EMPTY, token.COMMENT:
		op.Text = ""
		op.Kind = OPERAND_NONE
	case token.LABEL_OR_COMMAND:
		op.Kind = OPERAND_SYMBOL
	case token.EXPRESSION:
		op.Kind = OPERAND_EXPRESSION
	case token.NUMBER:
		value, err := strconv.Atoi(tok.Text)
		if err != nil || value > 0xffff {
			op.Kind = OPERAND_MALFORMED
			return
		}
		op.Kind = OPERAND_NUMBER
		op.Value = value
	case token.LITERAL:
		op.Kind, op.Value = parseLiteral(tok.Text)
	default:
		op.Kind = OPERAND_MALFORMED
	}

	return
}

// parseLiteral decodes a X=, B=, I= or C= literal to a 16-bit value.
func parseLiteral(text string) (kind OperandKind, value int) {
	kind = OPERAND_MALFORMED
	defer func() {
		if kind == OPERAND_MALFORMED {
			value = 0
		}
	}()

	body := text[2:]
	if len(body) == 0 {
		return
	}

	var err error
	switch text[0] {
	case 'X', 'x':
		value, err = word.ParseHex(body, 32)
		if err != nil || value < 0 || !word.InRange(value, word.BITS) {
			return
		}
		kind = OPERAND_HEX
	case 'B', 'b':
		value, err = word.ParseBinary(body)
		if err != nil || !word.InRange(value, word.BITS) {
			return
		}
		kind = OPERAND_BINARY
	case 'I', 'i':
		value, err = strconv.Atoi(body)
		if err != nil || !word.InRange(value, word.BITS) || value > word.INT_MAX {
			return
		}
		if value < 0 {
			value = word.Convert(value, word.BITS)
		}
		kind = OPERAND_INTEGER
	case 'C', 'c':
		if len(body) < 3 || body[0] != '\'' || body[len(body)-1] != '\'' {
			return
		}
		chars := body[1 : len(body)-1]
		switch len(chars) {
		case 1:
			value = int(chars[0]) << 8
		case 2:
			value = int(chars[0])<<8 | int(chars[1])
		default:
			return
		}
		kind = OPERAND_CHAR
	}

	return
}

// Statement is the parsed body of a line: an *Instruction, a *Directive or
// Invalidated.
type Statement interface {
	isStatement()
}

// Instruction is a machine instruction statement.
type Instruction struct {
	Category    catalog.Category
	Function    string
	Operand     Operand
	Equated     string // Equated symbol substituted for the operand.
	Relocations int    // Relocations of the equated symbol.
}

func (*Instruction) isStatement() {}

// Directive is an assembler directive statement.
type Directive struct {
	Kind    catalog.Directive
	Operand Operand
}

func (*Directive) isStatement() {}

// Invalidated replaces a statement that failed validation.
type Invalidated struct{}

func (Invalidated) isStatement() {}

// Line is the intermediate form of one source line.
type Line struct {
	Source    string       // Source text.
	LineNo    int          // Source line number, from 1.
	LC        int          // Location counter.
	Addressed bool         // Set if the line occupies the word at LC.
	Label     string       // Label, if any.
	Comment   string       // Comment, if any.
	Stmt      Statement    // Statement, or nil for blank and comment lines.
	Word      uint16       // Encoded word.
	Flag      object.Flag  // Relocation status, set by pass 2.
	Errors    []diag.Error // Diagnostics, in order of discovery.
}

// Invalidate replaces the statement of the line, keeping its label, comment
// and diagnostics.
func (line *Line) Invalidate() {
	line.Stmt = Invalidated{}
	line.Word = NOP_WORD
	line.Flag = object.ABSOLUTE
}

// Invalidated returns true if the line was invalidated.
func (line *Line) Invalidated() bool {
	_, ok := line.Stmt.(Invalidated)
	return ok
}

// Has returns true if the line has a diagnostic of the category.
func (line *Line) Has(cat diag.Category) bool {
	for _, err := range line.Errors {
		if err.Category == cat {
			return true
		}
	}
	return false
}

// Keys returns the keys of the diagnostics of the line.
func (line *Line) Keys() (keys []diag.Key) {
	for _, err := range line.Errors {
		keys = append(keys, err.Key())
	}
	return
}

// Directive returns the directive of the line, if it has one.
func (line *Line) Directive() (dir *Directive, ok bool) {
	dir, ok = line.Stmt.(*Directive)
	return
}

// blank returns true if the line holds nothing but a comment.
func blank(source string) bool {
	trimmed := strings.TrimLeft(source, " \t")
	return len(trimmed) == 0 || trimmed[0] == ':'
}
