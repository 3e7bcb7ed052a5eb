package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ffa/catalog"
	"github.com/ezrec/ffa/diag"
	"github.com/ezrec/ffa/token"
)

func TestParseOperand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		kind  OperandKind
		value int
	}){
		{"", OPERAND_NONE, 0},
		{":comment", OPERAND_NONE, 0},
		{"Label", OPERAND_SYMBOL, 0},
		{"*+1", OPERAND_EXPRESSION, 0},
		{"42", OPERAND_NUMBER, 42},
		{"65535", OPERAND_NUMBER, 0xffff},
		{"70000", OPERAND_MALFORMED, 0},
		{"X=1F", OPERAND_HEX, 0x1f},
		{"x=ffff", OPERAND_HEX, 0xffff},
		{"X=10000", OPERAND_MALFORMED, 0},
		{"X=G", OPERAND_MALFORMED, 0},
		{"X=", OPERAND_MALFORMED, 0},
		{"B=101", OPERAND_BINARY, 5},
		{"B=102", OPERAND_MALFORMED, 0},
		{"B=11111111111111111", OPERAND_MALFORMED, 0},
		{"X=FFFFFFFF", OPERAND_MALFORMED, 0},
		{"I=32767", OPERAND_INTEGER, 0x7fff},
		{"I=-1", OPERAND_INTEGER, 0xffff},
		{"I=-32768", OPERAND_INTEGER, 0x8000},
		{"I=40000", OPERAND_MALFORMED, 0},
		{"I=-32769", OPERAND_MALFORMED, 0},
		{"I=32768", OPERAND_MALFORMED, 0},
		{"C='a'", OPERAND_CHAR, 0x6100},
		{"C='ab'", OPERAND_CHAR, 0x6162},
		{"C='abc'", OPERAND_MALFORMED, 0},
		{"C=a", OPERAND_MALFORMED, 0},
		{"a_b", OPERAND_MALFORMED, 0},
	}

	for _, entry := range table {
		tok, _ := token.Next(entry.text)
		op := ParseOperand(tok)
		assert.Equal(entry.kind, op.Kind, entry.text)
		assert.Equal(entry.value, op.Value, entry.text)
	}
}

func TestOperandKind(t *testing.T) {
	assert := assert.New(t)

	assert.True(OPERAND_HEX.Literal())
	assert.True(OPERAND_CHAR.Numeric())
	assert.True(OPERAND_NUMBER.Numeric())
	assert.False(OPERAND_NUMBER.Literal())
	assert.False(OPERAND_SYMBOL.Numeric())
	assert.Equal("X=", OPERAND_HEX.String())
}

func TestLineInvalidate(t *testing.T) {
	assert := assert.New(t)

	line := &Line{
		Label:   "Here",
		Comment: ":kept",
		Stmt:    &Instruction{Category: catalog.SOPER, Function: "ADD"},
		Word:    0x812c,
	}
	line.Errors = append(line.Errors, diag.Error{Category: diag.SERIOUS, Code: 17})

	assert.False(line.Invalidated())
	line.Invalidate()
	assert.True(line.Invalidated())
	assert.Equal(NOP_WORD, line.Word)
	assert.Equal("Here", line.Label)
	assert.Equal(":kept", line.Comment)
	assert.True(line.Has(diag.SERIOUS))
	assert.False(line.Has(diag.FATAL))
	assert.Equal([]diag.Key{diag.SoperRange}, line.Keys())
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Opcodes: catalog.DefaultOpcodes()}

	number := func(value int) Operand {
		return Operand{Text: "n", Kind: OPERAND_NUMBER, Value: value}
	}
	symbol := Operand{Text: "Label", Kind: OPERAND_SYMBOL}
	expression := Operand{Text: "*+1", Kind: OPERAND_EXPRESSION}
	none := Operand{}

	table := [](struct {
		inst Instruction
		code uint16
		err  error
	}){
		{Instruction{Category: catalog.CNTL, Function: "HALT", Operand: number(5)}, 0x0005, nil},
		{Instruction{Category: catalog.CNTL, Function: "HALT", Operand: none}, 0, diag.HaltRange},
		{Instruction{Category: catalog.CNTL, Function: "HALT", Operand: number(1024)}, 0, diag.HaltRange},
		{Instruction{Category: catalog.CNTL, Function: "DUMP", Operand: number(2)}, 0x0802, nil},
		{Instruction{Category: catalog.CNTL, Function: "DUMP", Operand: number(4)}, 0, diag.DumpOperand},
		{Instruction{Category: catalog.CNTL, Function: "CLRD", Operand: none}, 0x1000, nil},
		{Instruction{Category: catalog.CNTL, Function: "CLRT", Operand: number(1)}, 0, diag.NoOperand},
		{Instruction{Category: catalog.CNTL, Function: "GOTO", Operand: symbol}, 0x2000, nil},
		{Instruction{Category: catalog.CNTL, Function: "GOTO", Operand: number(5)}, 0, diag.OperandKind},
		{Instruction{Category: catalog.CNTL, Function: "BOGUS", Operand: none}, 0, diag.BadFunction},
		{Instruction{Category: catalog.STACK, Function: "PUSH", Operand: number(7)}, 0x2c07, nil},
		{Instruction{Category: catalog.STACK, Function: "PUSH", Operand: symbol}, 0x2800, nil},
		{Instruction{Category: catalog.STACK, Function: "PUSH", Operand: expression}, 0x2c00, nil},
		{Instruction{Category: catalog.STACK, Function: "PUSH", Operand: number(1024)}, 0, diag.LiteralRange},
		{Instruction{Category: catalog.STACK, Function: "POP", Operand: none}, 0, diag.OperandRequired},
		{Instruction{Category: catalog.STACK, Function: "PUSH", Operand: number(5), Equated: "Five"}, 0x2c05, nil},
		{Instruction{Category: catalog.STACK, Function: "PUSH", Operand: number(5), Equated: "Here", Relocations: 1}, 0x2805, nil},
		{Instruction{Category: catalog.JUMP, Function: "EQUAL", Operand: number(10)}, 0x400a, nil},
		{Instruction{Category: catalog.JUMP, Function: "EQUAL", Operand: number(2000)}, 0, diag.HaltRange},
		{Instruction{Category: catalog.JUMP, Function: "LESS", Operand: none}, 0, diag.OperandRequired},
		{Instruction{Category: catalog.JUMP, Function: "TNULL", Operand: symbol}, 0x6000, nil},
		{Instruction{Category: catalog.SOPER, Function: "ADD", Operand: number(255)}, 0x80ff, nil},
		{Instruction{Category: catalog.SOPER, Function: "ADD", Operand: number(256)}, 0, diag.SoperRange},
		{Instruction{Category: catalog.SOPER, Function: "ADD", Operand: symbol}, 0, diag.SoperRange},
		{Instruction{Category: catalog.SOPER, Function: "WRITEN", Operand: number(65)}, 0xb841, nil},
		{Instruction{Category: catalog.SOPER, Function: "WRITEC", Operand: number(65)}, 0xbc41, nil},
		{Instruction{Category: catalog.MOPER, Function: "ADD", Operand: Operand{Kind: OPERAND_HEX, Value: 0x10}}, 0xc010, nil},
		{Instruction{Category: catalog.MOPER, Function: "READC", Operand: symbol}, 0xf400, nil},
		{Instruction{Category: catalog.MOPER, Function: "ADD", Operand: number(1024)}, 0, diag.LiteralRange},
	}

	for _, entry := range table {
		code, err := asm.Encode(&entry.inst)
		if entry.err != nil {
			assert.Equal(entry.err, err, "%+v", entry.inst)
			continue
		}
		assert.NoError(err, "%+v", entry.inst)
		assert.Equal(entry.code, code, "%+v", entry.inst)
	}
}
