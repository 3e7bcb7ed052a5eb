package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodesDefault(t *testing.T) {
	assert := assert.New(t)

	ops := DefaultOpcodes()

	for _, name := range []string{"CNTL", "STACK", "JUMP", "SOPER", "MOPER", "moper"} {
		assert.True(ops.IsGroup(name), name)
	}
	assert.False(ops.IsGroup("START"))
	assert.False(ops.IsGroup(""))

	assert.True(ops.IsInstruction("MOPER", "ADD"))
	assert.True(ops.IsInstruction("moper", "add"))
	assert.True(ops.IsInstruction("SOPER", "READC"))
	assert.False(ops.IsInstruction("CNTL", "ADD"))
	assert.False(ops.IsInstruction("NONE", "ADD"))

	table := [](struct {
		group    Category
		function string
		bitcode  string
		prefix   uint16
	}){
		{CNTL, "HALT", "00000", 0x0000},
		{CNTL, "GOTO", "00100", 0x2000},
		{STACK, "PUSH", "00101", 0x2800},
		{JUMP, "TNULL", "01100", 0x6000},
		{SOPER, "ADD", "10000", 0x8000},
		{SOPER, "AND", "10101", 0xa800},
		{SOPER, "writec", "10111", 0xb800},
		{MOPER, "ADD", "11000", 0xc000},
		{MOPER, "WRITEN", "11111", 0xf800},
	}

	for _, entry := range table {
		bitcode, err := ops.Bitcode(entry.group, entry.function)
		assert.NoError(err)
		assert.Equal(entry.bitcode, bitcode, entry.function)

		prefix, err := ops.Prefix(entry.group, entry.function)
		assert.NoError(err)
		assert.Equal(entry.prefix, prefix, entry.function)
	}

	_, err := ops.Bitcode(CNTL, "PUSH")
	assert.Equal(ErrFunctionUnknown{Group: CNTL, Function: "PUSH"}, err)
}

func TestOpcodesReverse(t *testing.T) {
	assert := assert.New(t)

	ops := DefaultOpcodes()

	group, function, ok := ops.ReverseLookup("10101")
	assert.True(ok)
	assert.Equal(SOPER, group)
	assert.Equal("AND", function)

	// Shared bitcodes resolve to the first entry of the table.
	group, function, ok = ops.ReverseLookup("11110")
	assert.True(ok)
	assert.Equal(MOPER, group)
	assert.Equal("READN", function)

	group, function, ok = ops.Decode(0x8000)
	assert.True(ok)
	assert.Equal(SOPER, group)
	assert.Equal("ADD", function)

	group, function, ok = ops.Decode(0x2005)
	assert.True(ok)
	assert.Equal(CNTL, group)
	assert.Equal("GOTO", function)

	// No instruction carries 01101.
	_, _, ok = ops.Decode(0x6800)
	assert.False(ok)
}

func TestOpcodesParse(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text []string
		err  error
	}){
		{[]string{"", "CNTL HALT 00000", ""}, nil},
		{[]string{"CNTL HALT"}, ErrOpcodeSyntax},
		{[]string{"CNTL HALT 0000"}, ErrOpcodeBitcode},
		{[]string{"CNTL HALT 0000x"}, ErrOpcodeBitcode},
		{[]string{"CNTL HALT 00000", "CNTL halt 00001"}, ErrOpcodeDuplicate},
		{[]string{"FPU ADD 00000"}, ErrGroupUnknown("FPU")},
	}

	for _, entry := range table {
		ops, err := ParseOpcodes(strings.NewReader(strings.Join(entry.text, "\n")))
		if entry.err == nil {
			assert.NoError(err)
			assert.NotNil(ops)
			continue
		}
		assert.Nil(ops)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.text, err)

		var lerr *ErrLine
		assert.True(errors.As(err, &lerr))
	}

	ops, err := ParseOpcodes(strings.NewReader("CNTL HALT 00000"))
	assert.NoError(err)
	assert.True(ops.IsGroup("CNTL"))
	assert.False(ops.IsGroup("SOPER"))
}

func TestDirectives(t *testing.T) {
	assert := assert.New(t)

	dirs := DefaultDirectives()
	assert.Equal(len(AllDirectives), dirs.Len())

	for _, dir := range AllDirectives {
		assert.True(dirs.Contains(dir.String()), dir.String())
		assert.True(dirs.Contains(strings.ToLower(dir.String())), dir.String())
	}

	dir, ok := dirs.Lookup("eque")
	assert.True(ok)
	assert.Equal(EQUE, dir)

	assert.False(dirs.Contains("MOPER"))
	assert.False(dirs.Contains(""))

	dirs, err := ParseDirectives(strings.NewReader("START\n\nEND\n"))
	assert.NoError(err)
	assert.Equal(2, dirs.Len())
	assert.False(dirs.Contains("EQU"))

	_, err = ParseDirectives(strings.NewReader("START\nORG\n"))
	assert.True(errors.Is(err, ErrDirectiveUnknown("ORG")))

	_, err = ParseDirectives(strings.NewReader("START END\n"))
	assert.True(errors.Is(err, ErrDirectiveSyntax))
}
