package catalog

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"log"
	"strings"
)

// Category is an instruction group.
type Category int

//go:generate go tool stringer -linecomment -type=Category
const (
	CNTL  = Category(0) // CNTL
	STACK = Category(1) // STACK
	JUMP  = Category(2) // JUMP
	SOPER = Category(3) // SOPER
	MOPER = Category(4) // MOPER
)

// Categories lists every instruction group.
var Categories = []Category{CNTL, STACK, JUMP, SOPER, MOPER}

// ParseCategory looks up an instruction group by name, ignoring case.
func ParseCategory(name string) (cat Category, ok bool) {
	name = strings.ToUpper(name)
	for _, cat = range Categories {
		if cat.String() == name {
			ok = true
			return
		}
	}
	return
}

//go:embed opcodes.txt
var DefaultOpcodeText string

// BITCODE_LEN is the length of an opcode bitcode.
const BITCODE_LEN = 5

type opcodeEntry struct {
	group    Category
	function string
	bitcode  string
}

// Opcodes maps instruction group and function names to bitcodes.
type Opcodes struct {
	groups map[Category]map[string]string
	order  []opcodeEntry
}

// DefaultOpcodes returns the embedded opcode table.
func DefaultOpcodes() *Opcodes {
	ops, err := ParseOpcodes(strings.NewReader(DefaultOpcodeText))
	if err != nil {
		log.Fatalf("catalog: embedded opcodes: %v", err)
	}
	return ops
}

// ParseOpcodes reads an opcode table of 'GROUP FUNCTION BITCODE' lines.
// Blank lines are ignored.
func ParseOpcodes(input io.Reader) (ops *Opcodes, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrLine{LineNo: lineno, Line: line, Err: err}
			ops = nil
		}
	}()

	ops = &Opcodes{
		groups: make(map[Category]map[string]string),
	}

	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if len(words) != 3 {
			err = ErrOpcodeSyntax
			return
		}

		group, ok := ParseCategory(words[0])
		if !ok {
			err = ErrGroupUnknown(words[0])
			return
		}

		function := strings.ToUpper(words[1])
		bitcode := words[2]
		if len(bitcode) != BITCODE_LEN || strings.Trim(bitcode, "01") != "" {
			err = ErrOpcodeBitcode
			return
		}

		functions, ok := ops.groups[group]
		if !ok {
			functions = make(map[string]string)
			ops.groups[group] = functions
		}
		if _, ok := functions[function]; ok {
			err = ErrOpcodeDuplicate
			return
		}

		functions[function] = bitcode
		ops.order = append(ops.order, opcodeEntry{group: group, function: function, bitcode: bitcode})
	}

	err = scanner.Err()
	return
}

// IsGroup returns true if the name is an instruction group of the table.
func (ops *Opcodes) IsGroup(name string) bool {
	_, ok := ops.Group(name)
	return ok
}

// Group returns the instruction group of a name, if the table has it.
func (ops *Opcodes) Group(name string) (group Category, ok bool) {
	group, ok = ParseCategory(name)
	if !ok {
		return
	}
	_, ok = ops.groups[group]
	return
}

// IsInstruction returns true if function is valid in the named group.
func (ops *Opcodes) IsInstruction(group string, function string) bool {
	cat, ok := ops.Group(group)
	if !ok {
		return false
	}
	_, ok = ops.groups[cat][strings.ToUpper(function)]
	return ok
}

// Bitcode returns the five character bitcode of an instruction.
func (ops *Opcodes) Bitcode(group Category, function string) (bitcode string, err error) {
	functions, ok := ops.groups[group]
	if !ok {
		err = ErrGroupUnknown(group.String())
		return
	}

	bitcode, ok = functions[strings.ToUpper(function)]
	if !ok {
		err = ErrFunctionUnknown{Group: group, Function: function}
		return
	}

	return
}

// Prefix returns the bitcode of an instruction placed in the top five bits
// of a 16-bit word.
func (ops *Opcodes) Prefix(group Category, function string) (prefix uint16, err error) {
	bitcode, err := ops.Bitcode(group, function)
	if err != nil {
		return
	}

	for _, c := range bitcode {
		prefix <<= 1
		if c == '1' {
			prefix |= 1
		}
	}
	prefix <<= 16 - BITCODE_LEN
	return
}

// ReverseLookup finds the first instruction in table order with the given
// bitcode.
func (ops *Opcodes) ReverseLookup(bitcode string) (group Category, function string, ok bool) {
	for _, entry := range ops.order {
		if entry.bitcode == bitcode {
			return entry.group, entry.function, true
		}
	}
	return
}

// Decode finds the instruction of a 16-bit word.
func (ops *Opcodes) Decode(word uint16) (group Category, function string, ok bool) {
	return ops.ReverseLookup(fmt.Sprintf("%0*b", BITCODE_LEN, word>>(16-BITCODE_LEN)))
}
