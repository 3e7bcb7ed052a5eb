// Package catalog holds the read-only instruction and directive tables of
// the FFA machine.
//
// The opcode table maps an instruction group (CNTL, STACK, JUMP, SOPER,
// MOPER) and a function name to the 5-bit prefix of the instruction word.
// The directive list names the assembler directives the line processor
// understands. Both are parsed once from configuration text and shared by
// pointer; default tables are embedded in the package.
package catalog
