// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm is the two pass assembler of the FFA machine.
//
// Pass 1 (Assembler.Parse) reads the source one line at a time, defines
// symbols, allocates words and encodes instructions with placeholder
// address fields. Pass 2 (Assembler.Emit) resolves the remaining symbol and
// expression references now that the module length is known, and produces
// the object records.
//
// Source lines have the form
//
//	[label] GROUP FUNCTION,operand [:comment]
//	[label] DIRECTIVE operand [:comment]
//
// A label starts in the first column. Instruction groups are CNTL, STACK,
// JUMP, SOPER and MOPER. Operands are labels, decimal numbers, expressions
// of '*', labels and numbers joined by '+' and '-', or the literals X=hex,
// B=binary, I=integer and C='c' or C='cc'.
//
// Problems are recorded on the line as diagnostics. A Serious diagnostic
// replaces the encoding of the line with that of SOPER ADD,0 so that the
// remaining addresses are unchanged. A Fatal diagnostic ends the assembly.
package asm
