// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package object holds the relocatable object records produced by the
// assembler and the assembly report.
//
// An object file is a sequence of colon delimited text records, in order:
//
//	H:<name>:<load>:<length>:<start>:<date>:<version>:<records>:<linking>:<text>:<modify>:<asmid>:<name>
//	L:<entry>:<location>:<name>
//	T:<location>:<word>:<flag>:<adjustments>:<name>
//	M:<location>:<word>:<sign>:<label>:...:<name>
//	E:<name>
//
// Numeric fields are four digit uppercase hex, except the one digit
// adjustment count of a text record.
package object
