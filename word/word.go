// Package word holds the fixed-width number helpers of the 16-bit machine:
// two's complement conversion and the hex and binary renderings used in
// object records and listings.
package word

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	BITS     = 16   // Bits in a machine word.
	ADDRESS  = 10   // Bits in an address field.
	MEMORY   = 1024 // Addressable words.
	MAX_ADDR = MEMORY - 1
	INT_MAX  = 1<<(BITS-1) - 1 // Largest signed word.
)

// Convert converts to and from two's complement representation in the given
// number of binary digits.
//
// Non-negative numbers below 2^(digits-1) are returned unchanged. Negative
// numbers down to -2^(digits-1) are returned as their two's complement
// encoding, and encodings in [2^(digits-1), 2^digits) are returned as the
// negative number they represent. Anything else, including a digit count
// outside [2,32], converts to 0.
func Convert(number int, digits int) int {
	if digits < 2 || digits > 32 {
		return 0
	}

	limit := 1 << (digits - 1)
	full := 1 << digits

	switch {
	case number >= 0 && number < limit:
		return number
	case number < 0 && number >= -limit:
		return full + number
	case number >= limit && number < full:
		return number - full
	}

	return 0
}

// InRange returns true if number can be represented in digits bits, either
// as a signed value or as an unsigned encoding.
func InRange(number int, digits int) bool {
	if digits < 2 || digits > 32 {
		return false
	}
	limit := 1 << (digits - 1)
	return -limit <= number && number < limit*2
}

// Hex renders the low 16 bits of value as uppercase hex, zero padded to
// width digits.
func Hex(value int, width int) string {
	return fmt.Sprintf("%0*X", width, value&0xffff)
}

// Binary renders value as a zero padded binary string of width digits.
// Bits above width are dropped.
func Binary(value int, width int) string {
	mask := (1 << width) - 1
	return fmt.Sprintf("%0*b", width, value&mask)
}

// ParseHex parses an unsigned hex string and converts it from two's
// complement in the given number of bits.
func ParseHex(hex string, bits int) (value int, err error) {
	v64, err := strconv.ParseUint(strings.TrimSpace(hex), 16, 32)
	if err != nil {
		err = ErrParseHex(hex)
		return
	}

	value = Convert(int(v64), bits)
	return
}

// ParseBinary parses a string of '0' and '1' characters.
func ParseBinary(bin string) (value int, err error) {
	v64, err := strconv.ParseUint(bin, 2, 32)
	if err != nil {
		err = ErrParseBinary(bin)
		return
	}

	value = int(v64)
	return
}
