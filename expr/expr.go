// Package expr evaluates the three expression grammars of the assembler.
//
// Operand expressions appear inline in instruction operands and are always
// the location counter '*' combined with one other term. EQU expressions
// compute the value of an equated symbol. ADC expressions compute address
// constants, and may refer to external symbols. All three are built from
// terms separated by '+' and '-' operators, reduced left to right.
package expr

import (
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/ffa/diag"
	"github.com/ezrec/ffa/object"
	"github.com/ezrec/ffa/symbol"
	"github.com/ezrec/ffa/token"
	"github.com/ezrec/ffa/word"
)

const (
	STAR      = "*"  // Location counter term.
	OPERATORS = "+-" // Expression operators.
)

// Evaluator resolves expressions against a symbol table.
type Evaluator struct {
	Verbose bool          // If set, log each evaluation.
	Symbols *symbol.Table // Symbols of the program.
	Program string        // Program name, used for relocation adjustments.
}

// Split separates an expression into operands and operators. Empty operands
// are dropped. No more than maxOperators operators are allowed, and there
// must be exactly one less operator than operands.
func Split(expression string, maxOperators int) (operands []string, operators []byte, err error) {
	isOperator := func(r rune) bool {
		return strings.ContainsRune(OPERATORS, r)
	}

	operands = strings.FieldsFunc(expression, isOperator)
	if len(operands)-1 > maxOperators {
		err = diag.TooManyOperators
		return
	}

	for n := range len(expression) {
		if strings.IndexByte(OPERATORS, expression[n]) >= 0 {
			operators = append(operators, expression[n])
		}
	}

	if len(operators) != len(operands)-1 {
		err = diag.OperatorCount
		return
	}

	return
}

// Reduce folds values left to right with operators.
func Reduce(values []int, operators []byte) (result int) {
	var vals Stack[int]
	var ops Stack[byte]

	for n := len(values) - 1; n >= 0; n-- {
		vals.Push(values[n])
	}
	for n := len(operators) - 1; n >= 0; n-- {
		ops.Push(operators[n])
	}

	for !ops.Empty() && vals.Len() > 1 {
		op, _ := ops.Pop()
		op1, _ := vals.Pop()
		op2, _ := vals.Pop()
		switch op {
		case '+':
			op1 += op2
		case '-':
			op1 -= op2
		}
		vals.Push(op1)
	}

	result, _ = vals.Pop()
	return
}

// number parses a decimal term.
func number(term string) (value int, ok bool) {
	if token.KindOf(term) != token.NUMBER {
		return
	}
	value, err := strconv.Atoi(term)
	ok = err == nil
	return
}

// local returns true if the symbol is an address within this program.
func local(sym symbol.Symbol) bool {
	switch sym.Usage {
	case symbol.LABEL:
		return true
	case symbol.ENTRY:
		return sym.Located()
	}
	return false
}

// Operand evaluates an '*+term' or '*-term' operand expression at location
// counter lc. On success the relocation adjustments are appended to mod.
func (ev *Evaluator) Operand(expression string, lc int, mod *object.Modification) (value int, err error) {
	defer func() {
		if ev.Verbose {
			log.Printf("expr: operand '%v' at %d: %d %v", expression, lc, value, err)
		}
	}()

	if expression == STAR {
		value = lc
		mod.Add(true, ev.Program)
		return
	}

	_, _, err = Split(expression, 1)
	if err != nil {
		return
	}

	if !strings.HasPrefix(expression, STAR) {
		err = diag.NoStar
		return
	}

	if len(expression) > 1 && expression[1] == '*' {
		err = diag.StarPosition
		return
	}

	if len(expression) < 2 || strings.IndexByte(OPERATORS, expression[1]) < 0 {
		err = diag.BadOperator
		return
	}

	op := expression[1]
	term := expression[2:]
	adjustments := []object.Adjustment{{Positive: true, Label: ev.Program}}

	var operand int
	switch token.KindOf(term) {
	case token.NUMBER:
		var ok bool
		operand, ok = number(term)
		if !ok || operand > word.MAX_ADDR {
			err = diag.ExprRange
			return
		}
	case token.LABEL_OR_COMMAND:
		if len(term) < 2 || len(term) > 32 {
			err = diag.LabelLength
			return
		}
		sym, serr := ev.Symbols.Get(term)
		if serr != nil {
			err = diag.Undefined
			return
		}
		switch {
		case sym.Usage == symbol.EQUATED:
			operand = sym.Value
		case local(sym):
			operand = sym.LC
			adjustments = append(adjustments, object.Adjustment{Positive: op == '+', Label: ev.Program})
		default:
			err = diag.OperandUsage
			return
		}
	default:
		if term == STAR {
			err = diag.StarPosition
			return
		}
		err = diag.ExprRange
		return
	}

	value = Reduce([]int{lc, operand}, []byte{op})
	if value < 0 || value > word.MAX_ADDR {
		err = diag.ExprRange
		value = 0
		return
	}

	mod.Adjustments = append(mod.Adjustments, adjustments...)
	return
}

// Equ evaluates an EQU expression at location counter lc, returning the
// value and the count of relocatable contributions to it.
func (ev *Evaluator) Equ(expression string, lc int, maxOperators int) (value int, relocations int, err error) {
	defer func() {
		if ev.Verbose {
			log.Printf("expr: equ '%v' at %d: %d (%d) %v", expression, lc, value, relocations, err)
		}
	}()

	if expression == STAR {
		value = lc
		relocations = 1
		return
	}

	operands, operators, err := Split(expression, maxOperators)
	if err != nil {
		return
	}

	values := make([]int, len(operands))
	for n, term := range operands {
		if term == STAR {
			if n != 0 {
				err = diag.StarPosition
				return
			}
			values[n] = lc
			relocations++
			continue
		}

		if sym, serr := ev.Symbols.Get(term); serr == nil {
			switch {
			case sym.Usage == symbol.EQUATED:
				values[n] = sym.Value
				relocations += sym.Relocations
			case local(sym):
				values[n] = sym.LC
				relocations++
			default:
				err = diag.EquUsage
				return
			}
			continue
		}

		var ok bool
		values[n], ok = number(term)
		if !ok {
			err = diag.Undefined
			return
		}
	}

	value = Reduce(values, operators)
	if value < 0 || value > word.MAX_ADDR {
		err = diag.ExprRange
		value = 0
		relocations = 0
		return
	}

	return
}

// AdcResult is an evaluated address constant.
type AdcResult struct {
	Value       int  // Value, negative only when external symbols are present.
	Relocations int  // Count of adjustments.
	Literal     bool // Set if every term was a number.
	Absolute    bool // Set if the expression was marked absolute with a leading '+'.
}

// Adc evaluates an ADC expression at location counter lc. Unless the
// expression is absolute or literal, the adjustments are appended to mod.
func (ev *Evaluator) Adc(expression string, lc int, maxOperators int, mod *object.Modification) (result AdcResult, err error) {
	defer func() {
		if err != nil {
			result = AdcResult{}
		}
		if ev.Verbose {
			log.Printf("expr: adc '%v' at %d: %+v %v", expression, lc, result, err)
		}
	}()

	if strings.HasPrefix(expression, "+") {
		result.Absolute = true
		expression = expression[1:]
	}

	var adjustments []object.Adjustment
	var values []int
	var operators []byte
	external := false
	result.Literal = true

	if expression == STAR {
		values = []int{lc}
		adjustments = append(adjustments, object.Adjustment{Positive: true, Label: ev.Program})
		result.Literal = false
	} else {
		var operands []string
		operands, operators, err = Split(expression, maxOperators)
		if err != nil {
			return
		}

		values = make([]int, len(operands))
		for n, term := range operands {
			positive := n == 0 || operators[n-1] == '+'

			if term == STAR {
				if n != 0 {
					err = diag.StarPosition
					return
				}
				values[n] = lc
				adjustments = append(adjustments, object.Adjustment{Positive: true, Label: ev.Program})
				result.Literal = false
				continue
			}

			if sym, serr := ev.Symbols.Get(term); serr == nil {
				switch {
				case local(sym):
					values[n] = sym.LC
					adjustments = append(adjustments, object.Adjustment{Positive: positive, Label: ev.Program})
					result.Literal = false
				case sym.Usage == symbol.EXTERNAL:
					values[n] = 0
					adjustments = append(adjustments, object.Adjustment{Positive: positive, Label: sym.Label})
					result.Literal = false
					external = true
				case sym.Usage == symbol.EQUATED:
					values[n] = sym.Value
					for range sym.Relocations {
						adjustments = append(adjustments, object.Adjustment{Positive: positive, Label: ev.Program})
					}
					if sym.Relocations > 0 {
						result.Literal = false
					}
				default:
					err = diag.AdcUsage
					return
				}
				continue
			}

			var ok bool
			values[n], ok = number(term)
			if !ok {
				err = diag.Undefined
				return
			}
		}
	}

	value := Reduce(values, operators)

	low := 0
	if external {
		low = -word.MAX_ADDR
	}
	if value < low || value > word.MAX_ADDR {
		err = diag.ExprRange
		return
	}

	result.Value = value
	if result.Literal || result.Absolute {
		return
	}

	result.Relocations = len(adjustments)
	mod.Adjustments = append(mod.Adjustments, adjustments...)
	return
}
