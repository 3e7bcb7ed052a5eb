package expr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ffa/diag"
	"github.com/ezrec/ffa/object"
	"github.com/ezrec/ffa/symbol"
)

func testEvaluator(t *testing.T) *Evaluator {
	symbols := symbol.NewTable()

	for _, sym := range []symbol.Symbol{
		{Label: "PROG", LC: 0, Usage: symbol.PROGRAM_NAME},
		{Label: "Loop", LC: 5, Usage: symbol.LABEL},
		{Label: "Ext", LC: symbol.NoLocation, Usage: symbol.EXTERNAL},
		{Label: "Five", LC: 1, Usage: symbol.EQUATED, Value: 5},
		{Label: "Here", LC: 2, Usage: symbol.EQUATED, Value: 10, Relocations: 1},
		{Label: "Twice", LC: 3, Usage: symbol.EQUATED, Value: 20, Relocations: 2},
		{Label: "Ent", LC: 7, Usage: symbol.ENTRY},
		{Label: "Lost", LC: symbol.NoLocation, Usage: symbol.ENTRY},
	} {
		if err := symbols.Add(sym); err != nil {
			t.Fatal(err)
		}
	}

	return &Evaluator{Symbols: symbols, Program: "PROG"}
}

var (
	plusProg  = object.Adjustment{Positive: true, Label: "PROG"}
	minusProg = object.Adjustment{Positive: false, Label: "PROG"}
	plusExt   = object.Adjustment{Positive: true, Label: "Ext"}
	minusExt  = object.Adjustment{Positive: false, Label: "Ext"}
)

func TestSplit(t *testing.T) {
	assert := assert.New(t)

	operands, operators, err := Split("A+B-C", 2)
	assert.NoError(err)
	assert.Equal([]string{"A", "B", "C"}, operands)
	assert.Equal([]byte{'+', '-'}, operators)

	_, _, err = Split("A+B-C", 1)
	assert.Equal(diag.TooManyOperators, err)

	_, _, err = Split("A++B", 3)
	assert.Equal(diag.OperatorCount, err)

	operands, operators, err = Split("Label", 1)
	assert.NoError(err)
	assert.Equal([]string{"Label"}, operands)
	assert.Empty(operators)
}

func TestReduce(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(9, Reduce([]int{10, 3, 2}, []byte{'-', '+'}))
	assert.Equal(5, Reduce([]int{10, 3, 2}, []byte{'-', '-'}))
	assert.Equal(7, Reduce([]int{7}, nil))
	assert.Equal(3, Reduce([]int{3}, []byte{'+'}))
}

func TestOperand(t *testing.T) {
	assert := assert.New(t)

	ev := testEvaluator(t)

	table := [](struct {
		expression  string
		lc          int
		value       int
		adjustments []object.Adjustment
		err         error
	}){
		{"*", 4, 4, []object.Adjustment{plusProg}, nil},
		{"*+5", 4, 9, []object.Adjustment{plusProg}, nil},
		{"*+Loop", 4, 9, []object.Adjustment{plusProg, plusProg}, nil},
		{"*-Loop", 10, 5, []object.Adjustment{plusProg, minusProg}, nil},
		{"*+Five", 4, 9, []object.Adjustment{plusProg}, nil},
		{"*+Ent", 1, 8, []object.Adjustment{plusProg, plusProg}, nil},
		{"Loop+1", 4, 0, nil, diag.NoStar},
		{"*+*", 4, 0, nil, diag.StarPosition},
		{"**", 4, 0, nil, diag.StarPosition},
		{"**+1", 4, 0, nil, diag.StarPosition},
		{"*+Nope", 4, 0, nil, diag.Undefined},
		{"*+Ext", 4, 0, nil, diag.OperandUsage},
		{"*+Lost", 4, 0, nil, diag.OperandUsage},
		{"*-5", 2, 0, nil, diag.ExprRange},
		{"*+1024", 0, 0, nil, diag.ExprRange},
		{"*+1020", 4, 0, nil, diag.ExprRange},
		{"*+1+2", 4, 0, nil, diag.TooManyOperators},
		{"*A", 4, 0, nil, diag.BadOperator},
		{"*+P", 4, 0, nil, diag.LabelLength},
	}

	for _, entry := range table {
		mod := &object.Modification{}
		value, err := ev.Operand(entry.expression, entry.lc, mod)
		assert.Equal(entry.err, err, entry.expression)
		assert.Equal(entry.value, value, entry.expression)
		if diff := cmp.Diff(entry.adjustments, mod.Adjustments); diff != "" {
			t.Errorf("%v: adjustments (-want +got):\n%s", entry.expression, diff)
		}
	}
}

func TestEqu(t *testing.T) {
	assert := assert.New(t)

	ev := testEvaluator(t)

	table := [](struct {
		expression   string
		lc           int
		maxOperators int
		value        int
		relocations  int
		err          error
	}){
		{"*+5", 10, 1, 15, 1, nil},
		{"*", 3, 1, 3, 1, nil},
		{"*+5+Loop", 10, 1, 0, 0, diag.TooManyOperators},
		{"*+5+Loop", 10, 3, 20, 2, nil},
		{"Here+Twice", 0, 1, 30, 3, nil},
		{"Five-2", 0, 1, 3, 0, nil},
		{"Ent+1", 0, 1, 8, 1, nil},
		{"5+*", 0, 1, 0, 0, diag.StarPosition},
		{"Ext+1", 0, 1, 0, 0, diag.EquUsage},
		{"PROG", 0, 1, 0, 0, diag.EquUsage},
		{"Nope", 0, 1, 0, 0, diag.Undefined},
		{"1000+100", 0, 1, 0, 0, diag.ExprRange},
		{"2-5", 0, 1, 0, 0, diag.ExprRange},
		{"1023", 0, 1, 1023, 0, nil},
	}

	for _, entry := range table {
		value, relocations, err := ev.Equ(entry.expression, entry.lc, entry.maxOperators)
		assert.Equal(entry.err, err, entry.expression)
		assert.Equal(entry.value, value, entry.expression)
		assert.Equal(entry.relocations, relocations, entry.expression)
	}
}

func TestAdc(t *testing.T) {
	assert := assert.New(t)

	ev := testEvaluator(t)

	table := [](struct {
		expression  string
		lc          int
		result      AdcResult
		adjustments []object.Adjustment
		err         error
	}){
		{"Ext+5", 0, AdcResult{Value: 5, Relocations: 1}, []object.Adjustment{plusExt}, nil},
		{"Loop-Ext", 0, AdcResult{Value: 5, Relocations: 2}, []object.Adjustment{plusProg, minusExt}, nil},
		{"5+10", 0, AdcResult{Value: 15, Literal: true}, nil, nil},
		{"Five+1", 0, AdcResult{Value: 6, Literal: true}, nil, nil},
		{"Five+Here", 0, AdcResult{Value: 15, Relocations: 1}, []object.Adjustment{plusProg}, nil},
		{"+Loop+5", 0, AdcResult{Value: 10, Absolute: true}, nil, nil},
		{"*", 4, AdcResult{Value: 4, Relocations: 1}, []object.Adjustment{plusProg}, nil},
		{"*+1", 4, AdcResult{Value: 5, Relocations: 1}, []object.Adjustment{plusProg}, nil},
		{"Ext-100", 0, AdcResult{Value: -100, Relocations: 1}, []object.Adjustment{plusExt}, nil},
		{"Loop-100", 0, AdcResult{}, nil, diag.ExprRange},
		{"PROG+1", 0, AdcResult{}, nil, diag.AdcUsage},
		{"Nope", 0, AdcResult{}, nil, diag.Undefined},
		{"1+*", 0, AdcResult{}, nil, diag.StarPosition},
		{"1+2+3", 0, AdcResult{}, nil, diag.TooManyOperators},
	}

	for _, entry := range table {
		mod := &object.Modification{}
		result, err := ev.Adc(entry.expression, entry.lc, 1, mod)
		assert.Equal(entry.err, err, entry.expression)
		assert.Equal(entry.result, result, entry.expression)
		if diff := cmp.Diff(entry.adjustments, mod.Adjustments); diff != "" {
			t.Errorf("%v: adjustments (-want +got):\n%s", entry.expression, diff)
		}
	}
}
