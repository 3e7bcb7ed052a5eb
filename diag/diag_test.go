package diag

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogDefault(t *testing.T) {
	assert := assert.New(t)

	cat := DefaultCatalog()

	keys := []Key{
		NoStart, AfterEnd, TooLarge, EndName, StartOperand, StartLabel,
		LabelSyntax, LabelLength, BadFunction, LiteralRange, BadCategory,
		ResetBackward, OperandKind, ResetOperand, DumpOperand, HaltRange,
		ExtrnDefined, DatOperand, Malformed, OperandRequired, SoperRange,
		StarPosition, Undefined, EquOperand, TooManyOperators, EquLabel,
		OperatorCount, ResetLabel, EquRange, ExprRange, OperandUsage,
		BadOperator, NoStar, EquUsage, AdcUsage, UndefinedOperand,
		EntryUsage, EntryUndefined, OutsideModule, SecondStart, EquForward,
		Redefined, Trailing, NoOperand, LabelIgnored, NoEnd, Truncated,
	}

	for _, key := range keys {
		diag, err := cat.Get(key)
		assert.NoError(err, key.String())
		assert.Equal(key, diag.Key())
		assert.NotEmpty(diag.Message, key.String())
	}

	assert.Equal(len(keys), cat.Len())
}

func TestCatalogParse(t *testing.T) {
	assert := assert.New(t)

	text := []string{
		"EF.01 First message.",
		"",
		"   ",
		"ES.17 SOPER operand must be a number between 0 and 255.",
		"EX.01 Bad category",
		"ES.x1 Bad code",
		"garbage",
		"EW.02 Trailing",
	}

	cat, err := ParseCatalog(strings.NewReader(strings.Join(text, "\n")))
	assert.NoError(err)
	assert.Equal(3, cat.Len())

	diag, err := cat.Get(Key{SERIOUS, 17})
	assert.NoError(err)
	assert.Equal("[Serious][17] SOPER operand must be a number between 0 and 255.", diag.Error())

	diag, err = cat.Get(Key{FATAL, 1})
	assert.NoError(err)
	assert.Equal("[Fatal][1] First message.", diag.Error())

	diag, err = cat.Get(Key{WARNING, 2})
	assert.NoError(err)
	assert.Equal(WARNING, diag.Category)
	assert.Equal("Trailing", diag.Message)

	_, err = cat.Get(Key{SERIOUS, 99})
	assert.True(errors.Is(err, ErrUnknownError(Key{SERIOUS, 99})))

	diag = cat.Lookup(Key{SERIOUS, 99})
	assert.Equal(SERIOUS, diag.Category)
	assert.Equal(99, diag.Code)
	assert.NotEmpty(diag.Message)
}

func TestKey(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ES.22", TooManyOperators.String())
	assert.Equal("EF.01", NoStart.Error())
	assert.Equal("EW.08", Truncated.String())

	var err error = SoperRange
	var key Key
	assert.True(errors.As(err, &key))
	assert.Equal(SoperRange, key)

	table := [](struct {
		text string
		key  Key
		ok   bool
	}){
		{"EF.01", Key{FATAL, 1}, true},
		{"ES.42", Key{SERIOUS, 42}, true},
		{"EW.8", Key{WARNING, 8}, true},
		{"EQ.01", Key{}, false},
		{"ES01", Key{}, false},
		{"ES.-1", Key{}, false},
	}

	for _, entry := range table {
		key, ok := ParseKey(entry.text)
		assert.Equal(entry.ok, ok, entry.text)
		if entry.ok {
			assert.Equal(entry.key, key, entry.text)
		}
	}
}
