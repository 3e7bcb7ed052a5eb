package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales("en-US")
	assert.NotNil(printer)
	assert.Equal("line 12 'PROG' bad", From("line %d '%v' %v", 12, "PROG", "bad"))
	assert.Equal("label XYZ missing", From("label %v missing", "XYZ"))
}

func TestSetLocales_Default(t *testing.T) {
	assert := assert.New(t)

	SetLocales()
	before := Language()
	SetLocales("en-US")
	assert.Equal(before, Language())
}
