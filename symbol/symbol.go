// Package symbol is the per-run symbol table of the assembler.
package symbol

import (
	"maps"
	"slices"
)

// Usage is how a symbol was introduced to the program.
type Usage int

//go:generate go tool stringer -linecomment -type=Usage
const (
	LABEL        = Usage(0) // label
	ENTRY        = Usage(1) // entry
	PROGRAM_NAME = Usage(2) // program name
	EXTERNAL     = Usage(3) // external
	EQUATED      = Usage(4) // equated
)

// NoLocation is the location counter of a symbol without an address.
const NoLocation = -1

// Symbol is a symbol table entry.
type Symbol struct {
	Label       string // Name of the symbol.
	LC          int    // Location counter, or NoLocation.
	Usage       Usage  // How the symbol was introduced.
	Value       int    // Value of an equated symbol.
	Relocations int    // Relocatable contributions to an equated value.
}

// Located returns true if the symbol has an address.
func (sym Symbol) Located() bool {
	return sym.LC != NoLocation
}

// Table maps labels to symbols. Labels are case sensitive.
type Table struct {
	symbols map[string]Symbol
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{symbols: make(map[string]Symbol)}
}

// Add inserts a symbol. The table is unchanged if the label is present.
func (tab *Table) Add(sym Symbol) (err error) {
	if tab.symbols == nil {
		tab.symbols = make(map[string]Symbol)
	}

	if _, ok := tab.symbols[sym.Label]; ok {
		err = ErrDuplicate(sym.Label)
		return
	}

	tab.symbols[sym.Label] = sym
	return
}

// Define inserts a symbol built from its parts.
func (tab *Table) Define(label string, lc int, usage Usage, value int) (err error) {
	return tab.Add(Symbol{Label: label, LC: lc, Usage: usage, Value: value})
}

// Get returns the symbol of a label.
func (tab *Table) Get(label string) (sym Symbol, err error) {
	sym, ok := tab.symbols[label]
	if !ok {
		err = ErrMissing(label)
	}
	return
}

// Replace overwrites an existing symbol.
func (tab *Table) Replace(sym Symbol) (err error) {
	if _, ok := tab.symbols[sym.Label]; !ok {
		err = ErrMissing(sym.Label)
		return
	}

	tab.symbols[sym.Label] = sym
	return
}

// Remove deletes a symbol, and returns what was removed.
func (tab *Table) Remove(label string) (sym Symbol, err error) {
	sym, err = tab.Get(label)
	if err != nil {
		return
	}

	delete(tab.symbols, label)
	return
}

// Contains returns true if the label is in the table.
func (tab *Table) Contains(label string) bool {
	_, ok := tab.symbols[label]
	return ok
}

// Sorted returns all labels in lexicographic order.
func (tab *Table) Sorted() []string {
	return slices.Sorted(maps.Keys(tab.symbols))
}

// Len returns the number of symbols.
func (tab *Table) Len() int {
	return len(tab.symbols)
}
