package catalog

import (
	"bufio"
	_ "embed"
	"io"
	"log"
	"strings"
)

// Directive is an assembler directive.
type Directive int

//go:generate go tool stringer -linecomment -type=Directive
const (
	START = Directive(0)  // START
	END   = Directive(1)  // END
	EQU   = Directive(2)  // EQU
	EQUE  = Directive(3)  // EQUE
	ADC   = Directive(4)  // ADC
	ADCE  = Directive(5)  // ADCE
	ENTRY = Directive(6)  // ENTRY
	EXTRN = Directive(7)  // EXTRN
	RESET = Directive(8)  // RESET
	DAT   = Directive(9)  // DAT
	NOP   = Directive(10) // NOP
)

// AllDirectives lists every directive known to the assembler.
var AllDirectives = []Directive{START, END, EQU, EQUE, ADC, ADCE, ENTRY, EXTRN, RESET, DAT, NOP}

// ParseDirective looks up a directive by name, ignoring case.
func ParseDirective(name string) (dir Directive, ok bool) {
	name = strings.ToUpper(name)
	for _, dir = range AllDirectives {
		if dir.String() == name {
			ok = true
			return
		}
	}
	return
}

//go:embed directives.txt
var DefaultDirectiveText string

// Directives is the set of directives enabled for the assembler.
type Directives struct {
	set map[string]Directive
}

// DefaultDirectives returns the embedded directive list.
func DefaultDirectives() *Directives {
	dirs, err := ParseDirectives(strings.NewReader(DefaultDirectiveText))
	if err != nil {
		log.Fatalf("catalog: embedded directives: %v", err)
	}
	return dirs
}

// ParseDirectives reads one directive name per line. Blank lines are
// ignored.
func ParseDirectives(input io.Reader) (dirs *Directives, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrLine{LineNo: lineno, Line: line, Err: err}
			dirs = nil
		}
	}()

	dirs = &Directives{set: make(map[string]Directive)}

	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if len(words) != 1 {
			err = ErrDirectiveSyntax
			return
		}

		dir, ok := ParseDirective(words[0])
		if !ok {
			err = ErrDirectiveUnknown(words[0])
			return
		}
		dirs.set[dir.String()] = dir
	}

	err = scanner.Err()
	return
}

// Contains returns true if the name is an enabled directive.
func (dirs *Directives) Contains(name string) bool {
	_, ok := dirs.Lookup(name)
	return ok
}

// Lookup returns the directive of a name, ignoring case.
func (dirs *Directives) Lookup(name string) (dir Directive, ok bool) {
	dir, ok = dirs.set[strings.ToUpper(name)]
	return
}

// Len returns the number of enabled directives.
func (dirs *Directives) Len() int {
	return len(dirs.set)
}
