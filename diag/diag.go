package diag

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// Category is the severity of a diagnostic.
type Category int

//go:generate go tool stringer -linecomment -type=Category
const (
	FATAL   = Category(0) // Fatal
	SERIOUS = Category(1) // Serious
	WARNING = Category(2) // Warning
)

// prefixes are the catalog text prefixes of each category.
var prefixes = map[Category]string{
	FATAL:   "EF",
	SERIOUS: "ES",
	WARNING: "EW",
}

// Prefix returns the catalog prefix of the category, ie 'EF'.
func (cat Category) Prefix() string {
	return prefixes[cat]
}

// Key identifies a diagnostic. A Key is also an error, so that operations
// can report a diagnostic without knowing its message.
type Key struct {
	Category Category
	Code     int
}

func (key Key) String() string {
	return fmt.Sprintf("%v.%02d", key.Category.Prefix(), key.Code)
}

func (key Key) Error() string {
	return key.String()
}

// Error is a diagnostic with its message.
type Error struct {
	Category Category
	Code     int
	Message  string
}

// Key returns the key of the diagnostic.
func (err Error) Key() Key {
	return Key{Category: err.Category, Code: err.Code}
}

func (err Error) Error() string {
	return fmt.Sprintf("[%v][%d] %v", err.Category, err.Code, err.Message)
}

//go:embed errors.txt
var DefaultErrorText string

// Catalog maps diagnostic keys to messages.
type Catalog struct {
	messages map[Key]string
}

// DefaultCatalog returns the embedded diagnostic catalog.
func DefaultCatalog() *Catalog {
	cat, err := ParseCatalog(strings.NewReader(DefaultErrorText))
	if err != nil {
		log.Fatalf("diag: embedded catalog: %v", err)
	}
	return cat
}

// ParseKey parses a 'EF.01' style key.
func ParseKey(text string) (key Key, ok bool) {
	prefix, code, found := strings.Cut(text, ".")
	if !found {
		return
	}

	for cat, pre := range prefixes {
		if pre == prefix {
			key.Category = cat
			ok = true
			break
		}
	}
	if !ok {
		return
	}

	key.Code, ok = parseCode(code)
	return
}

func parseCode(code string) (value int, ok bool) {
	value, err := strconv.Atoi(code)
	ok = err == nil && value >= 0
	return
}

// ParseCatalog reads 'EF.NN message' lines. Blank lines are skipped, and
// malformed lines are logged and skipped.
func ParseCatalog(input io.Reader) (cat *Catalog, err error) {
	scanner := bufio.NewScanner(input)

	cat = &Catalog{messages: make(map[Key]string)}

	lineno := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineno++
		if len(line) == 0 {
			continue
		}

		text, message, _ := strings.Cut(line, " ")
		key, ok := ParseKey(text)
		if !ok {
			log.Printf("diag: line %d: improper error code '%v', skipped", lineno, text)
			continue
		}

		cat.messages[key] = strings.TrimSpace(message)
	}

	err = scanner.Err()
	if err != nil {
		cat = nil
	}

	return
}

// Len returns the number of messages in the catalog.
func (cat *Catalog) Len() int {
	return len(cat.messages)
}

// Get returns the diagnostic of a key.
func (cat *Catalog) Get(key Key) (diag Error, err error) {
	message, ok := cat.messages[key]
	if !ok {
		err = ErrUnknownError(key)
		return
	}

	diag = Error{Category: key.Category, Code: key.Code, Message: message}
	return
}

// Lookup returns the diagnostic of a key, with a placeholder message if the
// catalog has none.
func (cat *Catalog) Lookup(key Key) Error {
	diag, err := cat.Get(key)
	if err != nil {
		diag = Error{Category: key.Category, Code: key.Code, Message: err.Error()}
	}
	return diag
}
