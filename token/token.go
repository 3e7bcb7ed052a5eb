// Package token splits assembler source lines into classified tokens.
package token

import (
	"iter"
	"regexp"
	"strings"
)

// Kind is the classification of a token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	LABEL_OR_COMMAND = Kind(0) // label
	LITERAL          = Kind(1) // literal
	COMMENT          = Kind(2) // comment
	NUMBER           = Kind(3) // number
	EXPRESSION       = Kind(4) // expression
	EMPTY            = Kind(5) // empty
	ERROR            = Kind(6) // error
)

// Token is a single piece of a source line.
type Token struct {
	Text string
	Kind Kind
}

// separators between tokens.
const separators = " ,\t"

var (
	reLabel      = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
	reNumber     = regexp.MustCompile(`^[0-9]+$`)
	reLiteral    = regexp.MustCompile(`^[XxBbIiCc]=`)
	reExpression = regexp.MustCompile(`^[A-Za-z0-9*+\-]*[*+\-][A-Za-z0-9*+\-]*$`)
)

// KindOf classifies a single piece of text.
func KindOf(text string) Kind {
	switch {
	case len(text) == 0:
		return EMPTY
	case text[0] == ':':
		return COMMENT
	case reLiteral.MatchString(text):
		return LITERAL
	case reNumber.MatchString(text):
		return NUMBER
	case reLabel.MatchString(text):
		return LABEL_OR_COMMAND
	case reExpression.MatchString(text):
		return EXPRESSION
	}

	return ERROR
}

// Next returns the next token of line, and the remainder of the line after
// the token and its separator.
func Next(line string) (tok Token, rest string) {
	line = strings.TrimLeft(line, " \t")

	if len(line) == 0 {
		tok = Token{Kind: EMPTY}
		return
	}

	// Comments run to the end of the line.
	if line[0] == ':' {
		tok = Token{Text: strings.TrimRight(line, " \t\r"), Kind: COMMENT}
		return
	}

	text := line
	if n := strings.IndexAny(line, separators); n >= 0 {
		text = line[:n]
		rest = line[n+1:]
	}

	tok = Token{Text: text, Kind: KindOf(text)}
	return
}

// All returns the tokens of a line, in order. A blank line yields a single
// EMPTY token.
func All(line string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			var tok Token
			tok, line = Next(line)
			if !yield(tok) {
				return
			}
			if len(strings.TrimLeft(line, " \t")) == 0 {
				return
			}
		}
	}
}
