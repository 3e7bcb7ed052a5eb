package object

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ezrec/ffa/diag"
	"github.com/ezrec/ffa/translate"
	"github.com/ezrec/ffa/word"
)

var f = translate.From

const (
	REPORT_HEADER   = "LOC   OBJCODE   FLAG   LINE   SOURCE"
	REPORT_INDENT   = 30 // Width of the columns before SOURCE.
	REPORT_MAX_ERRS = 3  // Errors shown per row.
)

// Row is one source line of the report.
type Row struct {
	LC        int          // Location counter.
	Addressed bool         // Set if the line occupies a word.
	Word      uint16       // Object code of the word.
	Flag      Flag         // Relocation status of the word.
	LineNo    int          // Source line number.
	Source    string       // Source text.
	Errors    []diag.Error // Diagnostics of the line.
}

// Report is the human readable listing of an assembly.
type Report struct {
	Rows  []Row
	Width int // If positive, the SOURCE column is clipped to fit.
}

func (rpt *Report) source(text string) string {
	if rpt.Width <= REPORT_INDENT {
		return text
	}

	room := rpt.Width - REPORT_INDENT
	if utf8.RuneCountInString(text) > room {
		text = string([]rune(text)[:room])
	}
	return text
}

func (rpt *Report) String() string {
	var sb strings.Builder

	sb.WriteString(f(REPORT_HEADER))
	sb.WriteByte('\n')

	for _, row := range rpt.Rows {
		var lc, code, flag string
		if row.Addressed {
			lc = word.Hex(row.LC, 4)
			code = word.Hex(int(row.Word), 4)
			flag = row.Flag.String()
		}

		fmt.Fprintf(&sb, "%-6s%-10s%-7s%-7d%s\n", lc, code, flag, row.LineNo, rpt.source(row.Source))

		errs := row.Errors
		if len(errs) > REPORT_MAX_ERRS {
			errs = errs[:REPORT_MAX_ERRS]
		}
		for _, err := range errs {
			sb.WriteString(f(" --- ERROR: %v", err.Error()))
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// WriteTo writes the report.
func (rpt *Report) WriteTo(w io.Writer) (n int64, err error) {
	written, err := io.WriteString(w, rpt.String())
	n = int64(written)
	return
}
