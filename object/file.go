package object

import (
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/ffa/internal"
)

// File is an assembled object file.
type File struct {
	Header  Header
	Linking []Linking
	Text    []Text
	Modify  []Modification
	End     End
}

func asRecord[T Record](value T) Record {
	return value
}

// Records returns the records of the file, in output order.
func (obj *File) Records() iter.Seq[Record] {
	return internal.IterSeqConcat(
		internal.IterSeqOne[Record](obj.Header),
		internal.IterSeqMap(slices.Values(obj.Linking), asRecord[Linking]),
		internal.IterSeqMap(slices.Values(obj.Text), asRecord[Text]),
		internal.IterSeqMap(slices.Values(obj.Modify), asRecord[Modification]),
		internal.IterSeqOne[Record](obj.End),
	)
}

// WriteTo writes the records, one per line.
func (obj *File) WriteTo(w io.Writer) (n int64, err error) {
	written, err := io.WriteString(w, obj.String())
	n = int64(written)
	return
}

func (obj *File) String() string {
	var sb strings.Builder
	for rec := range obj.Records() {
		sb.WriteString(rec.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
