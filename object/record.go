package object

import (
	"fmt"
	"strings"
	"time"

	"github.com/ezrec/ffa/word"
)

// Flag is the relocation status of a text record.
type Flag int

//go:generate go tool stringer -linecomment -type=Flag
const (
	ABSOLUTE    = Flag(0) // A
	RELOCATABLE = Flag(1) // R
	MODIFY      = Flag(2) // M
)

const (
	DEFAULT_VERSION = 0x9001    // Default header version.
	DEFAULT_ASM_ID  = "FFA-ASM" // Default assembler identifier.
	MAX_ADJUSTMENTS = 0xf       // Most adjustments a word can carry.
)

// Record is a single line of an object file.
type Record interface {
	String() string
}

// hex4 renders a four digit record field.
func hex4(value int) string {
	return word.Hex(value, 4)
}

// Header is the first record of an object file.
type Header struct {
	Name         string    // Program name.
	Load         int       // Load address.
	Length       int       // Module length in words.
	Start        int       // Execution start address.
	Date         time.Time // Assembly date.
	Version      int       // Assembler version.
	AsmID        string    // Assembler identifier.
	TotalLinking int       // Count of linking records.
	TotalText    int       // Count of text records.
	TotalModify  int       // Count of modification records.
}

// TotalRecords returns the count of linking, text and modification records.
func (hdr Header) TotalRecords() int {
	return hdr.TotalLinking + hdr.TotalText + hdr.TotalModify
}

// DateString renders the assembly date as 'YYYYDDD,HH,MM,SS'.
func (hdr Header) DateString() string {
	date := hdr.Date
	return fmt.Sprintf("%04d%03d,%02d,%02d,%02d",
		date.Year(), date.YearDay(), date.Hour(), date.Minute(), date.Second())
}

func (hdr Header) String() string {
	asmID := hdr.AsmID
	if len(asmID) == 0 {
		asmID = DEFAULT_ASM_ID
	}

	return strings.Join([]string{
		"H",
		hdr.Name,
		hex4(hdr.Load),
		hex4(hdr.Length),
		hex4(hdr.Start),
		hdr.DateString(),
		hex4(hdr.Version),
		hex4(hdr.TotalRecords()),
		hex4(hdr.TotalLinking),
		hex4(hdr.TotalText),
		hex4(hdr.TotalModify),
		asmID,
		hdr.Name,
	}, ":")
}

// Linking exports an entry point of the program.
type Linking struct {
	Entry    string
	Location int
	Program  string
}

func (lnk Linking) String() string {
	return fmt.Sprintf("L:%v:%v:%v", lnk.Entry, hex4(lnk.Location), lnk.Program)
}

// Text is one word of the program.
type Text struct {
	Location    int
	Word        uint16
	Flag        Flag
	Adjustments int
	Program     string
}

func (txt Text) String() string {
	return fmt.Sprintf("T:%v:%v:%v:%X:%v",
		hex4(txt.Location), hex4(int(txt.Word)), txt.Flag, txt.Adjustments&MAX_ADJUSTMENTS, txt.Program)
}

// Adjustment adds or subtracts the address of a label at link time.
type Adjustment struct {
	Positive bool
	Label    string
}

func (adj Adjustment) String() string {
	sign := "-"
	if adj.Positive {
		sign = "+"
	}
	return sign + ":" + adj.Label
}

// Modification lists the link time adjustments of a word.
type Modification struct {
	Location    int
	Word        uint16
	Adjustments []Adjustment
	Program     string
}

// Add appends an adjustment.
func (mod *Modification) Add(positive bool, label string) {
	mod.Adjustments = append(mod.Adjustments, Adjustment{Positive: positive, Label: label})
}

// Len returns the count of adjustments.
func (mod *Modification) Len() int {
	return len(mod.Adjustments)
}

func (mod Modification) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "M:%v:%v:", hex4(mod.Location), hex4(int(mod.Word)))
	for _, adj := range mod.Adjustments {
		sb.WriteString(adj.String())
		sb.WriteByte(':')
	}
	sb.WriteString(mod.Program)

	return sb.String()
}

// End is the last record of an object file.
type End struct {
	Program string
}

func (end End) String() string {
	return "E:" + end.Program
}
