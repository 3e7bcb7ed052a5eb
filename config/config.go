// Package config loads assembler profiles.
//
// A profile is a Starlark script. It is run with the default catalog texts
// predeclared as default_opcodes, default_directives and default_errors,
// and may assign any of:
//
//	opcodes      = "..."   # opcode table, 'GROUP FUNCTION BITCODE' lines
//	directives   = "..."   # directive names, one per line
//	errors       = "..."   # diagnostic messages, 'EF.NN message' lines
//	version      = 0x9001  # object header version
//	assembler_id = "..."   # object header assembler id
//
// For example, to drop the EQUE directive:
//
//	directives = default_directives.replace("EQUE\n", "")
package config

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ffa/asm"
	"github.com/ezrec/ffa/catalog"
	"github.com/ezrec/ffa/diag"
	"github.com/ezrec/ffa/object"
)

// Profile is the configurable data of an assembler.
type Profile struct {
	Opcodes     string // Opcode table text.
	Directives  string // Directive list text.
	Errors      string // Diagnostic catalog text.
	Version     int    // Object header version.
	AssemblerID string // Object header assembler id.
}

// Default returns the built in profile.
func Default() *Profile {
	return &Profile{
		Opcodes:     catalog.DefaultOpcodeText,
		Directives:  catalog.DefaultDirectiveText,
		Errors:      diag.DefaultErrorText,
		Version:     object.DEFAULT_VERSION,
		AssemblerID: object.DEFAULT_ASM_ID,
	}
}

// Load runs a profile script. src is as for starlark.ExecFile: nil to read
// filename, or a string, []byte or io.Reader.
func Load(filename string, src any) (prof *Profile, err error) {
	prof = Default()

	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"default_opcodes":    starlark.String(prof.Opcodes),
		"default_directives": starlark.String(prof.Directives),
		"default_errors":     starlark.String(prof.Errors),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		prof = nil
		return
	}

	for name, field := range map[string]*string{
		"opcodes":      &prof.Opcodes,
		"directives":   &prof.Directives,
		"errors":       &prof.Errors,
		"assembler_id": &prof.AssemblerID,
	} {
		value, ok := dict[name]
		if !ok {
			continue
		}
		str, ok := starlark.AsString(value)
		if !ok {
			err = ErrProfileType{Name: name, Want: "string"}
			prof = nil
			return
		}
		*field = str
	}

	if value, ok := dict["version"]; ok {
		var version int
		version, err = starlark.AsInt32(value)
		if err != nil || version < 0 || version > 0xffff {
			err = ErrProfileType{Name: "version", Want: "16-bit integer"}
			prof = nil
			return
		}
		prof.Version = version
	}

	return
}

// Assembler builds an assembler from the profile catalogs.
func (prof *Profile) Assembler() (assembler *asm.Assembler, err error) {
	ops, err := catalog.ParseOpcodes(strings.NewReader(prof.Opcodes))
	if err != nil {
		err = ErrProfileCatalog{Name: "opcodes", Err: err}
		return
	}

	dirs, err := catalog.ParseDirectives(strings.NewReader(prof.Directives))
	if err != nil {
		err = ErrProfileCatalog{Name: "directives", Err: err}
		return
	}

	errs, err := diag.ParseCatalog(strings.NewReader(prof.Errors))
	if err != nil {
		err = ErrProfileCatalog{Name: "errors", Err: err}
		return
	}

	assembler = &asm.Assembler{
		Opcodes:    ops,
		Directives: dirs,
		Errors:     errs,
		Version:    prof.Version,
		AsmID:      prof.AssemblerID,
	}
	return
}
