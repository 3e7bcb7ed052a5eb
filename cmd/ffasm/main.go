// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/ezrec/ffa/config"
	"github.com/ezrec/ffa/translate"
)

// create opens an output file, with "-" as stdout.
func create(path string) (w io.WriteCloser, isTerm bool, err error) {
	if path == "-" {
		return nopCloser{os.Stdout}, term.IsTerminal(int(os.Stdout.Fd())), nil
	}

	w, err = os.Create(path)
	return
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func main() {
	var object string
	var listing string
	var profile string
	var verbose bool
	var lang string

	flag.StringVar(&object, "o", "", "Object file (default: source with .obj suffix, - for stdout)")
	flag.StringVar(&listing, "l", "", "Listing file (- for stdout)")
	flag.StringVar(&profile, "p", "", "Assembler profile (.star)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message language")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: Expected one source file: %v", os.Args[0], flag.Args())
	}
	source := flag.Arg(0)

	if len(lang) != 0 {
		translate.SetLocales(lang)
	}

	prof := config.Default()
	if len(profile) != 0 {
		var err error
		prof, err = config.Load(profile, nil)
		if err != nil {
			log.Fatalf("%v: %v", profile, err)
		}
	}

	assembler, err := prof.Assembler()
	if err != nil {
		log.Fatalf("%v: %v", profile, err)
	}
	assembler.Verbose = verbose

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	prog, obj, asmErr := assembler.Assemble(inf, time.Now())
	inf.Close()

	if len(listing) != 0 {
		ouf, isTerm, err := create(listing)
		if err != nil {
			log.Fatalf("%v: %v", listing, err)
		}

		rpt := prog.Report()
		if isTerm {
			width, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err == nil {
				rpt.Width = width
			}
		}

		_, err = rpt.WriteTo(ouf)
		if err == nil {
			err = ouf.Close()
		}
		if err != nil {
			log.Fatalf("%v: %v", listing, err)
		}
	}

	if asmErr != nil {
		log.Fatalf("%v: %v", source, asmErr)
	}

	if len(object) == 0 {
		object = strings.TrimSuffix(source, filepath.Ext(source)) + ".obj"
	}

	ouf, _, err := create(object)
	if err != nil {
		log.Fatalf("%v: %v", object, err)
	}
	_, err = obj.WriteTo(ouf)
	if err == nil {
		err = ouf.Close()
	}
	if err != nil {
		log.Fatalf("%v: %v", object, err)
	}

	if verbose {
		log.Printf("%v: %d errors, %d warnings, %d words", source, prog.TotalErrors(), prog.Context.TotalWarnings, prog.Length())
	}

	if prog.TotalErrors() > 0 {
		os.Exit(1)
	}
}
