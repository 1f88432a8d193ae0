// Command gendict compiles a word list into a binary dictionary for the
// dictionary-based break engines.
//
//	gendict -bytes -transform offset-0x0E00 -in thaidict.txt -out thaidict.dict
//	gendict -uchars -in cjdict.txt -out cjdict.dict
//
// Without -transform, a bytes trie stores code-points 0x00…0xFF directly.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/npillmayer/dictbreak/dictionary"
	"github.com/npillmayer/dictbreak/wordlist"
	"golang.org/x/term"
)

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

type options struct {
	bytes     bool
	uchars    bool
	transform string
	source    string
	dest      string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fl := flag.NewFlagSet("gendict", flag.ContinueOnError)
	fl.SetOutput(stderr)
	fl.BoolVar(&opts.bytes, "bytes", false, "Build a bytes trie")
	fl.BoolVar(&opts.uchars, "uchars", false, "Build a UTF-16 chars trie")
	fl.StringVar(&opts.transform, "transform", "", "Code-point transform for -bytes, e.g. offset-0x0E00 (default none)")
	fl.StringVar(&opts.source, "in", pipeName, "Word list")
	fl.StringVar(&opts.dest, "out", pipeName, "Dictionary file")
	if err := fl.Parse(args); err != nil {
		return nil, err
	}
	if opts.bytes == opts.uchars {
		return nil, errors.New("exactly one of -bytes and -uchars is required")
	}
	if opts.uchars && opts.transform != "" {
		return nil, errors.New("-transform is only valid with -bytes")
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	kind := dictionary.CharsTrie
	var transform dictionary.Transform
	if opts.bytes {
		kind = dictionary.BytesTrie
		if transform, err = dictionary.ParseTransform(opts.transform); err != nil {
			return err
		}
	}
	in := stdin
	if opts.source == pipeName {
		if isTerminal(stdin) {
			return errors.New("`-` should be used with a pipe for stdin")
		}
	} else {
		f, err := os.Open(opts.source)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	blob, err := dictionary.Compile(wordlist.NewReader(in), kind, transform)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.source, err)
	}
	if opts.dest == pipeName {
		if isTerminal(stdout) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		_, err = stdout.Write(blob)
		return err
	}
	return os.WriteFile(opts.dest, blob, 0o644)
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("gendict: %v", err)
	}
}
