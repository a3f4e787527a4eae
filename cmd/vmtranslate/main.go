// Copyright 2026 The vmtranslate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vmtranslate lowers VM intermediate code into Hack symbolic
// assembly.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hackforth/vmtranslate/asm"
	"github.com/hackforth/vmtranslate/internal/lineio"
	"github.com/hackforth/vmtranslate/vmir"
)

const (
	exitOK      = 0
	exitIOErr   = 1
	exitLangErr = 2
	exitUsage   = 64
)

type options struct {
	output   string
	annotate bool
	boot     *bool // nil means "auto": on for directory input, off for a single file
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts := &options{annotate: true}
	var noAnnotate bool
	var forceBoot, forceNoBoot bool

	cmd := &cobra.Command{
		Use:           "vmtranslate <path>",
		Short:         "Translate VM code into Hack assembly",
		Args:          exactlyOneArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.annotate = !noAnnotate
			switch {
			case forceBoot && forceNoBoot:
				return usageError{errors.New("--boot and --no-boot are mutually exclusive")}
			case forceBoot:
				b := true
				opts.boot = &b
			case forceNoBoot:
				b := false
				opts.boot = &b
			}
			return translate(args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: derived from input)")
	cmd.Flags().BoolVar(&noAnnotate, "no-annotate", false, "omit provenance comments in the emitted assembly")
	cmd.Flags().BoolVar(&forceBoot, "boot", false, "force emission of the bootstrap sequence")
	cmd.Flags().BoolVar(&forceNoBoot, "no-boot", false, "suppress the bootstrap sequence")
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vmtranslate:", err)
		return exitCodeFor(err)
	}
	return exitOK
}

// usageError marks an error as a command-line usage mistake, mapped to
// sysexits' EX_USAGE rather than a translation failure.
type usageError struct{ error }

// exactlyOneArg wraps cobra.ExactArgs(1) so a missing or extra argument is
// classified as a usageError: cobra validates Args before RunE ever runs,
// so the plain error ExactArgs returns would otherwise bypass exitCodeFor's
// usageError check entirely and fall through to exitIOErr.
func exactlyOneArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

func exitCodeFor(err error) int {
	cause := errors.Cause(err)
	if _, ok := cause.(usageError); ok {
		return exitUsage
	}
	if isLangError(cause) {
		return exitLangErr
	}
	return exitIOErr
}

// isLangError reports whether err is a parse or semantic defect in the
// translated VM source, as opposed to an I/O failure.
func isLangError(err error) bool {
	switch err.(type) {
	case *vmir.ParseError, *vmir.SemanticError:
		return true
	default:
		return false
	}
}

func translate(path string, opts *options) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "stat input")
	}

	var files []string
	var bootDefault bool
	var outDefault string

	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return errors.Wrap(err, "read input directory")
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".vm") {
				continue
			}
			files = append(files, filepath.Join(path, e.Name()))
		}
		sort.Strings(files)
		if len(files) == 0 {
			return usageError{errors.Errorf("%s: no .vm files found", path)}
		}
		bootDefault = true
		base := filepath.Base(filepath.Clean(path))
		outDefault = filepath.Join(path, base+".asm")
	} else {
		if !strings.HasSuffix(path, ".vm") {
			return usageError{errors.Errorf("%s: input file must have a .vm extension", path)}
		}
		files = []string{path}
		bootDefault = false
		outDefault = strings.TrimSuffix(path, ".vm") + ".asm"
	}

	boot := bootDefault
	if opts.boot != nil {
		boot = *opts.boot
	}

	outPath := opts.output
	if outPath == "" {
		outPath = outDefault
	}

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer out.Close()

	w := lineio.New(out)
	tr := asm.NewTranslator(opts.annotate)

	if boot {
		if err := w.WriteLines(tr.Bootstrap()); err != nil {
			return err
		}
	}

	for _, f := range files {
		fh, err := os.Open(f)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		base := strings.TrimSuffix(filepath.Base(f), ".vm")
		lines, terr := tr.TranslateFile(base, fh)
		fh.Close()
		if terr != nil {
			return terr
		}
		if err := w.WriteLines(lines); err != nil {
			return err
		}
	}

	return w.Flush()
}
