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

package asm

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/hackforth/vmtranslate/vmir"
)

// bootCaller is the synthetic "current function" name used to scope the
// call-site counter for the bootstrap's own call to Sys.init, giving the
// return label "$boot$ret.0". vmir's identifier check accepts "$boot" as
// a name, so a VM function itself named "$boot" that makes a call mints
// the same return label.
const bootCaller = "$boot"

// Translator holds the translation-unit-wide context (current file,
// current function, counters) and lowers one vmir.Command at a time into
// Hack assembly lines.
type Translator struct {
	// Annotate enables the provenance comment emitted before each
	// non-trivial command, echoing its VM source line.
	Annotate bool

	fileBase        string
	currentFunction string
	compCounter     int
	callCounters    map[string]int
}

// NewTranslator creates a Translator ready to process the first input
// file of a run. The comparison counter is translation-unit-wide and is
// never reset by BeginFile.
func NewTranslator(annotate bool) *Translator {
	return &Translator{
		Annotate:     annotate,
		callCounters: make(map[string]int),
	}
}

// BeginFile resets the per-file context (current function and call-site
// counters) and sets fileBase, which scopes the static segment and
// top-level label mangling. It must be called once before translating
// each input file, in deterministic (lexicographic) file order.
func (t *Translator) BeginFile(fileBase string) {
	t.fileBase = fileBase
	t.currentFunction = ""
	t.callCounters = make(map[string]int)
}

// caller returns the name used to scope call-site and label mangling:
// the current function if one is open, otherwise the file basename.
func (t *Translator) caller() string {
	if t.currentFunction != "" {
		return t.currentFunction
	}
	return t.fileBase
}

// Emit lowers a single command into the ASM lines that implement it,
// optionally prefixed by a provenance comment. An unrecognized Kind is an
// internal invariant violation: it cannot arise from vmir.ParseLine, so
// reaching it here indicates a translator bug.
func (t *Translator) Emit(cmd vmir.Command) ([]string, error) {
	var lines []string
	switch cmd.Kind {
	case vmir.KindArith:
		lines = t.lowerArith(cmd.Arith)
	case vmir.KindComp:
		lines = t.lowerComp(cmd.Comp)
	case vmir.KindPush:
		l, err := t.lowerPush(cmd.Segment, cmd.Index)
		if err != nil {
			return nil, err
		}
		lines = l
	case vmir.KindPop:
		l, err := t.lowerPop(cmd.Segment, cmd.Index)
		if err != nil {
			return nil, err
		}
		lines = l
	case vmir.KindLabel:
		lines = t.lowerLabel(cmd.Name)
	case vmir.KindGoto:
		lines = t.lowerGoto(cmd.Name)
	case vmir.KindIfGoto:
		lines = t.lowerIfGoto(cmd.Name)
	case vmir.KindFunction:
		lines = t.lowerFunction(cmd.Name, cmd.NLocals)
	case vmir.KindCall:
		lines = t.lowerCall(t.caller(), cmd.Name, cmd.NArgs)
	case vmir.KindReturn:
		lines = t.lowerReturn()
	default:
		return nil, errors.Errorf("internal error: unhandled command kind %v", cmd.Kind)
	}

	if t.Annotate {
		lines = append([]string{"// " + cmd.Source()}, lines...)
	}
	return lines, nil
}

// Bootstrap emits the multi-file program entry sequence: SP is set to 256
// and control is transferred to Sys.init via the regular call lowering.
// It must be emitted once, before the first translated file, and only
// when the input is a directory of VM files.
func (t *Translator) Bootstrap() []string {
	lines := []string{
		"@256",
		"D=A",
		"@SP",
		"M=D",
	}
	return append(lines, t.lowerCall(bootCaller, "Sys.init", 0)...)
}

// TranslateFile calls BeginFile(fileBase) and then translates every line
// read from r, returning the concatenated ASM lines. lineNo starts at 1.
func (t *Translator) TranslateFile(fileBase string, r io.Reader) ([]string, error) {
	t.BeginFile(fileBase)
	var out []string
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		cmd, blank, err := vmir.ParseLine(fileBase, lineNo, sc.Text())
		if err != nil {
			return nil, err
		}
		if blank {
			continue
		}
		lines, err := t.Emit(cmd)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", fileBase)
	}
	return out, nil
}
