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

import "strconv"

// pushD pushes the value currently in D onto the stack.
func pushD() []string {
	return []string{
		"@SP",
		"A=M",
		"M=D",
		"@SP",
		"M=M+1",
	}
}

// lowerFunction declares f with nLocals local slots, all initialized to
// 0, and opens it as the current function: every label, goto, if-goto
// and call lowered until the next function declaration is scoped to f.
func (t *Translator) lowerFunction(name string, nLocals int) []string {
	t.currentFunction = name
	lines := []string{"(" + name + ")"}
	for i := 0; i < nLocals; i++ {
		lines = append(lines,
			"@SP",
			"A=M",
			"M=0",
			"@SP",
			"M=M+1",
		)
	}
	return lines
}

// lowerCall pushes a fresh return-address label along with the caller's
// LCL/ARG/THIS/THAT, repositions ARG and LCL for the callee, and jumps to
// it. caller scopes the return label's call-site counter: it is the
// enclosing function's name (not the callee's), so two different
// functions calling the same callee never mint the same return label.
func (t *Translator) lowerCall(caller, callee string, nArgs int) []string {
	k := t.callCounters[caller]
	t.callCounters[caller] = k + 1
	retLabel := caller + "$ret." + strconv.Itoa(k)

	var lines []string
	lines = append(lines, "@"+retLabel, "D=A")
	lines = append(lines, pushD()...)
	for _, reg := range []string{"LCL", "ARG", "THIS", "THAT"} {
		lines = append(lines, "@"+reg, "D=M")
		lines = append(lines, pushD()...)
	}
	lines = append(lines,
		"@SP",
		"D=M",
		"@"+strconv.Itoa(nArgs+5),
		"D=D-A",
		"@ARG",
		"M=D",
		"@SP",
		"D=M",
		"@LCL",
		"M=D",
		"@"+callee,
		"0;JMP",
		"("+retLabel+")",
	)
	return lines
}

// lowerReturn tears down the current frame and transfers control back to
// the caller. FRAME (R13) and RET (R14) are scratch registers: RET must
// be read out of FRAME-5 before RAM[ARG] is overwritten, since a
// zero-argument call leaves ARG pointing at the same cell as the return
// address once the result is written there.
func (t *Translator) lowerReturn() []string {
	return []string{
		"@LCL",
		"D=M",
		"@R13",
		"M=D",
		"@5",
		"A=D-A",
		"D=M",
		"@R14",
		"M=D",
		"@SP",
		"AM=M-1",
		"D=M",
		"@ARG",
		"A=M",
		"M=D",
		"@ARG",
		"D=M+1",
		"@SP",
		"M=D",
		"@R13",
		"AM=M-1",
		"D=M",
		"@THAT",
		"M=D",
		"@R13",
		"AM=M-1",
		"D=M",
		"@THIS",
		"M=D",
		"@R13",
		"AM=M-1",
		"D=M",
		"@ARG",
		"M=D",
		"@R13",
		"AM=M-1",
		"D=M",
		"@LCL",
		"M=D",
		"@R14",
		"A=M",
		"0;JMP",
	}
}
