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
	"strconv"

	"github.com/hackforth/vmtranslate/vmir"
)

// lowerArith handles the unary (neg, not) and binary (add, sub, and, or)
// operators. Binary operators pop both operands by decrementing SP twice
// and re-push the result by incrementing it once: the second operand is
// loaded into D and the result is written in place over the first
// operand's slot, the same pattern for all four operators.
func (t *Translator) lowerArith(op vmir.ArithOp) []string {
	if op.IsUnary() {
		var c string
		if op == vmir.OpNeg {
			c = "M=-M"
		} else {
			c = "M=!M"
		}
		return []string{
			"@SP",
			"A=M-1",
			c,
		}
	}

	var c string
	switch op {
	case vmir.OpAdd:
		c = "M=D+M"
	case vmir.OpSub:
		c = "M=M-D"
	case vmir.OpAnd:
		c = "M=D&M"
	case vmir.OpOr:
		c = "M=D|M"
	}
	return []string{
		"@SP",
		"AM=M-1",
		"D=M",
		"@SP",
		"AM=M-1",
		c,
		"@SP",
		"M=M+1",
	}
}

// lowerComp handles eq, lt and gt. It subtracts the second operand from
// the first, jumps on the negated relation to a FALSE-writing branch and
// falls through to write true (-1), jumping over the FALSE branch to a
// common END label. n is shared across all three comparison operators:
// it is a single translation-unit-wide counter, not one per operator.
func (t *Translator) lowerComp(op vmir.CompOp) []string {
	n := t.compCounter
	t.compCounter++
	falseLabel := "$CMP_FALSE_" + strconv.Itoa(n)
	endLabel := "$CMP_END_" + strconv.Itoa(n)

	var jump string
	switch op {
	case vmir.OpEq:
		jump = "D;JNE"
	case vmir.OpLt:
		jump = "D;JGE"
	case vmir.OpGt:
		jump = "D;JLE"
	}

	return []string{
		"@SP",
		"AM=M-1",
		"D=M",
		"@SP",
		"AM=M-1",
		"D=M-D",
		"@" + falseLabel,
		jump,
		"@SP",
		"A=M",
		"M=-1",
		"@" + endLabel,
		"0;JMP",
		"(" + falseLabel + ")",
		"@SP",
		"A=M",
		"M=0",
		"(" + endLabel + ")",
		"@SP",
		"M=M+1",
	}
}
