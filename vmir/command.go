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

package vmir

import "strconv"

// Kind discriminates the variants of Command. Dispatch on Kind must be
// exhaustive; an unhandled Kind reaching a lowering stage is an internal
// invariant violation, not a silently ignored case.
type Kind int

const (
	// KindArith covers add, sub, neg, and, or, not.
	KindArith Kind = iota
	// KindComp covers eq, lt, gt.
	KindComp
	KindPush
	KindPop
	KindLabel
	KindGoto
	KindIfGoto
	KindFunction
	KindCall
	KindReturn
)

func (k Kind) String() string {
	switch k {
	case KindArith:
		return "arith"
	case KindComp:
		return "comp"
	case KindPush:
		return "push"
	case KindPop:
		return "pop"
	case KindLabel:
		return "label"
	case KindGoto:
		return "goto"
	case KindIfGoto:
		return "if-goto"
	case KindFunction:
		return "function"
	case KindCall:
		return "call"
	case KindReturn:
		return "return"
	default:
		return "unknown"
	}
}

// ArithOp enumerates the unary/binary arithmetic-logical operations.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpNeg
	OpAnd
	OpOr
	OpNot
)

func (op ArithOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpNeg:
		return "neg"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpNot:
		return "not"
	default:
		return "unknown"
	}
}

// IsUnary reports whether op consumes exactly one stack slot.
func (op ArithOp) IsUnary() bool {
	return op == OpNeg || op == OpNot
}

// CompOp enumerates the three comparison operations.
type CompOp int

const (
	OpEq CompOp = iota
	OpLt
	OpGt
)

func (op CompOp) String() string {
	switch op {
	case OpEq:
		return "eq"
	case OpLt:
		return "lt"
	case OpGt:
		return "gt"
	default:
		return "unknown"
	}
}

// Command is a tagged variant representing one parsed VM command. Only the
// fields relevant to Kind are populated. There are no accessor methods:
// the fields are exported and read directly by package asm's exhaustive
// switch.
type Command struct {
	Kind Kind
	Line int // 1-based source line number, for diagnostics and annotation

	Arith ArithOp
	Comp  CompOp

	Segment Segment
	Index   int

	Name    string // label/function/call target name
	NLocals int     // function k
	NArgs   int     // call n
}

// Arithmetic constructs an Arith command.
func Arithmetic(op ArithOp, line int) Command {
	return Command{Kind: KindArith, Arith: op, Line: line}
}

// Comparison constructs a Comp command.
func Comparison(op CompOp, line int) Command {
	return Command{Kind: KindComp, Comp: op, Line: line}
}

// PushCmd constructs a Push command.
func PushCmd(seg Segment, index, line int) Command {
	return Command{Kind: KindPush, Segment: seg, Index: index, Line: line}
}

// PopCmd constructs a Pop command.
func PopCmd(seg Segment, index, line int) Command {
	return Command{Kind: KindPop, Segment: seg, Index: index, Line: line}
}

// LabelCmd constructs a Label command.
func LabelCmd(name string, line int) Command {
	return Command{Kind: KindLabel, Name: name, Line: line}
}

// GotoCmd constructs a Goto command.
func GotoCmd(name string, line int) Command {
	return Command{Kind: KindGoto, Name: name, Line: line}
}

// IfGotoCmd constructs an IfGoto command.
func IfGotoCmd(name string, line int) Command {
	return Command{Kind: KindIfGoto, Name: name, Line: line}
}

// FunctionCmd constructs a Function command.
func FunctionCmd(name string, nLocals, line int) Command {
	return Command{Kind: KindFunction, Name: name, NLocals: nLocals, Line: line}
}

// CallCmd constructs a Call command.
func CallCmd(name string, nArgs, line int) Command {
	return Command{Kind: KindCall, Name: name, NArgs: nArgs, Line: line}
}

// ReturnCmd constructs a Return command.
func ReturnCmd(line int) Command {
	return Command{Kind: KindReturn, Line: line}
}

// Source reconstructs a canonical textual form of the command, used for
// the translator's provenance comments.
func (c Command) Source() string {
	switch c.Kind {
	case KindArith:
		return c.Arith.String()
	case KindComp:
		return c.Comp.String()
	case KindPush:
		return "push " + c.Segment.String() + " " + strconv.Itoa(c.Index)
	case KindPop:
		return "pop " + c.Segment.String() + " " + strconv.Itoa(c.Index)
	case KindLabel:
		return "label " + c.Name
	case KindGoto:
		return "goto " + c.Name
	case KindIfGoto:
		return "if-goto " + c.Name
	case KindFunction:
		return "function " + c.Name + " " + strconv.Itoa(c.NLocals)
	case KindCall:
		return "call " + c.Name + " " + strconv.Itoa(c.NArgs)
	case KindReturn:
		return "return"
	default:
		return "???"
	}
}

